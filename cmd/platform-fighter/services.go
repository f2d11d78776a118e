package main

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/platform-fighter/audio"
	"github.com/lixenwraith/platform-fighter/telemetry"
)

// audioService opens the speaker; a missing device leaves the game silent
type audioService struct {
	cues   *audio.CuePlayer
	logger *slog.Logger
}

func (s *audioService) Name() string           { return "audio" }
func (s *audioService) Dependencies() []string { return nil }

func (s *audioService) Start(context.Context) error {
	if err := s.cues.Initialize(); err != nil {
		s.logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	return nil
}

func (s *audioService) Stop() error {
	s.cues.Cleanup()
	return nil
}

// telemetryService serves snapshots and events over websocket
type telemetryService struct {
	server *telemetry.Server
	addr   string
}

func (s *telemetryService) Name() string           { return "telemetry" }
func (s *telemetryService) Dependencies() []string { return nil }

func (s *telemetryService) Start(ctx context.Context) error {
	return s.server.Start(ctx, s.addr)
}

func (s *telemetryService) Stop() error {
	return s.server.Shutdown(context.Background())
}
