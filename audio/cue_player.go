package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/platform-fighter/engine"
	"github.com/lixenwraith/platform-fighter/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// CuePlayer mixes event cues into the speaker
// Every method is safe before Initialize and after Cleanup; calls are then no-ops
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [cueCount]time.Time
	clock       engine.TimeProvider
	logger      *slog.Logger

	// sink replaces the speaker in tests; nil means the speaker is used
	sink func(beep.Streamer)
}

// NewCuePlayer creates an uninitialized player, clock and logger may be nil
func NewCuePlayer(clock engine.TimeProvider, logger *slog.Logger) *CuePlayer {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		clock:  clock,
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if p.sink == nil {
		if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
			return err
		}
		speaker.Play(p.mixer)
	}
	p.initialized = true
	p.logger.Debug("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Cleanup stops all sounds; the speaker stays open since beep cannot reopen it
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.sink == nil {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	p.initialized = false
}

// SetMuted silences future cues without closing the device
func (p *CuePlayer) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// ToggleMute flips mute and returns the new state
func (p *CuePlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

func (p *CuePlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// HandleEvent plays the cue for a simulation event, if any
func (p *CuePlayer) HandleEvent(ev engine.Event) {
	if c, ok := CueFor(ev.Type); ok {
		p.Play(c)
	}
}

// Play queues one cue; repeats of the same cue inside MinCueGap are dropped
func (p *CuePlayer) Play(c Cue) bool {
	if c >= cueCount {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}
	now := p.clock.Now()
	if last := p.lastPlayed[c]; !last.IsZero() && now.Sub(last) < parameter.MinCueGap {
		return false
	}
	p.lastPlayed[c] = now

	t := cueTones[c]
	n := sampleRate.N(t.duration)
	streamer := &effects.Volume{
		Streamer: beep.Take(n, NewToneGenerator(sampleRate, t.startFreq, t.endFreq, 1, n)),
		Base:     2,
		Volume:   parameter.CueVolume,
	}

	if p.sink != nil {
		p.sink(streamer)
		return true
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return true
}
