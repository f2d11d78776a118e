package service

import "context"

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources outside the simulation: the speaker, the telemetry listener
//
// Lifecycle:
//  1. Construction
//  2. Register with a Hub
//  3. Start(ctx) - open resources, launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	Dependencies() []string

	// Start begins service operation; ctx bounds background goroutines
	Start(ctx context.Context) error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
