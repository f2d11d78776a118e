package parameter

import "time"

// Telemetry Stream
const (
	// TelemetryPath is the websocket endpoint served by the telemetry hub
	TelemetryPath = "/ws"

	// TelemetryClientBuffer is the per-client queue, oldest snapshots are dropped when full
	TelemetryClientBuffer = 8

	// TelemetryWriteWait bounds a single websocket write
	TelemetryWriteWait = 2 * time.Second

	// TelemetryPingPeriod keeps idle connections alive
	TelemetryPingPeriod = 30 * time.Second

	// TelemetryShutdownTimeout bounds graceful server shutdown
	TelemetryShutdownTimeout = 3 * time.Second

	// TelemetryPublishEvery publishes one snapshot per N simulated frames
	TelemetryPublishEvery = 2

	// TelemetryMetricsEvery publishes the metric readout once per N simulated frames
	TelemetryMetricsEvery = 60
)
