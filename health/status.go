package health

import "time"

// Status represents the health state of a component or the whole harness.
type Status struct {
	Component string    `json:"component"`
	Healthy   bool      `json:"healthy"`
	Status    string    `json:"status"` // "healthy", "unhealthy"
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Metrics   *Metrics  `json:"metrics,omitempty"`
}

// Metrics contains health-related runtime metrics.
type Metrics struct {
	Uptime             time.Duration `json:"uptime"`
	AddressesProcessed int64         `json:"addresses_processed,omitempty"`
	LastActivity       time.Time     `json:"last_activity,omitempty"`
}

// Healthy builds a healthy status for a component.
func Healthy(component, message string) Status {
	return Status{
		Component: component,
		Healthy:   true,
		Status:    "healthy",
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Unhealthy builds an unhealthy status for a component.
func Unhealthy(component, message string) Status {
	return Status{
		Component: component,
		Healthy:   false,
		Status:    "unhealthy",
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithMetrics returns a copy of the status with metrics attached.
func (s Status) WithMetrics(metrics *Metrics) Status {
	s.Metrics = metrics
	return s
}

// EngineState is the subset of the engine handle the health check reads.
type EngineState interface {
	Closed() bool
}

// ForEngine reports the health of the engine handle.
func ForEngine(state EngineState) Status {
	if state == nil {
		return Unhealthy("engine", "no engine handle")
	}
	if state.Closed() {
		return Unhealthy("engine", "engine handle closed")
	}
	return Healthy("engine", "engine ready")
}
