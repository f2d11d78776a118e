package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// ErrCircularDependency is returned when services depend on each other
var ErrCircularDependency = errors.New("circular dependency detected in services")

// Hub is the runtime container for service instances
// Manages lifecycle in dependency order
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	started  []string // Services that completed Start, for rollback and StopAll
	logger   *slog.Logger
}

// NewHub creates an empty service hub, logger may be nil
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		services: make(map[string]Service),
		logger:   logger,
	}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// StartAll calls Start on all services in topological order
// On failure, calls Stop on already-started services in reverse order
func (h *Hub) StartAll(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.topologicalSort()
	if err != nil {
		return err
	}

	h.started = nil
	for _, name := range order {
		if err := h.services[name].Start(ctx); err != nil {
			h.stopStartedLocked()
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.logger.Debug("service started", "service", name)
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll calls Stop on all started services in reverse order
// Logs errors but does not fail - ensures all services get Stop called
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopStartedLocked()
}

func (h *Hub) stopStartedLocked() {
	for i := len(h.started) - 1; i >= 0; i-- {
		name := h.started[i]
		if err := h.services[name].Stop(); err != nil {
			h.logger.Warn("service stop failed", "service", name, "error", err)
		}
	}
	h.started = nil
}

// topologicalSort computes start order using Kahn's algorithm
// Ties are broken by name so the order is stable across runs
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string) // dep -> services that depend on it

	for name := range h.services {
		inDegree[name] = 0
	}
	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	slices.Sort(queue)

	var result []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		next := dependents[name]
		slices.Sort(next)
		for _, dependent := range next {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, ErrCircularDependency
	}
	return result, nil
}

// Names returns all registered service names, sorted
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
