package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fahadshabir/poster/engine"
	"github.com/fahadshabir/poster/errors"
	"github.com/fahadshabir/poster/health"
	"github.com/fahadshabir/poster/metric"
	"github.com/fahadshabir/poster/postal"
)

// DefaultSubjectPrefix is the subject namespace the service listens under.
const DefaultSubjectPrefix = "poster"

// Service answers address-batch requests over NATS request-reply.
type Service struct {
	nc      *nats.Conn
	handle  *engine.Handle
	proc    *postal.Processor
	logger  *slog.Logger
	metrics *serviceMetrics

	subjectPrefix string
	subs          []*nats.Subscription
	startTime     time.Time
	started       bool
	mu            sync.Mutex
}

// Option is a functional option for configuring the service.
type Option func(*Service)

// WithSubjectPrefix overrides the subject namespace.
func WithSubjectPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.subjectPrefix = prefix
		}
	}
}

// New creates a NATS service over an open engine handle and its processor.
func New(nc *nats.Conn, handle *engine.Handle, proc *postal.Processor,
	logger *slog.Logger, registry *metric.Registry, opts ...Option) *Service {
	metrics, err := newServiceMetrics(registry)
	if err != nil {
		logger.Error("Failed to initialize service metrics", "error", err)
		metrics = nil // Continue without metrics
	}

	s := &Service{
		nc:            nc,
		handle:        handle,
		proc:          proc,
		logger:        logger,
		metrics:       metrics,
		subjectPrefix: DefaultSubjectPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start subscribes to the request subjects.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.WrapInvalid(
			fmt.Errorf("service already started"),
			"service", "Start", "check state")
	}

	handlers := map[string]func(context.Context, []byte) []byte{
		s.subject("normalize"): s.handleNormalize,
		s.subject("parse"):     s.handleParse,
		s.subject("get_field"): s.handleGetField,
		s.subject("set_field"): s.handleSetField,
		s.subject("health"):    s.handleHealth,
	}

	for subject, handler := range handlers {
		subject, handler := subject, handler
		sub, err := s.nc.Subscribe(subject, func(msg *nats.Msg) {
			start := time.Now()
			reply := handler(ctx, msg.Data)
			if err := msg.Respond(reply); err != nil {
				s.logger.Error("Failed to respond", "subject", subject, "error", err)
			}
			s.metrics.recordRequest(subject, time.Since(start))
		})
		if err != nil {
			s.unsubscribeLocked()
			return errors.WrapFatal(err, "service", "Start", "subscribe "+subject)
		}
		s.subs = append(s.subs, sub)
	}

	s.started = true
	s.startTime = time.Now()
	s.logger.Info("Address service started", "prefix", s.subjectPrefix)
	return nil
}

// Stop unsubscribes from all subjects and flushes pending replies.
func (s *Service) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.unsubscribeLocked()
	if err := s.nc.Flush(); err != nil {
		s.logger.Warn("Flush on shutdown failed", "error", err)
	}

	s.started = false
	s.logger.Info("Address service stopped")
	return nil
}

func (s *Service) unsubscribeLocked() {
	for _, sub := range s.subs {
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Warn("Unsubscribe failed", "subject", sub.Subject, "error", err)
		}
	}
	s.subs = nil
}

func (s *Service) subject(op string) string {
	return s.subjectPrefix + "." + op
}

func (s *Service) handleNormalize(ctx context.Context, data []byte) []byte {
	var req NormalizeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return marshalReply(s.logger, NormalizeResponse{Error: "malformed request: " + err.Error()})
	}

	output, err := s.proc.Normalize(ctx, postal.FromPointers(req.Addresses))
	if err != nil {
		return marshalReply(s.logger, NormalizeResponse{Error: err.Error()})
	}
	return marshalReply(s.logger, NormalizeResponse{Addresses: postal.ToPointers(output)})
}

func (s *Service) handleParse(ctx context.Context, data []byte) []byte {
	var req ParseRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return marshalReply(s.logger, ParseResponse{Error: "malformed request: " + err.Error()})
	}

	columns, err := s.proc.Parse(ctx, postal.FromPointers(req.Addresses))
	if err != nil {
		return marshalReply(s.logger, ParseResponse{Error: err.Error()})
	}

	return marshalReply(s.logger, ParseResponse{
		House:         postal.ToPointers(columns.House),
		HouseNumber:   postal.ToPointers(columns.HouseNumber),
		Road:          postal.ToPointers(columns.Road),
		Suburb:        postal.ToPointers(columns.Suburb),
		CityDistrict:  postal.ToPointers(columns.CityDistrict),
		City:          postal.ToPointers(columns.City),
		StateDistrict: postal.ToPointers(columns.StateDistrict),
		State:         postal.ToPointers(columns.State),
		PostalCode:    postal.ToPointers(columns.PostalCode),
		Country:       postal.ToPointers(columns.Country),
	})
}

func (s *Service) handleGetField(ctx context.Context, data []byte) []byte {
	var req FieldRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return marshalReply(s.logger, FieldResponse{Error: "malformed request: " + err.Error()})
	}

	field, err := postal.ParseField(req.Field)
	if err != nil {
		return marshalReply(s.logger, FieldResponse{Error: err.Error()})
	}

	output, err := s.proc.GetField(ctx, postal.FromPointers(req.Addresses), field)
	if err != nil {
		return marshalReply(s.logger, FieldResponse{Error: err.Error()})
	}
	return marshalReply(s.logger, FieldResponse{Values: postal.ToPointers(output)})
}

func (s *Service) handleSetField(ctx context.Context, data []byte) []byte {
	var req FieldRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return marshalReply(s.logger, FieldResponse{Error: "malformed request: " + err.Error()})
	}

	field, err := postal.ParseField(req.Field)
	if err != nil {
		return marshalReply(s.logger, FieldResponse{Error: err.Error()})
	}

	output, err := s.proc.SetField(ctx,
		postal.FromPointers(req.Addresses), postal.FromPointers(req.Replacements), field)
	if err != nil {
		return marshalReply(s.logger, FieldResponse{Error: err.Error()})
	}
	return marshalReply(s.logger, FieldResponse{Values: postal.ToPointers(output)})
}

func (s *Service) handleHealth(_ context.Context, _ []byte) []byte {
	status := health.ForEngine(s.handle)

	s.mu.Lock()
	if s.started {
		status = status.WithMetrics(&health.Metrics{Uptime: time.Since(s.startTime)})
	}
	s.mu.Unlock()

	return marshalReply(s.logger, status)
}

func marshalReply(logger *slog.Logger, v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to marshal reply", "error", err)
		return []byte(`{"error":"internal marshal failure"}`)
	}
	return data
}
