// Package primitives is the host-facing boundary. Service exposes every
// primitive operation with structured logging and optional metrics, and
// holds no call state between invocations.
package primitives

import (
	"github.com/google/uuid"

	"github.com/dd0wney/cluso-primitives/pkg/compression"
	"github.com/dd0wney/cluso-primitives/pkg/config"
	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
	"github.com/dd0wney/cluso-primitives/pkg/logging"
	"github.com/dd0wney/cluso-primitives/pkg/metrics"
	"github.com/dd0wney/cluso-primitives/pkg/random"
	"github.com/dd0wney/cluso-primitives/pkg/signing"
)

// Service runs primitive operations for a host
type Service struct {
	logger  logging.Logger
	metrics *metrics.Registry
	rand    random.Source
	signer  *signing.Engine
	codec   *compression.Codec
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMetrics records every call into r
func WithMetrics(r *metrics.Registry) Option {
	return func(s *Service) { s.metrics = r }
}

// WithRandomSource replaces the OS random source, e.g. with random.Deterministic in tests
func WithRandomSource(src random.Source) Option {
	return func(s *Service) { s.rand = src }
}

// WithMaxDecompressedSize caps decompressed output in bytes
func WithMaxDecompressedSize(n uint64) Option {
	return func(s *Service) { s.codec = compression.NewCodec(n) }
}

// NewService creates a service. Defaults: OS randomness, no logging, no metrics.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: logging.NewNopLogger(),
		rand:   random.OS,
		codec:  compression.NewCodec(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logging.Component("primitives"))
	s.signer = signing.NewEngine(s.rand)
	return s
}

// NewServiceFromConfig builds a service, logger and optional registry from cfg
func NewServiceFromConfig(cfg *config.Config, opts ...Option) (*Service, *metrics.Registry) {
	var reg *metrics.Registry
	base := []Option{
		WithLogger(logging.NewLogger(cfg.LogLevel)),
		WithMaxDecompressedSize(uint64(cfg.MaxDecompressedSize)),
	}
	if cfg.MetricsEnabled {
		reg = metrics.NewRegistry(cfg.MetricsNamespace)
		base = append(base, WithMetrics(reg))
	}
	return NewService(append(base, opts...)...), reg
}

// call tracks one operation for logging and metrics
type call struct {
	op    string
	timer *logging.TimedOperation
}

func (s *Service) begin(op string) *call {
	fields := []logging.Field{logging.Operation(op)}
	if s.logger.GetLevel() <= logging.WarnLevel {
		if id, err := uuid.NewRandom(); err == nil {
			fields = append(fields, logging.CallID(id.String()))
		}
	}
	return &call{
		op:    op,
		timer: logging.StartTimer(s.logger, op, fields...),
	}
}

// finish logs and records the call. Only sizes are logged, never contents.
func (s *Service) finish(c *call, err error, bytesIn, bytesOut int) {
	sizes := []logging.Field{
		logging.Bytes("input_bytes", bytesIn),
		logging.Bytes("output_bytes", bytesOut),
	}

	kind := ""
	if err != nil {
		if k, ok := cryptoerr.KindOf(err); ok {
			kind = k.String()
		} else {
			kind = "Unknown"
		}
		c.timer.EndWarn(err, append(sizes, logging.Kind(kind))...)
	} else {
		c.timer.End(sizes...)
	}

	if s.metrics != nil {
		s.metrics.RecordOperation(c.op, err, c.timer.Elapsed(), bytesIn, bytesOut)
		if err != nil {
			s.metrics.RecordFailure(c.op, kind)
		}
	}
}
