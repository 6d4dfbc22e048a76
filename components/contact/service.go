package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgcontact "github.com/goliatone/go-portfolio/pkg/contact"
	"github.com/goliatone/go-portfolio/pkg/validation"
)

// Service validates and records submissions. It holds no per-request state
// and is safe for concurrent use; the HTTP handler and in-process callers
// share it.
type Service struct {
	opts Options
}

func NewService(fns ...OptionFn) *Service {
	return &Service{opts: NewOptions(fns...)}
}

// ServiceWithOptions builds a Service from a pre-constructed Options value.
func ServiceWithOptions(opts Options) *Service {
	opts = NewOptions(func(o *Options) { *o = opts })
	return &Service{opts: opts}
}

// Submit runs one submission through validation and recording and always
// returns an outcome: panics and recorder failures become server errors.
func (s *Service) Submit(ctx context.Context, sub pkgcontact.Submission) (outcome pkgcontact.Outcome) {
	id := s.opts.NewID()
	logger := s.opts.Logger.With(zap.String("submission_id", id))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("contact submission panicked", zap.Any("panic", r))
			outcome = pkgcontact.Failed()
		}
	}()

	logger.Debug("contact submission received")
	if err := validation.CheckPayload(sub); err != nil {
		logger.Debug("contact submission rejected", zap.Error(err))
		return validation.Outcome(err)
	}

	rec := pkgcontact.Record{
		ID:         id,
		Submission: sub,
		ReceivedAt: s.opts.Now().UTC(),
	}
	if err := s.record(ctx, rec); err != nil {
		logger.Error("contact submission not recorded", zap.Error(err))
		return pkgcontact.Failed()
	}

	logger.Debug("contact submission recorded")
	return pkgcontact.Sent()
}

func (s *Service) record(ctx context.Context, rec pkgcontact.Record) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("contact: record %s: %w", rec.ID, err)
	}
	if err := s.opts.Recorder.Record(ctx, rec); err != nil {
		return fmt.Errorf("contact: record %s: %w", rec.ID, err)
	}
	return nil
}

// Deliver adapts Submit to the form.Submitter shape for in-process callers.
// It never returns an error; failures are carried by the outcome.
func (s *Service) Deliver(ctx context.Context, sub pkgcontact.Submission) (pkgcontact.Outcome, error) {
	return s.Submit(ctx, sub), nil
}
