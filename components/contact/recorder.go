package contact

import (
	"context"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	pkgcontact "github.com/goliatone/go-portfolio/pkg/contact"
)

// Recorder receives every submission that passed validation. A returned
// error turns the response into a server error.
type Recorder interface {
	Record(ctx context.Context, rec pkgcontact.Record) error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(ctx context.Context, rec pkgcontact.Record) error

func (fn RecorderFunc) Record(ctx context.Context, rec pkgcontact.Record) error {
	return fn(ctx, rec)
}

// MultiRecorder records to each sink in order and stops at the first error.
func MultiRecorder(recorders ...Recorder) Recorder {
	sinks := make([]Recorder, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			sinks = append(sinks, r)
		}
	}
	return RecorderFunc(func(ctx context.Context, rec pkgcontact.Record) error {
		for _, sink := range sinks {
			if err := sink.Record(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// LogRecorder writes each submission as one structured log entry. Values are
// stripped of markup before they reach the log stream.
type LogRecorder struct {
	logger *zap.Logger
}

// NewLogRecorder returns a recorder writing to logger.
func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(_ context.Context, rec pkgcontact.Record) error {
	sub := rec.Submission
	r.logger.Info("new contact form submission",
		zap.String("submission_id", rec.ID),
		zap.String("name", sanitizeText(sub.Name)),
		zap.String("email", sanitizeText(sub.Email)),
		zap.String("subject", sanitizeText(sub.Subject)),
		zap.String("message", sanitizeText(sub.Message)),
		zap.Time("timestamp", rec.ReceivedAt),
	)
	return nil
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(raw)))
}
