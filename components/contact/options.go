package contact

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultRoutePath    = "/api/contact"
	DefaultMaxBodyBytes = 64 << 10
)

type Options struct {
	RoutePath    string
	MaxBodyBytes int64
	Recorder     Recorder
	Logger       *zap.Logger

	Now   func() time.Time
	NewID func() string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    DefaultRoutePath,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// NewOptions applies fns over the defaults and fills anything left unset.
// A missing Recorder falls back to a LogRecorder on the configured logger.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Recorder == nil {
		opts.Recorder = NewLogRecorder(opts.Logger)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

// WithRecorder sets the sink that receives validated submissions.
func WithRecorder(recorder Recorder) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Recorder = recorder
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithClock overrides the timestamp source used for records.
func WithClock(now func() time.Time) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Now = now
	}
}

// WithIDGenerator overrides how submission ids are minted.
func WithIDGenerator(fn func() string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.NewID = fn
	}
}
