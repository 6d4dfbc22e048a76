package site

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/goliatone/go-portfolio/pkg/form"
)

const (
	DefaultFormPath   = "/contact"
	DefaultHealthPath = "/healthz"
)

type Options struct {
	Profile   Profile
	Submitter form.Submitter
	FormPath  string
	Logger    *zap.Logger
	// Templates are consulted before the embedded defaults.
	Templates fs.FS
}

type OptionFn func(*Options)

func NewOptions(fns ...OptionFn) Options {
	opts := Options{FormPath: DefaultFormPath}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.FormPath == "" {
		opts.FormPath = DefaultFormPath
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithProfile(profile Profile) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Profile = profile
	}
}

// WithSubmitter sets where the form posts validated submissions.
func WithSubmitter(submitter form.Submitter) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Submitter = submitter
	}
}

func WithFormPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormPath = path
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

// WithTemplates layers template overrides over the embedded set.
func WithTemplates(files fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Templates = files
	}
}
