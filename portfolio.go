// Package portfolio wires the contact endpoint and the portfolio page onto a
// single net/http mux.
package portfolio

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-portfolio/components/contact"
	pkgcontact "github.com/goliatone/go-portfolio/pkg/contact"
	"github.com/goliatone/go-portfolio/pkg/form"
	"github.com/goliatone/go-portfolio/pkg/site"
)

// Submission aliases the contact payload for callers of the top-level package.
type Submission = pkgcontact.Submission

// Outcome aliases the result of one submission attempt.
type Outcome = pkgcontact.Outcome

// Profile aliases the owner information shown on the page.
type Profile = site.Profile

// Options configures NewMux.
type Options struct {
	Profile  Profile
	Logger   *zap.Logger
	BasePath string
	Contact  []contact.OptionFn
	Site     []site.OptionFn
}

type Option func(*Options)

func WithProfile(profile Profile) Option {
	return func(o *Options) {
		o.Profile = profile
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithBasePath mounts the contact endpoint under path.
func WithBasePath(path string) Option {
	return func(o *Options) {
		o.BasePath = path
	}
}

// WithContactOptions forwards options to the contact component.
func WithContactOptions(fns ...contact.OptionFn) Option {
	return func(o *Options) {
		o.Contact = append(o.Contact, fns...)
	}
}

// WithSiteOptions forwards options to the page handler.
func WithSiteOptions(fns ...site.OptionFn) Option {
	return func(o *Options) {
		o.Site = append(o.Site, fns...)
	}
}

// NewMux builds a mux serving the JSON endpoint, its OpenAPI description, the
// portfolio page and the health probe. The page posts through the same
// contact service the endpoint uses, without a network hop.
func NewMux(options ...Option) (*http.ServeMux, error) {
	opts := Options{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	contactFns := append([]contact.OptionFn{contact.WithLogger(opts.Logger)}, opts.Contact...)
	svc := contact.NewService(contactFns...)

	mux := http.NewServeMux()
	if _, err := contact.RegisterService(mux, opts.BasePath, svc); err != nil {
		return nil, err
	}

	siteFns := append([]site.OptionFn{
		site.WithProfile(opts.Profile),
		site.WithLogger(opts.Logger),
		site.WithSubmitter(form.SubmitterFunc(svc.Deliver)),
	}, opts.Site...)
	page, err := site.New(siteFns...)
	if err != nil {
		return nil, fmt.Errorf("portfolio: build site: %w", err)
	}
	if err := page.RegisterRoutes(mux); err != nil {
		return nil, err
	}
	return mux, nil
}
