package tui

import "io"

// Theme captures optional formatting hints applied to printed messages. Keep
// minimal to avoid coupling the flow to ANSI specifics.
type Theme struct {
	InfoPrefix    string
	SuccessPrefix string
	ErrorPrefix   string
}

// DefaultTheme marks banners with plain ASCII prefixes.
func DefaultTheme() Theme {
	return Theme{
		InfoPrefix:    "",
		SuccessPrefix: "[ok] ",
		ErrorPrefix:   "[!] ",
	}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput redirects messages printed by the default survey driver.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
