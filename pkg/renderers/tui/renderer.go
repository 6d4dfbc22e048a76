package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-portfolio/pkg/contact"
	"github.com/goliatone/go-portfolio/pkg/form"
	"github.com/goliatone/go-portfolio/pkg/validation"
)

// Renderer walks a contact form controller through a terminal session.
type Renderer struct {
	driver PromptDriver
	out    io.Writer
	theme  Theme
}

// New constructs a TUI renderer with defaults (survey driver on stdout).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{theme: DefaultTheme()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Run prompts for every field, asks for confirmation and submits through
// ctrl. After a failed attempt the user may retry with the kept values.
// Declining the confirmation returns nil without sending; declining a retry
// returns ErrNotSent.
func (r *Renderer) Run(ctx context.Context, ctrl *form.Controller) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if ctrl == nil {
		return errors.New("tui: controller is nil")
	}

	for {
		if err := r.promptFields(ctx, ctrl); err != nil {
			return err
		}

		send, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Send this message?", Default: true})
		if err != nil {
			return err
		}
		if !send {
			return r.info(ctx, "Message discarded.")
		}

		if err := r.info(ctx, "Sending..."); err != nil {
			return err
		}
		err = ctrl.Submit(ctx)
		switch {
		case errors.Is(err, form.ErrInvalid):
			if err := r.reportErrors(ctx, ctrl.Snapshot()); err != nil {
				return err
			}
			continue
		case err != nil && !errors.Is(err, form.ErrTransport):
			return err
		}

		snap := ctrl.Snapshot()
		if snap.Status == form.StatusSuccess {
			return r.info(ctx, r.theme.SuccessPrefix+snap.Banner)
		}
		if err := r.info(ctx, r.theme.ErrorPrefix+snap.Banner); err != nil {
			return err
		}

		retry, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Try again?", Default: true})
		if err != nil {
			return err
		}
		if !retry {
			return ErrNotSent
		}
	}
}

func (r *Renderer) promptFields(ctx context.Context, ctrl *form.Controller) error {
	for _, field := range contact.Fields() {
		if err := r.promptField(ctx, ctrl, field); err != nil {
			return err
		}
	}
	return nil
}

// promptField re-asks until the field passes its rule, showing the inline
// error between attempts.
func (r *Renderer) promptField(ctx context.Context, ctrl *form.Controller, field contact.Field) error {
	current := ctrl.Snapshot().Values.Value(field)
	for {
		value, err := r.ask(ctx, field, current)
		if err != nil {
			return fmt.Errorf("tui: prompt %s: %w", field, err)
		}
		ctrl.UpdateField(field, value)

		msg := validation.ValidateField(field, value)
		if msg == "" {
			return nil
		}
		if err := r.info(ctx, r.theme.ErrorPrefix+msg); err != nil {
			return err
		}
		current = value
	}
}

func (r *Renderer) ask(ctx context.Context, field contact.Field, current string) (string, error) {
	switch field {
	case contact.FieldMessage:
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: field.Label(),
			Default: current,
			Help:    fmt.Sprintf("At least %d characters.", validation.MinMessageLength),
		})
	case contact.FieldEmail:
		return r.driver.Input(ctx, InputConfig{
			Message: field.Label(),
			Default: current,
			Help:    "Where replies should go, e.g. you@example.com.",
		})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message: field.Label(),
			Default: current,
		})
	}
}

func (r *Renderer) reportErrors(ctx context.Context, snap form.Snapshot) error {
	for _, issue := range snap.Errors.Issues() {
		if err := r.info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, issue.Field.Label(), issue.Message)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}
