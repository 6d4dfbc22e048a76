package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-portfolio/pkg/contact"
	"github.com/goliatone/go-portfolio/pkg/validation"
)

func validSubmission() contact.Submission {
	return contact.Submission{
		Name:    "Jo",
		Email:   "jo@example.com",
		Subject: "Hi",
		Message: "This message is long enough.",
	}
}

func TestValidateForm_ValidSubmission(t *testing.T) {
	errs := validation.ValidateForm(validSubmission())
	if !errs.Empty() {
		t.Fatalf("expected no errors, got %#v", errs)
	}
}

func TestValidateForm_RequiredFieldsTrimmed(t *testing.T) {
	cases := []struct {
		field contact.Field
		want  string
	}{
		{contact.FieldName, validation.MessageNameRequired},
		{contact.FieldEmail, validation.MessageEmailRequired},
		{contact.FieldSubject, validation.MessageSubjectRequired},
		{contact.FieldMessage, validation.MessageMessageRequired},
	}

	for _, tc := range cases {
		for _, blank := range []string{"", " ", "\t\n  "} {
			sub := validSubmission().With(tc.field, blank)
			got := validation.ValidateForm(sub)
			want := validation.FieldErrors{tc.field: tc.want}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("field %s value %q mismatch (-want +got):\n%s", tc.field, blank, diff)
			}
		}
	}
}

func TestValidateForm_EmailShape(t *testing.T) {
	rejected := []string{"not-an-email", "jo@example", "@example.com", "jo@.com.", "jo example@x.com", "jo@@x.com"}
	for _, email := range rejected {
		got := validation.ValidateForm(validSubmission().With(contact.FieldEmail, email))
		if got[contact.FieldEmail] != validation.MessageEmailInvalid {
			t.Fatalf("expected %q to be rejected, got %#v", email, got)
		}
	}

	accepted := []string{"a@b.c", "jo@example.com", "first.last@sub.domain.org", "  jo@example.com  "}
	for _, email := range accepted {
		got := validation.ValidateForm(validSubmission().With(contact.FieldEmail, email))
		if !got.Empty() {
			t.Fatalf("expected %q to be accepted, got %#v", email, got)
		}
	}
}

func TestValidateForm_MessageLength(t *testing.T) {
	// Scenario D: a short message only flags the message field.
	got := validation.ValidateForm(validSubmission().With(contact.FieldMessage, "short"))
	want := validation.FieldErrors{contact.FieldMessage: "Message should be at least 20 characters"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	if got := validation.ValidateField(contact.FieldMessage, "1234567890123456789"); got != validation.MessageMessageTooShort {
		t.Fatalf("expected 19 chars to be too short, got %q", got)
	}
	if got := validation.ValidateField(contact.FieldMessage, "12345678901234567890"); got != "" {
		t.Fatalf("expected 20 chars to pass, got %q", got)
	}
	if got := validation.ValidateField(contact.FieldMessage, "çççççççççççççççççççç"); got != "" {
		t.Fatalf("expected 20 runes to pass, got %q", got)
	}
}

func TestValidateForm_Idempotent(t *testing.T) {
	sub := contact.Submission{Name: " ", Email: "nope", Message: "short"}
	first := validation.ValidateForm(sub)
	second := validation.ValidateForm(sub)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated validation differs (-first +second):\n%s", diff)
	}
	if len(first) != 4 {
		t.Fatalf("expected all four fields flagged, got %#v", first)
	}
}

func TestFieldErrors_IssuesInFormOrder(t *testing.T) {
	errs := validation.FieldErrors{
		contact.FieldMessage: "m",
		contact.FieldName:    "n",
		contact.FieldEmail:   "e",
	}
	want := []validation.Issue{
		{Field: contact.FieldName, Message: "n"},
		{Field: contact.FieldEmail, Message: "e"},
		{Field: contact.FieldMessage, Message: "m"},
	}
	if diff := cmp.Diff(want, errs.Issues()); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}
