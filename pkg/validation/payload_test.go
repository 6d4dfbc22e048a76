package validation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-portfolio/pkg/contact"
	"github.com/goliatone/go-portfolio/pkg/validation"
)

func TestCheckPayload_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		payload contact.Submission
		wantErr error
		want    contact.Outcome
	}{
		{
			name:    "missing name",
			payload: contact.Submission{Name: "", Email: "a@b.com", Subject: "Hi", Message: "This message is long enough."},
			wantErr: validation.ErrFieldsRequired,
			want:    contact.Outcome{Class: contact.ClassClientError, Message: "All fields are required."},
		},
		{
			name:    "bad email",
			payload: contact.Submission{Name: "Jo", Email: "not-an-email", Subject: "Hi", Message: "This message is long enough."},
			wantErr: validation.ErrInvalidEmail,
			want:    contact.Outcome{Class: contact.ClassClientError, Message: "Invalid email format."},
		},
		{
			name:    "valid",
			payload: contact.Submission{Name: "Jo", Email: "jo@example.com", Subject: "Hi", Message: "This message is long enough."},
			want:    contact.Outcome{Class: contact.ClassSuccess, Message: "Message sent successfully!"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.CheckPayload(tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if diff := cmp.Diff(tc.want, validation.Outcome(err)); diff != "" {
				t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckPayload_WhitespaceCountsAsPresent(t *testing.T) {
	payload := contact.Submission{Name: "   ", Email: "jo@example.com", Subject: "Hi", Message: "short"}
	if err := validation.CheckPayload(payload); err != nil {
		t.Fatalf("expected whitespace name and short message to pass the endpoint rules, got %v", err)
	}
	if errs := validation.ValidateForm(payload); errs[contact.FieldName] == "" {
		t.Fatalf("expected the form rules to reject the same name")
	}
}

func TestCheckPayload_EmailNotTrimmed(t *testing.T) {
	payload := contact.Submission{Name: "Jo", Email: " jo@example.com", Subject: "Hi", Message: "m"}
	if err := validation.CheckPayload(payload); !errors.Is(err, validation.ErrInvalidEmail) {
		t.Fatalf("expected leading whitespace to fail the email rule, got %v", err)
	}
}

func TestOutcome_UnknownErrorIsServerError(t *testing.T) {
	got := validation.Outcome(errors.New("boom"))
	if got.Class != contact.ClassServerError || got.Message != contact.MessageInternalError {
		t.Fatalf("unexpected outcome: %#v", got)
	}
}
