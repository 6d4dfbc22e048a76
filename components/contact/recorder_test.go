package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	pkgcontact "github.com/goliatone/go-portfolio/pkg/contact"
)

func TestLogRecorder_WritesStructuredEntry(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	recorder := NewLogRecorder(zap.New(core))

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := recorder.Record(context.Background(), pkgcontact.Record{
		ID: "abc",
		Submission: pkgcontact.Submission{
			Name:    "<b>Jo</b>",
			Email:   "jo@example.com",
			Subject: "Q & A",
			Message: "Hello <script>alert(1)</script>there, long enough text.",
		},
		ReceivedAt: at,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	want := map[string]any{
		"submission_id": "abc",
		"name":          "Jo",
		"email":         "jo@example.com",
		"subject":       "Q & A",
		"message":       "Hello there, long enough text.",
		"timestamp":     at,
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiRecorder_StopsAtFirstError(t *testing.T) {
	first := &captureRecorder{err: errors.New("first failed")}
	second := &captureRecorder{}

	err := MultiRecorder(first, nil, second).Record(context.Background(), pkgcontact.Record{ID: "x"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(first.records) != 1 || len(second.records) != 0 {
		t.Fatalf("unexpected fan-out: %d/%d", len(first.records), len(second.records))
	}
}

func TestService_LogsRejectionsWithSubmissionID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(
		WithLogger(zap.New(core)),
		WithRecorder(&captureRecorder{}),
		WithIDGenerator(func() string { return "id-7" }),
	)

	outcome := svc.Submit(context.Background(), pkgcontact.Submission{Name: "Jo"})
	if outcome.Class != pkgcontact.ClassClientError {
		t.Fatalf("unexpected outcome %#v", outcome)
	}

	rejected := logs.FilterMessage("contact submission rejected").All()
	if len(rejected) != 1 {
		t.Fatalf("expected one rejection entry, got %d", len(rejected))
	}
	if got := rejected[0].ContextMap()["submission_id"]; got != "id-7" {
		t.Fatalf("unexpected submission id %v", got)
	}
}

func TestService_CancelledContextIsServerError(t *testing.T) {
	recorder := &captureRecorder{}
	svc := NewService(WithRecorder(recorder))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcome := svc.Submit(ctx, pkgcontact.Submission{
		Name: "Jo", Email: "jo@example.com", Subject: "Hi", Message: "This message is long enough.",
	})
	if outcome.Class != pkgcontact.ClassServerError {
		t.Fatalf("unexpected outcome %#v", outcome)
	}
	if len(recorder.records) != 0 {
		t.Fatalf("expected nothing recorded")
	}
}
