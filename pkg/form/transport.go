package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/pkg/contact"
)

// Submitter delivers a payload to the endpoint. A non-nil error means the
// request could not complete; anything the endpoint answered is an Outcome.
type Submitter interface {
	Submit(ctx context.Context, payload contact.Submission) (contact.Outcome, error)
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, payload contact.Submission) (contact.Outcome, error)

func (fn SubmitterFunc) Submit(ctx context.Context, payload contact.Submission) (contact.Outcome, error) {
	return fn(ctx, payload)
}

const maxResponseBytes = 64 << 10

// HTTPSubmitter posts JSON payloads to the contact endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// HTTPOption configures an HTTPSubmitter.
type HTTPOption func(*HTTPSubmitter)

// WithHTTPClient overrides the client used for requests.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSubmitter) {
		if client != nil {
			s.client = client
		}
	}
}

// WithTimeout bounds each request. Zero leaves the request bounded only by
// the caller's context and the client's own settings.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSubmitter) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// NewHTTPSubmitter validates endpoint and returns a submitter for it.
func NewHTTPSubmitter(endpoint string, options ...HTTPOption) (*HTTPSubmitter, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("form: endpoint is required")
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("form: parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("form: endpoint %q must use http or https", endpoint)
	}

	s := &HTTPSubmitter{
		endpoint: parsed.String(),
		client:   http.DefaultClient,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Endpoint returns the URL requests are sent to.
func (s *HTTPSubmitter) Endpoint() string {
	return s.endpoint
}

// Submit sends payload and decodes the endpoint's answer. Non-2xx answers
// without a readable body become outcomes with an empty message; a 2xx
// answer that cannot be decoded is treated as a failed request.
func (s *HTTPSubmitter) Submit(ctx context.Context, payload contact.Submission) (contact.Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return contact.Outcome{}, fmt.Errorf("form: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return contact.Outcome{}, fmt.Errorf("form: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return contact.Outcome{}, fmt.Errorf("form: post %s: %w", s.endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return contact.Outcome{}, fmt.Errorf("form: read response: %w", err)
	}

	class := contact.ClassFromStatus(resp.StatusCode)
	var decoded contact.Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		if class == contact.ClassSuccess {
			return contact.Outcome{}, fmt.Errorf("form: decode response: %w", err)
		}
		decoded = contact.Response{}
	}

	return contact.Outcome{Class: class, Message: decoded.Message}, nil
}
