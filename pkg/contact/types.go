package contact

import (
	"net/http"
	"strings"
	"time"
)

// Field identifies one of the contact form inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields returns the form fields in display order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}
}

// ParseField resolves a raw input name into a Field.
func ParseField(raw string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(raw))) {
	case FieldName:
		return FieldName, true
	case FieldEmail:
		return FieldEmail, true
	case FieldSubject:
		return FieldSubject, true
	case FieldMessage:
		return FieldMessage, true
	default:
		return "", false
	}
}

// Label returns the human facing label for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldSubject:
		return "Subject"
	case FieldMessage:
		return "Message"
	default:
		return string(f)
	}
}

// Submission is the payload sent from the form to the endpoint.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Value returns the value held for field.
func (s Submission) Value(field Field) string {
	switch field {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldSubject:
		return s.Subject
	case FieldMessage:
		return s.Message
	default:
		return ""
	}
}

// With returns a copy of s with field set to value. Unknown fields leave s
// unchanged.
func (s Submission) With(field Field, value string) Submission {
	switch field {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldSubject:
		s.Subject = value
	case FieldMessage:
		s.Message = value
	}
	return s
}

// Record is a validated submission as handed to a recording sink.
type Record struct {
	ID         string
	Submission Submission
	ReceivedAt time.Time
}

// Class classifies an endpoint outcome.
type Class string

const (
	ClassSuccess     Class = "success"
	ClassClientError Class = "client-error"
	ClassServerError Class = "server-error"
)

const (
	MessageSent           = "Message sent successfully!"
	MessageFieldsRequired = "All fields are required."
	MessageInvalidEmail   = "Invalid email format."
	MessageInternalError  = "Internal server error"
)

// Outcome is the result of handling one submission.
type Outcome struct {
	Class   Class
	Message string
}

// Success reports whether the outcome signals a delivered submission.
func (o Outcome) Success() bool {
	return o.Class == ClassSuccess
}

// StatusCode maps the classification onto an HTTP status.
func (o Outcome) StatusCode() int {
	switch o.Class {
	case ClassSuccess:
		return http.StatusOK
	case ClassClientError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Response returns the wire body for the outcome.
func (o Outcome) Response() Response {
	return Response{Message: o.Message}
}

// Response is the JSON body returned by the endpoint.
type Response struct {
	Message string `json:"message"`
}

// Sent, Rejected and Failed build the three outcome kinds.
func Sent() Outcome {
	return Outcome{Class: ClassSuccess, Message: MessageSent}
}

func Rejected(message string) Outcome {
	return Outcome{Class: ClassClientError, Message: message}
}

func Failed() Outcome {
	return Outcome{Class: ClassServerError, Message: MessageInternalError}
}

// ClassFromStatus classifies an HTTP status code received by a client.
func ClassFromStatus(code int) Class {
	switch {
	case code >= 200 && code < 300:
		return ClassSuccess
	case code >= 400 && code < 500:
		return ClassClientError
	default:
		return ClassServerError
	}
}
