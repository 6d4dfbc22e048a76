package site

import (
	"github.com/goliatone/go-portfolio/pkg/contact"
	"github.com/goliatone/go-portfolio/pkg/form"
)

// Profile is the owner information rendered in the page header.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Links    []Link `json:"links"`
}

type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Page is the view model handed to index.tmpl.
type Page struct {
	Profile Profile  `json:"profile"`
	Form    FormView `json:"form"`
}

type FormView struct {
	Action     string      `json:"action"`
	Status     form.Status `json:"status"`
	Banner     string      `json:"banner"`
	Submitting bool        `json:"submitting"`
	Fields     []FieldView `json:"fields"`
}

type FieldView struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	InputType string `json:"input_type"`
	Multiline bool   `json:"multiline"`
	Value     string `json:"value"`
	Error     string `json:"error"`
}

// NewPage projects a controller snapshot onto the view model.
func NewPage(profile Profile, action string, snap form.Snapshot) Page {
	fields := make([]FieldView, 0, len(contact.Fields()))
	for _, field := range contact.Fields() {
		view := FieldView{
			Name:      string(field),
			Label:     field.Label(),
			InputType: "text",
			Value:     snap.Values.Value(field),
			Error:     snap.Errors[field],
		}
		switch field {
		case contact.FieldEmail:
			view.InputType = "email"
		case contact.FieldMessage:
			view.Multiline = true
		}
		fields = append(fields, view)
	}

	return Page{
		Profile: profile,
		Form: FormView{
			Action:     action,
			Status:     snap.Status,
			Banner:     snap.Banner,
			Submitting: snap.Submitting(),
			Fields:     fields,
		},
	}
}
