// Package contact provides the contact submission endpoint as a small
// net/http component.
//
// The handler accepts POST requests carrying a JSON payload with name, email,
// subject and message. Every request is validated independently of any
// client checks, recorded through a Recorder, and answered with a JSON body
// of the form {"message": "..."}: 200 when recorded, 400 when the payload is
// rejected, 500 when anything unexpected happens. Internal detail is logged
// and never returned to the caller.
//
// The component also embeds an OpenAPI description of the endpoint, served by
// DocumentHandler next to the endpoint route.
package contact
