// Package form implements the client side of the contact pipeline: a
// Controller that owns the field values, runs the form rule set, drives the
// submission lifecycle (idle, submitting, success, error) and talks to the
// endpoint through a Submitter.
//
// A Controller belongs to exactly one rendered form. It never shares state
// with other instances. The only scheduled work is the success dismissal
// timer; it is cancelled by any later status change and by Close.
package form
