// Package site serves the portfolio page: the owner's profile next to a
// server-rendered contact form backed by a form.Controller.
package site
