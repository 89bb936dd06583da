// Package actions implements the server-side mutation pipeline shared by the
// admin forms: authorize, resolve slug, upload, validate, check uniqueness or
// references, persist, invalidate caches, redirect. Every failure is returned
// as a structured Result; nothing propagates as a panic across a request.
package actions

import (
	"net/http"

	"github.com/Haris-56/coupon/pkg/forms"
)

type kind int

const (
	kindOK kind = iota
	kindUnauthorized
	kindInvalid
	kindFailed
	kindError
)

// Result is what a mutation action hands back to the form surface. Exactly
// one of the outcomes is populated: a redirect on success, a field error map
// on validation failure, or a message for everything else.
type Result struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message,omitempty"`
	Errors   forms.Errors `json:"errors,omitempty"`
	Redirect string       `json:"redirect,omitempty"`

	kind kind
}

// HTTPStatus maps the outcome onto a response code for the form surface.
func (r Result) HTTPStatus() int {
	switch r.kind {
	case kindUnauthorized:
		return http.StatusUnauthorized
	case kindInvalid, kindFailed:
		return http.StatusBadRequest
	case kindError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

func unauthorized() Result {
	return Result{Message: "Unauthorized", kind: kindUnauthorized}
}

// failed covers business failures the caller can act on: bad ids, missing
// references, rejected uploads.
func failed(message string) Result {
	return Result{Message: message, kind: kindFailed}
}

// serverError covers unexpected storage failures. The detail is logged at
// the call site; only the generic message reaches the caller.
func serverError(message string) Result {
	return Result{Message: message, kind: kindError}
}

func invalid(errs forms.Errors) Result {
	return Result{Errors: errs, kind: kindInvalid}
}

func redirectTo(path string) Result {
	return Result{Success: true, Redirect: path, kind: kindOK}
}

func done(message string) Result {
	return Result{Success: true, Message: message, kind: kindOK}
}
