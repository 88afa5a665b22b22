// Package server provides the HTTP API for resume generation.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-forge/internal/eligibility"
	"github.com/jonathan/resume-forge/internal/profiles"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var rejection *eligibility.RejectionError
	if errors.As(err, &rejection) {
		return http.StatusBadRequest
	}
	var notFound *profiles.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	// Everything downstream of a valid request (upstream failures, refusals,
	// parse and schema failures, rendering, export) is a server error.
	return http.StatusInternalServerError
}
