// Package server provides the HTTP REST API for the manuscript reviewer.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/manuscript-reviewer/internal/review"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Reviewer-reported errors (missing credential, upstream failure, contract
// violation) all surface as 500 per the analyze endpoint contract.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *review.ErrMissingAPIKey, *review.UpstreamError, *review.ContractError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
