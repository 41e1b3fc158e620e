package airtable

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	at "github.com/mehanizm/airtable"
)

// ErrNotFound is joined into errors for a missing record, base or table.
var ErrNotFound = errors.New("airtable: not found")

// notFoundTypes are the error types Airtable reports for missing rows,
// quoted as they appear in the response body.
var notFoundTypes = []string{`"NOT_FOUND"`, `"MODEL_ID_NOT_FOUND"`, `"ROW_DOES_NOT_EXIST"`}

// classify joins ErrNotFound into err when Airtable reported a missing row.
func classify(err error) error {
	var httpErr *at.HTTPClientError
	if !errors.As(err, &httpErr) {
		return err
	}
	if httpErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	body := httpErr.Error()
	for _, t := range notFoundTypes {
		if strings.Contains(body, t) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
	}
	return err
}
