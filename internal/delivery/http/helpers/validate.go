package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxJSONBodyBytes caps JSON request bodies. File uploads use their own limit.
const maxJSONBodyBytes = 1 << 20

// Validator is implemented by request bodies that check their own fields.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate reads a single JSON object from the body into dest, rejecting
// unknown fields and trailing data, then runs dest's Validate if it has one.
// It writes a 400 and reports false on any failure.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if msg := decodeJSON(w, r, dest); msg != "" {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, msg)
		return false
	}
	v, ok := dest.(Validator)
	if !ok {
		return true
	}
	if problems := v.Validate(); len(problems) > 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(problems, "; "))
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) string {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(dest)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.As(err, &tooLarge):
		return "request body too large"
	case err != nil:
		return err.Error()
	}
	if dec.More() {
		return "request body must contain a single JSON object"
	}
	return ""
}
