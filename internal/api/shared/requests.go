package shared

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Building a validator compiles
// the tag metadata, so handlers reuse a single one.
var validate = validator.New()

// selfValidator is implemented by request types that carry their own
// validation logic instead of struct tags.
type selfValidator interface {
	Validate() error
}

// DecodeJSON decodes the request body into v, rejecting fields the target
// struct does not declare.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

// ValidateRequest validates a decoded request, preferring the type's own
// Validate method over its struct tags.
func ValidateRequest(v any) error {
	if sv, ok := v.(selfValidator); ok {
		return sv.Validate()
	}
	return validate.Struct(v)
}
