// Package validate decodes JSON request bodies and checks them against
// `validate` struct tags. Field names in messages use the JSON tag.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"financespace/internal/domain/entity"
)

// ErrBodyTooLarge is returned when the body exceeds the server limit.
var ErrBodyTooLarge = errors.New("request body too large")

// Validator wraps a configured go-playground validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator reporting JSON field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Struct validates s. Failures come back as *entity.ValidationError naming
// the first offending field in alphabetical order, with every failure listed
// in the message.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Field(), describe(fe)))
	}
	sort.Strings(fields)
	sort.Strings(msgs)
	return &entity.ValidationError{Field: fields[0], Message: strings.Join(msgs, "; ")}
}

// DecodeJSON reads one JSON object from r.Body into dst and validates it.
// Unknown fields are ignored. Errors wrap entity.ErrInvalidInput, except an
// oversized body which is ErrBodyTooLarge.
func (val *Validator) DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return ErrBodyTooLarge
		case errors.Is(err, io.EOF):
			return &entity.ValidationError{Field: "body", Message: "request body is required"}
		default:
			return &entity.ValidationError{Field: "body", Message: "invalid JSON: " + err.Error()}
		}
	}
	return val.Struct(dst)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
