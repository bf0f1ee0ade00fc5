// Package schema bridges JSON-schema validation into the result model: a
// document that fails validation becomes a resultado.Failure carrying one
// pointer-bearing ValidationError per schema violation.
package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	resultado "github.com/RickStanley/Resultado"
)

type (
	ValidationResult = gojsonschema.Result
	JSONLoader       = gojsonschema.JSONLoader
)

func NewStringLoader(s string) gojsonschema.JSONLoader {
	return gojsonschema.NewStringLoader(s)
}

func NewBytesLoader(b []byte) gojsonschema.JSONLoader {
	return gojsonschema.NewBytesLoader(b)
}

func NewGoLoader(v any) gojsonschema.JSONLoader {
	return gojsonschema.NewGoLoader(v)
}

func NewSchema(loader gojsonschema.JSONLoader) (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(loader)
}

func Validate(schemaLoader gojsonschema.JSONLoader, docLoader gojsonschema.JSONLoader) (*gojsonschema.Result, error) {
	return gojsonschema.Validate(schemaLoader, docLoader)
}

// AsValidationErrors converts every schema violation in result into a
// structured validation error. The violation's dotted field path becomes an
// RFC-6901 style pointer and its constraint type becomes the error code.
func AsValidationErrors(result *gojsonschema.Result) []resultado.ValidationError {
	if result == nil || result.Valid() {
		return nil
	}
	errs := make([]resultado.ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		opts := []resultado.ValidationErrorOption{
			resultado.WithCode(desc.Type()),
		}
		if ptr := fieldPointer(desc.Field()); ptr != "" {
			opts = append(opts, resultado.WithPointer(ptr))
		}
		errs = append(errs, resultado.NewValidationError(desc.Description(), opts...))
	}
	return errs
}

// FailIfInvalid folds the outcome of Validate into the result model. A
// system error yields a KindError failure wrapping ErrSchemaValidationSystem;
// an invalid document yields a KindInvalid validation failure. The second
// return is false when the document passed and there is no failure to
// report.
func FailIfInvalid(result *gojsonschema.Result, err error) (resultado.Failure, bool) {
	if err != nil {
		f := resultado.Fail(ErrSchemaValidationSystem.Error(),
			resultado.WithError(fmt.Errorf("%w: %v", ErrSchemaValidationSystem, err)))
		return f, true
	}
	if result.Valid() {
		return resultado.Failure{}, false
	}
	return resultado.FailValidation(ErrSchemaValidationFailed.Error(), AsValidationErrors(result)...), true
}

// fieldPointer converts gojsonschema's dotted field path ("items.0.name")
// into a pointer ("/items/0/name"). The "(root)" path means the document
// itself, which has no pointer.
func fieldPointer(field string) string {
	if field == "" || field == "(root)" {
		return ""
	}
	return "/" + strings.ReplaceAll(field, ".", "/")
}
