package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// validate checks request bodies. Field names in errors are the JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a single JSON object into dst, rejecting unknown fields,
// then validates it against its struct tags.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return &requestError{
				status:  http.StatusRequestEntityTooLarge,
				message: fmt.Sprintf("request body must not exceed %d bytes", tooLarge.Limit),
			}
		case errors.Is(err, io.EOF):
			return badRequest("request body is required")
		default:
			return badRequest("malformed JSON body: " + err.Error())
		}
	}
	if dec.More() {
		return badRequest("request body must contain a single JSON object")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}
	return nil
}

// fieldError turns the first failed rule into the domain's validation error.
func fieldError(fe validator.FieldError) *domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.Invalid(field, "%s is required", field)
	case "min":
		return domain.Invalid(field, "%s must be at least %s characters", field, fe.Param())
	case "email":
		return domain.Invalid(field, "%s must be a valid email address", field)
	case "http_url":
		return domain.Invalid(field, "%s must be an absolute http or https URL", field)
	default:
		return domain.Invalid(field, "%s is invalid", field)
	}
}

// pathUUID binds a path parameter as a UUID using the same binder the
// generated OpenAPI servers use.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, badRequest(fmt.Sprintf("invalid %s: must be a UUID", name))
	}
	return id, nil
}
