package request

import (
	"net/http"
	"strings"

	"lodgehub/shared"
	"lodgehub/shared/constant"
	"lodgehub/shared/failure"
	"lodgehub/shared/validator"

	"github.com/go-chi/chi/v5"
)

// Int64Param reads a positive numeric path parameter.
func Int64Param(r *http.Request, name string) (int64, error) {
	value, err := shared.ConvertStringToInt64(chi.URLParam(r, name))
	if err != nil || value <= 0 {
		return 0, failure.BadRequestFromString("invalid " + name) // nolint:wrapcheck
	}

	return value, nil
}

func LodgeID(r *http.Request) (int64, error) {
	return Int64Param(r, constant.RequestParamLodgeID)
}

// Payload decodes and validates the JSON carried in the "payload" field of a multipart form.
func Payload[T any](r *http.Request, data *T) error {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return failure.BadRequestFromString("invalid multipart form") // nolint:wrapcheck
	}

	payload := r.FormValue(constant.FormFieldPayload)
	if payload == constant.Empty {
		return failure.BadRequestFromString(constant.FormFieldPayload + " is required") // nolint:wrapcheck
	}

	return validator.Validate(strings.NewReader(payload), data) // nolint:wrapcheck
}

// Owned hides rows of another lodge behind a not-found.
func Owned(lodgeID, owner int64, entity string) error {
	if lodgeID != owner {
		return failure.NotFound(entity + " not found") // nolint:wrapcheck
	}

	return nil
}
