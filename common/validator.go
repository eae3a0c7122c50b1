package common

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAndDecode decodes the JSON body into payload and runs struct
// validation. On failure it writes the 400 response itself and returns false
// so handlers can simply bail out.
func ValidateAndDecode(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		NewInvalidArgumentError("Invalid request body", err).Send(w)
		return false
	}

	if err := validate.Struct(payload); err != nil {
		NewInvalidArgumentError(err.Error(), err).Send(w)
		return false
	}

	return true
}
