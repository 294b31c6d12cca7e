package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/atopal/blog-backend/internal/api/validate"
)

// bind decodes the JSON body into dst and runs its validation tags.
// Both failure modes come back as field-keyed validation errors.
func bind(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validate.Errs{{Field: "body", Msg: "malformed json"}}
	}
	return validate.Struct(dst)
}
