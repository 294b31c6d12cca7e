package services

import (
	"errors"

	"github.com/atopal/blog-backend/internal/api/validate"
	repo "github.com/atopal/blog-backend/internal/repository"
)

// asFieldError turns a store uniqueness violation into the field-keyed
// validation error the API reports as a 400. Everything else passes
// through untouched.
func asFieldError(err error) error {
	var dup *repo.DuplicateError
	if errors.As(err, &dup) {
		return validate.Errs{{Field: dup.Field, Msg: "already in use"}}
	}
	return err
}
