package requests

import coreerrors "prixmalin-api/core/errors"

var (
	errEmptyPostalCode   error = &coreerrors.ValidationError{Field: "postal_code", Message: "is required"}
	errInvalidPostalCode error = &coreerrors.ValidationError{Field: "postal_code", Message: "must be five digits"}
	errEmptyStoreKey     error = &coreerrors.ValidationError{Field: "store_key", Message: "is required"}
	errEmptyStoreID      error = &coreerrors.ValidationError{Field: "store_id", Message: "is required"}
)
