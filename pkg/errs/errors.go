package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer        = errors.New("Internal server error")
	ErrClient                = errors.New("Bad request")
	ErrNotLoggedIn           = errors.New("Unauthorized access")
	ErrInvalidCredentials    = errors.New("Email or password is incorrect")
	ErrForbidden             = errors.New("Forbidden access")
	ErrNotFound              = errors.New("Resource not found")
	ErrUserAlreadyExists     = errors.New("User already exists")
	ErrNamePriceRequired     = errors.New("name and price required")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrNegativePrice         = errors.New("price must be non-negative")
	ErrMissingRegisterFields = errors.New("username, email and password are required")
	ErrCorruptStore          = errors.New("Collection file is corrupted")
	ErrStorage               = errors.New("Storage failure")
)

var errorMap = map[error]int{
	ErrInternalServer:        http.StatusInternalServerError,
	ErrClient:                http.StatusBadRequest,
	ErrNotLoggedIn:           http.StatusUnauthorized,
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrForbidden:             http.StatusForbidden,
	ErrNotFound:              http.StatusNotFound,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrNamePriceRequired:     http.StatusBadRequest,
	ErrInvalidPrice:          http.StatusBadRequest,
	ErrNegativePrice:         http.StatusBadRequest,
	ErrMissingRegisterFields: http.StatusBadRequest,
	ErrCorruptStore:          http.StatusInternalServerError,
	ErrStorage:               http.StatusInternalServerError,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
