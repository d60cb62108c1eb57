package matrix

import (
	"errors"
	"fmt"
)

// MatrixError is the standard {errcode, error} body of a failed request.
type MatrixError struct {
	Code       string `json:"errcode"`
	Message    string `json:"error"`
	StatusCode int    `json:"-"`
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("matrix: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

const (
	ErrCodeForbidden    = "M_FORBIDDEN"
	ErrCodeUnknownToken = "M_UNKNOWN_TOKEN"
	ErrCodeNotFound     = "M_NOT_FOUND"
	ErrCodeUnknown      = "M_UNKNOWN"
)

// ErrNoSubject is returned when userinfo succeeds without a sub claim.
var ErrNoSubject = errors.New("matrix: openid userinfo has no sub")

func isNotFound(err error) bool {
	var matrixErr *MatrixError
	if errors.As(err, &matrixErr) {
		return matrixErr.Code == ErrCodeNotFound || matrixErr.StatusCode == 404
	}
	return false
}
