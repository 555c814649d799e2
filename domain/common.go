package domain

import (
	"errors"
)

const (
	RoleCaregiver = "caregiver"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID           = errors.New("failed to parse UUID")
	ErrUserNotAllowed      = errors.New("user not allowed")
	ErrTokenNotFound       = errors.New("failed to token not found")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUpstreamFailed      = errors.New("upstream service failed")
	ErrInvalidNumericField = errors.New("numeric field could not be converted to a number")
	ErrInvalidDocument     = errors.New("document does not match the expected shape")
)

const DateLayout = "2006-01-02"

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}
