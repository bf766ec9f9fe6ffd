package dto

import (
	"net/http"

	"github.com/assettrack/backend/internal/domain/shared"
)

// Error code constants returned in the error envelope.
// Domain codes pass through unchanged; the generic ones below cover
// transport-level failures.

// General error codes
const (
	ErrCodeInternal = "INTERNAL_ERROR"
	ErrCodeUnknown  = "UNKNOWN_ERROR"
)

// Input error codes
const (
	ErrCodeValidation  = shared.CodeValidationFailed
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeInvalidJSON = "INVALID_JSON"
	ErrCodeInvalidID   = "INVALID_ID"
	ErrCodeTooLarge    = "REQUEST_TOO_LARGE"
)

// Authentication error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenRevoked       = "TOKEN_REVOKED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUserInactive       = "USER_INACTIVE"
)

// Resource error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeAssetNotFound      = "ASSET_NOT_FOUND"
	ErrCodeEmployeeNotFound   = "EMPLOYEE_NOT_FOUND"
	ErrCodeAssignmentNotFound = "ASSIGNMENT_NOT_FOUND"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
)

// Conflict error codes
const (
	ErrCodeDuplicateID        = shared.CodeDuplicateID
	ErrCodeDuplicateSerial    = shared.CodeDuplicateSerial
	ErrCodeDuplicateEmail     = shared.CodeDuplicateEmail
	ErrCodeAssetNotAvailable  = "ASSET_NOT_AVAILABLE"
	ErrCodeAlreadyAssigned    = "ALREADY_ASSIGNED"
	ErrCodeAlreadyReturned    = "ALREADY_RETURNED"
	ErrCodeNotActive          = "NOT_ACTIVE"
	ErrCodeCannotUpdateActive = "CANNOT_UPDATE_ACTIVE"
	ErrCodeHasActiveAssets    = "HAS_ACTIVE_ASSETS"
)

// Domain invariant error codes
const (
	ErrCodeInvalidCompany   = "INVALID_COMPANY"
	ErrCodeExitDateRequired = "EXIT_DATE_REQUIRED"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,
	ErrCodeUnknown:  http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,
	ErrCodeInvalidID:   http.StatusBadRequest,
	ErrCodeTooLarge:    http.StatusRequestEntityTooLarge,

	// Auth errors
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidToken:       http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeUserInactive:       http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeAssetNotFound:      http.StatusNotFound,
	ErrCodeEmployeeNotFound:   http.StatusNotFound,
	ErrCodeAssignmentNotFound: http.StatusNotFound,
	ErrCodeUserNotFound:       http.StatusNotFound,

	// Conflicts -> 409
	ErrCodeDuplicateID:        http.StatusConflict,
	ErrCodeDuplicateSerial:    http.StatusConflict,
	ErrCodeDuplicateEmail:     http.StatusConflict,
	ErrCodeAssetNotAvailable:  http.StatusConflict,
	ErrCodeAlreadyAssigned:    http.StatusConflict,
	ErrCodeAlreadyReturned:    http.StatusConflict,
	ErrCodeNotActive:          http.StatusConflict,
	ErrCodeCannotUpdateActive: http.StatusConflict,
	ErrCodeHasActiveAssets:    http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidCompany:   http.StatusUnprocessableEntity,
	ErrCodeExitDateRequired: http.StatusUnprocessableEntity,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// kindHTTPStatus is the fallback for domain codes missing from ErrorCodeHTTPStatus
var kindHTTPStatus = map[shared.ErrorKind]int{
	shared.KindValidation:   http.StatusBadRequest,
	shared.KindNotFound:     http.StatusNotFound,
	shared.KindConflict:     http.StatusConflict,
	shared.KindInvariant:    http.StatusUnprocessableEntity,
	shared.KindUnauthorized: http.StatusUnauthorized,
	shared.KindForbidden:    http.StatusForbidden,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// StatusForDomainError picks the status for err by code, then by kind
func StatusForDomainError(err *shared.DomainError) int {
	if status, ok := ErrorCodeHTTPStatus[NormalizeErrorCode(err.Code)]; ok {
		return status
	}
	if status, ok := kindHTTPStatus[err.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps older codes still emitted by some callers
var LegacyErrorCodeMapping = map[string]string{
	"INVALID_INPUT":    ErrCodeValidation,
	"VALIDATION_ERROR": ErrCodeValidation,
	"ALREADY_EXISTS":   ErrCodeDuplicateID,
	"ERR_INTERNAL":     ErrCodeInternal,
}

// NormalizeErrorCode converts a legacy error code to the current one.
// Unknown codes are returned as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
