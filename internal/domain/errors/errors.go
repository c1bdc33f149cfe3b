// Package errors defines the application-level error contract: coded
// business errors that the delivery layer renders as `{"error": message}`
// responses with a 400-class status.
package errors

import (
	"fmt"
	"net/http"

	"mutualaid/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// The message strings below are part of the wire contract and must not be
// reworded; clients match on them.
var (
	// Lookup failures.
	ErrHelpRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"HELP_REQUEST_NOT_FOUND",
		"Help request not found",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Offer not found",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
	)

	ErrNoUserHelpRequests = NewBaseError(
		http.StatusBadRequest,
		"NO_USER_HELP_REQUESTS",
		"User doesn't have any help requests",
	)

	// Search input and result errors. Empty search results are reported
	// through the error channel, matching the upstream wire behavior.
	ErrCoordinatesRequired = NewBaseError(
		http.StatusBadRequest,
		"COORDINATES_REQUIRED",
		"Coordinates are required",
	)

	ErrStatusListRequired = NewBaseError(
		http.StatusBadRequest,
		"STATUS_LIST_REQUIRED",
		"Status List is required",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Invalid status",
	)

	ErrNoWaitingHelpRequests = NewBaseError(
		http.StatusBadRequest,
		"NO_WAITING_HELP_REQUESTS",
		"Help requests not found in your distance range",
	)

	ErrNoWaitingOffers = NewBaseError(
		http.StatusBadRequest,
		"NO_WAITING_OFFERS",
		"Offers not found in your distance range",
	)

	// Candidate roster violations.
	ErrOwnHelpRequest = NewBaseError(
		http.StatusBadRequest,
		"OWN_HELP_REQUEST",
		"You can't be a helper in your own help request",
	)

	ErrHelpRequestTaken = NewBaseError(
		http.StatusBadRequest,
		"HELP_REQUEST_TAKEN",
		"Help request already has a helper",
	)

	ErrAlreadyPossibleHelper = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_POSSIBLE_HELPER",
		"User is already a possible helper",
	)

	ErrNotPossibleHelper = NewBaseError(
		http.StatusBadRequest,
		"NOT_POSSIBLE_HELPER",
		"Chosen helper is not a possible helper",
	)

	ErrOwnOffer = NewBaseError(
		http.StatusBadRequest,
		"OWN_OFFER",
		"Owner of the offer cannot be a helped user",
	)

	ErrOfferTaken = NewBaseError(
		http.StatusBadRequest,
		"OFFER_TAKEN",
		"Offer already is being helped",
	)

	ErrAlreadyPossibleHelpedUser = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_POSSIBLE_HELPED_USER",
		"User is already a possible helped user",
	)

	ErrNotPossibleHelpedUser = NewBaseError(
		http.StatusBadRequest,
		"NOT_POSSIBLE_HELPED_USER",
		"User is not a possible helped user",
	)

	// Confirmation and authorization errors.
	ErrNotHelper = NewBaseError(
		http.StatusForbidden,
		"NOT_HELPER",
		"User is not the helper of this help request",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"User is not the owner of this help request",
	)

	ErrHelperAlreadyConfirmed = NewBaseError(
		http.StatusBadRequest,
		"HELPER_ALREADY_CONFIRMED",
		"User has already finished this help request",
	)

	ErrOwnerAlreadyConfirmed = NewBaseError(
		http.StatusBadRequest,
		"OWNER_ALREADY_CONFIRMED",
		"User has already confirmed this help request",
	)

	ErrHelpRequestFinished = NewBaseError(
		http.StatusBadRequest,
		"HELP_REQUEST_FINISHED",
		"Help request is already finished",
	)

	ErrNotAuthorized = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHORIZED",
		"User not authorized",
	)

	// Concurrency guard (optimistic version check at persist time).
	ErrConcurrentModification = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_MODIFICATION",
		"Request was modified by another operation, please retry",
	)

	// Account errors.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email is already registered",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// NewHelpRequestLimitError reports the per-owner cap on simultaneously
// active help requests, naming the configured maximum.
func NewHelpRequestLimitError(maxActive int) AppError {
	return NewBaseError(
		http.StatusBadRequest,
		"HELP_REQUEST_LIMIT_REACHED",
		fmt.Sprintf("User has reached the maximum number of help requests: %d", maxActive),
	)
}
