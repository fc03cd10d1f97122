/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
// A zero Status defaults to 400 Bad Request in NewError.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Room and Message Business Logic Errors
	ErrRoomNotFound:    {Code: ErrRoomNotFound, Message: "Chat room not found.", Status: http.StatusNotFound},
	ErrRoomNameEmpty:   {Code: ErrRoomNameEmpty, Message: "Room name cannot be empty."},
	ErrRoomPermanent:   {Code: ErrRoomPermanent, Message: "The general room cannot be ended."},
	ErrMessageNotFound: {Code: ErrMessageNotFound, Message: "Message not found.", Status: http.StatusNotFound},
	ErrMessageEmpty:    {Code: ErrMessageEmpty, Message: "Message content cannot be empty."},
	ErrEmotionInvalid:  {Code: ErrEmotionInvalid, Message: "Unrecognized emotion tag."},

	// 3xxx: Session and Authentication Errors
	ErrInvalidEmail:     {Code: ErrInvalidEmail, Message: "Please enter a valid email."},
	ErrInvalidPassword:  {Code: ErrInvalidPassword, Message: "Password must be at least 6 characters."},
	ErrNameRequired:     {Code: ErrNameRequired, Message: "Name is required."},
	ErrPasswordMismatch: {Code: ErrPasswordMismatch, Message: "Passwords do not match."},
	ErrUnauthorized:     {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
