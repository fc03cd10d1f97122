/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally within
the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Room and Message Business Logic Errors
const (
	// ErrRoomNotFound indicates that the room targeted by the operation does not exist.
	ErrRoomNotFound = 2101

	// ErrRoomNameEmpty indicates that a rename was attempted with an empty room name.
	ErrRoomNameEmpty = 2102

	// ErrRoomPermanent indicates an attempt to end the permanent general room.
	ErrRoomPermanent = 2103

	// ErrMessageNotFound indicates that the message targeted by the operation does not exist.
	ErrMessageNotFound = 2201

	// ErrMessageEmpty indicates that a message was sent or edited with empty content.
	ErrMessageEmpty = 2202

	// ErrEmotionInvalid indicates that an unrecognized emotion tag was supplied.
	ErrEmotionInvalid = 2203
)

// 3xxx: Session and Authentication Errors
const (
	// ErrInvalidEmail indicates a missing or malformed email address.
	ErrInvalidEmail = 3001

	// ErrInvalidPassword indicates a missing or too-short password.
	ErrInvalidPassword = 3002

	// ErrNameRequired indicates that the sign-up name field was empty.
	ErrNameRequired = 3003

	// ErrPasswordMismatch indicates that the sign-up password confirmation did not match.
	ErrPasswordMismatch = 3004

	// ErrUnauthorized indicates that a valid session token is required.
	ErrUnauthorized = 3005
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
