/*
Package handler provides HTTP handler functions for the mock session gate.

No credential verification happens here by contract: the gate validates input shape
the same way the original form did, fabricates the {id, name, email} session record,
and issues a signed token wrapping it. Passwords are checked for length only and are
never stored, hashed, or compared against anything.
*/
package handler

import (
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"pingroom/internal/pkg/auth/jwt"
	"pingroom/internal/pkg/errs"
	"pingroom/internal/pkg/req"
	"pingroom/internal/pkg/resp"
)

// emailRegex mirrors the original form's check. It is deliberately loose.
var emailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)

// minPasswordLength is the only password rule the mock gate has.
const minPasswordLength = 6

// SessionUser is the session record returned to clients, who persist it locally.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin validates the credentials' shape and opens a session. The display name
// is derived from the email's local part, matching the original mock behavior.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := validateCredentials(input.Email, input.Password); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		name := strings.SplitN(input.Email, "@", 2)[0]

		openSession(w, r, deps, name, input.Email)
	}
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// HandleSignup validates the sign-up form and opens a session under the given name.
func HandleSignup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SignupInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := validateCredentials(input.Email, input.Password); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Name == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrNameRequired))
			return
		}

		if input.ConfirmPassword != input.Password {
			resp.RespondError(w, r, errs.NewError(errs.ErrPasswordMismatch))
			return
		}

		openSession(w, r, deps, input.Name, input.Email)
	}
}

// validateCredentials applies the original form's email and password rules.
func validateCredentials(email, password string) *errs.CustomError {
	if email == "" || !emailRegex.MatchString(email) {
		return errs.NewError(errs.ErrInvalidEmail)
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return errs.NewError(errs.ErrInvalidPassword)
	}

	return nil
}

// openSession fabricates the session record, signs a token around it, and responds
// with both.
func openSession(w http.ResponseWriter, r *http.Request, deps *AppDeps, name, email string) {
	record := SessionUser{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
	}

	payload := &jwt.Payload{
		ID:    record.ID,
		Name:  record.Name,
		Email: record.Email,
	}

	tokenString, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
	if err != nil {
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return
	}

	resp.RespondSuccess(w, r, map[string]any{
		"user":  record,
		"token": tokenString,
	})
}
