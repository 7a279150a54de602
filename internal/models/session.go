package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the session token issued by the Cosyll API.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Viewer is the authenticated caller. It is passed explicitly to anything that needs
// ownership information; a nil Viewer is an anonymous visitor.
type Viewer struct {
	UserID string
	Email  string
	Name   string
	Token  string
}

// Owns reports whether the viewer owns a record created by ref.
func (v *Viewer) Owns(ref UserRef) bool {
	return v != nil && v.UserID != "" && v.UserID == ref.ID
}

// Authenticated reports whether the viewer carries a session token.
func (v *Viewer) Authenticated() bool {
	return v != nil && v.Token != ""
}

// LoginRequest holds credentials forwarded to the API.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the API's answer to a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ForgotPasswordRequest starts the password recovery flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes the password recovery flow.
type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// ConfirmAccountRequest confirms a freshly registered account.
type ConfirmAccountRequest struct {
	Token string `json:"token" validate:"required"`
}
