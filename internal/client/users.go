package client

import (
	"context"
	"net/http"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
)

// ListUsers fetches every public profile.
func (c *Client) ListUsers(ctx context.Context, viewer *models.Viewer) ([]models.User, error) {
	var listing models.UserListing
	if err := c.do(ctx, "list_users", http.MethodGet, endpoint("users"), viewer, nil, &listing); err != nil {
		return nil, err
	}
	return listing.Users, nil
}

// GetUser fetches one profile with its syllabi and collections.
func (c *Client) GetUser(ctx context.Context, viewer *models.Viewer, id string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, "get_user", http.MethodGet, endpoint("users", id), viewer, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser patches a profile.
func (c *Client) UpdateUser(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, "update_user", http.MethodPatch, endpoint("users", id), viewer, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, viewer *models.Viewer, id string) error {
	return c.do(ctx, "delete_user", http.MethodDelete, endpoint("users", id), viewer, nil, nil)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, endpoint("auth", "login"), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword asks the API to mail a recovery link.
func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return c.do(ctx, "forgot_password", http.MethodPost, endpoint("auth", "password", "forgot"), nil, req, nil)
}

// ResetPassword sets a new password with a recovery token.
func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	body := struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}{Token: req.Token, Password: req.Password}
	return c.do(ctx, "reset_password", http.MethodPost, endpoint("auth", "password", "reset"), nil, body, nil)
}

// ConfirmAccount activates an account with its confirmation token.
func (c *Client) ConfirmAccount(ctx context.Context, req models.ConfirmAccountRequest) error {
	return c.do(ctx, "confirm_account", http.MethodPost, endpoint("auth", "confirm"), nil, req, nil)
}

// ResendConfirmation mails a new confirmation token.
func (c *Client) ResendConfirmation(ctx context.Context, req models.ForgotPasswordRequest) error {
	return c.do(ctx, "resend_confirmation", http.MethodPost, endpoint("auth", "confirm", "resend"), nil, req, nil)
}
