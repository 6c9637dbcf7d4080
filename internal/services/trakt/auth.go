package trakt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amaumene/trakt-mcp/internal/errs"
)

// ErrAuthPending is returned while the user has not yet entered the device
// code on trakt.tv.
var ErrAuthPending = errors.New("authorization pending")

// DeviceCodeResponse represents the response from device code request
type DeviceCodeResponse struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURL string `json:"verification_url"`
	ExpiresIn       int    `json:"expires_in"`
	Interval        int    `json:"interval"`
}

// TokenResponse represents the response from token request
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// IsAuthenticated reports whether a user token is available.
func (c *Client) IsAuthenticated() bool {
	token, err := c.tokenStore.GetToken()
	return err == nil && token != nil && token.AccessToken != ""
}

// requireAuth returns ErrAuthRequired before any network call when no user
// token is available.
func (c *Client) requireAuth() error {
	if !c.IsAuthenticated() {
		return fmt.Errorf("no Trakt token, run the device authentication first: %w", errs.ErrAuthRequired)
	}
	return nil
}

// StartDeviceAuth requests a device code and remembers it for subsequent
// CheckDeviceAuth polls. The returned verification URL and user code are
// shown to the user.
func (c *Client) StartDeviceAuth(ctx context.Context) (*DeviceCodeResponse, error) {
	req := map[string]string{"client_id": c.clientID}

	var resp DeviceCodeResponse
	if err := c.doRequest(ctx, "POST", "/oauth/device/code", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to get device code: %w", err)
	}

	c.mu.Lock()
	c.pendingDevice = &resp
	c.mu.Unlock()

	c.logger.WithField("verification_url", resp.VerificationURL).Info("Device authentication started")
	return &resp, nil
}

// CheckDeviceAuth polls the token endpoint once for the pending device code.
// It returns ErrAuthPending while the user has not authorized yet, and saves
// the token on success.
func (c *Client) CheckDeviceAuth(ctx context.Context) (*Token, error) {
	c.mu.Lock()
	pending := c.pendingDevice
	c.mu.Unlock()

	if pending == nil {
		return nil, fmt.Errorf("no device authentication in progress: %w", errs.ErrInvalidArgument)
	}

	req := map[string]string{
		"code":          pending.DeviceCode,
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
	}

	var resp TokenResponse
	err := c.doRequest(ctx, "POST", "/oauth/device/token", req, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == 400 {
			// User has not entered the code yet
			return nil, ErrAuthPending
		}
		return nil, fmt.Errorf("device token poll failed: %w", err)
	}

	token := &Token{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	if err := c.tokenStore.SaveToken(token); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	c.mu.Lock()
	c.pendingDevice = nil
	c.mu.Unlock()

	c.logger.Info("Authentication successful")
	return token, nil
}

// WaitForAuthorization polls until the pending device code is authorized,
// expires, or ctx is cancelled. Used by the interactive login command.
func (c *Client) WaitForAuthorization(ctx context.Context) error {
	c.mu.Lock()
	pending := c.pendingDevice
	c.mu.Unlock()

	if pending == nil {
		return fmt.Errorf("no device authentication in progress: %w", errs.ErrInvalidArgument)
	}

	interval := time.Duration(pending.Interval) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	deadline := time.Now().Add(time.Duration(pending.ExpiresIn) * time.Second)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("device code expired before authorization")
			}
			_, err := c.CheckDeviceAuth(ctx)
			if errors.Is(err, ErrAuthPending) {
				c.logger.Debug("Waiting for user authorization...")
				continue
			}
			return err
		}
	}
}

// RefreshToken refreshes the access token using the refresh token
func (c *Client) RefreshToken(ctx context.Context) error {
	token, err := c.tokenStore.GetToken()
	if err != nil {
		return fmt.Errorf("no token to refresh: %w", err)
	}

	req := map[string]string{
		"refresh_token": token.RefreshToken,
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
		"grant_type":    "refresh_token",
	}

	var resp TokenResponse
	if err := c.doRequest(ctx, "POST", "/oauth/token", req, &resp); err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}

	newToken := &Token{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	if err := c.tokenStore.SaveToken(newToken); err != nil {
		return fmt.Errorf("failed to save refreshed token: %w", err)
	}

	c.logger.Info("Token refreshed successfully")
	return nil
}

// RefreshIfNeeded refreshes the token when it expires within 24 hours. A
// missing token is not an error; unauthenticated endpoints work without one.
func (c *Client) RefreshIfNeeded(ctx context.Context) error {
	token, err := c.tokenStore.GetToken()
	if err != nil || token == nil {
		return nil
	}

	if time.Until(token.ExpiresAt) < 24*time.Hour {
		c.logger.Info("Token expires soon, refreshing...")
		return c.RefreshToken(ctx)
	}

	return nil
}

// ClearAuth removes the stored token.
func (c *Client) ClearAuth() error {
	return c.tokenStore.ClearToken()
}
