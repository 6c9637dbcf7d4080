package trakt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amaumene/trakt-mcp/internal/errs"
)

func deviceAuthServer(t *testing.T, tokenHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/device/code", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("device code request body: %v", err)
		}
		if req["client_id"] != "test-client-id" {
			t.Errorf("client_id = %q, want %q", req["client_id"], "test-client-id")
		}
		json.NewEncoder(w).Encode(DeviceCodeResponse{
			DeviceCode:      "device-abc",
			UserCode:        "ABCD1234",
			VerificationURL: "https://trakt.tv/activate",
			ExpiresIn:       600,
			Interval:        5,
		})
	})
	mux.HandleFunc("/oauth/device/token", tokenHandler)
	return httptest.NewServer(mux)
}

func TestStartDeviceAuth(t *testing.T) {
	server := deviceAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("token endpoint called before any poll")
	})
	defer server.Close()

	c := newTestClient(t, server.URL)
	code, err := c.StartDeviceAuth(context.Background())
	if err != nil {
		t.Fatalf("StartDeviceAuth() error = %v", err)
	}
	if code.UserCode != "ABCD1234" {
		t.Errorf("UserCode = %q, want %q", code.UserCode, "ABCD1234")
	}
	if code.VerificationURL != "https://trakt.tv/activate" {
		t.Errorf("VerificationURL = %q, want %q", code.VerificationURL, "https://trakt.tv/activate")
	}
}

func TestCheckDeviceAuthWithoutStart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.CheckDeviceAuth(context.Background())
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("error = %v, want errs.ErrInvalidArgument", err)
	}
}

func TestCheckDeviceAuthPending(t *testing.T) {
	server := deviceAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"authorization_pending","error_description":"waiting for the user"}`))
	})
	defer server.Close()

	c := newTestClient(t, server.URL)
	if _, err := c.StartDeviceAuth(context.Background()); err != nil {
		t.Fatalf("StartDeviceAuth() error = %v", err)
	}

	_, err := c.CheckDeviceAuth(context.Background())
	if !errors.Is(err, ErrAuthPending) {
		t.Fatalf("error = %v, want ErrAuthPending", err)
	}
	if c.IsAuthenticated() {
		t.Error("IsAuthenticated() = true before authorization")
	}
}

func TestCheckDeviceAuthSuccess(t *testing.T) {
	server := deviceAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["code"] != "device-abc" {
			t.Errorf("code = %q, want %q", req["code"], "device-abc")
		}
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken:  "access-xyz",
			RefreshToken: "refresh-xyz",
			ExpiresIn:    7776000,
			TokenType:    "bearer",
		})
	})
	defer server.Close()

	c := newTestClient(t, server.URL)
	if _, err := c.StartDeviceAuth(context.Background()); err != nil {
		t.Fatalf("StartDeviceAuth() error = %v", err)
	}

	token, err := c.CheckDeviceAuth(context.Background())
	if err != nil {
		t.Fatalf("CheckDeviceAuth() error = %v", err)
	}
	if token.AccessToken != "access-xyz" {
		t.Errorf("AccessToken = %q, want %q", token.AccessToken, "access-xyz")
	}
	if !c.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after successful authorization")
	}

	// The pending device code is consumed; a second poll is a caller error.
	if _, err := c.CheckDeviceAuth(context.Background()); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("second poll error = %v, want errs.ErrInvalidArgument", err)
	}

	saved, err := c.tokenStore.GetToken()
	if err != nil {
		t.Fatalf("GetToken() error = %v", err)
	}
	if saved.RefreshToken != "refresh-xyz" {
		t.Errorf("saved RefreshToken = %q, want %q", saved.RefreshToken, "refresh-xyz")
	}
}

func TestRefreshIfNeeded(t *testing.T) {
	refreshed := false
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		refreshed = true
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["grant_type"] != "refresh_token" {
			t.Errorf("grant_type = %q, want %q", req["grant_type"], "refresh_token")
		}
		if req["refresh_token"] != "refresh-old" {
			t.Errorf("refresh_token = %q, want %q", req["refresh_token"], "refresh-old")
		}
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken:  "access-new",
			RefreshToken: "refresh-new",
			ExpiresIn:    7776000,
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	err := c.tokenStore.SaveToken(&Token{
		AccessToken:  "access-old",
		RefreshToken: "refresh-old",
		ExpiresAt:    time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}

	if err := c.RefreshIfNeeded(context.Background()); err != nil {
		t.Fatalf("RefreshIfNeeded() error = %v", err)
	}
	if !refreshed {
		t.Fatal("token expiring within 24h was not refreshed")
	}

	saved, err := c.tokenStore.GetToken()
	if err != nil {
		t.Fatalf("GetToken() error = %v", err)
	}
	if saved.AccessToken != "access-new" {
		t.Errorf("AccessToken = %q, want %q", saved.AccessToken, "access-new")
	}
}

func TestRefreshIfNeededSkipsFreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	saveTestToken(t, c, "access-fresh")

	if err := c.RefreshIfNeeded(context.Background()); err != nil {
		t.Fatalf("RefreshIfNeeded() error = %v", err)
	}
}

func TestRefreshIfNeededWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.RefreshIfNeeded(context.Background()); err != nil {
		t.Errorf("RefreshIfNeeded() without token error = %v, want nil", err)
	}
}

func TestClearAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	saveTestToken(t, c, "access-xyz")
	if !c.IsAuthenticated() {
		t.Fatal("IsAuthenticated() = false after saving a token")
	}

	if err := c.ClearAuth(); err != nil {
		t.Fatalf("ClearAuth() error = %v", err)
	}
	if c.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after ClearAuth")
	}

	// Clearing twice is fine.
	if err := c.ClearAuth(); err != nil {
		t.Errorf("second ClearAuth() error = %v", err)
	}
}
