package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// registerAndGetToken registers an admin account and returns its session token.
func registerAndGetToken(t *testing.T, server *httptest.Server, email string) string {
	t.Helper()

	payload := fmt.Sprintf(`{"email":%q,"display_name":"Admin","password":"longenough"}`, email)
	resp := postJSON(t, server.URL+"/api/auth/register", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}

	var body sessionResponse
	decodeBody(t, resp, &body)
	if body.Token == "" {
		t.Fatal("register: expected non-empty token")
	}
	return body.Token
}

func TestHandleRegister(t *testing.T) {
	server := setupTestServer(t)

	t.Run("creates account and returns session", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/auth/register",
			`{"email":"jane@example.com","display_name":"Jane","password":"longenough"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}

		var body sessionResponse
		decodeBody(t, resp, &body)
		if body.User == nil || body.User.Email != "jane@example.com" {
			t.Errorf("unexpected user in response: %+v", body.User)
		}
		if body.Token == "" {
			t.Error("expected non-empty token")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		payload := `{"email":"dup@example.com","display_name":"Dup","password":"longenough"}`
		resp := postJSON(t, server.URL+"/api/auth/register", payload)
		resp.Body.Close()

		resp = postJSON(t, server.URL+"/api/auth/register", payload)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("expected 409, got %d", resp.StatusCode)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/auth/register",
			`{"email":"weak@example.com","display_name":"Weak","password":"short"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/auth/register", `{"password":"longenough"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestHandleLogin(t *testing.T) {
	server := setupTestServer(t)

	register := `{"email":"jane@example.com","display_name":"Jane","password":"longenough"}`
	resp := postJSON(t, server.URL+"/api/auth/register", register)
	resp.Body.Close()

	t.Run("valid credentials return session", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/auth/login",
			`{"email":"jane@example.com","password":"longenough"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var body sessionResponse
		decodeBody(t, resp, &body)
		if body.Token == "" {
			t.Error("expected non-empty token")
		}
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/auth/login",
			`{"email":"jane@example.com","password":"wrong-password"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown email returns 401", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/auth/login",
			`{"email":"nobody@example.com","password":"longenough"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})
}
