package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"TabHome/internal/config"
)

func authServer(t *testing.T, path string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if status == http.StatusOK {
			http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-123"})
		}
		w.WriteHeader(status)
	}))
}

func TestLogin_Run(t *testing.T) {
	dir := withTempConfig(t)

	t.Run("ok stores token", func(t *testing.T) {
		ts := authServer(t, "/api/user/login", http.StatusOK)
		defer ts.Close()
		cfg := &config.Config{ServerURL: ts.URL}

		out := withStdoutCapture(t, func() {
			if err := (loginCmd{}).Run(context.Background(), cfg, []string{"alice", "secret123"}); err != nil {
				t.Fatalf("login failed: %v", err)
			}
		})
		if !strings.Contains(out, "Logged in successfully") {
			t.Fatalf("confirmation expected, got: %s", out)
		}

		b, err := os.ReadFile(filepath.Join(dir, "TabHome", "auth_token"))
		if err != nil {
			t.Fatalf("token file: %v", err)
		}
		if string(b) != "tok-123" {
			t.Fatalf("token mismatch: %s", b)
		}
	})

	t.Run("unauthorized", func(t *testing.T) {
		ts := authServer(t, "/api/user/login", http.StatusUnauthorized)
		defer ts.Close()
		err := (loginCmd{}).Run(context.Background(), &config.Config{ServerURL: ts.URL}, []string{"alice", "bad"})
		if err == nil || !strings.Contains(err.Error(), "invalid login or password") {
			t.Fatalf("unauthorized error expected, got: %v", err)
		}
	})

	t.Run("usage", func(t *testing.T) {
		if err := (loginCmd{}).Run(context.Background(), &config.Config{}, []string{"only-login"}); err != ErrUsage {
			t.Fatalf("ErrUsage expected, got: %v", err)
		}
	})
}

func TestRegister_Run(t *testing.T) {
	withTempConfig(t)

	t.Run("ok", func(t *testing.T) {
		ts := authServer(t, "/api/user/register", http.StatusOK)
		defer ts.Close()
		out := withStdoutCapture(t, func() {
			if err := (registerCmd{}).Run(context.Background(), &config.Config{ServerURL: ts.URL}, []string{"bob", "secret123"}); err != nil {
				t.Fatalf("register failed: %v", err)
			}
		})
		if !strings.Contains(out, "Registered successfully") {
			t.Fatalf("confirmation expected, got: %s", out)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ts := authServer(t, "/api/user/register", http.StatusConflict)
		defer ts.Close()
		err := (registerCmd{}).Run(context.Background(), &config.Config{ServerURL: ts.URL}, []string{"bob", "secret123"})
		if err == nil || !strings.Contains(err.Error(), "already in use") {
			t.Fatalf("conflict error expected, got: %v", err)
		}
	})
}
