package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/innoalumni/portalkit/internal/request"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(request.New(request.Config{BaseURL: srv.URL})), srv
}

func TestLogin_SendsFormAndKeepsToken(t *testing.T) {
	var sawAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/login":
			if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
				t.Fatalf("login must be form-encoded, got %q", ct)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if r.PostForm.Get("username") != "a@inno.ru" || r.PostForm.Get("password") != "pw" {
				t.Fatalf("unexpected credentials: %v", r.PostForm)
			}
			w.WriteHeader(200)
			_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
		case "/donation/":
			sawAuth = r.Header.Get("Authorization")
			w.WriteHeader(200)
			_, _ = w.Write([]byte(`[]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	tok, err := c.Login(context.Background(), "a@inno.ru", "pw")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tok.AccessToken != "tok-1" || tok.TokenType != "bearer" {
		t.Fatalf("unexpected token: %+v", tok)
	}

	// Subsequent calls carry the bearer token.
	if _, err := c.Donations(context.Background()); err != nil {
		t.Fatalf("donations: %v", err)
	}
	if sawAuth != "Bearer tok-1" {
		t.Fatalf("expected Authorization header with bearer token, got %q", sawAuth)
	}
}

func TestLogin_FailurePropagatesDetail(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		_, _ = w.Write([]byte(`{"detail":"Invalid Credentials"}`))
	})

	_, err := c.Login(context.Background(), "a@inno.ru", "wrong")
	var apiErr *request.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Detail != "Invalid Credentials" {
		t.Fatalf("expected detail from server, got %q", apiErr.Detail)
	}
}

func TestDonations_DecodesRecords(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/donation/" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`[{"id":"d1","message":"books","created_at":"2024-05-01T10:00:00Z","user":{"email":"a@inno.ru"}}]`))
	})

	out, err := c.Donations(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].ID != "d1" || out[0].User == nil || out[0].User.Email != "a@inno.ru" {
		t.Fatalf("unexpected donations: %+v", out)
	}
}

func TestOrderPass_PostsJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/request_pass/" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != request.DefaultContentType {
			t.Fatalf("expected default JSON content type, got %q", ct)
		}
		w.WriteHeader(201)
		_, _ = w.Write([]byte(`{"status":201,"detail":"Successfully created pass order"}`))
	})

	err := c.OrderPass(context.Background(), OrderPass{
		RequestedDate: "2024-06-01",
		Guests:        []string{"guest one"},
		Description:   "meetup",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRegister_ServerValidationSurfaces(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"detail":"Password doesn't match Confirm password"}`))
	})

	err := c.Register(context.Background(), SignUpUser{
		Name: "A", Email: "a@inno.ru", Password: "x", ConfirmPassword: "y",
	})
	var apiErr *request.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 400 {
		t.Fatalf("expected 400 APIError, got %v", err)
	}
}
