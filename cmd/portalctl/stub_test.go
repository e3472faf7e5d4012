package main

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/innoalumni/portalkit/internal/api"
	"github.com/innoalumni/portalkit/internal/request"
)

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerStubRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestStub_LoginRoundTrip(t *testing.T) {
	srv := newStubServer(t)
	c := api.NewClient(request.New(request.Config{BaseURL: srv.URL}))

	tok, err := c.Login(context.Background(), "a@inno.ru", "pw")
	if err != nil {
		t.Fatalf("login against stub: %v", err)
	}
	if tok.AccessToken != "stub-token" {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestStub_LoginFailureFollowsDetailContract(t *testing.T) {
	srv := newStubServer(t)
	c := api.NewClient(request.New(request.Config{BaseURL: srv.URL}))

	_, err := c.Login(context.Background(), "", "")
	var apiErr *request.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError from stub, got %v", err)
	}
	if apiErr.Detail != "Invalid Credentials" {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
}

func TestStub_DonationsListDecodes(t *testing.T) {
	srv := newStubServer(t)
	c := api.NewClient(request.New(request.Config{BaseURL: srv.URL}))

	donations, err := c.Donations(context.Background())
	if err != nil {
		t.Fatalf("donations: %v", err)
	}
	if len(donations) != 2 || donations[0].ID != "d1" {
		t.Fatalf("unexpected donations: %+v", donations)
	}
}

func TestParseHeaders(t *testing.T) {
	hdrs, err := parseHeaders([]string{"X-A=1", "X-B = two "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hdrs["X-A"] != "1" || hdrs["X-B"] != "two" {
		t.Fatalf("unexpected headers: %v", hdrs)
	}

	if _, err := parseHeaders([]string{"missing-separator"}); err == nil {
		t.Fatalf("expected error for malformed header")
	}
	if hdrs, err := parseHeaders(nil); err != nil || hdrs != nil {
		t.Fatalf("empty input must yield nil, got %v %v", hdrs, err)
	}
}
