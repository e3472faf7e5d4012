// Package api provides typed operations over the alumni portal's HTTP API.
// Each method is a thin layer on the request sender: it shapes the payload,
// issues one call and decodes the JSON result. Failure semantics (detail
// extraction, notification) live in the sender, not here.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/innoalumni/portalkit/internal/request"
	"golang.org/x/oauth2"
)

// Client calls the portal backend through a configured Sender.
type Client struct {
	sender *request.Sender
}

// NewClient returns a Client issuing calls through s.
func NewClient(s *request.Sender) *Client {
	return &Client{sender: s}
}

// Sender exposes the underlying sender for generic calls.
func (c *Client) Sender() *request.Sender {
	return c.sender
}

// Login authenticates against /user/login and returns the bearer token.
// The endpoint consumes an OAuth2 password form, so the default JSON content
// type is suppressed in favor of form encoding.
func (c *Client) Login(ctx context.Context, email, password string) (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	res, err := c.sender.Send(ctx, "/user/login", request.Options{
		Headers:                map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		Body:                   form.Encode(),
		OmitDefaultContentType: true,
	})
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(res.Body, &tok); err != nil {
		return nil, fmt.Errorf("api: decode login response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("api: login response carried no access token")
	}
	c.sender.UseToken(tok.AccessToken)
	return &tok, nil
}

// Register creates a new alumni account.
func (c *Client) Register(ctx context.Context, u SignUpUser) error {
	_, err := c.sender.Send(ctx, "/user/register", request.Options{Body: u})
	return err
}

// Donations lists all alumni donations, newest first.
func (c *Client) Donations(ctx context.Context) ([]Donation, error) {
	res, err := c.sender.Send(ctx, "/donation/", request.Options{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	var out []Donation
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, fmt.Errorf("api: decode donations: %w", err)
	}
	return out, nil
}

// MakeDonation records a donation with the given message.
func (c *Client) MakeDonation(ctx context.Context, message string) error {
	_, err := c.sender.Send(ctx, "/donation/", request.Options{
		Body: map[string]string{"message": message},
	})
	return err
}

// PassRequests lists the caller's campus pass requests, newest first.
func (c *Client) PassRequests(ctx context.Context) ([]PassRequest, error) {
	res, err := c.sender.Send(ctx, "/request_pass/", request.Options{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	var out []PassRequest
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, fmt.Errorf("api: decode pass requests: %w", err)
	}
	return out, nil
}

// OrderPass submits a new pass request.
func (c *Client) OrderPass(ctx context.Context, req OrderPass) error {
	_, err := c.sender.Send(ctx, "/request_pass/", request.Options{Body: req})
	return err
}

// ElectiveCourses lists courses currently open to alumni.
func (c *Client) ElectiveCourses(ctx context.Context) ([]ElectiveCourse, error) {
	res, err := c.sender.Send(ctx, "/elective_course/", request.Options{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	var out []ElectiveCourse
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, fmt.Errorf("api: decode courses: %w", err)
	}
	return out, nil
}
