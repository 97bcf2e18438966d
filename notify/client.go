// Package notify sends push notifications through the Pushover message API.
//
// Each Send is a single synchronous, best-effort HTTP POST: there is no
// retry, queueing, or offline buffering. Callers needing delivery
// guarantees must layer their own policy on top.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBaseURL is the push service endpoint the client talks to.
	DefaultBaseURL = "https://api.pushover.net"

	// messagesPath is the fixed message-submission path under the base URL.
	messagesPath = "/1/messages.json"

	// DefaultTimeout bounds each send so a stalled connection cannot block
	// the caller indefinitely.
	DefaultTimeout = 10 * time.Second

	// apiStatusOK is the status value the service reports for accepted
	// messages.
	apiStatusOK = 1
)

// HTTPClient defines the interface the client needs from an HTTP
// implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends title/message pairs to the account identified by a user key
// and an application token.
type Client struct {
	userKey    string
	appToken   string
	baseURL    string
	httpClient HTTPClient
	logger     Logger
	validate   *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client (useful for testing or for
// callers imposing their own timeout).
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the service base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// WithLogger attaches a logger for the client's own diagnostics. The
// default discards them.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for the given user key and application token. Both
// are required; an error is returned if either is empty.
func New(userKey, appToken string, opts ...Option) (*Client, error) {
	c := &Client{
		userKey:  userKey,
		appToken: appToken,
		baseURL:  DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:   nopLogger{},
		validate: validator.New(),
	}

	if err := c.validate.Struct(credentials{UserKey: userKey, AppToken: appToken}); err != nil {
		return nil, fmt.Errorf("notify: invalid credentials: %w", err)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Send delivers one notification. Both title and message are required.
//
// It returns a *DeliveryError when the service answers with a non-success
// response and a *TransportError when the request never completes (timeout,
// DNS failure, connection refused).
func (c *Client) Send(ctx context.Context, title, message string) error {
	if err := c.validate.Struct(payload{Title: title, Message: message}); err != nil {
		return fmt.Errorf("notify: invalid message: %w", err)
	}

	form := url.Values{}
	form.Set("token", c.appToken)
	form.Set("user", c.userKey)
	form.Set("title", title)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("notify: building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("notification send failed before reaching the service - error: %s", err.Error())
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, title)
}

// handleResponse decides success or failure from the service's answer.
func (c *Client) handleResponse(resp *http.Response, title string) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warnf("reading notification response failed - error: %s", err.Error())
		return &TransportError{Err: err}
	}

	// Error bodies are not always JSON; a failed decode still yields a
	// DeliveryError carrying the raw body.
	var parsed apiResponse
	_ = json.Unmarshal(body, &parsed)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || parsed.Status != apiStatusOK {
		c.logger.Warnf("notification rejected - status: %d, reasons: %s",
			resp.StatusCode, strings.Join(parsed.Errors, "; "))

		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Reasons:    parsed.Errors,
		}
	}

	c.logger.Debugf("notification accepted - title: %q, request: %s", title, parsed.Request)

	return nil
}
