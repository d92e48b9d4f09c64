package arm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/mkrspc/iotporg/internal/util/naming"
)

// FunctionRef identifies a function inside a function app.
type FunctionRef struct {
	SubscriptionID string
	ResourceGroup  string
	App            string
	Function       string
}

// Keys are the host keys returned by listKeys.
type Keys struct {
	Default string
	// All holds every named key in the response, including "default".
	All map[string]string
}

// KeyLister lists function keys.
type KeyLister interface {
	ListFunctionKeys(ctx context.Context, ref FunctionRef) (*Keys, error)
}

// APIError is a non-2xx response from the management API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("management API error (status %d): %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("management API error (status %d): %s", e.StatusCode, e.Message)
}

// Client is a minimal management API client.
type Client struct {
	baseURL    string
	apiVersion string
	httpClient *http.Client
}

// NewClient returns a client that authenticates every request with ts.
// A zero timeout means no limit.
func NewClient(ctx context.Context, ts oauth2.TokenSource, baseURL, apiVersion string, timeout time.Duration) *Client {
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = timeout
	return newClient(httpClient, baseURL, apiVersion)
}

func newClient(httpClient *http.Client, baseURL, apiVersion string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiVersion: apiVersion,
		httpClient: httpClient,
	}
}

// ListFunctionKeys returns the keys of a single HTTP-triggered function.
func (c *Client) ListFunctionKeys(ctx context.Context, ref FunctionRef) (*Keys, error) {
	path := naming.FunctionKeysPath(ref.SubscriptionID, ref.ResourceGroup, ref.App, ref.Function)
	req, err := c.newRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("list keys for function %s: %w", ref.Function, err)
	}

	keys := &Keys{All: make(map[string]string)}
	gjson.ParseBytes(body).ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.String {
			keys.All[k.String()] = v.String()
		}
		return true
	})
	keys.Default = keys.All["default"]
	if keys.Default == "" {
		return nil, fmt.Errorf("list keys for function %s: response has no default key", ref.Function)
	}
	return keys, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	q := url.Values{}
	q.Set("api-version", c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+q.Encode(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		if parsed := gjson.GetBytes(body, "error"); parsed.Exists() {
			apiErr.Code = parsed.Get("code").String()
			apiErr.Message = parsed.Get("message").String()
		}
		return nil, apiErr
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("parse response: invalid JSON (status %d)", resp.StatusCode)
	}
	return body, nil
}
