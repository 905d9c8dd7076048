// Package api contains the HTTP client the CLI uses to talk to the
// FBIV VPN backend.
//
// The client encapsulates the server base URL and a configured
// http.Client, and offers JSON helpers (POST/GET) with bearer-token
// authorization.
//
// Behavior:
//   - baseURL is normalized (trailing "/" trimmed).
//   - Accept: application/json is always sent.
//   - Content-Type: application/json is sent only with a request body.
//   - 204 No Content is a success without reading the body.
//   - An empty response body (EOF while decoding) is not an error.
//   - On non-2xx responses the error carries the message field of the
//     error body (or the raw body, or res.Status when empty).
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// Client is the HTTP client for the FBIV VPN API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL, for example
// "http://localhost:5000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// readAPIErrorBody turns a non-2xx response into an error.
//
// The server's error shape is {"message": "..."}; when the body does
// not parse the raw text is used, and when it is empty res.Status.
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var er sm.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && strings.TrimSpace(er.Message) != "" {
		return errors.New(er.Message)
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// decodeJSONOrOK decodes JSON from r into resp.
//
// A nil resp skips decoding. io.EOF on an empty body is not an error.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Client) do(method, path string, req any, resp any, authToken string) error {
	var buf bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
	}

	r, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		r.Header.Set("Authorization", "Bearer "+authToken)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON sends a POST request, serializing req to JSON when non-nil
// and decoding the JSON response into resp when non-nil.
func (c *Client) PostJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPost, path, req, resp, authToken)
}

// GetJSON sends a GET request and decodes the JSON response into resp
// when non-nil.
func (c *Client) GetJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodGet, path, nil, resp, authToken)
}
