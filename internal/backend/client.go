package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel codes the backend uses to report mutation outcomes.
const (
	codeFailure  = 0
	codeOK       = 1
	codeNotFound = 404
	codeServer   = 500
)

// Client is the shared HTTP transport for all resource clients. It owns no
// domain state; it only marshals requests and decodes the backend's reply
// conventions (JSON resources, optional {data: ...} envelopes, bare integer
// sentinel codes for mutations).
type Client struct {
	base string
	http *http.Client
	log  *logrus.Entry
}

// NewClient returns a client rooted at baseURL (the versioned API root,
// e.g. http://localhost:8080/api/v1.0).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  logrus.WithField("component", "backend"),
	}
}

// GetJSON performs a parameterless list/detail fetch and decodes the
// resource JSON into out.
func (c *Client) GetJSON(ctx context.Context, op, path string, out any) error {
	raw, err := c.do(ctx, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeResource(op, raw, out)
}

// PostJSON performs a POST carrying an optional JSON body and optional query
// parameters, decoding the resource reply into out. Filtered list endpoints
// (POST with query, no body) and create endpoints (POST with body) both go
// through here.
func (c *Client) PostJSON(ctx context.Context, op, path string, query url.Values, body, out any) error {
	raw, err := c.do(ctx, op, http.MethodPost, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeResource(op, raw, out)
}

// PostCode performs a mutation whose reply is a bare sentinel integer.
// A nil return means the backend reported success (1); every other code maps
// onto an error kind.
func (c *Client) PostCode(ctx context.Context, op, path string, query url.Values, body any) error {
	raw, err := c.do(ctx, op, http.MethodPost, path, query, body)
	if err != nil {
		return err
	}
	code, perr := parseSentinel(raw)
	if perr != nil {
		return Unknownf(op, "unreadable result code %q", truncate(raw))
	}
	switch code {
	case codeOK:
		return nil
	case codeNotFound:
		return NotFound(op)
	case codeServer:
		return ServerError(op)
	case codeFailure:
		return Unknownf(op, "backend rejected the operation")
	default:
		return Unknownf(op, "unexpected result code %d", code)
	}
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, Unknownf(op, "marshal request: %v", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, Unknownf(op, "build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		c.log.WithField("op", op).WithError(err).Warn("backend unreachable")
		return nil, Unknownf(op, "request failed: %v", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, Unknownf(op, "read response: %v", err)
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, NotFound(op)
	case res.StatusCode >= 500:
		return nil, ServerError(op)
	case res.StatusCode >= 400:
		return nil, Unknownf(op, "status %s: %s", res.Status, truncate(raw))
	}
	return raw, nil
}

// decodeResource unmarshals a resource reply, unwrapping the {data: ...}
// envelope some endpoints use.
func decodeResource(op string, raw []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		raw = envelope.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return Unknownf(op, "decode response: %v", err)
	}
	return nil
}

func parseSentinel(raw []byte) (int, error) {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	return strconv.Atoi(s)
}

func truncate(raw []byte) string {
	const max = 120
	s := string(raw)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
