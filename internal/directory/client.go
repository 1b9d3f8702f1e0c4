package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"ums-console/internal/metrics"

	"github.com/sirupsen/logrus"
)

// TokenSource supplies the bearer credential for every remote call.
// Any error means no usable credential (mapped to ErrUnauthorized).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// FormField is one multipart form field. Order is preserved on the
// wire, matching the field order the service documents.
type FormField struct {
	Name  string
	Value string
}

// Client talks to the auth service's /users endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// ListUsers fetches the full directory listing. Single-object payloads
// are coerced to a one-element list, null to an empty one.
func (c *Client) ListUsers(ctx context.Context) ([]Employee, error) {
	start := time.Now()
	emps, err := c.listUsers(ctx)
	c.record("list", start, err)
	return emps, err
}

func (c *Client) listUsers(ctx context.Context) ([]Employee, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/users/list-users", nil, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.Errorf("[Directory] list-users: %v", err)
		return nil, &FetchError{Status: 0}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Status: resp.StatusCode}
	}

	records, err := decodeUserList(body)
	if err != nil {
		logrus.Errorf("[Directory] list-users decode: %v", err)
		return nil, &DecodeError{Err: err}
	}

	employees := make([]Employee, 0, len(records))
	for _, r := range records {
		employees = append(employees, r.normalize())
	}
	return employees, nil
}

// decodeUserList accepts a JSON array, a single object, or null.
func decodeUserList(body []byte) ([]userRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var records []userRecord
	if err := json.Unmarshal(trimmed, &records); err == nil {
		return records, nil
	}

	var single userRecord
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, err
	}
	return []userRecord{single}, nil
}

// CreateUser submits a new account as a multipart form.
func (c *Client) CreateUser(ctx context.Context, fields []FormField) error {
	start := time.Now()
	err := c.submitForm(ctx, http.MethodPost, "/users/create", fields, "Failed to add employee")
	c.record("create", start, err)
	return err
}

// UpdateUser submits changed fields for an existing account.
func (c *Client) UpdateUser(ctx context.Context, id int, fields []FormField) error {
	start := time.Now()
	err := c.submitForm(ctx, http.MethodPut, fmt.Sprintf("/users/update/%d", id), fields, "Failed to update employee")
	c.record("update", start, err)
	return err
}

// DisableUser flips the account's disabled flag (archive). No payload.
func (c *Client) DisableUser(ctx context.Context, id int) error {
	start := time.Now()
	err := c.disableUser(ctx, id)
	c.record("disable", start, err)
	return err
}

func (c *Client) disableUser(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/users/disable/%d", id), nil, "")
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.Errorf("[Directory] disable user %d: %v", id, err)
		return &FetchError{Status: 0}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) submitForm(ctx context.Context, method, path string, fields []FormField, fallbackMsg string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := writer.WriteField(f.Name, f.Value); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, path, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.Errorf("[Directory] %s %s: %v", method, path, err)
		return &FetchError{Status: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	// The service reports business-rule rejections as {"detail": "..."}
	var errBody struct {
		Detail string `json:"detail"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &errBody); err != nil || errBody.Detail == "" {
		return &ValidationRejected{Detail: fallbackMsg}
	}
	return &ValidationRejected{Detail: errBody.Detail}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func (c *Client) record(operation string, start time.Time, err error) {
	metrics.DirectoryRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.DirectoryRequestsTotal.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case err == ErrUnauthorized:
		return "unauthorized"
	default:
		switch err.(type) {
		case *ValidationRejected:
			return "rejected"
		case *DecodeError:
			return "decode_error"
		default:
			return "fetch_error"
		}
	}
}
