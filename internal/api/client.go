// Package api is the typed boundary between loglens and the analysis backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/vburojevic/loglens/internal/domain"
)

// ErrMalformedResponse marks a success status whose body could not be decoded.
var ErrMalformedResponse = errors.New("malformed response")

// Client talks to the analysis backend. It holds no state between calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Option configures Client behavior.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Client for the given API origin (for example http://localhost:5000/api).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API origin the client was built for.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login submits credentials. Any HTTP response is read as a credential
// verdict; only transport failures return an error.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, &Error{Op: "login", Message: err.Error(), Err: err}
	}

	status, body, err := c.do(ctx, "login", http.MethodPost, "/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var resp domain.LoginResponse
	if jsonErr := json.Unmarshal(body, &resp); jsonErr != nil || resp.Status == "" {
		if isSuccess(status) && jsonErr != nil {
			return nil, malformed("login", status, jsonErr)
		}
		resp = domain.LoginResponse{Status: "failure"}
	}
	if !isSuccess(status) {
		if resp.Status == "success" {
			resp.Status = "failure"
		}
		if resp.Error == "" {
			resp.Error = httpStatusMessage(status)
		}
	}
	return &resp, nil
}

// UploadLog submits one log file as a multipart form with a single "file" field.
func (c *Client) UploadLog(ctx context.Context, filename string, r io.Reader) (*domain.UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, &Error{Op: "upload", Message: err.Error(), Err: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, &Error{Op: "upload", Message: fmt.Sprintf("read %s: %v", filename, err), Err: err}
	}
	if err := mw.Close(); err != nil {
		return nil, &Error{Op: "upload", Message: err.Error(), Err: err}
	}

	status, body, err := c.do(ctx, "upload", http.MethodPost, "/upload-log", mw.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, decodeFailure("upload", status, body)
	}

	var resp domain.UploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, malformed("upload", status, err)
	}
	c.log.Debug("upload response",
		zap.Int("analysis_id", resp.AnalysisID),
		zap.Int("anomalies", len(resp.Anomalies)))
	return &resp, nil
}

// GetAnalysis fetches a completed analysis by identifier.
func (c *Client) GetAnalysis(ctx context.Context, id int) (*domain.AnalysisResult, error) {
	status, body, err := c.do(ctx, "analysis", http.MethodGet, fmt.Sprintf("/analysis/%d", id), "", nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, decodeFailure("analysis", status, body)
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, malformed("analysis", status, err)
	}
	return &result, nil
}

// do performs one request and returns the status and full body.
func (c *Client) do(ctx context.Context, op, method, path, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, &Error{Op: op, Message: err.Error(), Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err))
		return 0, nil, transportError(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, transportError(op, err)
	}

	c.log.Debug("request complete",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	return resp.StatusCode, data, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// decodeFailure turns a non-2xx body into an Error. A {"error": "..."} body
// is passed through verbatim; an undecodable body becomes "Unknown error".
func decodeFailure(op string, status int, body []byte) *Error {
	e := &Error{Op: op, StatusCode: status}
	if !gjson.ValidBytes(body) {
		e.Message = UnknownErrorMessage
		return e
	}
	if msg := gjson.GetBytes(body, "error"); msg.Type == gjson.String && msg.Str != "" {
		e.Message = msg.Str
		e.Structured = true
		return e
	}
	e.Message = httpStatusMessage(status)
	return e
}

func malformed(op string, status int, cause error) *Error {
	return &Error{
		Op:         op,
		StatusCode: status,
		Message:    fmt.Sprintf("%s: could not decode backend response", op),
		Err:        fmt.Errorf("%w: %w", ErrMalformedResponse, cause),
	}
}
