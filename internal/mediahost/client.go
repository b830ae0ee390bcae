// Package mediahost talks to the external media hosting provider: uploading
// staged files and building provider transformation URLs for display.
package mediahost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Static errors for media host operations.
var (
	// ErrUploadURLRequired is returned when no upload endpoint is configured.
	ErrUploadURLRequired = errors.New("mediahost: upload URL is required")
	// ErrNoURLReturned is returned when the provider response carries no URL.
	// A response without a URL is a failed upload regardless of status code.
	ErrNoURLReturned = errors.New("mediahost: no URL in upload response")
	// ErrRequestFailed is returned when the provider rejects the upload.
	ErrRequestFailed = errors.New("mediahost: upload request failed")
)

// uploadTag marks every file this backend stores with the provider.
const uploadTag = "backend-upload"

// UploadResult is the provider's answer to a successful upload.
type UploadResult struct {
	// URL is the canonical location of the stored media.
	URL string `json:"url"`
	// Name is the stored name, which may differ from the client-supplied
	// name because the provider enforces uniqueness.
	Name string `json:"name"`
	// FileID is the provider's internal identifier.
	FileID string `json:"fileId"`
}

// Uploader forwards staged bytes to the external media host.
type Uploader interface {
	// Upload sends the file and returns the canonical URL and stored name.
	// The call is at-most-once: no retries happen at this layer.
	Upload(ctx context.Context, file io.Reader, fileName string) (UploadResult, error)
}

// Client is the HTTP implementation of Uploader for an ImageKit-style API.
type Client struct {
	uploadURL  string
	privateKey string
	httpClient *http.Client
}

// Option is a function that configures a Client.
type Option func(*Client)

// WithPrivateKey sets the provider API key used for basic auth.
func WithPrivateKey(key string) Option {
	return func(c *Client) {
		c.privateKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a media host client for the given upload endpoint.
func NewClient(uploadURL string, opts ...Option) (*Client, error) {
	if uploadURL == "" {
		return nil, ErrUploadURLRequired
	}

	c := &Client{
		uploadURL:  uploadURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Upload sends the file as a multipart request. The provider is asked for a
// uniqueness-guaranteed stored name and tags the file for provenance.
func (c *Client) Upload(ctx context.Context, file io.Reader, fileName string) (UploadResult, error) {
	body, contentType, err := buildUploadBody(file, fileName)
	if err != nil {
		return UploadResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", contentType)
	if c.privateKey != "" {
		req.SetBasicAuth(c.privateKey, "")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return UploadResult{}, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, msg)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return UploadResult{}, fmt.Errorf("%w: %v", ErrNoURLReturned, err)
	}
	if result.URL == "" {
		return UploadResult{}, ErrNoURLReturned
	}

	return result, nil
}

func buildUploadBody(file io.Reader, fileName string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}

	fields := map[string]string{
		"fileName":          fileName,
		"useUniqueFileName": "true",
		"tags":              uploadTag,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
