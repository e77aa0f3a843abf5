package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client uploads objects to a public Supabase Storage bucket. Failed writes
// are the store's problem to clean up; this service never references them.
type Client struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
	HTTP       *http.Client
}

func NewClient(baseURL, serviceKey, bucket string) *Client {
	return &Client{
		BaseURL:    baseURL,
		ServiceKey: serviceKey,
		Bucket:     bucket,
		HTTP:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload streams the file bytes and declared content type to the bucket.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, c.Bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("storage request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("storage upload: status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}

// PublicURL returns the deterministic public URL for an uploaded object.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.BaseURL, c.Bucket, path)
}
