package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// UploadImages multipart-posts reference images for a company and returns
// the persisted URLs in upload order.
func (c *Client) UploadImages(ctx context.Context, companyID int, images []File) ([]string, error) {
	fields := map[string]string{"companyId": strconv.Itoa(companyID)}
	var out struct {
		URLs []string `json:"urls"`
	}
	if err := c.postMultipart(ctx, "/api/content/upload_images", fields, "images", images, &out); err != nil {
		return nil, err
	}
	return out.URLs, nil
}

// AnalyzeImages requests a style analysis for each uploaded image URL.
// Analyses are opaque to the web app and handed back to CreateContent.
func (c *Client) AnalyzeImages(ctx context.Context, urls []string) ([]json.RawMessage, error) {
	in := map[string]any{"urls": urls}
	var out struct {
		Analyses []json.RawMessage `json:"analyses"`
	}
	if err := c.postJSON(ctx, "/api/content/analyze_images", in, &out); err != nil {
		return nil, err
	}
	return out.Analyses, nil
}

// CreateContent runs the backend's generation step and returns the draft.
// A 2xx response missing prompt or caption is not an error here; the
// caller decides how to handle a partial result.
func (c *Client) CreateContent(ctx context.Context, req CreateContentRequest) (ContentPost, error) {
	var post ContentPost
	if err := c.postJSON(ctx, "/api/content/create", req, &post); err != nil {
		return ContentPost{}, err
	}
	return post, nil
}

// LatestContent returns the most recently created content post for a
// company. A company with no posts yields a zero-valued post, not an error.
func (c *Client) LatestContent(ctx context.Context, companyID int) (ContentPost, error) {
	var post ContentPost
	path := fmt.Sprintf("/api/content/latest?companyId=%d", companyID)
	if err := c.getJSON(ctx, path, &post); err != nil {
		return ContentPost{}, err
	}
	return post, nil
}

// SaveContent persists a reviewed draft. With a known ID the backend
// updates in place; otherwise it inserts a new record.
func (c *Client) SaveContent(ctx context.Context, post ContentPost) (ContentPost, error) {
	var saved ContentPost
	if err := c.postJSON(ctx, "/api/content/save", post, &saved); err != nil {
		return ContentPost{}, err
	}
	return saved, nil
}
