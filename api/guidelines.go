package api

import (
	"context"
	"fmt"
	"strconv"
)

// GetGuidelines fetches the saved guideline content for a company. An
// empty string means the company has no guidelines yet; the backend
// returns a null content field in that case.
func (c *Client) GetGuidelines(ctx context.Context, companyID int) (string, error) {
	var out struct {
		Content *string `json:"content"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/api/brand-guidelines/%d", companyID), &out); err != nil {
		return "", err
	}
	if out.Content == nil {
		return "", nil
	}
	return *out.Content, nil
}

// UploadGuidelines multipart-posts a guideline document for a company.
func (c *Client) UploadGuidelines(ctx context.Context, companyID int, file File) error {
	fields := map[string]string{"companyId": strconv.Itoa(companyID)}
	return c.postMultipart(ctx, "/api/brand-guidelines/upload", fields, "file", []File{file}, nil)
}

// GenerateGuidelines asks the backend to generate guideline content and
// returns it. The backend has answered with either a content or a
// guidelines field across revisions; both are accepted.
func (c *Client) GenerateGuidelines(ctx context.Context, req GenerateGuidelinesRequest) (string, error) {
	var out guidelineResult
	if err := c.postJSON(ctx, "/api/brand-guidelines/generate", req, &out); err != nil {
		return "", err
	}
	return out.text(), nil
}

// SaveGuidelines persists guideline content for a company, overwriting any
// previous version.
func (c *Client) SaveGuidelines(ctx context.Context, companyID int, content string) error {
	in := map[string]any{"companyId": companyID, "content": content}
	return c.postJSON(ctx, "/api/brand-guidelines/save", in, nil)
}
