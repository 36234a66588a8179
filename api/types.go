package api

import "encoding/json"

// Company is a business profile as the backend returns it. The listing
// endpoint only fills id/name/createdAt; the detail endpoint adds the
// snake_case profile fields.
type Company struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`

	Industry         string   `json:"industry,omitempty"`
	Email            string   `json:"email,omitempty"`
	MonthlyBudget    int      `json:"monthly_budget,omitempty"`
	Description      string   `json:"description,omitempty"`
	TargetAudience   string   `json:"target_audience,omitempty"`
	UniqueValue      string   `json:"unique_value,omitempty"`
	MainCompetitors  []string `json:"main_competitors,omitempty"`
	BrandPersonality []string `json:"brand_personality,omitempty"`
	BrandTone        string   `json:"brand_tone,omitempty"`
}

// CreateCompanyRequest is the payload for POST /api/companies. Field names
// match what the backend's create handler reads.
type CreateCompanyRequest struct {
	BusinessName     string   `json:"businessName"`
	Industry         string   `json:"industry,omitempty"`
	Email            string   `json:"email,omitempty"`
	Budget           string   `json:"budget,omitempty"`
	BrandDescription string   `json:"brandDescription,omitempty"`
	TargetAudience   string   `json:"targetAudience,omitempty"`
	Competitors      string   `json:"competitors,omitempty"`
	UniqueValue      string   `json:"uniqueValue,omitempty"`
	BrandPersonality []string `json:"brandPersonality,omitempty"`
	Tone             string   `json:"tone,omitempty"`
	Platforms        []string `json:"platforms,omitempty"`
}

// Questionnaire is the structured brand profile posted by the guidelines
// panel. Keys are snake_case to match the generation endpoint.
type Questionnaire struct {
	CompanyName      string   `json:"company_name"`
	Industry         string   `json:"industry"`
	Description      string   `json:"description"`
	TargetAudience   string   `json:"target_audience"`
	UniqueValue      string   `json:"unique_value"`
	MainCompetitors  []string `json:"main_competitors"`
	BrandPersonality []string `json:"brand_personality"`
	BrandTone        string   `json:"brand_tone"`
	MonthlyBudget    int      `json:"monthly_budget"`
}

// GenerateGuidelinesRequest covers both callers of the generation endpoint:
// the onboarding wizard posts the flat profile fields, the guidelines panel
// posts a nested questionnaire.
type GenerateGuidelinesRequest struct {
	CompanyID        int            `json:"companyId"`
	BusinessName     string         `json:"businessName,omitempty"`
	Industry         string         `json:"industry,omitempty"`
	TargetAudience   string         `json:"targetAudience,omitempty"`
	BrandDescription string         `json:"brandDescription,omitempty"`
	Tone             string         `json:"tone,omitempty"`
	Competitors      string         `json:"competitors,omitempty"`
	UniqueValue      string         `json:"uniqueValue,omitempty"`
	Questionnaire    *Questionnaire `json:"questionnaire,omitempty"`
}

// guidelineResult tolerates both response shapes the backend has used.
type guidelineResult struct {
	Content    string `json:"content"`
	Guidelines string `json:"guidelines"`
}

func (r guidelineResult) text() string {
	if r.Content != "" {
		return r.Content
	}
	return r.Guidelines
}

// ContentPost is a social-media content draft or saved record.
type ContentPost struct {
	ID                 int      `json:"id,omitempty"`
	CompanyID          int      `json:"companyId"`
	Topic              string   `json:"topic"`
	Platform           string   `json:"platform"`
	ReferenceImageURLs []string `json:"referenceImageUrls,omitempty"`
	Prompt             string   `json:"prompt,omitempty"`
	Caption            string   `json:"caption,omitempty"`
	ImageURL           string   `json:"imageUrl,omitempty"`
	CreatedAt          string   `json:"createdAt,omitempty"`
	UpdatedAt          string   `json:"updatedAt,omitempty"`
}

// CreateContentRequest is the payload for the final pipeline stage. The
// per-image analyses are passed through opaquely; the web app never
// interprets them.
type CreateContentRequest struct {
	CompanyID int               `json:"companyId"`
	Topic     string            `json:"topic"`
	Platform  string            `json:"platform"`
	Analyses  []json.RawMessage `json:"analyses"`
}
