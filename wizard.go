package brandstudio

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/topbox/brandstudio/api"
)

// WizardSteps are the labels of the four onboarding steps, in order.
var WizardSteps = []string{"Business", "Audience", "Brand Voice", "Platforms"}

// WizardForm is the shared form record the onboarding wizard fills in
// across its steps.
type WizardForm struct {
	BusinessName     string `validate:"required"`
	Industry         string `validate:"required"`
	Email            string `validate:"required,email"`
	Budget           string
	BrandDescription string `validate:"required"`
	TargetAudience   string `validate:"required"`
	UniqueValue      string
	Competitors      string
	BrandPersonality []string `validate:"min=1"`
	Tone             string
	Platforms        []string `validate:"min=1"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// CanAdvance reports whether the step's required fields are filled.
// Whitespace-only input does not count.
func (f WizardForm) CanAdvance(step int) bool {
	switch step {
	case 0:
		return strings.TrimSpace(f.BusinessName) != "" &&
			strings.TrimSpace(f.Industry) != "" &&
			strings.TrimSpace(f.Email) != ""
	case 1:
		return strings.TrimSpace(f.BrandDescription) != "" &&
			strings.TrimSpace(f.TargetAudience) != ""
	case 2:
		return len(FilterEmpty(f.BrandPersonality)) > 0
	case 3:
		return len(FilterEmpty(f.Platforms)) > 0
	}
	return true
}

// Validate checks the full form before submit. Step gating only checks
// presence; this adds the field-format rules.
func (f WizardForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].StructField() {
		case "Email":
			return errors.New("A valid contact email is required")
		case "BrandPersonality":
			return errors.New("Select at least one brand personality")
		case "Platforms":
			return errors.New("Select at least one platform")
		default:
			return errors.New("Please complete all required fields")
		}
	}
	return err
}

// bindWizardStep copies the posted fields of one step into the form.
// Text inputs are trimmed; multi-selects are filtered to known values.
func bindWizardStep(c echo.Context, form *WizardForm, step int) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	post := c.Request().PostForm
	switch step {
	case 0:
		form.BusinessName = strings.TrimSpace(post.Get("businessName"))
		form.Industry = strings.TrimSpace(post.Get("industry"))
		form.Email = strings.TrimSpace(post.Get("email"))
		form.Budget = strings.TrimSpace(post.Get("budget"))
	case 1:
		form.BrandDescription = strings.TrimSpace(post.Get("brandDescription"))
		form.TargetAudience = strings.TrimSpace(post.Get("targetAudience"))
		form.UniqueValue = strings.TrimSpace(post.Get("uniqueValue"))
		form.Competitors = strings.TrimSpace(post.Get("competitors"))
	case 2:
		form.BrandPersonality = FilterEmpty(post["brandPersonality"])
		form.Tone = strings.TrimSpace(post.Get("tone"))
	case 3:
		var platforms []string
		for _, p := range post["platforms"] {
			if ValidWizardPlatform(p) {
				platforms = append(platforms, p)
			}
		}
		form.Platforms = platforms
	}
	return nil
}

// createRequest maps the form onto the company-creation payload.
func (f WizardForm) createRequest() api.CreateCompanyRequest {
	return api.CreateCompanyRequest{
		BusinessName:     f.BusinessName,
		Industry:         f.Industry,
		Email:            f.Email,
		Budget:           f.Budget,
		BrandDescription: f.BrandDescription,
		TargetAudience:   f.TargetAudience,
		Competitors:      f.Competitors,
		UniqueValue:      f.UniqueValue,
		BrandPersonality: f.BrandPersonality,
		Tone:             f.Tone,
		Platforms:        f.Platforms,
	}
}

// toneString joins the selected personality tags and the free-text tone
// field into the comma-separated tone handed to guideline generation.
func (f WizardForm) toneString() string {
	parts := append(append([]string{}, f.BrandPersonality...), f.Tone)
	return JoinNonEmpty(parts...)
}

// submitWizard runs the two-phase submit: create the company, then
// trigger guideline generation for it. Either failure fails the whole
// operation; a created company with failed guidelines is not reconciled
// here, the user sees the error and can regenerate from the panel.
func (a *App) submitWizard(ctx context.Context, form WizardForm) (api.Company, error) {
	if err := form.Validate(); err != nil {
		return api.Company{}, err
	}

	company, err := a.Backend.CreateCompany(ctx, form.createRequest())
	if err != nil {
		return api.Company{}, err
	}
	if company.ID <= 0 {
		return api.Company{}, errors.New("Failed to create company")
	}

	_, err = a.Backend.GenerateGuidelines(ctx, api.GenerateGuidelinesRequest{
		CompanyID:        company.ID,
		BusinessName:     form.BusinessName,
		Industry:         form.Industry,
		TargetAudience:   form.TargetAudience,
		BrandDescription: form.BrandDescription,
		Tone:             form.toneString(),
		Competitors:      form.Competitors,
		UniqueValue:      form.UniqueValue,
	})
	if err != nil {
		return api.Company{}, err
	}
	return company, nil
}
