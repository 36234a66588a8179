package brandstudio

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/topbox/brandstudio/api"
	"github.com/topbox/brandstudio/views"
)

// handleGuidelines renders the brand guidelines panel. The mode resolves
// to "generate" when unsaved generated content is waiting, "view" when
// guidelines exist, otherwise "choice".
func (a *App) handleGuidelines(c echo.Context) error {
	company, _ := SelectedCompany(c)

	id, err := stashID(c)
	if err != nil {
		return err
	}

	data := GuidelinesData{
		Page:       a.page(c, "/brand-guidelines"),
		Generated:  a.stash.Generated(id),
		Extensions: []string{".pdf", ".doc", ".docx", ".txt"},
	}

	existing, err := a.Backend.GetGuidelines(c.Request().Context(), company.ID)
	if err != nil {
		c.Logger().Errorf("get guidelines: %v", err)
		data.LoadError = "Could not load guidelines: " + err.Error()
	}
	data.Existing = existing

	mode := c.QueryParam("mode")
	switch mode {
	case "upload", "generate", "view", "choice":
	default:
		switch {
		case data.Generated != "":
			mode = "generate"
		case existing != "":
			mode = "view"
		default:
			mode = "choice"
		}
	}
	data.Mode = mode
	data.GeneratedHTML = views.Markdown(data.Generated)
	data.ExistingHTML = views.Markdown(existing)

	return a.render(c, "guidelines", data)
}

// handleGuidelinesUpload accepts a guideline document and forwards it to
// the backend.
func (a *App) handleGuidelinesUpload(c echo.Context) error {
	company, _ := SelectedCompany(c)

	fh, err := c.FormFile("file")
	if err != nil {
		addFlash(c, "error", "Choose a file to upload")
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines?mode=upload")
	}
	if !AllowedGuidelineFile(fh.Filename) {
		addFlash(c, "error", "Only PDF, DOC, DOCX, and TXT files are accepted")
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines?mode=upload")
	}
	if fh.Size > a.Config.MaxUploadSize {
		addFlash(c, "error", "File is too large")
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines?mode=upload")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, a.Config.MaxUploadSize))
	if err != nil {
		return err
	}

	err = a.Backend.UploadGuidelines(c.Request().Context(), company.ID, api.File{
		Name:        SafeFilename(fh.Filename),
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		c.Logger().Errorf("upload guidelines: %v", err)
		addFlash(c, "error", "Upload failed: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines?mode=upload")
	}

	addFlash(c, "success", "Brand guidelines uploaded")
	return c.Redirect(http.StatusSeeOther, "/brand-guidelines?mode=view")
}

// handleGuidelinesGenerate asks the backend to generate guidelines from
// the company profile. The result is kept in the stash until the user
// saves it.
func (a *App) handleGuidelinesGenerate(c echo.Context) error {
	if !a.genLimiter.Allow(c.RealIP()) {
		addFlash(c, "error", "Too many generation requests, slow down")
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines")
	}

	company, _ := SelectedCompany(c)

	id, err := stashID(c)
	if err != nil {
		return err
	}

	// The session only keeps id/name; generation wants the full profile.
	full, err := a.Backend.GetCompany(c.Request().Context(), company.ID)
	if err != nil {
		c.Logger().Errorf("get company %d: %v", company.ID, err)
		addFlash(c, "error", "Could not load company profile: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines")
	}

	content, err := a.Backend.GenerateGuidelines(c.Request().Context(), api.GenerateGuidelinesRequest{
		CompanyID: full.ID,
		Questionnaire: &api.Questionnaire{
			CompanyName:      full.Name,
			Industry:         full.Industry,
			Description:      full.Description,
			TargetAudience:   full.TargetAudience,
			UniqueValue:      full.UniqueValue,
			MainCompetitors:  full.MainCompetitors,
			BrandPersonality: full.BrandPersonality,
			BrandTone:        full.BrandTone,
			MonthlyBudget:    full.MonthlyBudget,
		},
	})
	if err != nil {
		c.Logger().Errorf("generate guidelines: %v", err)
		addFlash(c, "error", "Generation failed: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines")
	}
	if content == "" {
		addFlash(c, "error", "Generation returned no content")
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines")
	}

	a.stash.SetGenerated(id, content)
	return c.Redirect(http.StatusSeeOther, "/brand-guidelines?mode=generate")
}

// handleGuidelinesSave persists generated guidelines. Unreachable without
// generated content in the stash.
func (a *App) handleGuidelinesSave(c echo.Context) error {
	company, _ := SelectedCompany(c)

	id, err := stashID(c)
	if err != nil {
		return err
	}

	content := a.stash.Generated(id)
	if content == "" {
		addFlash(c, "error", "Nothing to save, generate guidelines first")
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines")
	}

	if err := a.Backend.SaveGuidelines(c.Request().Context(), company.ID, content); err != nil {
		c.Logger().Errorf("save guidelines: %v", err)
		addFlash(c, "error", "Save failed: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines?mode=generate")
	}

	a.stash.SetGenerated(id, "")
	addFlash(c, "success", "Brand guidelines saved")
	return c.Redirect(http.StatusSeeOther, "/brand-guidelines?mode=view")
}
