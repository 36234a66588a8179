package brandstudio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/topbox/brandstudio/api"
)

// handleReview shows the pending content draft. Without one in the stash
// it falls back to a single fetch of the company's latest content, which
// covers users returning after a restart or in a fresh session.
func (a *App) handleReview(c echo.Context) error {
	id, err := stashID(c)
	if err != nil {
		return err
	}
	company, _ := SelectedCompany(c)

	draft, ok := a.stash.Draft(id)
	if !ok {
		post, err := a.Backend.LatestContent(c.Request().Context(), company.ID)
		if err != nil || post.ID == 0 {
			if err != nil {
				c.Logger().Errorf("latest content: %v", err)
			}
			addFlash(c, "warning", "No content to review yet, create some first")
			return c.Redirect(http.StatusSeeOther, "/content")
		}
		draft = PendingDraft{
			ID:                 post.ID,
			CompanyID:          post.CompanyID,
			Topic:              post.Topic,
			Platform:           post.Platform,
			ReferenceImageURLs: post.ReferenceImageURLs,
			Prompt:             post.Prompt,
			Caption:            post.Caption,
		}
		a.stash.SetDraft(id, draft)
	}

	return a.render(c, "review", ReviewData{
		Page:        a.page(c, "/content/review"),
		Draft:       &draft,
		EditPrompt:  c.QueryParam("edit") == "prompt",
		EditCaption: c.QueryParam("edit") == "caption",
	})
}

// handleReviewSave persists the reviewed draft with any edits and clears
// the pending slot.
func (a *App) handleReviewSave(c echo.Context) error {
	id, err := stashID(c)
	if err != nil {
		return err
	}
	company, _ := SelectedCompany(c)

	draft, ok := a.stash.Draft(id)
	if !ok {
		addFlash(c, "error", "Nothing to save")
		return c.Redirect(http.StatusSeeOther, "/content")
	}

	if v := c.FormValue("prompt"); v != "" {
		draft.Prompt = strings.TrimSpace(v)
	}
	if v := c.FormValue("caption"); v != "" {
		draft.Caption = strings.TrimSpace(v)
	}

	_, err = a.Backend.SaveContent(c.Request().Context(), api.ContentPost{
		ID:                 draft.ID,
		CompanyID:          company.ID,
		Topic:              draft.Topic,
		Platform:           draft.Platform,
		ReferenceImageURLs: draft.ReferenceImageURLs,
		Prompt:             draft.Prompt,
		Caption:            draft.Caption,
	})
	if err != nil {
		c.Logger().Errorf("save content: %v", err)
		a.stash.SetDraft(id, draft)
		addFlash(c, "error", "Save failed: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/content/review")
	}

	a.stash.ClearDraft(id)
	addFlash(c, "success", "Content saved")
	return c.Redirect(http.StatusSeeOther, "/content")
}
