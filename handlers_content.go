package brandstudio

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/topbox/brandstudio/api"
)

// maxReferenceImages caps how many reference images can be staged per
// session.
const maxReferenceImages = 5

// handleContent renders the content creation form with any staged
// reference images.
func (a *App) handleContent(c echo.Context) error {
	id, err := stashID(c)
	if err != nil {
		return err
	}

	topic, platform := a.stash.ContentForm(id)
	if platform == "" {
		platform = "instagram"
	}

	return a.render(c, "content", ContentData{
		Page:      a.page(c, "/content"),
		Topic:     topic,
		Platform:  platform,
		Platforms: ContentPlatformOptions,
		Images:    a.stash.Images(id),
	})
}

// bindContentForm saves the posted topic and platform so they survive the
// redirect back to the form.
func (a *App) bindContentForm(c echo.Context, id string) (topic, platform string) {
	topic = strings.TrimSpace(c.FormValue("topic"))
	platform = c.FormValue("platform")
	if !ValidContentPlatform(platform) {
		platform = "instagram"
	}
	a.stash.SetContentForm(id, topic, platform)
	return topic, platform
}

// handleImageAdd stages a reference image: sniffed for image content,
// downscaled, and re-encoded before it waits for the pipeline.
func (a *App) handleImageAdd(c echo.Context) error {
	id, err := stashID(c)
	if err != nil {
		return err
	}
	a.bindContentForm(c, id)

	if len(a.stash.Images(id)) >= maxReferenceImages {
		addFlash(c, "error", "At most 5 reference images can be added")
		return c.Redirect(http.StatusSeeOther, "/content")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		addFlash(c, "error", "Choose an image to add")
		return c.Redirect(http.StatusSeeOther, "/content")
	}
	if fh.Size > a.Config.MaxUploadSize {
		addFlash(c, "error", "Image is too large")
		return c.Redirect(http.StatusSeeOther, "/content")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, a.Config.MaxUploadSize))
	if err != nil {
		return err
	}
	if !isImageData(raw) {
		addFlash(c, "error", "File is not an image")
		return c.Redirect(http.StatusSeeOther, "/content")
	}

	img, err := processImage(bytes.NewReader(raw), fh.Filename)
	if err != nil {
		c.Logger().Errorf("process image: %v", err)
		addFlash(c, "error", "Could not process image: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/content")
	}

	a.stash.AddImage(id, img)
	return c.Redirect(http.StatusSeeOther, "/content")
}

// handleImageRemove drops a staged reference image.
func (a *App) handleImageRemove(c echo.Context) error {
	id, err := stashID(c)
	if err != nil {
		return err
	}
	a.bindContentForm(c, id)

	index, err := strconv.Atoi(c.Param("index"))
	if err == nil {
		a.stash.RemoveImage(id, index)
	}
	return c.Redirect(http.StatusSeeOther, "/content")
}

// handleContentCreate runs the three-stage pipeline: upload staged images,
// analyze them, then generate a prompt and caption. With no staged images
// the first two stages are skipped. Any stage failure sends the user back
// to the form; a partial generation still moves on to review.
func (a *App) handleContentCreate(c echo.Context) error {
	id, err := stashID(c)
	if err != nil {
		return err
	}
	topic, platform := a.bindContentForm(c, id)

	if topic == "" {
		addFlash(c, "error", "Enter a topic for the post")
		return c.Redirect(http.StatusSeeOther, "/content")
	}
	if !a.genLimiter.Allow(c.RealIP()) {
		addFlash(c, "error", "Too many generation requests, slow down")
		return c.Redirect(http.StatusSeeOther, "/content")
	}

	company, _ := SelectedCompany(c)
	ctx := c.Request().Context()

	var urls []string
	var analyses []json.RawMessage
	if staged := a.stash.Images(id); len(staged) > 0 {
		files := make([]api.File, len(staged))
		for i, img := range staged {
			files[i] = api.File{Name: img.Name, ContentType: img.ContentType, Data: img.Data}
		}

		urls, err = a.Backend.UploadImages(ctx, company.ID, files)
		if err != nil {
			c.Logger().Errorf("upload images: %v", err)
			addFlash(c, "error", "Image upload failed: "+err.Error())
			return c.Redirect(http.StatusSeeOther, "/content")
		}

		analyses, err = a.Backend.AnalyzeImages(ctx, urls)
		if err != nil {
			c.Logger().Errorf("analyze images: %v", err)
			addFlash(c, "error", "Image analysis failed: "+err.Error())
			return c.Redirect(http.StatusSeeOther, "/content")
		}
	}

	post, err := a.Backend.CreateContent(ctx, api.CreateContentRequest{
		CompanyID: company.ID,
		Topic:     topic,
		Platform:  platform,
		Analyses:  analyses,
	})
	if err != nil {
		c.Logger().Errorf("create content: %v", err)
		addFlash(c, "error", "Content generation failed: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/content")
	}
	if post.Prompt == "" || post.Caption == "" {
		addFlash(c, "warning", "Generation returned incomplete content")
	}

	refs := post.ReferenceImageURLs
	if len(refs) == 0 {
		refs = urls
	}
	a.stash.SetDraft(id, PendingDraft{
		ID:                 post.ID,
		CompanyID:          company.ID,
		Topic:              topic,
		Platform:           platform,
		ReferenceImageURLs: refs,
		Prompt:             post.Prompt,
		Caption:            post.Caption,
	})
	a.stash.ClearImages(id)
	a.stash.SetContentForm(id, "", "")

	return c.Redirect(http.StatusSeeOther, "/content/review")
}
