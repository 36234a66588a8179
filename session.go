package brandstudio

import (
	"encoding/gob"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/topbox/brandstudio/api"
)

const sessionName = "brandstudio_session"

func init() {
	gob.Register(Flash{})
}

// SelectedCompany returns the session's selected company. Only the fields
// the header and guards need are kept in the cookie; handlers re-fetch the
// full profile when they need it.
func SelectedCompany(c echo.Context) (api.Company, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return api.Company{}, false
	}
	id, ok := sess.Values["company_id"].(int)
	if !ok || id <= 0 {
		return api.Company{}, false
	}
	name, _ := sess.Values["company_name"].(string)
	created, _ := sess.Values["company_created"].(string)
	return api.Company{ID: id, Name: name, CreatedAt: created}, true
}

func setSelectedCompany(c echo.Context, company api.Company) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values["company_id"] = company.ID
	sess.Values["company_name"] = company.Name
	sess.Values["company_created"] = company.CreatedAt
	return sess.Save(c.Request(), c.Response())
}

// stashID returns this session's stash key, minting one on first use.
func stashID(c echo.Context) (string, error) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return "", err
	}
	if id, ok := sess.Values["stash_id"].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	sess.Values["stash_id"] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", err
	}
	return id, nil
}

// addFlash queues a one-shot notification for the next rendered page.
// This replaces blocking alert dialogs as the app's notification channel.
func addFlash(c echo.Context, level, text string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		c.Logger().Warnf("flash dropped: %v", err)
		return
	}
	sess.AddFlash(Flash{Level: level, Text: text})
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("flash dropped: %v", err)
	}
}

// popFlashes drains queued notifications for rendering.
func popFlashes(c echo.Context) []Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() removed them from the session; persist that.
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("flash drain not saved: %v", err)
	}
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}
