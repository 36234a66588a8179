package brandstudio

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// render writes a named page template as an HTTP 200 HTML response.
func (a *App) render(c echo.Context, page string, data any) error {
	return a.renderStatus(c, http.StatusOK, page, data)
}

// renderStatus writes a named page template with a specific status code.
func (a *App) renderStatus(c echo.Context, code int, page string, data any) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return a.Views.Render(c.Response().Writer, page, data)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	if code == http.StatusNotFound {
		if rerr := c.Redirect(http.StatusSeeOther, "/"); rerr != nil {
			c.Logger().Error(rerr)
		}
		return
	}

	c.Logger().Error(err)

	data := a.page(c, "")
	if rerr := a.renderStatus(c, code, "error", ErrorData{Page: data, Status: code}); rerr != nil {
		c.Logger().Error(rerr)
	}
}
