package folio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	snap := a.Repo.Snapshot()
	return Render(c, views.Home(a.site, snap, a.Repo.FeaturedProjects(3), a.Repo.FeaturedArticles(3)))
}

func (a *App) handleProjects(c echo.Context) error {
	return Render(c, views.Projects(a.site, a.Repo.Snapshot()))
}

func (a *App) handleArticles(c echo.Context) error {
	return Render(c, views.Articles(a.site, a.Repo.Snapshot()))
}

func (a *App) handleAllArticles(c echo.Context) error {
	return Render(c, views.AllArticles(a.site, a.Repo.Snapshot()))
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Sitemap: " + BuildURL(a.Config.URL, "sitemap.xml") + "\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	he, ok := err.(*echo.HTTPError)
	if ok {
		code = he.Code
	}
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		if code >= 500 {
			a.log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		}
		_ = c.JSON(code, echo.Map{"error": http.StatusText(code)})
		return
	}
	if code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site))
		return
	}
	if code >= 500 {
		a.log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = RenderStatus(c, code, views.ServerError(a.site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
