package folio

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/auth"
	"github.com/eringen/folio/portfolio"
	"github.com/eringen/folio/views"
)

const sessionCookie = "access_token"

// currentAdmin reads the session cookie and returns the verified admin
// identity, or an auth error.
func (a *App) currentAdmin(c echo.Context) (string, error) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return "", auth.ErrMissingToken
	}
	return a.Gate.Authenticate(cookie.Value)
}

func (a *App) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "Bearer " + token,
		Path:     "/",
		MaxAge:   int(a.Gate.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	})
}

func (a *App) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	})
}

func (a *App) handleAdminLoginPage(c echo.Context) error {
	if _, err := a.currentAdmin(c); err == nil {
		return c.Redirect(http.StatusSeeOther, "/admin/manage-articles")
	}
	return Render(c, views.AdminLogin(a.site, false))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}

	username := c.FormValue("username")
	password := c.FormValue("password")
	code := c.FormValue("totp_code")

	token, err := a.Gate.Login(username, password, code)
	if err != nil {
		a.loginLimiter.Record(ip)
		a.log.Warn().Str("ip", ip).Err(err).Msg("failed admin login")
		if wantsJSON(c) {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"message": "Invalid credentials or TOTP code",
			})
		}
		return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(a.site, true))
	}

	a.setSessionCookie(c, token)
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
	return c.Redirect(http.StatusSeeOther, "/admin/manage-articles")
}

// Logout clears the cookie unconditionally; logging out twice is fine.
func (a *App) handleAdminLogout(c echo.Context) error {
	a.clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

func (a *App) handleAdminAddArticle(c echo.Context) error {
	meta, err := a.Store.Metadata()
	if err != nil {
		return err
	}
	return Render(c, views.AdminAddArticle(a.site, a.Repo.Snapshot(), meta))
}

func (a *App) handleAdminManageArticles(c echo.Context) error {
	return Render(c, views.AdminManageArticles(a.site, a.Repo.Snapshot()))
}

func (a *App) handleFetchMedium(c echo.Context) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "url is required",
		})
	}

	doc, err := a.fetcher.Fetch(c.Request().Context(), req.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{
			"success": false,
			"message": "Could not fetch article: " + err.Error(),
		})
	}

	summary := a.extractor.Extract(doc, req.URL)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    summary,
	})
}

type articlePayload struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	ImageURL      string   `json:"image_url"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	PublishedDate string   `json:"published_date"`
	ReadTime      int      `json:"read_time"`
	Featured      bool     `json:"featured"`
	ExternalURL   string   `json:"external_url"`
}

func (a *App) handleSaveArticle(c echo.Context) error {
	var req articlePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "invalid article payload",
		})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	if req.Title == "" || req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "title and category are required",
		})
	}

	published := time.Now().UTC()
	if req.PublishedDate != "" {
		var err error
		published, err = portfolio.ParsePublishedDate(req.PublishedDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "invalid published_date",
			})
		}
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = portfolio.Slugify(req.Title)
	}
	readTime := req.ReadTime
	if readTime <= 0 {
		readTime = 5
	}

	saved, err := a.Store.Save(portfolio.Article{
		ID:            id,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Tags:          FilterEmpty(req.Tags),
		PublishedDate: published,
		ReadTime:      readTime,
		Featured:      req.Featured,
		ExternalURL:   req.ExternalURL,
	})
	if err != nil {
		a.log.Error().Err(err).Str("id", id).Msg("save article")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"message": "Could not save article",
		})
	}

	if err := a.Repo.Refresh(); err != nil {
		a.log.Error().Err(err).Msg("refresh after save")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Article saved",
		"id":      saved.ID,
	})
}

func (a *App) handleDeleteArticle(c echo.Context) error {
	id := c.Param("id")

	// Only disk-backed articles are deletable; the seeded dataset is
	// compiled in.
	stored, err := a.Store.LoadAll()
	if err != nil {
		return err
	}
	var target *portfolio.Article
	for i := range stored {
		if stored[i].ID == id {
			target = &stored[i]
			break
		}
	}
	if target == nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"message": "Article not found",
		})
	}

	if err := a.Store.Delete(*target); err != nil {
		if err == portfolio.ErrArticleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false,
				"message": "Article not found",
			})
		}
		a.log.Error().Err(err).Str("id", id).Msg("delete article")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"message": "Could not delete article",
		})
	}

	if err := a.Repo.Refresh(); err != nil {
		a.log.Error().Err(err).Msg("refresh after delete")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Article deleted",
	})
}

// wantsJSON reports whether the client is an API caller rather than a
// browser form post.
func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	if strings.Contains(accept, echo.MIMEApplicationJSON) {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}
