package folio

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/eringen/folio/auth"
)

const (
	testTOTPSecret = "JBSWY3DPEHPK3PXP"
	testPassword   = "correct-horse"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := New(SiteConfig{
		Name:          "Test Portfolio",
		URL:           "http://test.local",
		DataDir:       t.TempDir(),
		StaticDir:     t.TempDir(),
		AssetsDir:     t.TempDir(),
		AdminUsername: "admin",
		AdminPassword: testPassword,
		TOTPSecret:    testTOTPSecret,
		TokenSecret:   "test-signing-secret",
		TokenTTL:      30 * time.Minute,
	})
	if err := app.initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return app
}

func doRequest(app *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, app *App) *http.Cookie {
	t.Helper()
	code, err := auth.CodeAt(testTOTPSecret, time.Now())
	if err != nil {
		t.Fatalf("CodeAt: %v", err)
	}
	form := url.Values{
		"username":  {"admin"},
		"password":  {testPassword},
		"totp_code": {code},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := doRequest(app, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "access_token" {
			return cookie
		}
	}
	t.Fatalf("no access_token cookie set")
	return nil
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("status field = %q", body["status"])
	}
}

func TestHomePageRenders(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Test Portfolio") {
		t.Fatalf("home page missing site name")
	}
}

func TestAPIProjectsFiltering(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var all []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) == 0 {
		t.Fatalf("expected seeded projects")
	}

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/api/projects?featured=true", nil))
	var featured []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &featured); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(featured) >= len(all) {
		t.Fatalf("featured filter had no effect: %d vs %d", len(featured), len(all))
	}

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/api/projects?featured=banana", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad featured value: status = %d", rec.Code)
	}
}

func TestAPIProjectNotFound(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/api/projects/definitely-missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdminPageRedirectsWhenAnonymous(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/admin/manage-articles", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("redirect to %q", loc)
	}
}

func TestAdminAPIUnauthorizedWhenAnonymous(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/admin/save-article", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(app, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLoginSetsCookieAndGrantsAccess(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	if !cookie.HttpOnly {
		t.Fatalf("cookie must be http-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie same-site = %v", cookie.SameSite)
	}
	if !strings.HasPrefix(cookie.Value, "Bearer ") {
		t.Fatalf("cookie value %q missing Bearer prefix", cookie.Value)
	}
	if cookie.MaxAge != int((30 * time.Minute).Seconds()) {
		t.Fatalf("cookie max-age = %d", cookie.MaxAge)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/manage-articles", nil)
	req.AddCookie(cookie)
	rec := doRequest(app, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated page status = %d", rec.Code)
	}
}

func TestLoginRejectsBadTOTP(t *testing.T) {
	app := newTestApp(t)
	form := url.Values{
		"username":  {"admin"},
		"password":  {testPassword},
		"totp_code": {"000000"},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := doRequest(app, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "access_token" {
			t.Fatalf("failed login must not set a session cookie")
		}
	}
}

func TestLoginRateLimited(t *testing.T) {
	app := newTestApp(t)
	form := url.Values{
		"username":  {"admin"},
		"password":  {"wrong"},
		"totp_code": {"000000"},
	}
	var rec *httptest.ResponseRecorder
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec = doRequest(app, req)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status after repeated failures = %d", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	req.AddCookie(cookie)
	rec := doRequest(app, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("logout status = %d", rec.Code)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("logout did not clear the session cookie")
	}

	// Without the cookie the next admin request is anonymous again.
	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/admin/manage-articles", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("post-logout status = %d", rec.Code)
	}
}

func TestSaveAndDeleteArticleFlow(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	payload := `{
		"title": "Testing in Production",
		"excerpt": "Notes from the field.",
		"category": "DevOps",
		"tags": ["testing", "ops"],
		"published_date": "2024-04-01",
		"read_time": 4
	}`
	req := httptest.NewRequest(http.MethodPost, "/admin/save-article", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := doRequest(app, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var saveResp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &saveResp); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if !saveResp.Success || saveResp.ID != "testing-in-production" {
		t.Fatalf("save response: %+v", saveResp)
	}

	// The saved article is visible through the public API.
	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/api/articles/"+saveResp.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("article lookup status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/delete-article/"+saveResp.ID, nil)
	req.AddCookie(cookie)
	rec = doRequest(app, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Second delete reports not-found.
	req = httptest.NewRequest(http.MethodDelete, "/admin/delete-article/"+saveResp.ID, nil)
	req.AddCookie(cookie)
	rec = doRequest(app, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d", rec.Code)
	}
}

func TestDeleteSeededArticleNotFound(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	// Seeded articles are compiled in, not on disk, so they are not
	// deletable.
	seeded := app.Repo.Articles()[0].ID
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete-article/"+seeded, nil)
	req.AddCookie(cookie)
	rec := doRequest(app, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestFetchMediumRequiresURL(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest(http.MethodPost, "/admin/fetch-medium", strings.NewReader(`{"url":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := doRequest(app, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRobotsTxt(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Disallow: /admin/") {
		t.Fatalf("robots.txt missing admin disallow")
	}
}

func TestSitemapAndFeed(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<urlset") {
		t.Fatalf("sitemap status = %d", rec.Code)
	}

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/feed.xml", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<rss") {
		t.Fatalf("feed status = %d", rec.Code)
	}
}
