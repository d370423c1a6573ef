// Package folio is a personal portfolio site built with Go, Echo, and templ.
// It serves portfolio pages and a JSON API over an in-memory dataset,
// a TOTP-protected admin area with stateless signed-token sessions,
// JSON-file article persistence, and a Medium article metadata importer.
package folio

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eringen/folio/analytics"
	"github.com/eringen/folio/auth"
	"github.com/eringen/folio/medium"
	"github.com/eringen/folio/portfolio"
	"github.com/eringen/folio/views"
)

// App is the central folio application. It wires together the repository,
// article store, auth gate, metadata importer, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Repo   *portfolio.Repository
	Store  *portfolio.ArticleStore
	Gate   *auth.Gate

	site           views.Site
	fetcher        *medium.Fetcher
	extractor      *medium.Extractor
	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	analyticsSvc   *analytics.Service
	stopCleanup    func()
	customRoutes   []func(*App)
	log            zerolog.Logger
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		log:    zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	a.site = views.Site{
		Name:        cfg.Name,
		URL:         cfg.URL,
		Description: cfg.Description,
		Author:      cfg.Author,
	}

	return a
}

// Start initializes the store, repository, auth gate, middleware, and
// routes, then starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if err := a.initialize(); err != nil {
		return err
	}

	a.log.Info().Str("addr", a.Config.Addr).Msg("starting server")
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) initialize() error {
	if a.Config.AdminUsername == "" {
		return fmt.Errorf("folio: AdminUsername is required")
	}
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.TOTPSecret == "" {
		return fmt.Errorf("folio: TOTPSecret is required")
	}
	if a.Config.TokenSecret == "" {
		return fmt.Errorf("folio: TokenSecret is required")
	}

	store, err := portfolio.NewArticleStore(a.Config.DataDir, a.log)
	if err != nil {
		return fmt.Errorf("folio: init article store: %w", err)
	}
	a.Store = store

	seed := portfolio.Seed(portfolio.ContactInfo{
		Email:    a.Config.ContactEmail,
		LinkedIn: a.Config.LinkedInURL,
		GitHub:   a.Config.GitHubURL,
		Twitter:  a.Config.TwitterURL,
		Medium:   a.Config.MediumURL,
	})
	repo, err := portfolio.NewRepository(seed, store)
	if err != nil {
		return fmt.Errorf("folio: init repository: %w", err)
	}
	a.Repo = repo

	a.Gate = auth.New(auth.Config{
		Username:      a.Config.AdminUsername,
		Password:      a.Config.AdminPassword,
		TOTPSecret:    a.Config.TOTPSecret,
		SigningSecret: a.Config.TokenSecret,
		TokenTTL:      a.Config.TokenTTL,
	})

	a.fetcher = medium.NewFetcher(nil, a.log)
	a.extractor = medium.NewExtractor()
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		analyticsStore, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("folio: init analytics: %w", err)
		}
		a.analyticsStore = analyticsStore
		svc, err := analytics.NewService(analyticsStore)
		if err != nil {
			return fmt.Errorf("folio: init analytics salt: %w", err)
		}
		a.analyticsSvc = svc
		a.stopCleanup = analyticsStore.StartCleanupScheduler(365, 24*time.Hour)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Static assets
	e.Static("/static", a.Config.StaticDir)
	e.Static("/assets", a.Config.AssetsDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/projects", a.handleProjects)
	e.GET("/articles", a.handleArticles)
	e.GET("/all-articles", a.handleAllArticles)

	// JSON API
	api := e.Group("/api")
	api.GET("/health", a.handleHealth)
	api.GET("/contact", a.handleContact)
	api.GET("/projects", a.handleAPIProjects)
	api.GET("/projects/:id", a.handleAPIProject)
	api.GET("/articles", a.handleAPIArticles)
	api.GET("/articles/:id", a.handleAPIArticle)
	api.GET("/tech-stack", a.handleAPITechStack)

	// Admin pages
	e.GET("/admin/login", a.handleAdminLoginPage)
	e.POST("/admin/login", a.handleAdminLogin)
	e.GET("/admin/logout", a.handleAdminLogout)
	e.GET("/admin/add-article", a.requirePage(a.handleAdminAddArticle))
	e.GET("/admin/manage-articles", a.requirePage(a.handleAdminManageArticles))

	// Admin API
	e.POST("/admin/fetch-medium", a.requireAPI(a.handleFetchMedium))
	e.POST("/admin/save-article", a.requireAPI(a.handleSaveArticle))
	e.DELETE("/admin/delete-article/:id", a.requireAPI(a.handleDeleteArticle))
	e.GET("/admin/images", a.requireAPI(a.handleImageList))
	e.POST("/admin/images/upload", a.requireAPI(a.handleImageUpload))
	e.DELETE("/admin/images/:filename", a.requireAPI(a.handleImageDelete))

	// Analytics
	if a.analyticsSvc != nil {
		handler := analytics.NewHandler(a.analyticsSvc)
		e.POST("/api/analytics/event", handler.HandleEvent)
		e.GET("/admin/analytics/stats", a.requireAPI(handler.HandleStats))
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopCleanup != nil {
		a.stopCleanup()
	}
	if a.analyticsStore != nil {
		a.analyticsStore.Close()
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
