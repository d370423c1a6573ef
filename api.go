package folio

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *App) handleContact(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Repo.Snapshot().Contact)
}

func (a *App) handleAPIProjects(c echo.Context) error {
	category := c.QueryParam("category")
	featured, err := parseFeatured(c.QueryParam("featured"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "featured must be true or false"})
	}
	return c.JSON(http.StatusOK, a.Repo.FilterProjects(category, featured))
}

func (a *App) handleAPIProject(c echo.Context) error {
	project, ok := a.Repo.ProjectByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
	}
	return c.JSON(http.StatusOK, project)
}

func (a *App) handleAPIArticles(c echo.Context) error {
	category := c.QueryParam("category")
	featured, err := parseFeatured(c.QueryParam("featured"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "featured must be true or false"})
	}
	return c.JSON(http.StatusOK, a.Repo.FilterArticles(category, featured))
}

func (a *App) handleAPIArticle(c echo.Context) error {
	article, ok := a.Repo.ArticleByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Article not found"})
	}
	return c.JSON(http.StatusOK, article)
}

func (a *App) handleAPITechStack(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Repo.TechByCategory(c.QueryParam("category")))
}

func parseFeatured(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
