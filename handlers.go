package portfolio

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	data := a.Cache.Payload()
	highlight := c.QueryParam("highlight")
	return Render(c, a.Views.Portfolio(data, highlight, a.Config.URL))
}

// handleSection serves the portfolio page scrolled and pulsed to the named
// section.
func (a *App) handleSection(c echo.Context) error {
	slug := c.Param("slug")
	data := a.Cache.Payload()
	found := false
	for _, sec := range data.Sections {
		if sec.Slug == slug {
			found = true
			break
		}
	}
	if !found {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	return Render(c, a.Views.Portfolio(data, slug, a.Config.URL))
}

// handleAPIPortfolio returns the full payload for page rendering: published
// sections, skills, and whether the data is live or fallback.
func (a *App) handleAPIPortfolio(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Cache.Payload())
}

func (a *App) handleAPISkillList(c echo.Context) error {
	skills, err := a.Catalog.Skills()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch skills"})
	}
	return c.JSON(http.StatusOK, skills)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
