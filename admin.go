package portfolio

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// unauthorized is the uniform failure for unauthenticated API writes. It
// never reveals whether the target resource exists.
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	ok, err := a.Catalog.VerifyAdmin(email, password)
	if err != nil && !errors.Is(err, ErrNotConfigured) {
		return err
	}
	if !ok {
		a.loginLimiter.Record(c.RealIP())
		return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
	}
	if err := setAdminSession(c, email); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleSectionCreate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	order, _ := strconv.Atoi(c.FormValue("order"))
	published := c.FormValue("published") != ""
	_, err := a.Catalog.CreateSection(
		c.FormValue("title"),
		c.FormValue("slug"),
		c.FormValue("description"),
		order,
		published,
	)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Could+not+create+section.")
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "created")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	sections := a.Catalog.AllSections()
	skills, err := a.Catalog.Skills()
	if err != nil {
		skills = []Skill{}
	}
	return Render(c, a.Views.AdminDashboard(sections, skills, msg, CsrfToken(c)))
}

// --- JSON API ---

type sectionUpdateRequest struct {
	SectionID   string              `json:"sectionId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Content     []ContentBlockInput `json:"content"`
}

// handleAPISectionUpdate applies the update/delete/reinsert sequence for a
// section's content. Responds with success or a generic failure.
func (a *App) handleAPISectionUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var req sectionUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := a.Catalog.UpdateSectionContent(req.SectionID, req.Title, req.Description, req.Content); err != nil {
		c.Logger().Errorf("section update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update section"})
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

type skillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

func (a *App) handleAPISkillCreate(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	sk, err := a.Catalog.CreateSkill(req.Name, req.Category, req.Order)
	if errors.Is(err, ErrInvalidSkill) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and category are required"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create skill"})
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, sk)
}

func (a *App) handleAPISkillUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	sk, err := a.Catalog.UpdateSkill(Skill{
		ID:       c.Param("id"),
		Name:     req.Name,
		Category: req.Category,
		Order:    req.Order,
	})
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Skill not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update skill"})
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, sk)
}

func (a *App) handleAPISkillDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	err := a.Catalog.DeleteSkill(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Skill not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete skill"})
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (a *App) handleAPIStorageStats(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	stats, err := a.Catalog.StorageStats()
	if err != nil {
		c.Logger().Errorf("storage stats failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch storage stats"})
	}
	return c.JSON(http.StatusOK, stats)
}
