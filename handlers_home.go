package brandstudio

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// handleHome renders the company directory. A backend failure still
// renders the page so the user can retry or onboard a new company.
func (a *App) handleHome(c echo.Context) error {
	data := HomeData{Page: a.page(c, "/")}

	companies, err := a.Backend.ListCompanies(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list companies: %v", err)
		data.LoadError = "Could not load companies: " + err.Error()
	}
	data.Companies = companies

	return a.render(c, "home", data)
}

// handleSelectCompany makes the posted company the active one and moves
// to its guidelines.
func (a *App) handleSelectCompany(c echo.Context) error {
	id, err := strconv.Atoi(c.FormValue("companyId"))
	if err != nil || id <= 0 {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	company, err := a.Backend.GetCompany(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("get company %d: %v", id, err)
		addFlash(c, "error", "Could not load company: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := setSelectedCompany(c, company); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/brand-guidelines")
}

// handleQuickCreate creates a company from just a name, with placeholder
// profile fields, skipping the wizard.
func (a *App) handleQuickCreate(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		addFlash(c, "error", "Company name is required")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	form := WizardForm{
		BusinessName:     name,
		Industry:         "Other",
		Email:            "hello@example.com",
		BrandDescription: "To be completed",
		TargetAudience:   "To be completed",
		BrandPersonality: []string{"Professional"},
		Platforms:        []string{"instagram"},
	}

	company, err := a.Backend.CreateCompany(c.Request().Context(), form.createRequest())
	if err != nil {
		c.Logger().Errorf("quick create: %v", err)
		addFlash(c, "error", "Could not create company: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if company.ID <= 0 {
		addFlash(c, "error", "Failed to create company")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := setSelectedCompany(c, company); err != nil {
		return err
	}
	addFlash(c, "success", "Company created")
	return c.Redirect(http.StatusSeeOther, "/brand-guidelines")
}
