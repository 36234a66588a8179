package brandstudio

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// handleWizard renders the onboarding wizard at the session's current step.
func (a *App) handleWizard(c echo.Context) error {
	id, err := stashID(c)
	if err != nil {
		return err
	}
	form, step := a.stash.Wizard(id)
	return a.renderWizard(c, form, step, "")
}

// handleWizardPost advances, rewinds, cancels, or submits the wizard.
// Posted fields for the current step are bound first so nothing typed is
// lost on navigation.
func (a *App) handleWizardPost(c echo.Context) error {
	id, err := stashID(c)
	if err != nil {
		return err
	}

	form, step := a.stash.Wizard(id)
	if s, err := strconv.Atoi(c.FormValue("step")); err == nil && s >= 0 && s < len(WizardSteps) {
		step = s
	}

	if err := bindWizardStep(c, &form, step); err != nil {
		return err
	}

	switch c.FormValue("action") {
	case "cancel":
		a.stash.ClearWizard(id)
		return c.Redirect(http.StatusSeeOther, "/")

	case "back":
		if step > 0 {
			step--
		}
		a.stash.SetWizard(id, form, step)
		return c.Redirect(http.StatusSeeOther, "/companies/new")

	case "submit":
		if !form.CanAdvance(step) {
			a.stash.SetWizard(id, form, step)
			return a.renderWizard(c, form, step, "Please complete all required fields")
		}
		company, err := a.submitWizard(c.Request().Context(), form)
		if err != nil {
			c.Logger().Errorf("wizard submit: %v", err)
			a.stash.SetWizard(id, form, step)
			return a.renderWizard(c, form, step, err.Error())
		}
		a.stash.ClearWizard(id)
		if err := setSelectedCompany(c, company); err != nil {
			return err
		}
		addFlash(c, "success", "Company created and brand guidelines generated")
		return c.Redirect(http.StatusSeeOther, "/brand-guidelines")

	default: // next
		if !form.CanAdvance(step) {
			a.stash.SetWizard(id, form, step)
			return a.renderWizard(c, form, step, "Please complete all required fields")
		}
		if step < len(WizardSteps)-1 {
			step++
		}
		a.stash.SetWizard(id, form, step)
		return c.Redirect(http.StatusSeeOther, "/companies/new")
	}
}

func (a *App) renderWizard(c echo.Context, form WizardForm, step int, errMsg string) error {
	return a.render(c, "wizard", WizardData{
		Page:          a.page(c, "/"),
		Steps:         WizardSteps,
		Step:          step,
		Form:          &form,
		Error:         errMsg,
		Personalities: BrandPersonalities,
		Industries:    Industries,
		Platforms:     WizardPlatformOptions,
	})
}
