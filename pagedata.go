package brandstudio

import (
	"html/template"

	"github.com/labstack/echo/v4"

	"github.com/topbox/brandstudio/api"
)

// NavItem is one entry in the shell sidebar.
type NavItem struct {
	Path     string
	Label    string
	Icon     string
	Active   bool
	Disabled bool
}

// Page carries the data every template needs: shell chrome, the
// selected company, the CSRF token, and any queued flash messages.
type Page struct {
	AppName string
	Nav     []NavItem
	Company *api.Company
	CSRF    string
	Flashes []Flash
}

// PlatformOption is a selectable social platform.
type PlatformOption struct {
	ID    string
	Label string
	Icon  string
}

// WizardPlatformOptions are offered during onboarding.
var WizardPlatformOptions = []PlatformOption{
	{ID: "instagram", Label: "Instagram", Icon: "📸"},
	{ID: "twitter", Label: "Twitter", Icon: "🐦"},
	{ID: "facebook", Label: "Facebook", Icon: "📘"},
	{ID: "linkedin", Label: "LinkedIn", Icon: "💼"},
	{ID: "tiktok", Label: "TikTok", Icon: "🎵"},
	{ID: "youtube", Label: "YouTube", Icon: "▶️"},
}

// ContentPlatformOptions are the publish targets for content creation.
var ContentPlatformOptions = []PlatformOption{
	{ID: "instagram", Label: "Instagram", Icon: "📸"},
	{ID: "twitter", Label: "Twitter", Icon: "🐦"},
	{ID: "facebook", Label: "Facebook", Icon: "📘"},
	{ID: "linkedin", Label: "LinkedIn", Icon: "💼"},
	{ID: "tiktok", Label: "TikTok", Icon: "🎵"},
}

type HomeData struct {
	Page
	Companies []api.Company
	LoadError string
}

type WizardData struct {
	Page
	Steps         []string
	Step          int
	Form          *WizardForm
	Error         string
	Personalities []string
	Industries    []string
	Platforms     []PlatformOption
}

type GuidelinesData struct {
	Page
	Mode          string
	Generated     string
	GeneratedHTML template.HTML
	Existing      string
	ExistingHTML  template.HTML
	LoadError     string
	Extensions    []string
}

type ContentData struct {
	Page
	Topic     string
	Platform  string
	Platforms []PlatformOption
	Images    []StagedImage
}

type ReviewData struct {
	Page
	Draft       *PendingDraft
	EditPrompt  bool
	EditCaption bool
}

type ErrorData struct {
	Page
	Status int
}

// page assembles the shared shell data for a request. Navigation past
// the directory is disabled until a company is selected.
func (a *App) page(c echo.Context, active string) Page {
	company, selected := SelectedCompany(c)

	nav := []NavItem{
		{Path: "/", Label: "Companies", Icon: "🏢"},
		{Path: "/brand-guidelines", Label: "Brand Guidelines", Icon: "📋", Disabled: !selected},
		{Path: "/content", Label: "Content Creation", Icon: "✨", Disabled: !selected},
		{Path: "/content/review", Label: "Content Review", Icon: "👁", Disabled: !selected},
	}
	for i := range nav {
		nav[i].Active = nav[i].Path == active
	}

	p := Page{
		AppName: a.Config.Name,
		Nav:     nav,
		CSRF:    CsrfToken(c),
		Flashes: popFlashes(c),
	}
	if selected {
		p.Company = &company
	}
	return p
}
