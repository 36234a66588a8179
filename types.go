package brandstudio

// PendingDraft is the typed handoff between the content-creation pipeline
// and the review screen. It lives in the session stash until the user
// saves (or it expires).
type PendingDraft struct {
	ID                 int
	CompanyID          int
	Topic              string
	Platform           string
	ReferenceImageURLs []string
	Prompt             string
	Caption            string
}

// StagedImage is a reference image held locally before the pipeline runs.
// Data is the processed (downscaled, re-encoded) JPEG.
type StagedImage struct {
	Name        string
	ContentType string
	Data        []byte
	Width       int
	Height      int
}

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Level string // "success", "error", or "warning"
	Text  string
}

// BrandPersonalities are the selectable personality tags in the wizard.
var BrandPersonalities = []string{
	"Professional", "Friendly", "Creative", "Bold",
	"Authentic", "Playful", "Elegant", "Minimalist",
	"Innovative", "Trustworthy", "Energetic", "Sophisticated",
}

// Industries are the wizard's industry choices.
var Industries = []string{
	"Technology", "Fashion & Apparel", "Food & Beverage", "Health & Wellness",
	"Finance", "Real Estate", "Education", "Entertainment",
	"Retail", "Travel & Hospitality", "Beauty & Cosmetics", "Other",
}

// WizardPlatforms are the platforms offered during onboarding. YouTube is
// selectable here but not when creating individual posts.
var WizardPlatforms = []string{
	"instagram", "twitter", "facebook", "linkedin", "tiktok", "youtube",
}

// ContentPlatforms are the platforms a content post can target.
var ContentPlatforms = []string{
	"instagram", "twitter", "facebook", "linkedin", "tiktok",
}

// ValidContentPlatform reports whether p is an allowed post platform.
func ValidContentPlatform(p string) bool {
	for _, v := range ContentPlatforms {
		if v == p {
			return true
		}
	}
	return false
}

// ValidWizardPlatform reports whether p may be selected during onboarding.
func ValidWizardPlatform(p string) bool {
	for _, v := range WizardPlatforms {
		if v == p {
			return true
		}
	}
	return false
}
