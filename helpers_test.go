package brandstudio

import "testing"

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"photo.png", "photo.png"},
		{"my photo.png", "my-photo.png"},
		{"../../etc/passwd", "passwd"},
		{"résumé.pdf", "rsum.pdf"},
		{"...", "upload"},
		{"", "upload"},
	}
	for _, tt := range tests {
		if got := SafeFilename(tt.in); got != tt.want {
			t.Errorf("SafeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinNonEmpty(t *testing.T) {
	if got := JoinNonEmpty("Bold", "", "  ", "warm"); got != "Bold, warm" {
		t.Errorf("JoinNonEmpty = %q", got)
	}
	if got := JoinNonEmpty(); got != "" {
		t.Errorf("JoinNonEmpty() = %q", got)
	}
}

func TestAllowedGuidelineFile(t *testing.T) {
	for _, name := range []string{"brand.pdf", "notes.TXT", "guide.docx", "old.doc"} {
		if !AllowedGuidelineFile(name) {
			t.Errorf("%q should be accepted", name)
		}
	}
	for _, name := range []string{"photo.png", "run.exe", "noext", "archive.zip"} {
		if AllowedGuidelineFile(name) {
			t.Errorf("%q should be rejected", name)
		}
	}
}

func TestValidContentPlatform(t *testing.T) {
	if !ValidContentPlatform("instagram") {
		t.Error("instagram is a valid post platform")
	}
	if ValidContentPlatform("youtube") {
		t.Error("youtube is onboarding-only, not a post platform")
	}
	if !ValidWizardPlatform("youtube") {
		t.Error("youtube is selectable during onboarding")
	}
}
