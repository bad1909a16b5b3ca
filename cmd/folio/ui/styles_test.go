package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("FOLIO_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme when FOLIO_DARK_MODE=1")
	}

	t.Setenv("FOLIO_DARK_MODE", "0")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme when FOLIO_DARK_MODE=0")
	}

	t.Setenv("FOLIO_DARK_MODE", "")
	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme for a white COLORFGBG background")
	}

	t.Setenv("COLORFGBG", "15;default;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for a black COLORFGBG background")
	}
}

func TestThemeToggle(t *testing.T) {
	light := LightTheme()
	dark := light.Toggle()
	if !dark.IsDark || dark.Name != "dark" {
		t.Fatalf("toggle from light gave %+v", dark)
	}
	if dark.Toggle().IsDark {
		t.Fatalf("toggle from dark should give light")
	}
	if dark.GlamourStyle() != "dark" || light.GlamourStyle() != "light" {
		t.Fatalf("glamour style names do not follow the theme")
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("LIGHT").IsDark {
		t.Errorf("LIGHT should resolve to the light theme")
	}
	if !ThemeByName("dark").IsDark {
		t.Errorf("dark should resolve to the dark theme")
	}

	t.Setenv("FOLIO_DARK_MODE", "1")
	if !ThemeByName("auto").IsDark {
		t.Errorf("auto should fall back to detection")
	}
}

func TestStylesFollowTheme(t *testing.T) {
	s := NewStyles(DarkTheme())
	if s.Theme.Background != DarkBackground {
		t.Errorf("styles should keep their theme")
	}
	if got := s.RenderDivider(0); got != "" {
		t.Errorf("zero-width divider should be empty, got %q", got)
	}
	if s.RenderDivider(3) == "" {
		t.Errorf("divider should render")
	}
}
