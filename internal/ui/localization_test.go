package ui

import "testing"

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("GetCurrentLanguage() = %q, want %q", got, "en")
	}

	// Unknown language keeps the current one
	l.SetLanguage("xx")
	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("after SetLanguage(xx): GetCurrentLanguage() = %q, want %q", got, "en")
	}

	// Unknown key falls back to the key itself
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("GetText(no_such_key) = %q", got)
	}
}

func TestLocalizationSwitch(t *testing.T) {
	l := NewLocalization()

	english := l.GetText(KeyRefresh)
	l.SetLanguage("sv")

	if got := l.GetCurrentLanguage(); got != "sv" {
		t.Errorf("GetCurrentLanguage() = %q, want %q", got, "sv")
	}
	if got := l.GetText(KeyRefresh); got == english {
		t.Errorf("GetText(KeyRefresh) = %q, want a Swedish translation", got)
	}
}

func TestLocalizationSystemLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "sv_SE.UTF-8")

	l := NewLocalization()
	l.SetLanguage("system")

	if got := l.GetCurrentLanguage(); got != "sv" {
		t.Errorf("GetCurrentLanguage() = %q, want %q from locale", got, "sv")
	}
}

func TestLocalizationAllLanguagesCoverKeys(t *testing.T) {
	l := NewLocalization()

	keys := []string{
		KeyAppTitle, KeyRefresh, KeyFilterProjects, KeyExport, KeySettings,
		KeyAPIKeyTitle, KeyWelcomeTitle, KeyLoadingProjects, KeyUnableToRefresh,
		KeyShowingCachedData, KeyLastUpdated, KeyBack, KeyOpenInWeblate,
	}

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("language %q advertised but has no text table", code)
			continue
		}
		for _, key := range keys {
			if texts[key] == "" {
				t.Errorf("language %q is missing key %q", code, key)
			}
		}
	}
}
