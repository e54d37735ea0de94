package ui

import "github.com/yeager/fedora-l10n/internal/config"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyRefresh              = "refresh"
	KeyFilterProjects       = "filter_projects"
	KeyLanguage             = "language"
	KeyAppLanguage          = "app_language"
	KeyExport               = "export"
	KeySettings             = "settings"
	KeyAPIKey               = "api_key"
	KeyClearCache           = "clear_cache"
	KeyNotifications        = "notifications"
	KeyAbout                = "about"
	KeyFile                 = "file"
	KeyHelp                 = "help"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeyBack                 = "back"
	KeyOpenInWeblate        = "open_in_weblate"
	KeyLoadingProjects      = "loading_projects"
	KeyLoadingProjectsPage  = "loading_projects_page"
	KeyLoadingStatistics    = "loading_statistics"
	KeyLoadingComponents    = "loading_components"
	KeyUnableToRefresh      = "unable_to_refresh"
	KeyShowingCachedData    = "showing_cached_data"
	KeyLastUpdated          = "last_updated"
	KeyAPIKeyTitle          = "api_key_title"
	KeyAPIKeyBody           = "api_key_body"
	KeyAPIKeyPlaceholder    = "api_key_placeholder"
	KeyWelcomeTitle         = "welcome_title"
	KeyWelcomeBody          = "welcome_body"
	KeyGetStarted           = "get_started"
	KeyLowTranslationsTitle = "low_translations_title"
	KeyLowTranslationsBody  = "low_translations_body"
	KeyCacheCleared         = "cache_cleared"
	KeySettingsSaved        = "settings_saved"
	KeyStatsLanguage        = "stats_language"
	KeyAboutComment         = "about_comment"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = config.DetectSystemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"sv": "Svenska",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "Fedora Translation Status",
		KeyRefresh:              "Refresh",
		KeyFilterProjects:       "Filter projects…",
		KeyLanguage:             "Language:",
		KeyAppLanguage:          "Interface Language",
		KeyExport:               "Export",
		KeySettings:             "Settings",
		KeyAPIKey:               "API Key…",
		KeyClearCache:           "Clear Cache",
		KeyNotifications:        "Notifications",
		KeyAbout:                "About",
		KeyFile:                 "File",
		KeyHelp:                 "Help",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeyBack:                 "Back to projects",
		KeyOpenInWeblate:        "Open in Weblate",
		KeyLoadingProjects:      "Loading projects…",
		KeyLoadingProjectsPage:  "Loading projects… page %d/%d",
		KeyLoadingStatistics:    "Loading statistics… %d/%d",
		KeyLoadingComponents:    "Loading components…",
		KeyUnableToRefresh:      "Unable to refresh",
		KeyShowingCachedData:    "Showing cached data",
		KeyLastUpdated:          "Last updated: %s",
		KeyAPIKeyTitle:          "Weblate API Key",
		KeyAPIKeyBody:           "A Weblate API key is needed to fetch translation statistics.\n\nGet your key from:\n" + WeblateProfileURL,
		KeyAPIKeyPlaceholder:    "Paste your API key here…",
		KeyWelcomeTitle:         "Welcome to Fedora Translation Status!",
		KeyWelcomeBody:          "This app shows the translation progress of Fedora projects via the Weblate API.\n\nYour system language is auto-detected, but you can change it using the language field.\n\nClick on a project to see its components.",
		KeyGetStarted:           "Get Started",
		KeyLowTranslationsTitle: "Fedora L10n: Low translations",
		KeyLowTranslationsBody:  "%d projects below 50%%: %s",
		KeyCacheCleared:         "Cache cleared",
		KeySettingsSaved:        "Settings saved",
		KeyStatsLanguage:        "Statistics Language",
		KeyAboutComment:         "View Fedora translation status from Weblate",
	}

	// Swedish texts
	l.texts["sv"] = map[string]string{
		KeyAppTitle:             "Fedora översättningsstatus",
		KeyRefresh:              "Uppdatera",
		KeyFilterProjects:       "Filtrera projekt…",
		KeyLanguage:             "Språk:",
		KeyAppLanguage:          "Gränssnittsspråk",
		KeyExport:               "Exportera",
		KeySettings:             "Inställningar",
		KeyAPIKey:               "API-nyckel…",
		KeyClearCache:           "Töm cache",
		KeyNotifications:        "Aviseringar",
		KeyAbout:                "Om",
		KeyFile:                 "Arkiv",
		KeyHelp:                 "Hjälp",
		KeySave:                 "Spara",
		KeyCancel:               "Avbryt",
		KeyBack:                 "Tillbaka till projekt",
		KeyOpenInWeblate:        "Öppna i Weblate",
		KeyLoadingProjects:      "Läser in projekt…",
		KeyLoadingProjectsPage:  "Läser in projekt… sida %d/%d",
		KeyLoadingStatistics:    "Läser in statistik… %d/%d",
		KeyLoadingComponents:    "Läser in komponenter…",
		KeyUnableToRefresh:      "Kunde inte uppdatera",
		KeyShowingCachedData:    "Visar cachade data",
		KeyLastUpdated:          "Senast uppdaterad: %s",
		KeyAPIKeyTitle:          "Weblate API-nyckel",
		KeyAPIKeyBody:           "En Weblate API-nyckel behövs för att hämta översättningsstatistik.\n\nHämta din nyckel från:\n" + WeblateProfileURL,
		KeyAPIKeyPlaceholder:    "Klistra in din API-nyckel här…",
		KeyWelcomeTitle:         "Välkommen till Fedora översättningsstatus!",
		KeyWelcomeBody:          "Appen visar översättningsläget för Fedoras projekt via Weblate-API:et.\n\nDitt systemspråk identifieras automatiskt, men du kan ändra det i språkfältet.\n\nKlicka på ett projekt för att se dess komponenter.",
		KeyGetStarted:           "Kom igång",
		KeyLowTranslationsTitle: "Fedora L10n: Låg översättningsgrad",
		KeyLowTranslationsBody:  "%d projekt under 50 %%: %s",
		KeyCacheCleared:         "Cachen har tömts",
		KeySettingsSaved:        "Inställningarna har sparats",
		KeyStatsLanguage:        "Statistikspråk",
		KeyAboutComment:         "Visa Fedoras översättningsstatus från Weblate",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "Estado das traduções do Fedora",
		KeyRefresh:              "Atualizar",
		KeyFilterProjects:       "Filtrar projetos…",
		KeyLanguage:             "Idioma:",
		KeyAppLanguage:          "Idioma da Interface",
		KeyExport:               "Exportar",
		KeySettings:             "Configurações",
		KeyAPIKey:               "Chave de API…",
		KeyClearCache:           "Limpar Cache",
		KeyNotifications:        "Notificações",
		KeyAbout:                "Sobre",
		KeyFile:                 "Arquivo",
		KeyHelp:                 "Ajuda",
		KeySave:                 "Salvar",
		KeyCancel:               "Cancelar",
		KeyBack:                 "Voltar aos projetos",
		KeyOpenInWeblate:        "Abrir no Weblate",
		KeyLoadingProjects:      "Carregando projetos…",
		KeyLoadingProjectsPage:  "Carregando projetos… página %d/%d",
		KeyLoadingStatistics:    "Carregando estatísticas… %d/%d",
		KeyLoadingComponents:    "Carregando componentes…",
		KeyUnableToRefresh:      "Não foi possível atualizar",
		KeyShowingCachedData:    "Mostrando dados em cache",
		KeyLastUpdated:          "Última atualização: %s",
		KeyAPIKeyTitle:          "Chave de API do Weblate",
		KeyAPIKeyBody:           "Uma chave de API do Weblate é necessária para buscar estatísticas de tradução.\n\nObtenha sua chave em:\n" + WeblateProfileURL,
		KeyAPIKeyPlaceholder:    "Cole sua chave de API aqui…",
		KeyWelcomeTitle:         "Bem-vindo ao Estado das traduções do Fedora!",
		KeyWelcomeBody:          "Este app mostra o progresso de tradução dos projetos Fedora via API do Weblate.\n\nO idioma do sistema é detectado automaticamente, mas você pode alterá-lo no campo de idioma.\n\nClique em um projeto para ver seus componentes.",
		KeyGetStarted:           "Começar",
		KeyLowTranslationsTitle: "Fedora L10n: Traduções baixas",
		KeyLowTranslationsBody:  "%d projetos abaixo de 50%%: %s",
		KeyCacheCleared:         "Cache limpo",
		KeySettingsSaved:        "Configurações salvas",
		KeyStatsLanguage:        "Idioma das Estatísticas",
		KeyAboutComment:         "Veja o estado das traduções do Fedora no Weblate",
	}
}
