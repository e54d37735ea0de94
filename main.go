package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/spf13/cobra"

	"github.com/yeager/fedora-l10n/internal/cache"
	"github.com/yeager/fedora-l10n/internal/config"
	"github.com/yeager/fedora-l10n/internal/export"
	"github.com/yeager/fedora-l10n/internal/platform"
	"github.com/yeager/fedora-l10n/internal/stats"
	"github.com/yeager/fedora-l10n/internal/ui"
	"github.com/yeager/fedora-l10n/internal/weblate"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "org.yeager.fedora-l10n"
	AppName = "Fedora Translation Status"
)

func main() {
	root := &cobra.Command{
		Use:     "fedora-l10n",
		Short:   AppName + " — Fedora translation statistics from Weblate",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}

	root.AddCommand(
		newExportCmd(),
		newClearCacheCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runGUI starts the Fyne application
func runGUI() error {
	service, store, cfg, err := buildService()
	if err != nil {
		return err
	}

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	settings.ApplyDefaultLanguage(cfg.Language)
	if settings.GetDarkTheme() {
		myApp.Settings().SetTheme(ui.NewCompactThemeVariant(fynetheme.VariantDark))
	} else {
		myApp.Settings().SetTheme(ui.NewCompactTheme())
	}

	myWindow := myApp.NewWindow(AppName)

	rootUI := ui.NewRootUI(myWindow, myApp, service, store)
	rootUI.Refresh()

	myWindow.ShowAndRun()
	return nil
}

// buildService wires the cache-backed Weblate client and statistics service
func buildService() (*stats.Service, *cache.Store, config.File, error) {
	cfg, err := config.LoadFile()
	if err != nil {
		return nil, nil, config.File{}, fmt.Errorf("load config: %w", err)
	}

	cacheDir, err := platform.CacheDir()
	if err != nil {
		return nil, nil, config.File{}, fmt.Errorf("resolve cache dir: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(cacheDir); err != nil {
		log.Printf("failed to ensure cache dir: %v", err)
	}

	store := cache.NewStore(cacheDir, cache.DefaultTTL)

	client := weblate.NewClient(weblate.Config{
		BaseURL:  cfg.BaseURL,
		KeyFunc:  config.APIKey,
		PageSize: cfg.PageSize,
		Store:    store,
	})

	return stats.NewService(client), store, cfg, nil
}

// newExportCmd exports the overview to CSV or JSON without starting the GUI
func newExportCmd() *cobra.Command {
	var (
		format string
		lang   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export translation statistics to CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			service, _, cfg, err := buildService()
			if err != nil {
				return err
			}

			if lang == "" {
				lang = cfg.Language
			}
			if lang == "" {
				lang = config.DetectSystemLanguage()
			}

			rows, err := service.LoadOverview(cmd.Context(), lang)
			if err != nil {
				return err
			}

			if output == "" {
				return export.Write(os.Stdout, f, rows)
			}
			if err := export.WriteFile(output, f, rows); err != nil {
				return err
			}
			fmt.Printf("Exported %d projects to %s\n", len(rows), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "output format: csv or json")
	cmd.Flags().StringVar(&lang, "lang", "", "language code (default: system locale)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// newVersionCmd prints the build version
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fedora-l10n %s\n", version)
		},
	}
}

// newClearCacheCmd removes all cached API responses
func newClearCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Remove cached Weblate API responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cacheDir, err := platform.CacheDir()
			if err != nil {
				return err
			}
			store := cache.NewStore(cacheDir, cache.DefaultTTL)
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Printf("Cache cleared: %s\n", cacheDir)
			return nil
		},
	}
}
