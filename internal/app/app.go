package app

import (
	"context"
	"fmt"
	"time"

	"github.com/softglow/foyer/internal/assets"
	"github.com/softglow/foyer/internal/config"
	"github.com/softglow/foyer/internal/content"
	"github.com/softglow/foyer/internal/prefs"
	"github.com/softglow/foyer/internal/steam"
	"github.com/softglow/foyer/internal/ui"
)

// Options configure the foyer application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/foyer/prefs.toml
	ContentURL string // overrides the configured content URL
	Theme      string // session-only theme override
	OpenModal  string // modal id to open after load
}

// Run boots the foyer TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.ContentURL != "" {
		cfg.ContentURL = opts.ContentURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	contentURL := cfg.ContentURL

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = cfg.PrefsPath
	}
	userPrefs := prefs.Load(prefsPath)

	client, err := content.NewClient(contentURL)
	if err != nil {
		return fmt.Errorf("init content client: %w", err)
	}

	cache, err := assets.NewCache(contentURL)
	if err != nil {
		return fmt.Errorf("init asset cache: %w", err)
	}

	resolver := steam.NewResolver(time.Duration(cfg.HandoffWaitMS) * time.Millisecond)

	// A fragment on the content URL deep-links a modal; an explicit
	// --open flag wins over it.
	initialModal := opts.OpenModal
	if initialModal == "" {
		initialModal = content.Fragment(contentURL)
	}

	uiOpts := ui.Options{
		Context:      ctx,
		Loader:       client,
		Assets:       cache,
		Resolver:     resolver,
		Prefs:        userPrefs,
		PrefsPath:    prefsPath,
		ThemeName:    opts.Theme,
		InitialModal: initialModal,
		EagerImages:  cfg.EagerImages,
		ImageWait:    time.Duration(cfg.ImageWaitMS) * time.Millisecond,
	}
	return ui.Run(uiOpts)
}
