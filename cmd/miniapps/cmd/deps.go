package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"miniapps/internal/catalog"
	"miniapps/internal/config"
	"miniapps/internal/render"
)

// setupLogger installs the default slog logger: text in development,
// JSON elsewhere.
func setupLogger(cfg *config.Config) {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// loadApps returns the catalog from path, or the built-in one when path
// is empty.
func loadApps(path string) ([]catalog.App, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

// newRenderer builds the page renderer, using hostTemplate as the layout
// when set.
func newRenderer(title, baseHref, hostTemplate string) (*render.Renderer, error) {
	opts := render.Options{Title: title, BaseHref: baseHref}
	if hostTemplate != "" {
		opts.HostFS = os.DirFS(filepath.Dir(hostTemplate))
		opts.HostName = filepath.Base(hostTemplate)
	}
	return render.New(opts)
}
