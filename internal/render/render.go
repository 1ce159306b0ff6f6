// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render produces the mini apps page. The host layout is an
// html/template; its output is parsed into a node tree, the grid is
// appended under the #appGrid container, and the tree is serialized back.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"

	"golang.org/x/net/html"

	"miniapps/internal/catalog"
	"miniapps/internal/grid"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Mini Apps"

// Options configures a Renderer.
type Options struct {
	Title    string // Page <title> and heading
	BaseHref string // Optional <base href> so relative icon paths resolve under the mount point

	// HostFS and HostName select a custom host layout. When HostFS is nil
	// the embedded templates/index.html is used.
	HostFS   fs.FS
	HostName string
}

// PageData holds the values available to the host layout.
type PageData struct {
	Title       string
	BaseHref    string
	ContainerID string
}

// Renderer renders the grid page. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	data PageData
}

// New parses the host layout once and returns a Renderer.
func New(opts Options) (*Renderer, error) {
	fsys, name := opts.HostFS, opts.HostName
	if fsys == nil {
		fsys, name = templatesFS, "templates/index.html"
	}

	tmpl, err := template.ParseFS(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("parse host template %s: %w", name, err)
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	return &Renderer{
		tmpl: tmpl,
		data: PageData{
			Title:       title,
			BaseHref:    opts.BaseHref,
			ContainerID: grid.ContainerID,
		},
	}, nil
}

// Render writes the full page with one grid entry per app. Nothing is
// written to w if the host layout has no grid container.
func (rn *Renderer) Render(w io.Writer, apps []catalog.App) error {
	page, err := rn.Bytes(apps)
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}

// Bytes returns the rendered page.
func (rn *Renderer) Bytes(apps []catalog.App) ([]byte, error) {
	var host bytes.Buffer
	if err := rn.tmpl.Execute(&host, rn.data); err != nil {
		return nil, fmt.Errorf("execute host template: %w", err)
	}

	doc, err := html.Parse(&host)
	if err != nil {
		return nil, fmt.Errorf("parse host page: %w", err)
	}

	container, err := grid.FindContainer(doc, grid.ContainerID)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	grid.Render(apps, container)

	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return nil, fmt.Errorf("serialize page: %w", err)
	}

	slog.Debug("mini apps page rendered", "apps", len(apps), "bytes", out.Len())
	return out.Bytes(), nil
}
