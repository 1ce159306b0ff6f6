// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"miniapps/internal/catalog"
	"miniapps/internal/grid"
)

// --------------------------------------------------------------------------
// TestNew: embedded and custom host layouts
// --------------------------------------------------------------------------

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantTitle string
	}{
		{"default title", Options{}, DefaultTitle},
		{"custom title", Options{Title: "AI 工具"}, "AI 工具"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rn, err := New(tt.opts)
			if err != nil {
				t.Fatalf("New() returned error: %v", err)
			}
			if rn.data.Title != tt.wantTitle {
				t.Errorf("title: got %q, want %q", rn.data.Title, tt.wantTitle)
			}
			if rn.data.ContainerID != grid.ContainerID {
				t.Errorf("container id: got %q, want %q", rn.data.ContainerID, grid.ContainerID)
			}
		})
	}
}

func TestNewMissingHostTemplate(t *testing.T) {
	_, err := New(Options{HostFS: fstest.MapFS{}, HostName: "layout.html"})
	if err == nil {
		t.Fatal("expected error for missing host template")
	}
}

// --------------------------------------------------------------------------
// TestRender: full page output
// --------------------------------------------------------------------------

func TestRenderDefaultCatalog(t *testing.T) {
	rn, err := New(Options{Title: "Mini Apps"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := rn.Render(&buf, catalog.Default()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := buf.String()

	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Errorf("page should start with doctype, got %.40q", body)
	}
	if got := strings.Count(body, `<div class="app">`); got != 29 {
		t.Errorf("entries: got %d, want 29", got)
	}
	if !strings.Contains(body, `<div id="appGrid" class="app-grid"><div class="app">`) {
		t.Error("entries should be rendered inside the #appGrid container")
	}
	for _, want := range []string{
		"<title>Mini Apps</title>",
		`src="images/openai.png"`,
		`alt="ChatGPT"`,
		`href="https://chatgpt.com/"`,
		">通义千问</a>",
		`src="images/bolt.svg"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %s", want)
		}
	}

	// Entries follow catalog order.
	if strings.Index(body, "images/openai.png") > strings.Index(body, "images/bolt.svg") {
		t.Error("first catalog entry should be rendered before the last")
	}
}

func TestRenderScenario(t *testing.T) {
	rn, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page, err := rn.Bytes([]catalog.App{{
		ID:      "openai",
		Name:    "ChatGPT",
		URL:     "https://chatgpt.com/",
		Color:   "#000000",
		Icon:    "C",
		IconURL: "images/openai.png",
	}})
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	want := `<div class="app">` +
		`<a class="app-icon" href="https://chatgpt.com/" target="_blank" style="background-color: #000000; text-decoration: none;">` +
		`<img src="images/openai.png" alt="ChatGPT"/></a>` +
		`<a class="app-name" href="https://chatgpt.com/" target="_blank" style="text-decoration: none;">ChatGPT</a>` +
		`</div>`
	if !bytes.Contains(page, []byte(want)) {
		t.Errorf("page missing entry markup\nwant: %s\npage: %s", want, page)
	}
}

func TestRenderBaseHref(t *testing.T) {
	rn, err := New(Options{BaseHref: "/mini-apps/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page, err := rn.Bytes(nil)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Contains(page, []byte(`<base href="/mini-apps/"/>`)) {
		t.Errorf("page missing base href:\n%s", page)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	rn, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	apps := catalog.Default()[:2]
	first, err := rn.Bytes(apps)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := rn.Bytes(apps)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("each page render starts from a fresh host document")
	}
}

func TestRenderCustomHost(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html": {Data: []byte(`<html><body><section><ul id="{{.ContainerID}}"></ul></section></body></html>`)},
	}
	rn, err := New(Options{HostFS: fsys, HostName: "layout.html"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page, err := rn.Bytes(catalog.Default()[:1])
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Contains(page, []byte(`<ul id="appGrid"><div class="app">`)) {
		t.Errorf("entry should be appended to the custom container:\n%s", page)
	}
}

func TestRenderMissingContainer(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html": {Data: []byte(`<html><body><div id="somethingElse"></div></body></html>`)},
	}
	rn, err := New(Options{HostFS: fsys, HostName: "layout.html"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	err = rn.Render(&buf, catalog.Default())
	if !errors.Is(err, grid.ErrContainerNotFound) {
		t.Fatalf("got %v, want grid.ErrContainerNotFound", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on failure, got %d bytes", buf.Len())
	}
}
