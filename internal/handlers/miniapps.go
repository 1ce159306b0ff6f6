// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers of the mini apps server.
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cespare/xxhash/v2"

	"miniapps/internal/cache"
	"miniapps/internal/catalog"
	"miniapps/internal/middleware"
	"miniapps/internal/render"
)

// pageName is the cache key namespace for the grid page.
const pageName = "mini-apps"

// PageCache stores rendered pages. *cache.PageCache satisfies it.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
}

// MiniApps serves the grid page, its catalog and its icon assets. The
// catalog is fixed for the lifetime of the handler.
type MiniApps struct {
	renderer  *render.Renderer
	apps      []catalog.App
	pageCache PageCache
	assets    http.Handler
	cacheKey  string
}

// NewMiniApps creates the mini apps handler group. pageCache may be nil to
// render on every request; assets may be nil when no icon source exists.
func NewMiniApps(renderer *render.Renderer, apps []catalog.App, pageCache PageCache, assets http.Handler) *MiniApps {
	return &MiniApps{
		renderer:  renderer,
		apps:      apps,
		pageCache: pageCache,
		assets:    assets,
		cacheKey:  cache.PageKey(pageName, apps),
	}
}

// Page renders the grid page. It checks the page cache first and stores
// the rendered result on a miss. Responses carry an ETag of the page body,
// and a matching If-None-Match gets 304 Not Modified.
func (m *MiniApps) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if m.pageCache != nil {
		if cached, ok := m.pageCache.Get(ctx, m.cacheKey); ok {
			writeHTML(w, r, cached)
			return
		}
	}

	page, err := m.renderer.Bytes(m.apps)
	if err != nil {
		slog.Error("render mini apps page failed",
			"error", err,
			"request_id", middleware.RequestIDFromCtx(ctx),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if m.pageCache != nil {
		m.pageCache.Set(ctx, m.cacheKey, page)
	}

	writeHTML(w, r, page)
}

// Catalog returns the app list as JSON, in display order.
func (m *MiniApps) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.apps)
}

// Assets serves icon images referenced by the catalog.
func (m *MiniApps) Assets(w http.ResponseWriter, r *http.Request) {
	if m.assets == nil {
		NotFound(w, r)
		return
	}
	m.assets.ServeHTTP(w, r)
}

func writeHTML(w http.ResponseWriter, r *http.Request, page []byte) {
	etag := pageETag(page)
	h := w.Header()
	h.Set("ETag", etag)
	h.Set("Cache-Control", "no-cache")

	if etagMatch(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func pageETag(page []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(page))
}

// etagMatch reports whether an If-None-Match header value matches etag.
// Weak validators compare equal to their strong form.
func etagMatch(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
