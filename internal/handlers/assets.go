// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"miniapps/internal/storage"
)

// AssetStore opens icon objects by name. *storage.Client satisfies it.
type AssetStore interface {
	Open(ctx context.Context, name string) (*storage.Object, error)
}

// LocalAssets serves icons from dir. Request paths are resolved relative
// to mount, so "/mini-apps/images/x.png" maps to dir/images/x.png.
// Directory listings are not served.
func LocalAssets(dir, mount string) http.Handler {
	fileServer := http.StripPrefix(mount, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}

// S3Assets serves icons from object storage. Request paths are resolved
// relative to mount, the same way as LocalAssets.
func S3Assets(store AssetStore, mount string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, mount), "/")
		if name == "" || strings.HasSuffix(name, "/") {
			NotFound(w, r)
			return
		}

		obj, err := store.Open(r.Context(), name)
		if errors.Is(err, storage.ErrNotFound) {
			NotFound(w, r)
			return
		}
		if err != nil {
			slog.Error("open icon asset failed", "name", name, "error", err)
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}
		defer obj.Body.Close()

		h := w.Header()
		if obj.ContentType != "" {
			h.Set("Content-Type", obj.ContentType)
		}
		if obj.ContentLength > 0 {
			h.Set("Content-Length", strconv.FormatInt(obj.ContentLength, 10))
		}
		if obj.ETag != "" {
			h.Set("ETag", obj.ETag)
		}
		if !obj.LastModified.IsZero() {
			h.Set("Last-Modified", obj.LastModified.UTC().Format(http.TimeFormat))
		}
		h.Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)

		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.Copy(w, obj.Body); err != nil {
			slog.Warn("stream icon asset failed", "name", name, "error", err)
		}
	})
}
