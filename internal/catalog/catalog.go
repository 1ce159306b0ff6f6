// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the list of mini apps shown on the grid page.
// The built-in list is embedded as YAML; an external file of the same
// schema can replace it at startup.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed apps.yaml
var defaultYAML []byte

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "catalog.schema.json"

// ErrInvalidCatalog is returned when a catalog document does not match
// the catalog schema.
var ErrInvalidCatalog = errors.New("invalid catalog")

// App describes one linked application on the grid.
type App struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	URL     string `yaml:"url" json:"url"`
	Color   string `yaml:"color" json:"color"`
	Icon    string `yaml:"icon" json:"icon"`       // Fallback glyph, kept in the data but not rendered
	IconURL string `yaml:"iconURL" json:"iconURL"` // Relative or absolute image path; may be empty
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error

	defaultOnce sync.Once
	defaultApps []App
)

// Default returns the built-in catalog. Every call returns a fresh copy.
func Default() []App {
	defaultOnce.Do(func() {
		apps, err := Load(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded apps.yaml: %v", err))
		}
		defaultApps = apps
	})
	return slices.Clone(defaultApps)
}

// Load decodes a YAML or JSON catalog document. Entries keep document
// order. Field values are not checked beyond being strings.
func Load(data []byte) ([]App, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	// The validator works on encoding/json shaped values.
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: convert to json: %v", ErrInvalidCatalog, err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("%w: convert to json: %v", ErrInvalidCatalog, err)
	}
	if err := sch.Validate(document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var apps []App
	if err := yaml.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	if apps == nil {
		apps = []App{}
	}
	return apps, nil
}

// LoadFile reads and decodes a catalog file.
func LoadFile(path string) ([]App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	apps, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return apps, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add catalog schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile catalog schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
