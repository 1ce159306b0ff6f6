// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package grid builds the mini apps grid into an HTML node tree.
//
// Each app becomes one composite entry appended to the container:
//
//	<div class="app">
//	  <a class="app-icon" href="URL" target="_blank" style="background-color: COLOR; text-decoration: none;">
//	    <img src="ICON_URL" alt="NAME">
//	  </a>
//	  <a class="app-name" href="URL" target="_blank" style="text-decoration: none;">NAME</a>
//	</div>
//
// Values are copied into the tree as given. Escaping happens when the
// tree is serialized with html.Render.
package grid

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"miniapps/internal/catalog"
)

// ContainerID is the id of the element that receives the grid entries.
const ContainerID = "appGrid"

// ErrContainerNotFound is returned by FindContainer when the document has
// no element with the requested id.
var ErrContainerNotFound = errors.New("grid container not found")

// FindContainer returns the first element in doc, in document order, whose
// id attribute equals id.
func FindContainer(doc *html.Node, id string) (*html.Node, error) {
	if doc != nil {
		for n := range doc.Descendants() {
			if n.Type == html.ElementNode && attr(n, "id") == id {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: #%s", ErrContainerNotFound, id)
}

// Render appends one composite entry per app to container, in order.
// Existing children are left alone, so rendering twice yields two copies.
// container must not be nil.
func Render(apps []catalog.App, container *html.Node) {
	if container == nil {
		panic("grid: nil container")
	}
	for _, app := range apps {
		container.AppendChild(entry(app))
	}
}

// entry builds the wrapper, icon link and name link for one app.
func entry(app catalog.App) *html.Node {
	wrapper := element(atom.Div, "class", "app")

	icon := element(atom.A,
		"class", "app-icon",
		"href", app.URL,
		"target", "_blank",
		"style", "background-color: "+app.Color+"; text-decoration: none;",
	)

	// An app without an image gets an empty src. The Icon glyph is not a
	// fallback.
	// TODO: decide whether Icon should render when IconURL is empty; see
	// the open question in DESIGN.md.
	icon.AppendChild(element(atom.Img, "src", app.IconURL, "alt", app.Name))

	name := element(atom.A,
		"class", "app-name",
		"href", app.URL,
		"target", "_blank",
		"style", "text-decoration: none;",
	)
	name.AppendChild(&html.Node{Type: html.TextNode, Data: app.Name})

	wrapper.AppendChild(icon)
	wrapper.AppendChild(name)
	return wrapper
}

// element creates an element node with the given key/value attribute pairs.
func element(a atom.Atom, kv ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
