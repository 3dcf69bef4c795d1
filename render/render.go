// SPDX-License-Identifier: MIT
// Package: tspgen/render
//
// render.go - self-contained Leaflet page for an instance and an optional route.

package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/katalvlaran/tspgen/cluster"
	"github.com/katalvlaran/tspgen/codec"
	"github.com/katalvlaran/tspgen/route"
)

//go:embed templates/map.html.tmpl
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/map.html.tmpl"))

// DefaultTitle is the page title when Options.Title is empty.
const DefaultTitle = "tspgen instance"

// Options tunes Page.
type Options struct {
	// Title of the HTML document.
	Title string
	// Route to draw, as returned by route.Summarize. Nil draws cities only.
	Route *route.Summary
}

type pageData struct {
	Title         string
	Cities        template.JS
	Centroids     template.JS
	MaxWidth      float64
	HasRoute      bool
	Route         template.JS
	TotalDistance string
	TotalDuration string
}

// Page writes the map page for inst to w. With opts.Route set, the route is
// drawn as a line whose popup shows total distance and duration.
func Page(w io.Writer, inst *cluster.Instance, opts Options) error {
	data := pageData{
		Title:    opts.Title,
		MaxWidth: inst.Params.MaxWidth,
	}
	if data.Title == "" {
		data.Title = DefaultTitle
	}

	var err error
	if data.Cities, err = marshalJS(codec.CityCollection(inst)); err != nil {
		return err
	}
	if data.Centroids, err = marshalJS(codec.CentroidCollection(inst)); err != nil {
		return err
	}

	if opts.Route != nil {
		f, err := codec.RouteFeature(inst, opts.Route.Route)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if data.Route, err = marshalJS(f); err != nil {
			return err
		}
		data.HasRoute = true
		data.TotalDistance = opts.Route.DistanceText()
		data.TotalDuration = opts.Route.DurationText()
	}

	if err = page.Execute(w, data); err != nil {
		return fmt.Errorf("render: execute template: %w", err)
	}
	return nil
}

// marshalJS encodes v for direct inclusion in a script block. encoding/json
// escapes <, > and & so the payload cannot close the script element.
func marshalJS(v any) (template.JS, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("render: encode layer: %w", err)
	}
	return template.JS(raw), nil
}
