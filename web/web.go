// Package web holds the HTML views and builds the template engine for them.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var Views embed.FS

// Engine serves views from dir with reload on every render, or the embedded
// views when dir is empty.
func Engine(dir string) (*html.Engine, error) {
	var engine *html.Engine
	if dir != "" {
		engine = html.New(dir, ".html")
		engine.Reload(true)
	} else {
		sub, err := fs.Sub(Views, "views")
		if err != nil {
			return nil, fmt.Errorf("embedded views: %w", err)
		}
		engine = html.NewFileSystem(http.FS(sub), ".html")
	}
	engine.AddFunc("score", formatScore)
	engine.AddFunc("join", strings.Join)
	return engine, nil
}

// formatScore shows the raw score so it never disagrees with its tier.
func formatScore(s *float64) string {
	if s == nil {
		return "---"
	}
	return strconv.FormatFloat(*s, 'f', -1, 64)
}
