// Package theme turns generated palettes into desktop-theme data and renders
// them through user templates.
package theme

import (
	"fmt"
	"strconv"

	"github.com/flosch/pongo2"
	"github.com/pkg/errors"

	"github.com/mmuldo/prism/colorspace"
)

// Theme represents a desktop theme: colorN entries plus free-form options.
type Theme map[string]interface{}

// New builds a theme from a palette, assigning each color a numbered role in
// order, then applying opts and defaults.
func New(colors []colorspace.RGB, opts map[string]interface{}) Theme {
	t := make(Theme)

	for i, c := range colors {
		t["color"+strconv.Itoa(i)] = Hex(c)
	}
	for k, v := range opts {
		t[k] = v
	}
	setDefaults(&t, len(colors))

	return t
}

// Render executes the pongo2 template at templatePath with the theme as
// context.
func Render(t Theme, templatePath string) (string, error) {
	tpl, err := pongo2.FromFile(templatePath)
	if err != nil {
		return "", errors.Wrap(err, "theme: loading template")
	}

	out, err := tpl.Execute(pongo2.Context(t))
	if err != nil {
		return "", errors.Wrap(err, "theme: executing template")
	}

	return out, nil
}

// Hex formats a color as a #rrggbb string at 8-bit depth.
func Hex(c colorspace.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// ANSI formats a truecolor escape line showing the color next to its hex
// value, for terminal previews.
func ANSI(c colorspace.RGB, label string) string {
	r, g, b := channel(c.R), channel(c.G), channel(c.B)
	return fmt.Sprintf("\033[48;2;%d;%d;%dm    \033[0m %s %s", r, g, b, label, Hex(c))
}

func channel(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

func setDefaults(t *Theme, n int) {
	if _, ok := (*t)["background"]; !ok && n > 0 {
		(*t)["background"] = (*t)["color0"]
	}

	if _, ok := (*t)["transparency"]; !ok {
		(*t)["transparency"] = 1.0
	}

	if _, ok := (*t)["foreground"]; !ok && n > 1 {
		(*t)["foreground"] = (*t)["color"+strconv.Itoa(n-1)]
	}
}
