// Package theme renders shell output using named color palettes.
package theme

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
)

// DefaultName is the palette used when the configured one is unknown.
const DefaultName = "neon"

// Style names a palette slot. Every palette defines every style.
type Style string

const (
	Accent  Style = "accent"
	Muted   Style = "muted"
	Info    Style = "info"
	Warn    Style = "warn"
	Error   Style = "error"
	Success Style = "success"
	Prompt  Style = "prompt"
	Dir     Style = "dir"
)

type palette map[Style][]color.Attribute

var palettes = map[string]palette{
	"neon": {
		Accent:  {color.FgCyan},
		Muted:   {color.FgWhite},
		Info:    {color.FgMagenta},
		Warn:    {color.FgYellow},
		Error:   {color.FgRed},
		Success: {color.FgGreen},
		Prompt:  {color.FgCyan},
		Dir:     {color.FgBlue},
	},
	"matrix": {
		Accent:  {color.FgGreen},
		Muted:   {color.FgHiGreen},
		Info:    {color.FgGreen},
		Warn:    {color.FgYellow},
		Error:   {color.FgRed},
		Success: {color.FgHiGreen},
		Prompt:  {color.FgGreen},
		Dir:     {color.FgGreen},
	},
	"dracula": {
		Accent:  {color.FgMagenta},
		Muted:   {color.FgWhite},
		Info:    {color.FgCyan},
		Warn:    {color.FgYellow},
		Error:   {color.FgRed},
		Success: {color.FgGreen},
		Prompt:  {color.FgMagenta},
		Dir:     {color.FgCyan},
	},
	"classic": {
		Accent:  {color.FgWhite},
		Muted:   {color.FgHiWhite},
		Info:    {color.FgCyan},
		Warn:    {color.FgYellow},
		Error:   {color.FgRed},
		Success: {color.FgGreen},
		Prompt:  {color.FgWhite},
		Dir:     {color.FgBlue},
	},
}

// Names lists the available palettes in sorted order.
func Names() []string {
	var out []string
	for k := range palettes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Valid reports whether name is a known palette.
func Valid(name string) bool {
	_, ok := palettes[name]
	return ok
}

// Theme is a palette instance bound to a color on/off choice.
type Theme struct {
	name   string
	styles map[Style]*color.Color
}

// Lookup builds a Theme for the named palette. Unknown names fall back
// to the default palette so presentation never fails.
func Lookup(name string, colored bool) *Theme {
	p, ok := palettes[name]
	if !ok {
		name = DefaultName
		p = palettes[name]
	}

	styles := make(map[Style]*color.Color, len(p))
	for style, attrs := range p {
		c := color.New(attrs...)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		styles[style] = c
	}

	return &Theme{name: name, styles: styles}
}

// Name returns the palette name the theme was built from.
func (t *Theme) Name() string {
	return t.name
}

// Sprintf formats text in the given style.
func (t *Theme) Sprintf(style Style, format string, a ...interface{}) string {
	c, ok := t.styles[style]
	if !ok {
		return fmt.Sprintf(format, a...)
	}
	return c.Sprintf(format, a...)
}

// Printf writes styled text to w.
func (t *Theme) Printf(w io.Writer, style Style, format string, a ...interface{}) {
	fmt.Fprint(w, t.Sprintf(style, format, a...))
}

// Println writes a styled line to w.
func (t *Theme) Println(w io.Writer, style Style, text string) {
	fmt.Fprintln(w, t.Sprintf(style, "%s", text))
}
