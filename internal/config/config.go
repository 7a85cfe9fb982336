// Package config resolves the effective run configuration from three layers:
// explicit CLI flags, TOML config files, and built-in defaults. Each option is
// resolved independently by a total, default-producing function, so a bad value
// in one option never affects another and never aborts the run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lukind/worddiff/internal/render"
	"github.com/lukind/worddiff/internal/simplelogger"
)

const (
	localFileName = "worddiff.toml"

	defaultReplaceLeft  = render.ColorGreen
	defaultReplaceRight = render.ColorBlue
	defaultInsertColor  = render.ColorYellow
	defaultDeleteColor  = render.ColorRed
)

// Config is the fully resolved configuration consumed by the pipeline.
// It is constructed once at startup and passed down by value.
type Config struct {
	// Width is the display width of each output column.
	Width int

	Style render.Style

	HeaderLeft  string
	HeaderRight string
	ShowHeader  bool
}

// File holds the recognized options of one configuration file. Nil fields
// were absent (or unusable) in the file.
type File struct {
	FixedWidth   *int
	Color        *bool
	Underline    *bool
	ReplaceColor *string
	InsertColor  *string
	DeleteColor  *string
	HeaderTitles *string
}

// Flags carries the CLI-provided option values. Nil fields mean the flag was
// not given on the command line.
type Flags struct {
	FixedWidth   *int
	Color        *bool
	Underline    *bool
	ReplaceColor *string
	InsertColor  *string
	DeleteColor  *string
	HeaderTitles *string
}

// LoadFiles reads the user config file (~/.config/worddiff/config.toml) and
// the local one (./worddiff.toml) and merges them, local values winning
// per option. Missing or unreadable files contribute nothing.
func LoadFiles() File {
	user := loadFile(userConfigPath())
	local := loadFile(localFileName)
	return mergeFiles(user, local)
}

func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "worddiff", "config.toml")
}

// loadFile parses one TOML file into a File. Options are extracted
// individually: a value of the wrong type is logged and skipped without
// discarding the rest of the file.
func loadFile(path string) File {
	if path == "" {
		return File{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		simplelogger.Log("config: ignoring %s: %v", path, err)
		return File{}
	}

	return File{
		FixedWidth:   fileInt(raw, path, "fixed_width"),
		Color:        fileBool(raw, path, "color"),
		Underline:    fileBool(raw, path, "underline"),
		ReplaceColor: fileString(raw, path, "replace_color"),
		InsertColor:  fileString(raw, path, "insert_color"),
		DeleteColor:  fileString(raw, path, "delete_color"),
		HeaderTitles: fileString(raw, path, "header_titles"),
	}
}

func fileInt(raw map[string]any, path, key string) *int {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	n, ok := v.(int64)
	if !ok {
		simplelogger.Log("config: %s: %s is not an integer (%T), using default", path, key, v)
		return nil
	}
	i := int(n)
	return &i
}

func fileBool(raw map[string]any, path, key string) *bool {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		simplelogger.Log("config: %s: %s is not a boolean (%T), using default", path, key, v)
		return nil
	}
	return &b
}

func fileString(raw map[string]any, path, key string) *string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		simplelogger.Log("config: %s: %s is not a string (%T), using default", path, key, v)
		return nil
	}
	return &s
}

func mergeFiles(base, override File) File {
	out := base
	if override.FixedWidth != nil {
		out.FixedWidth = override.FixedWidth
	}
	if override.Color != nil {
		out.Color = override.Color
	}
	if override.Underline != nil {
		out.Underline = override.Underline
	}
	if override.ReplaceColor != nil {
		out.ReplaceColor = override.ReplaceColor
	}
	if override.InsertColor != nil {
		out.InsertColor = override.InsertColor
	}
	if override.DeleteColor != nil {
		out.DeleteColor = override.DeleteColor
	}
	if override.HeaderTitles != nil {
		out.HeaderTitles = override.HeaderTitles
	}
	return out
}

// Resolve merges flags, file values, and defaults into the effective Config.
// termWidth is the current terminal width in cells; styleDefault is the
// default for the color toggle when neither flags nor files set it (true when
// stdout is a terminal).
func Resolve(fl Flags, f File, termWidth int, styleDefault bool) Config {
	cfg := Config{
		Width: resolveWidth(fl.FixedWidth, f.FixedWidth, termWidth),
		Style: render.Style{
			Color:     resolveBool(fl.Color, f.Color, styleDefault),
			Underline: resolveBool(fl.Underline, f.Underline, false),
		},
	}
	cfg.Style.ReplaceLeft, cfg.Style.ReplaceRight = resolveReplaceColors(pick(fl.ReplaceColor, f.ReplaceColor))
	cfg.Style.Insert = resolveColor(pick(fl.InsertColor, f.InsertColor), "insert_color", defaultInsertColor)
	cfg.Style.Delete = resolveColor(pick(fl.DeleteColor, f.DeleteColor), "delete_color", defaultDeleteColor)
	cfg.HeaderLeft, cfg.HeaderRight, cfg.ShowHeader = resolveTitles(pick(fl.HeaderTitles, f.HeaderTitles))
	return cfg
}

// pick returns the highest-priority value: the flag if given, else the file
// value, else nil.
func pick[T any](flag, file *T) *T {
	if flag != nil {
		return flag
	}
	return file
}

func resolveWidth(flag, file *int, termWidth int) int {
	v := pick(flag, file)
	if v == nil {
		return defaultWidth(termWidth)
	}
	if *v < 1 {
		simplelogger.Log("config: fixed_width %d is not positive, using default", *v)
		return defaultWidth(termWidth)
	}
	return *v
}

// defaultWidth is half the terminal minus room for the separator and a
// margin, and never below 1.
func defaultWidth(termWidth int) int {
	w := termWidth/2 - 4
	if w < 1 {
		w = 1
	}
	return w
}

func resolveBool(flag, file *bool, def bool) bool {
	if v := pick(flag, file); v != nil {
		return *v
	}
	return def
}

// resolveReplaceColors parses a "left,right" color pair. A single name is
// used for both sides. Any invalid name falls back to the default pair.
func resolveReplaceColors(v *string) (render.Color, render.Color) {
	if v == nil {
		return defaultReplaceLeft, defaultReplaceRight
	}
	leftName, rightName := splitPair(*v)
	if rightName == "" {
		rightName = leftName
	}
	left, err := render.ParseColor(leftName)
	if err == nil {
		var right render.Color
		right, err = render.ParseColor(rightName)
		if err == nil {
			return left, right
		}
	}
	simplelogger.Log("config: replace_color %q: %v, using default", *v, err)
	return defaultReplaceLeft, defaultReplaceRight
}

func resolveColor(v *string, name string, def render.Color) render.Color {
	if v == nil {
		return def
	}
	c, err := render.ParseColor(*v)
	if err != nil {
		simplelogger.Log("config: %s %q: %v, using default", name, *v, err)
		return def
	}
	return c
}

// resolveTitles splits "left,right" header titles. A value with no comma
// yields an empty right title. No value means no header row.
func resolveTitles(v *string) (left, right string, show bool) {
	if v == nil {
		return "", "", false
	}
	left, right = splitPair(*v)
	return left, right, true
}

// splitPair splits on the first comma and trims surrounding whitespace from
// both halves. Without a comma the second half is empty.
func splitPair(s string) (string, string) {
	before, after, _ := strings.Cut(s, ",")
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// String renders the effective configuration for debug logging.
func (c Config) String() string {
	return fmt.Sprintf("width=%d color=%v underline=%v replace=%s,%s insert=%s delete=%s header=%v",
		c.Width, c.Style.Color, c.Style.Underline,
		c.Style.ReplaceLeft, c.Style.ReplaceRight, c.Style.Insert, c.Style.Delete, c.ShowHeader)
}
