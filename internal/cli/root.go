package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/lukind/worddiff/internal/config"
	"github.com/lukind/worddiff/internal/diff"
	qcli "github.com/lukind/worddiff/internal/q/cli"
	"github.com/lukind/worddiff/internal/render"
	"github.com/lukind/worddiff/internal/simplelogger"
)

func newRootCommand() *qcli.Command {
	root := &qcli.Command{
		Name:      "worddiff",
		Short:     "worddiff shows a word-level diff of two text files, side by side.",
		UsageArgs: "<file1> <file2>",
		Args:      qcli.ExactArgs(2),
		Example:   `  worddiff --header_titles "before,after" old.txt new.txt`,
	}

	fs := root.Flags()
	output := fs.String("output", 'o', "", "Write output to a file instead of stdout.")
	fixedWidth := fs.Int("fixed_width", 0, 0, "Column width in characters. Defaults to half the terminal width minus a margin.")
	color := fs.Bool("color", 0, false, "Force-enable color styling.")
	noColor := fs.Bool("no-color", 0, false, "Disable color styling. Wins over --color.")
	underline := fs.Bool("underline", 0, false, "Underline differences and header titles.")
	replaceColor := fs.String("replace_color", 0, "", "Colors for replaced words as \"left,right\". A single name applies to both sides.")
	insertColor := fs.String("insert_color", 0, "", "Color for inserted words.")
	deleteColor := fs.String("delete_color", 0, "", "Color for deleted words.")
	headerTitles := fs.String("header_titles", 0, "", "Column header titles as \"left,right\". No header is shown when unset.")

	root.Run = func(c *qcli.Context) error {
		flags := config.Flags{}
		if fs.Changed("fixed_width") {
			flags.FixedWidth = fixedWidth
		}
		// --no-color always wins over --color.
		switch {
		case fs.Changed("no-color") && *noColor:
			off := false
			flags.Color = &off
		case fs.Changed("color"):
			flags.Color = color
		}
		if fs.Changed("underline") {
			flags.Underline = underline
		}
		if fs.Changed("replace_color") {
			flags.ReplaceColor = replaceColor
		}
		if fs.Changed("insert_color") {
			flags.InsertColor = insertColor
		}
		if fs.Changed("delete_color") {
			flags.DeleteColor = deleteColor
		}
		if fs.Changed("header_titles") {
			flags.HeaderTitles = headerTitles
		}

		return runDiff(c, flags, *output)
	}

	return root
}

func runDiff(c *qcli.Context, flags config.Flags, outputPath string) error {
	left, err := readLines(c.Args[0])
	if err != nil {
		return err
	}
	right, err := readLines(c.Args[1])
	if err != nil {
		return err
	}

	// Styling defaults to on only when output actually goes to a terminal.
	// Explicit --color/--no-color or a config file value still wins.
	styleDefault := outputPath == "" && config.StdoutIsTTY()
	cfg := config.Resolve(flags, config.LoadFiles(), config.TerminalWidth(), styleDefault)
	simplelogger.Log("worddiff: %s", cfg)

	rows := buildRows(cfg, left, right)

	if outputPath != "" {
		var body string
		if len(rows) > 0 {
			body = strings.Join(rows, "\n") + "\n"
		}
		if err := os.WriteFile(outputPath, []byte(body), 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", outputPath, err)
		}
		return nil
	}

	for _, row := range rows {
		fmt.Fprintln(c.Out, row)
	}
	return nil
}

// buildRows runs the full pipeline: align the two line sequences, expand the
// changed regions into positional line pairs, classify words within each
// pair, and render fixed-width rows. Identical inputs yield no rows beyond
// the optional header.
func buildRows(cfg config.Config, left, right []string) []string {
	var rows []string
	if cfg.ShowHeader {
		rows = append(rows, render.Header(cfg.HeaderLeft, cfg.HeaderRight, cfg.Width))
	}

	ops := diff.Align(left, right)
	for _, pair := range diff.ExpandChangedPairs(ops, left, right) {
		leftToks, rightToks := diff.ClassifyWords(pair.Left, pair.Right)
		rows = append(rows, render.RenderPair(leftToks, rightToks, cfg.Width, cfg.Style)...)
	}
	return rows
}

// readLines loads a text file as a slice of whitespace-normalized lines:
// each line's words are rejoined with single spaces, so indentation and runs
// of spaces never register as differences.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return lines, nil
}
