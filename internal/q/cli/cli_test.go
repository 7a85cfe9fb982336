package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func runCLI(t *testing.T, cmd *Command, args []string) (int, string, string) {
	t.Helper()
	var out bytes.Buffer
	var errOut bytes.Buffer
	code := Run(context.Background(), cmd, Options{
		Args: args,
		Out:  &out,
		Err:  &errOut,
	})
	return code, out.String(), errOut.String()
}

func TestRun_ParsesFlagsAndPositionalsInterspersed(t *testing.T) {
	cmd := &Command{Name: "prog", Args: ExactArgs(2)}
	mode := cmd.Flags().String("mode", 'm', "", "Mode")
	wide := cmd.Flags().Int("width", 0, 0, "Width")
	force := cmd.Flags().Bool("force", 0, false, "Force")

	var gotArgs []string
	cmd.Run = func(c *Context) error {
		gotArgs = append([]string(nil), c.Args...)
		return nil
	}

	code, stdout, stderr := runCLI(t, cmd, []string{"a.txt", "--mode=fast", "--width", "12", "--force", "b.txt"})
	if code != 0 {
		t.Fatalf("code=%d stdout=%q stderr=%q", code, stdout, stderr)
	}
	if *mode != "fast" || *wide != 12 || !*force {
		t.Fatalf("flag values: mode=%q width=%d force=%v", *mode, *wide, *force)
	}
	if strings.Join(gotArgs, ",") != "a.txt,b.txt" {
		t.Fatalf("expected args=[a.txt b.txt], got %v", gotArgs)
	}
}

func TestRun_ChangedTracksOnlyExplicitFlags(t *testing.T) {
	cmd := &Command{Name: "prog"}
	cmd.Flags().Bool("color", 0, false, "")
	cmd.Flags().Int("width", 0, 42, "")
	cmd.Run = func(*Context) error { return nil }

	code, _, stderr := runCLI(t, cmd, []string{"--color"})
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if !cmd.Flags().Changed("color") {
		t.Fatalf("expected color to be marked changed")
	}
	if cmd.Flags().Changed("width") {
		t.Fatalf("expected width to stay unchanged (default only)")
	}
}

func TestRun_ShortFlagConsumesValue(t *testing.T) {
	cmd := &Command{Name: "prog"}
	output := cmd.Flags().String("output", 'o', "", "")
	cmd.Run = func(*Context) error { return nil }

	code, _, stderr := runCLI(t, cmd, []string{"-o", "out.txt"})
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if *output != "out.txt" {
		t.Fatalf("expected output=out.txt, got %q", *output)
	}
}

func TestRun_UnknownFlagIsUsageErrorAndIncludesToken(t *testing.T) {
	cmd := &Command{Name: "prog", Run: func(*Context) error { return nil }}

	code, stdout, stderr := runCLI(t, cmd, []string{"--nope"})
	if code != 2 {
		t.Fatalf("code=%d stdout=%q stderr=%q", code, stdout, stderr)
	}
	if stdout != "" {
		t.Fatalf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "unknown flag: --nope") {
		t.Fatalf("expected stderr to mention unknown token; stderr=%q", stderr)
	}
}

func TestRun_ArgsValidationFailureIsUsageError(t *testing.T) {
	cmd := &Command{Name: "prog", Args: ExactArgs(2), Run: func(*Context) error { return nil }}

	code, _, stderr := runCLI(t, cmd, []string{"only-one"})
	if code != 2 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if !strings.Contains(stderr, "expected 2 args, got 1") {
		t.Fatalf("expected arg count message; stderr=%q", stderr)
	}
}

func TestRun_HelpPrintsUsageAndFlags(t *testing.T) {
	cmd := &Command{Name: "prog", Short: "does things", UsageArgs: "<file1> <file2>"}
	cmd.Flags().String("output", 'o', "", "write somewhere else")
	cmd.Run = func(*Context) error { return nil }

	code, stdout, stderr := runCLI(t, cmd, []string{"-h"})
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if stderr != "" {
		t.Fatalf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "prog [flags] <file1> <file2>") {
		t.Fatalf("expected usage line; stdout=%q", stdout)
	}
	if !strings.Contains(stdout, "-o, --output") {
		t.Fatalf("expected flag help; stdout=%q", stdout)
	}
}

func TestRun_HandlerErrorExitsOne(t *testing.T) {
	cmd := &Command{Name: "prog", Run: func(*Context) error { return errors.New("boom") }}

	code, _, stderr := runCLI(t, cmd, nil)
	if code != 1 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if !strings.Contains(stderr, "boom") {
		t.Fatalf("expected error message; stderr=%q", stderr)
	}
}

func TestRun_ExitErrorCodeIsRespected(t *testing.T) {
	cmd := &Command{Name: "prog", Run: func(*Context) error {
		return ExitError{Code: 3, Err: errors.New("bad state")}
	}}

	code, _, stderr := runCLI(t, cmd, nil)
	if code != 3 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if !strings.Contains(stderr, "bad state") {
		t.Fatalf("expected error message; stderr=%q", stderr)
	}
}

func TestRun_DashDashStopsFlagParsing(t *testing.T) {
	cmd := &Command{Name: "prog"}
	cmd.Run = func(c *Context) error {
		if strings.Join(c.Args, ",") != "--not-a-flag,b" {
			t.Fatalf("unexpected args: %v", c.Args)
		}
		return nil
	}

	code, _, stderr := runCLI(t, cmd, []string{"--", "--not-a-flag", "b"})
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
}
