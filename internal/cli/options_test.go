// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestRunListOK(t *testing.T) {
	o := mustParse(t,
		"--modules", "defs",
		"--run", "fasta_input, size_exclusion",
	)
	if len(o.Run) != 2 || o.Run[1] != "size_exclusion" {
		t.Errorf("bad run list %+v", o.Run)
	}
	if !o.Header || o.Output != "text" {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestSetRepeatable(t *testing.T) {
	o := mustParse(t,
		"--modules", "defs",
		"--run", "fasta_input",
		"--set", "fasta_input:Select FASTA file=Sample lysate",
		"--set", "size_exclusion:SEC mode=Simulate column",
	)
	if len(o.Sets) != 2 {
		t.Errorf("want 2 sets, got %+v", o.Sets)
	}
}

func TestErrorMissingModules(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--run", "fasta_input"}); err == nil {
		t.Fatalf("expected error when --modules missing")
	}
}

func TestErrorEmptyRun(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--modules", "defs", "--run", " , "}); err == nil {
		t.Fatalf("expected error for empty --run")
	}
}

func TestErrorBadOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{
		"--modules", "defs", "--run", "fasta_input", "--output", "xml",
	}); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestErrorQuietVerboseConflict(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{
		"--modules", "defs", "--run", "fasta_input", "--quiet", "--verbose",
	}); err == nil {
		t.Fatalf("expected mutual-exclusion error")
	}
}
