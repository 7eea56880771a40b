// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"purisim-core/protein"
	"purisim-core/schema"
	"purisim/internal/cli"
	"purisim/internal/common"
	"purisim/internal/modules"
	"purisim/internal/output"
	"purisim/internal/pipeline"
	"purisim/internal/registry"
	"purisim/internal/schemadef"
	"purisim/internal/version"
	"purisim/internal/writers"
	"purisim/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("purisim")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "purisim version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	log := newLogger(stderr, opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	lib, err := schemadef.LoadDir(opts.ModulesDir)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	selections, err := cli.ParseSets(opts.Sets)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	instances := make([]pipeline.Instance, 0, len(opts.Run))
	for _, id := range opts.Run {
		// Each instance gets its own copy so a value written back by one
		// occurrence never leaks into the next.
		sel := schema.Settings{}
		for k, v := range selections[id] {
			sel[k] = v
		}
		instances = append(instances, pipeline.Instance{Module: id, Settings: sel})
	}

	reg, err := registry.New(modules.All()...)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	pool := protein.NewPool()
	steps, err := pipeline.New(reg, log).Run(parent, lib, instances, pool)
	if err != nil {
		if parent.Err() != nil {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	final := pool.Proteins()
	if opts.Sort {
		common.SortProteins(final)
	}
	report := &api.RunReportV1{
		RunID: uuid.NewString(),
		Steps: output.StepsToAPI(steps),
	}
	if err := writers.Write(opts.Output, outw, &writers.Payload{
		Report: report,
		Final:  final,
		Header: opts.Header,
		Pretty: opts.Pretty,
	}); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes the buffered writer and folds write failures into the
// exit code, tolerating downstream consumers that close the pipe early.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// newLogger builds the console logger used for progress reporting. Output
// goes to stderr so the report stream on stdout stays machine-readable.
func newLogger(stderr io.Writer, quiet, verbose bool) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	ws, ok := stderr.(zapcore.WriteSyncer)
	if !ok {
		ws = zapcore.AddSync(stderr)
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), ws, level)
	return zap.New(core)
}
