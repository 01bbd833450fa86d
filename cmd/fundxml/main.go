package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/fundxml"
	"github.com/dgallion1/fundxml/internal/batch"
	"github.com/dgallion1/fundxml/internal/config"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Load()

	in := flag.String("in", "", "XML position file, or a directory of them (required)")
	container := flag.String("container", cfg.Container, "repeated group tag to extract")
	fields := flag.String("fields", strings.Join(cfg.Fields, ","), "comma-separated field tags")
	format := flag.String("format", cfg.Format, "output format: csv or xlsx")
	out := flag.String("out", "", "output file (single input) or directory (batch); derived from the input when empty")
	summary := flag.Bool("summary", false, "print a per-column summary to stdout")
	flag.Parse()

	cfg.Container = *container
	cfg.Fields = splitFields(*fields)
	cfg.Format = *format
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *in == "" {
		log.Error("missing required -in flag")
		flag.Usage()
		os.Exit(1)
	}

	info, err := os.Stat(*in)
	if err != nil {
		log.Error("cannot read input", "path", *in, "error", err)
		os.Exit(1)
	}

	if info.IsDir() {
		if *out != "" {
			cfg.OutDir = *out
		}
		runBatch(log, cfg, *in)
		return
	}

	runSingle(log, cfg, *in, *out, *summary)
}

func runBatch(log *slog.Logger, cfg config.Config, dir string) {
	runner := batch.NewRunner(log, cfg)
	results, err := runner.Run(context.Background(), dir)
	if err != nil {
		log.Error("batch run failed", "dir", dir, "error", err)
		os.Exit(1)
	}

	failed := 0
	for _, r := range results {
		if r.Status == batch.StatusFailed {
			failed++
		}
	}
	log.Info("batch complete", "files", len(results), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func runSingle(log *slog.Logger, cfg config.Config, in, out string, summary bool) {
	table, err := fundxml.ExtractFile(in, cfg.Container, cfg.Fields...)
	var notFound *fundxml.NotFoundError
	switch {
	case errors.As(err, &notFound):
		log.Warn("no occurrences", "file", in, "tag", notFound.Tag)
		table = fundxml.NewTable(cfg.Fields)
	case err != nil:
		log.Error("extract failed", "file", in, "error", err)
		os.Exit(1)
	}

	if out == "" {
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		out = filepath.Join(cfg.OutDir, base+"."+cfg.Format)
	}

	if cfg.Format == "xlsx" {
		err = table.WriteXLSX(out)
	} else {
		err = table.WriteCSVFile(out, cfg.BOM)
	}
	if err != nil {
		log.Error("write failed", "output", out, "error", err)
		os.Exit(1)
	}

	if summary {
		fmt.Print(table.Summarize())
	}
	log.Info("done", "file", in, "output", out, "rows", table.Len())
}

func splitFields(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
