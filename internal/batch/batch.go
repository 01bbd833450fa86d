// Package batch extracts every position file in a directory, one output
// table per input. Files are processed with bounded concurrency; each
// individual extraction is still a synchronous in-memory tree walk.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dgallion1/fundxml"
	"github.com/dgallion1/fundxml/internal/config"
)

// Status classifies the outcome of one file.
type Status string

const (
	StatusOK     Status = "ok"
	StatusEmpty  Status = "empty"
	StatusFailed Status = "failed"
)

// Result records the outcome of one file in a batch run.
type Result struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Status Status `json:"status"`
	Rows   int    `json:"rows"`
	Error  string `json:"error,omitempty"`
}

// Runner extracts every XML file in a directory.
type Runner struct {
	log *slog.Logger
	cfg config.Config
}

func NewRunner(log *slog.Logger, cfg config.Config) *Runner {
	return &Runner{log: log, cfg: cfg}
}

// Run processes every *.xml file directly under dir and returns one Result
// per file, sorted by input path. A file whose container tag has no
// occurrences yields an empty table with the configured headers, not a
// failure.
func (r *Runner) Run(ctx context.Context, dir string) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		r.log.Warn("no xml files found", "dir", dir)
		return nil, nil
	}

	results := make(chan Result, len(paths))
	sem := make(chan struct{}, r.cfg.Workers)
	for _, path := range paths {
		sem <- struct{}{}
		go func(path string) {
			defer func() { <-sem }()
			if ctx.Err() != nil {
				results <- Result{Input: path, Status: StatusFailed, Error: ctx.Err().Error()}
				return
			}
			results <- r.processFile(path)
		}(path)
	}

	out := make([]Result, 0, len(paths))
	for range paths {
		out = append(out, <-results)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Input < out[j].Input })
	return out, nil
}

func (r *Runner) processFile(path string) Result {
	table, err := fundxml.ExtractFile(path, r.cfg.Container, r.cfg.Fields...)
	var notFound *fundxml.NotFoundError
	switch {
	case errors.As(err, &notFound):
		r.log.Warn("no occurrences", "file", path, "tag", notFound.Tag)
		table = fundxml.NewTable(r.cfg.Fields)
	case err != nil:
		r.log.Error("extract failed", "file", path, "error", err)
		return Result{Input: path, Status: StatusFailed, Error: err.Error()}
	}

	out := r.outputPath(path)
	if err := writeTable(table, out, r.cfg); err != nil {
		r.log.Error("write failed", "file", path, "output", out, "error", err)
		return Result{Input: path, Status: StatusFailed, Error: err.Error()}
	}

	status := StatusOK
	if table.Len() == 0 {
		status = StatusEmpty
	}
	r.log.Info("extracted", "file", path, "output", out, "rows", table.Len())
	return Result{Input: path, Output: out, Status: status, Rows: table.Len()}
}

func (r *Runner) outputPath(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(r.cfg.OutDir, base+"."+r.cfg.Format)
}

func writeTable(t *fundxml.Table, path string, cfg config.Config) error {
	if cfg.Format == "xlsx" {
		return t.WriteXLSX(path)
	}
	return t.WriteCSVFile(path, cfg.BOM)
}
