package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressmark/pressmark/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// pdfExtension is the extension applied to mirrored output paths.
const pdfExtension = ".pdf"

// ConversionJob represents one source document to convert.
type ConversionJob struct {
	SourcePath string
	DestPath   string
}

// discoverJobs finds all markdown files under inputRoot and computes
// the mirrored destination path for each under outputRoot.
//
// If inputRoot is itself a markdown file, the job set is exactly that
// file. Otherwise inputRoot is walked recursively; filepath.WalkDir
// visits entries in lexical order, so discovery is deterministic
// within one run.
func discoverJobs(inputRoot, outputRoot string) ([]ConversionJob, error) {
	info, err := os.Stat(inputRoot)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.HasMarkdownExt(inputRoot) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputRoot))
		}
		dest := mirrorOutputPath(inputRoot, inputRoot, outputRoot)
		return []ConversionJob{{SourcePath: inputRoot, DestPath: dest}}, nil
	}

	var jobs []ConversionJob
	err = filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !fileutil.HasMarkdownExt(path) {
			return nil
		}
		dest := mirrorOutputPath(path, inputRoot, outputRoot)
		jobs = append(jobs, ConversionJob{SourcePath: path, DestPath: dest})
		return nil
	})

	return jobs, err
}

// mirrorOutputPath computes the destination PDF path for a discovered
// markdown file: the path relative to inputRoot, extension rewritten,
// joined under outputRoot.
//
// A file whose stem is empty (literally named ".md") would produce an
// unusable ".pdf" filename; the destination falls back to the input
// root's own name instead.
func mirrorOutputPath(srcPath, inputRoot, outputRoot string) string {
	var rel string
	if srcPath == inputRoot {
		// Single-file mode: mirror just the filename.
		rel = filepath.Base(srcPath)
	} else {
		r, err := filepath.Rel(inputRoot, srcPath)
		if err != nil {
			r = filepath.Base(srcPath)
		}
		rel = r
	}

	base := filepath.Base(rel)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	name := stem + pdfExtension
	if stem == "" {
		name = fallbackStem(srcPath, inputRoot) + pdfExtension
	}

	return filepath.Join(outputRoot, filepath.Dir(rel), name)
}

// fallbackStem names an empty-stem output after the input root.
// When the input root is itself the file, its parent directory's name
// is used instead.
func fallbackStem(srcPath, inputRoot string) string {
	root := filepath.Clean(inputRoot)
	if srcPath == inputRoot {
		root = filepath.Dir(root)
	}
	return filepath.Base(root)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// htmlOutputPath returns the HTML path corresponding to a PDF path.
func htmlOutputPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, pdfExtension) + ".html"
}
