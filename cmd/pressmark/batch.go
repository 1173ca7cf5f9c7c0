package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	pressmark "github.com/pressmark/pressmark"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePDF     = errors.New("failed to write PDF file")
	ErrPoolInit     = errors.New("failed to initialize converter")
)

// conversionParams groups parameters shared by every job in a batch.
type conversionParams struct {
	theme    pressmark.Theme
	page     *pressmark.PageSettings
	htmlOnly bool
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	SourcePath string
	DestPath   string
	Err        error
	Duration   time.Duration
}

// reporter emits per-job outcome lines as jobs complete. Workers run
// concurrently, so emission is serialized.
type reporter struct {
	mu      sync.Mutex
	env     *Environment
	quiet   bool
	verbose bool
}

// report prints one job's outcome. Failures go to stderr immediately;
// successes to stdout unless quiet.
func (r *reporter) report(res ConversionResult) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.Err != nil {
		fmt.Fprintf(r.env.Stderr, "FAILED %s: %v\n", res.SourcePath, res.Err)
		return
	}
	if r.quiet {
		return
	}
	if r.verbose {
		fmt.Fprintf(r.env.Stdout, "%s -> %s (%v)\n", res.SourcePath, res.DestPath, res.Duration.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(r.env.Stdout, "Created %s\n", res.DestPath)
}

// convertBatch processes jobs using the converter pool, reporting each
// outcome as it lands. Results are indexed like jobs, so summary counts
// always equal the job count regardless of execution order. One job's
// failure never affects another job's outcome.
func convertBatch(ctx context.Context, pool Pool, jobs []ConversionJob, params *conversionParams, rep *reporter) []ConversionResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]ConversionResult, len(jobs))
	var wg sync.WaitGroup
	work := make(chan int, len(jobs))

	// A worker whose converter fails to initialize exits without
	// touching the job channel, leaving its share of jobs to the
	// surviving workers. The first init error is kept so jobs are only
	// marked failed when every worker is gone.
	var initMu sync.Mutex
	var initErr error

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				initMu.Lock()
				if initErr == nil {
					initErr = err
				}
				initMu.Unlock()
				return
			}
			defer pool.Release(conv)

			for idx := range work {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						SourcePath: jobs[idx].SourcePath,
						Err:        ctx.Err(),
					}
					rep.report(results[idx])
					continue
				}
				results[idx] = convertJob(ctx, conv, jobs[idx], params)
				rep.report(results[idx])
			}
		}()
	}

	for i := range jobs {
		work <- i
	}
	close(work)

	wg.Wait()

	// Jobs still untouched after all workers exited had no converter
	// available at all.
	for i := range results {
		if results[i].SourcePath != "" {
			continue
		}
		results[i] = ConversionResult{
			SourcePath: jobs[i].SourcePath,
			Err:        fmt.Errorf("%w: %v", ErrPoolInit, initErr),
		}
		rep.report(results[i])
	}
	return results
}

// convertJob processes a single job and returns the result. Any failure
// is contained here; nothing is written to the destination on failure.
func convertJob(ctx context.Context, conv Converter, job ConversionJob, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		SourcePath: job.SourcePath,
		DestPath:   job.DestPath,
	}

	// Read as raw bytes: markdown sources are UTF-8 and pass through
	// untranscoded, so non-ASCII content is never corrupted.
	content, err := os.ReadFile(job.SourcePath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	convResult, err := conv.Convert(ctx, pressmark.Input{
		Markdown:  string(content),
		Theme:     params.theme,
		SourceDir: filepath.Dir(job.SourcePath),
		Page:      params.page,
		HTMLOnly:  params.htmlOnly,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(job.DestPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if params.htmlOnly {
		htmlPath := htmlOutputPath(job.DestPath)
		// #nosec G306 -- HTML files are meant to be readable
		if err := os.WriteFile(htmlPath, convResult.HTML, filePermissions); err != nil {
			result.Err = fmt.Errorf("failed to write HTML file: %w", err)
			result.Duration = time.Since(start)
			return result
		}
		result.DestPath = htmlPath
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(job.DestPath, convResult.PDF, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePDF, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printSummary outputs the final counts for a multi-file run.
// Returns the number of failed conversions.
func printSummary(results []ConversionResult, quiet bool, env *Environment) int {
	summary := countResults(results)

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
