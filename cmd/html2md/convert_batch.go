package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	html2md "github.com/alnah/go-html2md"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input html2md.Input) (*html2md.ConvertResult, error)
	ConvertURL(ctx context.Context, pageURL string) (*html2md.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*html2md.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() CLIConverter
	Release(CLIConverter)
	Size() int
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	Source     string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes inputs concurrently using the service pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams, env *Environment) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			if svc == nil {
				// Service creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						Source: files[idx].Source,
						Err:    ErrServiceInit,
					}
				}
				return
			}
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						Source: files[idx].Source,
						Err:    ctx.Err(),
					}
					continue
				}
				results[idx] = convertOne(ctx, svc, files[idx], params, env)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertOne processes a single input and returns the result.
func convertOne(ctx context.Context, service CLIConverter, f FileToConvert, params *conversionParams, env *Environment) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		Source:     f.Source,
		OutputPath: f.OutputPath,
	}

	var (
		res *html2md.ConvertResult
		err error
	)
	switch f.Kind {
	case inputURL:
		res, err = service.ConvertURL(ctx, f.Source)
	case inputStdin:
		res, err = service.Convert(ctx, html2md.Input{HTML: f.Content})
	default:
		content, readErr := os.ReadFile(f.Source) // #nosec G304 -- discovered path
		if readErr != nil {
			result.Err = fmt.Errorf("%w: %v", ErrReadHTML, readErr)
			result.Duration = time.Since(start)
			return result
		}
		res, err = service.Convert(ctx, html2md.Input{HTML: string(content)})
	}
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.Err = writeOutputs(res, f.OutputPath, params, env)
	result.Duration = time.Since(start)
	return result
}

// writeOutputs writes the markdown and optional preview for one conversion.
// An empty output path sends the markdown to stdout.
func writeOutputs(res *html2md.ConvertResult, outputPath string, params *conversionParams, env *Environment) error {
	// Converted output is newline-terminated on disk and on stdout
	markdown := res.Markdown + "\n"

	if outputPath == "" {
		if _, err := io.WriteString(env.Stdout, markdown); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
		}
		return nil
	}

	outDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// #nosec G306 -- markdown files are meant to be readable
	if err := os.WriteFile(outputPath, []byte(markdown), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
	}

	if params.preview && len(res.Preview) > 0 {
		previewPath := previewOutputPath(outputPath)
		// #nosec G306 -- previews are meant to be readable
		if err := os.WriteFile(previewPath, res.Preview, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePreview, err)
		}
	}

	return nil
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

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.Source, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if r.OutputPath == "" {
			// Markdown already went to stdout; status lines would corrupt a
			// piped stream, so the verbose note goes to stderr
			if verbose {
				fmt.Fprintf(env.Stderr, "%s -> stdout (%v)\n", r.Source, r.Duration.Round(time.Millisecond))
			}
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Source, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
