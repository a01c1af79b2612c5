package main

import (
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-html2md/internal/fileutil"
)

// inputKind classifies a positional argument.
type inputKind int

const (
	inputFile inputKind = iota
	inputURL
	inputStdin
)

// FileToConvert represents a single conversion unit.
type FileToConvert struct {
	// Source is a file path, a URL, or "-" for stdin.
	Source string
	Kind   inputKind
	// Content carries pre-read input for stdin sources.
	Content string
	// OutputPath is the markdown destination; empty means stdout.
	OutputPath string
}

// resolveInputs expands positional arguments into conversion units.
// Each argument is stdin ("-"), a URL, a directory, or an HTML file.
// Stdin is read here, once, before the workers start.
func resolveInputs(args []string, outputDir string, env *Environment) ([]FileToConvert, error) {
	if len(args) == 0 {
		return nil, ErrNoInput
	}

	var files []FileToConvert
	stdinSeen := false

	for _, arg := range args {
		switch {
		case arg == "-":
			if stdinSeen {
				return nil, fmt.Errorf("%w: stdin given more than once", ErrNoInput)
			}
			stdinSeen = true

			content, err := io.ReadAll(env.Stdin)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrReadHTML, err)
			}
			files = append(files, FileToConvert{
				Source:     "-",
				Kind:       inputStdin,
				Content:    string(content),
				OutputPath: stdinOutputPath(outputDir),
			})

		case fileutil.IsURL(arg):
			files = append(files, FileToConvert{
				Source:     arg,
				Kind:       inputURL,
				OutputPath: urlOutputPath(arg, outputDir),
			})

		default:
			discovered, err := discoverFiles(arg, outputDir)
			if err != nil {
				return nil, err
			}
			files = append(files, discovered...)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no HTML files found", ErrNoInput)
	}

	return files, nil
}

// discoverFiles finds all HTML files under a path.
// A file argument must have an HTML extension; a directory is walked
// recursively, skipping hidden directories.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateHTMLExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{Source: inputPath, Kind: inputFile, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", p, err)
		}
		if d.IsDir() {
			if p != inputPath && fileutil.IsHiddenName(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(p)
		if ext != ".html" && ext != ".htm" {
			return nil
		}
		outPath := resolveOutputPath(p, outputDir, inputPath)
		files = append(files, FileToConvert{Source: p, Kind: inputFile, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the markdown output path for an HTML file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".md")
	}

	if strings.HasSuffix(outputDir, ".md") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".md")
		}
	}

	return filepath.Join(outputDir, base+".md")
}

// urlOutputPath determines the markdown output path for a URL input.
func urlOutputPath(pageURL, outputDir string) string {
	slug := urlSlug(pageURL)
	if outputDir == "" {
		return slug + ".md"
	}
	if strings.HasSuffix(outputDir, ".md") {
		return outputDir
	}
	return filepath.Join(outputDir, slug+".md")
}

// stdinOutputPath determines the output path for stdin input.
// Empty means stdout.
func stdinOutputPath(outputDir string) string {
	if outputDir == "" {
		return ""
	}
	if strings.HasSuffix(outputDir, ".md") {
		return outputDir
	}
	return filepath.Join(outputDir, "stdin.md")
}

// urlSlug derives a file name from a URL for default output naming.
//
// Examples:
//   - "https://example.com/docs/page.html" -> "page"
//   - "https://example.com/" -> "example.com"
//   - "https://example.com/index.html" -> "example.com"
func urlSlug(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return "page"
	}

	base := path.Base(u.Path)
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" || base == "index" {
		base = u.Host
	}

	return sanitizeSlug(base)
}

// sanitizeSlug keeps derived file names shell-friendly.
func sanitizeSlug(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// validateHTMLExtension checks that the file has a .html or .htm extension.
func validateHTMLExtension(inputPath string) error {
	ext := filepath.Ext(inputPath)
	if ext != ".html" && ext != ".htm" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// previewOutputPath returns the preview path for a markdown output path.
func previewOutputPath(mdPath string) string {
	return strings.TrimSuffix(mdPath, ".md") + ".preview.html"
}
