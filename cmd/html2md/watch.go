package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-html2md/internal/config"
	"github.com/alnah/go-html2md/internal/fileutil"
)

// defaultDebounce is the delay between a file change and reconversion.
// Editors fire several events per save; the timer collapses them into one run.
const defaultDebounce = 300 * time.Millisecond

// ErrWatchInput indicates an input that watch mode cannot monitor.
var ErrWatchInput = errors.New("watch mode accepts files and directories only")

// runWatch converts the inputs once, then reconverts whenever they change.
// It blocks until ctx is cancelled.
func runWatch(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if len(positionalArgs) == 0 {
		return ErrNoInput
	}
	for _, arg := range positionalArgs {
		if arg == "-" || fileutil.IsURL(arg) {
			return fmt.Errorf("%w: %q", ErrWatchInput, arg)
		}
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	applyEnvConfig(loadEnvConfig(), cfg)

	debounce, err := resolveDebounce(flags.watch.debounce, cfg)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	watched, err := addWatchTargets(watcher, positionalArgs)
	if err != nil {
		return err
	}

	// A failed conversion must not stop the watch; the next save retries.
	convert := func() {
		if err := runConvert(ctx, positionalArgs, flags, env); err != nil {
			fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		}
	}

	convert()

	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "watching %s (Ctrl-C to stop)\n", strings.Join(positionalArgs, ", "))
	}

	var mu sync.Mutex
	var timer *time.Timer
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, convert)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				// fsnotify does not watch recursively, so directories that
				// appear under a watched tree must be added by hand.
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if !fileutil.IsHiddenName(filepath.Base(event.Name)) {
						_ = watcher.Add(event.Name)
					}
					continue
				}
			}
			if !watched.relevant(event) {
				continue
			}
			if flags.common.verbose {
				fmt.Fprintf(env.Stderr, "change detected: %s\n", event.Name)
			}
			schedule()
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", watchErr)
		}
	}
}

// watchSet records what to react to: exact file paths given as inputs, and
// directory trees where any HTML change counts.
type watchSet struct {
	files map[string]bool
	dirs  []string
}

// relevant reports whether an event should trigger reconversion.
func (ws *watchSet) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if ws.files[name] {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".html" && ext != ".htm" {
		return false
	}
	for _, dir := range ws.dirs {
		if strings.HasPrefix(name, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// addWatchTargets registers the inputs with the watcher and returns the
// filter set for incoming events.
func addWatchTargets(watcher *fsnotify.Watcher, args []string) (*watchSet, error) {
	ws := &watchSet{files: make(map[string]bool)}
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", arg, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("reading input %s: %w", arg, err)
		}
		if !info.IsDir() {
			// Watching the parent is more reliable than watching the file
			// itself; editors often replace files on save.
			if err := watcher.Add(filepath.Dir(abs)); err != nil {
				return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
			}
			ws.files[abs] = true
			continue
		}
		ws.dirs = append(ws.dirs, abs)
		walkErr := filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if p != abs && fileutil.IsHiddenName(d.Name()) {
				return filepath.SkipDir
			}
			return watcher.Add(p)
		})
		if walkErr != nil {
			return nil, fmt.Errorf("watching %s: %w", arg, walkErr)
		}
	}
	return ws, nil
}

// resolveDebounce picks the debounce interval: flag, then config, then default.
func resolveDebounce(flagValue string, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q (use forms like 300ms or 1s)", ErrInvalidDebounce, flagValue)
		}
		return d, nil
	}
	if cfg.Watch.DebounceMs > 0 {
		return time.Duration(cfg.Watch.DebounceMs) * time.Millisecond, nil
	}
	return defaultDebounce, nil
}
