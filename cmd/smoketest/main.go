// Command smoketest classifies every line of every .txt file under a
// directory and checks the result invariants, printing totals.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/dateguess/datefmt"
)

const (
	maxWorkers   = 4
	expectedArgs = 2
	maxLineSize  = 1 << 20 // 1 MB per sample line
	topTemplates = 10
)

type Stats struct {
	mu            sync.Mutex
	filesScanned  int
	samples       int
	ambiguous     int
	unrecognized  int
	failures      int
	kindCounts    map[datefmt.Kind]int
	templateCount map[string]int
}

func newStats() *Stats {
	return &Stats{
		kindCounts:    make(map[datefmt.Kind]int),
		templateCount: make(map[string]int),
	}
}

type fileState struct {
	path          string
	samples       int
	ambiguous     int
	unrecognized  int
	failures      int
	kindCounts    map[datefmt.Kind]int
	templateCount map[string]int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	filePaths, err := collectFiles(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	stats := newStats()
	if err := run(filePaths, stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
	if stats.failures > 0 {
		os.Exit(1)
	}
}

func collectFiles(dir string) ([]string, error) {
	var filePaths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	return filePaths, err
}

func run(filePaths []string, stats *Stats) error {
	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for _, path := range filePaths {
		g.Go(func() error {
			state, err := processFile(path)
			if err != nil {
				return err
			}
			mergeFileState(state, stats)
			return nil
		})
	}
	return g.Wait()
}

func processFile(path string) (*fileState, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	state := &fileState{
		path:          path,
		kindCounts:    make(map[datefmt.Kind]int),
		templateCount: make(map[string]int),
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		sample := sc.Text()
		if sample == "" {
			continue
		}
		state.check(line, sample)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s (%d samples, %d failures)\n",
		filepath.Base(path), state.samples, state.failures)
	return state, nil
}

func (fs *fileState) check(line int, sample string) {
	fs.samples++

	res, err := datefmt.Classify(sample)
	if err != nil {
		fs.fail(line, sample, err.Error())
		return
	}
	for _, problem := range checkResult(sample, res) {
		fs.fail(line, sample, problem)
	}

	if res.Ambiguous {
		fs.ambiguous++
	}
	best, ok := res.Best()
	if !ok || len(best.Fields) == 0 {
		fs.unrecognized++
		return
	}
	fs.templateCount[best.Template]++
	for _, f := range best.Fields {
		fs.kindCounts[f.Kind]++
	}
}

func (fs *fileState) fail(line int, sample, problem string) {
	fs.failures++
	fmt.Fprintf(os.Stderr, "FAIL: %s:%d: %q: %s\n", fs.path, line, sample, problem)
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.samples += fs.samples
	stats.ambiguous += fs.ambiguous
	stats.unrecognized += fs.unrecognized
	stats.failures += fs.failures
	for kind, count := range fs.kindCounts {
		stats.kindCounts[kind] += count
	}
	for tmpl, count := range fs.templateCount {
		stats.templateCount[tmpl] += count
	}
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Samples:                 %d\n", stats.samples)
	fmt.Printf("Ambiguous:               %d\n", stats.ambiguous)
	fmt.Printf("Unrecognized:            %d\n", stats.unrecognized)
	fmt.Printf("Invariant failures:      %d\n", stats.failures)
	fmt.Println()

	total := 0
	kinds := make([]datefmt.Kind, 0, len(stats.kindCounts))
	for kind, count := range stats.kindCounts {
		total += count
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Println("Field kind distribution:")
	for _, kind := range kinds {
		count := stats.kindCounts[kind]
		fmt.Printf("  %-15s %d  (%.1f%%)\n", kind.String()+":", count, float64(count)/float64(total)*100)
	}

	fmt.Println()
	fmt.Println("Most common templates:")
	for _, tc := range rankTemplates(stats.templateCount, topTemplates) {
		fmt.Printf("  %6d  %s\n", tc.count, tc.template)
	}
}

type templateCount struct {
	template string
	count    int
}

func rankTemplates(counts map[string]int, n int) []templateCount {
	out := make([]templateCount, 0, len(counts))
	for tmpl, count := range counts {
		out = append(out, templateCount{tmpl, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].template < out[j].template
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
