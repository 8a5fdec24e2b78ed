package filter

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// sequentialLimit is the record count below which Apply skips concurrency
const sequentialLimit = 512

// Apply returns the records matching the program, in their original order.
// env exposes one record to the expression, e.g. ItemEnv.
func Apply[T any](p *Program, records []T, env func(T) map[string]any) []T {
	if len(records) == 0 {
		return []T{}
	}

	if len(records) < sequentialLimit {
		return applySequential(p, records, env)
	}

	return applyConcurrent(p, records, env)
}

func applySequential[T any](p *Program, records []T, env func(T) map[string]any) []T {
	matches := make([]T, 0, len(records)/4)
	for _, r := range records {
		if p.Match(env(r)) {
			matches = append(matches, r)
		}
	}
	return matches
}

// applyConcurrent evaluates fixed chunks in parallel and stitches the
// matches back together in chunk order
func applyConcurrent[T any](p *Program, records []T, env func(T) map[string]any) []T {
	workers := runtime.GOMAXPROCS(0)
	chunkSize := max(len(records)/workers, sequentialLimit/4)

	var chunks [][]T
	for i := 0; i < len(records); i += chunkSize {
		chunks = append(chunks, records[i:min(i+chunkSize, len(records))])
	}

	results := make([][]T, len(chunks))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			results[i] = applySequential(p, chunk, env)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	matches := make([]T, 0, total)
	for _, r := range results {
		matches = append(matches, r...)
	}
	return matches
}
