/*
Package batch runs a whole number list through an encoder.

Numbers are read line by line and solved on a small pool of goroutines. The
results are handed to the output writer strictly in input order, so the
output of a run does not depend on the number of workers.

	runner := batch.NewRunner(encoder, writer, 4)
	stats, err := runner.Run(ctx, numbers)

Lines that are not valid UTF-8 are skipped. The run stops early when ctx is
cancelled; everything solved before that point is still written.
*/
package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/phonecode/internal/logger"
	"github.com/bastiangx/phonecode/internal/utils"
	"github.com/bastiangx/phonecode/pkg/encode"
	"github.com/bastiangx/phonecode/pkg/keypad"
	"github.com/bastiangx/phonecode/pkg/output"
)

// Stats summarizes one run
type Stats struct {
	Numbers     int
	Solutions   int
	Unencodable int
	CacheHits   int
	Elapsed     time.Duration
}

// Runner feeds number lines to an encoder and results to a writer
type Runner struct {
	encoder encode.IEncoder
	sink    output.Writer
	workers int
	log     *log.Logger
}

// job is one number in flight; result is filled exactly once
type job struct {
	number string
	result chan []encode.Solution
}

// NewRunner creates a runner. workers below 1 are treated as 1.
func NewRunner(encoder encode.IEncoder, sink output.Writer, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		encoder: encoder,
		sink:    sink,
		workers: workers,
		log:     logger.New("batch"),
	}
}

// Run encodes every line of numbers and writes the results in order.
func (r *Runner) Run(ctx context.Context, numbers io.Reader) (Stats, error) {
	start := time.Now()
	hitsBefore := r.encoder.Stats()["cacheHits"]

	// pending preserves input order; sem bounds the searches running at once.
	pending := make(chan *job, r.workers)
	sem := make(chan struct{}, r.workers)
	drained := make(chan drainResult, 1)
	go func() {
		drained <- r.drain(pending)
	}()

	readErr := utils.ReadLines(numbers, func(line string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
		j := &job{number: line, result: make(chan []encode.Solution, 1)}
		select {
		case pending <- j:
		case <-ctx.Done():
			<-sem
			return ctx.Err()
		}
		go func() {
			defer func() { <-sem }()
			r.solve(j)
		}()
		return nil
	})
	close(pending)
	res := <-drained

	stats := res.stats
	stats.CacheHits = r.encoder.Stats()["cacheHits"] - hitsBefore
	stats.Elapsed = time.Since(start)

	if res.err != nil {
		return stats, fmt.Errorf("failed to write encodings: %w", res.err)
	}
	if readErr != nil {
		return stats, readErr
	}

	r.log.Debug("Run finished",
		"numbers", stats.Numbers,
		"solutions", stats.Solutions,
		"unencodable", stats.Unencodable,
		"cacheHits", stats.CacheHits,
		"workers", r.workers,
		"took", stats.Elapsed)
	return stats, nil
}

// solve runs the search for one job.
// The digit sequence only ever holds ASCII digits, so an encoder error
// means a broken invariant; it is logged and the number yields nothing.
func (r *Runner) solve(j *job) {
	solutions, err := r.encoder.Encode(keypad.Digits(j.number))
	if err != nil {
		r.log.Errorf("Encoding %q: %v", j.number, err)
	}
	j.result <- solutions
}

type drainResult struct {
	stats Stats
	err   error
}

// drain writes finished jobs in queue order. After a write error it keeps
// consuming so the reader never blocks, but writes nothing more.
func (r *Runner) drain(pending <-chan *job) drainResult {
	var res drainResult
	for j := range pending {
		solutions := <-j.result
		res.stats.Numbers++
		res.stats.Solutions += len(solutions)
		if len(solutions) == 0 {
			res.stats.Unencodable++
			r.log.Debugf("No encoding for %q", j.number)
		}
		if res.err != nil {
			continue
		}
		res.err = r.sink.Write(j.number, solutions)
	}
	if err := r.sink.Flush(); err != nil && res.err == nil {
		res.err = err
	}
	return res
}
