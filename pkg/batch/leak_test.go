//go:build test

package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/bastiangx/phonecode/pkg/output"
)

var leakNumbers = strings.Repeat("5624-82\n4824\n04824\n10/783--5\n112\n381482\n", 50)

func TestRunnerGoroutineLeak(t *testing.T) {
	configs := []struct {
		workers int
		runs    int
	}{
		{workers: 1, runs: 20},
		{workers: 2, runs: 20},
		{workers: 4, runs: 10},
		{workers: 8, runs: 10},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_runs_%d", config.workers, config.runs), func(t *testing.T) {
			runLeakTest(t, config.workers, config.runs)
		})
	}
}

func runLeakTest(t *testing.T, workers, runs int) {
	encoder := newEncoder(t, 32)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < runs; i++ {
		runner := NewRunner(encoder, output.NewTextWriter(io.Discard, output.Options{}), workers)
		if _, err := runner.Run(context.Background(), strings.NewReader(leakNumbers)); err != nil {
			t.Fatalf("run failed: %v", err)
		}
	}

	// solve goroutines release their slot just after handing over the result
	deadline := time.Now().Add(time.Second)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	for goroutineDelta > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
		goroutineDelta = runtime.NumGoroutine() - baselineGoroutines
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	memDelta := int64(final.Alloc) - int64(baseline.Alloc)

	t.Logf("workers=%d runs=%d mem_delta=%d bytes goroutine_delta=%d cache=%v",
		workers, runs, memDelta, goroutineDelta, encoder.Stats())

	if goroutineDelta > 0 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
