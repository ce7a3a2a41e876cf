package fanout_test

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/identifiers/doi"
	"github.com/jsamuelsen11/identifiers/internal/app/fanout"
)

var errOdd = errors.New("odd input")

// double fails for odd inputs so tests can check per-item errors.
func double(_ context.Context, n int) (int, error) {
	if n%2 != 0 {
		return 0, errOdd
	}
	return n * 2, nil
}

func TestRun_Results(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxWorkers int
		items      []int
	}{
		{name: "fewer workers than items", maxWorkers: 2, items: []int{2, 3, 4, 5, 6}},
		{name: "more workers than items", maxWorkers: 100, items: []int{2, 4}},
		{name: "zero workers runs serially", maxWorkers: 0, items: []int{1, 2, 3}},
		{name: "negative workers runs serially", maxWorkers: -3, items: []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results := fanout.Run(context.Background(), tt.maxWorkers, tt.items, double)

			if len(results) != len(tt.items) {
				t.Fatalf("len(results) = %d, want %d", len(results), len(tt.items))
			}
			for i, n := range tt.items {
				want, wantErr := double(context.Background(), n)
				if results[i].Value != want || !errors.Is(results[i].Err, wantErr) {
					t.Errorf("results[%d] = {%d, %v}, want {%d, %v}", i, results[i].Value, results[i].Err, want, wantErr)
				}
			}
		})
	}
}

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string(nil), func(_ context.Context, _ string) (string, error) {
		t.Error("fn called for empty input")
		return "", nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("results = %#v, want empty non-nil slice", results)
	}
}

func TestRun_OrderSurvivesUnevenWork(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond, 5 * time.Millisecond}

	results := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	got := make([]time.Duration, len(results))
	for i, r := range results {
		got[i] = r.Value
	}
	if !slices.Equal(got, delays) {
		t.Errorf("values = %v, want %v", got, delays)
	}
}

func TestRun_NeverExceedsWorkerCount(t *testing.T) {
	t.Parallel()

	const workers = 3

	var inFlight, peak atomic.Int32
	items := make([]int, 20)

	fanout.Run(context.Background(), workers, items, func(_ context.Context, _ int) (struct{}, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	if p := peak.Load(); p > workers {
		t.Errorf("peak in-flight calls = %d, want at most %d", p, workers)
	}
}

func TestRun_CancelSkipsRemainingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	if calls.Load() != 1 {
		t.Errorf("fn calls = %d, want 1", calls.Load())
	}
	if results[0].Err != nil || results[0].Value != 1 {
		t.Errorf("results[0] = {%d, %v}, want {1, nil}", results[0].Value, results[0].Err)
	}
	for _, i := range []int{1, 2} {
		if !errors.Is(results[i].Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, results[i].Err)
		}
	}
}

func TestRun_AlreadyCanceledCallsNothing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	results := fanout.Run(ctx, 2, []int{1, 2}, func(_ context.Context, _ int) (int, error) {
		t.Error("fn called after the deadline")
		return 0, nil
	})

	for i, r := range results {
		if !errors.Is(r.Err, context.DeadlineExceeded) {
			t.Errorf("results[%d].Err = %v, want context.DeadlineExceeded", i, r.Err)
		}
	}
}

func TestRun_ExtractPreservesTextOrder(t *testing.T) {
	t.Parallel()

	texts := []string{
		"first 10.1111/a",
		"nothing here",
		"third 10.3333/c and 10.3333/d",
	}

	results := fanout.Run(context.Background(), 2, texts, func(_ context.Context, text string) ([]doi.DOI, error) {
		return doi.Extract(text), nil
	})

	wantCounts := []int{1, 0, 2}
	for i, r := range results {
		if len(r.Value) != wantCounts[i] {
			t.Errorf("len(results[%d].Value) = %d, want %d", i, len(r.Value), wantCounts[i])
		}
	}
	if got := results[2].Value[1].String(); got != "10.3333/d" {
		t.Errorf("results[2].Value[1] = %q, want %q", got, "10.3333/d")
	}
}
