package tilespec

import (
	"context"
	"errors"
	"sync"
)

type result struct {
	index int
	flags Flags
	tile  bool
}

// feedRecords sends record indices in order until n or until ctx is done.
// Every index not sent is greater than every index sent.
func feedRecords(ctx context.Context, n int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			select {
			case out <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// deriveWorker derives each record it receives. On the first invalid record
// it reports the error, stops the feed and returns.
func deriveWorker(records []Record, in <-chan int, out chan<- result, cancelFunc context.CancelFunc) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for i := range in {
			flags, tile, err := Derive(records[i])
			if err != nil {
				errc <- err
				cancelFunc()
				return
			}
			out <- result{index: i, flags: flags, tile: tile}
		}
	}()
	return errc
}

func earlier(a, b error) bool {
	var ra, rb *RecordError
	if errors.As(a, &ra) && errors.As(b, &rb) {
		return ra.Line < rb.Line
	}
	return false
}

// waitForPipeline drains every stage and returns the error for the earliest
// line seen.
func waitForPipeline(errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && (first == nil || earlier(err, first)) {
			first = err
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// deriveAll runs Derive over records using the given number of workers.
// Results are indexed like records. The feed stops at the first invalid
// record, but everything already fed is still derived, so the error returned
// is always the one for the earliest record.
func deriveAll(records []Record, workers int) ([]result, error) {
	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	in := feedRecords(ctx, len(records))

	var errcList []<-chan error

	out := make(chan result)
	for i := 0; i < workers; i++ {
		errcList = append(errcList, deriveWorker(records, in, out, cancelFunc))
	}

	done := make(chan error, 1)
	go func() {
		done <- waitForPipeline(errcList...)
		close(out)
	}()

	results := make([]result, len(records))
	for r := range out {
		results[r.index] = r
	}
	if err := <-done; err != nil {
		return nil, err
	}
	return results, nil
}
