// Package concurrency provides a bounded parallel map helper.
package concurrency

import "sync"

// Map applies fn to every item using at most maxWorkers goroutines and
// returns the results in input order. Row classification is a pure function
// per item, so no error or cancellation plumbing is needed here.
func Map[T any, R any](items []T, maxWorkers int, fn func(index int, item T) R) []R {
	if len(items) == 0 {
		return nil
	}

	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	results := make([]R, len(items))
	jobs := make(chan int, len(items))

	var wg sync.WaitGroup

	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				results[i] = fn(i, items[i])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	return results
}
