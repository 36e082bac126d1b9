package baseframe

import (
	"runtime"
	"sync"
)

// MinimalSize tries every corpus member as the base and returns the one that
// minimizes [TotalSize]. Ties go to the earliest frame in the corpus.
//
// Candidates are evaluated in parallel. Each worker only reads the corpus, so
// no locking is needed.
type MinimalSize struct {
	// Workers is the number of candidates evaluated concurrently. Zero or less
	// means one per CPU.
	Workers int
}

type candidateCost struct {
	index int
	size  int
	err   error
}

func (s MinimalSize) SelectBase(corpus Corpus) ([]byte, error) {
	if err := corpus.Validate(); err != nil {
		return nil, err
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(corpus) {
		workers = len(corpus)
	}

	candidates := make(chan int)
	results := make(chan candidateCost, len(corpus))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for index := range candidates {
				size, err := TotalSize(corpus[index], corpus)
				results <- candidateCost{index: index, size: size, err: err}
			}
		}()
	}

	go func() {
		for i := range corpus {
			candidates <- i
		}
		close(candidates)
		wg.Wait()
		close(results)
	}()

	best := candidateCost{index: -1}
	var firstErr error
	for result := range results {
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		if best.index < 0 ||
			result.size < best.size ||
			(result.size == best.size && result.index < best.index) {
			best = result
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	base := make([]byte, corpus.FrameLen())
	copy(base, corpus[best.index])
	return base, nil
}
