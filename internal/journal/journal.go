package journal

import (
	"sync"
	"taskloop/internal/domain"
	"taskloop/internal/ports"
)

var _ ports.Journal = (*Journal)(nil)

const defaultDepth = 32

// Journal holds the most recent run records in a fixed-size ring.
// Everything here is in-memory only.
type Journal struct {
	mu     sync.Mutex
	runs   []domain.Run
	next   int
	full   bool
	cycles uint64
}

func New(depth int) *Journal {
	if depth <= 0 {
		depth = defaultDepth
	}
	return &Journal{runs: make([]domain.Run, depth)}
}

func (j *Journal) Record(r domain.Run) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.runs[j.next] = r
	j.next = (j.next + 1) % len(j.runs)
	if j.next == 0 {
		j.full = true
	}
	j.cycles++
}

// Last returns the most recently recorded run, if any.
func (j *Journal) Last() (domain.Run, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cycles == 0 {
		return domain.Run{}, false
	}
	idx := (j.next - 1 + len(j.runs)) % len(j.runs)
	return j.runs[idx], true
}

func (j *Journal) Cycles() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cycles
}

// Recent returns up to n runs, newest first.
func (j *Journal) Recent(n int) []domain.Run {
	j.mu.Lock()
	defer j.mu.Unlock()

	have := j.next
	if j.full {
		have = len(j.runs)
	}
	if n > have {
		n = have
	}
	out := make([]domain.Run, 0, n)
	for i := 0; i < n; i++ {
		idx := (j.next - 1 - i + len(j.runs)) % len(j.runs)
		out = append(out, j.runs[idx])
	}
	return out
}
