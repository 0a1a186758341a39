package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost keeps a single bcrypt derivation in the tens of
	// milliseconds on current server hardware.
	DefaultCost = 12

	defaultWorkers = 8
	queueBuffer    = 256
)

// Hasher performs bcrypt hashing and verification on a fixed pool of
// workers, keeping the CPU-bound key derivation off the request-accepting
// path and bounding how many derivations run at once.
type Hasher struct {
	cost int
	jobs chan func()
}

// NewHasher creates a Hasher with the given cost factor and worker count.
// Out-of-range values fall back to DefaultCost / defaultWorkers. Workers
// live for the lifetime of the process.
func NewHasher(cost, workers int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	h := &Hasher{cost: cost, jobs: make(chan func(), queueBuffer)}
	for i := 0; i < workers; i++ {
		go h.runWorker()
	}
	return h
}

func (h *Hasher) runWorker() {
	for job := range h.jobs {
		job()
	}
}

// QueueDepth reports how many hash jobs are waiting for a worker.
func (h *Hasher) QueueDepth() int {
	return len(h.jobs)
}

// Hash derives a salted one-way hash of plaintext. If ctx is cancelled
// before a worker picks the job up, the call returns ctx.Err(); a job
// already running completes and its result is discarded.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	type result struct {
		hash []byte
		err  error
	}
	out := make(chan result, 1)

	job := func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
		out <- result{hash: hash, err: err}
	}

	select {
	case h.jobs <- job:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case r := <-out:
		if r.err != nil {
			return "", r.err
		}
		return string(r.hash), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Verify reports whether plaintext matches the stored bcrypt hash. bcrypt
// always compares the full derived key, so a mismatch costs the same as a
// match and cannot be distinguished by timing.
func (h *Hasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	type result struct {
		match bool
		err   error
	}
	out := make(chan result, 1)

	job := func() {
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			out <- result{match: false}
			return
		}
		out <- result{match: err == nil, err: err}
	}

	select {
	case h.jobs <- job:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	select {
	case r := <-out:
		return r.match, r.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
