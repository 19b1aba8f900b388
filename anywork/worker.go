// Package anywork is a small worker pool. Work items are plain closures;
// panics inside them are recovered and reported as failures by Sync.
package anywork

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/joshyorko/rpms2sbom/common"
)

type Work func()
type WorkQueue chan Work

type Group struct {
	pipeline  WorkQueue
	pending   sync.WaitGroup
	members   sync.WaitGroup
	mu        sync.Mutex
	failures  []string
	headcount uint64
	closed    bool
}

// OptimalWorkerCount is sized for I/O-bound per-file work.
func OptimalWorkerCount() int {
	count := runtime.NumCPU() * 2
	if count > 32 {
		return 32
	}
	return count
}

// New starts a pool of workers goroutines; values below one mean
// OptimalWorkerCount.
func New(workers int) *Group {
	if workers < 1 {
		workers = OptimalWorkerCount()
	}
	group := &Group{
		pipeline: make(WorkQueue, workers*4),
	}
	for group.headcount < uint64(workers) {
		group.members.Add(1)
		go group.member(group.headcount)
		group.headcount += 1
	}
	common.Trace("anywork: started %d workers", workers)
	return group
}

func (it *Group) catcher(title string, identity uint64) {
	catch := recover()
	if catch != nil {
		it.mu.Lock()
		it.failures = append(it.failures, fmt.Sprintf("Recovering %q #%d: %v", title, identity, catch))
		it.mu.Unlock()
	}
}

func (it *Group) process(fun Work, identity uint64) {
	defer it.pending.Done()
	defer it.catcher("process", identity)
	fun()
}

func (it *Group) member(identity uint64) {
	defer it.members.Done()
	for work := range it.pipeline {
		it.process(work, identity)
	}
}

func (it *Group) Scale() uint64 {
	return it.headcount
}

// Backlog queues work; it blocks while the queue is full.
func (it *Group) Backlog(todo Work) {
	if todo != nil {
		it.pending.Add(1)
		it.pipeline <- todo
	}
}

// Sync waits for all queued work and reports recovered panics.
func (it *Group) Sync() error {
	it.pending.Wait()
	it.mu.Lock()
	defer it.mu.Unlock()
	count := len(it.failures)
	if count > 0 {
		for _, failure := range it.failures {
			common.Log("%s", failure)
		}
		message := strings.Join(it.failures, "; ")
		it.failures = nil
		return fmt.Errorf("There has been %d failures: %s", count, message)
	}
	return nil
}

// Close stops the workers once queued work is done.
func (it *Group) Close() {
	it.mu.Lock()
	if it.closed {
		it.mu.Unlock()
		return
	}
	it.closed = true
	it.mu.Unlock()
	close(it.pipeline)
	it.members.Wait()
}
