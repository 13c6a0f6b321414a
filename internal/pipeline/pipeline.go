// Package pipeline implements the handoff between the file-reading
// producer and the single enumeration consumer (spec §4.2, §5): an
// unbounded FIFO guarded by a mutex and condition variable, with an
// explicit end-of-input termination protocol.
package pipeline

import "sync"

// Pipeline is a single-producer, single-consumer sentence queue. The
// producer calls Push for each sentence and Close once at end of input;
// the consumer calls Consume exactly once with a handler that runs on the
// consumer's own goroutine.
type Pipeline struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []string
	done  bool
}

// New returns an empty, open Pipeline.
func New() *Pipeline {
	p := &Pipeline{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Push enqueues a sentence and wakes the consumer. Never blocks: the queue
// is unbounded, so the producer never waits on a full queue (spec §5).
func (p *Pipeline) Push(sentence string) {
	p.mu.Lock()
	p.queue = append(p.queue, sentence)
	p.mu.Unlock()
	p.cond.Signal()
}

// Close marks end of input. Called exactly once, after the last Push.
func (p *Pipeline) Close() {
	p.mu.Lock()
	p.done = true
	p.mu.Unlock()
	p.cond.Signal()
}

// Consume runs handle once per sentence, in push order, until Close has
// been called and the queue is empty. The wake predicate is "queue
// non-empty OR done", so a Close delivered between the consumer's last pop
// and its next Wait can never wedge it (spec §4.2 design note). Once the
// main wait loop exits, any remainder is drained without locking, since the
// producer is guaranteed to have finished pushing by then.
func (p *Pipeline) Consume(handle func(sentence string)) {
	for {
		p.mu.Lock()
		if p.done && len(p.queue) == 0 {
			p.mu.Unlock()
			break
		}
		for len(p.queue) == 0 && !p.done {
			p.cond.Wait()
		}
		var sentence string
		popped := false
		if len(p.queue) > 0 {
			sentence = p.queue[0]
			p.queue = p.queue[1:]
			popped = true
		}
		p.mu.Unlock()
		if popped {
			handle(sentence)
		}
	}

	for len(p.queue) > 0 {
		sentence := p.queue[0]
		p.queue = p.queue[1:]
		handle(sentence)
	}
}
