package book

import (
	"container/list"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// matcherTask is one unit of work queued to a Matcher: either an order to
// add or an order id to cancel, never both.
type matcherTask struct {
	add    *Order
	cancel uint64
	isAdd  bool
}

// Matcher serializes access to a single OrderBook through one dedicated
// worker goroutine, so Add and Cancel never need to be called concurrently
// by submitters. The inbox is an unbounded doubly linked list guarded by a
// mutex and condition variable rather than a buffered channel: a channel
// would impose a fixed capacity and force Submit to choose between
// blocking the caller or dropping work, neither of which matches the
// unbounded-inbox requirement this component is built to satisfy.
type Matcher struct {
	book   *OrderBook
	logger *slog.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	inbox   *list.List
	running bool
	closed  bool

	processed atomic.Uint64
	wg        sync.WaitGroup
}

// NewMatcher creates a Matcher bound to book. If l is nil, the package
// default logger is used.
func NewMatcher(b *OrderBook, l *slog.Logger) *Matcher {
	if l == nil {
		l = logger
	}
	m := &Matcher{
		book:   b,
		logger: l,
		inbox:  list.New(),
	}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Start launches the worker goroutine. Calling Start on an already-running
// Matcher returns ErrAlreadyRunning; calling it after Stop returns
// ErrShutdown.
func (m *Matcher) Start() error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return ErrAlreadyRunning
	}
	if m.closed {
		m.mu.Unlock()
		return ErrShutdown
	}
	m.running = true
	m.mu.Unlock()

	m.wg.Add(1)
	go m.run()
	m.logger.Info("matcher started", "symbol", m.book.Symbol())
	return nil
}

// Stop signals the worker to drain the inbox and exit, then waits for it
// to finish. Stop is idempotent.
func (m *Matcher) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.cond.Broadcast()
	m.mu.Unlock()

	m.wg.Wait()

	m.mu.Lock()
	m.running = false
	m.mu.Unlock()
	m.logger.Info("matcher stopped", "symbol", m.book.Symbol(), "processed", m.processed.Load())
}

// Submit enqueues order for the worker to add to the book. It never
// blocks on book capacity and never drops work; it returns ErrShutdown if
// the Matcher is not running.
func (m *Matcher) Submit(o Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running || m.closed {
		return ErrShutdown
	}
	m.inbox.PushBack(matcherTask{add: &o, isAdd: true})
	m.cond.Signal()
	return nil
}

// SubmitCancel enqueues a cancel request for orderID. Same backpressure
// and shutdown semantics as Submit.
func (m *Matcher) SubmitCancel(orderID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running || m.closed {
		return ErrShutdown
	}
	m.inbox.PushBack(matcherTask{cancel: orderID, isAdd: false})
	m.cond.Signal()
	return nil
}

// ProcessedOrders returns the number of tasks the worker has applied to
// the book so far, add and cancel combined.
func (m *Matcher) ProcessedOrders() uint64 {
	return m.processed.Load()
}

// run is the single worker loop: pin to one OS thread, same as the
// teacher's matching goroutine, since the per-task work is small and
// cache locality matters more than scheduler freedom here. It drains the
// inbox fully before checking for shutdown, so Stop never discards queued
// work.
func (m *Matcher) run() {
	defer m.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		m.mu.Lock()
		for m.inbox.Len() == 0 && !m.closed {
			m.cond.Wait()
		}
		if m.inbox.Len() == 0 && m.closed {
			m.mu.Unlock()
			return
		}
		front := m.inbox.Front()
		m.inbox.Remove(front)
		m.mu.Unlock()

		task := front.Value.(matcherTask)
		if task.isAdd {
			m.book.Add(*task.add)
		} else {
			m.book.Cancel(task.cancel)
		}
		m.processed.Add(1)
	}
}
