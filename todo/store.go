package todo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var ErrNotFound = errors.New("todo not found")
var ErrStopped = errors.New("store stopped")

type Status string

const (
	StatusIdle      Status = "idle"
	StatusOperating Status = "operating"
	StatusClosing   Status = "closing"
	StatusClosed    Status = "closed"
)

// Store owns the todo collection. Every operation is sent as a message to a
// single worker (Run) that applies them one at a time in arrival order, so
// the collection is never touched from any other goroutine.
type Store struct {
	inbox    chan func(c *collection)
	rows     *collection
	mutex    *sync.RWMutex // guards stopped against concurrent sends
	stopped  bool
	status   atomic.Value
	finished chan struct{}
}

func NewStore(inbox int) *Store {
	if inbox < 0 {
		inbox = 0
	}

	s := &Store{
		inbox:    make(chan func(c *collection), inbox),
		rows:     newCollection(),
		mutex:    &sync.RWMutex{},
		finished: make(chan struct{}),
	}
	s.status.Store(StatusIdle)

	return s
}

func (s *Store) Status() Status {
	return s.status.Load().(Status)
}

// Run processes messages until Stop is called and every accepted message has
// been answered. It must be called exactly once.
func (s *Store) Run() {
	defer close(s.finished)

	s.status.CompareAndSwap(StatusIdle, StatusOperating)

	for m := range s.inbox {
		m(s.rows)
	}

	s.status.Store(StatusClosed)
}

// Stop rejects new messages and lets Run drain the ones already queued.
func (s *Store) Stop() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.stopped {
		return ErrStopped
	}
	s.stopped = true
	s.status.Store(StatusClosing)
	close(s.inbox)

	return nil
}

// Wait blocks until Run has returned.
func (s *Store) Wait() {
	<-s.finished
}

type result[T any] struct {
	value T
	err   error
}

// submit hands f to the worker and waits for its answer. Once accepted, the
// operation always runs to completion even if ctx is cancelled meanwhile; the
// answer is then dropped into the buffered reply channel and discarded.
func submit[T any](ctx context.Context, s *Store, f func(c *collection) (T, error)) (T, error) {

	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	reply := make(chan result[T], 1)
	m := func(c *collection) {
		value, err := f(c)
		reply <- result[T]{value: value, err: err}
	}

	err := s.send(ctx, m)
	if err != nil {
		return zero, err
	}

	select {
	case r := <-reply:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (s *Store) send(ctx context.Context, m func(c *collection)) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.stopped {
		return ErrStopped
	}

	select {
	case s.inbox <- m:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Create appends a new todo and returns its id. Ids start at 1 and are never
// reused, even after deletions.
func (s *Store) Create(ctx context.Context, insert Insert) (uint64, error) {
	return submit(ctx, s, func(c *collection) (uint64, error) {
		return c.add(insert), nil
	})
}

// ReadAll returns a copy of every todo in creation order.
func (s *Store) ReadAll(ctx context.Context) ([]*Todo, error) {
	return s.Find(ctx, nil)
}

func (s *Store) ReadOne(ctx context.Context, id uint64) (*Todo, error) {
	return submit(ctx, s, func(c *collection) (*Todo, error) {
		row, found := c.get(id)
		if !found {
			return nil, ErrNotFound
		}
		return row.clone(), nil
	})
}

// Update replaces done and val of the todo with the given id, keeping its
// position in the collection.
func (s *Store) Update(ctx context.Context, id uint64, insert Insert) (*Todo, error) {
	return submit(ctx, s, func(c *collection) (*Todo, error) {
		row, found := c.replace(id, insert)
		if !found {
			return nil, ErrNotFound
		}
		return row.clone(), nil
	})
}

func (s *Store) Delete(ctx context.Context, id uint64) error {
	_, err := submit(ctx, s, func(c *collection) (struct{}, error) {
		if !c.remove(id) {
			return struct{}{}, ErrNotFound
		}
		return struct{}{}, nil
	})
	return err
}

// Find returns copies of the todos accepted by match, in creation order. A nil
// match accepts everything. The first error returned by match aborts the scan.
func (s *Store) Find(ctx context.Context, match func(row *Todo) (bool, error)) ([]*Todo, error) {
	return submit(ctx, s, func(c *collection) ([]*Todo, error) {
		result := make([]*Todo, 0, c.len())
		var matchErr error
		c.traverse(func(row *Todo) bool {
			if match != nil {
				ok, err := match(row.clone())
				if err != nil {
					matchErr = err
					return false
				}
				if !ok {
					return true
				}
			}
			result = append(result, row.clone())
			return true
		})
		if matchErr != nil {
			return nil, matchErr
		}
		return result, nil
	})
}

func (s *Store) Len(ctx context.Context) (int, error) {
	return submit(ctx, s, func(c *collection) (int, error) {
		return c.len(), nil
	})
}
