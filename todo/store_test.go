package todo

import (
	"context"
	"errors"
	"sync"
	"testing"

	. "github.com/fulldump/biff"
)

func startStore(t *testing.T) *Store {
	s := NewStore(16)
	go s.Run()
	t.Cleanup(func() {
		s.Stop()
		s.Wait()
	})
	return s
}

func TestStore(t *testing.T) {

	Alternative("Store", func(a *A) {

		ctx := context.Background()
		s := startStore(t)

		a.Alternative("Empty", func(a *A) {
			all, err := s.ReadAll(ctx)
			AssertNil(err)
			AssertEqual(len(all), 0)
			AssertNotNil(all)
		})

		a.Alternative("Create first", func(a *A) {
			id, err := s.Create(ctx, Insert{Done: false, Val: "a"})
			AssertNil(err)
			AssertEqual(id, uint64(1))

			a.Alternative("Read it", func(a *A) {
				row, err := s.ReadOne(ctx, id)
				AssertNil(err)
				AssertEqual(*row, Todo{ID: 1, Done: false, Val: "a"})
			})

			a.Alternative("Read missing", func(a *A) {
				row, err := s.ReadOne(ctx, 42)
				AssertEqual(err, ErrNotFound)
				AssertNil(row)
			})

			a.Alternative("Update it", func(a *A) {
				row, err := s.Update(ctx, id, Insert{Done: true, Val: "a2"})
				AssertNil(err)
				AssertEqual(*row, Todo{ID: 1, Done: true, Val: "a2"})

				stored, _ := s.ReadOne(ctx, id)
				AssertEqual(*stored, Todo{ID: 1, Done: true, Val: "a2"})
			})

			a.Alternative("Update missing", func(a *A) {
				row, err := s.Update(ctx, 7, Insert{Done: true})
				AssertEqual(err, ErrNotFound)
				AssertNil(row)

				n, _ := s.Len(ctx)
				AssertEqual(n, 1)
			})

			a.Alternative("Delete it twice", func(a *A) {
				AssertNil(s.Delete(ctx, id))
				AssertEqual(s.Delete(ctx, id), ErrNotFound)

				_, err := s.ReadOne(ctx, id)
				AssertEqual(err, ErrNotFound)
			})

			a.Alternative("Delete then create does not reuse ids", func(a *A) {
				AssertNil(s.Delete(ctx, id))
				next, err := s.Create(ctx, Insert{Val: "b"})
				AssertNil(err)
				AssertEqual(next, uint64(2))
			})

			a.Alternative("Returned values are copies", func(a *A) {
				all, _ := s.ReadAll(ctx)
				all[0].Val = "changed"

				row, _ := s.ReadOne(ctx, id)
				row.Done = true

				stored, _ := s.ReadOne(ctx, id)
				AssertEqual(*stored, Todo{ID: 1, Done: false, Val: "a"})
			})
		})

	})
}

func TestStore_Scenario(t *testing.T) {

	ctx := context.Background()
	s := startStore(t)

	id1, _ := s.Create(ctx, Insert{Done: false, Val: "a"})
	AssertEqual(id1, uint64(1))

	id2, _ := s.Create(ctx, Insert{Done: false, Val: "b"})
	AssertEqual(id2, uint64(2))

	updated, err := s.Update(ctx, 1, Insert{Done: true, Val: "a"})
	AssertNil(err)
	AssertEqual(*updated, Todo{ID: 1, Done: true, Val: "a"})

	AssertNil(s.Delete(ctx, 2))

	all, err := s.ReadAll(ctx)
	AssertNil(err)
	AssertEqualJson(all, []*Todo{{ID: 1, Done: true, Val: "a"}})

	_, err = s.ReadOne(ctx, 2)
	AssertEqual(err, ErrNotFound)
}

func TestStore_OrderSurvivesDeleteAndUpdate(t *testing.T) {

	ctx := context.Background()
	s := startStore(t)

	for _, val := range []string{"a", "b", "c", "d"} {
		s.Create(ctx, Insert{Val: val})
	}

	AssertNil(s.Delete(ctx, 2))
	_, err := s.Update(ctx, 1, Insert{Done: true, Val: "A"})
	AssertNil(err)

	all, _ := s.ReadAll(ctx)
	vals := []string{}
	for _, row := range all {
		vals = append(vals, row.Val)
	}
	AssertEqual(vals, []string{"A", "c", "d"})
}

func TestStore_Find(t *testing.T) {

	ctx := context.Background()
	s := startStore(t)

	s.Create(ctx, Insert{Done: true, Val: "a"})
	s.Create(ctx, Insert{Done: false, Val: "b"})
	s.Create(ctx, Insert{Done: true, Val: "c"})

	done, err := s.Find(ctx, func(row *Todo) (bool, error) {
		return row.Done, nil
	})
	AssertNil(err)
	AssertEqual(len(done), 2)
	AssertEqual(done[0].ID, uint64(1))
	AssertEqual(done[1].ID, uint64(3))

	boom := errors.New("boom")
	rows, err := s.Find(ctx, func(row *Todo) (bool, error) {
		return false, boom
	})
	AssertEqual(err, boom)
	AssertNil(rows)
}

func TestStore_ConcurrentCreate(t *testing.T) {

	ctx := context.Background()
	s := startStore(t)

	n := 100
	ids := make(chan uint64, n)

	wg := &sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.Create(ctx, Insert{Val: "x"})
			if err != nil {
				t.Error(err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint64]bool{}
	for id := range ids {
		AssertFalse(seen[id])
		seen[id] = true
	}
	AssertEqual(len(seen), n)

	total, _ := s.Len(ctx)
	AssertEqual(total, n)
}

func TestStore_SequentialVisibility(t *testing.T) {

	ctx := context.Background()
	s := startStore(t)

	// Each caller observes the effect of every operation that returned before it was submitted.
	wg := &sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.Create(ctx, Insert{Val: "v"})
			if err != nil {
				t.Error(err)
				return
			}
			row, err := s.ReadOne(ctx, id)
			if err != nil || row.ID != id {
				t.Errorf("created todo %d not visible: %v", id, err)
			}
		}()
	}
	wg.Wait()
}

func TestStore_CancelledBeforeSubmit(t *testing.T) {

	s := startStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Create(ctx, Insert{Val: "never"})
	AssertEqual(err, context.Canceled)

	total, _ := s.Len(context.Background())
	AssertEqual(total, 0)
}

func TestStore_Stop(t *testing.T) {

	ctx := context.Background()

	s := NewStore(4)
	AssertEqual(s.Status(), StatusIdle)

	// Messages queued before Run starts are still answered after Stop.
	results := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func() {
			_, err := s.Create(ctx, Insert{Val: "queued"})
			results <- err
		}()
	}

	go s.Run()

	for i := 0; i < 3; i++ {
		AssertNil(<-results)
	}
	AssertEqual(s.Status(), StatusOperating)

	AssertNil(s.Stop())
	AssertEqual(s.Stop(), ErrStopped)
	s.Wait()
	AssertEqual(s.Status(), StatusClosed)

	_, err := s.Create(ctx, Insert{Val: "late"})
	AssertEqual(err, ErrStopped)

	_, err = s.ReadAll(ctx)
	AssertEqual(err, ErrStopped)
}
