package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// TestCreate sends N creates from concurrent workers and checks that every
// assigned id is unique.
func TestCreate(c Config) {

	client := NewClient()

	before, err := Count(client, c.Base)
	if err != nil {
		fmt.Println("ERROR: count:", err.Error())
		os.Exit(3)
	}

	items := c.N
	ids := &sync.Map{}
	duplicated := int64(0)

	t0 := time.Now()
	Parallel(c.Workers, func(worker int) {
		for {
			n := atomic.AddInt64(&items, -1)
			if n < 0 {
				return
			}
			id, err := Create(client, c.Base, JSON{"done": false, "val": fmt.Sprintf("todo %d", n)})
			if err != nil {
				fmt.Println("ERROR: create:", err.Error())
				os.Exit(4)
			}
			if _, loaded := ids.LoadOrStore(id, worker); loaded {
				atomic.AddInt64(&duplicated, 1)
			}
		}
	})
	report("created", c.N, time.Since(t0))

	after, err := Count(client, c.Base)
	if err != nil {
		fmt.Println("ERROR: count:", err.Error())
		os.Exit(3)
	}

	fmt.Println("duplicated ids:", duplicated)
	fmt.Println("total:", after)
	if duplicated > 0 || int64(after-before) != c.N {
		fmt.Println("ERROR: inconsistent store")
		os.Exit(5)
	}
}
