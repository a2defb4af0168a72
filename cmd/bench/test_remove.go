package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// TestRemove lists every todo and deletes them from concurrent workers, each
// worker owning the ids that fall in its modulo.
func TestRemove(c Config) {

	client := NewClient()

	resp, err := client.Get(c.Base + "/todos")
	if err != nil {
		fmt.Println("ERROR: list:", err.Error())
		os.Exit(3)
	}
	todos := []struct {
		ID uint64 `json:"id"`
	}{}
	err = json.NewDecoder(resp.Body).Decode(&todos)
	resp.Body.Close()
	if err != nil {
		fmt.Println("ERROR: decode list:", err.Error())
		os.Exit(3)
	}

	t0 := time.Now()
	Parallel(c.Workers, func(worker int) {
		for _, t := range todos {
			if t.ID%uint64(c.Workers) != uint64(worker) {
				continue
			}
			url := fmt.Sprintf("%s/todos/%d", c.Base, t.ID)
			req, err := http.NewRequest(http.MethodDelete, url, nil)
			if err != nil {
				fmt.Println("ERROR: new request:", err.Error())
				return
			}
			resp, err := client.Do(req)
			if err != nil {
				fmt.Println("ERROR: do request:", err.Error())
				return
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				fmt.Println("ERROR: bad status:", resp.Status)
			}
		}
	})
	report("removed", int64(len(todos)), time.Since(t0))

	total, err := Count(client, c.Base)
	if err != nil {
		fmt.Println("ERROR: count:", err.Error())
		os.Exit(3)
	}
	fmt.Println("remaining:", total)
}
