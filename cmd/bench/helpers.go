package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/fulldump/todos/bootstrap"
	"github.com/fulldump/todos/configuration"
)

type JSON = map[string]any

func Parallel(workers int, f func(worker int)) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f(i)
		}(i)
	}
	wg.Wait()
}

func CreateServer(c *Config) {

	conf := configuration.Default()
	conf.ShowBanner = false
	conf.EnableCompression = false
	c.Base = "http://" + conf.HttpAddr

	start, stop := bootstrap.Bootstrap(conf)
	go start()
	cleanups = append(cleanups, stop)

	time.Sleep(100 * time.Millisecond)
}

func NewClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
		Timeout: 10 * time.Second,
	}
}

func Create(client *http.Client, base string, item JSON) (uint64, error) {

	payload, _ := json.Marshal(item)
	resp, err := client.Post(base+"/todos", "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("bad status: %s", resp.Status)
	}

	id := uint64(0)
	err = json.NewDecoder(resp.Body).Decode(&id)
	return id, err
}

func Count(client *http.Client, base string) (int, error) {

	resp, err := client.Post(base+"/todos:count", "application/json", nil)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	result := struct {
		Total int `json:"total"`
	}{}
	err = json.NewDecoder(resp.Body).Decode(&result)
	return result.Total, err
}

func report(action string, n int64, took time.Duration) {
	fmt.Println(action+":", n)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f ops/sec\n", float64(n)/took.Seconds())
}
