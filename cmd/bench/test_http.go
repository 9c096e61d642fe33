package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

type JSON = map[string]any

func TestHttp(c Config) {

	if c.Base == "" {
		dir, cleanup := TempDir()
		cleanups = append(cleanups, cleanup)
		GenerateFile(dir, c.N)

		start, stop := CreateServer(&c, dir)
		defer stop()
		go start()
		time.Sleep(500 * time.Millisecond)
	}

	payload, _ := json.Marshal(JSON{"field": "math", "from": c.From, "to": c.To})

	client := &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     c.Workers,
			MaxIdleConnsPerHost: c.Workers,
		},
	}

	requests := int64(0)
	failures := int64(0)
	deadline := time.Now().Add(time.Duration(c.Seconds) * time.Second)

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for time.Now().Before(deadline) {
			resp, err := client.Post(c.Base+"/v1/students:find", "application/json", bytes.NewReader(payload))
			if err != nil {
				atomic.AddInt64(&failures, 1)
				continue
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				atomic.AddInt64(&failures, 1)
				continue
			}
			atomic.AddInt64(&requests, 1)
		}
	})
	took := time.Since(t0)

	fmt.Println("http:", requests, "requests,", failures, "failures in", took, "->", float64(requests)/took.Seconds(), "req/s")
}
