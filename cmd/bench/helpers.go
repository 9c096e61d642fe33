package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/fulldump/studentdb/bootstrap"
	"github.com/fulldump/studentdb/configuration"
	"github.com/fulldump/studentdb/record"
)

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func TempDir() (string, func()) {
	dir, err := os.MkdirTemp("", "studentdb_bench_*")
	if err != nil {
		panic("Could not create temp directory: " + err.Error())
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

// GenerateFile writes n random students into dir and returns the file name.
func GenerateFile(dir string, n int64) string {
	filename := filepath.Join(dir, "stu.csv")

	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1024*1024)
	defer w.Flush()

	fmt.Fprintln(w, record.Header)
	sexes := []string{"F", "M"}
	for i := int64(1); i <= n; i++ {
		fmt.Fprintf(w, "%d,Student%d,%s,%d,%.1f,%.1f,%.1f\n",
			i, i, sexes[rand.Intn(2)], 17+rand.Intn(10),
			rand.Float64()*100, rand.Float64()*100, rand.Float64()*100)
	}

	return filename
}

func CreateServer(c *Config, dir string) (start, stop func()) {
	conf := configuration.Default()
	conf.Dir = dir
	conf.ShowBanner = false
	c.Base = "http://" + conf.HttpAddr

	start, stop, err := bootstrap.Bootstrap(conf)
	if err != nil {
		panic(err)
	}
	return start, stop
}
