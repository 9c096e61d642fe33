package main

import (
	"fmt"
	"time"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/store"
)

func TestLoad(c Config) {
	dir, cleanup := TempDir()
	cleanups = append(cleanups, cleanup)

	filename := GenerateFile(dir, c.N)

	t0 := time.Now()
	records, err := store.LoadAll(filename)
	if err != nil {
		panic(err)
	}
	took := time.Since(t0)

	fmt.Println("load:", len(records), "students in", took, "->", float64(len(records))/took.Seconds(), "students/s")
}

func TestFind(c Config) {
	dir, cleanup := TempDir()
	cleanups = append(cleanups, cleanup)

	filename := GenerateFile(dir, c.N)
	records, err := store.LoadAll(filename)
	if err != nil {
		panic(err)
	}

	t0 := time.Now()
	found := query.FilterByRange(records, record.FieldMath, c.From, c.To)
	took := time.Since(t0)

	fmt.Println("find:", len(found), "of", len(records), "students in", took)
}
