package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string  `usage:"name of the test: ALL | LOAD | FIND | HTTP"`
	Base    string  `usage:"base URL, empty to start a local server"`
	N       int64   `usage:"number of students"`
	Workers int     `usage:"number of HTTP workers"`
	From    float64 `usage:"lower math bound for FIND and HTTP"`
	To      float64 `usage:"upper math bound for FIND and HTTP"`
	Seconds int     `usage:"duration of the HTTP test"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Test:    "all",
		Base:    "",
		N:       1_000_000,
		Workers: 16,
		From:    60,
		To:      100,
		Seconds: 5,
	}
	goconfig.Read(&c)

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestLoad(c)
		TestFind(c)
		TestHttp(c)
	case "LOAD":
		TestLoad(c)
	case "FIND":
		TestFind(c)
	case "HTTP":
		TestHttp(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
