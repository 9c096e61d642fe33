package main

import (
	"fmt"
	"os"

	"github.com/fulldump/studentdb/cli"
)

var VERSION = "dev"

func main() {
	err := cli.NewRootCmd(VERSION).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
