package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | CREATE | REMOVE"`
	Base    string `usage:"base URL, empty starts an embedded server"`
	N       int64  `usage:"number of todos"`
	Workers int    `usage:"number of workers"`
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
		N:       100_000,
		Workers: 16,
	}
	goconfig.Read(&c)

	if c.Base == "" {
		CreateServer(&c)
	}

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestCreate(c)
		TestRemove(c)
	case "CREATE":
		TestCreate(c)
	case "REMOVE":
		TestRemove(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
