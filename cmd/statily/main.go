package main

import (
	"log"
	"os"
)

var Version string

func main() {
	if err := RunApp(Version, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
