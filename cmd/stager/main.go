package main

import (
	"log"

	"github.com/stagerhq/stager/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
