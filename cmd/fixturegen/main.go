package main

import (
	"log"

	"github.com/vbp1/fixturegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
