package main

import (
	"flag"
	"log"

	"github.com/corrisk/riskline/cmd"
)

func main() {
	shouldRunEnrichment := flag.Bool("enrich", true, "Run the company enrichment batch")
	flag.Parse()

	if *shouldRunEnrichment {
		if err := cmd.RunEnrichment(); err != nil {
			log.Fatal(err)
		}
	}
}
