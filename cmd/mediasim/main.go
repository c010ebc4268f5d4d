/*
 * Reports, for a single URL, every structure path in a site config
 * whose chain of url matchers would accept it and the file path that
 * chain would synthesize. A non-interactive stand-in for a debug REPL.
 */

package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/TheSnook/mediaspider/simulate"
	"github.com/TheSnook/mediaspider/siteconfig"
)

var siteFile = flag.String("site", "", "YAML file defining the site configuration to simulate against.")
var testURL = flag.String("url", "", "URL to explain matches for.")

func main() {
	log.SetOutput(os.Stderr)
	flag.Parse()

	if *siteFile == "" || *testURL == "" {
		log.Fatal("Flags --site and --url are both required")
	}

	data, err := os.ReadFile(*siteFile)
	if err != nil {
		log.Fatalf("Could not read site config %q: %v", *siteFile, err)
	}

	def, err := siteconfig.LoadDefinition(data)
	if err != nil {
		log.Fatalf("Could not decode site config %q: %v", *siteFile, err)
	}

	cfg, err := siteconfig.New(def)
	if err != nil {
		log.Fatalf("Could not compile site config %q: %v", *siteFile, err)
	}

	reports, err := simulate.Explain(cfg.Root, *testURL)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		log.Fatalf("Could not encode report: %v", err)
	}
}
