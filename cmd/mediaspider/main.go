/*
 * Runs a site configuration end to end: loads it, compiles the
 * structure tree, and drives a sequential crawl against a chosen
 * storage backend.
 */

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/TheSnook/mediaspider/login"
	"github.com/TheSnook/mediaspider/siteconfig"
	"github.com/TheSnook/mediaspider/spider"
	"github.com/TheSnook/mediaspider/storage"
)

var siteFile = flag.String("site", "", "YAML file defining the site configuration to crawl.")
var out = flag.String("out", "", `Scheme and path of the storage target, e.g. "fs:/var/spider/out", "bbolt:/var/spider/db:pages", "s3:us-east-1:my-bucket".`)

func main() {
	log.SetOutput(os.Stderr)
	flag.Parse()

	if *siteFile == "" {
		log.Fatal("Flag --site is required")
	}
	if *out == "" {
		log.Fatal("Flag --out is required")
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

	writer, err := storage.New(*out)
	if err != nil {
		log.Fatalf("Could not open storage target %q: %v", *out, err)
	}
	defer writer.Close()

	ctx := context.Background()

	if cfg.NeedsLogin {
		if err := doLogin(ctx, cfg.Login); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
	}

	facade := spider.New(cfg, spider.NewHTTPFetcher(), writer)
	if err := facade.Start(ctx); err != nil {
		log.Fatalf("Crawl failed: %v", err)
	}
}

// doLogin performs the site's login pre-step: an opaque form submission
// outside the Command Planner, run once before the crawl starts.
func doLogin(ctx context.Context, cfg *siteconfig.LoginConfig) error {
	req, err := login.FormSubmit(cfg.URL, cfg.FormData)
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}
