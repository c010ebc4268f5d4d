// Package spider implements the Spider Facade: the thin driver that
// turns a compiled SiteConfig into an actual crawl, wiring the Command
// Planner to a Fetcher and a storage.Writer. It owns the work queue and
// the seen-URL set; everything about how to fetch or how a command gets
// persisted belongs to its collaborators.
package spider

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sync"

	"github.com/TheSnook/mediaspider/mserrors"
	"github.com/TheSnook/mediaspider/planner"
	"github.com/TheSnook/mediaspider/siteconfig"
	"github.com/TheSnook/mediaspider/storage"
	"github.com/TheSnook/mediaspider/urlinfo"
	"github.com/TheSnook/mediaspider/webresp"
)

// Fetcher is the fetch engine: given a URL it returns a parsed
// Response. Concurrency, retries, rate limiting and redirect policy all
// live on the other side of this interface.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*webresp.Response, error)
}

// Facade drives a single crawl of one compiled SiteConfig to
// completion: a queue, a seen set guarded by a mutex, and one entry
// point (Start) that runs until the queue is empty or a fatal error
// occurs.
type Facade struct {
	cfg     *siteconfig.SiteConfig
	fetcher Fetcher
	writer  storage.Writer

	muSeen sync.Mutex
	seen   map[string]struct{}
}

// New builds a Facade ready to crawl cfg.
func New(cfg *siteconfig.SiteConfig, fetcher Fetcher, writer storage.Writer) *Facade {
	return &Facade{
		cfg:     cfg,
		fetcher: fetcher,
		writer:  writer,
		seen:    map[string]struct{}{},
	}
}

// Start runs the crawl to completion: fetches cfg.StartURL, plans
// commands against the response, and keeps draining the resulting
// RequestURL commands until none remain. Download and save commands go
// straight to the writer. A ConfigError or AssertionFailedError from
// the Planner aborts the whole crawl; a RuntimeComponentError is logged
// and the offending branch is skipped, a best-effort treatment of
// per-resource failures.
func (f *Facade) Start(ctx context.Context) error {
	queue := []urlinfo.Command{urlinfo.RequestURL{Info: urlinfo.UrlInfo{URL: f.cfg.StartURL}}}

	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]

		next, err := f.handle(ctx, cmd)
		if err != nil {
			var rce *mserrors.RuntimeComponentError
			if errors.As(err, &rce) {
				log.Printf("spider: skipping branch after component error: %v", err)
				continue
			}
			return err
		}
		queue = append(queue, next...)
	}
	return nil
}

// handle dispatches a single command: a RequestURL recurses into the
// fetch-and-plan cycle (returning further commands to enqueue); a
// DownloadUrl or SaveFileContent is terminal and goes to the writer.
func (f *Facade) handle(ctx context.Context, cmd urlinfo.Command) ([]urlinfo.Command, error) {
	switch c := cmd.(type) {
	case urlinfo.RequestURL:
		return f.handleRequest(ctx, c)
	case urlinfo.DownloadURL:
		return nil, f.writer.Download(ctx, c.URL, c.FilePath)
	case urlinfo.SaveFileContent:
		return nil, f.writer.Save(c.FilePath, c.FileContent)
	default:
		return nil, fmt.Errorf("spider: unknown command type %T", cmd)
	}
}

func (f *Facade) handleRequest(ctx context.Context, c urlinfo.RequestURL) ([]urlinfo.Command, error) {
	if !f.markSeen(c.Info.URL) {
		return nil, nil
	}

	res, err := f.fetcher.Fetch(ctx, c.Info.URL)
	if err != nil {
		return nil, fmt.Errorf("spider: fetching %q: %w", c.Info.URL, err)
	}

	var parent *urlinfo.UrlInfo
	if len(c.Info.StructurePath) > 0 || c.Info.FilePath != "" || c.Info.URLMatch != nil || c.Info.LinkEl != nil {
		info := c.Info
		parent = &info
	}

	return planner.Plan(f.cfg.Root, res, parent)
}

// markSeen reports whether rawURL has not been requested before,
// recording it if so. Deduplication is per-crawl only; nothing
// persists across runs.
func (f *Facade) markSeen(rawURL string) bool {
	u, err := url.Parse(rawURL)
	key := rawURL
	if err == nil {
		key = u.String()
	}

	f.muSeen.Lock()
	defer f.muSeen.Unlock()
	if _, ok := f.seen[key]; ok {
		return false
	}
	f.seen[key] = struct{}{}
	return true
}
