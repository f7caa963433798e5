// Package crawl discovers the pages of a documentation site by following
// links breadth-first from a seed URL and converts each page to Markdown.
package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/docskill"
)

// Frontier sizing for the Bloom pre-check. Sites larger than this still
// crawl correctly; the filter just answers "maybe" more often.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Failure stages.
const (
	StageFetch   = "fetch"
	StageConvert = "convert"
)

// Crawler walks a documentation site starting from a seed URL.
type Crawler struct {
	Fetcher   docskill.Fetcher
	Extractor docskill.Extractor
	Converter docskill.Converter
	Links     docskill.LinkExtractor

	// RateLimiter is optional. When set, every fetch waits on the URL's host.
	RateLimiter docskill.DomainLimiter

	// AllDomains disables the same-host restriction.
	AllDomains bool

	// MaxPages stops the crawl once this many pages are saved. Zero means
	// no limit.
	MaxPages int

	// SkipDuplicates drops pages whose Markdown matches an earlier page.
	SkipDuplicates bool

	// NewFrontier returns an empty queue for each crawl. Nil uses a
	// Bloom-backed Frontier.
	NewFrontier func() docskill.URLFrontier
}

// Result holds the outcome of a crawl.
type Result struct {
	// Pages in discovery order.
	Pages []*docskill.Page

	Fetched    int
	Failed     int
	Rejected   int // distinct out-of-scope URLs
	Duplicates int
	Remaining  int // URLs still queued when the crawl stopped
	Bytes      int

	Failures []Failure
}

// Failure records a page that was skipped.
type Failure struct {
	URL   string
	Stage string
	Err   error
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Processed int
	Remaining int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressSaved ProgressType = iota
	ProgressDuplicate
	ProgressFailed
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl fetches every in-scope page reachable from seedURL.
//
// Per-page failures are recorded in the result and never abort the crawl.
// The only error is an invalid seed. When ctx is cancelled the pages
// collected so far are returned.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, progress ProgressFunc) (*Result, error) {
	seed, err := ParseSeed(seedURL)
	if err != nil {
		return nil, err
	}

	s := &crawlState{
		Crawler:   c,
		scopeHost: seed.Host,
		frontier:  c.newFrontier(),
		filenames: make(map[string]bool),
		hashes:    make(map[string]bool),
		rejected:  make(map[string]bool),
		progress:  progress,
		result:    &Result{},
	}
	s.frontier.Push(seed.String())

	for {
		if c.MaxPages > 0 && len(s.result.Pages) >= c.MaxPages {
			break
		}
		if ctx.Err() != nil {
			break
		}
		rawURL, ok := s.frontier.Pop()
		if !ok {
			break
		}
		if !s.visit(ctx, rawURL) {
			break
		}
	}

	s.result.Remaining = s.frontier.Len()
	return s.result, nil
}

func (c *Crawler) newFrontier() docskill.URLFrontier {
	if c.NewFrontier != nil {
		return c.NewFrontier()
	}
	return NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
}

type crawlState struct {
	*Crawler

	scopeHost string
	frontier  docskill.URLFrontier
	filenames map[string]bool
	hashes    map[string]bool
	rejected  map[string]bool
	processed int
	progress  ProgressFunc
	result    *Result
}

// visit processes one dequeued URL. It returns false when ctx was
// cancelled mid-page and the crawl should stop.
func (s *crawlState) visit(ctx context.Context, rawURL string) bool {
	// Every queued URL was produced by Normalize, so it parses.
	u, err := url.Parse(rawURL)
	if err != nil {
		s.fail(rawURL, StageFetch, err)
		return true
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return false
		}
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		s.fail(rawURL, StageFetch, err)
		return true
	}
	s.result.Fetched++

	// Links are followed even when the page itself cannot be converted.
	s.enqueueLinks(u, html)

	page, err := s.convert(u, html)
	if err != nil {
		s.fail(rawURL, StageConvert, err)
		return true
	}

	if s.SkipDuplicates {
		if s.hashes[page.Hash] {
			s.result.Duplicates++
			s.emit(ProgressDuplicate, rawURL, nil)
			return true
		}
		s.hashes[page.Hash] = true
	}

	page.Filename = DeriveFilename(u.Path, s.filenames)
	s.filenames[page.Filename] = true
	s.result.Pages = append(s.result.Pages, page)
	s.result.Bytes += len(page.Content)
	s.emit(ProgressSaved, rawURL, nil)
	return true
}

func (s *crawlState) enqueueLinks(pageURL *url.URL, html string) {
	hrefs, baseHref, err := s.Links.ExtractLinks(html)
	if err != nil {
		return
	}

	base := pageURL
	if baseHref != "" {
		if b, ok := Normalize(baseHref, pageURL); ok {
			base = b
		}
	}

	for _, href := range hrefs {
		link, ok := Normalize(href, base)
		if !ok {
			continue
		}
		if !Accept(link, s.scopeHost, s.AllDomains) {
			key := link.String()
			if !s.rejected[key] {
				s.rejected[key] = true
				s.result.Rejected++
			}
			continue
		}
		s.frontier.Push(link.String())
	}
}

func (s *crawlState) convert(u *url.URL, html string) (*docskill.Page, error) {
	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}
	return &docskill.Page{
		URL:     u.String(),
		Title:   extracted.Title,
		Content: markdown,
		Hash:    ComputeHash(markdown),
	}, nil
}

func (s *crawlState) fail(rawURL, stage string, err error) {
	s.result.Failed++
	s.result.Failures = append(s.result.Failures, Failure{URL: rawURL, Stage: stage, Err: err})
	s.emit(ProgressFailed, rawURL, err)
}

func (s *crawlState) emit(typ ProgressType, rawURL string, err error) {
	s.processed++
	if s.progress == nil {
		return
	}
	s.progress(ProgressEvent{
		Type:      typ,
		Processed: s.processed,
		Remaining: s.frontier.Len(),
		URL:       rawURL,
		Error:     err,
	})
}
