package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/docskill"
	"github.com/fwojciec/docskill/crawl"
)

// Run executes the crawl, naming, generation and assembly steps.
//
// Only an invalid seed URL or a failed write aborts the run. Every other
// problem is reported in the summary and the bundle is written without
// the affected part.
func (c *SkillCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx

	fmt.Fprintf(deps.Stdout, "Crawling %s\n", c.URL)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressSaved, crawl.ProgressDuplicate:
			fmt.Fprintf(deps.Stdout, "\r[%d done, %d queued] %-40s", event.Processed, event.Remaining, crawl.TruncateURL(event.URL, 40))
		}
	}

	result, err := deps.Crawler.Crawl(ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docskill.ErrorMessage(err))
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	interrupted := ctx.Err() != nil

	id, err := deps.Names.Resolve(ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docskill.ErrorMessage(err))
		return err
	}

	var doc *docskill.SkillDocument
	var docErr error
	if !interrupted {
		doc, docErr = deps.Generator.Generate(ctx, id, c.URL, result.Pages)
	}

	// A cancelled crawl still writes what it collected.
	dir, err := deps.Assembler.Assemble(context.WithoutCancel(ctx), id.Name, result.Pages, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docskill.ErrorMessage(err))
		return fmt.Errorf("assemble: %w", err)
	}

	c.printSummary(deps, result, id, doc, docErr, dir, interrupted)
	return nil
}

func (c *SkillCmd) printSummary(deps *Dependencies, result *crawl.Result, id *docskill.SkillIdentity, doc *docskill.SkillDocument, docErr error, dir string, interrupted bool) {
	w := deps.Stdout

	fmt.Fprintf(w, "Saved %d pages (%s)\n", len(result.Pages), crawl.FormatBytes(result.Bytes))
	if result.Duplicates > 0 {
		fmt.Fprintf(w, "  %d duplicate pages skipped\n", result.Duplicates)
	}
	if result.Rejected > 0 {
		fmt.Fprintf(w, "  %d out-of-scope links ignored\n", result.Rejected)
	}
	if result.Failed > 0 {
		fmt.Fprintf(w, "  %d pages failed:\n", result.Failed)
		for _, f := range result.Failures {
			fmt.Fprintf(w, "    %s (%s): %s\n", f.URL, f.Stage, failureReason(f.Err))
		}
	}
	if result.Remaining > 0 {
		fmt.Fprintf(w, "  stopped with %d URLs still queued\n", result.Remaining)
	}
	if interrupted {
		fmt.Fprintln(w, "  crawl interrupted; bundle contains the pages collected so far")
	}

	switch {
	case id.CleanupErr != nil:
		fmt.Fprintf(w, "Skill name: %s (name cleanup skipped: %s)\n", id.Name, docskill.ErrorMessage(id.CleanupErr))
	case id.Token != id.RawToken:
		fmt.Fprintf(w, "Skill name: %s (cleaned from %q)\n", id.Name, id.RawToken)
	default:
		fmt.Fprintf(w, "Skill name: %s\n", id.Name)
	}

	switch {
	case doc != nil:
		fmt.Fprintf(w, "Generated %s\n", docskill.SkillFilename)
	case interrupted:
		fmt.Fprintf(w, "%s not generated: crawl interrupted\n", docskill.SkillFilename)
	case docErr != nil:
		fmt.Fprintf(w, "%s not generated: %s\n", docskill.SkillFilename, docskill.ErrorMessage(docErr))
	default:
		fmt.Fprintf(w, "%s not generated\n", docskill.SkillFilename)
	}

	fmt.Fprintf(w, "Wrote %s\n", dir)
}

// failureReason shortens fetch and conversion errors for the summary.
func failureReason(err error) string {
	if docskill.ErrorCode(err) == docskill.EINTERNAL {
		return err.Error()
	}
	return docskill.ErrorMessage(err)
}
