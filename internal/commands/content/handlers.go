package contentcmd

import (
	"context"

	"github.com/goliatone/go-sitecontent/internal/commands"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	sitevalidation "github.com/goliatone/go-sitecontent/internal/validation"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const lintOperation = "content.lint_directory"

var _ command.Commander[LintDirectoryCommand] = (*LintDirectoryHandler)(nil)

// Finding reports one file's lint outcome. Err is set when the file could
// not be parsed at all; Issues carry schema violations for parsed files.
type Finding struct {
	Path   string
	Err    error
	Issues []sitevalidation.Issue
}

// Clean reports whether the file passed every check.
func (f Finding) Clean() bool {
	return f.Err == nil && len(f.Issues) == 0
}

// LintDirectoryHandler walks content documents and reports front matter
// findings through the configured sink.
type LintDirectoryHandler struct {
	inner *commands.Handler[LintDirectoryCommand]
}

// NewLintDirectoryHandler binds the handler to a markdown service and
// validator. Each scanned file produces one call to sink.
func NewLintDirectoryHandler(service *markdown.Service, checker *sitevalidation.Validator, logger interfaces.Logger, sink func(Finding), opts ...commands.HandlerOption[LintDirectoryCommand]) *LintDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	if sink == nil {
		sink = func(Finding) {}
	}

	exec := func(ctx context.Context, msg LintDirectoryCommand) error {
		dir := msg.Directory
		if dir == "" {
			dir = "."
		}

		results, err := service.Loader().LoadDirectory(ctx, dir, markdown.LoadParams{
			Pattern: msg.Pattern,
		})
		if err != nil {
			return err
		}

		flagged := 0
		for _, result := range results {
			finding := Finding{Path: result.Path}
			if result.Err != nil {
				finding.Err = result.Err
			} else if result.Document != nil {
				if err := checker.Validate(frontMatterMap(result.Document.FrontMatter)); err != nil {
					finding.Issues = sitevalidation.IssuesOf(err)
				}
			}
			if !finding.Clean() {
				flagged++
			}
			sink(finding)
		}

		logging.WithFields(baseLogger, map[string]any{
			"scanned_count": len(results),
			"flagged_count": flagged,
			"directory":     dir,
		}).Info("content.command.lint_directory.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[LintDirectoryCommand]{
		commands.WithLogger[LintDirectoryCommand](baseLogger),
		commands.WithOperation[LintDirectoryCommand](lintOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LintDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *LintDirectoryHandler) Execute(ctx context.Context, msg LintDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// frontMatterMap reassembles the raw metadata shape the schema expects from
// the typed envelope, skipping zero-valued fields so required checks fire.
func frontMatterMap(fm interfaces.FrontMatter) map[string]any {
	meta := map[string]any{}
	for key, value := range fm.Custom {
		meta[key] = value
	}
	if fm.Title != "" {
		meta["title"] = fm.Title
	}
	if fm.Author != "" {
		meta["author"] = fm.Author
	}
	if fm.Description != "" {
		meta["description"] = fm.Description
	}
	if fm.Date != "" {
		meta["date"] = fm.Date
	}
	if len(fm.Keywords) > 0 {
		meta["keywords"] = []string(fm.Keywords)
	}
	if fm.Difficulty != "" {
		meta["difficulty"] = fm.Difficulty
	}
	if fm.Label != "" {
		meta["label"] = fm.Label
	}
	if fm.EstimatedTime != "" {
		meta["estimatedTime"] = fm.EstimatedTime
	}
	if fm.Image != "" {
		meta["image"] = fm.Image
	}
	return meta
}
