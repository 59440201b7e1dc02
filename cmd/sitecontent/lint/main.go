package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-sitecontent/cmd/sitecontent/internal/bootstrap"
	contentcmd "github.com/goliatone/go-sitecontent/internal/commands/content"
	"github.com/goliatone/go-sitecontent/internal/validation"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern    = flag.String("pattern", "", "Glob pattern applied when discovering markdown files")
		directory  = flag.String("dir", "", "Subtree of the content root to lint (defaults to the whole tree)")
		quiet      = flag.Bool("quiet", false, "Only print files with findings")
	)

	flag.Parse()

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	checker, err := validation.New()
	if err != nil {
		log.Fatalf("compile front matter schema: %v", err)
	}

	flagged := 0
	sink := func(finding contentcmd.Finding) {
		switch {
		case finding.Err != nil:
			flagged++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", finding.Path, finding.Err)
		case len(finding.Issues) > 0:
			flagged++
			fmt.Fprintf(os.Stderr, "WARN %s\n", finding.Path)
			for _, issue := range finding.Issues {
				fmt.Fprintf(os.Stderr, "     %s: %s\n", issue.Location, issue.Message)
			}
		default:
			if !*quiet {
				fmt.Fprintf(os.Stdout, "OK   %s\n", finding.Path)
			}
		}
	}

	handler := contentcmd.NewLintDirectoryHandler(module.Module.Markdown(), checker, module.Logger, sink)

	err = handler.Execute(context.Background(), contentcmd.LintDirectoryCommand{
		Directory: *directory,
		Pattern:   *pattern,
	})
	if err != nil {
		log.Fatalf("lint content: %v", err)
	}

	if flagged > 0 {
		fmt.Fprintf(os.Stderr, "%d file(s) with findings\n", flagged)
		os.Exit(1)
	}
}
