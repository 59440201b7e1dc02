package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-sitecontent/cmd/sitecontent/internal/bootstrap"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern    = flag.String("pattern", "", "Glob pattern applied when discovering markdown files")
		filePath   = flag.String("file", "", "Markdown file to preview (relative to the content root)")
		renderHTML = flag.Bool("render-html", true, "Render markdown body into HTML as part of the preview")
		showTOC    = flag.Bool("toc", true, "Print the extracted heading outline")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()
	md := module.Module.Markdown()

	doc, err := md.Load(ctx, *filePath)
	if err != nil {
		log.Fatalf("load markdown document: %v", err)
	}

	if *renderHTML {
		if _, err := md.RenderDocument(ctx, doc, interfaces.ParseOptions{}); err != nil {
			log.Fatalf("render markdown: %v", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nModified: %s\n\n", doc.FilePath, doc.LastModified.Format("2006-01-02 15:04:05"))

	if encoded, err := json.MarshalIndent(doc.FrontMatter, "", "  "); err == nil {
		fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", encoded)
	}

	if *showTOC {
		headings := md.Headings(doc)
		if len(headings) > 0 {
			fmt.Fprintln(os.Stdout, "Outline:")
			for _, heading := range headings {
				for i := 1; i < heading.Level; i++ {
					fmt.Fprint(os.Stdout, "  ")
				}
				fmt.Fprintf(os.Stdout, "- %s (#%s)\n", heading.Text, heading.ID)
			}
			fmt.Fprintln(os.Stdout)
		}
	}

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(doc.BodyHTML))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}
}
