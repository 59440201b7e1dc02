package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-sitecontent/cmd/sitecontent/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir  = flag.String("content-dir", "content", "Path to the markdown content root")
		collections = flag.String("collections", "tutorials,blog", "Comma separated list of collections to expose")
		pattern     = flag.String("pattern", "", "Glob pattern applied when discovering markdown files")
		addr        = flag.String("addr", ":8080", "Address the query API listens on")
		basePath    = flag.String("base-path", "/api", "Base path the query API is mounted under")
		cache       = flag.Bool("cache", false, "Cache collection listings between requests")
		watch       = flag.Bool("watch", false, "Invalidate cached listings when content files change (implies --cache)")
		logLevel    = flag.String("log-level", "info", "Minimum log level")
	)

	flag.Parse()

	if *watch {
		*cache = true
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:  *contentDir,
		Collections: bootstrap.SplitCollections(*collections),
		Pattern:     *pattern,
		Addr:        *addr,
		BasePath:    *basePath,
		Serve:       true,
		Cache:       *cache,
		Watch:       *watch,
		LogLevel:    *logLevel,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *watch {
		go func() {
			if err := module.Module.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				module.Logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           module.Module.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			module.Logger.Error("server shutdown", "error", err)
		}
	}()

	module.Logger.Info("serving content API", "addr", *addr, "content_dir", *contentDir)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}
