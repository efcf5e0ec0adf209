package main

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"

	"github.com/obscurehobo/hobosite/virtual"
	"github.com/obscurehobo/hobosite/web"
)

// handler builds the chain serving fsys with the settings in cfg.
func handler(fsys fs.FS, cfg *virtual.Config) http.Handler {
	h := web.HeaderHandler(
		web.ExpiresHandler(
			gziphandler.GzipHandler(
				web.ErrorHandler(
					http.FileServer(
						http.FS(fsys),
					),
					fsys,
				),
			),
			time.Duration(cfg.Expires),
			time.Duration(cfg.StaticExpires),
		),
		cfg.Headers)
	if cfg.Canonical {
		h = web.CanonicalHostHandler(h, cfg.Site.Host)
	}
	return h
}
