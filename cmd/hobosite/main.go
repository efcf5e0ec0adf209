// Command hobosite serves the site in the folder given by -root, or writes
// the rendered site to a folder when -export is set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"

	"github.com/obscurehobo/hobosite/export"
	"github.com/obscurehobo/hobosite/virtual"
)

func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of web site.")
		fExport            = flag.String("export", "", "Write the rendered site to this folder and exit.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the file cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long cached files are kept; 0 keeps them forever.")
	)
	flag.Parse()
	flagenv.Prefix = "HOBOSITE_"
	flagenv.Parse()

	// Create the virtual file system
	fileSys, err := virtual.New(os.DirFS(*fRoot))
	if err != nil {
		log.Printf("Cannot load site from %q: %s", *fRoot, err)
		os.Exit(1)
	}
	log.Printf("Loaded site from %q", *fRoot)

	if *fExport != "" {
		_, err = export.Export(fileSys, *fExport)
		if err != nil {
			log.Printf("Cannot export site: %s", err)
			os.Exit(2)
		}
		return
	}

	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// Create the cached file system
	cachedFileSystem := cachefs.New(fileSys, &cachefs.Config{
		GroupName:   "hobosite",
		SizeInBytes: *fCacheSize,
		Duration:    *fCacheDuration,
	})

	// Create HTTP server
	cfg := fileSys.Config()
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           handler(cachedFileSystem, cfg),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Printf("Listening for requests on %s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
