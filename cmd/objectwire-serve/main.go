// objectwire-serve launches the Connect/gRPC BridgeService: each client
// session gets its own interpreter subprocess via server.SessionStore.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chazu/objectwire/audit"
	"github.com/chazu/objectwire/manifest"
	"github.com/chazu/objectwire/server"
)

func main() {
	port := flag.Int("port", 4568, "server port")
	manifestDir := flag.String("manifest", ".", "directory to search for objectwire.toml")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: objectwire-serve [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	m, err := manifest.FindAndLoad(*manifestDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading manifest: %v\n", err)
		os.Exit(1)
	}

	var store *audit.Store
	var srv *server.BridgeServer
	if m != nil && m.Audit.Enabled {
		store, err = audit.Open(m.Audit.DSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening audit store: %v\n", err)
			os.Exit(1)
		}
		srv = server.NewWithAudit(store)
	} else {
		srv = server.New()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		srv.Stop()
		if store != nil {
			store.Close()
		}
		os.Exit(0)
	}()

	addr := fmt.Sprintf(":%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
