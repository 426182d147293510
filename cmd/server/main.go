/*
main.go - Payroll server entry point

PURPOSE:
  Starts the WorkForce Hub payroll API: opens the SQLite record store,
  wires the HTTP handlers, and serves until interrupted.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Open the SQLite store (schema migrates on open)
  3. Wire handlers and router
  4. Serve, then drain on shutdown

COMMAND-LINE FLAGS:
  -port    HTTP listen port (default: 8080)
  -db      Path to the SQLite database file (default: workforce.db).
           Use ":memory:" for a throwaway database; note that balances
           recorded there vanish on exit.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM the listener stops accepting connections and
  in-flight requests get up to 30s to finish before the store closes.
  A payment POST that was accepted is always fully written.

ENVIRONMENT:
  No environment variables. All configuration is flags; there is
  deliberately no config file layer for a single-binary deployment.

EXAMPLES:
  # Day-to-day: file-backed database next to the binary
  ./server -db=./data/workforce.db

  # Smoke-testing the API without leaving records behind
  ./server -db=":memory:" -port=3000

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Record persistence
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mahesh3757/WorkForce-Hub/api"
	"github.com/Mahesh3757/WorkForce-Hub/store/sqlite"
)

const shutdownGrace = 30 * time.Second

func main() {
	port := flag.Int("port", 8080, "HTTP listen port")
	dbPath := flag.String("db", "workforce.db", "SQLite database path (\":memory:\" for throwaway)")
	flag.Parse()

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open record store at %s: %v", *dbPath, err)
	}
	defer store.Close()

	router := api.NewRouter(api.NewHandler(store))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Payroll API listening on http://localhost:%d/api (records: %s)", *port, *dbPath)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down, draining in-flight requests...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
