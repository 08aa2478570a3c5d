// mediai is the client toolkit for the MediAI telehealth backend: it
// manages the local session (login, silent refresh, logout) and serves
// the doctor portal on localhost.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/mediai-platform/mediai/authclient"
	"github.com/mediai-platform/mediai/internal/config"
	"github.com/mediai-platform/mediai/portal"
	"github.com/mediai-platform/mediai/session"
	"github.com/mediai-platform/mediai/tokenstore"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	verb, args := os.Args[1], os.Args[2:]

	cfg := config.MustLoad("")
	mgr, err := newSessionManager(cfg)
	if err != nil {
		log.Fatalf("Error initialising session: %s\n", err)
	}

	if verb == "serve" {
		for {
			if err := runServe(cfg, mgr); err != nil {
				log.Printf("Error running portal: %s\n", err)
				time.Sleep(1 * time.Second)
			} else {
				break
			}
		}
		log.Printf("Portal stopped\n")
		return
	}

	if err := runCommand(verb, args, cfg, mgr); err != nil {
		fmt.Fprintf(os.Stderr, "mediai %s: %s\n", verb, err)
		os.Exit(1)
	}
}

func newSessionManager(cfg *config.Config) (*session.Manager, error) {
	store, err := tokenstore.NewFileStore(cfg.Session.TokenFile())
	if err != nil {
		return nil, err
	}
	auth, err := authclient.New(cfg.API.BaseURL, store,
		authclient.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return nil, err
	}
	return session.NewManager(auth), nil
}

func runServe(cfg *config.Config, mgr *session.Manager) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	displayAppname("MediAI")
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	refresher := session.NewRefresher(mgr, cfg.Session.RefreshInterval, logger)
	go refresher.Run(ctx)

	srv := &http.Server{
		Addr:    cfg.Portal.Addr(),
		Handler: portal.New(mgr, portal.WithLogger(logger)).Handler(),
	}
	go listenAndServe(srv)
	waitForStopSignal()
	cancel()
	return shutdown(srv)
}

func listenAndServe(server *http.Server) {
	log.Printf("Portal listening on http://%s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("server.ListenAndServe: %s\n", err)
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: mediai <command> [flags]

commands:
  serve             run the doctor portal with background token refresh
  login             authenticate and persist the session
  logout            clear the persisted session
  register          register a doctor account
  register-patient  register a patient account
  whoami            show the claims of the stored access token
  dashboard         fetch the authenticated doctor profile
  diagnose          run the symptom checker demo`)
}
