package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

const shutdownTimeout = 5 * time.Second

// serve binds the configured port on all interfaces and blocks until SIGINT or SIGTERM
func (app *application) serve() error {
	// Context is cancelled on the first SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Bind before anything is logged so the startup line reports a listening server
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.port))
	if err != nil {
		return err
	}

	return app.serveListener(ctx, ln)
}

// serveListener serves on ln until ctx is done, then drains in-flight requests
func (app *application) serveListener(ctx context.Context, ln net.Listener) error {
	// Cancelling on return also stops the shutdown goroutine when Serve fails
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// HTTP server with timeout settings, server errors go through the JSON logger at ERROR level
	srv := &http.Server{
		Handler:      app.routes(),
		ErrorLog:     log.New(app.logger, "", 0),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Shutdown error channel receives any errors returned by Shutdown()
	shutdownError := make(chan error, 1)

	go func() {
		// Blocks until a signal arrives or the caller cancels ctx
		<-ctx.Done()

		app.logger.PrintInfo("shutting down server", map[string]string{
			"addr": ln.Addr().String(),
		})

		// Give in-flight requests 5s to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Shutdown() returns nil once every connection is idle, relay the result to shutdownError
		shutdownError <- srv.Shutdown(shutdownCtx)
	}()

	// Report the port actually bound, which differs from the configured one for port 0
	port := strconv.Itoa(app.config.port)
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(addr.Port)
	}

	app.logger.PrintInfo("starting server", map[string]string{
		"addr":    ":" + port,
		"version": app.config.version,
	})

	// Serve returns http.ErrServerClosed as soon as Shutdown() has started
	err := srv.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Wait for the return value from Shutdown() on the error channel
	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.PrintInfo("stopped server", map[string]string{
		"addr": ln.Addr().String(),
	})

	return nil
}
