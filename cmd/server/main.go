package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/janisto/hello-server/internal/http/routes"
	"github.com/janisto/hello-server/internal/platform/config"
	applog "github.com/janisto/hello-server/internal/platform/logging"
	appmiddleware "github.com/janisto/hello-server/internal/platform/middleware"
	"github.com/janisto/hello-server/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const shutdownTimeout = 10 * time.Second

// Options are read from flags or SERVICE_HOST / SERVICE_PORT.
type Options struct {
	Host string `doc:"Address to bind the listener to" default:"127.0.0.1"`
	Port int    `doc:"Port to listen on" short:"p" default:"7878"`
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		applog.LogError(context.Background(), "env file error", err)
	}
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	newCLI(&app{}).Run()
}

// app holds what the humacli callback builds once options are parsed.
type app struct {
	api huma.API
	srv *http.Server
}

// newCLI builds the command tree. Options are parsed and a is filled in only when a
// command runs through the returned CLI's Run.
func newCLI(a *app) humacli.CLI {
	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		router, api := newRouter(Version)
		a.api = api
		a.srv = newServer(net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)), router)
		srv := a.srv

		hooks.OnStart(func() {
			if err := listenAndServe(srv); err != nil {
				applog.LogFatal(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
			}
		})
		hooks.OnStop(func() {
			applog.LogInfo(context.Background(), "shutdown signal received")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				applog.LogError(ctx, "server shutdown error", err)
			}
			applog.LogInfo(context.Background(), "server exited")
		})
	})

	root := cli.Root()
	root.Use = "hello-server"
	root.Short = "Answer every HTTP request with Hello World!"
	root.Version = Version
	root.AddCommand(openAPICommand(func() huma.API { return a.api }))
	return cli
}

func newRouter(version string) (*chi.Mux, huma.API) {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.Security(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For. Only expose the server beyond
		// loopback behind a proxy that sets them.
		chimiddleware.RealIP,
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	api := humachi.New(router, routes.Config(version))
	routes.Register(api, router)
	return router, api
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

func listenAndServe(srv *http.Server) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return serve(srv, ln)
}

// serve blocks until srv is shut down. A clean shutdown returns nil.
func serve(srv *http.Server, ln net.Listener) error {
	addr := ln.Addr().String()
	applog.LogInfo(context.Background(), "Listening for requests at http://"+addr, zap.String("addr", addr))
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func openAPICommand(api func() huma.API) *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := api().OpenAPI().YAML()
			if err != nil {
				return fmt.Errorf("render openapi: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
