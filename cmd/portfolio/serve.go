package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	portfolio "github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/components/contact"
	"github.com/goliatone/go-portfolio/internal/config"
	"github.com/goliatone/go-portfolio/pkg/site"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page and contact endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, addr, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}

// serve runs the HTTP server until ctx is done, then shuts it down within the
// configured grace period. ready, when set, receives the bound address.
func (a *app) serve(ctx context.Context, addr string, ready func(net.Addr)) error {
	mux, err := portfolio.NewMux(
		portfolio.WithProfile(profileFromConfig(a.cfg.Profile)),
		portfolio.WithLogger(a.logger),
		portfolio.WithContactOptions(
			contact.WithRoutePath(a.cfg.Contact.RoutePath),
			contact.WithMaxBodyBytes(a.cfg.Contact.MaxBodyBytes),
		),
	)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(a.logger),
	}

	a.logger.Info("portfolio server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("contact_route", contact.MountPath("", contact.WithRoutePath(a.cfg.Contact.RoutePath))),
	)
	if ready != nil {
		ready(ln.Addr())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("portfolio server shutting down", zap.Duration("grace", a.cfg.Server.ShutdownGrace))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func profileFromConfig(p config.Profile) site.Profile {
	links := make([]site.Link, 0, len(p.Links))
	for _, link := range p.Links {
		links = append(links, site.Link{Name: link.Name, URL: link.URL})
	}
	return site.Profile{
		Name:     p.Name,
		Title:    p.Title,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		Links:    links,
	}
}
