package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/cli/config"
	httpctrl "github.com/secmon-lab/roadmap/pkg/controller/http"
	"github.com/secmon-lab/roadmap/pkg/usecase"
	"github.com/secmon-lab/roadmap/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var staticDir string
	var corsOrigins []string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("ROADMAP_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "static-dir",
			Usage:       "Directory holding the built dashboard; served for every path outside /api",
			Sources:     cli.EnvVars("ROADMAP_STATIC_DIR"),
			Destination: &staticDir,
		},
		&cli.StringSliceFlag{
			Name:        "cors-origin",
			Usage:       "Origin allowed to call the API from a browser (repeatable)",
			Sources:     cli.EnvVars("ROADMAP_CORS_ORIGIN"),
			Destination: &corsOrigins,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := repoCfg.LoadCatalog(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			repo, err := repoCfg.Configure(ctx, catalog)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}

			uc := usecase.New(repo,
				usecase.WithCountries(catalog.Countries...),
				usecase.WithLevels(catalog.Levels),
				usecase.WithAcronyms(catalog.Acronyms),
			)

			var httpOpts []httpctrl.Options
			if staticDir != "" {
				httpOpts = append(httpOpts, httpctrl.WithStaticFS(os.DirFS(staticDir)))
				logging.Default().Info("Serving static files", "dir", staticDir)
			}
			if len(corsOrigins) > 0 {
				httpOpts = append(httpOpts, httpctrl.WithCORS(corsOrigins...))
			}

			httpHandler, err := httpctrl.New(uc, httpOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "entries", len(catalog.Entries))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)
			case <-ctx.Done():
				logging.Default().Info("Context canceled, shutting down")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server")
			}
			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
