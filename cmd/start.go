package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/luma/rollcall/app"
	"github.com/luma/rollcall/health"
	"github.com/luma/rollcall/internal/env"
	"github.com/luma/rollcall/rollup"
	"github.com/luma/rollcall/transport"
)

var (
	// The app to run, see app.New
	appName string

	// The host to listen on
	host string

	// The port to listen for http requests on. Empty disables the health
	// endpoints
	httpPort string
)

func init() {
	flags := StartCmd.PersistentFlags()

	flags.StringVar(&appName, "app", app.RosterApp, "The app to run, either roster or calculator")
	flags.StringVar(&httpPort, "http-port", "7362", "The port to serve health checks on, empty to disable")
	flags.StringVarP(&host, "host", "a", "0.0.0.0", "The host to listen on")
}

var StartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start processing rollup inputs",
	Long: `Start processing rollup inputs

Reads the node's address from ROLLUP_HTTP_SERVER_URL and polls it until
interrupted.

Usage
	rollcall start --app roster

`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx, signalStop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer signalStop()

		conf, err := env.LoadConfig(ctx)
		if err != nil {
			return err
		}

		log, err := env.MakeLogger(conf.LogLevel)
		if err != nil {
			return err
		}

		defer func() {
			// Sync fails on stdout/stderr on some platforms, ignore it
			_ = log.Sync()
		}()

		node := transport.NewNode(transport.Options{
			URL:      conf.ServerURL,
			MaxTries: uint(conf.FinishMaxTries),
			Log:      log.Named("transport"),
		})

		handler, err := app.New(appName, node, log.Named(appName))
		if err != nil {
			return err
		}

		loop := rollup.NewLoop(node, handler, log.Named("rollup"))

		var s *http.Server
		if httpPort != "" {
			s, err = serveHealth(conf.DebugHTTP, loop, log.Named("health"))
			if err != nil {
				return err
			}
		}

		log.Info("Starting",
			zap.String("app", appName),
			zap.String("serverURL", conf.ServerURL),
			zap.Int("finishMaxTries", conf.FinishMaxTries),
			zap.String("host", host),
			zap.String("httpPort", httpPort))

		runErr := loop.Run(ctx)

		// Restore default behavior on the interrupt signal and notify user of shutdown.
		signalStop()
		log.Info("Shutting down", zap.Any("stats", loop.Stats()))

		if s != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			s.SetKeepAlivesEnabled(false)
			runErr = multierr.Append(runErr, s.Shutdown(shutdownCtx))
		}

		log.Info("Exiting")
		return runErr
	},
}

func serveHealth(debugHTTP bool, loop *rollup.Loop, log *zap.Logger) (*http.Server, error) {
	listener, err := health.Listen(net.JoinHostPort(host, httpPort))
	if err != nil {
		return nil, err
	}

	s := &http.Server{
		Handler: health.NewRouter(debugHTTP, log, loop),
	}

	go func() {
		if err := s.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Http server errored", zap.Error(err))
		}
	}()

	return s, nil
}
