package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	echoapi "github.com/trezcool/swk211/apps/api/echo"
	"github.com/trezcool/swk211/core"
	chartsvc "github.com/trezcool/swk211/services/chart"
	logsvc "github.com/trezcool/swk211/services/logger"
	"github.com/trezcool/swk211/services/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	conf := core.Conf

	// =========================================================================
	// Set up Dependencies

	zl, err := logsvc.NewZapLogger(conf.GetBool("debug"))
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	var logger core.Logger = zl
	if conf.GetString("rollbarToken") != "" {
		rl := logsvc.NewRollbarLogger(zl, conf)
		rl.Enable(!conf.GetBool("debug"))
		defer rl.Close()
		logger = rl
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, conf)
	if err != nil {
		return err
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.GetString("build")))
	defer logger.Info("Application stopped")

	server, err := echoapi.NewServer(&echoapi.Options{
		Address:        conf.GetString("address"),
		DisableReqLogs: conf.GetBool("disableReqLogs"),
		Logger:         logger,
		Figures:        chartsvc.NewRenderer(conf.GetInt("figureWidth"), conf.GetInt("figureHeight")),
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/vars - Added to the default mux by importing the expvar package.

	var debugSrv *http.Server
	if addr := conf.GetString("debugAddress"); addr != "" {
		expvar.NewString("build").Set(conf.GetString("build"))
		expvar.NewString("env").Set(conf.GetString("env"))
		debugSrv = &http.Server{Addr: addr, Handler: http.DefaultServeMux}
		g.Go(func() error {
			if err := debugSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrap(err, "debug server closed")
			}
			return nil
		})
	}

	// =========================================================================
	// Start API Service

	g.Go(server.Start)

	// =========================================================================
	// Shutdown

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Start shutdown...")

		// give outstanding requests a deadline for completion
		sctx, cancel := context.WithTimeout(context.Background(), conf.GetDuration("shutdownTimeout"))
		defer cancel()

		if err := server.Stop(sctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		}
		if debugSrv != nil {
			_ = debugSrv.Shutdown(sctx)
		}
		return shutdownTracing(sctx)
	})

	return g.Wait()
}
