// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/omnaris/scan-service/internal/config"
	"github.com/omnaris/scan-service/internal/db"
	"github.com/omnaris/scan-service/internal/hash"
	"github.com/omnaris/scan-service/internal/identity"
	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/mailer"
	"github.com/omnaris/scan-service/internal/monitoring/prometheus"
	"github.com/omnaris/scan-service/internal/storage"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/pkg/activity"
	"github.com/omnaris/scan-service/pkg/exports"
	"github.com/omnaris/scan-service/pkg/metrics"
	"github.com/omnaris/scan-service/pkg/scans"
	"github.com/omnaris/scan-service/pkg/status"
	"github.com/omnaris/scan-service/pkg/users"
	"github.com/omnaris/scan-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("scan-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	mail := mailer.NewResendMailer(specs.ResendAPIKey, specs.MailFrom, specs.MailSendTimeout, tracer, monitor, logger)

	scanService := scans.NewService(s, logger, tracer)
	exportService := exports.NewService(s, dbClient, mail, logger, tracer)
	userService := users.NewService(s, hash.NewBcryptHasher(), logger, tracer)
	activityService := activity.NewService(s, logger, tracer)

	identityMiddleware := identity.NewMiddleware(tracer, monitor, logger)

	router := web.NewRouter(
		identityMiddleware,
		tracer,
		monitor,
		logger,
		[]func(r chi.Router){
			metrics.NewAPI(logger).RegisterEndpoints,
			status.NewAPI(tracer, monitor, logger).RegisterEndpoints,
		},
		scans.NewHandler(scanService, logger),
		exports.NewHandler(exportService, logger),
		users.NewHandler(userService, logger),
		activity.NewHandler(activityService, logger),
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
