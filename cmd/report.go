package cmd

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-ski-station/app/repository"
	"github.com/vibast-solutions/ms-go-ski-station/app/service"
	"github.com/vibast-solutions/ms-go-ski-station/config"

	_ "github.com/go-sql-driver/mysql"
)

var reportWorker bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the end-date audit and monthly recurring revenue report",
	Run: func(_ *cobra.Command, _ []string) {
		cfg, reportingService, cleanup := mustCreateReportingService()
		defer cleanup()

		if reportWorker {
			runWorker("report", cfg.Jobs.ReportInterval, reportingService)
			return
		}

		ctx := context.Background()
		runJob("end_date_audit", func() error { return reportingService.RunEndDateAuditBatch(ctx) })
		runJob("revenue_report", func() error { return reportingService.RunRevenueReportBatch(ctx) })
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportWorker, "worker", false, "Run continuously using configured interval")
}

func runWorker(name string, interval time.Duration, reportingService *service.ReportingService) {
	if interval <= 0 {
		logrus.WithField("job", name).Fatal("invalid worker interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runBatches := func() {
		runJob("end_date_audit", func() error { return reportingService.RunEndDateAuditBatch(ctx) })
		runJob("revenue_report", func() error { return reportingService.RunRevenueReportBatch(ctx) })
	}
	runBatches()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case <-quit:
			logrus.WithField("job", name).Info("Worker shutdown requested")
			return
		case <-ticker.C:
			runBatches()
		}
	}
}

func mustCreateReportingService() (*config.Config, *service.ReportingService, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	subscriptionRepo := repository.NewSubscriptionRepository(db)
	skierRepo := repository.NewSkierRepository(db)
	reportingService := service.NewReportingService(subscriptionRepo, skierRepo)

	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, reportingService, cleanup
}

func runJob(name string, fn func() error) {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Error("job_failed")
		return
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
}
