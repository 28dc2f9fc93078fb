package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/vibast-solutions/ms-go-ski-station/app/controller"
	"github.com/vibast-solutions/ms-go-ski-station/app/repository"
	"github.com/vibast-solutions/ms-go-ski-station/app/service"
	"github.com/vibast-solutions/ms-go-ski-station/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP (Echo) server exposing subscription and registration endpoints.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
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
	defer db.Close()

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	subscriptionRepo := repository.NewSubscriptionRepository(db)
	skierRepo := repository.NewSkierRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	registrationService := service.NewRegistrationService(registrationRepo, skierRepo, courseRepo)
	subscriptionController := controller.NewSubscriptionController(subscriptionService)
	registrationController := controller.NewRegistrationController(registrationService)

	e := setupHTTPServer(subscriptionController, registrationController)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

func setupHTTPServer(
	subscriptionController *controller.SubscriptionController,
	registrationController *controller.RegistrationController,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))

	e.GET("/health", subscriptionController.Health)

	subscriptions := e.Group("/subscriptions")
	subscriptions.POST("", subscriptionController.AddSubscription)
	subscriptions.GET("/:id", subscriptionController.GetSubscription)
	subscriptions.PUT("/:id", subscriptionController.UpdateSubscription)
	subscriptions.GET("/type/:type", subscriptionController.ListSubscriptionsByType)
	subscriptions.GET("/dates/:from/:to", subscriptionController.ListSubscriptionsByDates)

	registrations := e.Group("/registrations")
	registrations.PUT("/assign-to-skier/:skierId", registrationController.AddRegistrationAndAssignToSkier)
	registrations.PUT("/:id/assign-to-course/:courseId", registrationController.AssignRegistrationToCourse)
	registrations.PUT("/assign/:skierId/:courseId", registrationController.AddRegistrationAndAssignToSkierAndCourse)
	registrations.GET("/num-weeks/:instructorId/:support", registrationController.NumWeeksCourseOfInstructorBySupport)

	return e
}
