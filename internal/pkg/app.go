package pkg

import (
	"algofit-storefront/internal/app/config"
	"algofit-storefront/internal/app/countdown"
	"algofit-storefront/internal/app/handler"
	"algofit-storefront/internal/app/metrics"
	"algofit-storefront/internal/app/repository"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Repository *repository.Repository
	Discount   countdown.Countdown
}

func NewApp(c *config.Config, r *gin.Engine, repo *repository.Repository) *Application {
	return &Application{
		Config:     c,
		Router:     r,
		Repository: repo,
		Discount:   countdown.NewDiscount(time.Now(), c.Discount.Span, c.Discount.EndTime()),
	}
}

// Handler registers the routes and returns the HTTP handler of the storefront.
func (a *Application) Handler() http.Handler {
	metrics.Register()
	handler.RegisterValidations()
	handler.RegisterHandlers(a.Router, a.Repository, a.Config, a.Discount)
	return a.Router
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")
	a.Config.ApplyLogLevel()

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	srv := &http.Server{
		Addr:              serverAddress,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Listening on %s, discount ends at %s", serverAddress, a.Discount.EndsAt.Format(time.RFC3339))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	a.Repository.Close()

	logrus.Info("Server down")
}
