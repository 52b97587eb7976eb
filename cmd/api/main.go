// @title           ToDo List API
// @version         1.0
// @description     Collaborative boards with lists, cards, comments, activities and notifications.
// @host            localhost:8080
// @BasePath        /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BeldiMariem/ToDo-List-App/internal/app"
	"github.com/BeldiMariem/ToDo-List-App/internal/config"

	_ "github.com/BeldiMariem/ToDo-List-App/docs"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	log.Info("config loaded, connecting to DB and Redis")
	application, err := app.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("app init")
	}
	log.Info("app ready, starting HTTP server")
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		log.WithField("addr", server.Addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}

	if err := application.Close(ctx); err != nil {
		log.WithError(err).Error("close")
	}
}
