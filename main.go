package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dsback/pkg/objstore"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log := newLogger(cfg.LogLevel)

	db, err := openDB(cfg, log)
	if err != nil {
		log.Fatal(err)
	}
	migrateDB(db, log)
	seedDB(db, log)

	// `./dsback migrate` runs schema setup and seeding then exits. Useful
	// for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		log.Info("migration and seeding completed")
		return
	}

	files := buildObjectStore(cfg, log)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	setupRoutes(r, newApp(db, files, log))
	if _, ok := files.(*objstore.LocalStore); ok {
		r.Static("/files", cfg.UploadBase)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()
	log.WithField("port", cfg.Port).Info("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("shutdown incomplete")
	}
	// The shared DB handle is owned here: opened before serving, closed
	// after the server drains.
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// buildObjectStore picks the contract-file backend: the S3-compatible store
// when configured, otherwise the local disk directory served under /files.
func buildObjectStore(cfg Config, log *logrus.Logger) objstore.Store {
	if cfg.S3Endpoint != "" && cfg.S3Bucket != "" {
		s3, err := objstore.NewS3Store(objstore.S3Config{
			Endpoint:    cfg.S3Endpoint,
			CDNEndpoint: cfg.S3CDNEndpoint,
			Region:      cfg.S3Region,
			Bucket:      cfg.S3Bucket,
			AccessKey:   cfg.S3AccessKey,
			SecretKey:   cfg.S3SecretKey,
			UseSSL:      cfg.S3UseSSL,
		})
		if err != nil {
			// Misconfiguration disables uploads; every other route keeps
			// working and the upload endpoint answers 500.
			log.WithError(err).Error("object store init failed; uploads disabled")
			return nil
		}
		log.WithField("bucket", cfg.S3Bucket).Info("using S3 object store")
		return s3
	}
	log.WithField("dir", cfg.UploadBase).Info("using local object store")
	return objstore.NewLocalStore(cfg.UploadBase, "/files")
}
