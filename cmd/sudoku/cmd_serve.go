package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "github.com/MarcoCalabretta/sudoku/internal/adapters/http"
	"github.com/MarcoCalabretta/sudoku/internal/config"
	"github.com/MarcoCalabretta/sudoku/internal/hint"
	"github.com/MarcoCalabretta/sudoku/internal/infrastructure/storage"
	"github.com/MarcoCalabretta/sudoku/internal/solver"
	"github.com/MarcoCalabretta/sudoku/internal/usecase"
	"github.com/MarcoCalabretta/sudoku/internal/validator"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}
	if serveLogLvl != "" {
		cfg.LogLevel = serveLogLvl
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	// Wire providers → use cases → HTTP adapter
	uc := usecase.NewService(
		solver.NewEngine(),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(cfg.DataDir),
	)
	h := httpadapter.New(uc)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(httpadapter.RequestLogger(logger), gin.Recovery())
	h.Register(r)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "dataDir", cfg.DataDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
