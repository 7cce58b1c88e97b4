package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	// 1. 加载配置
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 2. 初始化应用（模型只在这里加载一次）
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	log := app.Logger
	log.Infof(ctx, "Model loaded: path=%s trees=%d", app.Model.Path(), app.Model.NumTrees())

	// 3. 启动 HTTP Server（后台 goroutine）
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: app.Handler,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Infof(ctx, "Starting HTTP server on %s (env=%s)", cfg.Addr(), cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 4. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		log.Infof(ctx, "Received signal %v, gracefully shutting down...", sig)
	case err := <-serverErrChan:
		return fmt.Errorf("http server error: %w", err)
	}

	app.Draining.Store(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf(ctx, "HTTP server shutdown error: %v", err)
		return err
	}

	log.Infof(ctx, "HTTP server stopped gracefully")
	return nil
}
