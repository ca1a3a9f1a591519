package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calcweather/config"
	"calcweather/internal/calc"
	v1 "calcweather/internal/controllers/http/v1"
	"calcweather/internal/repositories"
	"calcweather/internal/services/calculator"
	"calcweather/internal/services/weather"
	"calcweather/pkg/httpserver"
	"calcweather/pkg/logger"
	"calcweather/pkg/observe"
)

// @title Calcweather API
// @version 1.0.0
// @description A scientific calculator and a current-weather lookup served over HTTP with Go and Fiber.

// @contact.name Calcweather Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Current weather lookup
// @tag.name Calculator
// @tag.description Expression evaluation and calculator sessions
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.App.Name, writers...)
	l.SetEnv(cnf.App.Env)
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		l.Warning("keeping default log level", map[string]any{"err": err.Error()})
	}
	if hook != nil {
		hook.SetLogger(l)
	}

	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot init weather repository", map[string]any{"err": err.Error()})
	}
	weatherService := weather.NewWeatherService(repo, cnf.Weather.IconURL, l)

	mode, err := calc.ParseAngleMode(cnf.Calculator.AngleMode)
	if err != nil {
		l.Fatal("invalid calculator angle mode", map[string]any{"err": err.Error()})
	}
	calculatorService := calculator.NewService(calculator.Config{
		AngleMode:  mode,
		Precision:  cnf.Calculator.Precision,
		SessionTTL: cnf.Calculator.SessionTTL,
		SweepSpec:  cnf.Calculator.SweepSpec,
	}, l)
	if err := calculatorService.StartSweeper(); err != nil {
		l.Fatal("cannot start session sweeper", map[string]any{"err": err.Error()})
	}

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
	}, l)

	v1.NewRouter(
		app,
		weatherService,
		calculatorService,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Error(err, map[string]any{"port": cnf.Server.Port})
			cancel()
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": repo.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		calculatorService.Stop()
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
