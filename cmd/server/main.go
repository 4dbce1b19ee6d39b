// Package main содержит точку входа сервера CareerMind.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - создание хранилищ, сервисов, контроллера страниц, middleware и обработчиков;
//   - запуск сервера с заданными таймаутами (HTTPS, если включён TLS);
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/careermind/internal/server/api"
	"github.com/IvanChernomyrdin/careermind/internal/server/config"
	"github.com/IvanChernomyrdin/careermind/internal/server/middleware"
	h "github.com/IvanChernomyrdin/careermind/internal/server/net/http"
	"github.com/IvanChernomyrdin/careermind/internal/server/page"
	"github.com/IvanChernomyrdin/careermind/internal/server/repository"
	"github.com/IvanChernomyrdin/careermind/internal/server/service"
	"github.com/IvanChernomyrdin/careermind/internal/server/web"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
)

func main() {
	configPath := flag.String("config", "./configs/server.yaml", "path to server config")
	flag.Parse()

	boot := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		boot.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal(err)
	}

	httpLogger := logger.New(logger.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	defer httpLogger.Sync()
	sugar := httpLogger.Logger.Sugar()

	// создаём репы: один справочник пользователей на процесс, сессии по cookie
	repos := service.Repositories{
		Users:    repository.NewUsersRepository(),
		Sessions: repository.NewSessionsRepository(cfg.Session.TTL),
	}
	// создаём сервисы
	svc := service.NewServices(repos, cfg, httpLogger)

	pages, err := web.LoadPages()
	if err != nil {
		sugar.Fatal(err)
	}
	ctrl := page.New(svc.Auth, svc.Advice, httpLogger)

	cookie := middleware.SessionOptions{
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.TLS.Enabled,
	}

	// создаём роутер
	router := h.NewRouter(h.Deps{
		API:      api.NewHandler(svc, httpLogger, middleware.NewJWTVerifier(svc.Auth.JWT())),
		Web:      web.NewHandler(ctrl, pages, web.NewAssets(cfg.Assets.Dir), svc.Sessions, cookie, httpLogger),
		Sessions: svc.Sessions,
		Cookie:   cookie,
		Log:          httpLogger,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})

	// создаём сервер
	addr := cfg.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s (tls=%t)", addr, cfg.TLS.Enabled)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
