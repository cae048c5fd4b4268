package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	walletapi "wallet_api_back"

	"wallet_api_back/pkg/config"
	"wallet_api_back/pkg/handler"
	"wallet_api_back/pkg/repository"
	"wallet_api_back/pkg/service"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.Infoln("Запуск сервера")

	cfg, err := config.Load("configs")
	if err != nil {
		logrus.Fatalf("Ошибка инициализации конфига (проверьте %s): %s", config.DatabaseURLEnv, err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Неверный log_level %q: %s", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	db, err := repository.NewPostgresDB(context.Background(), repository.Config{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		logrus.Fatalf("Ошибка при инициализации базы данных: %s", err)
	}
	logrus.Info("Пул соединений с базой данных создан")

	repos := repository.NewRepository(db)
	services := service.NewService(repos)
	handlers := handler.NewHandler(services)

	srv := new(walletapi.Server)
	go func() {
		err := srv.Run(cfg.Port, handlers.InitRoute(cfg.CORS.AllowOrigins), cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Ошибка при запуске сервера: %s", err)
		}
	}()
	logrus.Infof("Сервер слушает порт %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Остановка сервера")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Ошибка при остановке сервера: %s", err)
	}
	if err := db.Close(); err != nil {
		logrus.Errorf("Ошибка при закрытии пула соединений: %s", err)
	}
	logrus.Info("Пул соединений с базой данных закрыт")
}
