// Command seed creates a test user with a fresh TRON deposit address so the
// API can be exercised against a local database. Expects DATABASE_URL.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"wallet_api_back/internal/wallet"
	"wallet_api_back/pkg/config"
	"wallet_api_back/pkg/repository"
)

func main() {
	tgID := flag.Int64("tg-id", 42, "Telegram ID of the test user")
	balance := flag.Float64("balance", 10, "initial balance in USDT")
	address := flag.String("address", "", "existing TRON address to assign instead of a generated one")
	flag.Parse()

	logrus.SetFormatter(new(logrus.JSONFormatter))
	if err := godotenv.Load(); err != nil {
		logrus.Infof("Файл .env не загружен: %s", err)
	}

	dsn := os.Getenv(config.DatabaseURLEnv)
	if dsn == "" {
		logrus.Fatalf("%s не задан", config.DatabaseURLEnv)
	}

	ctx := context.Background()
	db, err := repository.NewPostgresDB(ctx, repository.Config{DSN: dsn})
	if err != nil {
		logrus.Fatalf("Ошибка при подключении к базе данных: %s", err)
	}
	defer db.Close()

	depositAddress := *address
	if depositAddress == "" {
		w, err := wallet.GenerateTRONWallet()
		if err != nil {
			logrus.Fatalf("Ошибка генерации кошелька: %s", err)
		}
		depositAddress = w.Address
		logrus.WithField("private_key", w.PrivateKey).Warn("Сгенерирован тестовый кошелек, ключ нигде не сохраняется")
	} else if err := wallet.ValidateAddress(depositAddress); err != nil {
		logrus.Fatalf("Адрес %q не является TRON-адресом: %s", depositAddress, err)
	}

	seed := repository.NewSeedPostgres(db)
	userID, err := seed.UpsertUser(ctx, *tgID, *balance)
	if err != nil {
		logrus.Fatalf("Ошибка создания пользователя: %s", err)
	}
	if err := seed.AssignDepositAddress(ctx, userID, depositAddress); err != nil {
		logrus.Fatalf("Ошибка выдачи депозит-адреса: %s", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"tg_id":   *tgID,
		"balance": *balance,
		"address": depositAddress,
	}).Info("Тестовый пользователь готов")
}
