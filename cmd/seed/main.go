// Command seed migrates the schema and inserts sample guide profiles.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"guidematch/config"
	"guidematch/internal/domain/entity"
	"guidematch/internal/domain/repository"
	"guidematch/internal/errors"
	logs "guidematch/internal/infra/log"
	"guidematch/internal/infra/persistence/model"
	"guidematch/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const samplePassword = "password123"

type sampleGuide struct {
	email         string
	nameRomanized string
	bio           string
	specialties   string
	rating        float64
	languages     string
	areas         string
	priceRange    string
}

var samples = []sampleGuide{
	{
		email:         "maria.santos@example.com",
		nameRomanized: "Maria Santos",
		bio:           "ガウディ建築と地元のタパス文化に精通した認定美術史家です。",
		specialties:   "art,food,architecture",
		rating:        4.9,
		languages:     "es,en,ja",
		areas:         "barcelona,catalonia",
		priceRange:    "8000-15000",
	},
	{
		email:         "kenji.tanaka@example.com",
		nameRomanized: "Kenji Tanaka",
		bio:           "元シェフで、隠れたラーメン店や伝統的な寺社の案内が得意です。",
		specialties:   "food,culture,temples",
		rating:        4.8,
		languages:     "ja,en",
		areas:         "tokyo,kanto",
		priceRange:    "9000-16000",
	},
	{
		email:         "youssef.elfassi@example.com",
		nameRomanized: "Youssef El-Fassi",
		bio:           "ベルベル文化に精通した三代目スーク商人です。",
		specialties:   "markets,history,culture",
		rating:        4.9,
		languages:     "ar,fr,en,ja",
		areas:         "marrakech,morocco",
		priceRange:    "7000-14000",
	},
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.NewLogger(cfg)
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := db.WithContext(ctx).AutoMigrate(&model.AccountModel{}, &model.GuideModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	accountRepo := postgres.NewAccountRepository(db)
	guideRepo := postgres.NewGuideRepository(db)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash sample password")
	}

	inserted := 0
	for _, sample := range samples {
		if _, err := accountRepo.FindByEmail(ctx, sample.email); err == nil {
			logger.Info("Sample guide already present, skipping", slog.String("email", sample.email))

			continue
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return err
		}

		account := &entity.Account{
			ID:           uuid.New(),
			Email:        sample.email,
			PasswordHash: string(passwordHash),
			CreatedAt:    time.Now().UTC(),
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			return err
		}

		guide := &entity.Guide{
			ID:            account.ID,
			Email:         sample.email,
			NameRomanized: sample.nameRomanized,
			Bio:           sample.bio,
			Specialties:   sample.specialties,
			Rating:        sample.rating,
			Languages:     sample.languages,
			Areas:         sample.areas,
			PriceRange:    sample.priceRange,
		}
		if err := guideRepo.Create(ctx, guide); err != nil {
			return err
		}

		inserted++
	}

	logger.Info("Seed data inserted", slog.Int("guides", inserted))

	return nil
}
