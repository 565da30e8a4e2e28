package main

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/config"
	"github.com/xavierca1/pix-checkout/internal/infra/database"
	"github.com/xavierca1/pix-checkout/internal/infra/worker"
	"github.com/xavierca1/pix-checkout/internal/usecase"
)

// setupDatabase liga o diário de webhooks e o pruner quando DATABASE_URL existe.
// Retorna nil sem banco.
func setupDatabase(ctx context.Context, cfg *config.Config, logg *zap.Logger, webhookUC *usecase.ProcessWebhookUseCase) *sql.DB {
	if !cfg.DB.Enabled() {
		logg.Info("DATABASE_URL não configurada: diário de webhooks desligado")
		return nil
	}

	db, err := database.NewDBConnection(cfg.DB.URL)
	if err != nil {
		logg.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	repo := database.NewWebhookEventRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		logg.Fatal("erro ao criar tabela webhook_events", zap.Error(err))
	}
	webhookUC.Journal = repo

	pruner := worker.NewJournalPruner(repo, cfg.DB.Retention, logg.Named("journal-pruner"))
	go pruner.Start(ctx)

	return db
}
