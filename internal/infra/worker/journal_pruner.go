package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type EventPruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// JournalPruner apaga do diário de webhooks as entregas mais antigas que a retenção.
type JournalPruner struct {
	repo         EventPruner
	retention    time.Duration
	tickInterval time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

func NewJournalPruner(repo EventPruner, retention time.Duration, logger *zap.Logger) *JournalPruner {
	return &JournalPruner{
		repo:         repo,
		retention:    retention,
		tickInterval: time.Hour,
		now:          time.Now,
		logger:       logger,
	}
}

func (p *JournalPruner) Start(ctx context.Context) {
	p.logger.Info("pruner do diário de webhooks iniciado", zap.Duration("retention", p.retention))

	ticker := time.NewTicker(p.tickInterval)
	defer ticker.Stop()

	p.prune(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pruner do diário de webhooks encerrado")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *JournalPruner) prune(ctx context.Context) int64 {
	cutoff := p.now().Add(-p.retention)

	n, err := p.repo.PruneBefore(ctx, cutoff)
	if err != nil {
		p.logger.Error("erro ao limpar diário de webhooks", zap.Error(err))
		return 0
	}
	if n > 0 {
		p.logger.Info("entregas antigas removidas", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	}
	return n
}
