package slots

import (
	"time"

	"funny_arcade/internal/config"
	"funny_arcade/internal/logger"
	"funny_arcade/internal/repository"
	"funny_arcade/internal/service"
	"funny_arcade/pkg/rng"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/rs/zerolog"
)

type serv struct {
	cfg       config.SlotsConfig
	repo      repository.SlotsRepository
	statsRepo repository.SlotsStatsRepository
	txManager trm.Manager
	rng       rng.Source
	log       zerolog.Logger
	now       func() time.Time
}

// NewSlotsService Игровой автомат с режимами classic, grid3x3, retro и jackpot
func NewSlotsService(
	cfg config.SlotsConfig,
	repo repository.SlotsRepository,
	statsRepo repository.SlotsStatsRepository,
	txManager trm.Manager,
	src rng.Source,
	log zerolog.Logger,
) service.SlotsService {
	return &serv{
		cfg:       cfg,
		repo:      repo,
		statsRepo: statsRepo,
		txManager: txManager,
		rng:       src,
		log:       logger.Component(log, "slots"),
		now:       time.Now,
	}
}
