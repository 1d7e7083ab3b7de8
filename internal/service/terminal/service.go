package terminal

import (
	"funny_arcade/internal/config"
	"funny_arcade/internal/logger"
	"funny_arcade/internal/model"
	"funny_arcade/internal/repository"
	"funny_arcade/internal/service"
	servModel "funny_arcade/internal/service/terminal/model"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type serv struct {
	cfg      config.TerminalConfig
	repo     repository.TerminalHistoryRepository
	commands map[string]model.TerminalCommand
	names    []string
	log      zerolog.Logger
}

func NewTerminalService(
	cfg config.TerminalConfig,
	repo repository.TerminalHistoryRepository,
	log zerolog.Logger,
) service.TerminalService {
	return &serv{
		cfg:  cfg,
		repo: repo,
		commands: lo.KeyBy(servModel.Commands, func(c model.TerminalCommand) string {
			return c.Name
		}),
		names: lo.Map(servModel.Commands, func(c model.TerminalCommand, _ int) string {
			return c.Name
		}),
		log: logger.Component(log, "terminal"),
	}
}

// Commands Список команд для клиента
func (s *serv) Commands() []model.TerminalCommand {
	return append([]model.TerminalCommand(nil), servModel.Commands...)
}

// Complete дополняет имя команды
func (s *serv) Complete(input string) string {
	return AutoComplete(input, s.names)
}
