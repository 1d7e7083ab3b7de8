package terminal

import (
	"context"
	"fmt"
	"strings"

	"funny_arcade/internal/middleware"
	"funny_arcade/internal/model"
	servModel "funny_arcade/internal/service/terminal/model"
)

// Exec разбирает ввод, находит команду и пишет ввод в историю
func (s *serv) Exec(ctx context.Context, req model.TerminalExec) (*model.TerminalExecResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthorized
	}

	parsed := ParseCommand(req.Input)
	if parsed.Command == "" {
		return nil, model.ErrEmptyCommand
	}

	if err := s.repo.Push(ctx, userID, parsed.RawInput, s.cfg.HistoryLimit()); err != nil {
		return nil, fmt.Errorf("push terminal history: %w", err)
	}

	res := &model.TerminalExecResult{Parsed: parsed}

	cmd, known := s.commands[strings.ToLower(parsed.Command)]
	if !known {
		res.Output = []string{"Command not found: " + parsed.Command}
		s.log.Debug().Int("user_id", userID).Str("command", parsed.Command).Msg("unknown command")
		return res, nil
	}

	res.Known = true
	switch cmd.Name {
	case servModel.CmdHelp:
		res.Output = helpLines()
	case servModel.CmdClear:
		res.Clear = true
	}
	return res, nil
}

func helpLines() []string {
	width := 0
	for _, c := range servModel.Commands {
		width = max(width, len(c.Usage))
	}

	lines := make([]string, 0, len(servModel.Commands)+1)
	lines = append(lines, "Available Commands:")
	for _, c := range servModel.Commands {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, c.Usage, c.Description))
	}
	return lines
}

// History История команд пользователя от старых к новым
func (s *serv) History(ctx context.Context) ([]string, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthorized
	}

	history, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list terminal history: %w", err)
	}
	return history, nil
}
