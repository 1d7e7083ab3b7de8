package converter

import (
	"funny_arcade/internal/api/dto/terminal"
	"funny_arcade/internal/model"

	"github.com/samber/lo"
)

func ToTerminalExec(req terminal.ExecRequest) model.TerminalExec {
	return model.TerminalExec{Input: req.Input}
}

func ToExecResponse(res model.TerminalExecResult) terminal.ExecResponse {
	output := res.Output
	if output == nil {
		output = []string{}
	}
	return terminal.ExecResponse{
		Parsed: terminal.ParsedCommand{
			Command:  res.Parsed.Command,
			Args:     res.Parsed.Args,
			Flags:    res.Parsed.Flags,
			Switches: res.Parsed.Switches,
			RawInput: res.Parsed.RawInput,
		},
		Known:  res.Known,
		Clear:  res.Clear,
		Output: output,
	}
}

func ToCommandResponses(cmds []model.TerminalCommand) []terminal.CommandResponse {
	return lo.Map(cmds, func(c model.TerminalCommand, _ int) terminal.CommandResponse {
		return terminal.CommandResponse{
			Name:        c.Name,
			Usage:       c.Usage,
			Description: c.Description,
		}
	})
}

func ToHistoryResponse(history []string) terminal.HistoryResponse {
	if history == nil {
		history = []string{}
	}
	return terminal.HistoryResponse{History: history}
}
