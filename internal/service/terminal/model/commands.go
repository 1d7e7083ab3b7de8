package model

import "funny_arcade/internal/model"

const (
	CmdHelp  = "help"
	CmdClear = "clear"
)

// Commands Реестр команд в порядке вывода help
var Commands = []model.TerminalCommand{
	{Name: "brew", Usage: "brew coffee --size grande", Description: "Brew coffee with progress bar"},
	{Name: "hack-time", Usage: "hack-time", Description: "Dramatic hacking sequence"},
	{Name: "weather", Usage: "weather mars", Description: "Get Mars weather forecast"},
	{Name: "motivate", Usage: "motivate --timer 30", Description: "Show inspirational quotes"},
	{Name: CmdHelp, Usage: "help", Description: "Show available commands"},
	{Name: CmdClear, Usage: "clear", Description: "Clear the terminal screen"},
	{Name: "matrix", Usage: "matrix", Description: "Enter the Matrix with falling characters"},
	{Name: "mine", Usage: "mine", Description: "Start cryptocurrency mining simulation"},
	{Name: "fortune", Usage: "fortune", Description: "Get your fortune told by the digital spirits"},
	{Name: "zombie", Usage: "zombie", Description: "Survive the zombie apocalypse simulation"},
}
