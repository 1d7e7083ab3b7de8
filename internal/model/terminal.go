package model

// ParsedCommand Разобранная строка терминала
type ParsedCommand struct {
	Command  string
	Args     []string
	Flags    map[string]string
	Switches map[string]bool
	RawInput string
}

type TerminalCommand struct {
	Name        string
	Usage       string
	Description string
}

type TerminalExec struct {
	Input string
}

type TerminalExecResult struct {
	Parsed ParsedCommand
	Known  bool
	Clear  bool
	Output []string
}
