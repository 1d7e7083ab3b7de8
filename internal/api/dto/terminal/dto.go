package terminal

type ExecRequest struct {
	Input string `json:"input"`
}

type ParsedCommand struct {
	Command  string            `json:"command"`
	Args     []string          `json:"args"`
	Flags    map[string]string `json:"flags"`    // --name value
	Switches map[string]bool   `json:"switches"` // --name и -x без значения
	RawInput string            `json:"raw_input"`
}

type ExecResponse struct {
	Parsed ParsedCommand `json:"parsed"`
	Known  bool          `json:"known"`
	Clear  bool          `json:"clear"`
	Output []string      `json:"output"`
}

type CompleteRequest struct {
	Input string `json:"input"`
}

type CompleteResponse struct {
	Completion string `json:"completion"`
}

type CommandResponse struct {
	Name        string `json:"name"`
	Usage       string `json:"usage"`
	Description string `json:"description"`
}

type HistoryResponse struct {
	History []string `json:"history"` // От старых к новым
}
