package terminal

import (
	"strings"

	"funny_arcade/internal/model"

	"github.com/samber/lo"
)

// ParseCommand разбирает строку вида "command arg --flag value -x"
func ParseCommand(input string) model.ParsedCommand {
	trimmed := strings.TrimSpace(input)
	parts := strings.Fields(trimmed)

	parsed := model.ParsedCommand{
		Args:     []string{},
		Flags:    map[string]string{},
		Switches: map[string]bool{},
		RawInput: trimmed,
	}
	if len(parts) == 0 {
		return parsed
	}

	parsed.Command = parts[0]
	rest := parts[1:]

	for i := 0; i < len(rest); i++ {
		part := rest[i]

		switch {
		case strings.HasPrefix(part, "--"):
			name := part[2:]
			// Значение флага - следующий токен, если это не другой флаг
			if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				parsed.Flags[name] = rest[i+1]
				i++
			} else {
				parsed.Switches[name] = true
			}
		case strings.HasPrefix(part, "-"):
			parsed.Switches[part[1:]] = true
		default:
			parsed.Args = append(parsed.Args, part)
		}
	}
	return parsed
}

// AutoComplete возвращает единственную команду с таким префиксом, иначе ввод без изменений
func AutoComplete(input string, names []string) string {
	parts := strings.Fields(input)
	if len(parts) != 1 {
		return input
	}

	prefix := strings.ToLower(parts[0])
	matches := lo.Filter(names, func(name string, _ int) bool {
		return strings.HasPrefix(name, prefix)
	})
	if len(matches) == 1 {
		return matches[0]
	}
	return input
}
