package reaction

import "funny_arcade/internal/model"

type threshold struct {
	below   int
	verdict model.Verdict
}

var thresholds = []threshold{
	{50, model.Verdict{Text: "Superhuman!", Emoji: "🚀"}},
	{100, model.Verdict{Text: "Lightning!", Emoji: "⚡"}},
	{150, model.Verdict{Text: "Incredible!", Emoji: "🔥"}},
	{250, model.Verdict{Text: "Quick fingers!", Emoji: "👆"}},
	{350, model.Verdict{Text: "Pretty good!", Emoji: "👍"}},
	{450, model.Verdict{Text: "Not bad!", Emoji: "👌"}},
	{550, model.Verdict{Text: "Meh...", Emoji: "😐"}},
	{700, model.Verdict{Text: "Getting old?", Emoji: "🧓"}},
	{900, model.Verdict{Text: "Slowpoke!", Emoji: "🐢"}},
}

var grandpa = model.Verdict{Text: "Grandpa mode.", Emoji: "⏳"}

// Verdict Оценка времени реакции
func Verdict(ms int) model.Verdict {
	for _, t := range thresholds {
		if ms < t.below {
			return t.verdict
		}
	}
	return grandpa
}
