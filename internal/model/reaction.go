package model

type Verdict struct {
	Text  string
	Emoji string
}

// ReactionScores Лучший и худший результат в мс, 0 - результата нет
type ReactionScores struct {
	Best  int
	Worst int
}

type ReactionRecord struct {
	Ms int
}

type ReactionResult struct {
	Ms      int
	Verdict Verdict
	Scores  ReactionScores
	NewBest bool
}
