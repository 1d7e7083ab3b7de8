package converter

import (
	"funny_arcade/internal/api/dto/reaction"
	"funny_arcade/internal/model"
)

func ToReactionRecord(req reaction.RecordRequest) model.ReactionRecord {
	return model.ReactionRecord{Ms: req.Ms}
}

// 0 в модели означает, что результата нет
func scorePtr(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func ToScoresResponse(scores model.ReactionScores) reaction.ScoresResponse {
	return reaction.ScoresResponse{
		Best:  scorePtr(scores.Best),
		Worst: scorePtr(scores.Worst),
	}
}

func ToRecordResponse(res model.ReactionResult) reaction.RecordResponse {
	return reaction.RecordResponse{
		Ms: res.Ms,
		Verdict: reaction.Verdict{
			Text:  res.Verdict.Text,
			Emoji: res.Verdict.Emoji,
		},
		Scores:  ToScoresResponse(res.Scores),
		NewBest: res.NewBest,
	}
}
