package reaction

type RecordRequest struct {
	Ms int `json:"ms"`
}

type Verdict struct {
	Text  string `json:"text"`
	Emoji string `json:"emoji"`
}

type ScoresResponse struct {
	Best  *int `json:"best"` // null, если результата нет
	Worst *int `json:"worst"`
}

type RecordResponse struct {
	Ms      int            `json:"ms"`
	Verdict Verdict        `json:"verdict"`
	Scores  ScoresResponse `json:"scores"`
	NewBest bool           `json:"new_best"`
}
