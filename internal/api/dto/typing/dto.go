package typing

type MetricsRequest struct {
	Duration     int `json:"duration"`  // Секунды
	TimeLeft     int `json:"time_left"` // Секунды
	TotalTyped   int `json:"total_typed"`
	CorrectChars int `json:"correct_chars"`
	WordsTyped   int `json:"words_typed"`
	Errors       int `json:"errors"`
}

type MetricsResponse struct {
	Accuracy          float64 `json:"accuracy"`
	WPM               float64 `json:"wpm"`
	SPM               float64 `json:"spm"`
	Errors            int     `json:"errors"`
	Duration          int     `json:"duration"` // Прошедшее время, секунды
	WordsTyped        int     `json:"words_typed"`
	BackgroundOpacity float64 `json:"background_opacity"`
}
