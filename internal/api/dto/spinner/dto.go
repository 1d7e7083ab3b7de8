package spinner

type SpinRequest struct {
	Question string   `json:"question"`
	Items    []string `json:"items"` // 2-10 уникальных вариантов
}

type Wedge struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type SpinResponse struct {
	Question     string  `json:"question"`
	Wedges       []Wedge `json:"wedges"`
	WinnerIndex  int     `json:"winner_index"`
	Winner       Wedge   `json:"winner"`
	SectionAngle float64 `json:"section_angle"` // Градусы
	Rotation     float64 `json:"rotation"`      // Итоговый угол в градусах
	DurationMs   int64   `json:"duration_ms"`
}

type PresetResponse struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}
