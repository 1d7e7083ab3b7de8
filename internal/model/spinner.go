package model

import "time"

// Wedge Сектор колеса
type Wedge struct {
	ID    string
	Text  string
	Color string
}

type SpinnerSpin struct {
	Question string
	Items    []string
}

type SpinnerResult struct {
	Question     string
	Wedges       []Wedge
	WinnerIndex  int
	Winner       Wedge
	SectionAngle float64
	Rotation     float64
	Duration     time.Duration
}

type SpinnerPreset struct {
	ID       string
	Question string
	Answers  []string
}
