package model

import (
	"time"

	"funny_arcade/internal/model"
)

const (
	MinItems = 2
	MaxItems = 10

	MinDuration = 5 * time.Second
	MaxDuration = 10 * time.Second

	// RotationsPerSecond Скорость вращения колеса
	RotationsPerSecond = 2.0
)

// DefaultColors Цвета первых секторов
var DefaultColors = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#96CEB4",
	"#FFEAA7",
	"#DDA0DD",
	"#98D8C8",
	"#F7DC6F",
	"#BB8FCE",
	"#85C1E9",
}

// GoldenAngle Шаг оттенка для цветов сверх палитры
const GoldenAngle = 137.508

var Presets = []model.SpinnerPreset{
	{
		ID:       "yes-or-no",
		Question: "Yes or No?",
		Answers:  []string{"Yes", "No", "Maybe", "Definitely not", "Absolutely"},
	},
	{
		ID:       "best-frameworks",
		Question: "What is the best framework?",
		Answers:  []string{"React", "Go Gin", "Blazor", "Next.js", "ASP.NET Core"},
	},
	{
		ID:       "what-to-eat",
		Question: "What should we eat?",
		Answers:  []string{"Pizza", "Sushi", "Burger", "Salad"},
	},
}
