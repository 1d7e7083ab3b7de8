package model

import "github.com/shopspring/decimal"

// TypingStats Счётчики забега, время в секундах
type TypingStats struct {
	Duration     int
	TimeLeft     int
	TotalTyped   int
	CorrectChars int
	WordsTyped   int
	Errors       int
}

// TypingMetrics Итог забега, дробные значения округлены до сотых
type TypingMetrics struct {
	Accuracy          decimal.Decimal // Проценты
	WPM               decimal.Decimal
	SPM               decimal.Decimal // Верных символов в минуту
	Errors            int
	Elapsed           int
	WordsTyped        int
	BackgroundOpacity decimal.Decimal
}
