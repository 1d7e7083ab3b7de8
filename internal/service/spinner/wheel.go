package spinner

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"funny_arcade/internal/model"
	servModel "funny_arcade/internal/service/spinner/model"
	"funny_arcade/pkg/rng"
)

// Colors возвращает цвета для count секторов
func Colors(count int) []string {
	if count <= len(servModel.DefaultColors) {
		return append([]string(nil), servModel.DefaultColors[:max(count, 0)]...)
	}

	out := append([]string(nil), servModel.DefaultColors...)
	for i := len(servModel.DefaultColors); i < count; i++ {
		hue := math.Mod(float64(i)*servModel.GoldenAngle, 360)
		out = append(out, fmt.Sprintf("hsl(%s, 70%%, 60%%)", strconv.FormatFloat(hue, 'f', -1, 64)))
	}
	return out
}

// Wedges строит секторы колеса
func Wedges(items []string) []model.Wedge {
	colors := Colors(len(items))
	wedges := make([]model.Wedge, len(items))
	for i, text := range items {
		wedges[i] = model.Wedge{
			ID:    "item-" + strconv.Itoa(i),
			Text:  text,
			Color: colors[i],
		}
	}
	return wedges
}

// SectionAngle Угол одного сектора в градусах
func SectionAngle(n int) float64 {
	return 360 / float64(n)
}

// Rotation Итоговый угол: целые обороты по длительности плюс центр выигравшего сектора
func Rotation(index, n int, duration time.Duration) float64 {
	section := SectionAngle(n)
	center := float64(index)*section + section/2
	fullTurns := math.Floor(duration.Seconds() * servModel.RotationsPerSecond)
	return fullTurns*360 + center
}

// WedgeAt Индекс сектора, на который указывает угол
func WedgeAt(rotation float64, n int) int {
	angle := math.Mod(rotation, 360)
	if angle < 0 {
		angle += 360
	}
	idx := int(angle / SectionAngle(n))
	return min(idx, n-1)
}

// Pick выбирает сектор и длительность вращения
func Pick(src rng.Source, n int) (int, time.Duration) {
	index := src.IntN(n)
	span := servModel.MaxDuration - servModel.MinDuration
	duration := servModel.MinDuration + time.Duration(src.Float64()*float64(span))
	return index, duration
}
