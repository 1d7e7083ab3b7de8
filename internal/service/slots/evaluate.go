package slots

import (
	"funny_arcade/internal/model"
	servModel "funny_arcade/internal/service/slots/model"
	"funny_arcade/pkg/rng"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// cell Координаты клетки (строка, столбец)
type cell [2]int

// Evaluation Классификация поля до расчёта выплаты
type Evaluation struct {
	IsJackpot    bool
	MatchedLines int
}

// GenerateGrid генерирует поле режима, каждая клетка выбирается равновероятно из набора символов
func GenerateGrid(src rng.Source, mode model.GameMode) (model.ReelGrid, error) {
	m, err := servModel.Lookup(mode)
	if err != nil {
		return nil, err
	}

	grid := make(model.ReelGrid, m.Rows)
	for r := 0; r < m.Rows; r++ {
		grid[r] = make([]string, m.Cols)
		for c := 0; c < m.Cols; c++ {
			grid[r][c] = m.Symbols[src.IntN(len(m.Symbols))]
		}
	}
	return grid, nil
}

// paylines Линии, которые проверяются в режиме
func paylines(mode model.GameMode, rows, cols int) [][]cell {
	var lines [][]cell

	rowLine := func(r int) []cell {
		line := make([]cell, cols)
		for c := 0; c < cols; c++ {
			line[c] = cell{r, c}
		}
		return line
	}
	colLine := func(c int) []cell {
		line := make([]cell, rows)
		for r := 0; r < rows; r++ {
			line[r] = cell{r, c}
		}
		return line
	}

	switch mode {
	case model.ModeGrid3x3:
		// 3 строки, 3 столбца и 2 диагонали
		for r := 0; r < rows; r++ {
			lines = append(lines, rowLine(r))
		}
		for c := 0; c < cols; c++ {
			lines = append(lines, colLine(c))
		}
		lines = append(lines,
			[]cell{{0, 0}, {1, 1}, {2, 2}},
			[]cell{{0, 2}, {1, 1}, {2, 0}},
		)
	case model.ModeRetro:
		lines = append(lines, colLine(0))
	default:
		lines = append(lines, rowLine(0))
	}
	return lines
}

func lineMatches(grid model.ReelGrid, line []cell) bool {
	first := grid[line[0][0]][line[0][1]]
	return lo.EveryBy(line, func(p cell) bool {
		return grid[p[0]][p[1]] == first
	})
}

func checkShape(m servModel.Mode, grid model.ReelGrid) error {
	if len(grid) != m.Rows {
		return model.ErrGridShape
	}
	for _, row := range grid {
		if len(row) != m.Cols {
			return model.ErrGridShape
		}
	}
	return nil
}

// Evaluate проверяет поле по правилам режима
func Evaluate(mode model.GameMode, grid model.ReelGrid) (Evaluation, error) {
	m, err := servModel.Lookup(mode)
	if err != nil {
		return Evaluation{}, err
	}
	if err := checkShape(m, grid); err != nil {
		return Evaluation{}, err
	}

	matched := lo.CountBy(paylines(mode, m.Rows, m.Cols), func(line []cell) bool {
		return lineMatches(grid, line)
	})

	return Evaluation{
		IsJackpot:    matched > 0,
		MatchedLines: matched,
	}, nil
}

func coins(mult decimal.Decimal, spinCost int) int {
	won := mult.Mul(decimal.NewFromInt(int64(spinCost))).Floor().IntPart()
	if won < 0 {
		return 0
	}
	return int(won)
}

// Payout считает выплату по результату оценки
func Payout(mode model.GameMode, grid model.ReelGrid, ev Evaluation, spinCost int) model.SpinOutcome {
	out := model.SpinOutcome{
		IsJackpot:    ev.IsJackpot,
		Kind:         model.WinNone,
		MatchedLines: ev.MatchedLines,
		Multiplier:   decimal.Zero,
	}

	// В grid3x3 выплата считается по числу совпавших линий
	if mode == model.ModeGrid3x3 {
		switch {
		case ev.MatchedLines == 1:
			out.Kind = model.WinLine
			out.Multiplier = servModel.NormalMultiplier
		case ev.MatchedLines >= 2:
			// Без ограничения сверху
			out.Kind = model.WinLine
			out.Multiplier = servModel.DualMultiplier.Mul(decimal.NewFromInt(int64(ev.MatchedLines)))
		default:
			return out
		}
		out.CoinsWon = coins(out.Multiplier, spinCost)
		return out
	}

	if ev.IsJackpot {
		out.Kind = model.WinJackpot
		out.Multiplier = servModel.JackpotMultipliers[mode]
		out.CoinsWon = coins(out.Multiplier, spinCost)
		return out
	}

	// Выплата за символ первой клетки, если какая-то строка целиком из него
	first := grid[0][0]
	fruitWin := lo.SomeBy([][]string(grid), func(row []string) bool {
		if len(row) > 1 {
			return lo.EveryBy(row, func(s string) bool { return s == first })
		}
		return row[0] == first
	})
	if mult, ok := servModel.FruitMultipliers[first]; ok && fruitWin {
		out.Kind = model.WinSymbol
		out.Multiplier = mult
		out.CoinsWon = coins(mult, spinCost)
	}
	return out
}

// SpinOnce генерирует поле и сразу считает результат
func SpinOnce(src rng.Source, mode model.GameMode, spinCost int) (model.ReelGrid, model.SpinOutcome, error) {
	grid, err := GenerateGrid(src, mode)
	if err != nil {
		return nil, model.SpinOutcome{}, err
	}
	ev, err := Evaluate(mode, grid)
	if err != nil {
		return nil, model.SpinOutcome{}, err
	}
	return grid, Payout(mode, grid, ev, spinCost), nil
}
