package lp

import (
	"context"
	"time"
)

// Solver — внешний решатель ЛП. Ошибка означает некорректную модель;
// исход решения (в т.ч. недопустимость и неограниченность) передаётся через Status.
type Solver interface {
	Solve(ctx context.Context, prog *Program) (Solution, error)
}

type Solution struct {
	Status     Status
	Values     []float64 // по одному значению на переменную, в порядке Program.Variables
	Objective  float64
	Iterations int
	Message    string
	Duration   time.Duration
}

// Optimal сообщает, можно ли доверять Values и Objective.
func (s Solution) Optimal() bool { return s.Status == Optimal }

// Value возвращает значение переменной по индексу или 0 вне диапазона.
func (s Solution) Value(index int) float64 {
	if index < 0 || index >= len(s.Values) {
		return 0
	}
	return s.Values[index]
}
