package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"

	"profitPlan/internal/lp"
)

// Solver — решатель на основе симплекс-метода gonum (стандартная форма Ax = b, x >= 0).
type Solver struct {
	Cfg Config
}

// New возвращает новый решатель с валидацией конфигурации.
// Используется в фабриках.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{Cfg: cfg}, nil
}

// Solve приводит программу к канонической форме, добавляет слабые переменные
// и передаёт задачу в gonum.
func (s *Solver) Solve(ctx context.Context, prog *lp.Program) (lp.Solution, error) {
	start := time.Now()

	if err := s.Cfg.Validate(); err != nil {
		return lp.Solution{}, err
	}
	can, err := lp.Canonicalize(prog)
	if err != nil {
		return lp.Solution{}, err
	}
	if err := ctx.Err(); err != nil {
		return lp.Solution{}, err
	}

	status, x, msg := s.solveCanonical(can)
	sol := lp.Solution{
		Status:   status,
		Message:  msg,
		Duration: time.Since(start),
	}
	if status == lp.Optimal {
		sol.Values = can.Recover(x)
		sol.Objective = prog.Evaluate(sol.Values)
	}
	return sol, nil
}

type row struct {
	coeffs []float64
	rhs    float64
	slack  bool // строка-неравенство получает собственную слабую переменную
}

func (s *Solver) solveCanonical(can *lp.Canonical) (status lp.Status, x []float64, msg string) {
	tol := s.Cfg.Tolerance
	n := can.NumVars()
	x = make([]float64, n)

	// Строки без структурных коэффициентов решаются сразу: gonum их не принимает.
	var rows []row
	for i, a := range can.Aub {
		if isZero(a) {
			if can.Bub[i] < -tol {
				return lp.Infeasible, nil, fmt.Sprintf("inequality row %d: 0 <= %g", i, can.Bub[i])
			}
			continue
		}
		rows = append(rows, row{coeffs: a, rhs: can.Bub[i], slack: true})
	}
	for i, a := range can.Aeq {
		if isZero(a) {
			if math.Abs(can.Beq[i]) > tol {
				return lp.Infeasible, nil, fmt.Sprintf("equality row %d: 0 = %g", i, can.Beq[i])
			}
			continue
		}
		rows = append(rows, row{coeffs: a, rhs: can.Beq[i]})
	}

	// Переменные, не входящие ни в одну строку, остаются на нуле,
	// если только они не улучшают цель бесконечно.
	var active []int
	for j := 0; j < n; j++ {
		used := false
		for _, r := range rows {
			if r.coeffs[j] != 0 {
				used = true
				break
			}
		}
		if used {
			active = append(active, j)
			continue
		}
		if can.C[j] < 0 {
			return lp.Unbounded, nil, fmt.Sprintf("variable %d is unconstrained and improves the objective", j)
		}
	}
	if len(rows) == 0 {
		return lp.Optimal, x, ""
	}

	slacks := 0
	for _, r := range rows {
		if r.slack {
			slacks++
		}
	}
	m, cols := len(rows), len(active)+slacks
	if m > cols {
		return lp.NotSolved, nil, fmt.Sprintf("%d rows exceed %d columns", m, cols)
	}

	A := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	c := make([]float64, cols)
	for k, j := range active {
		c[k] = can.C[j]
	}
	next := len(active)
	for i, r := range rows {
		for k, j := range active {
			A.Set(i, k, r.coeffs[j])
		}
		if r.slack {
			A.Set(i, next, 1)
			next++
		}
		b[i] = r.rhs
		if b[i] < 0 {
			for k := 0; k < cols; k++ {
				A.Set(i, k, -A.At(i, k))
			}
			b[i] = -b[i]
		}
	}

	defer func() {
		if r := recover(); r != nil {
			status, x, msg = lp.NotSolved, nil, fmt.Sprint(r)
		}
	}()

	_, xs, err := golp.Simplex(c, A, b, tol, nil)
	switch {
	case errors.Is(err, golp.ErrInfeasible):
		return lp.Infeasible, nil, err.Error()
	case errors.Is(err, golp.ErrUnbounded):
		return lp.Unbounded, nil, err.Error()
	case err != nil:
		return lp.NotSolved, nil, err.Error()
	}
	for k, j := range active {
		x[j] = xs[k]
	}
	return lp.Optimal, x, ""
}

func isZero(a []float64) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}
