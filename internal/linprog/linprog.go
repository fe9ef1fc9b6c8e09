package linprog

import (
	"context"
	"fmt"
	"time"

	"github.com/willauld/lpsimplex"

	"profitPlan/internal/lp"
)

// Коды завершения LPSimplex (как в scipy.optimize.linprog).
const (
	statusOptimal    = 0
	statusIterLimit  = 1
	statusInfeasible = 2
	statusUnbounded  = 3
)

// Solver — решатель на основе табличного симплекса lpsimplex.
type Solver struct {
	Cfg Config
}

func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{Cfg: cfg}, nil
}

func (s *Solver) Solve(ctx context.Context, prog *lp.Program) (sol lp.Solution, err error) {
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

	defer func() {
		if r := recover(); r != nil {
			sol = lp.Solution{Status: lp.NotSolved, Message: fmt.Sprint(r), Duration: time.Since(start)}
			err = nil
		}
	}()

	// Границы по умолчанию (nil) — x >= 0, что совпадает с канонической формой.
	res := lpsimplex.LPSimplex(
		can.C,
		can.Aub, can.Bub,
		can.Aeq, can.Beq,
		nil,
		lpsimplex.Callbackfunc(nil),
		false,
		s.Cfg.MaxIter,
		s.Cfg.Tolerance,
		s.Cfg.Bland,
	)

	sol = lp.Solution{
		Status:     mapStatus(res.Status),
		Iterations: res.Nitr,
		Message:    res.Message,
		Duration:   time.Since(start),
	}
	if sol.Status == lp.Optimal {
		sol.Values = can.Recover(res.X)
		sol.Objective = prog.Evaluate(sol.Values)
	}
	return sol, nil
}

func mapStatus(code int) lp.Status {
	switch code {
	case statusOptimal:
		return lp.Optimal
	case statusInfeasible:
		return lp.Infeasible
	case statusUnbounded:
		return lp.Unbounded
	default: // statusIterLimit и неизвестные коды
		return lp.NotSolved
	}
}
