package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"profitPlan/internal/lp"
	"profitPlan/internal/production"
)

// Recorder принимает результаты решения для метрик.
type Recorder interface {
	ObserveSolve(backend string, status lp.Status, d time.Duration, objective float64)
	ObserveUsage(usage []production.Usage)
}

type Plan struct {
	Instance *production.Instance
	Backend  string
	Status   lp.Status
	Message  string

	// Units и TotalProfit заполняются только при Status == lp.Optimal.
	Units       []float64
	TotalProfit float64
	Usage       []production.Usage

	SolveTime time.Duration
}

func (p Plan) Optimal() bool { return p.Status == lp.Optimal }

// UnitsOf — оптимальный объём выпуска изделия; 0, если плана нет.
func (p Plan) UnitsOf(productID string) float64 {
	i := p.Instance.ProductIndex(productID)
	if i < 0 || i >= len(p.Units) {
		return 0
	}
	return p.Units[i]
}

type Runner struct {
	Solver  lp.Solver
	Backend string
	Log     *slog.Logger
	Metrics Recorder // nil — без метрик

	// FeasibilityTol — допуск проверки плана, возвращённого решателем
	FeasibilityTol float64
}

// Run выполняет конвейер один раз: проверка данных -> формулировка -> решение.
// Неоптимальный исход решателя не является ошибкой и возвращается в Plan.Status.
func (r Runner) Run(ctx context.Context, inst *production.Instance) (Plan, error) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	if r.Solver == nil {
		return Plan{}, fmt.Errorf("solver is not configured")
	}

	prog, err := Formulate(inst)
	if err != nil {
		return Plan{}, fmt.Errorf("formulate: %w", err)
	}
	log.Debug("program formulated",
		"name", prog.Name,
		"variables", len(prog.Variables),
		"constraints", len(prog.Constraints),
	)

	start := time.Now()
	sol, err := r.Solver.Solve(ctx, prog)
	dur := time.Since(start)
	if err != nil && ctx.Err() != nil {
		return Plan{}, fmt.Errorf("solve cancelled: %w", err)
	}
	if err != nil {
		return Plan{}, fmt.Errorf("solve: %w", err)
	}

	p := Plan{
		Instance:  inst,
		Backend:   r.Backend,
		Status:    sol.Status,
		Message:   sol.Message,
		SolveTime: dur,
	}

	if sol.Optimal() {
		if len(sol.Values) != len(inst.Products) {
			return Plan{}, fmt.Errorf("solver returned %d values (want %d)", len(sol.Values), len(inst.Products))
		}
		eval, err := production.NewEvaluator(inst)
		if err != nil {
			return Plan{}, err
		}
		tol := r.FeasibilityTol
		if tol <= 0 {
			tol = 1e-6
		}
		if err := eval.Feasible(sol.Values, tol); err != nil {
			return Plan{}, fmt.Errorf("solver returned an infeasible plan: %w", err)
		}
		p.Units = sol.Values
		p.TotalProfit = sol.Objective
		if p.Usage, err = eval.Usage(sol.Values); err != nil {
			return Plan{}, err
		}
		log.Info("plan solved",
			"backend", r.Backend,
			"status", sol.Status.String(),
			"total_profit", p.TotalProfit,
			"duration", dur,
		)
	} else {
		log.Warn("solver did not find an optimal plan",
			"backend", r.Backend,
			"status", sol.Status.String(),
			"message", sol.Message,
		)
	}

	if r.Metrics != nil {
		r.Metrics.ObserveSolve(r.Backend, p.Status, dur, p.TotalProfit)
		if p.Optimal() {
			r.Metrics.ObserveUsage(p.Usage)
		}
	}
	return p, nil
}
