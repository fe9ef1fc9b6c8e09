package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"profitPlan/internal/config"
	"profitPlan/internal/lp"
	"profitPlan/internal/metrics"
	"profitPlan/internal/plan"
	"profitPlan/internal/report"
)

// run выполняет конвейер ровно один раз: модель -> решение -> отчёт.
func run(ctx context.Context, cfg config.Config, stdout io.Writer, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return &exitError{code: exitBadInput, err: fmt.Errorf("конфигурация: %w", err)}
	}

	inst, err := cfg.Instance()
	if err != nil {
		return &exitError{code: exitBadInput, err: fmt.Errorf("входные данные: %w", err)}
	}

	factory, ok := available[cfg.Solver.Backend]
	if !ok {
		return &exitError{code: exitBadInput, err: fmt.Errorf("неизвестный решатель %q; доступные: %v", cfg.Solver.Backend, keys(available))}
	}
	solver, err := factory(cfg)
	if err != nil {
		return &exitError{code: exitBadInput, err: fmt.Errorf("конфигурация решателя %s: %w", cfg.Solver.Backend, err)}
	}

	if cfg.Output.LP != "" {
		prog, err := plan.Formulate(inst)
		if err != nil {
			return &exitError{code: exitBadInput, err: err}
		}
		if err := report.WriteProgram(cfg.Output.LP, prog); err != nil {
			code := exitFatal
			if errors.Is(err, lp.ErrBadName) {
				code = exitBadInput
			}
			return &exitError{code: code, err: fmt.Errorf("запись модели: %w", err)}
		}
		log.Info("program written", "path", cfg.Output.LP)
	}

	m := metrics.New()
	runner := plan.Runner{
		Solver:  solver,
		Backend: cfg.Solver.Backend,
		Log:     log,
		Metrics: m,
	}
	p, err := runner.Run(ctx, inst)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}

	if err := report.Print(stdout, p); err != nil {
		return &exitError{code: exitFatal, err: err}
	}

	rows := report.Rows(p)
	if err := report.WriteCSV(cfg.Output.CSV, rows); err != nil {
		return &exitError{code: exitFatal, err: fmt.Errorf("запись CSV: %w", err)}
	}
	log.Info("results saved", "path", cfg.Output.CSV, "rows", len(rows))

	if cfg.Output.XLSX != "" {
		if err := report.WriteXLSX(cfg.Output.XLSX, rows); err != nil {
			return &exitError{code: exitFatal, err: fmt.Errorf("запись XLSX: %w", err)}
		}
		log.Info("results saved", "path", cfg.Output.XLSX, "rows", len(rows))
	}

	if cfg.Output.Metrics != "" {
		if err := m.WriteTextfile(cfg.Output.Metrics); err != nil {
			return &exitError{code: exitFatal, err: fmt.Errorf("запись метрик: %w", err)}
		}
	}

	if !p.Optimal() {
		return &exitError{code: exitNotOptimal}
	}
	return nil
}
