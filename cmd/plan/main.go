package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"profitPlan/internal/config"
	"profitPlan/internal/infra/logger"
	"profitPlan/internal/linprog"
	"profitPlan/internal/lp"
	"profitPlan/internal/simplex"
)

// Коды завершения
const (
	exitOK         = 0
	exitFatal      = 1
	exitBadInput   = 2
	exitNotOptimal = 3
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// Фабрики решателей

type solverFactory func(cfg config.Config) (lp.Solver, error)

func newSimplexFactory() solverFactory {
	return func(cfg config.Config) (lp.Solver, error) {
		sc := simplex.DefaultConfig()
		if cfg.Solver.Tolerance > 0 {
			sc.Tolerance = cfg.Solver.Tolerance
		}
		return simplex.New(sc)
	}
}

func newLinprogFactory() solverFactory {
	return func(cfg config.Config) (lp.Solver, error) {
		lc := linprog.DefaultConfig()
		if cfg.Solver.Tolerance > 0 {
			lc.Tolerance = cfg.Solver.Tolerance
		}
		if cfg.Solver.MaxIter > 0 {
			lc.MaxIter = cfg.Solver.MaxIter
		}
		lc.Bland = cfg.Solver.Bland
		return linprog.New(lc)
	}
}

var available = map[string]solverFactory{
	config.BackendSimplex: newSimplexFactory(),
	config.BackendLinprog: newLinprogFactory(),
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Оптимальный план выпуска продукции при ограниченном фонде времени станков",
		Long: "Формулирует задачу линейного программирования максимизации прибыли, " +
			"решает её внешним решателем, печатает результат и сохраняет его в CSV.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath, cmd.Flags())
			if err != nil {
				return &exitError{code: exitBadInput, err: err}
			}
			log := logger.New(cfg.App.Env, stderr)
			return run(cmd.Context(), cfg, stdout, log)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "путь к YAML-файлу конфигурации (необязательно)")
	f.String("env", "prod", "окружение: dev включает отладочные логи")
	f.String("solver", config.BackendSimplex, fmt.Sprintf("решатель ЛП: %v", keys(available)))
	f.Float64("tolerance", 0, "допуск решателя; 0 — значение по умолчанию")
	f.String("out", "optimization_results.csv", "путь к выходному CSV-файлу")
	f.String("xlsx", "", "путь к выходному XLSX-файлу (необязательно)")
	f.String("lp-file", "", "выгрузить модель в формате CPLEX LP (необязательно)")
	f.String("metrics-file", "", "сохранить метрики Prometheus в textfile (необязательно)")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(os.Stderr, "Ошибка:", ee.err)
		}
		stop()
		os.Exit(ee.code)
	}
	// ошибки разбора флагов
	fmt.Fprintln(os.Stderr, "Ошибка:", err)
	stop()
	os.Exit(exitBadInput)
}

func keys(m map[string]solverFactory) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
