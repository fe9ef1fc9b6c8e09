package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"profitPlan/internal/production"
)

const (
	BackendSimplex = "simplex"
	BackendLinprog = "linprog"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Solver struct {
		Backend   string
		Tolerance float64 // 0 — значение по умолчанию выбранного решателя
		MaxIter   int     `mapstructure:"max_iter"`
		Bland     bool
	} `mapstructure:"solver"`

	Output struct {
		CSV     string
		XLSX    string
		LP      string
		Metrics string
	} `mapstructure:"output"`

	Problem Problem `mapstructure:"problem"`
}

// Problem — описание задачи в файле конфигурации. Пустой список изделий
// означает исходную задачу production.DefaultInstance.
type Problem struct {
	Name     string
	Products []ProductSpec
	Machines []MachineSpec
}

type ProductSpec struct {
	ID     string
	Profit float64
}

type MachineSpec struct {
	ID        string
	Available float64
	Times     []TimeSpec
}

type TimeSpec struct {
	Product string
	Time    float64
}

// флаги командной строки -> ключи конфигурации
var flagKeys = map[string]string{
	"env":          "app.env",
	"solver":       "solver.backend",
	"tolerance":    "solver.tolerance",
	"out":          "output.csv",
	"xlsx":         "output.xlsx",
	"lp-file":      "output.lp",
	"metrics-file": "output.metrics",
}

// Load читает необязательный YAML-файл, переменные окружения APP_* и флаги.
// Приоритет: флаги > окружение > файл > значения по умолчанию.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("app.env", "prod")
	v.SetDefault("solver.backend", BackendSimplex)
	v.SetDefault("solver.tolerance", 0.0)
	v.SetDefault("solver.max_iter", 0)
	v.SetDefault("solver.bland", false)
	v.SetDefault("output.csv", "optimization_results.csv")
	v.SetDefault("output.xlsx", "")
	v.SetDefault("output.lp", "")
	v.SetDefault("output.metrics", "")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, err
			}
		}
	}

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// Validate проверяет числовые параметры и пути. Имя решателя сверяется
// со списком зарегистрированных решателей при их выборе.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Solver.Backend) == "" {
		return fmt.Errorf("solver.backend не задан")
	}
	if math.IsNaN(c.Solver.Tolerance) || math.IsInf(c.Solver.Tolerance, 0) || c.Solver.Tolerance < 0 {
		return fmt.Errorf(
			"solver.tolerance должно быть конечным и >= 0 (получено %g)",
			c.Solver.Tolerance,
		)
	}
	if c.Solver.MaxIter < 0 {
		return fmt.Errorf(
			"solver.max_iter должно быть >= 0 (получено %d)",
			c.Solver.MaxIter,
		)
	}
	if strings.TrimSpace(c.Output.CSV) == "" {
		return fmt.Errorf("output.csv не задан")
	}
	return nil
}

// Instance строит задачу из секции problem.
func (c Config) Instance() (*production.Instance, error) {
	p := c.Problem
	if len(p.Products) == 0 {
		if len(p.Machines) > 0 {
			return nil, production.ErrNoProducts
		}
		return production.DefaultInstance(), nil
	}

	products := make([]production.Product, len(p.Products))
	for i, ps := range p.Products {
		products[i] = production.Product{ID: ps.ID, ProfitPerUnit: ps.Profit}
	}

	machines := make([]production.Machine, len(p.Machines))
	for i, ms := range p.Machines {
		times := make(map[string]float64, len(ms.Times))
		for _, t := range ms.Times {
			if _, dup := times[t.Product]; dup {
				return nil, fmt.Errorf("machine %q: duplicate time for product %q", ms.ID, t.Product)
			}
			times[t.Product] = t.Time
		}
		machines[i] = production.Machine{ID: ms.ID, Available: ms.Available, Times: times}
	}

	name := p.Name
	if name == "" {
		name = "Maximize_Profit"
	}
	return production.NewInstance(name, products, machines)
}
