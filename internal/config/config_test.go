package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profitPlan/internal/production"
)

const problemYAML = `
app:
  env: dev
solver:
  backend: linprog
  max_iter: 100
output:
  csv: out/results.csv
problem:
  name: Three_Products
  products:
    - id: A
      profit: 50
    - id: B
      profit: 40
    - id: C
      profit: 10
  machines:
    - id: M1
      available: 240
      times:
        - product: A
          time: 3
        - product: B
          time: 2
    - id: M2
      available: 200
      times:
        - product: C
          time: 1
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("", nil)
	require.NoError(t, err)

	require.NoError(t, c.Validate())
	assert.Equal(t, "prod", c.App.Env)
	assert.Equal(t, BackendSimplex, c.Solver.Backend)
	assert.Equal(t, "optimization_results.csv", c.Output.CSV)
	assert.Empty(t, c.Output.XLSX)

	inst, err := c.Instance()
	require.NoError(t, err)
	assert.Equal(t, production.DefaultInstance(), inst)
}

func TestLoadFile(t *testing.T) {
	c, err := Load(writeFile(t, problemYAML), nil)
	require.NoError(t, err)

	require.NoError(t, c.Validate())
	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, BackendLinprog, c.Solver.Backend)
	assert.Equal(t, 100, c.Solver.MaxIter)
	assert.Equal(t, "out/results.csv", c.Output.CSV)

	inst, err := c.Instance()
	require.NoError(t, err)
	assert.Equal(t, "Three_Products", inst.Name)
	require.Len(t, inst.Products, 3)
	assert.Equal(t, "C", inst.Products[2].ID)
	assert.Equal(t, 2.0, inst.Time(0, "B"))
	assert.Equal(t, 0.0, inst.Time(1, "A"))
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	fs := pflag.NewFlagSet("plan", pflag.ContinueOnError)
	fs.String("solver", BackendSimplex, "")
	fs.String("out", "optimization_results.csv", "")
	require.NoError(t, fs.Parse([]string{"--out", "flag.csv"}))

	c, err := Load(writeFile(t, problemYAML), fs)
	require.NoError(t, err)

	assert.Equal(t, "flag.csv", c.Output.CSV)
	// не заданный явно флаг не перекрывает файл
	assert.Equal(t, BackendLinprog, c.Solver.Backend)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("APP_SOLVER_BACKEND", BackendLinprog)

	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, BackendLinprog, c.Solver.Backend)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c, err := Load("", nil)
	require.NoError(t, err)

	bad := c
	bad.Solver.Backend = ""
	assert.Error(t, bad.Validate())

	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		bad = c
		bad.Solver.Tolerance = tol
		assert.Error(t, bad.Validate(), tol)
	}

	bad = c
	bad.Output.CSV = " "
	assert.Error(t, bad.Validate())
}

func TestInstanceUnknownProduct(t *testing.T) {
	c := Config{Problem: Problem{
		Products: []ProductSpec{{ID: "A", Profit: 1}},
		Machines: []MachineSpec{{ID: "M1", Available: 1, Times: []TimeSpec{{Product: "B", Time: 1}}}},
	}}
	_, err := c.Instance()
	assert.ErrorIs(t, err, production.ErrUnknownProduct)
}

func TestInstanceDuplicateTime(t *testing.T) {
	c := Config{Problem: Problem{
		Products: []ProductSpec{{ID: "A", Profit: 1}},
		Machines: []MachineSpec{{ID: "M1", Available: 1, Times: []TimeSpec{{Product: "A", Time: 1}, {Product: "A", Time: 2}}}},
	}}
	_, err := c.Instance()
	assert.ErrorContains(t, err, "duplicate time")
}

func TestInstanceMachinesWithoutProducts(t *testing.T) {
	c := Config{Problem: Problem{Machines: []MachineSpec{{ID: "M1"}}}}
	_, err := c.Instance()
	assert.ErrorIs(t, err, production.ErrNoProducts)
}

func TestExampleConfigMatchesDefaultProblem(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "config", "example.yaml"), nil)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	inst, err := c.Instance()
	require.NoError(t, err)
	assert.Equal(t, production.DefaultInstance(), inst)
}
