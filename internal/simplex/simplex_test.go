package simplex

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profitPlan/internal/lp"
)

func profitProgram(m1, m2 float64) *lp.Program {
	return &lp.Program{
		Name:      "Maximize_Profit",
		Sense:     lp.Maximize,
		Variables: []lp.Variable{lp.NonNegative("Units_of_A"), lp.NonNegative("Units_of_B")},
		Objective: lp.Objective{Name: "Total_Profit", Coeffs: []float64{50, 40}},
		Constraints: []lp.Constraint{
			{Name: "M1_Constraint", Coeffs: []float64{3, 2}, Op: lp.LE, RHS: m1},
			{Name: "M2_Constraint", Coeffs: []float64{4, 3}, Op: lp.LE, RHS: m2},
		},
	}
}

func newSolver(t *testing.T) *Solver {
	t.Helper()
	s, err := New(DefaultConfig())
	require.NoError(t, err)
	return s
}

func TestSolveProfitProgram(t *testing.T) {
	sol, err := newSolver(t).Solve(context.Background(), profitProgram(240, 200))
	require.NoError(t, err)

	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 0, sol.Values[0], 1e-9)
	assert.InDelta(t, 200.0/3, sol.Values[1], 1e-9)
	assert.InDelta(t, 8000.0/3, sol.Objective, 1e-7)
}

func TestSolveZeroBudget(t *testing.T) {
	sol, err := newSolver(t).Solve(context.Background(), profitProgram(0, 200))
	require.NoError(t, err)

	require.Equal(t, lp.Optimal, sol.Status)
	assert.Equal(t, []float64{0, 0}, sol.Values)
	assert.Equal(t, 0.0, sol.Objective)
}

func TestSolveMinimizeWithBounds(t *testing.T) {
	// min x + y при x + y >= 1, 0 <= x,y <= 10
	p := &lp.Program{
		Sense:     lp.Minimize,
		Variables: []lp.Variable{{Name: "x", Upper: 10}, {Name: "y", Upper: 10}},
		Objective: lp.Objective{Coeffs: []float64{1, 2}},
		Constraints: []lp.Constraint{
			{Coeffs: []float64{1, 1}, Op: lp.GE, RHS: 1},
		},
	}
	sol, err := newSolver(t).Solve(context.Background(), p)
	require.NoError(t, err)

	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 1, sol.Values[0], 1e-9)
	assert.InDelta(t, 0, sol.Values[1], 1e-9)
	assert.InDelta(t, 1, sol.Objective, 1e-9)
}

func TestSolveEquality(t *testing.T) {
	p := &lp.Program{
		Sense:     lp.Maximize,
		Variables: []lp.Variable{lp.NonNegative("x"), lp.NonNegative("y")},
		Objective: lp.Objective{Coeffs: []float64{1, 1}},
		Constraints: []lp.Constraint{
			{Coeffs: []float64{1, 0}, Op: lp.EQ, RHS: 2},
			{Coeffs: []float64{1, 1}, Op: lp.LE, RHS: 5},
		},
	}
	sol, err := newSolver(t).Solve(context.Background(), p)
	require.NoError(t, err)

	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 2, sol.Values[0], 1e-9)
	assert.InDelta(t, 3, sol.Values[1], 1e-9)
}

func TestSolveInfeasible(t *testing.T) {
	p := &lp.Program{
		Sense:     lp.Maximize,
		Variables: []lp.Variable{lp.NonNegative("x")},
		Objective: lp.Objective{Coeffs: []float64{1}},
		Constraints: []lp.Constraint{
			{Coeffs: []float64{1}, Op: lp.LE, RHS: 1},
			{Coeffs: []float64{1}, Op: lp.GE, RHS: 2},
		},
	}
	sol, err := newSolver(t).Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, lp.Infeasible, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestSolveUnbounded(t *testing.T) {
	// изделие, не занимающее ни один станок, с положительной прибылью
	p := profitProgram(240, 200)
	p.Variables = append(p.Variables, lp.NonNegative("Units_of_C"))
	p.Objective.Coeffs = append(p.Objective.Coeffs, 10)
	for i := range p.Constraints {
		p.Constraints[i].Coeffs = append(p.Constraints[i].Coeffs, 0)
	}

	sol, err := newSolver(t).Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, lp.Unbounded, sol.Status)
}

func TestSolveUnconstrainedZeroProfit(t *testing.T) {
	p := profitProgram(240, 200)
	p.Variables = append(p.Variables, lp.NonNegative("Units_of_C"))
	p.Objective.Coeffs = append(p.Objective.Coeffs, 0)
	for i := range p.Constraints {
		p.Constraints[i].Coeffs = append(p.Constraints[i].Coeffs, 0)
	}

	sol, err := newSolver(t).Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.Equal(t, 0.0, sol.Values[2])
	assert.InDelta(t, 8000.0/3, sol.Objective, 1e-7)
}

func TestSolveMalformed(t *testing.T) {
	p := profitProgram(240, 200)
	p.Constraints[0].RHS = math.NaN()

	_, err := newSolver(t).Solve(context.Background(), p)
	assert.ErrorIs(t, err, lp.ErrMalformed)
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSolver(t).Solve(ctx, profitProgram(240, 200))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{Tolerance: -1}.Validate())
	assert.Error(t, Config{Tolerance: math.NaN()}.Validate())

	_, err := New(Config{Tolerance: 2})
	assert.Error(t, err)
}
