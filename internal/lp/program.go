package lp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var ErrMalformed = errors.New("malformed linear program")

type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

type Op int

const (
	LE Op = iota // <=
	GE           // >=
	EQ           // =
)

func (o Op) String() string {
	switch o {
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "<="
	}
}

// Variable — непрерывная переменная с границами [Lower, Upper].
// Upper = +Inf означает отсутствие верхней границы.
type Variable struct {
	Name  string
	Lower float64
	Upper float64
}

// NonNegative — переменная с границами [0, +Inf).
func NonNegative(name string) Variable {
	return Variable{Name: name, Lower: 0, Upper: math.Inf(1)}
}

type Objective struct {
	Name   string
	Coeffs []float64
}

type Constraint struct {
	Name   string
	Coeffs []float64
	Op     Op
	RHS    float64
}

type Program struct {
	Name        string
	Sense       Sense
	Variables   []Variable
	Objective   Objective
	Constraints []Constraint
}

func (p *Program) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: program is nil", ErrMalformed)
	}
	n := len(p.Variables)
	if n == 0 {
		return fmt.Errorf("%w: no variables", ErrMalformed)
	}
	for j, v := range p.Variables {
		if math.IsNaN(v.Lower) || math.IsInf(v.Lower, 0) {
			return fmt.Errorf("%w: variable %q: lower bound must be finite (got %v)", ErrMalformed, v.Name, v.Lower)
		}
		if math.IsNaN(v.Upper) || v.Upper < v.Lower {
			return fmt.Errorf("%w: variable %d %q: upper bound %v below lower bound %v", ErrMalformed, j, v.Name, v.Upper, v.Lower)
		}
	}
	if len(p.Objective.Coeffs) != n {
		return fmt.Errorf("%w: objective has %d coefficients, want %d", ErrMalformed, len(p.Objective.Coeffs), n)
	}
	if err := checkFinite(p.Objective.Coeffs); err != nil {
		return fmt.Errorf("%w: objective: %v", ErrMalformed, err)
	}
	for i, c := range p.Constraints {
		if len(c.Coeffs) != n {
			return fmt.Errorf("%w: constraint %d %q has %d coefficients, want %d", ErrMalformed, i, c.Name, len(c.Coeffs), n)
		}
		if err := checkFinite(c.Coeffs); err != nil {
			return fmt.Errorf("%w: constraint %q: %v", ErrMalformed, c.Name, err)
		}
		if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return fmt.Errorf("%w: constraint %q: rhs must be finite (got %v)", ErrMalformed, c.Name, c.RHS)
		}
		switch c.Op {
		case LE, GE, EQ:
		default:
			return fmt.Errorf("%w: constraint %q: unknown operator %d", ErrMalformed, c.Name, c.Op)
		}
	}
	return nil
}

// Evaluate — значение целевой функции в точке values; длина values должна совпадать с числом переменных.
func (p *Program) Evaluate(values []float64) float64 {
	return floats.Dot(p.Objective.Coeffs, values)
}

func checkFinite(v []float64) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("coefficient %d is not finite (%v)", i, x)
		}
	}
	return nil
}
