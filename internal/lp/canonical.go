package lp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// snapEps — значения ближе этого к нижней границе прижимаются к ней.
const snapEps = 1e-9

// Canonical — программа в форме
//
//	min C·x  при  Aub·x <= Bub,  Aeq·x = Beq,  x >= 0.
//
// Нижние границы переносятся сдвигом, конечные верхние становятся строками Aub,
// ограничения ">=" меняют знак, максимизация превращается в минимизацию -C.
type Canonical struct {
	C   []float64
	Aub [][]float64
	Bub []float64
	Aeq [][]float64
	Beq []float64

	shift []float64
}

func Canonicalize(p *Program) (*Canonical, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := len(p.Variables)

	c := &Canonical{
		C:     make([]float64, n),
		shift: make([]float64, n),
	}
	sign := 1.0
	if p.Sense == Maximize {
		sign = -1
	}
	for j, v := range p.Variables {
		c.shift[j] = v.Lower
		c.C[j] = sign * p.Objective.Coeffs[j]
	}

	for _, con := range p.Constraints {
		row := make([]float64, n)
		copy(row, con.Coeffs)
		rhs := con.RHS - floats.Dot(con.Coeffs, c.shift)

		switch con.Op {
		case LE:
			c.Aub = append(c.Aub, row)
			c.Bub = append(c.Bub, rhs)
		case GE:
			for j := range row {
				row[j] = -row[j]
			}
			c.Aub = append(c.Aub, row)
			c.Bub = append(c.Bub, -rhs)
		case EQ:
			c.Aeq = append(c.Aeq, row)
			c.Beq = append(c.Beq, rhs)
		}
	}

	for j, v := range p.Variables {
		if math.IsInf(v.Upper, 1) {
			continue
		}
		row := make([]float64, n)
		row[j] = 1
		c.Aub = append(c.Aub, row)
		c.Bub = append(c.Bub, v.Upper-v.Lower)
	}
	return c, nil
}

func (c *Canonical) NumVars() int { return len(c.C) }

// Recover переводит решение канонической формы обратно в переменные программы.
func (c *Canonical) Recover(x []float64) []float64 {
	out := make([]float64, len(c.shift))
	for j := range out {
		v := 0.0
		if j < len(x) {
			v = x[j]
		}
		if math.Abs(v) < snapEps {
			v = 0
		}
		out[j] = v + c.shift[j]
	}
	return out
}
