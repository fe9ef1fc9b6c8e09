package plan

import (
	"profitPlan/internal/lp"
	"profitPlan/internal/production"
)

const ObjectiveName = "Total_Profit"

func VariableName(productID string) string { return "Units_of_" + productID }

func ConstraintName(machineID string) string { return machineID + "_Constraint" }

// Formulate строит ЛП максимизации прибыли: по одной неотрицательной переменной
// на изделие и по одному ограничению "<=" на станок.
func Formulate(inst *production.Instance) (*lp.Program, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	n := len(inst.Products)
	prog := &lp.Program{
		Name:        inst.Name,
		Sense:       lp.Maximize,
		Variables:   make([]lp.Variable, n),
		Objective:   lp.Objective{Name: ObjectiveName, Coeffs: make([]float64, n)},
		Constraints: make([]lp.Constraint, len(inst.Machines)),
	}
	if prog.Name == "" {
		prog.Name = "Maximize_Profit"
	}

	for j, p := range inst.Products {
		prog.Variables[j] = lp.NonNegative(VariableName(p.ID))
		prog.Objective.Coeffs[j] = p.ProfitPerUnit
	}
	for m, mach := range inst.Machines {
		coeffs := make([]float64, n)
		for j, p := range inst.Products {
			coeffs[j] = inst.Time(m, p.ID)
		}
		prog.Constraints[m] = lp.Constraint{
			Name:   ConstraintName(mach.ID),
			Coeffs: coeffs,
			Op:     lp.LE,
			RHS:    mach.Available,
		}
	}
	return prog, nil
}
