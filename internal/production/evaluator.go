package production

import "fmt"

// Usage — загрузка одного станка при заданном плане.
type Usage struct {
	Machine     string
	Used        float64
	Available   float64
	Slack       float64
	Utilization float64 // Used/Available; 0 при нулевом фонде
}

type Evaluator struct {
	inst *Instance
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst}, nil
}

func (e *Evaluator) check(units []float64) error {
	if e == nil || e.inst == nil {
		return fmt.Errorf("nil evaluator")
	}
	if len(units) != len(e.inst.Products) {
		return fmt.Errorf("plan length must be %d (got %d)", len(e.inst.Products), len(units))
	}
	return nil
}

// Profit — суммарная прибыль плана.
func (e *Evaluator) Profit(units []float64) (float64, error) {
	if err := e.check(units); err != nil {
		return 0, err
	}
	total := 0.0
	for i, p := range e.inst.Products {
		total += units[i] * p.ProfitPerUnit
	}
	return total, nil
}

func (e *Evaluator) Usage(units []float64) ([]Usage, error) {
	if err := e.check(units); err != nil {
		return nil, err
	}
	out := make([]Usage, len(e.inst.Machines))
	for m, mach := range e.inst.Machines {
		used := 0.0
		for i, p := range e.inst.Products {
			used += e.inst.Time(m, p.ID) * units[i]
		}
		u := Usage{
			Machine:   mach.ID,
			Used:      used,
			Available: mach.Available,
			Slack:     mach.Available - used,
		}
		if mach.Available > 0 {
			u.Utilization = used / mach.Available
		}
		out[m] = u
	}
	return out, nil
}

// Feasible проверяет неотрицательность плана и фонды станков с допуском tol.
func (e *Evaluator) Feasible(units []float64, tol float64) error {
	usage, err := e.Usage(units)
	if err != nil {
		return err
	}
	for i, v := range units {
		if v < -tol {
			return fmt.Errorf("product %q: negative quantity %v", e.inst.Products[i].ID, v)
		}
	}
	for _, u := range usage {
		if u.Slack < -tol {
			return fmt.Errorf("machine %q over budget: used %v of %v", u.Machine, u.Used, u.Available)
		}
	}
	return nil
}
