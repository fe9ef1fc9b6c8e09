package production

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoProducts     = errors.New("no products declared")
	ErrUnknownProduct = errors.New("unknown product")
)

// Product — изделие и прибыль с единицы.
type Product struct {
	ID            string
	ProfitPerUnit float64
}

// Machine — станок с фондом времени и нормой времени на единицу каждого изделия.
// Отсутствующая норма означает, что изделие станок не занимает.
type Machine struct {
	ID        string
	Available float64
	Times     map[string]float64
}

type Instance struct {
	Name     string
	Products []Product
	Machines []Machine
}

func NewInstance(name string, products []Product, machines []Machine) (*Instance, error) {
	inst := &Instance{Name: name, Products: products, Machines: machines}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if len(inst.Products) == 0 {
		return ErrNoProducts
	}

	productIDs := make([]string, len(inst.Products))
	for i, p := range inst.Products {
		productIDs[i] = p.ID
		if err := checkAmount(p.ProfitPerUnit); err != nil {
			return fmt.Errorf("product %q: profit per unit: %w", p.ID, err)
		}
	}
	if err := ValidateIDs("product", productIDs); err != nil {
		return err
	}

	machineIDs := make([]string, len(inst.Machines))
	for i, m := range inst.Machines {
		machineIDs[i] = m.ID
		if err := checkAmount(m.Available); err != nil {
			return fmt.Errorf("machine %q: available time: %w", m.ID, err)
		}
		for pid, t := range m.Times {
			if inst.ProductIndex(pid) < 0 {
				return fmt.Errorf("machine %q references product %q: %w", m.ID, pid, ErrUnknownProduct)
			}
			if err := checkAmount(t); err != nil {
				return fmt.Errorf("machine %q: time for product %q: %w", m.ID, pid, err)
			}
		}
	}
	return ValidateIDs("machine", machineIDs)
}

// ProductIndex возвращает позицию изделия в порядке объявления или -1.
func (inst *Instance) ProductIndex(id string) int {
	for i, p := range inst.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Time — норма времени изделия на станке; 0, если норма не задана.
func (inst *Instance) Time(machine int, product string) float64 {
	return inst.Machines[machine].Times[product]
}

func checkAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("must be finite (got %v)", v)
	}
	if v < 0 {
		return fmt.Errorf("must be >= 0 (got %v)", v)
	}
	return nil
}

// DefaultInstance — исходная задача: два изделия, два станка.
func DefaultInstance() *Instance {
	inst, err := NewInstance("Maximize_Profit",
		[]Product{
			{ID: "A", ProfitPerUnit: 50},
			{ID: "B", ProfitPerUnit: 40},
		},
		[]Machine{
			{ID: "M1", Available: 240, Times: map[string]float64{"A": 3, "B": 2}},
			{ID: "M2", Available: 200, Times: map[string]float64{"A": 4, "B": 3}},
		},
	)
	if err != nil {
		panic(err)
	}
	return inst
}
