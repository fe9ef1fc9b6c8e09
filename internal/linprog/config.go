package linprog

import (
	"fmt"
	"math"
)

type Config struct {
	MaxIter   int
	Tolerance float64
	// Bland — правило Бленда для выбора ведущего столбца (защита от зацикливания)
	Bland bool
}

func (c Config) Validate() error {
	if c.MaxIter <= 0 {
		return fmt.Errorf(
			"MaxIter должно быть > 0 (получено %d)",
			c.MaxIter,
		)
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance <= 0 || c.Tolerance >= 1 {
		return fmt.Errorf(
			"Tolerance должно лежать в интервале (0,1) (получено %g)",
			c.Tolerance,
		)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		MaxIter:   4000,
		Tolerance: 1e-12,
		Bland:     false,
	}
}
