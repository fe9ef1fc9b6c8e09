package simplex

import (
	"fmt"
	"math"
)

type Config struct {
	// Tolerance — допуск симплекс-метода при сравнении с нулём
	Tolerance float64
}

func DefaultConfig() Config {
	return Config{
		Tolerance: 1e-10,
	}
}

func (c Config) Validate() error {
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 || c.Tolerance >= 1 {
		return fmt.Errorf(
			"Tolerance должно лежать в интервале [0,1) (получено %g)",
			c.Tolerance,
		)
	}
	return nil
}
