package report

import (
	"bytes"
	"os"

	"profitPlan/internal/lp"
)

// WriteProgram сохраняет модель в формате CPLEX LP. Файл не создаётся,
// если модель невыразима в этом формате.
func WriteProgram(path string, prog *lp.Program) error {
	var buf bytes.Buffer
	if err := lp.WriteLP(&buf, prog); err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
