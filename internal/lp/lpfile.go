package lp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrBadName: имя переменной или ограничения непредставимо в формате LP.
var ErrBadName = errors.New("invalid LP identifier")

// допустимые в именах CPLEX LP символы помимо букв и цифр
const nameSymbols = "!\"#$%&()/,.;?@_`'{}|~"

const maxNameLen = 255

// WriteLP выгружает программу в текстовом формате CPLEX LP.
func WriteLP(w io.Writer, p *Program) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := checkNames(p); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\\* %s *\\\n", p.Name)
	fmt.Fprintln(bw, p.Sense.String())
	fmt.Fprintf(bw, "%s: %s\n", label(p.Objective.Name, "obj"), expr(p.Objective.Coeffs, p.Variables))

	fmt.Fprintln(bw, "Subject To")
	for i, c := range p.Constraints {
		fmt.Fprintf(bw, "%s: %s %s %s\n",
			label(c.Name, "c"+strconv.Itoa(i+1)),
			expr(c.Coeffs, p.Variables), c.Op, num(c.RHS))
	}

	var bounds []string
	for _, v := range p.Variables {
		switch {
		case v.Lower == 0 && math.IsInf(v.Upper, 1):
			// по умолчанию
		case math.IsInf(v.Upper, 1):
			bounds = append(bounds, fmt.Sprintf("%s >= %s", v.Name, num(v.Lower)))
		case v.Lower == v.Upper:
			bounds = append(bounds, fmt.Sprintf("%s = %s", v.Name, num(v.Lower)))
		default:
			bounds = append(bounds, fmt.Sprintf("%s <= %s <= %s", num(v.Lower), v.Name, num(v.Upper)))
		}
	}
	if len(bounds) > 0 {
		fmt.Fprintln(bw, "Bounds")
		for _, b := range bounds {
			fmt.Fprintln(bw, b)
		}
	}
	fmt.Fprintln(bw, "End")
	return bw.Flush()
}

func checkNames(p *Program) error {
	if p.Objective.Name != "" && !validName(p.Objective.Name) {
		return fmt.Errorf("%w: objective %q", ErrBadName, p.Objective.Name)
	}
	for _, v := range p.Variables {
		if !validName(v.Name) {
			return fmt.Errorf("%w: variable %q", ErrBadName, v.Name)
		}
	}
	for _, c := range p.Constraints {
		if c.Name != "" && !validName(c.Name) {
			return fmt.Errorf("%w: constraint %q", ErrBadName, c.Name)
		}
	}
	return nil
}

// validName: непустое имя не длиннее 255 символов из букв, цифр и nameSymbols,
// не начинающееся с цифры или точки.
func validName(name string) bool {
	if name == "" || len(name) > maxNameLen {
		return false
	}
	if c := name[0]; c == '.' || (c >= '0' && c <= '9') {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(nameSymbols, r):
		default:
			return false
		}
	}
	return true
}

func label(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func expr(coeffs []float64, vars []Variable) string {
	var sb strings.Builder
	for j, a := range coeffs {
		if a == 0 {
			continue
		}
		switch {
		case sb.Len() == 0 && a < 0:
			sb.WriteString("- ")
		case sb.Len() > 0 && a < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(num(math.Abs(a)))
		sb.WriteByte(' ')
		sb.WriteString(vars[j].Name)
	}
	if sb.Len() == 0 {
		return "0 " + vars[0].Name
	}
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
