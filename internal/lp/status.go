package lp

type Status int

const (
	NotSolved Status = iota
	Optimal
	Infeasible
	Unbounded
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return "Not Solved"
	}
}
