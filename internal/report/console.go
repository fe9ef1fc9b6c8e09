package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"profitPlan/internal/plan"
)

// Print выводит статус, оптимальный план, прибыль и таблицу результатов.
func Print(out io.Writer, p plan.Plan) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Status: %s\n", p.Status)
	if !p.Optimal() {
		msg := p.Message
		if msg == "" {
			msg = "solver returned no plan"
		}
		fmt.Fprintf(&sb, "No optimal production plan: %s\n", msg)
		_, err := io.WriteString(out, sb.String())
		return err
	}

	fmt.Fprintln(&sb, "Optimal production plan:")
	for i, prod := range p.Instance.Products {
		fmt.Fprintf(&sb, "%s: %s units\n", plan.VariableName(prod.ID), ftoa(p.Units[i]))
	}
	fmt.Fprintf(&sb, "Total Profit: %s\n", ftoa(p.TotalProfit))

	fmt.Fprintln(&sb)
	fmt.Fprintln(&sb, "Detailed Results:")
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range Rows(p) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Product, ftoa(r.OptimalUnits), ftoa(r.ProfitPerUnit), ftoa(r.TotalProfit))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(p.Usage) > 0 {
		fmt.Fprintln(&sb)
		fmt.Fprintln(&sb, "Machine usage:")
		w = tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Machine\tUsed\tAvailable\tSlack\tUtilization")
		for _, u := range p.Usage {
			fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.1f%%\n", u.Machine, u.Used, u.Available, u.Slack, u.Utilization*100)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	_, err := io.WriteString(out, sb.String())
	return err
}
