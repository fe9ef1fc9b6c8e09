package report

import "profitPlan/internal/plan"

// Row — строка итоговой таблицы, по одной на изделие.
type Row struct {
	Product       string  `csv:"Product"`
	OptimalUnits  float64 `csv:"Optimal_Units"`
	ProfitPerUnit float64 `csv:"Profit_Per_Unit"`
	TotalProfit   float64 `csv:"Total_Profit"`
}

var header = []string{"Product", "Optimal_Units", "Profit_Per_Unit", "Total_Profit"}

// Rows строит таблицу в порядке объявления изделий.
// Без оптимального плана строк нет: значения решателя в этом случае не имеют смысла.
func Rows(p plan.Plan) []Row {
	if !p.Optimal() || p.Instance == nil {
		return nil
	}
	rows := make([]Row, 0, len(p.Instance.Products))
	for i, prod := range p.Instance.Products {
		units := p.Units[i]
		rows = append(rows, Row{
			Product:       prod.ID,
			OptimalUnits:  units,
			ProfitPerUnit: prod.ProfitPerUnit,
			TotalProfit:   units * prod.ProfitPerUnit,
		})
	}
	return rows
}
