package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CostMetric é a métrica consultada e somada no resumo.
const CostMetric = "UnblendedCost"

// ServiceTotal é o custo somado de um serviço na janela.
type ServiceTotal struct {
	Service string
	Amount  decimal.Decimal
}

// RunSummary aggregates a report for the success notification. It is never
// stored; the stored object is always the raw report.
type RunSummary struct {
	AccountID   string
	Window      TimeWindow
	Total       decimal.Decimal
	Unit        string
	Days        int
	TopServices []ServiceTotal
}

const topServicesInSummary = 5

// Summarize soma o UnblendedCost de todos os grupos do relatório.
// Valores que não parseiam são ignorados.
func Summarize(report CostReport, window TimeWindow) RunSummary {
	summary := RunSummary{Window: window, Days: len(report), Total: decimal.Zero}
	perService := make(map[string]decimal.Decimal)

	for _, day := range report {
		for _, group := range day.Groups {
			metric, ok := group.Metrics[CostMetric]
			if !ok {
				continue
			}
			amount, err := decimal.NewFromString(metric.Amount)
			if err != nil {
				continue
			}
			if summary.Unit == "" {
				summary.Unit = metric.Unit
			}
			name := strings.Join(group.Keys, ", ")
			perService[name] = perService[name].Add(amount)
			summary.Total = summary.Total.Add(amount)
		}
	}

	for name, amount := range perService {
		summary.TopServices = append(summary.TopServices, ServiceTotal{Service: name, Amount: amount})
	}
	sort.Slice(summary.TopServices, func(i, j int) bool {
		c := summary.TopServices[i].Amount.Cmp(summary.TopServices[j].Amount)
		if c == 0 {
			return summary.TopServices[i].Service < summary.TopServices[j].Service
		}
		return c > 0
	})
	if len(summary.TopServices) > topServicesInSummary {
		summary.TopServices = summary.TopServices[:topServicesInSummary]
	}
	if summary.Unit == "" {
		summary.Unit = "USD"
	}
	return summary
}

func (s RunSummary) String() string {
	var b strings.Builder
	if s.AccountID != "" {
		fmt.Fprintf(&b, "Account: %s\n", s.AccountID)
	}
	fmt.Fprintf(&b, "Period: %s (%d days)\n", s.Window, s.Days)
	fmt.Fprintf(&b, "Total unblended cost: %s %s", s.Total.StringFixed(2), s.Unit)
	if len(s.TopServices) > 0 {
		b.WriteString("\n\nTop services:")
		for _, st := range s.TopServices {
			fmt.Fprintf(&b, "\n  - %s: %s %s", st.Service, st.Amount.StringFixed(2), s.Unit)
		}
	}
	return b.String()
}
