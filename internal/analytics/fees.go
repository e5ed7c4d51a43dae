package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"institute_backend/internal/model"
)

// AggregateFees 费用汇总。已缴金额以 Payment 明细求和为准，
// 不读取发票上的 PaidAmount 缓存字段；待缴金额可能为负。
func AggregateFees(snap model.FeeSnapshot) model.FeeReport {
	report := model.FeeReport{
		TotalInvoices:    len(snap.Invoices),
		TotalInvoiced:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		InvoicesByStatus: model.GroupedCount{},
	}

	byMethod := make(map[string]*model.PaymentMethodStats)
	for _, inv := range snap.Invoices {
		report.TotalInvoiced = report.TotalInvoiced.Add(inv.TotalAmount)
		report.InvoicesByStatus[string(inv.Status)]++

		for _, p := range inv.Payments {
			report.TotalPaid = report.TotalPaid.Add(p.Amount)

			m, ok := byMethod[p.Method]
			if !ok {
				m = &model.PaymentMethodStats{Method: p.Method, Total: decimal.Zero}
				byMethod[p.Method] = m
			}
			m.Count++
			m.Total = m.Total.Add(p.Amount)
		}
	}

	report.TotalPending = report.TotalInvoiced.Sub(report.TotalPaid)
	report.PaidShare = Percentage(report.TotalPaid.InexactFloat64(), report.TotalInvoiced.InexactFloat64())

	report.PaymentsByMethod = make([]model.PaymentMethodStats, 0, len(byMethod))
	for _, m := range byMethod {
		report.PaymentsByMethod = append(report.PaymentsByMethod, *m)
	}
	sort.Slice(report.PaymentsByMethod, func(i, j int) bool {
		return report.PaymentsByMethod[i].Method < report.PaymentsByMethod[j].Method
	})
	return report
}
