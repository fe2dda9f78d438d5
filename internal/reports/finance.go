// Package reports holds the store's weekly revenue and supplier debt figures.
package reports

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"tienda/pkg/apperror"
)

// RevenueLine is the amount collected through one payment method.
type RevenueLine struct {
	Method string
	Amount decimal.Decimal
}

// RevenueReport is one week of revenue broken down by payment method.
type RevenueReport struct {
	Week  string
	Lines []RevenueLine
	Total decimal.Decimal
}

type weekRevenue struct {
	week  string
	lines []RevenueLine
}

type monthlyDebt struct {
	month  string
	amount decimal.Decimal
}

type supplierDebt struct {
	supplier string
	months   []monthlyDebt
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func revenue(cash, card, transfer, mobile string) []RevenueLine {
	return []RevenueLine{
		{Method: "Cash", Amount: d(cash)},
		{Method: "Credit card", Amount: d(card)},
		{Method: "Bank transfer", Amount: d(transfer)},
		{Method: "Mobile payment", Amount: d(mobile)},
	}
}

var weeklyRevenue = []weekRevenue{
	{"Week 1", revenue("1250.50", "980.00", "640.25", "410.00")},
	{"Week 2", revenue("1420.75", "1130.40", "720.30", "515.80")},
	{"Week 3", revenue("1365.10", "1045.20", "685.50", "455.60")},
	{"Week 4", revenue("1520.90", "1185.00", "755.75", "530.45")},
}

func quarter(jan, feb, mar string) []monthlyDebt {
	return []monthlyDebt{
		{"January 2025", d(jan)},
		{"February 2025", d(feb)},
		{"March 2025", d(mar)},
	}
}

var supplierDebts = []supplierDebt{
	{"Distribuidora Andina", quarter("3210.75", "2985.40", "3420.10")},
	{"Sabores Latinos", quarter("1875.00", "2130.55", "2050.00")},
	{"Frutas Selectas", quarter("950.80", "1105.25", "985.60")},
	{"Lácteos del Valle", quarter("1640.30", "1525.45", "1710.90")},
	{"Panadería Santa Ana", quarter("730.25", "840.00", "795.50")},
}

// Weeks lists the weeks with revenue figures, in order.
func Weeks() []string {
	out := make([]string, len(weeklyRevenue))
	for i, w := range weeklyRevenue {
		out[i] = w.week
	}
	return out
}

// WeeklyRevenue returns the breakdown and total for week.
func WeeklyRevenue(week string) (RevenueReport, error) {
	for _, w := range weeklyRevenue {
		if w.week != week {
			continue
		}
		report := RevenueReport{Week: w.week, Lines: make([]RevenueLine, len(w.lines)), Total: decimal.Zero}
		copy(report.Lines, w.lines)
		for _, line := range w.lines {
			report.Total = report.Total.Add(line.Amount)
		}
		return report, nil
	}
	return RevenueReport{}, apperror.NotFound("no revenue recorded for "+week, apperror.WithDetail("week", week))
}

// DebtSuppliers lists the suppliers with recorded debt.
func DebtSuppliers() []string {
	out := make([]string, len(supplierDebts))
	for i, s := range supplierDebts {
		out[i] = s.supplier
	}
	return out
}

// DebtMonths lists every month that appears in the debt records, oldest first.
func DebtMonths() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range supplierDebts {
		for _, m := range s.months {
			if !seen[m.month] {
				seen[m.month] = true
				out = append(out, m.month)
			}
		}
	}
	return out
}

// SupplierDebt returns what the store owed supplier for month.
func SupplierDebt(supplier, month string) (decimal.Decimal, error) {
	for _, s := range supplierDebts {
		if s.supplier != supplier {
			continue
		}
		for _, m := range s.months {
			if m.month == month {
				return m.amount, nil
			}
		}
	}
	return decimal.Zero, apperror.NotFound("no debt recorded for this supplier and month",
		apperror.WithDetail("supplier", supplier), apperror.WithDetail("month", month))
}

var printer = message.NewPrinter(language.English)

// FormatAmount renders amount as dollars with thousands separators, e.g. $1,250.50.
// The digits come from the decimal itself; only the whole part is grouped by the printer.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	_, cents, _ := strings.Cut(rounded.StringFixed(2), ".")
	return sign + "$" + printer.Sprint(number.Decimal(rounded.IntPart())) + "." + cents
}
