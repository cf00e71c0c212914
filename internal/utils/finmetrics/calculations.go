// Package finmetrics holds the pure derived-metric computations. Every
// function is total over well-formed input: division-by-zero cases are
// defined to yield zero, never an error or a NaN.
package finmetrics

import (
	"sort"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the quantity below which a product counts as low
// stock.
const LowStockThreshold = 20

var hundred = decimal.NewFromInt(100)

// MonthOf truncates a date to the first day of its calendar month (UTC).
// Buckets are keyed by this value, never by a display label, so label
// formatting can never reorder a series.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// TotalRevenue sums totalPrice over all sales.
func TotalRevenue(sales []domain.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalPrice)
	}
	return total
}

// TotalExpenses sums amount over all expenses.
func TotalExpenses(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// NetProfit is revenue minus expenses.
func NetProfit(sales []domain.Sale, expenses []domain.Expense) decimal.Decimal {
	return TotalRevenue(sales).Sub(TotalExpenses(expenses))
}

// ExpensesByCategory sums expense amounts per category, largest first.
func ExpensesByCategory(expenses []domain.Expense) []domain.CategoryTotal {
	byCat := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		byCat[e.Category] = byCat[e.Category].Add(e.Amount)
	}
	out := make([]domain.CategoryTotal, 0, len(byCat))
	for cat, total := range byCat {
		out = append(out, domain.CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total.Equal(out[j].Total) {
			return out[i].Category < out[j].Category
		}
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// sortedMonthlyPoints flattens a month-keyed map into a chronologically
// ordered series.
func sortedMonthlyPoints(buckets map[time.Time]decimal.Decimal) []domain.MonthlyPoint {
	out := make([]domain.MonthlyPoint, 0, len(buckets))
	for month, value := range buckets {
		out = append(out, domain.MonthlyPoint{Month: month, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// MonthlyRevenue buckets sale totals by calendar month, ascending.
func MonthlyRevenue(sales []domain.Sale) []domain.MonthlyPoint {
	buckets := make(map[time.Time]decimal.Decimal)
	for _, s := range sales {
		m := MonthOf(s.Date)
		buckets[m] = buckets[m].Add(s.TotalPrice)
	}
	return sortedMonthlyPoints(buckets)
}

// MonthlyExpenses buckets expense amounts by calendar month, ascending.
func MonthlyExpenses(expenses []domain.Expense) []domain.MonthlyPoint {
	buckets := make(map[time.Time]decimal.Decimal)
	for _, e := range expenses {
		m := MonthOf(e.Date)
		buckets[m] = buckets[m].Add(e.Amount)
	}
	return sortedMonthlyPoints(buckets)
}

// MRR buckets sales of recurring products by month. Months with no
// recurring sales are simply absent from the series.
func MRR(sales []domain.Sale, products []domain.Product) []domain.MonthlyPoint {
	recurring := make(map[string]struct{})
	for _, p := range products {
		if p.IsRecurring {
			recurring[p.ProductID] = struct{}{}
		}
	}
	buckets := make(map[time.Time]decimal.Decimal)
	for _, s := range sales {
		if _, ok := recurring[s.ProductID]; !ok {
			continue
		}
		m := MonthOf(s.Date)
		buckets[m] = buckets[m].Add(s.TotalPrice)
	}
	return sortedMonthlyPoints(buckets)
}

// ltvCACBucket accumulates one month's raw inputs before the cumulative
// pass.
type ltvCACBucket struct {
	revenue        decimal.Decimal
	marketingSpend decimal.Decimal
	newCustomers   int64
}

// LTVCAC derives the LTV vs CAC series. A month appears if it saw any
// sale, Marketing-category expense, or customer join. LTV is cumulative
// revenue over cumulative customers (zero until the first customer);
// CAC is that month's marketing spend over that month's new customers
// (zero when none joined, never carried forward).
func LTVCAC(sales []domain.Sale, expenses []domain.Expense, customers []domain.Customer) []domain.LTVCACPoint {
	buckets := make(map[time.Time]*ltvCACBucket)
	at := func(m time.Time) *ltvCACBucket {
		b, ok := buckets[m]
		if !ok {
			b = &ltvCACBucket{}
			buckets[m] = b
		}
		return b
	}

	for _, s := range sales {
		b := at(MonthOf(s.Date))
		b.revenue = b.revenue.Add(s.TotalPrice)
	}
	for _, e := range expenses {
		if e.Category != domain.MarketingCategory {
			continue
		}
		b := at(MonthOf(e.Date))
		b.marketingSpend = b.marketingSpend.Add(e.Amount)
	}
	for _, c := range customers {
		at(MonthOf(c.JoinDate)).newCustomers++
	}

	months := make([]time.Time, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	cumulativeRevenue := decimal.Zero
	var cumulativeCustomers int64
	out := make([]domain.LTVCACPoint, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		cumulativeRevenue = cumulativeRevenue.Add(b.revenue)
		cumulativeCustomers += b.newCustomers

		ltv := decimal.Zero
		if cumulativeCustomers > 0 {
			ltv = cumulativeRevenue.Div(decimal.NewFromInt(cumulativeCustomers))
		}
		cac := decimal.Zero
		if b.newCustomers > 0 {
			cac = b.marketingSpend.Div(decimal.NewFromInt(b.newCustomers))
		}
		out = append(out, domain.LTVCACPoint{Month: m, LTV: ltv, CAC: cac})
	}
	return out
}

// GoalCurrent derives a goal's current value from the record snapshot.
func GoalCurrent(goalType domain.GoalType, sales []domain.Sale, expenses []domain.Expense, customerCount int) decimal.Decimal {
	switch goalType {
	case domain.GoalRevenue:
		return TotalRevenue(sales)
	case domain.GoalProfit:
		return NetProfit(sales, expenses)
	case domain.GoalCustomers:
		return decimal.NewFromInt(int64(customerCount))
	}
	return decimal.Zero
}

// GoalPercent is the clamped display percentage: min(current/target*100,
// 100). A non-positive target yields zero rather than a division error.
func GoalPercent(current, target decimal.Decimal) decimal.Decimal {
	if target.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := current.Div(target).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// CustomerMetrics derives the per-customer detail figures. The average
// order value divides the materialized spend total by the count of sales
// currently attributed to the customer, zero when there are none.
func CustomerMetrics(customer domain.Customer, sales []domain.Sale) domain.CustomerMetrics {
	count := 0
	for _, s := range sales {
		if s.CustomerID == customer.CustomerID {
			count++
		}
	}
	aov := decimal.Zero
	if count > 0 {
		aov = customer.TotalSpent.Div(decimal.NewFromInt(int64(count)))
	}
	return domain.CustomerMetrics{
		TotalSpent:        customer.TotalSpent,
		SaleCount:         count,
		AverageOrderValue: aov,
	}
}

// StockStatusOf classifies a product's inventory level. Recurring
// products bypass classification entirely.
func StockStatusOf(p domain.Product) domain.StockStatus {
	if p.IsRecurring {
		return domain.NotStocked
	}
	switch {
	case p.Quantity == 0:
		return domain.OutOfStock
	case p.Quantity < LowStockThreshold:
		return domain.LowStock
	default:
		return domain.InStock
	}
}

// ValueInventory values the given product set. Recurring products carry
// a zero line value and contribute nothing to the total.
func ValueInventory(products []domain.Product) domain.InventoryValuation {
	valuation := domain.InventoryValuation{
		Lines:      make([]domain.InventoryLine, 0, len(products)),
		TotalValue: decimal.Zero,
	}
	for _, p := range products {
		line := domain.InventoryLine{Product: p, LineValue: decimal.Zero, Status: StockStatusOf(p)}
		if !p.IsRecurring {
			line.LineValue = p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
			valuation.TotalValue = valuation.TotalValue.Add(line.LineValue)
		}
		valuation.Lines = append(valuation.Lines, line)
	}
	return valuation
}
