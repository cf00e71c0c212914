package finmetrics

import (
	"testing"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sale(date string, total string) domain.Sale {
	return domain.Sale{Date: day(date), TotalPrice: d(total)}
}

func expense(date, category, amount string) domain.Expense {
	return domain.Expense{Date: day(date), Category: category, Amount: d(amount)}
}

func TestSummaryTotals(t *testing.T) {
	// Single month, revenue 100 vs expenses 40.
	sales := []domain.Sale{sale("2024-07-03", "60"), sale("2024-07-21", "40")}
	expenses := []domain.Expense{expense("2024-07-10", "Software", "40")}

	assert.True(t, TotalRevenue(sales).Equal(d("100")))
	assert.True(t, TotalExpenses(expenses).Equal(d("40")))
	assert.True(t, NetProfit(sales, expenses).Equal(d("60")))
}

func TestTotalsEmpty(t *testing.T) {
	assert.True(t, TotalRevenue(nil).IsZero())
	assert.True(t, TotalExpenses(nil).IsZero())
	assert.True(t, NetProfit(nil, nil).IsZero())
}

func TestExpensesByCategoryOrdering(t *testing.T) {
	expenses := []domain.Expense{
		expense("2024-07-01", "Marketing", "200"),
		expense("2024-07-02", "Software", "500"),
		expense("2024-07-03", "Marketing", "100"),
		expense("2024-07-04", "Travel", "300"),
	}

	byCat := ExpensesByCategory(expenses)
	require.Len(t, byCat, 3)
	assert.Equal(t, "Software", byCat[0].Category)
	assert.Equal(t, "Marketing", byCat[1].Category)
	assert.True(t, byCat[1].Total.Equal(d("300")))
	assert.Equal(t, "Travel", byCat[2].Category)
}

func TestMonthlyRevenueChronological(t *testing.T) {
	// Input deliberately out of order; buckets must come back ascending.
	sales := []domain.Sale{
		sale("2024-07-05", "100"),
		sale("2024-05-12", "50"),
		sale("2024-07-22", "25"),
		sale("2024-06-01", "10"),
	}

	points := MonthlyRevenue(sales)
	require.Len(t, points, 3)
	assert.Equal(t, "May 2024", points[0].Label())
	assert.Equal(t, "Jun 2024", points[1].Label())
	assert.Equal(t, "Jul 2024", points[2].Label())
	assert.True(t, points[2].Value.Equal(d("125")))
}

func TestMonthlyRevenueIdempotent(t *testing.T) {
	sales := []domain.Sale{sale("2024-07-05", "100"), sale("2024-06-01", "10")}
	first := MonthlyRevenue(sales)
	second := MonthlyRevenue(sales)
	assert.Equal(t, first, second)
}

func TestMRRExcludesNonRecurring(t *testing.T) {
	products := []domain.Product{
		{ProductID: "p-sub", IsRecurring: true},
		{ProductID: "p-oto", IsRecurring: false},
	}
	sales := []domain.Sale{
		{Date: day("2024-06-10"), ProductID: "p-sub", TotalPrice: d("50")},
		{Date: day("2024-06-15"), ProductID: "p-oto", TotalPrice: d("500")},
		{Date: day("2024-08-10"), ProductID: "p-sub", TotalPrice: d("50")},
	}

	points := MRR(sales, products)
	require.Len(t, points, 2)
	assert.Equal(t, "Jun 2024", points[0].Label())
	assert.True(t, points[0].Value.Equal(d("50")))
	// July saw no recurring sales, so it must be absent rather than zero.
	assert.Equal(t, "Aug 2024", points[1].Label())
}

func TestLTVCAC(t *testing.T) {
	customers := []domain.Customer{
		{CustomerID: "c1", JoinDate: day("2024-05-03")},
		{CustomerID: "c2", JoinDate: day("2024-06-11")},
		{CustomerID: "c3", JoinDate: day("2024-06-20")},
	}
	sales := []domain.Sale{
		sale("2024-05-10", "100"),
		sale("2024-06-10", "200"),
	}
	expenses := []domain.Expense{
		expense("2024-05-01", domain.MarketingCategory, "50"),
		expense("2024-06-01", domain.MarketingCategory, "100"),
		expense("2024-06-02", "Software", "999"),
	}

	points := LTVCAC(sales, expenses, customers)
	require.Len(t, points, 2)

	// May: 100 revenue over 1 customer, 50 marketing over 1 new customer.
	assert.True(t, points[0].LTV.Equal(d("100")))
	assert.True(t, points[0].CAC.Equal(d("50")))

	// June: LTV is cumulative (300/3), CAC is that month only (100/2).
	assert.True(t, points[1].LTV.Equal(d("100")))
	assert.True(t, points[1].CAC.Equal(d("50")))
}

func TestLTVCACZeroGuards(t *testing.T) {
	// Marketing spend in a month with no customer joins: CAC stays zero
	// and is not carried into a later month.
	expenses := []domain.Expense{expense("2024-04-01", domain.MarketingCategory, "500")}
	customers := []domain.Customer{{CustomerID: "c1", JoinDate: day("2024-05-02")}}

	points := LTVCAC(nil, expenses, customers)
	require.Len(t, points, 2)
	assert.True(t, points[0].LTV.IsZero())
	assert.True(t, points[0].CAC.IsZero())
	assert.True(t, points[1].CAC.IsZero())
}

func TestGoalCurrent(t *testing.T) {
	sales := []domain.Sale{sale("2024-07-01", "100")}
	expenses := []domain.Expense{expense("2024-07-02", "Software", "40")}

	assert.True(t, GoalCurrent(domain.GoalRevenue, sales, expenses, 5).Equal(d("100")))
	assert.True(t, GoalCurrent(domain.GoalProfit, sales, expenses, 5).Equal(d("60")))
	assert.True(t, GoalCurrent(domain.GoalCustomers, sales, expenses, 5).Equal(d("5")))
}

func TestGoalPercentClamped(t *testing.T) {
	assert.True(t, GoalPercent(d("50"), d("200")).Equal(d("25")))
	assert.True(t, GoalPercent(d("300"), d("200")).Equal(d("100")), "progress is clamped at 100")
	assert.True(t, GoalPercent(d("50"), decimal.Zero).IsZero())
	assert.True(t, GoalPercent(d("50"), d("-10")).IsZero())
}

func TestCustomerMetrics(t *testing.T) {
	customer := domain.Customer{CustomerID: "c1", TotalSpent: d("300")}
	sales := []domain.Sale{
		{CustomerID: "c1", TotalPrice: d("100")},
		{CustomerID: "c1", TotalPrice: d("200")},
		{CustomerID: "c2", TotalPrice: d("999")},
	}

	m := CustomerMetrics(customer, sales)
	assert.Equal(t, 2, m.SaleCount)
	assert.True(t, m.TotalSpent.Equal(d("300")))
	assert.True(t, m.AverageOrderValue.Equal(d("150")))
}

func TestCustomerMetricsNoSales(t *testing.T) {
	customer := domain.Customer{CustomerID: "c1", TotalSpent: d("50")}

	m := CustomerMetrics(customer, nil)
	assert.Equal(t, 0, m.SaleCount)
	assert.True(t, m.AverageOrderValue.IsZero())
}

func TestStockStatusOf(t *testing.T) {
	assert.Equal(t, domain.NotStocked, StockStatusOf(domain.Product{IsRecurring: true, Quantity: 0}))
	assert.Equal(t, domain.OutOfStock, StockStatusOf(domain.Product{Quantity: 0}))
	assert.Equal(t, domain.LowStock, StockStatusOf(domain.Product{Quantity: 19}))
	assert.Equal(t, domain.InStock, StockStatusOf(domain.Product{Quantity: 20}))
}

func TestValueInventory(t *testing.T) {
	products := []domain.Product{
		{ProductID: "p1", Quantity: 10, Price: d("5")},
		{ProductID: "p2", Quantity: 100, Price: d("2.50")},
		{ProductID: "p3", Quantity: 9999, Price: d("49.99"), IsRecurring: true},
	}

	v := ValueInventory(products)
	require.Len(t, v.Lines, 3)
	assert.True(t, v.Lines[0].LineValue.Equal(d("50")))
	assert.True(t, v.Lines[1].LineValue.Equal(d("250")))
	// Recurring products are listed but carry no stock value.
	assert.True(t, v.Lines[2].LineValue.IsZero())
	assert.Equal(t, domain.NotStocked, v.Lines[2].Status)
	assert.True(t, v.TotalValue.Equal(d("300")))
}
