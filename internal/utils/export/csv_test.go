package export

import (
	"strings"
	"testing"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSV(t *testing.T) {
	d := Dataset{
		Name:    "expenses",
		Headers: []string{"Date", "Amount"},
		Rows: [][]string{
			{"2024-07-01", "2500.00"},
			{"2024-07-05", "150.00"},
		},
	}

	payload, err := BuildCSV(d)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Amount", lines[0])
	assert.Equal(t, "2024-07-01,2500.00", lines[1])
	assert.Equal(t, "expenses.csv", d.Filename())
}

func TestBuildCSVQuotesCommas(t *testing.T) {
	d := Dataset{
		Name:    "expenses",
		Headers: []string{"Description", "Amount"},
		Rows:    [][]string{{"Monitors, pair of", "800.00"}},
	}

	payload, err := BuildCSV(d)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"Monitors, pair of"`)
}

func TestBuildCSVRowWidthMismatch(t *testing.T) {
	d := Dataset{
		Name:    "broken",
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"only-one"}},
	}

	_, err := BuildCSV(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}

func TestProductsDataset(t *testing.T) {
	products := []domain.Product{
		{Name: "Cloud Storage - 1TB", SKU: "CS-1TB-01", Quantity: 250, Price: decimal.RequireFromString("9.99")},
		{Name: "SaaS Platform - Pro Monthly", SKU: "SaaS-PRO-M", Quantity: 9999, Price: decimal.RequireFromString("49.99"), IsRecurring: true},
	}

	d := ProductsDataset("products", products)
	require.Len(t, d.Rows, 2)
	assert.Equal(t, []string{"Cloud Storage - 1TB", "CS-1TB-01", "9.99", "250", "2497.50", "No"}, d.Rows[0])
	// Recurring products carry no inventory value.
	assert.Equal(t, "N/A", d.Rows[1][4])
	assert.Equal(t, "Yes", d.Rows[1][5])
}

func TestSalesDataset(t *testing.T) {
	sales := []domain.Sale{{
		Date:         time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		ProductName:  "Hourly Consulting",
		CustomerName: "Innovate Corp",
		Quantity:     10,
		TotalPrice:   decimal.RequireFromString("1500"),
	}}

	d := SalesDataset("sales", sales)
	require.Len(t, d.Rows, 1)
	assert.Equal(t, []string{"2024-07-15", "Hourly Consulting", "Innovate Corp", "10", "1500.00"}, d.Rows[0])
}

func TestExpensesDataset(t *testing.T) {
	expenses := []domain.Expense{{
		Date:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Category:    "Marketing",
		Description: "Google Ads Campaign",
		Amount:      decimal.RequireFromString("2500"),
	}}

	d := ExpensesDataset("expenses", expenses)
	require.Len(t, d.Rows, 1)
	assert.Equal(t, []string{"2024-07-01", "Marketing", "Google Ads Campaign", "2500.00"}, d.Rows[0])
}
