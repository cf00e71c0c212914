package export

import (
	"strconv"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ProductsDataset flattens products for an inventory export. Value is the
// per-line inventory value; recurring products export "N/A" there, same
// as the on-screen table.
func ProductsDataset(name string, products []domain.Product) Dataset {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		value := "N/A"
		if !p.IsRecurring {
			value = p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))).StringFixed(2)
		}
		rows = append(rows, []string{
			p.Name,
			p.SKU,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Quantity),
			value,
			yesNo(p.IsRecurring),
		})
	}
	return Dataset{
		Name:    name,
		Headers: []string{"Name", "SKU", "Price", "Quantity", "Value", "Recurring"},
		Rows:    rows,
	}
}

// SalesDataset flattens sales for export.
func SalesDataset(name string, sales []domain.Sale) Dataset {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			s.Date.Format("2006-01-02"),
			s.ProductName,
			s.CustomerName,
			strconv.Itoa(s.Quantity),
			s.TotalPrice.StringFixed(2),
		})
	}
	return Dataset{
		Name:    name,
		Headers: []string{"Date", "Product", "Customer", "Quantity", "Total"},
		Rows:    rows,
	}
}

// ExpensesDataset flattens expenses for export.
func ExpensesDataset(name string, expenses []domain.Expense) Dataset {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			e.Category,
			e.Description,
			e.Amount.StringFixed(2),
		})
	}
	return Dataset{
		Name:    name,
		Headers: []string{"Date", "Category", "Description", "Amount"},
		Rows:    rows,
	}
}
