// Package seed loads a demo dataset into the in-memory store so the
// dashboard is populated on first boot. Enabled with LOAD_DEMO_DATA.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/bizpulse/bizpulse_backend/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("seed: bad date literal " + s)
	}
	return t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Load populates the store with a small SaaS-flavored demo business:
// recurring subscription products, one-time services, four months of
// sales and expenses, and a couple of goals.
func Load(ctx context.Context, store *memory.Store) error {
	products := []domain.Product{
		{ProductID: uuid.NewString(), Name: "SaaS Platform - Pro Monthly", SKU: "SaaS-PRO-M", Quantity: 9999, Price: money("49.99"), IsRecurring: true, CreatedAt: date("2024-03-01")},
		{ProductID: uuid.NewString(), Name: "SaaS Platform - Business Monthly", SKU: "SaaS-BUS-M", Quantity: 9999, Price: money("99.99"), IsRecurring: true, CreatedAt: date("2024-03-01")},
		{ProductID: uuid.NewString(), Name: "Data Analytics Suite - One Time", SKU: "DAS-OTO-01", Quantity: 42, Price: money("499.00"), CreatedAt: date("2024-03-01")},
		{ProductID: uuid.NewString(), Name: "Cloud Storage - 1TB", SKU: "CS-1TB-01", Quantity: 250, Price: money("9.99"), CreatedAt: date("2024-03-01")},
		{ProductID: uuid.NewString(), Name: "Implementation & Setup Fee", SKU: "SETUP-FEE", Quantity: 9999, Price: money("1500.00"), CreatedAt: date("2024-03-01")},
		{ProductID: uuid.NewString(), Name: "Hourly Consulting", SKU: "CONSULT-HR", Quantity: 800, Price: money("150.00"), CreatedAt: date("2024-03-01")},
	}

	customers := []domain.Customer{
		{CustomerID: uuid.NewString(), Name: "Innovate Corp", Email: "contact@innovate.com", JoinDate: date("2024-03-10")},
		{CustomerID: uuid.NewString(), Name: "Data Solutions Ltd", Email: "hello@datasolutions.com", JoinDate: date("2024-04-05")},
		{CustomerID: uuid.NewString(), Name: "CloudFive Hosting", Email: "support@cloudfive.com", JoinDate: date("2024-04-22")},
		{CustomerID: uuid.NewString(), Name: "QuantumLeap Tech", Email: "qlt@example.com", JoinDate: date("2024-05-18")},
		{CustomerID: uuid.NewString(), Name: "Pioneer Dynamics", Email: "pd@example.com", JoinDate: date("2024-06-02")},
		{CustomerID: uuid.NewString(), Name: "NextGen Systems", Email: "ngs@example.com", JoinDate: date("2024-06-15")},
		{CustomerID: uuid.NewString(), Name: "Vertex Industries", Email: "vi@example.com", JoinDate: date("2024-07-01")},
		{CustomerID: uuid.NewString(), Name: "Apex Innovations", Email: "ai@example.com", JoinDate: date("2024-07-20")},
	}

	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), Date: date("2024-07-01"), Category: "Marketing", Description: "Google Ads Campaign", Amount: money("2500")},
		{ExpenseID: uuid.NewString(), Date: date("2024-07-05"), Category: "Software", Description: "Figma Subscription", Amount: money("150")},
		{ExpenseID: uuid.NewString(), Date: date("2024-07-15"), Category: "Office Supplies", Description: "New Monitors", Amount: money("800")},
		{ExpenseID: uuid.NewString(), Date: date("2024-07-20"), Category: "Cloud Services", Description: "AWS Hosting - July", Amount: money("3500")},
		{ExpenseID: uuid.NewString(), Date: date("2024-07-25"), Category: "Marketing", Description: "Content Creation", Amount: money("750")},
		{ExpenseID: uuid.NewString(), Date: date("2024-06-10"), Category: "Marketing", Description: "Social Media Ads", Amount: money("2200")},
		{ExpenseID: uuid.NewString(), Date: date("2024-06-20"), Category: "Cloud Services", Description: "AWS Hosting - June", Amount: money("3200")},
		{ExpenseID: uuid.NewString(), Date: date("2024-06-05"), Category: "Software", Description: "Zendesk", Amount: money("250")},
		{ExpenseID: uuid.NewString(), Date: date("2024-05-01"), Category: "Marketing", Description: "SEO Consultant", Amount: money("1800")},
		{ExpenseID: uuid.NewString(), Date: date("2024-05-20"), Category: "Cloud Services", Description: "AWS Hosting - May", Amount: money("3000")},
		{ExpenseID: uuid.NewString(), Date: date("2024-04-15"), Category: "Marketing", Description: "Conference Sponsorship", Amount: money("3000")},
		{ExpenseID: uuid.NewString(), Date: date("2024-04-20"), Category: "Cloud Services", Description: "AWS Hosting - April", Amount: money("2800")},
	}

	var sales []domain.Sale
	subscription := func(customer domain.Customer, product domain.Product, start time.Time, months int) {
		for i := 0; i < months; i++ {
			sales = append(sales, domain.Sale{
				SaleID:       uuid.NewString(),
				Date:         start.AddDate(0, i, 0),
				ProductID:    product.ProductID,
				ProductName:  product.Name,
				CustomerID:   customer.CustomerID,
				CustomerName: customer.Name,
				Quantity:     1,
				TotalPrice:   product.Price,
			})
		}
	}

	subscription(customers[0], products[0], date("2024-03-11"), 5)
	subscription(customers[1], products[1], date("2024-04-06"), 4)
	subscription(customers[2], products[0], date("2024-04-23"), 4)
	subscription(customers[3], products[1], date("2024-05-19"), 3)
	subscription(customers[4], products[0], date("2024-06-03"), 2)
	subscription(customers[5], products[1], date("2024-06-16"), 2)
	subscription(customers[6], products[0], date("2024-07-02"), 1)
	subscription(customers[7], products[1], date("2024-07-21"), 1)

	oneTime := []domain.Sale{
		{SaleID: uuid.NewString(), Date: date("2024-04-15"), ProductID: products[4].ProductID, ProductName: products[4].Name, CustomerID: customers[1].CustomerID, CustomerName: customers[1].Name, Quantity: 1, TotalPrice: money("1500.00")},
		{SaleID: uuid.NewString(), Date: date("2024-05-20"), ProductID: products[2].ProductID, ProductName: products[2].Name, CustomerID: customers[3].CustomerID, CustomerName: customers[3].Name, Quantity: 1, TotalPrice: money("499.00")},
		{SaleID: uuid.NewString(), Date: date("2024-06-18"), ProductID: products[5].ProductID, ProductName: products[5].Name, CustomerID: customers[0].CustomerID, CustomerName: customers[0].Name, Quantity: 10, TotalPrice: money("1500.00")},
		{SaleID: uuid.NewString(), Date: date("2024-07-22"), ProductID: products[2].ProductID, ProductName: products[2].Name, CustomerID: customers[6].CustomerID, CustomerName: customers[6].Name, Quantity: 2, TotalPrice: money("998.00")},
	}
	sales = append(sales, oneTime...)

	// Spend totals start at the sum of seeded sales so the customer view
	// agrees with the sales ledger.
	spent := make(map[string]decimal.Decimal)
	for _, s := range sales {
		spent[s.CustomerID] = spent[s.CustomerID].Add(s.TotalPrice)
	}

	goals := []domain.Goal{
		{GoalID: uuid.NewString(), Title: "Achieve Q3 Revenue Target", Type: domain.GoalRevenue, Target: money("10000"), Deadline: date("2024-09-30")},
		{GoalID: uuid.NewString(), Title: "Onboard 10 New Customers", Type: domain.GoalCustomers, Target: money("10"), Deadline: date("2024-12-31")},
	}

	for _, p := range products {
		if err := store.SaveProduct(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.SKU, err)
		}
	}
	for _, c := range customers {
		c.TotalSpent = spent[c.CustomerID]
		if err := store.SaveCustomer(ctx, c); err != nil {
			return fmt.Errorf("failed to seed customer %s: %w", c.Name, err)
		}
	}
	for _, e := range expenses {
		if err := store.SaveExpense(ctx, e); err != nil {
			return fmt.Errorf("failed to seed expense %s: %w", e.Description, err)
		}
	}
	for _, s := range sales {
		if err := store.SaveSale(ctx, s); err != nil {
			return fmt.Errorf("failed to seed sale %s: %w", s.SaleID, err)
		}
	}
	for _, g := range goals {
		if err := store.SaveGoal(ctx, g); err != nil {
			return fmt.Errorf("failed to seed goal %s: %w", g.Title, err)
		}
	}
	return nil
}
