package gemini

import (
	"encoding/json"
	"fmt"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
)

// analysisSchema constrains the model to the structured forecast shape.
var analysisSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "forecast": {
      "type": "ARRAY",
      "description": "A 3-month financial forecast.",
      "items": {
        "type": "OBJECT",
        "properties": {
          "month": {"type": "STRING", "description": "The forecasted month (e.g., 'Next Month')."},
          "revenue": {"type": "NUMBER", "description": "Predicted total revenue."},
          "expenses": {"type": "NUMBER", "description": "Predicted total expenses."},
          "profit": {"type": "NUMBER", "description": "Predicted net profit."}
        },
        "required": ["month", "revenue", "expenses", "profit"]
      }
    },
    "trends": {
      "type": "ARRAY",
      "description": "A list of 2-3 key financial trends observed from the data.",
      "items": {"type": "STRING"}
    },
    "recommendations": {
      "type": "ARRAY",
      "description": "A list of 2-3 actionable recommendations to improve financial health.",
      "items": {"type": "STRING"}
    },
    "keyOpportunities": {
      "type": "ARRAY",
      "description": "A list of 1-2 specific, actionable growth opportunities.",
      "items": {"type": "STRING"}
    },
    "potentialRisks": {
      "type": "ARRAY",
      "description": "A list of 1-2 potential risks the business should monitor.",
      "items": {"type": "STRING"}
    },
    "kpiAnalysis": {
      "type": "ARRAY",
      "description": "An analysis of 1-2 important KPIs with a 3-month historical trend.",
      "items": {
        "type": "OBJECT",
        "properties": {
          "kpi": {"type": "STRING", "description": "Name of the Key Performance Indicator."},
          "value": {"type": "STRING", "description": "Calculated value of the KPI for the most recent period."},
          "analysis": {"type": "STRING", "description": "A brief analysis of what this KPI value means for the business."},
          "history": {
            "type": "ARRAY",
            "description": "The last 3 months of data for this KPI to visualize its trend.",
            "items": {
              "type": "OBJECT",
              "properties": {
                "month": {"type": "STRING", "description": "The month for the data point (e.g., 'May', 'Jun', 'Jul')."},
                "value": {"type": "NUMBER", "description": "The value of the KPI for that month."}
              },
              "required": ["month", "value"]
            }
          }
        },
        "required": ["kpi", "value", "analysis", "history"]
      }
    }
  },
  "required": ["forecast", "trends", "recommendations", "keyOpportunities", "potentialRisks", "kpiAnalysis"]
}`)

// alertsSchema constrains the model to a flat list of alert drafts.
var alertsSchema = json.RawMessage(`{
  "type": "ARRAY",
  "description": "A list of proactive financial alerts based on the data.",
  "items": {
    "type": "OBJECT",
    "properties": {
      "title": {"type": "STRING", "description": "A short, descriptive title for the alert."},
      "message": {"type": "STRING", "description": "A concise message explaining the alert and its implication."},
      "severity": {"type": "STRING", "description": "The severity level: 'critical', 'warning', or 'info'."}
    },
    "required": ["title", "message", "severity"]
  }
}`)

func analysisPrompt(products []domain.Product, sales []domain.Sale, expenses []domain.Expense, customers []domain.Customer, assumptions domain.ForecastAssumptions) (string, error) {
	productsJSON, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode products: %w", err)
	}
	salesJSON, err := json.MarshalIndent(sales, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode sales: %w", err)
	}
	expensesJSON, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode expenses: %w", err)
	}
	customersJSON, err := json.MarshalIndent(customers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode customers: %w", err)
	}

	notes := assumptions.Notes
	if notes == "" {
		notes = "No specific assumptions provided."
	}

	return fmt.Sprintf(`As a senior financial analyst and strategic consultant for a startup, perform a comprehensive analysis of the following business data.

**Business Data:**
- Inventory: %s
- Sales Records: %s
- Expenses: %s
- Customer Data: %s

**User-Provided Assumptions (use these to refine your analysis):**
- Analysis Period: %s to %s
- Strategic Notes: "%s"

**Your Task - Provide a full strategic overview:**
1.  **3-Month Financial Forecast:** Generate a realistic 3-month forecast (revenue, expenses, profit). Incorporate the user's assumptions.
2.  **Identify Key Trends:** Pinpoint 2-3 significant trends.
3.  **Actionable Recommendations:** Offer 2-3 concise, high-impact recommendations.
4.  **Identify Key Opportunities:** What are 1-2 untapped opportunities for growth or efficiency?
5.  **Identify Potential Risks:** What are 1-2 critical risks?
6.  **KPI Deep Dive:** Calculate and analyze 1-2 critical startup KPIs (e.g., LTV, CAC, ARPU). For each KPI, provide its name, current value, a brief analysis, and a 3-month historical data trend for visualization.

Provide the output in the specified JSON format.`,
		productsJSON, salesJSON, expensesJSON, customersJSON,
		dto.FormatDate(assumptions.Start), dto.FormatDate(assumptions.End), notes), nil
}

func alertsPrompt(window portssvc.AlertWindow) (string, error) {
	recentSales, err := json.MarshalIndent(window.RecentSales, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode recent sales: %w", err)
	}
	recentExpenses, err := json.MarshalIndent(window.RecentExpenses, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode recent expenses: %w", err)
	}
	previousSales, err := json.MarshalIndent(window.PreviousSales, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode previous sales: %w", err)
	}

	return fmt.Sprintf(`Act as a proactive financial monitoring AI for a startup. Analyze the recent sales and expenses data to identify critical risks or important informational points.

**Recent Data:**
- Last 30 days of sales: %s
- Last 30 days of expenses: %s
- Previous 30 days of sales (for comparison): %s

**Your Task:**
Identify up to 3 major alerts. Focus on the most critical issues.
- **High Burn Rate:** Is cash burn (expenses - revenue) dangerously high?
- **Revenue Drop:** Has revenue significantly dropped compared to the previous period?
- **Large Expense:** Is there an unusually large, single expense that needs attention?
- **Concentration Risk:** Is a single customer or product responsible for a majority of revenue?

For each identified issue, create an alert with a title, a short message explaining the problem, and a severity level ('critical', 'warning', or 'info'). If there are no major issues, return an empty array.

Provide the output in the specified JSON format.`,
		recentSales, recentExpenses, previousSales), nil
}
