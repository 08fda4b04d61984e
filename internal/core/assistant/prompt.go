package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ShiftLine is one recent shift report rendered into the prompt.
type ShiftLine struct {
	Date         time.Time
	ShiftName    string
	GrossSales   *decimal.Decimal
	Transactions *int64
	CashVariance *decimal.Decimal
}

// AlertLine is one unresolved alert rendered into the prompt.
type AlertLine struct {
	Title     string
	Severity  string
	CreatedAt time.Time
}

// BuildSystemPrompt renders store context into the assistant's system prompt.
func BuildSystemPrompt(storeName string, shifts []ShiftLine, alerts []AlertLine) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are the operations assistant for %s, a convenience store.\n", storeName))
	sb.WriteString("Answer questions from the store team using the data below.\n\n")

	if len(shifts) > 0 {
		sb.WriteString("=== RECENT SHIFT REPORTS ===\n")
		for _, sh := range shifts {
			line := fmt.Sprintf("- %s", sh.Date.Format("2006-01-02"))
			if sh.ShiftName != "" {
				line += " (" + sh.ShiftName + ")"
			}
			if sh.GrossSales != nil {
				line += fmt.Sprintf(": gross sales $%s", sh.GrossSales.StringFixed(2))
			}
			if sh.Transactions != nil {
				line += fmt.Sprintf(", %d transactions", *sh.Transactions)
			}
			if sh.CashVariance != nil {
				line += fmt.Sprintf(", cash variance $%s", sh.CashVariance.StringFixed(2))
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	if len(alerts) > 0 {
		sb.WriteString("=== OPEN ALERTS ===\n")
		for _, a := range alerts {
			sb.WriteString(fmt.Sprintf("- [%s] %s (raised %s)\n",
				strings.ToUpper(a.Severity), a.Title, a.CreatedAt.Format("2006-01-02")))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Instructions:\n")
	sb.WriteString("- Be concise and practical\n")
	sb.WriteString("- Use only the data above when citing numbers\n")
	sb.WriteString("- If the data does not answer the question, say so honestly\n")
	sb.WriteString("- Never invent figures\n")

	return sb.String()
}
