package stats

import (
	"math"
	"strings"
	"time"

	"varnix-dashboard/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "₹"

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a rupee amount with digit grouping, dropping the
// fraction for whole values.
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return currencySymbol + amountPrinter.Sprintf("%d", int64(amount))
	}
	return currencySymbol + amountPrinter.Sprintf("%.2f", amount)
}

// CostingDoc renders the plain-text Varnix costing document.
func CostingDoc(summary VarnixSummary, projects []models.VarnixProject, payments []models.VarnixPayment, now time.Time) string {
	var b strings.Builder

	b.WriteString("VARNIX COSTING DOC\n")
	b.WriteString("==================\n\n")
	b.WriteString("Last Updated: " + now.Format("January 2, 2006") + "\n\n")

	b.WriteString("ALL PROJECTS\n")
	b.WriteString("------------\n")
	for _, p := range projects {
		b.WriteString(p.ProjectName + ": " + FormatAmount(p.Cost) + "\n")
	}

	b.WriteString("\nRECEIVED AMOUNT DATE\n")
	b.WriteString("--------------------\n")
	for _, p := range payments {
		b.WriteString(formatDocDate(p.Date) + ": " + FormatAmount(p.Amount) + "\n")
	}

	b.WriteString("\nSUMMARY\n")
	b.WriteString("-------\n")
	b.WriteString("Total Project Value: " + FormatAmount(summary.TotalValue) + "\n")
	b.WriteString("Total Received Amount: " + FormatAmount(summary.TotalReceived) + "\n")
	b.WriteString("Total Remaining Amount: " + FormatAmount(summary.Remaining))

	return b.String()
}

func formatDocDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}
