package builder

import (
	"fmt"
	"strings"

	"github.com/nao1215/finreport/internal/report"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StatisticsType is the report type of a branch statistics block.
const StatisticsType = "Branch Statistics"

// statisticsRule frames the statistics block.
var statisticsRule = strings.Repeat("═", 51)

// BranchStatistics holds the figures of one branch.
type BranchStatistics struct {
	Code    string
	Name    string
	Country string
	City    string

	// Currency defaults to the currency of Country.
	Currency string

	Products int
	Sales    int
	Total    float64
}

// NewStatistics renders the statistics block of one branch.
// Code and Name are required and the figures cannot be negative.
func NewStatistics(s BranchStatistics) (report.Report, error) {
	code := strings.TrimSpace(s.Code)
	name := strings.TrimSpace(s.Name)
	if code == "" {
		return nil, fmt.Errorf("%w: branch code is required", ErrConfiguration)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: branch name is required", ErrConfiguration)
	}
	if s.Products < 0 || s.Sales < 0 || s.Total < 0 {
		return nil, fmt.Errorf("%w: branch figures cannot be negative", ErrConfiguration)
	}

	currency := strings.TrimSpace(s.Currency)
	if currency == "" {
		currency = CurrencyForCountry(s.Country)
	}

	p := message.NewPrinter(language.English)

	var sb strings.Builder
	sb.WriteString(statisticsRule + "\n")
	sb.WriteString("  BRANCH STATISTICS\n")
	sb.WriteString(statisticsRule + "\n\n")
	fmt.Fprintf(&sb, "Code: %s\n", code)
	fmt.Fprintf(&sb, "Name: %s\n", name)
	fmt.Fprintf(&sb, "Country: %s\n", valueOr(strings.TrimSpace(s.Country), NotAvailable))
	fmt.Fprintf(&sb, "City: %s\n\n", valueOr(strings.TrimSpace(s.City), NotAvailable))
	sb.WriteString(p.Sprintf("Total products: %d\n", s.Products))
	sb.WriteString(p.Sprintf("Total sales: %d\n", s.Sales))
	sb.WriteString(p.Sprintf("Total amount sold: %s %.2f\n", currency, s.Total))
	sb.WriteString(statisticsRule + "\n")

	return report.NewBasic(StatisticsType+": "+name, StatisticsType, sb.String()), nil
}
