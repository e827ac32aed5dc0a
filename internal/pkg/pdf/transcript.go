// Package pdf renders the monthly transaction transcript.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
)

// ErrNoTransactions is returned when a transcript is requested for an empty
// transaction list.
var ErrNoTransactions = errors.New("no transactions provided")

const (
	documentTitle = "Auto Finance AI Monthly Transcript"
	documentMotto = "- Smarter Budgets, Better Habits."
	currencyLabel = "BDT"

	// Fixed table column widths in mm (190mm printable width on A4).
	colDate        = 30
	colDescription = 85
	colAmount      = 35
	colCategory    = 40

	// Vertical cursor position that triggers a page break, leaving room
	// for the footer.
	pageBreakAt = 250

	maxDescriptionLen = 50
)

// Summary holds the aggregate block printed at the top of the transcript.
// Amounts are positive magnitudes; the income category alone encodes
// direction, so expenses sum the non-income amounts as given.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetAmount     decimal.Decimal
	Count         int
}

// Summarize computes the transcript summary over the full record list.
func Summarize(records []models.TransactionRecord, incomeCategory string) Summary {
	s := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Count:         len(records),
	}
	for _, record := range records {
		if isIncome(record.Category, incomeCategory) {
			s.TotalIncome = s.TotalIncome.Add(record.Amount)
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(record.Amount)
		}
	}
	s.NetAmount = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// RenderMonthlyTranscript renders the ordered record list into a complete
// PDF document. Records are printed in the order given; callers wanting a
// chronological table must pre-sort by date.
func RenderMonthlyTranscript(records []models.TransactionRecord, incomeCategory string) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoTransactions
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetHeaderFunc(func() {
		doc.SetFont("Helvetica", "B", 16)
		doc.CellFormat(0, 10, documentTitle, "", 1, "C", false, 0, "")
		doc.SetFont("Helvetica", "I", 10)
		doc.CellFormat(0, 6, documentMotto, "", 1, "C", false, 0, "")
		doc.Ln(8)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.SetAutoPageBreak(false, 15)
	doc.AddPage()

	// Title with the inclusive date span of the input ordering.
	doc.SetFont("Helvetica", "B", 14)
	span := fmt.Sprintf("Transactions from %s to %s", records[0].Date, records[len(records)-1].Date)
	doc.CellFormat(0, 10, span, "", 1, "C", false, 0, "")
	doc.Ln(5)

	doc.SetFont("Helvetica", "", 10)
	generated := fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02 15:04:05"))
	doc.CellFormat(0, 10, generated, "", 1, "R", false, 0, "")
	doc.Ln(5)

	writeSummary(doc, Summarize(records, incomeCategory))
	writeTableHeader(doc)

	doc.SetFont("Helvetica", "", 9)
	for _, record := range records {
		if doc.GetY() > pageBreakAt {
			doc.AddPage()
			writeTableHeader(doc)
			doc.SetFont("Helvetica", "", 9)
		}
		writeRow(doc, record, incomeCategory)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render transcript: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(doc *fpdf.Fpdf, s Summary) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 10, "Summary", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 8, fmt.Sprintf("Total Income: %s %s", currencyLabel, FormatAmount(s.TotalIncome)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, fmt.Sprintf("Total Expenses: %s %s", currencyLabel, FormatAmount(s.TotalExpenses)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, fmt.Sprintf("Net Amount: %s %s", currencyLabel, FormatAmount(s.NetAmount)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, fmt.Sprintf("Total Transactions: %d", s.Count), "", 1, "L", false, 0, "")
	doc.Ln(10)
}

func writeTableHeader(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(colDate, 10, "Date", "1", 0, "C", false, 0, "")
	doc.CellFormat(colDescription, 10, "Description", "1", 0, "C", false, 0, "")
	doc.CellFormat(colAmount, 10, fmt.Sprintf("Amount (%s)", currencyLabel), "1", 0, "C", false, 0, "")
	doc.CellFormat(colCategory, 10, "Category", "1", 1, "C", false, 0, "")
}

func writeRow(doc *fpdf.Fpdf, record models.TransactionRecord, incomeCategory string) {
	income := isIncome(record.Category, incomeCategory)

	setAmountColor(doc, income)
	doc.CellFormat(colDate, 8, record.Date.String(), "1", 0, "C", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(colDescription, 8, utils.Truncate(record.Description, maxDescriptionLen), "1", 0, "L", false, 0, "")

	setAmountColor(doc, income)
	doc.CellFormat(colAmount, 8, FormatAmount(record.Amount), "1", 0, "R", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(colCategory, 8, titleCase(record.Category), "1", 1, "C", false, 0, "")
}

// setAmountColor colors income rows green and everything else red.
func setAmountColor(doc *fpdf.Fpdf, income bool) {
	if income {
		doc.SetTextColor(0, 128, 0)
	} else {
		doc.SetTextColor(255, 0, 0)
	}
}

func isIncome(category, incomeCategory string) bool {
	return strings.EqualFold(category, incomeCategory)
}

// FormatAmount renders an amount with thousands separators and two decimal
// places, e.g. 3200 -> "3,200.00".
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	result := grouped.String() + fracPart
	if negative {
		result = "-" + result
	}
	return result
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
