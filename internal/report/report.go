// Package report renders payment invoices and rental credit reports as PDF.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"

	"trustrent-backend/internal/domain"
)

// RecentTransactionLimit is the number of payments listed on a credit report.
const RecentTransactionLimit = 5

type rgb struct{ r, g, b int }

var (
	colorPrimary   = rgb{79, 70, 229}
	colorGray      = rgb{107, 114, 128}
	colorHeaderBg  = rgb{249, 250, 251}
	colorBadgeBg   = rgb{238, 242, 255}
	colorRule      = rgb{229, 231, 235}
	colorTableHead = rgb{243, 244, 246}
	colorOnTime    = rgb{22, 163, 74}
	colorLate      = rgb{180, 83, 9}
	colorFooter    = rgb{150, 150, 150}
)

// OnTimeRate is the rounded percentage of payments not flagged late; an empty
// history counts as 100.
func OnTimeRate(payments []domain.Payment) int {
	if len(payments) == 0 {
		return 100
	}
	onTime := 0
	for _, p := range payments {
		if !p.IsLate {
			onTime++
		}
	}
	return int(math.Round(float64(onTime) / float64(len(payments)) * 100))
}

// RecentPayments returns at most n payments from the front of a
// most-recent-first list.
func RecentPayments(payments []domain.Payment, n int) []domain.Payment {
	if n < 0 {
		n = 0
	}
	if len(payments) > n {
		return payments[:n]
	}
	return payments
}

func CreditReportFilename(tenantName string) string {
	return fmt.Sprintf("TrustRent_CreditReport_%s.pdf", underscoreSpaces(tenantName))
}

func InvoiceFilename(payment *domain.Payment) string {
	return fmt.Sprintf("TrustRent_Invoice_%s.pdf", underscoreSpaces(payment.ID))
}

func underscoreSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, s)
}

func newDocument(title string) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAuthor("TrustRent", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }

func header(pdf *fpdf.Fpdf, tr func(string) string, subtitle string, right ...string) {
	setFill(pdf, colorHeaderBg)
	pdf.Rect(0, 0, 210, 40, "F")

	pdf.SetFont("Helvetica", "B", 24)
	setText(pdf, colorPrimary)
	pdf.Text(20, 20, "TrustRent")

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorGray)
	pdf.Text(20, 28, tr(subtitle))
	for i, line := range right {
		pdf.Text(150, 20+float64(i)*5, tr(line))
	}
}

func sectionTitle(pdf *fpdf.Fpdf, y float64, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(20, y, title)
	pdf.SetDrawColor(colorRule.r, colorRule.g, colorRule.b)
	pdf.Line(20, y+2, 190, y+2)
	pdf.SetFont("Helvetica", "", 12)
}

func footer(pdf *fpdf.Fpdf, lines ...string) {
	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, colorFooter)
	for i, line := range lines {
		pdf.Text(20, 270+float64(i)*5, line)
	}
}

// RenderCreditReport writes the rental credit report of tenant. property may
// be nil when the tenant's current property is unknown.
func RenderCreditReport(w io.Writer, tenant *domain.Tenant, property *domain.Property, payments []domain.Payment, generatedAt time.Time) error {
	pdf, tr := newDocument("Rental Credit Report")

	header(pdf, tr, "OFFICIAL RENTAL CREDIT REPORT",
		"Generated: "+generatedAt.Format("1/2/2006"),
		fmt.Sprintf("Report ID: TR-%04d", generatedAt.UnixNano()%10000))

	y := 60.0
	sectionTitle(pdf, y, "TENANT INFORMATION")
	y += 12
	address := "Unknown"
	if property != nil {
		address = property.Address + ", " + property.City
	}
	pdf.Text(20, y, tr("Name: "+tenant.Name))
	pdf.Text(20, y+8, tr("Email: "+tenant.Email))
	pdf.Text(20, y+16, tr("Current Address: "+address))

	y += 30
	setFill(pdf, colorBadgeBg)
	pdf.RoundedRect(20, y, 170, 40, 3, "1234", "F")
	setText(pdf, colorPrimary)
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(30, y+15, "Rental Credit Score")
	pdf.SetFont("Helvetica", "B", 32)
	pdf.Text(30, y+28, fmt.Sprintf("%d", tenant.CreditScore))
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(65, y+28, fmt.Sprintf("/ %d", domain.MaxCreditScore))
	pdf.SetFont("Helvetica", "B", 12)
	setText(pdf, colorOnTime)
	pdf.Text(120, y+22, "EXCELLENT STANDING")

	y += 55
	sectionTitle(pdf, y, "PAYMENT HISTORY SUMMARY")
	y += 12
	pdf.Text(20, y, fmt.Sprintf("Total Recorded Payments: %d", len(payments)))
	pdf.Text(20, y+8, fmt.Sprintf("On-Time Payment Rate: %d%%", OnTimeRate(payments)))

	y += 20
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(20, y, "Recent Transactions:")

	y += 8
	setFill(pdf, colorTableHead)
	pdf.Rect(20, y-5, 170, 8, "F")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(25, y, "Date")
	pdf.Text(70, y, "Amount")
	pdf.Text(120, y, "Status")

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range RecentPayments(payments, RecentTransactionLimit) {
		y += 10
		pdf.Text(25, y, tr(p.Date))
		pdf.Text(70, y, fmt.Sprintf("$%d", p.Amount))
		if p.IsLate {
			setText(pdf, colorLate)
			pdf.Text(120, y, "Late")
		} else {
			setText(pdf, colorOnTime)
			pdf.Text(120, y, "On Time")
		}
		pdf.SetTextColor(0, 0, 0)
	}

	footer(pdf,
		"This document certifies the rental payment history recorded on the TrustRent Platform.",
		"TrustRent Inc. | Verified Secure Ledger Data")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write credit report: %w", err)
	}
	return nil
}

// RenderInvoice writes a single-payment receipt. property and tenant may be
// nil; their lines then read "Unknown".
func RenderInvoice(w io.Writer, payment *domain.Payment, property *domain.Property, tenant *domain.Tenant) error {
	pdf, tr := newDocument("Rent Invoice " + payment.ID)

	header(pdf, tr, "RENT PAYMENT INVOICE",
		"Invoice: "+payment.ID,
		"Date: "+payment.Date)

	tenantName, tenantEmail := "Unknown", ""
	if tenant != nil {
		tenantName, tenantEmail = tenant.Name, tenant.Email
	}
	address, landlord := "Unknown", ""
	if property != nil {
		address = property.Address + ", " + property.City
		landlord = property.LandlordName
	}

	y := 60.0
	sectionTitle(pdf, y, "BILLED TO")
	y += 12
	pdf.Text(20, y, tr("Tenant: "+tenantName))
	if tenantEmail != "" {
		pdf.Text(20, y+8, tr("Email: "+tenantEmail))
	}
	pdf.Text(20, y+16, tr("Property: "+address))
	if landlord != "" {
		pdf.Text(20, y+24, tr("Landlord: "+landlord))
	}

	y += 40
	sectionTitle(pdf, y, "PAYMENT DETAILS")
	y += 10
	setFill(pdf, colorTableHead)
	pdf.Rect(20, y-5, 170, 8, "F")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(25, y, "Description")
	pdf.Text(100, y, "Method")
	pdf.Text(160, y, "Amount")

	y += 10
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(25, y, tr("Monthly rent "+payment.Date))
	pdf.Text(100, y, tr(payment.DisplayMethod()))
	pdf.Text(160, y, fmt.Sprintf("$%d", payment.Amount))

	y += 15
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(100, y, "Total")
	pdf.Text(160, y, fmt.Sprintf("$%d", payment.Amount))

	y += 10
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(100, y, tr("Status: "+string(payment.Status)))
	if payment.IsLate {
		setText(pdf, colorLate)
		pdf.Text(150, y, "Late")
	} else {
		setText(pdf, colorOnTime)
		pdf.Text(150, y, "On Time")
	}

	footer(pdf,
		"This invoice confirms a rent payment recorded on the TrustRent Platform.",
		"TrustRent Inc. | Verified Secure Ledger Data")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write invoice: %w", err)
	}
	return nil
}
