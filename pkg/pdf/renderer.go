package pdf

import (
	"bytes"
	"fmt"

	"crm-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// RenderInvoice lays out a stored invoice as an A4 PDF: company header,
// customer block, line item table, totals. Returns the raw PDF bytes.
func RenderInvoice(inv *models.Invoice, company *models.CompanyInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, company.CompanyName)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, line := range companyLines(company) {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// Invoice meta
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice #%d", inv.InvoiceID))
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, "Date: "+inv.Date.Format("2006-01-02"))
	pdf.Ln(5)
	pdf.Cell(0, 5, "Payment: "+inv.PaymentType+"  Status: "+inv.TransectionStatus)
	pdf.Ln(8)

	// Bill-to block
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, inv.CustomerName)
	pdf.Ln(5)
	if inv.CompanyName != "" {
		pdf.Cell(0, 5, inv.CompanyName)
		pdf.Ln(5)
	}
	if addr := joinNonEmpty(inv.Address, inv.City, inv.State, inv.Pin, inv.Country); addr != "" {
		pdf.Cell(0, 5, addr)
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, "Phone: "+inv.Phone+"  Email: "+inv.Email)
	pdf.Ln(5)
	if inv.Gstin != "" {
		pdf.Cell(0, 5, "GSTIN: "+inv.Gstin)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// Item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 7, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(70, 7, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, item.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, item.SalePrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, item.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals
	totals := []struct {
		label string
		value string
	}{
		{"Discount", inv.DiscountAmount.StringFixed(2)},
		{"CGST", inv.Cgst.StringFixed(2)},
		{"SGST", inv.Sgst.StringFixed(2)},
		{"IGST", inv.Igst.StringFixed(2)},
		{"Total GST", inv.TotalGst.StringFixed(2)},
		{"Grand Total", inv.TotalAmount.StringFixed(2)},
		{"Paid", inv.PaidAmount.StringFixed(2)},
		{"Balance", inv.BalanceAmount.StringFixed(2)},
	}
	for _, row := range totals {
		pdf.CellFormat(155, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, row.value, "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func companyLines(c *models.CompanyInfo) []string {
	lines := []string{}
	if addr := joinNonEmpty(c.Address, c.City, c.State, c.Pin, c.Country); addr != "" {
		lines = append(lines, addr)
	}
	if contact := joinNonEmpty(c.Phone, c.Email, c.Website); contact != "" {
		lines = append(lines, contact)
	}
	if c.Gstin != "" {
		lines = append(lines, "GSTIN: "+c.Gstin)
	}
	return lines
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}
