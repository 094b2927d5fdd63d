// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
	"github.com/your-org/rsvp-backend/internal/domain/summary"
	"github.com/your-org/rsvp-backend/internal/pkg/currency"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// SummaryData feeds the summary template
type SummaryData struct {
	EventName   string
	GeneratedAt string
	TotalPax    int
	TotalOrder  int
	TotalPrice  string
	Orders      []orderRow
}

type orderRow struct {
	Name       string
	Phone      string
	Pax        int
	PriceTotal string
	Items      []itemRow
}

type itemRow struct {
	Qty        int
	Name       string
	TotalPrice string
}

// GenerateSummary renders the organizer summary as a PDF
func (s *Service) GenerateSummary(sum *summary.Summary) (*bytes.Buffer, error) {
	data := SummaryData{
		EventName:   s.config.App.EventName,
		GeneratedAt: time.Now().Format("January 2, 2006 15:04"),
		TotalPax:    sum.Totals.TotalPax,
		TotalOrder:  sum.Totals.TotalOrder,
		TotalPrice:  currency.ToIDR(sum.Totals.TotalPrice),
		Orders:      make([]orderRow, 0, len(sum.Orders)),
	}

	for _, order := range sum.Orders {
		data.Orders = append(data.Orders, toOrderRow(order))
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func toOrderRow(order reservation.Reservation) orderRow {
	row := orderRow{
		Name:       order.DisplayName(),
		Phone:      order.Phone,
		Pax:        order.Pax,
		PriceTotal: currency.ToIDR(order.PriceTotal),
		Items:      make([]itemRow, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		row.Items = append(row.Items, itemRow{
			Qty:        item.Qty,
			Name:       item.Name,
			TotalPrice: currency.ToIDR(item.TotalPrice),
		})
	}
	return row
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data SummaryData) (string, error) {
	tmpl := template.Must(template.New("summary").Parse(summaryTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

const summaryTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order Summary — {{.EventName}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
            margin-bottom: 30px;
        }
        .title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 5px;
        }
        .subtitle {
            color: #6b7280;
        }
        .totals-table {
            width: 300px;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .totals-table td {
            padding: 6px 8px;
            border-bottom: 1px solid #eee;
        }
        .totals-table .value {
            text-align: right;
            font-weight: bold;
        }
        .order {
            margin-bottom: 20px;
            page-break-inside: avoid;
        }
        .order-header {
            background-color: #f8f9fa;
            padding: 8px;
            font-weight: bold;
            border: 1px solid #ddd;
        }
        .order-header .meta {
            font-weight: normal;
            color: #6b7280;
            font-size: 12px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
        }
        .items-table td {
            border: 1px solid #ddd;
            padding: 6px 8px;
        }
        .items-table .qty-col {
            width: 50px;
            text-align: center;
        }
        .items-table .total-col {
            width: 120px;
            text-align: right;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">Order Summary</div>
        <div class="subtitle">{{.EventName}} — generated {{.GeneratedAt}}</div>
    </div>

    <table class="totals-table">
        <tr><td>Pax</td><td class="value">{{.TotalPax}}</td></tr>
        <tr><td>Total Order</td><td class="value">{{.TotalOrder}}</td></tr>
        <tr><td>Total Price</td><td class="value">{{.TotalPrice}}</td></tr>
    </table>

    {{range .Orders}}
    <div class="order">
        <div class="order-header">
            {{.Name}} <span class="meta">({{.Phone}}) {{.Pax}} Pax</span>
            — {{.PriceTotal}}
        </div>
        {{if .Items}}
        <table class="items-table">
            {{range .Items}}
            <tr>
                <td class="qty-col">{{.Qty}}</td>
                <td>{{.Name}}</td>
                <td class="total-col">{{.TotalPrice}}</td>
            </tr>
            {{end}}
        </table>
        {{end}}
    </div>
    {{end}}
</body>
</html>
`
