// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/domain/order"
)

// Service renders order invoices as PDF
type Service struct {
	config *config.Config
	tmpl   *template.Template
}

// NewService creates a new pdf service
func NewService(cfg *config.Config) (*Service, error) {
	tmpl, err := template.New("factura").Parse(invoiceTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse invoice template: %w", err)
	}
	return &Service{config: cfg, tmpl: tmpl}, nil
}

type invoiceLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type invoiceData struct {
	StoreName  string
	StoreEmail string
	OrderID    uint
	OrderDate  string
	Status     string
	Customer   string
	Email      string
	Address    string
	Lines      []invoiceLine
	Total      decimal.Decimal
}

// GenerateInvoice renders the invoice PDF for an order. The order must
// carry its items, products and user preloaded.
func (s *Service) GenerateInvoice(o *order.Order) ([]byte, error) {
	data := invoiceData{
		StoreName:  s.config.App.StoreName,
		StoreEmail: s.config.App.StoreEmail,
		OrderID:    o.ID,
		OrderDate:  o.OrderDate.Format("02/01/2006"),
		Status:     o.Status,
		Total:      o.Total,
	}
	if o.User != nil {
		data.Customer = o.User.FirstName + " " + o.User.LastName
		data.Email = o.User.Email
	}
	if o.ShippingAddress != "" {
		data.Address = fmt.Sprintf("%s, %s, %s %s",
			o.ShippingAddress, o.ShippingCity, o.ShippingCountry, o.ShippingPostalCode)
	}

	for i := range o.Items {
		item := &o.Items[i]
		line := invoiceLine{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		}
		if item.Product != nil {
			line.Name = item.Product.Name
		}
		data.Lines = append(data.Lines, line)
	}

	var html bytes.Buffer
	if err := s.tmpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	gen, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}
	gen.Dpi.Set(300)
	gen.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(&html)
	page.EnableLocalFileAccess.Set(true)
	gen.AddPage(page)

	if err := gen.Create(); err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return gen.Bytes(), nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 40px; }
  h1 { font-size: 22px; margin-bottom: 0; }
  .meta { color: #666; font-size: 12px; margin-bottom: 24px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { text-align: left; padding: 8px 6px; border-bottom: 1px solid #ddd; font-size: 13px; }
  th { background: #f5f5f5; }
  td.num, th.num { text-align: right; }
  .total { font-weight: bold; font-size: 15px; }
</style>
</head>
<body>
  <h1>{{.StoreName}}</h1>
  <div class="meta">{{.StoreEmail}}</div>

  <h2>Factura - Pedido #{{.OrderID}}</h2>
  <div class="meta">
    Fecha: {{.OrderDate}}<br>
    Estado: {{.Status}}<br>
    {{if .Customer}}Cliente: {{.Customer}} ({{.Email}})<br>{{end}}
    {{if .Address}}Envío: {{.Address}}{{end}}
  </div>

  <table>
    <tr><th>Producto</th><th class="num">Cantidad</th><th class="num">Precio unitario</th><th class="num">Subtotal</th></tr>
    {{range .Lines}}
    <tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.Subtotal}}</td></tr>
    {{end}}
    <tr><td colspan="3" class="total">Total</td><td class="num total">{{.Total}}</td></tr>
  </table>
</body>
</html>`
