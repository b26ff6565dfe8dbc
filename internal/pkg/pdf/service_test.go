package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/config"
)

func TestInvoiceTemplateRenders(t *testing.T) {
	s, err := NewService(&config.Config{})
	require.NoError(t, err)

	data := invoiceData{
		StoreName: "Ferretería Central",
		OrderID:   7,
		OrderDate: "15/08/2026",
		Status:    "pagado",
		Customer:  "Ana Torres",
		Lines: []invoiceLine{
			{Name: "Martillo", Quantity: 2, UnitPrice: decimal.RequireFromString("9.90"), Subtotal: decimal.RequireFromString("19.80")},
		},
		Total: decimal.RequireFromString("19.80"),
	}

	var html bytes.Buffer
	require.NoError(t, s.tmpl.Execute(&html, data))

	out := html.String()
	assert.Contains(t, out, "Factura - Pedido #7")
	assert.Contains(t, out, "Ana Torres")
	assert.Contains(t, out, "Martillo")
	assert.Contains(t, out, "19.8")
	assert.NotContains(t, out, "\u2014")
}
