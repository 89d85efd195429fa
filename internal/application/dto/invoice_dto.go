package dto

import "github.com/shopspring/decimal"

// CalculateTotalsRequest líneas a totalizar.
type CalculateTotalsRequest struct {
	Items []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea de factura (producto, categoría tributaria, precio neto, cantidad).
// Category: tax_free | dairy | other. Quantity nil (omitida) equivale a 1; cualquier
// valor enviado debe ser mayor que cero.
type InvoiceItemRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity *int            `json:"quantity,omitempty"`
}

// InvoiceTotalsResponse totales de la factura con el detalle por línea.
type InvoiceTotalsResponse struct {
	NetTotal   decimal.Decimal       `json:"net_total"`
	TaxTotal   decimal.Decimal       `json:"tax_total"`
	GrandTotal decimal.Decimal       `json:"grand_total"`
	Lines      []InvoiceLineResponse `json:"lines"`
}

// InvoiceLineResponse línea de detalle en la respuesta.
type InvoiceLineResponse struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}
