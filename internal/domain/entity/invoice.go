package entity

import (
	"fmt"

	"github.com/jhoicas/invoice-core/internal/domain"
	"github.com/shopspring/decimal"
)

// Invoice acumula líneas (producto, cantidad) y expone los totales neto, impuesto y bruto.
// Las líneas solo crecen; no hay eliminación. No es seguro para uso concurrente:
// el llamador debe serializar el acceso.
type Invoice struct {
	entries []InvoiceEntry
}

// NewInvoice crea una factura vacía.
func NewInvoice() *Invoice {
	return &Invoice{}
}

// AddProduct agrega una unidad del producto como una línea nueva.
// Un Product en su valor cero (sin pasar por New*) se acepta como línea sin nombre,
// precio 0 y tasa 0: no altera ningún total.
func (inv *Invoice) AddProduct(product Product) {
	inv.entries = append(inv.entries, InvoiceEntry{Product: product, Quantity: 1})
}

// AddProductQuantity agrega quantity unidades del producto como una sola línea.
// Repetir el mismo producto crea líneas distintas (no se fusionan).
// Igual que AddProduct, acepta el valor cero de Product.
func (inv *Invoice) AddProductQuantity(product Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero (recibido %d)", domain.ErrInvalidArgument, quantity)
	}
	inv.entries = append(inv.entries, InvoiceEntry{Product: product, Quantity: quantity})
	return nil
}

// Entries devuelve una copia de las líneas en orden de inserción.
func (inv *Invoice) Entries() []InvoiceEntry {
	out := make([]InvoiceEntry, len(inv.entries))
	copy(out, inv.entries)
	return out
}

// Len número de líneas.
func (inv *Invoice) Len() int { return len(inv.entries) }

// NetValue suma de precio × cantidad. Cero exacto si no hay líneas.
func (inv *Invoice) NetValue() decimal.Decimal {
	total := decimal.Zero
	for _, e := range inv.entries {
		total = total.Add(e.NetValue())
	}
	return total
}

// Tax suma de precio × cantidad × tasa.
func (inv *Invoice) Tax() decimal.Decimal {
	total := decimal.Zero
	for _, e := range inv.entries {
		total = total.Add(e.Tax())
	}
	return total
}

// GrossValue NetValue + Tax, sin redondeo intermedio.
func (inv *Invoice) GrossValue() decimal.Decimal {
	return inv.NetValue().Add(inv.Tax())
}

// InvoiceEntry una línea de la factura.
type InvoiceEntry struct {
	Product  Product
	Quantity int
}

// NetValue subtotal de la línea sin impuesto.
func (e InvoiceEntry) NetValue() decimal.Decimal {
	return e.Product.Price().Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Tax impuesto de la línea.
func (e InvoiceEntry) Tax() decimal.Decimal {
	return e.NetValue().Mul(e.Product.TaxPercentage())
}

// GrossValue total de la línea con impuesto.
func (e InvoiceEntry) GrossValue() decimal.Decimal {
	return e.NetValue().Add(e.Tax())
}
