package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-core/internal/application/dto"
	"github.com/jhoicas/invoice-core/internal/domain/entity"
	"github.com/jhoicas/invoice-core/pkg/logger"
)

// CalculateTotalsUseCase arma una factura en memoria a partir de las líneas recibidas
// y devuelve los totales neto, impuesto y bruto.
type CalculateTotalsUseCase struct {
	log *logger.Logger
}

// NewCalculateTotalsUseCase construye el caso de uso. log nil = sin logs.
func NewCalculateTotalsUseCase(log *logger.Logger) *CalculateTotalsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CalculateTotalsUseCase{log: log.Named("billing.totals")}
}

// Calculate valida cada línea, la agrega a la factura y totaliza.
// Cualquier línea inválida aborta el cálculo con domain.ErrInvalidArgument.
func (uc *CalculateTotalsUseCase) Calculate(ctx context.Context, in dto.CalculateTotalsRequest) (*dto.InvoiceTotalsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inv := entity.NewInvoice()
	for i, item := range in.Items {
		product, err := toProduct(item)
		if err != nil {
			uc.log.Warn().Err(err).Int("line", i).Str("name", item.Name).Msg("línea rechazada")
			return nil, fmt.Errorf("línea %d: %w", i, err)
		}
		if item.Quantity == nil {
			inv.AddProduct(product)
			continue
		}
		if err := inv.AddProductQuantity(product, *item.Quantity); err != nil {
			uc.log.Warn().Err(err).Int("line", i).Int("quantity", *item.Quantity).Msg("línea rechazada")
			return nil, fmt.Errorf("línea %d: %w", i, err)
		}
	}

	out := toTotalsResponse(inv)
	uc.log.Debug().
		Int("lines", inv.Len()).
		Str("net", out.NetTotal.String()).
		Str("tax", out.TaxTotal.String()).
		Str("gross", out.GrandTotal.String()).
		Msg("totales calculados")
	return out, nil
}

func toProduct(item dto.InvoiceItemRequest) (entity.Product, error) {
	category, err := entity.ParseTaxCategory(item.Category)
	if err != nil {
		return entity.Product{}, err
	}
	return entity.NewProduct(item.Name, item.Price, category)
}

func toTotalsResponse(inv *entity.Invoice) *dto.InvoiceTotalsResponse {
	entries := inv.Entries()
	lines := make([]dto.InvoiceLineResponse, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, dto.InvoiceLineResponse{
			Name:      e.Product.Name(),
			Category:  string(e.Product.Category()),
			Quantity:  e.Quantity,
			UnitPrice: e.Product.Price(),
			TaxRate:   e.Product.TaxPercentage(),
			Subtotal:  e.NetValue(),
			Tax:       e.Tax(),
			Total:     e.GrossValue(),
		})
	}
	return &dto.InvoiceTotalsResponse{
		NetTotal:   inv.NetValue(),
		TaxTotal:   inv.Tax(),
		GrandTotal: inv.GrossValue(),
		Lines:      lines,
	}
}
