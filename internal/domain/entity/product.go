package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/invoice-core/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxCategory categoría tributaria del producto; fija la tasa de impuesto.
type TaxCategory string

// Categorías soportadas.
const (
	TaxCategoryTaxFree TaxCategory = "tax_free" // exento, 0%
	TaxCategoryDairy   TaxCategory = "dairy"    // lácteos, 8%
	TaxCategoryOther   TaxCategory = "other"    // resto de bienes gravados, 23%
)

var (
	rateTaxFree = decimal.Zero
	rateDairy   = decimal.RequireFromString("0.08")
	rateOther   = decimal.RequireFromString("0.23")
)

// Rate devuelve la tasa como fracción (0.23 = 23%).
func (c TaxCategory) Rate() (decimal.Decimal, error) {
	switch c {
	case TaxCategoryTaxFree:
		return rateTaxFree, nil
	case TaxCategoryDairy:
		return rateDairy, nil
	case TaxCategoryOther:
		return rateOther, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: categoría tributaria desconocida %q", domain.ErrInvalidArgument, string(c))
	}
}

// ParseTaxCategory interpreta el texto recibido de la capa de aplicación.
func ParseTaxCategory(s string) (TaxCategory, error) {
	c := TaxCategory(strings.ToLower(strings.TrimSpace(s)))
	if _, err := c.Rate(); err != nil {
		return "", err
	}
	return c, nil
}

// Product producto facturable. Inmutable: solo se construye con las funciones New*.
type Product struct {
	name          string
	price         decimal.Decimal // precio unitario neto
	category      TaxCategory
	taxPercentage decimal.Decimal
}

// NewProduct crea un producto de la categoría indicada.
func NewProduct(name string, price decimal.Decimal, category TaxCategory) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidArgument)
	}
	if price.IsNegative() {
		return Product{}, fmt.Errorf("%w: precio negativo %s", domain.ErrInvalidArgument, price)
	}
	rate, err := category.Rate()
	if err != nil {
		return Product{}, err
	}
	return Product{
		name:          name,
		price:         price,
		category:      category,
		taxPercentage: rate,
	}, nil
}

// NewTaxFreeProduct producto exento de impuesto.
func NewTaxFreeProduct(name string, price decimal.Decimal) (Product, error) {
	return NewProduct(name, price, TaxCategoryTaxFree)
}

// NewDairyProduct producto lácteo (8%).
func NewDairyProduct(name string, price decimal.Decimal) (Product, error) {
	return NewProduct(name, price, TaxCategoryDairy)
}

// NewOtherProduct bien gravado con la tasa general (23%).
func NewOtherProduct(name string, price decimal.Decimal) (Product, error) {
	return NewProduct(name, price, TaxCategoryOther)
}

// Name, Price, Category y TaxPercentage: accesores de solo lectura.
func (p Product) Name() string                   { return p.name }
func (p Product) Price() decimal.Decimal         { return p.price }
func (p Product) Category() TaxCategory          { return p.category }
func (p Product) TaxPercentage() decimal.Decimal { return p.taxPercentage }

// PriceWithTax precio unitario con impuesto incluido.
func (p Product) PriceWithTax() decimal.Decimal {
	return p.price.Add(p.price.Mul(p.taxPercentage))
}
