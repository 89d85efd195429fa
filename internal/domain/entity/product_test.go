package entity_test

import (
	"testing"

	"github.com/jhoicas/invoice-core/internal/domain"
	"github.com/jhoicas/invoice-core/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_TasaPorCategoria(t *testing.T) {
	cases := []struct {
		name string
		new  func(string, decimal.Decimal) (entity.Product, error)
		cat  entity.TaxCategory
		rate string
	}{
		{"exento", entity.NewTaxFreeProduct, entity.TaxCategoryTaxFree, "0"},
		{"lacteo", entity.NewDairyProduct, entity.TaxCategoryDairy, "0.08"},
		{"otro", entity.NewOtherProduct, entity.TaxCategoryOther, "0.23"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.new("Producto", decimal.NewFromInt(10))
			require.NoError(t, err)
			assert.Equal(t, tc.cat, p.Category())
			assert.True(t, p.TaxPercentage().Equal(decimal.RequireFromString(tc.rate)),
				"tasa esperada %s, obtenida %s", tc.rate, p.TaxPercentage())
			assert.True(t, p.Price().Equal(decimal.NewFromInt(10)))
			assert.Equal(t, "Producto", p.Name())
		})
	}
}

func TestProduct_PrecioConImpuesto(t *testing.T) {
	p, err := entity.NewOtherProduct("Destornillador", decimal.NewFromInt(15))
	require.NoError(t, err)
	assert.True(t, p.PriceWithTax().Equal(decimal.RequireFromString("18.45")))
}

func TestProduct_PrecioCeroPermitido(t *testing.T) {
	p, err := entity.NewDairyProduct("Muestra gratis", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, p.Price().IsZero())
}

func TestProduct_ErrorSiPrecioNegativo(t *testing.T) {
	_, err := entity.NewTaxFreeProduct("Libro", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestProduct_ErrorSiNombreVacio(t *testing.T) {
	_, err := entity.NewOtherProduct("   ", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestProduct_ErrorSiCategoriaDesconocida(t *testing.T) {
	_, err := entity.NewProduct("Vino", decimal.NewFromInt(1), entity.TaxCategory("alcohol"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestParseTaxCategory(t *testing.T) {
	c, err := entity.ParseTaxCategory(" Dairy ")
	require.NoError(t, err)
	assert.Equal(t, entity.TaxCategoryDairy, c)

	_, err = entity.ParseTaxCategory("")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
