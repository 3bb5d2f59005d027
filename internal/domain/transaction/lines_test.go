package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/internal/domain/product"
	"github.com/contapyme/contapyme/pkg/apperr"
)

func stockedProduct(stock, salePrice int64) *product.Product {
	return &product.Product{
		ID:           "prod-1",
		BusinessID:   "biz-1",
		Name:         "Harina 1kg",
		CurrentStock: stock,
		MinimumStock: 2,
		SalePrice:    salePrice,
	}
}

func TestResolveLineSale(t *testing.T) {
	p := stockedProduct(10, 1500)

	line, delta, err := ResolveLine(p, KindSale, CreateLineInput{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(1500), line.UnitPrice, "el precio se fuerza al de venta")
	assert.Equal(t, int64(4500), line.Subtotal)
	assert.Equal(t, int64(-3), delta)
}

func TestResolveLineSaleIgnoresRequestedPrice(t *testing.T) {
	p := stockedProduct(10, 1500)
	otherPrice := int64(99)

	line, _, err := ResolveLine(p, KindSale, CreateLineInput{ProductID: p.ID, Quantity: 1, UnitPrice: &otherPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), line.UnitPrice)
}

func TestResolveLineOversellRejected(t *testing.T) {
	p := stockedProduct(3, 1500)

	_, _, err := ResolveLine(p, KindSale, CreateLineInput{ProductID: p.ID, Quantity: 5})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Contains(t, err.Error(), "disponible 3")
	assert.Equal(t, int64(3), p.CurrentStock, "el rechazo no toca el stock")
}

func TestResolveLineSaleWithoutPrice(t *testing.T) {
	p := stockedProduct(10, 0)

	_, _, err := ResolveLine(p, KindSale, CreateLineInput{ProductID: p.ID, Quantity: 1})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestResolveLinePurchase(t *testing.T) {
	p := stockedProduct(0, 1500)
	price := int64(900)

	line, delta, err := ResolveLine(p, KindPurchase, CreateLineInput{ProductID: p.ID, Quantity: 20, UnitPrice: &price})
	require.NoError(t, err)

	assert.Equal(t, int64(900), line.UnitPrice)
	assert.Equal(t, int64(18000), line.Subtotal)
	assert.Equal(t, int64(20), delta)
}

func TestResolveLinePurchaseRequiresPrice(t *testing.T) {
	p := stockedProduct(0, 1500)
	zero := int64(0)

	_, _, err := ResolveLine(p, KindPurchase, CreateLineInput{ProductID: p.ID, Quantity: 1})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, _, err = ResolveLine(p, KindPurchase, CreateLineInput{ProductID: p.ID, Quantity: 1, UnitPrice: &zero})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestResolveLineQuantity(t *testing.T) {
	p := stockedProduct(10, 1500)

	for _, qty := range []int64{0, -1} {
		_, _, err := ResolveLine(p, KindSale, CreateLineInput{ProductID: p.ID, Quantity: qty})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	}
}
