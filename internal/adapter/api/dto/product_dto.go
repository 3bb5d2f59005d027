package dto

// ProductRequest representa la solicitud de creación de producto
type ProductRequest struct {
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code" binding:"required"`
	Category      string `json:"category"`
	UnitOfMeasure string `json:"unit_of_measure"`
	MinimumStock  int64  `json:"minimum_stock" binding:"gte=0"`
	PurchasePrice int64  `json:"purchase_price" binding:"gte=0"`
	SalePrice     int64  `json:"sale_price" binding:"gte=0"`
}

// ProductUpdateRequest representa la actualización de un producto
type ProductUpdateRequest struct {
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code" binding:"required"`
	Category      string `json:"category"`
	UnitOfMeasure string `json:"unit_of_measure"`
	MinimumStock  int64  `json:"minimum_stock" binding:"gte=0"`
	PurchasePrice int64  `json:"purchase_price" binding:"gte=0"`
	SalePrice     int64  `json:"sale_price" binding:"gte=0"`
}

// StockAdjustmentRequest representa un ajuste manual de stock. El delta
// puede ser negativo pero el stock resultante no.
type StockAdjustmentRequest struct {
	Delta  int64  `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}
