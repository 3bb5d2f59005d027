package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/product"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// ProductRepository implementa la interfaz product.Repository. El stock no
// se modifica aquí: los ajustes ligados a transacciones los ejecuta el
// procesador de transacciones en su unidad atómica.
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository crea una nueva instancia de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, business_id, name, code, category, current_stock, minimum_stock,
			unit_of_measure, purchase_price, sale_price, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.BusinessID, p.Name, p.Code, p.Category, p.CurrentStock, p.MinimumStock,
		p.UnitOfMeasure, p.PurchasePrice, p.SalePrice, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflict("ya existe un producto con código %s", p.Code)
		}
		return apperr.Internal("error al crear el producto", err)
	}
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, businessID, id string) (*product.Product, error) {
	return r.findOne(ctx, `id = $1 AND business_id = $2`, id, businessID)
}

// FindByCode implementa product.Repository.FindByCode
func (r *ProductRepository) FindByCode(ctx context.Context, businessID, code string) (*product.Product, error) {
	return r.findOne(ctx, `code = $1 AND business_id = $2`, code, businessID)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, name, code, category, current_stock, minimum_stock,
			unit_of_measure, purchase_price, sale_price, active, created_at, updated_at
		 FROM products WHERE business_id = $1 AND active = true
		 ORDER BY name
		 LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("error al listar productos", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Name, &p.Code, &p.Category,
			&p.CurrentStock, &p.MinimumStock, &p.UnitOfMeasure, &p.PurchasePrice,
			&p.SalePrice, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, apperr.Internal("error al leer el producto", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, code = $2, category = $3, minimum_stock = $4,
			unit_of_measure = $5, purchase_price = $6, sale_price = $7,
			active = $8, updated_at = $9
		 WHERE id = $10 AND business_id = $11`,
		p.Name, p.Code, p.Category, p.MinimumStock,
		p.UnitOfMeasure, p.PurchasePrice, p.SalePrice,
		p.Active, p.UpdatedAt, p.ID, p.BusinessID)
	if err != nil {
		return apperr.Internal("error al actualizar el producto", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("producto no encontrado: %s", p.ID)
	}
	return nil
}

// AdjustStock implementa product.Repository.AdjustStock
func (r *ProductRepository) AdjustStock(ctx context.Context, businessID, id string, delta int64, reason string) (*product.Product, error) {
	if delta == 0 {
		return nil, apperr.Validation("el ajuste de stock no puede ser cero")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Internal("error al iniciar la transacción de base de datos", err)
	}
	defer tx.Rollback(ctx)

	if _, err := findProductForUpdate(ctx, tx, businessID, id); err != nil {
		return nil, err
	}
	if err := applyStockDelta(ctx, tx, businessID, id, "", product.MovementAdjustment, delta, reason); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Internal("error al confirmar la transacción de base de datos", err)
	}

	return r.FindByID(ctx, businessID, id)
}

// ListMovements implementa product.Repository.ListMovements
func (r *ProductRepository) ListMovements(ctx context.Context, productID string, limit, offset int) ([]*product.StockMovement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, COALESCE(transaction_id, ''), kind, quantity,
			stock_before, stock_after, reason, created_at
		 FROM stock_movements WHERE product_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		productID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("error al listar movimientos de stock", err)
	}
	defer rows.Close()

	var movements []*product.StockMovement
	for rows.Next() {
		var m product.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.TransactionID, &m.Kind, &m.Quantity,
			&m.StockBefore, &m.StockAfter, &m.Reason, &m.CreatedAt); err != nil {
			return nil, apperr.Internal("error al leer el movimiento", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

func (r *ProductRepository) findOne(ctx context.Context, where string, args ...any) (*product.Product, error) {
	var p product.Product
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, name, code, category, current_stock, minimum_stock,
			unit_of_measure, purchase_price, sale_price, active, created_at, updated_at
		 FROM products WHERE `+where, args...).Scan(
		&p.ID, &p.BusinessID, &p.Name, &p.Code, &p.Category,
		&p.CurrentStock, &p.MinimumStock, &p.UnitOfMeasure, &p.PurchasePrice,
		&p.SalePrice, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("producto no encontrado")
		}
		return nil, apperr.Internal("error al buscar el producto", err)
	}
	return &p, nil
}
