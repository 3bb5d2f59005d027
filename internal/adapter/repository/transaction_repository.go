package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/alert"
	"github.com/contapyme/contapyme/internal/domain/product"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/domain/transaction"
	"github.com/contapyme/contapyme/pkg/apperr"
)

const serializationRetries = 3

// TransactionRepository implementa transaction.Repository sobre PostgreSQL.
// El registro y la reversa corren en una transacción serializable: la
// transacción comercial, sus líneas, los ajustes de stock, los movimientos
// de inventario y las alertas de stock bajo se confirman todos o ninguno.
type TransactionRepository struct {
	db  *pgxpool.Pool
	cfg tax.Config
}

// NewTransactionRepository crea el procesador de transacciones
func NewTransactionRepository(db *pgxpool.Pool, cfg tax.Config) transaction.Repository {
	return &TransactionRepository{db: db, cfg: cfg}
}

// CreateWithInventory implementa transaction.Repository.CreateWithInventory
func (r *TransactionRepository) CreateWithInventory(ctx context.Context, input transaction.CreateInput) (*transaction.Transaction, error) {
	if len(input.Lines) == 0 {
		return nil, apperr.Validation("la transacción debe tener al menos una línea")
	}

	var created *transaction.Transaction
	err := r.withSerializableTx(ctx, func(tx pgx.Tx) error {
		t, err := r.createInTx(ctx, tx, input)
		if err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *TransactionRepository) createInTx(ctx context.Context, tx pgx.Tx, input transaction.CreateInput) (*transaction.Transaction, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	type resolved struct {
		productID  string
		stockDelta int64
		unitPrice  int64
	}

	lines := make([]transaction.Line, 0, len(input.Lines))
	deltas := make([]resolved, 0, len(input.Lines))

	for _, in := range input.Lines {
		p, err := findProductForUpdate(ctx, tx, input.BusinessID, in.ProductID)
		if err != nil {
			return nil, err
		}

		line, delta, err := transaction.ResolveLine(p, input.Kind, in)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
		deltas = append(deltas, resolved{productID: p.ID, stockDelta: delta, unitPrice: line.UnitPrice})
	}

	t, err := transaction.New(input.BusinessID, input.Kind, date, input.Exempt, lines, r.cfg.VATDivisor())
	if err != nil {
		return nil, err
	}
	t.Description = input.Description
	t.SupplierName = input.SupplierName
	t.ClientName = input.ClientName
	t.DocumentNumber = input.DocumentNumber

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (
			id, business_id, kind, date, gross_amount, net_amount, tax_amount,
			exempt, description, supplier_name, client_name, document_number, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.BusinessID, t.Kind, t.Date, t.GrossAmount, t.NetAmount, t.TaxAmount,
		t.Exempt, t.Description, t.SupplierName, t.ClientName, t.DocumentNumber, t.CreatedAt)
	if err != nil {
		return nil, apperr.Internal("error al insertar la transacción", err)
	}

	for i, line := range t.Lines {
		_, err = tx.Exec(ctx,
			`INSERT INTO transaction_lines (id, transaction_id, product_id, quantity, unit_price, subtotal)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, line.TransactionID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal)
		if err != nil {
			return nil, apperr.Internal("error al insertar la línea", err)
		}

		d := deltas[i]
		kind := product.MovementExit
		if d.stockDelta > 0 {
			kind = product.MovementEntry
		}
		if err := applyStockDelta(ctx, tx, input.BusinessID, d.productID, t.ID, kind, d.stockDelta, ""); err != nil {
			return nil, err
		}

		// en compras el precio de compra del producto se refresca al último pagado
		if input.Kind == transaction.KindPurchase {
			_, err = tx.Exec(ctx,
				`UPDATE products SET purchase_price = $1, updated_at = $2 WHERE id = $3`,
				d.unitPrice, time.Now(), d.productID)
			if err != nil {
				return nil, apperr.Internal("error al actualizar el precio de compra", err)
			}
		}

		if err := raiseLowStockAlert(ctx, tx, input.BusinessID, d.productID); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Reverse implementa transaction.Repository.Reverse
func (r *TransactionRepository) Reverse(ctx context.Context, businessID, id string) error {
	return r.withSerializableTx(ctx, func(tx pgx.Tx) error {
		t, err := findTransactionInTx(ctx, tx, businessID, id)
		if err != nil {
			return err
		}

		for _, line := range t.Lines {
			// la reversa aplica el delta opuesto al del registro original
			delta := line.Quantity
			kind := product.MovementEntry
			if t.Kind == transaction.KindPurchase {
				delta = -line.Quantity
				kind = product.MovementExit
			}

			if _, err := findProductForUpdate(ctx, tx, businessID, line.ProductID); err != nil {
				return err
			}
			if err := applyStockDelta(ctx, tx, businessID, line.ProductID, t.ID, kind, delta,
				fmt.Sprintf("reversa de %s", t.ID)); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM transaction_lines WHERE transaction_id = $1`, t.ID); err != nil {
			return apperr.Internal("error al eliminar las líneas", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, t.ID); err != nil {
			return apperr.Internal("error al eliminar la transacción", err)
		}
		return nil
	})
}

// FindByID implementa transaction.Repository.FindByID
func (r *TransactionRepository) FindByID(ctx context.Context, businessID, id string) (*transaction.Transaction, error) {
	var t transaction.Transaction
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, kind, date, gross_amount, net_amount, tax_amount,
			exempt, description, supplier_name, client_name, document_number, created_at
		 FROM transactions WHERE id = $1 AND business_id = $2`,
		id, businessID).Scan(
		&t.ID, &t.BusinessID, &t.Kind, &t.Date, &t.GrossAmount, &t.NetAmount, &t.TaxAmount,
		&t.Exempt, &t.Description, &t.SupplierName, &t.ClientName, &t.DocumentNumber, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("transacción no encontrada: %s", id)
		}
		return nil, apperr.Internal("error al buscar la transacción", err)
	}

	lines, err := r.findLines(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Lines = lines
	return &t, nil
}

// List implementa transaction.Repository.List
func (r *TransactionRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, kind, date, gross_amount, net_amount, tax_amount,
			exempt, description, supplier_name, client_name, document_number, created_at
		 FROM transactions WHERE business_id = $1
		 ORDER BY date DESC, created_at DESC
		 LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("error al listar transacciones", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListByPeriod implementa transaction.Repository.ListByPeriod
func (r *TransactionRepository) ListByPeriod(ctx context.Context, businessID string, from, to time.Time) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, kind, date, gross_amount, net_amount, tax_amount,
			exempt, description, supplier_name, client_name, document_number, created_at
		 FROM transactions
		 WHERE business_id = $1 AND date >= $2 AND date <= $3
		 ORDER BY date`,
		businessID, from, to)
	if err != nil {
		return nil, apperr.Internal("error al listar transacciones del período", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	for rows.Next() {
		var t transaction.Transaction
		if err := rows.Scan(
			&t.ID, &t.BusinessID, &t.Kind, &t.Date, &t.GrossAmount, &t.NetAmount, &t.TaxAmount,
			&t.Exempt, &t.Description, &t.SupplierName, &t.ClientName, &t.DocumentNumber, &t.CreatedAt); err != nil {
			return nil, apperr.Internal("error al leer la transacción", err)
		}
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) findLines(ctx context.Context, transactionID string) ([]transaction.Line, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, transaction_id, product_id, quantity, unit_price, subtotal
		 FROM transaction_lines WHERE transaction_id = $1`,
		transactionID)
	if err != nil {
		return nil, apperr.Internal("error al listar las líneas", err)
	}
	defer rows.Close()

	var lines []transaction.Line
	for rows.Next() {
		var l transaction.Line
		if err := rows.Scan(&l.ID, &l.TransactionID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, apperr.Internal("error al leer la línea", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// withSerializableTx ejecuta fn dentro de una transacción serializable,
// reintentando ante fallas de serialización del motor
func (r *TransactionRepository) withSerializableTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 0; attempt < serializationRetries; attempt++ {
		err = r.runTx(ctx, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return apperr.Internal("la transacción no pudo serializarse", err)
}

func (r *TransactionRepository) runTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return apperr.Internal("error al iniciar la transacción de base de datos", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.Internal("error al confirmar la transacción de base de datos", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	return strings.Contains(err.Error(), "40001") ||
		strings.Contains(err.Error(), "could not serialize")
}

func findTransactionInTx(ctx context.Context, tx pgx.Tx, businessID, id string) (*transaction.Transaction, error) {
	var t transaction.Transaction
	err := tx.QueryRow(ctx,
		`SELECT id, business_id, kind, date, gross_amount, net_amount, tax_amount,
			exempt, description, supplier_name, client_name, document_number, created_at
		 FROM transactions WHERE id = $1 AND business_id = $2`,
		id, businessID).Scan(
		&t.ID, &t.BusinessID, &t.Kind, &t.Date, &t.GrossAmount, &t.NetAmount, &t.TaxAmount,
		&t.Exempt, &t.Description, &t.SupplierName, &t.ClientName, &t.DocumentNumber, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("transacción no encontrada: %s", id)
		}
		return nil, apperr.Internal("error al buscar la transacción", err)
	}

	rows, err := tx.Query(ctx,
		`SELECT id, transaction_id, product_id, quantity, unit_price, subtotal
		 FROM transaction_lines WHERE transaction_id = $1`,
		t.ID)
	if err != nil {
		return nil, apperr.Internal("error al listar las líneas", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l transaction.Line
		if err := rows.Scan(&l.ID, &l.TransactionID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, apperr.Internal("error al leer la línea", err)
		}
		t.Lines = append(t.Lines, l)
	}
	return &t, rows.Err()
}

func findProductForUpdate(ctx context.Context, tx pgx.Tx, businessID, productID string) (*product.Product, error) {
	var p product.Product
	err := tx.QueryRow(ctx,
		`SELECT id, business_id, name, code, category, current_stock, minimum_stock,
			unit_of_measure, purchase_price, sale_price, active, created_at, updated_at
		 FROM products WHERE id = $1 AND business_id = $2
		 FOR UPDATE`,
		productID, businessID).Scan(
		&p.ID, &p.BusinessID, &p.Name, &p.Code, &p.Category, &p.CurrentStock, &p.MinimumStock,
		&p.UnitOfMeasure, &p.PurchasePrice, &p.SalePrice, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("producto no encontrado: %s", productID)
		}
		return nil, apperr.Internal("error al buscar el producto", err)
	}
	if !p.Active {
		return nil, apperr.Validation("el producto %s está inactivo", p.Name)
	}
	return &p, nil
}

// applyStockDelta ajusta el stock del producto y registra el movimiento.
// El stock nunca puede quedar negativo.
func applyStockDelta(ctx context.Context, tx pgx.Tx, businessID, productID, transactionID string,
	kind product.MovementKind, delta int64, reason string) error {

	var before, after int64
	err := tx.QueryRow(ctx,
		`UPDATE products
		 SET current_stock = current_stock + $1, updated_at = $2
		 WHERE id = $3 AND business_id = $4 AND current_stock + $1 >= 0
		 RETURNING current_stock - $1, current_stock`,
		delta, time.Now(), productID, businessID).Scan(&before, &after)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Conflict("stock insuficiente para revertir o ajustar el producto %s", productID)
		}
		return apperr.Internal("error al ajustar el stock", err)
	}

	quantity := delta
	if quantity < 0 {
		quantity = -quantity
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO stock_movements (id, product_id, transaction_id, kind, quantity, stock_before, stock_after, reason, created_at)
		 VALUES (gen_random_uuid(), $1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`,
		productID, transactionID, kind, quantity, before, after, reason, time.Now())
	if err != nil {
		return apperr.Internal("error al registrar el movimiento de stock", err)
	}
	return nil
}

// raiseLowStockAlert crea una alerta si el producto quedó en o bajo su stock
// mínimo y no existe ya una alerta de stock bajo sin resolver para él
func raiseLowStockAlert(ctx context.Context, tx pgx.Tx, businessID, productID string) error {
	var p product.Product
	err := tx.QueryRow(ctx,
		`SELECT id, name, current_stock, minimum_stock FROM products WHERE id = $1`,
		productID).Scan(&p.ID, &p.Name, &p.CurrentStock, &p.MinimumStock)
	if err != nil {
		return apperr.Internal("error al verificar el stock mínimo", err)
	}
	if !p.BelowMinimum() {
		return nil
	}

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE business_id = $1 AND kind = $2 AND resolved = false
			  AND metadata->>'product_id' = $3
		)`,
		businessID, alert.KindLowStock, productID).Scan(&exists)
	if err != nil {
		return apperr.Internal("error al verificar alertas existentes", err)
	}
	if exists {
		return nil
	}

	a, err := alert.New(businessID, alert.KindLowStock,
		fmt.Sprintf("Stock bajo: %s", p.Name),
		fmt.Sprintf("El producto %s quedó con %d unidades (mínimo %d)", p.Name, p.CurrentStock, p.MinimumStock),
		alert.PriorityHigh,
		map[string]string{"product_id": p.ID})
	if err != nil {
		return err
	}

	return insertAlertInTx(ctx, tx, a)
}
