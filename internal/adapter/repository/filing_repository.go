package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/filing"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// F29Repository implementa la interfaz filing.F29Repository. La unicidad
// por empresa, mes y año la garantiza una restricción única: ante una
// creación concurrente el perdedor recupera y devuelve la fila ganadora.
type F29Repository struct {
	db *pgxpool.Pool
}

// NewF29Repository crea una nueva instancia de F29Repository
func NewF29Repository(db *pgxpool.Pool) filing.F29Repository {
	return &F29Repository{db: db}
}

// Create implementa filing.F29Repository.Create
func (r *F29Repository) Create(ctx context.Context, f *filing.F29) (*filing.F29, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO f29_filings (
			id, business_id, month, year, taxable_sales, exempt_sales,
			taxable_purchases, exempt_purchases, vat_debit, vat_credit,
			vat_determined, ppm_base, ppm_rate, ppm_amount, total_due,
			status, folio, filed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		f.ID, f.BusinessID, f.Month, f.Year, f.TaxableSales, f.ExemptSales,
		f.TaxablePurchases, f.ExemptPurchases, f.VATDebit, f.VATCredit,
		f.VATDetermined, f.PPMBase, f.PPMRate, f.PPMAmount, f.TotalDue,
		f.Status, f.Folio, f.FiledAt, f.CreatedAt, f.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return r.FindByPeriod(ctx, f.BusinessID, f.Month, f.Year)
		}
		return nil, apperr.Internal("error al crear el F29", err)
	}
	return f, nil
}

// FindByID implementa filing.F29Repository.FindByID
func (r *F29Repository) FindByID(ctx context.Context, businessID, id string) (*filing.F29, error) {
	return r.findOne(ctx, `id = $1 AND business_id = $2`, id, businessID)
}

// FindByPeriod implementa filing.F29Repository.FindByPeriod
func (r *F29Repository) FindByPeriod(ctx context.Context, businessID string, month, year int) (*filing.F29, error) {
	return r.findOne(ctx, `business_id = $1 AND month = $2 AND year = $3`, businessID, month, year)
}

// ListByYear implementa filing.F29Repository.ListByYear
func (r *F29Repository) ListByYear(ctx context.Context, businessID string, year int) ([]*filing.F29, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, month, year, taxable_sales, exempt_sales,
			taxable_purchases, exempt_purchases, vat_debit, vat_credit,
			vat_determined, ppm_base, ppm_rate, ppm_amount, total_due,
			status, folio, filed_at, created_at, updated_at
		 FROM f29_filings WHERE business_id = $1 AND year = $2
		 ORDER BY month`,
		businessID, year)
	if err != nil {
		return nil, apperr.Internal("error al listar los F29", err)
	}
	defer rows.Close()

	var filings []*filing.F29
	for rows.Next() {
		f, err := scanF29(rows)
		if err != nil {
			return nil, err
		}
		filings = append(filings, f)
	}
	return filings, rows.Err()
}

// Update implementa filing.F29Repository.Update
func (r *F29Repository) Update(ctx context.Context, f *filing.F29) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE f29_filings SET
			taxable_sales = $1, exempt_sales = $2, taxable_purchases = $3,
			exempt_purchases = $4, vat_debit = $5, vat_credit = $6,
			vat_determined = $7, ppm_base = $8, ppm_rate = $9, ppm_amount = $10,
			total_due = $11, status = $12, folio = $13, filed_at = $14, updated_at = $15
		 WHERE id = $16 AND business_id = $17`,
		f.TaxableSales, f.ExemptSales, f.TaxablePurchases,
		f.ExemptPurchases, f.VATDebit, f.VATCredit,
		f.VATDetermined, f.PPMBase, f.PPMRate, f.PPMAmount,
		f.TotalDue, f.Status, f.Folio, f.FiledAt, f.UpdatedAt,
		f.ID, f.BusinessID)
	if err != nil {
		return apperr.Internal("error al actualizar el F29", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("F29 no encontrado: %s", f.ID)
	}
	return nil
}

func (r *F29Repository) findOne(ctx context.Context, where string, args ...any) (*filing.F29, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, business_id, month, year, taxable_sales, exempt_sales,
			taxable_purchases, exempt_purchases, vat_debit, vat_credit,
			vat_determined, ppm_base, ppm_rate, ppm_amount, total_due,
			status, folio, filed_at, created_at, updated_at
		 FROM f29_filings WHERE `+where, args...)

	f, err := scanF29(row)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.NotFound("F29 no encontrado")
		}
		return nil, err
	}
	return f, nil
}

func scanF29(row pgx.Row) (*filing.F29, error) {
	var f filing.F29
	err := row.Scan(
		&f.ID, &f.BusinessID, &f.Month, &f.Year, &f.TaxableSales, &f.ExemptSales,
		&f.TaxablePurchases, &f.ExemptPurchases, &f.VATDebit, &f.VATCredit,
		&f.VATDetermined, &f.PPMBase, &f.PPMRate, &f.PPMAmount, &f.TotalDue,
		&f.Status, &f.Folio, &f.FiledAt, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("F29 no encontrado")
		}
		return nil, apperr.Internal("error al leer el F29", err)
	}
	return &f, nil
}

// F22Repository implementa la interfaz filing.F22Repository
type F22Repository struct {
	db *pgxpool.Pool
}

// NewF22Repository crea una nueva instancia de F22Repository
func NewF22Repository(db *pgxpool.Pool) filing.F22Repository {
	return &F22Repository{db: db}
}

// Create implementa filing.F22Repository.Create
func (r *F22Repository) Create(ctx context.Context, f *filing.F22) (*filing.F22, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO f22_filings (
			id, business_id, year, total_income, deductible_expenses,
			taxable_base, ppm_paid, tax_determined, balance, polarity,
			status, folio, filed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		f.ID, f.BusinessID, f.Year, f.TotalIncome, f.DeductibleExpenses,
		f.TaxableBase, f.PPMPaid, f.TaxDetermined, f.Balance, f.Polarity,
		f.Status, f.Folio, f.FiledAt, f.CreatedAt, f.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return r.FindByYear(ctx, f.BusinessID, f.Year)
		}
		return nil, apperr.Internal("error al crear el F22", err)
	}
	return f, nil
}

// FindByYear implementa filing.F22Repository.FindByYear
func (r *F22Repository) FindByYear(ctx context.Context, businessID string, year int) (*filing.F22, error) {
	var f filing.F22
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, year, total_income, deductible_expenses,
			taxable_base, ppm_paid, tax_determined, balance, polarity,
			status, folio, filed_at, created_at, updated_at
		 FROM f22_filings WHERE business_id = $1 AND year = $2`,
		businessID, year).Scan(
		&f.ID, &f.BusinessID, &f.Year, &f.TotalIncome, &f.DeductibleExpenses,
		&f.TaxableBase, &f.PPMPaid, &f.TaxDetermined, &f.Balance, &f.Polarity,
		&f.Status, &f.Folio, &f.FiledAt, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("no existe F22 del año %d", year)
		}
		return nil, apperr.Internal("error al buscar el F22", err)
	}
	return &f, nil
}

// Update implementa filing.F22Repository.Update
func (r *F22Repository) Update(ctx context.Context, f *filing.F22) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE f22_filings SET status = $1, folio = $2, filed_at = $3, updated_at = $4
		 WHERE id = $5 AND business_id = $6`,
		f.Status, f.Folio, f.FiledAt, f.UpdatedAt, f.ID, f.BusinessID)
	if err != nil {
		return apperr.Internal("error al actualizar el F22", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("F22 no encontrado: %s", f.ID)
	}
	return nil
}
