package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fuelprices/internal/model"
)

// CopyRepository carrega via COPY, bem mais rápido que INSERT para os
// snapshots mensais grandes da ANP. Mesmo contrato do FuelRepository:
// tudo ou nada dentro de uma transação.
type CopyRepository struct {
	Pool *pgxpool.Pool
}

func (r *CopyRepository) EnsureTable() error {
	_, err := r.Pool.Exec(context.Background(), createFuelsTable)
	return err
}

func (r *CopyRepository) InsertAll(records []model.FuelRecord) error {
	ctx := context.Background()

	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		rows[i] = []interface{}{
			rec.Retailer, rec.RetailerCNPJ, rec.ZipCode, rec.Product, rec.CollectionDate,
			rec.SalePrice, rec.Unit, rec.Brand, rec.Year, rec.Month,
		}
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"fuels"}, fuelColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy fuels: %w", err)
	}
	if n != int64(len(records)) {
		return fmt.Errorf("copy fuels: wrote %d of %d rows", n, len(records))
	}

	return tx.Commit(ctx)
}
