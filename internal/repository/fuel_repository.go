package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"fuelprices/internal/model"
)

const createFuelsTable = `
	CREATE TABLE IF NOT EXISTS fuels (
		retailer TEXT,
		retailer_cnpj TEXT,
		zip_code TEXT,
		product TEXT,
		collection_date DATE,
		sale_price NUMERIC,
		unit TEXT,
		brand TEXT,
		year INT,
		month INT
	)
`

var fuelColumns = []string{
	"retailer", "retailer_cnpj", "zip_code", "product", "collection_date",
	"sale_price", "unit", "brand", "year", "month",
}

type FuelRepository struct {
	DB *sql.DB
	// Linhas por INSERT. O limite de parâmetros do driver é quem manda aqui
	// (Postgres aceita 65535; cada linha gasta 10).
	BatchSize int
}

func (r *FuelRepository) EnsureTable() error {
	_, err := r.DB.Exec(createFuelsTable)
	return err
}

// InsertAll grava todos os registros da execução em uma única transação,
// em lotes de BatchSize linhas por comando. Qualquer erro desfaz tudo.
func (r *FuelRepository) InsertAll(records []model.FuelRecord) error {
	size := r.BatchSize
	if size <= 0 {
		size = 500
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}

	for i := 0; i < len(records); i += size {
		end := i + size
		if end > len(records) {
			end = len(records)
		}
		if err := insertBatch(tx, records[i:end]); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert fuels: %w", err)
		}
	}

	return tx.Commit()
}

func insertBatch(tx *sql.Tx, batch []model.FuelRecord) error {
	var sb strings.Builder
	sb.WriteString("INSERT INTO fuels (")
	sb.WriteString(strings.Join(fuelColumns, ", "))
	sb.WriteString(") VALUES ")

	args := make([]interface{}, 0, len(batch)*len(fuelColumns))
	for i, rec := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := range fuelColumns {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*len(fuelColumns)+j+1)
		}
		sb.WriteString(")")
		args = append(args,
			rec.Retailer, rec.RetailerCNPJ, rec.ZipCode, rec.Product, rec.CollectionDate,
			rec.SalePrice, rec.Unit, rec.Brand, rec.Year, rec.Month,
		)
	}

	_, err := tx.Exec(sb.String(), args...)
	return err
}

func (r *FuelRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM fuels").Scan(&n)
	return n, err
}

// CountCriticalNulls conta linhas sem revendedor, produto ou preço de venda.
func (r *FuelRepository) CountCriticalNulls() (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM fuels
		WHERE retailer IS NULL OR product IS NULL OR sale_price IS NULL
	`).Scan(&n)
	return n, err
}
