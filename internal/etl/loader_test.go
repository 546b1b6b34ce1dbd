package etl

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelprices/internal/dataset"
	"fuelprices/internal/repository"
)

func newTestRepo(t *testing.T) *repository.FuelRepository {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// banco em memória: cada conexão teria um banco próprio
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return &repository.FuelRepository{DB: db, BatchSize: 2}
}

var transformedHeader = []string{
	"Revenda", "CNPJ da Revenda", "Cep", "Produto",
	"Data da Coleta", "Valor de Venda", "Unidade de Medida", "Bandeira",
	"Year", "Month",
}

func writeTransformed(t *testing.T, rows [][]string) string {
	t.Helper()
	tab := &dataset.Table{Header: transformedHeader, Rows: rows}
	path := filepath.Join(t.TempDir(), "transformed_data.csv")
	require.NoError(t, tab.Write(path, ','))
	return path
}

func TestLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	loader := &Loader{Repo: repo}

	path := writeTransformed(t, [][]string{
		{"Posto A", "12345", "00000", "Gasolina", "2025-01-05", "5,99", "L", "Ipiranga", "2025", "1"},
		{"Posto B", "67890", "11000", "Etanol", "2024-12-31", "3.79", "L", "Shell", "2024", "12"},
		{"Posto C", "11111", "22000", "Gasolina", "2025-01-06", "6,09", "L", "Vibra", "2025", "1"},
	})

	n, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	validator := &Validator{Repo: repo}
	assert.NoError(t, validator.Validate())
}

func TestLoadScenarioRow(t *testing.T) {
	// encadeia clean -> transform -> load a partir do arquivo bruto da ANP
	raw := writeRaw(t, "Revenda;CNPJ da Revenda;Cep;Produto;Data da Coleta;Valor de Venda;Valor de Compra;Unidade de Medida;Bandeira;Municipio\n"+
		"Posto A;12345;00000;Gasolina;05/01/2025;5,99;5,50;L;Ipiranga;NATAL\n")
	dir := t.TempDir()
	clean := filepath.Join(dir, "clean_data.csv")
	transformed := filepath.Join(dir, "transformed_data.csv")

	require.NoError(t, Clean(raw, clean))
	require.NoError(t, Transform(clean, transformed))

	repo := newTestRepo(t)
	loader := &Loader{Repo: repo}
	n, err := loader.Load(transformed)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	var (
		retailer, product string
		date              time.Time
		price             float64
		year, month       int
	)
	err = repo.DB.QueryRow(`
		SELECT retailer, product, collection_date, sale_price, year, month FROM fuels
	`).Scan(&retailer, &product, &date, &price, &year, &month)
	require.NoError(t, err)

	assert.Equal(t, "Posto A", retailer)
	assert.Equal(t, "Gasolina", product)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 5, date.Day())
	assert.InDelta(t, 5.99, price, 1e-9)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
}

func TestLoadMissingColumn(t *testing.T) {
	tab := &dataset.Table{
		Header: []string{"Revenda", "Produto"},
		Rows:   [][]string{{"Posto A", "Gasolina"}},
	}
	path := filepath.Join(t.TempDir(), "transformed_data.csv")
	require.NoError(t, tab.Write(path, ','))

	loader := &Loader{Repo: newTestRepo(t)}
	_, err := loader.Load(path)
	assert.Error(t, err)
}

func TestLoadBadPriceAbortsRun(t *testing.T) {
	repo := newTestRepo(t)
	loader := &Loader{Repo: repo}

	path := writeTransformed(t, [][]string{
		{"Posto A", "12345", "00000", "Gasolina", "2025-01-05", "5,99", "L", "Ipiranga", "2025", "1"},
		{"Posto B", "67890", "11000", "Etanol", "2025-01-05", "caro", "L", "Shell", "2025", "1"},
	})

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caro")

	// nada pode ter sido gravado
	require.NoError(t, repo.EnsureTable())
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
