package etl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fuelprices/internal/dataset"
	"fuelprices/internal/model"
)

// Inserter persiste os registros de uma execução de forma atômica.
type Inserter interface {
	EnsureTable() error
	InsertAll(records []model.FuelRecord) error
}

type Loader struct {
	Repo Inserter
}

// Load lê o arquivo transformado, converte cada linha em FuelRecord e insere
// tudo de uma vez. A primeira linha inválida aborta a carga inteira.
func (l *Loader) Load(transformedPath string) (int, error) {
	t, err := dataset.Read(transformedPath, ',')
	if err != nil {
		return 0, fmt.Errorf("load: %w", err)
	}

	records, err := recordsFromTable(t)
	if err != nil {
		return 0, fmt.Errorf("load: %w", err)
	}

	if err := l.Repo.EnsureTable(); err != nil {
		return 0, fmt.Errorf("ensure fuels table: %w", err)
	}
	if err := l.Repo.InsertAll(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func recordsFromTable(t *dataset.Table) ([]model.FuelRecord, error) {
	col := func(name string) (int, error) {
		i, ok := t.Column(name)
		if !ok {
			return 0, fmt.Errorf("column %q not found", name)
		}
		return i, nil
	}

	var idx struct{ retailer, cnpj, zip, product, date, price, unit, brand, year, month int }
	var err error
	for name, dst := range map[string]*int{
		"Revenda":            &idx.retailer,
		"CNPJ da Revenda":    &idx.cnpj,
		"Cep":                &idx.zip,
		"Produto":            &idx.product,
		collectionDateColumn: &idx.date,
		"Valor de Venda":     &idx.price,
		"Unidade de Medida":  &idx.unit,
		"Bandeira":           &idx.brand,
		"Year":               &idx.year,
		"Month":              &idx.month,
	} {
		if *dst, err = col(name); err != nil {
			return nil, err
		}
	}

	records := make([]model.FuelRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		date, err := time.Parse(isoDateLayout, row[idx.date])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad collection date %q: %w", i+1, row[idx.date], err)
		}
		price, err := parsePrice(row[idx.price])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad sale price %q: %w", i+1, row[idx.price], err)
		}
		year, err := strconv.Atoi(row[idx.year])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad year %q: %w", i+1, row[idx.year], err)
		}
		month, err := strconv.Atoi(row[idx.month])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad month %q: %w", i+1, row[idx.month], err)
		}

		records = append(records, model.FuelRecord{
			Retailer:       row[idx.retailer],
			RetailerCNPJ:   row[idx.cnpj],
			ZipCode:        row[idx.zip],
			Product:        row[idx.product],
			CollectionDate: date,
			SalePrice:      price,
			Unit:           row[idx.unit],
			Brand:          row[idx.brand],
			Year:           year,
			Month:          month,
		})
	}
	return records, nil
}

// parsePrice aceita vírgula decimal ("5,99") ou ponto ("5.99").
func parsePrice(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}
