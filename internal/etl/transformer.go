package etl

import (
	"fmt"
	"strconv"
	"time"

	"fuelprices/internal/dataset"
)

var categoryColumns = []string{
	"Revenda", "CNPJ da Revenda", "Cep", "Produto", "Unidade de Medida", "Bandeira",
}

const (
	collectionDateColumn = "Data da Coleta"
	sourceDateLayout     = "02/01/2006"
	isoDateLayout        = "2006-01-02"
)

// Transform marca as colunas categóricas, converte a data de coleta de
// dd/mm/aaaa para ISO e anexa as colunas derivadas Year e Month. A saída tem
// exatamente as mesmas linhas da entrada.
func Transform(cleanPath, outPath string) error {
	t, err := dataset.Read(cleanPath, ',')
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	if err := t.MarkCategorical(categoryColumns...); err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	dateIdx, ok := t.Column(collectionDateColumn)
	if !ok {
		return fmt.Errorf("transform: column %q not found", collectionDateColumn)
	}

	years := make([]string, len(t.Rows))
	months := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		d, err := time.Parse(sourceDateLayout, row[dateIdx])
		if err != nil {
			return fmt.Errorf("transform: row %d: bad collection date %q: %w", i+1, row[dateIdx], err)
		}
		row[dateIdx] = d.Format(isoDateLayout)
		years[i] = strconv.Itoa(d.Year())
		months[i] = strconv.Itoa(int(d.Month()))
	}

	if err := t.AddColumn("Year", years); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if err := t.AddColumn("Month", months); err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	if err := t.Write(outPath, ','); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	return nil
}
