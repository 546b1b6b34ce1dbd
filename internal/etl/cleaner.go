package etl

import (
	"fmt"

	"fuelprices/internal/dataset"
)

// Colunas de endereço e o preço de compra não entram na carga.
var dropColumns = []string{
	"Complemento", "Bairro", "Numero Rua", "Regiao - Sigla",
	"Estado - Sigla", "Municipio", "Nome da Rua", "Valor de Compra",
}

// Clean lê o arquivo bruto (separador ';') e grava a versão reduzida em CSV
// padrão, preservando cabeçalho e ordem das linhas. Colunas da lista que não
// existirem no arquivo são ignoradas.
func Clean(rawPath, cleanPath string) error {
	t, err := dataset.Read(rawPath, ';')
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}
	t.DropColumns(dropColumns...)
	if err := t.Write(cleanPath, ','); err != nil {
		return fmt.Errorf("clean: %w", err)
	}
	return nil
}
