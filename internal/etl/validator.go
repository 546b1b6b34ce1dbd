package etl

import (
	"errors"
	"fmt"
)

// ErrIntegrity sinaliza falha de integridade de dados pós-carga.
var ErrIntegrity = errors.New("data integrity violation")

// Counter expõe as contagens que o portão de validação precisa.
type Counter interface {
	Count() (int, error)
	CountCriticalNulls() (int, error)
}

type Validator struct {
	Repo Counter
}

// Validate roda somente leitura, depois do commit da carga: tabela vazia ou
// nulos críticos (revendedor, produto, preço de venda) reprovam a execução,
// mas não desfazem a carga.
func (v *Validator) Validate() error {
	rows, err := v.Repo.Count()
	if err != nil {
		return fmt.Errorf("count fuels: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: no rows in fuels table", ErrIntegrity)
	}

	nulls, err := v.Repo.CountCriticalNulls()
	if err != nil {
		return fmt.Errorf("count critical nulls: %w", err)
	}
	if nulls > 0 {
		return fmt.Errorf("%w: %d rows with critical null values", ErrIntegrity, nulls)
	}
	return nil
}
