package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Table é um arquivo delimitado carregado em memória, indexado pelo cabeçalho.
// Categorical marca colunas de baixa cardinalidade; é só uma dica semântica,
// os valores não mudam.
type Table struct {
	Header      []string
	Rows        [][]string
	Categorical []string

	index map[string]int
}

func Read(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delim
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	t := &Table{Header: all[0], Rows: all[1:]}
	t.reindex()
	return t, nil
}

func (t *Table) Write(path string, delim rune) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = delim
	if err := w.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Column devolve o índice da coluna pelo nome do cabeçalho.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// DropColumns remove as colunas nomeadas; nomes ausentes são ignorados.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		if i, ok := t.index[name]; ok {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return
	}

	keep := func(row []string) []string {
		out := make([]string, 0, len(row)-len(drop))
		for i, v := range row {
			if !drop[i] {
				out = append(out, v)
			}
		}
		return out
	}

	t.Header = keep(t.Header)
	for i, row := range t.Rows {
		t.Rows[i] = keep(row)
	}
	t.reindex()
}

// AddColumn anexa uma coluna ao fim da tabela, uma célula por linha.
func (t *Table) AddColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %s has %d values for %d rows", name, len(values), len(t.Rows))
	}
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	t.reindex()
	return nil
}

// MarkCategorical registra as colunas como categóricas. Coluna inexistente é erro.
func (t *Table) MarkCategorical(names ...string) error {
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return fmt.Errorf("categorical column %q not found", name)
		}
		t.Categorical = append(t.Categorical, name)
	}
	return nil
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		t.index[name] = i
	}
}
