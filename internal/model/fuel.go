package model

import "time"

// FuelRecord é uma observação de preço de combustível pronta para a tabela fuels.
type FuelRecord struct {
	Retailer       string
	RetailerCNPJ   string
	ZipCode        string
	Product        string
	CollectionDate time.Time
	SalePrice      float64
	Unit           string
	Brand          string
	Year           int
	Month          int
}
