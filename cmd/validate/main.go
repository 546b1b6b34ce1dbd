package main

import (
	"log"

	"fuelprices/internal/config"
	"fuelprices/internal/db"
	"fuelprices/internal/etl"
	"fuelprices/internal/repository"
)

// Revalida a tabela fuels sem rodar o pipeline (útil após cargas manuais).
func main() {
	cfg := config.Load()

	dbConn, err := db.New(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco de dados: %v", err)
	}
	defer dbConn.Close()

	validator := &etl.Validator{Repo: &repository.FuelRepository{DB: dbConn}}
	if err := validator.Validate(); err != nil {
		log.Fatalf("Validação falhou: %v", err)
	}
	log.Println("Validação do banco de dados concluída")
}
