package main

import (
	"flag"
	"log"

	"fuelprices/internal/config"
	"fuelprices/internal/db"
	"fuelprices/internal/etl"
	"fuelprices/internal/observability"
	"fuelprices/internal/repository"
	"fuelprices/internal/runstate"
)

// go run cmd/etl/main.go
// go run cmd/etl/main.go -strategy=copy
func main() {
	strategy := flag.String("strategy", "", "Estratégia de carga: 'batch' ou 'copy' (sobrepõe LOAD_STRATEGY)")
	skipValidate := flag.Bool("skip-validate", false, "Pula o portão de validação pós-carga")
	flag.Parse()

	cfg := config.Load()
	if *strategy != "" {
		cfg.LoadStrategy = *strategy
	}

	observability.Start(cfg.MetricsPort)

	dbConn, err := db.New(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco de dados: %v", err)
	}
	defer dbConn.Close()

	repo := &repository.FuelRepository{DB: dbConn, BatchSize: cfg.LoadBatchSize}

	var inserter etl.Inserter = repo
	if cfg.LoadStrategy == "copy" {
		pool, err := db.NewPool(cfg.DatabaseURL())
		if err != nil {
			log.Fatalf("Não foi possível criar o pool pgx: %v", err)
		}
		defer pool.Close()
		inserter = &repository.CopyRepository{Pool: pool}
	}

	var tracker runstate.Tracker = runstate.NewMemoryTracker()
	if cfg.RedisURL != "" {
		rt, err := runstate.NewRedisTracker(cfg.RedisURL)
		if err != nil {
			log.Fatalf("REDIS_URL inválida: %v", err)
		}
		tracker = rt
	}

	loader := &etl.Loader{Repo: inserter}
	validator := &etl.Validator{Repo: repo}

	stages := []etl.Stage{
		{State: runstate.Extracting, Run: func() error {
			url := cfg.SourceURL
			if cfg.DiscoverURL != "" {
				latest, err := etl.DiscoverLatest(cfg.DiscoverURL)
				if err != nil {
					return err
				}
				log.Printf("Snapshot mais recente: %s", latest)
				url = latest
			}
			return etl.Fetch(url, cfg.RawPath())
		}},
		{State: runstate.Cleaning, Run: func() error {
			return etl.Clean(cfg.RawPath(), cfg.CleanPath())
		}},
		{State: runstate.Transforming, Run: func() error {
			return etl.Transform(cfg.CleanPath(), cfg.TransformedPath())
		}},
		{State: runstate.Loading, Run: func() error {
			n, err := loader.Load(cfg.TransformedPath())
			if err != nil {
				return err
			}
			observability.RowsLoaded.Add(float64(n))
			log.Printf("Carregadas %d linhas na tabela fuels", n)
			return nil
		}},
	}
	if !*skipValidate {
		stages = append(stages, etl.Stage{State: runstate.Validating, Run: validator.Validate})
	}

	p := etl.NewPipeline(stages, tracker)
	log.Printf("Iniciando pipeline de preços de combustíveis (run %s)...", p.RunID)
	if err := p.Run(); err != nil {
		log.Fatalf("Pipeline falhou: %v", err)
	}
	log.Println("Pipeline finalizado com sucesso")
}
