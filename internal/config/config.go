package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Snapshot mensal de gasolina/etanol publicado pela ANP.
const defaultSourceURL = "https://gov.br/anp/pt-br/centrais-de-conteudo/dados-abertos/arquivos/shpc/dsan/2025/precos-gasolina-etanol-07.csv"

type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	SourceURL        string
	DiscoverURL      string
	DataDir          string
	RedisURL         string
	MetricsPort      string
	LoadStrategy     string
	LoadBatchSize    int
}

func Load() *Config {
	// Carrega .env da raiz do projeto, se existir
	_ = godotenv.Load()
	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "postgres"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresDB:       getEnv("POSTGRES_DB", "airflow"),
		PostgresUser:     getEnv("POSTGRES_USER", "airflow"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "airflow"),
		SourceURL:        getEnv("SOURCE_URL", defaultSourceURL),
		DiscoverURL:      os.Getenv("DISCOVER_URL"),
		DataDir:          getEnv("DATA_DIR", "/opt/etl/data"),
		RedisURL:         os.Getenv("REDIS_URL"),
		MetricsPort:      getEnv("METRICS_PORT", "9090"),
		LoadStrategy:     getEnv("LOAD_STRATEGY", "batch"),
		LoadBatchSize:    getEnvInt("LOAD_BATCH_SIZE", 500),
	}
}

// DatabaseURL monta o DSN aceito tanto pelo lib/pq quanto pelo pgx.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB,
	)
}

func (c *Config) RawPath() string         { return filepath.Join(c.DataDir, "raw_data.csv") }
func (c *Config) CleanPath() string       { return filepath.Join(c.DataDir, "clean_data.csv") }
func (c *Config) TransformedPath() string { return filepath.Join(c.DataDir, "transformed_data.csv") }

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
