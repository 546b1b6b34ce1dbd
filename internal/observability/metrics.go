package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	StageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "etl_stage_duration_seconds",
			Help: "Duração de cada estágio do pipeline",
		},
		[]string{"stage"},
	)
	RowsLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "etl_rows_loaded_total",
			Help: "Total de linhas carregadas na tabela fuels",
		},
	)
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "etl_runs_total",
			Help: "Total de execuções do pipeline por status",
		},
		[]string{"status"},
	)
)

func Start(port string) {
	prometheus.MustRegister(StageDuration, RowsLoaded, RunsTotal)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
