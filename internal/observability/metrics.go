package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RegistrosProcessados = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registros_processados_total",
			Help: "Total de registros enviados ao portal de destino",
		},
	)
	RegistrosConfirmados = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registros_confirmados_total",
			Help: "Total de registros confirmados no portal de origem",
		},
	)
	ResolverFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resolver_fallbacks_total",
			Help: "Total de resoluções que caíram em valor padrão/placeholder",
		},
	)
	CatalogoVazio = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalogo_vazio",
			Help: "1 quando o catálogo carregou vazio (modo degradado)",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(RegistrosProcessados, RegistrosConfirmados, ResolverFallbacks, CatalogoVazio)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
