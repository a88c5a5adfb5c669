package main

import (
	"context"
	"flag"
	"log"

	"github.com/redis/go-redis/v9"

	"autoapple/internal/catalog"
	"autoapple/internal/config"
	"autoapple/internal/db"
	"autoapple/internal/observability"
	"autoapple/internal/pipeline"
	"autoapple/internal/portal"
	"autoapple/internal/repository"
	"autoapple/internal/resolver"
)

// go run cmd/autoapple/main.go -token=123456
func main() {
	token := flag.String("token", "", "Token 2FA do portal de destino")
	flag.Parse()

	cfg := config.Load()

	if cfg.MBUser == "" || cfg.MBPass == "" || cfg.OABIUser == "" || cfg.OABIPass == "" {
		log.Println("Faltam variáveis MB_USER/MB_PASS/OABI_USER/OABI_PASS (.env ou exportadas); o login vai falhar")
	}

	observability.Start(cfg.MetricsPort)

	store := loadCatalog(cfg)
	if store.IsEmpty() {
		log.Println("Catálogo vazio: resolvendo só com regras padrão")
		observability.CatalogoVazio.Set(1)
	}

	p := &pipeline.Pipeline{
		Origem: &portal.HTTPOrigem{
			Client:  portal.NewClient(),
			BaseURL: cfg.MBBaseURL,
			User:    cfg.MBUser,
			Pass:    cfg.MBPass,
			Sel:     cfg.Selectors,
		},
		Destino: &portal.HTTPDestino{
			Client:  portal.NewClient(),
			BaseURL: cfg.OABIBaseURL,
			User:    cfg.OABIUser,
			Pass:    cfg.OABIPass,
		},
		Resolver: &resolver.Resolver{Catalog: store},
	}

	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Não foi possível criar o pool de conexões: %v", err)
		}
		defer pool.Close()
		p.Audit = &repository.AuditRepository{DB: pool}
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("REDIS_URL inválida: %v", err)
		}
		p.Journal = &repository.Journal{Client: redis.NewClient(opts)}
	}

	if err := p.Run(*token); err != nil {
		log.Fatalf("Rodada interrompida: %v", err)
	}
}

// loadCatalog prefere a tabela de referência no Postgres; sem banco,
// cai no CSV configurado.
func loadCatalog(cfg *config.Config) *catalog.Store {
	if cfg.DatabaseURL != "" {
		conn, err := db.New(cfg.DatabaseURL)
		if err == nil {
			repo := &repository.CatalogRepository{DB: conn}
			if store := repo.Load(); !store.IsEmpty() {
				return store
			}
		}
	}
	return catalog.LoadCSV(cfg.CatalogPath)
}
