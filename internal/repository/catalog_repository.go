package repository

import (
	"database/sql"
	"log"

	"autoapple/internal/catalog"
)

// CatalogRepository carrega o catálogo de referência de uma tabela do
// Postgres, como alternativa ao arquivo CSV. As linhas passam pelo
// mesmo montador tolerante a aliases de coluna.
type CatalogRepository struct {
	DB *sql.DB
}

func (r *CatalogRepository) Load() *catalog.Store {
	rows, err := r.DB.Query(`
		SELECT marca, modelo, marca_normalizada, modelo_normalizado
		FROM modelo_comercial
	`)
	if err != nil {
		log.Printf("Não foi possível consultar o catálogo: %v. Usando regras padrão", err)
		return catalog.Empty()
	}
	defer rows.Close()

	table := [][]string{{"MARCA", "MODELO", "MARCA NORMALIZADA", "MODELO NORMALIZADO"}}
	for rows.Next() {
		var marca, modelo, marcaN, modeloN sql.NullString
		if err := rows.Scan(&marca, &modelo, &marcaN, &modeloN); err != nil {
			log.Printf("Linha do catálogo ignorada: %v", err)
			continue
		}
		table = append(table, []string{marca.String, modelo.String, marcaN.String, modeloN.String})
	}
	if err := rows.Err(); err != nil {
		log.Printf("Leitura do catálogo interrompida: %v. Usando regras padrão", err)
		return catalog.Empty()
	}
	return catalog.Load(table)
}
