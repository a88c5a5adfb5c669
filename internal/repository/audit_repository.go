package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"autoapple/internal/model"
)

// AuditRepository grava cada registro processado com os valores brutos
// e resolvidos, para auditoria posterior da qualidade dos dados.
type AuditRepository struct {
	DB *pgxpool.Pool
}

func (r *AuditRepository) Save(runID string, reg *model.RegistroResolvido, outcome string) error {
	ctx := context.Background()

	_, err := r.DB.Exec(ctx, `
		INSERT INTO registro_audit
		(id, run_id, registro_id, imei_1, imei_2, numero_serie, tipo_documento,
		 numero_documento, marca_raw, modelo_raw, pais_raw,
		 marca, modelo_comercial, pais_origen, outcome, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15, now())
	`,
		uuid.New().String(), runID, reg.ID, reg.IMEI1, reg.IMEI2, reg.NumeroSerie,
		reg.TipoDocumento, reg.NumeroDocumento, reg.Marca, reg.Modelo, reg.Pais,
		reg.MarcaNorm, reg.ModeloNorm, reg.PaisNorm, outcome,
	)
	return err
}
