package pipeline

import (
	"log"

	"github.com/google/uuid"

	"autoapple/internal/country"
	"autoapple/internal/model"
	"autoapple/internal/observability"
	"autoapple/internal/portal"
	"autoapple/internal/repository"
	"autoapple/internal/resolver"
)

// Pipeline amarra o fluxo completo: pendências na origem → campos
// brutos → normalização → inscrição no destino → validação por IMEI →
// confirmação na origem. Audit e Journal são opcionais (nil desliga).
type Pipeline struct {
	Origem   portal.Origem
	Destino  portal.Destino
	Resolver *resolver.Resolver
	Audit    *repository.AuditRepository
	Journal  *repository.Journal
}

// Run executa uma rodada completa. Falhas por registro são logadas e o
// fluxo segue para o próximo; só falhas de login interrompem.
func (p *Pipeline) Run(token string) error {
	runID := uuid.New().String()
	log.Printf("Iniciando rodada %s", runID)

	if err := p.Origem.Login(); err != nil {
		return err
	}
	ids, err := p.Origem.PendingIDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		log.Println("Nenhum registro pendente de confirmação. Fim")
		return nil
	}
	log.Printf("Encontrados %d registros pendentes", len(ids))

	registros := p.collect(ids)
	if len(registros) == 0 {
		log.Println("Nenhum registro extraído com sucesso. Fim")
		return nil
	}

	if err := p.Destino.Login(token); err != nil {
		return err
	}

	for _, reg := range registros {
		if err := p.process(runID, reg); err != nil {
			log.Printf("Erro no registro %s: %v", reg.ID, err)
		}
	}

	log.Printf("Rodada %s finalizada", runID)
	return nil
}

// collect extrai e normaliza cada pendência.
func (p *Pipeline) collect(ids []string) []*model.RegistroResolvido {
	var out []*model.RegistroResolvido
	for _, id := range ids {
		if p.Journal != nil && p.Journal.Done(id) {
			log.Printf("Registro %s já confirmado em rodada anterior; pulando", id)
			continue
		}
		reg, err := p.Origem.FetchRegistro(id)
		if err != nil {
			log.Printf("Erro extraindo registro %s: %v", id, err)
			continue
		}
		out = append(out, p.normalize(reg))
	}
	return out
}

// normalize aplica o resolvedor e o ajuste final de catálogo.
func (p *Pipeline) normalize(reg *model.Registro) *model.RegistroResolvido {
	marca, modelo := p.Resolver.ResolveBrandModel(reg.Marca, reg.Modelo)
	modelo = p.Resolver.EnsureCataloged(marca, modelo)

	return &model.RegistroResolvido{
		Registro:         *reg,
		MarcaNorm:        marca,
		ModeloNorm:       modelo,
		PaisNorm:         country.Resolve(reg.Pais),
		DetallesTecnicos: model.DetallesTecnicosPadrao,
		Descripcion:      model.DescripcionPadrao,
	}
}

// process envia um registro ao destino, valida e confirma na origem.
func (p *Pipeline) process(runID string, reg *model.RegistroResolvido) error {
	log.Printf("Processando registro %s (%s %s)", reg.ID, reg.MarcaNorm, reg.ModeloNorm)

	if err := p.Destino.Submit(reg); err != nil {
		p.audit(runID, reg, "submit_error")
		return err
	}
	observability.RegistrosProcessados.Inc()

	ok, err := p.Destino.ValidateIMEI(reg.IMEI1, reg.NumeroDocumento)
	if err != nil {
		log.Printf("Erro validando IMEI do registro %s: %v", reg.ID, err)
	}
	if !ok && reg.IMEI2 != "" {
		ok, err = p.Destino.ValidateIMEI(reg.IMEI2, reg.NumeroDocumento)
		if err != nil {
			log.Printf("Erro validando segundo IMEI do registro %s: %v", reg.ID, err)
		}
	}
	if !ok {
		log.Printf("IMEI do registro %s não apareceu na inscrição; não confirmando na origem", reg.ID)
		p.audit(runID, reg, "not_validated")
		return nil
	}

	if err := p.Origem.Confirm(reg.ID); err != nil {
		p.audit(runID, reg, "confirm_error")
		return err
	}
	observability.RegistrosConfirmados.Inc()

	if p.Journal != nil {
		if err := p.Journal.MarkDone(reg.ID); err != nil {
			log.Printf("Erro marcando registro %s no journal: %v", reg.ID, err)
		}
	}
	p.audit(runID, reg, "confirmed")
	log.Printf("Registro %s confirmado na origem", reg.ID)
	return nil
}

func (p *Pipeline) audit(runID string, reg *model.RegistroResolvido, outcome string) {
	if p.Audit == nil {
		return
	}
	if err := p.Audit.Save(runID, reg, outcome); err != nil {
		log.Printf("Erro gravando auditoria do registro %s: %v", reg.ID, err)
	}
}
