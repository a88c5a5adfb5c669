package portal

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"autoapple/internal/config"
	"autoapple/internal/model"
	"autoapple/internal/textnorm"
)

// ParsePendingIDs percorre a tabela de pendências e devolve os IDs das
// linhas cujo link de ação contém o rótulo (ex.: "Confirmar en OABI").
// Só IDs numéricos contam.
func ParsePendingIDs(html string, sel config.Selectors, actionLabel string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var ids []string
	doc.Find(sel.PendingRow).Each(func(_ int, row *goquery.Selection) {
		action := strings.TrimSpace(row.Find(sel.PendingAction).Text())
		if !strings.Contains(action, actionLabel) {
			return
		}
		id := strings.TrimSpace(row.Find(sel.PendingID).First().Text())
		if isDigits(id) {
			ids = append(ids, id)
		}
	})
	return ids, nil
}

// ParseRegistro extrai os campos brutos da página de um registro. Cada
// seletor vem da configuração; seletor vazio deixa o campo em branco.
// País ausente assume "Chile".
func ParseRegistro(id, html string, sel config.Selectors) (*model.Registro, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	r := &model.Registro{
		ID:              id,
		IMEI1:           fieldValue(doc, sel.FieldIMEI1),
		IMEI2:           fieldValue(doc, sel.FieldIMEI2),
		NumeroSerie:     fieldValue(doc, sel.FieldSerie),
		NumeroDocumento: fieldValue(doc, sel.FieldDocumento),
		Nombre:          fieldValue(doc, sel.FieldNombre),
		TipoDocumento:   NormalizeDocType(fieldValue(doc, sel.FieldDocTipo)),
		Marca:           fieldValue(doc, sel.FieldMarca),
		Modelo:          fieldValue(doc, sel.FieldModelo),
		Pais:            fieldValue(doc, sel.FieldPais),
	}
	if r.Marca == "" {
		r.Marca = "Apple"
	}
	if r.Pais == "" {
		r.Pais = "Chile"
	}
	return r, nil
}

// fieldValue pega o value de um input ou, na falta, o texto do
// elemento.
func fieldValue(doc *goquery.Document, selector string) string {
	if selector == "" {
		return ""
	}
	el := doc.Find(selector).First()
	if el.Length() == 0 {
		return ""
	}
	if v, ok := el.Attr("value"); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(el.Text())
}

// NormalizeDocType classifica o texto do tipo de documento. Padrão é
// "Pasaporte".
func NormalizeDocType(raw string) string {
	n := textnorm.NormKey(raw)
	if strings.Contains(n, "PASAP") {
		return "Pasaporte"
	}
	if strings.Contains(n, "RUT") || strings.Contains(n, "DNI") {
		return "RUT (DNI)"
	}
	return "Pasaporte"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
