package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoapple/internal/config"
)

var testSel = config.Selectors{
	PendingRow:     "table#tabla-ordenable tbody tr",
	PendingID:      "th",
	PendingAction:  "td div a",
	FieldIMEI1:     "#imei_1",
	FieldIMEI2:     "#imei_2",
	FieldSerie:     "#num_serie",
	FieldDocumento: "#num_doc",
	FieldNombre:    "#nombre",
	FieldDocTipo:   "#doc_tipo option[selected]",
	FieldMarca:     "#marca b",
	FieldModelo:    "#modelo b",
	FieldPais:      "#pais b",
}

const pendingHTML = `
<table id="tabla-ordenable"><tbody>
<tr><th>1001</th><td><div><a>Confirmar en OABI</a></div></td></tr>
<tr><th>1002</th><td><div><a>Ver detalle</a></div></td></tr>
<tr><th>abc</th><td><div><a>Confirmar en OABI</a></div></td></tr>
<tr><th>1003</th><td><div><a>Confirmar en OABI</a></div></td></tr>
</tbody></table>`

func TestParsePendingIDs(t *testing.T) {
	ids, err := ParsePendingIDs(pendingHTML, testSel, "Confirmar en OABI")
	require.NoError(t, err)
	// Só linhas com o rótulo certo e ID numérico.
	assert.Equal(t, []string{"1001", "1003"}, ids)
}

const registroHTML = `
<form>
<input id="imei_1" value="356789012345678">
<input id="imei_2" value="">
<input id="num_serie" value="F2LXK3J9">
<input id="num_doc" value="AB123456">
<input id="nombre" value="Juan Pérez">
<select id="doc_tipo"><option selected>Pasaporte extranjero</option></select>
<p id="marca"><b>SAMSUNG</b></p>
<p id="modelo"><b>Galaxy A54 5G</b></p>
<p id="pais"><b>USA</b></p>
</form>`

func TestParseRegistro(t *testing.T) {
	r, err := ParseRegistro("1001", registroHTML, testSel)
	require.NoError(t, err)

	assert.Equal(t, "1001", r.ID)
	assert.Equal(t, "356789012345678", r.IMEI1)
	assert.Equal(t, "", r.IMEI2)
	assert.Equal(t, "1", r.CantidadIMEI())
	assert.Equal(t, "F2LXK3J9", r.NumeroSerie)
	assert.Equal(t, "AB123456", r.NumeroDocumento)
	assert.Equal(t, "Juan Pérez", r.Nombre)
	assert.Equal(t, "Pasaporte", r.TipoDocumento)
	assert.Equal(t, "SAMSUNG", r.Marca)
	assert.Equal(t, "Galaxy A54 5G", r.Modelo)
	assert.Equal(t, "USA", r.Pais)
}

func TestParseRegistroPadroes(t *testing.T) {
	// Marca e país ausentes assumem os padrões do fluxo.
	r, err := ParseRegistro("7", "<html></html>", testSel)
	require.NoError(t, err)
	assert.Equal(t, "Apple", r.Marca)
	assert.Equal(t, "Chile", r.Pais)
}

func TestNormalizeDocType(t *testing.T) {
	assert.Equal(t, "Pasaporte", NormalizeDocType("Pasaporte extranjero"))
	assert.Equal(t, "Pasaporte", NormalizeDocType("PASAPORTE"))
	assert.Equal(t, "RUT (DNI)", NormalizeDocType("RUT"))
	assert.Equal(t, "RUT (DNI)", NormalizeDocType("Cédula / DNI"))
	assert.Equal(t, "Pasaporte", NormalizeDocType(""))
}
