package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autoapple/internal/catalog"
)

func newResolver() *Resolver {
	return &Resolver{Catalog: catalog.Load([][]string{
		{"MARCA", "MODELO"},
		{"Apple", "iPhone 15"},
		{"Apple", "iPhone 15 Pro"},
		{"Samsung", "Galaxy A54"},
		{"Samsung", "Galaxy S23"},
		{"Xiaomi", "Redmi Note 12"},
		{"Oppo", "Reno 10"},
		{"Tecno", "Spark 10"},
		{"Tecno", "Camon 20"},
		{"Vivo", ""},
	})}
}

func TestIphoneNoCampoDeMarca(t *testing.T) {
	r := newResolver()
	for _, modelo := range []string{"", "anything", "Galaxy A54"} {
		m, mo := r.ResolveBrandModel("iPhone", modelo)
		assert.Equal(t, "Apple", m)
		assert.Equal(t, "iPhone", mo)
	}
}

func TestCaminhoExato(t *testing.T) {
	r := newResolver()

	m, mo := r.ResolveBrandModel("Samsung", "Galaxy A54")
	assert.Equal(t, "Samsung", m)
	assert.Equal(t, "Galaxy A54", mo)

	// Invariante a caixa/espaços pela chave normalizada.
	m, mo = r.ResolveBrandModel("SAMSUNG", "galaxy a54 ")
	assert.Equal(t, "Samsung", m)
	assert.Equal(t, "Galaxy A54", mo)
}

func TestMarcaConhecidaModeloDesconhecido(t *testing.T) {
	r := newResolver()

	// Nunca devolve o texto desconhecido: escolhe algo do catálogo.
	m, mo := r.ResolveBrandModel("Samsung", "totally-unknown-text")
	assert.Equal(t, "Samsung", m)
	assert.Contains(t, []string{"Galaxy A54", "Galaxy S23"}, mo)
}

func TestPrefixoDaMarcaRemovido(t *testing.T) {
	r := newResolver()

	m, mo := r.ResolveBrandModel("Samsung", "samsung galaxy a54")
	assert.Equal(t, "Samsung", m)
	assert.Equal(t, "Galaxy A54", mo)

	m, mo = r.ResolveBrandModel("Apple", "APPLE IPHONE 15")
	assert.Equal(t, "Apple", m)
	assert.Equal(t, "iPhone 15", mo)
}

func TestMarcaInferidaPeloModelo(t *testing.T) {
	r := newResolver()

	m, mo := r.ResolveBrandModel("Unknownbrandxyz", "Redmi Note 12")
	assert.Equal(t, "Xiaomi", m)
	assert.Equal(t, "Redmi Note 12", mo)

	m, _ = r.ResolveBrandModel("???", "Reno 10")
	assert.Equal(t, "Oppo", m)
}

func TestFallbackGlobal(t *testing.T) {
	r := newResolver()

	m, mo := r.ResolveBrandModel("Unknownbrandxyz", "zzz")
	assert.Equal(t, "Apple", m)
	assert.Equal(t, "iPhone", mo)
}

func TestFallbackGlobalSemCatalogo(t *testing.T) {
	r := &Resolver{Catalog: catalog.Empty()}

	m, mo := r.ResolveBrandModel("Samsung", "Galaxy A54")
	// Sem catálogo a marca não é reconhecida, mas "galaxy" infere
	// Samsung; na recursão a marca segue fora do catálogo e cai no
	// padrão global.
	assert.Equal(t, "Apple", m)
	assert.Equal(t, "iPhone", mo)
}

func TestMarcaEstrita(t *testing.T) {
	r := newResolver()

	// Tecno só aceita modelo do catálogo.
	m, mo := r.ResolveBrandModel("Tecno", "Pop 7")
	assert.Equal(t, "Tecno", m)
	assert.Contains(t, []string{"Spark 10", "Camon 20"}, mo)

	// Vivo está no catálogo sem modelos: placeholder.
	m, mo = r.ResolveBrandModel("Vivo", "Y36")
	assert.Equal(t, "Vivo", m)
	assert.Equal(t, "Modelo", mo)

	m, mo = r.ResolveBrandModel("Vivo", "")
	assert.Equal(t, "Vivo", m)
	assert.Equal(t, "Modelo", mo)
}

func TestInferenciaLimitadaAUmNivel(t *testing.T) {
	// Catálogo vazio: a inferência recursa uma única vez e depois cai
	// no padrão global, sem laço.
	r := &Resolver{Catalog: catalog.Empty()}
	m, mo := r.ResolveBrandModel("nope", "galaxy redmi pixel")
	assert.Equal(t, "Apple", m)
	assert.Equal(t, "iPhone", mo)
}

func TestEnsureCataloged(t *testing.T) {
	r := newResolver()

	// Par já no catálogo fica como está.
	assert.Equal(t, "Galaxy A54", r.EnsureCataloged("Samsung", "Galaxy A54"))
	// Par fora do catálogo troca pelo melhor disponível.
	assert.Equal(t, "Galaxy A54", r.EnsureCataloged("Samsung", "Galaxy A54 Duos"))
	// Marca sem catálogo não mexe.
	assert.Equal(t, "3310", r.EnsureCataloged("Nokia", "3310"))
}

func TestFixups(t *testing.T) {
	assert.Equal(t, "Reno 10", finalizeModel("reno10"))
	assert.Equal(t, "iPhone 15 Pro", finalizeModel("iphone15 pro"))
	assert.Equal(t, "Galaxy A54 5G 128 GB", finalizeModel("galaxy a54 5g 128 gb"))
	assert.Equal(t, "Reno 8", finalizeModel("RENO8"))
}
