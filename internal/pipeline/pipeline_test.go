package pipeline

import (
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoapple/internal/catalog"
	"autoapple/internal/model"
	"autoapple/internal/repository"
	"autoapple/internal/resolver"
)

type fakeOrigem struct {
	registros   map[string]*model.Registro
	confirmados []string
	loginErr    error
}

func (f *fakeOrigem) Login() error { return f.loginErr }

func (f *fakeOrigem) PendingIDs() ([]string, error) {
	var ids []string
	for id := range f.registros {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeOrigem) FetchRegistro(id string) (*model.Registro, error) {
	r, ok := f.registros[id]
	if !ok {
		return nil, errors.New("registro não encontrado")
	}
	return r, nil
}

func (f *fakeOrigem) Confirm(id string) error {
	f.confirmados = append(f.confirmados, id)
	return nil
}

type fakeDestino struct {
	enviados  []*model.RegistroResolvido
	validados map[string]bool // IMEI → aparece na inscrição
}

func (f *fakeDestino) Login(token string) error { return nil }

func (f *fakeDestino) Submit(r *model.RegistroResolvido) error {
	f.enviados = append(f.enviados, r)
	return nil
}

func (f *fakeDestino) ValidateIMEI(imei, documento string) (bool, error) {
	return f.validados[imei], nil
}

func testResolver() *resolver.Resolver {
	return &resolver.Resolver{Catalog: catalog.Load([][]string{
		{"MARCA", "MODELO"},
		{"Samsung", "Galaxy A54"},
	})}
}

func TestRunConfirmaRegistroValidado(t *testing.T) {
	origem := &fakeOrigem{registros: map[string]*model.Registro{
		"1001": {ID: "1001", IMEI1: "111", Marca: "SAMSUNG", Modelo: "galaxy a54", Pais: "USA"},
	}}
	destino := &fakeDestino{validados: map[string]bool{"111": true}}

	p := &Pipeline{Origem: origem, Destino: destino, Resolver: testResolver()}
	require.NoError(t, p.Run(""))

	require.Len(t, destino.enviados, 1)
	env := destino.enviados[0]
	assert.Equal(t, "Samsung", env.MarcaNorm)
	assert.Equal(t, "Galaxy A54", env.ModeloNorm)
	assert.Equal(t, "Estados Unidos", env.PaisNorm)
	assert.Equal(t, model.DetallesTecnicosPadrao, env.DetallesTecnicos)
	assert.Equal(t, model.DescripcionPadrao, env.Descripcion)

	assert.Equal(t, []string{"1001"}, origem.confirmados)
}

func TestRunNaoConfirmaSemValidacao(t *testing.T) {
	origem := &fakeOrigem{registros: map[string]*model.Registro{
		"2002": {ID: "2002", IMEI1: "222", IMEI2: "333", Marca: "Samsung", Modelo: "Galaxy A54"},
	}}
	// Nem o primeiro nem o segundo IMEI aparecem na inscrição.
	destino := &fakeDestino{validados: map[string]bool{}}

	p := &Pipeline{Origem: origem, Destino: destino, Resolver: testResolver()}
	require.NoError(t, p.Run(""))

	assert.Len(t, destino.enviados, 1)
	assert.Empty(t, origem.confirmados)
}

func TestRunValidaSegundoIMEI(t *testing.T) {
	origem := &fakeOrigem{registros: map[string]*model.Registro{
		"3003": {ID: "3003", IMEI1: "444", IMEI2: "555", Marca: "Samsung", Modelo: "Galaxy A54"},
	}}
	destino := &fakeDestino{validados: map[string]bool{"555": true}}

	p := &Pipeline{Origem: origem, Destino: destino, Resolver: testResolver()}
	require.NoError(t, p.Run(""))

	assert.Equal(t, []string{"3003"}, origem.confirmados)
}

func TestRunPulaRegistroJaConfirmado(t *testing.T) {
	mr := miniredis.RunT(t)
	journal := &repository.Journal{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	require.NoError(t, journal.MarkDone("4004"))

	origem := &fakeOrigem{registros: map[string]*model.Registro{
		"4004": {ID: "4004", IMEI1: "666", Marca: "Samsung", Modelo: "Galaxy A54"},
	}}
	destino := &fakeDestino{validados: map[string]bool{"666": true}}

	p := &Pipeline{Origem: origem, Destino: destino, Resolver: testResolver(), Journal: journal}
	require.NoError(t, p.Run(""))

	assert.Empty(t, destino.enviados)
	assert.Empty(t, origem.confirmados)
}

func TestRunMarcaJournalAposConfirmar(t *testing.T) {
	mr := miniredis.RunT(t)
	journal := &repository.Journal{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	origem := &fakeOrigem{registros: map[string]*model.Registro{
		"5005": {ID: "5005", IMEI1: "777", Marca: "Samsung", Modelo: "Galaxy A54"},
	}}
	destino := &fakeDestino{validados: map[string]bool{"777": true}}

	p := &Pipeline{Origem: origem, Destino: destino, Resolver: testResolver(), Journal: journal}
	require.NoError(t, p.Run(""))

	assert.True(t, journal.Done("5005"))
}

func TestRunLoginFalhaInterrompe(t *testing.T) {
	origem := &fakeOrigem{loginErr: errors.New("credenciais inválidas")}
	p := &Pipeline{Origem: origem, Destino: &fakeDestino{}, Resolver: testResolver()}
	assert.Error(t, p.Run(""))
}
