package model

// Registro é uma pendência do portal de origem com os campos brutos
// extraídos da página. Marca, Modelo e Pais chegam como texto livre.
type Registro struct {
	ID              string
	IMEI1           string
	IMEI2           string
	NumeroSerie     string
	TipoDocumento   string
	NumeroDocumento string
	Nombre          string
	Marca           string
	Modelo          string
	Pais            string
}

// CantidadIMEI é "2" quando o registro traz segundo IMEI, senão "1".
func (r *Registro) CantidadIMEI() string {
	if r.IMEI2 != "" {
		return "2"
	}
	return "1"
}

// RegistroResolvido é o registro pronto para o formulário de destino:
// marca/modelo/país já canônicos, mais os campos fixos do fluxo.
type RegistroResolvido struct {
	Registro
	MarcaNorm        string
	ModeloNorm       string
	PaisNorm         string
	DetallesTecnicos string
	Descripcion      string
}

const (
	DetallesTecnicosPadrao = "Compra Internacional"
	DescripcionPadrao      = "Uso personal"
)
