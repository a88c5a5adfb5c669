package portal

import "autoapple/internal/model"

// Origem é o portal onde as pendências nascem (Multibanda): lista os
// registros aguardando confirmação, entrega os campos brutos e recebe
// a confirmação final.
type Origem interface {
	Login() error
	PendingIDs() ([]string, error)
	FetchRegistro(id string) (*model.Registro, error)
	Confirm(id string) error
}

// Destino é o portal que recebe a inscrição (OABI). O token 2FA chega
// pronto de fora; o fluxo de autenticação em si não é responsabilidade
// daqui.
type Destino interface {
	Login(token string) error
	Submit(r *model.RegistroResolvido) error
	ValidateIMEI(imei, documento string) (bool, error)
}
