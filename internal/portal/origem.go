package portal

import (
	"fmt"
	"net/url"

	"autoapple/internal/config"
	"autoapple/internal/model"
)

const confirmarLabel = "Confirmar en OABI"

// HTTPOrigem fala com o portal de origem via HTTP com sessão. Os
// caminhos são parâmetros de query estáveis do portal; a estrutura das
// páginas vem toda dos seletores configurados.
type HTTPOrigem struct {
	Client  *Client
	BaseURL string
	User    string
	Pass    string
	Sel     config.Selectors
}

func (o *HTTPOrigem) Login() error {
	form := url.Values{
		"username": {o.User},
		"password": {o.Pass},
	}
	_, err := o.Client.PostForm(o.BaseURL, form)
	if err != nil {
		return fmt.Errorf("login origem: %w", err)
	}
	return nil
}

func (o *HTTPOrigem) PendingIDs() ([]string, error) {
	page := Resolve(o.BaseURL, "index.php?do=submission/pending_adm_submissions_landing_page&rType=page&navbarp=1")
	html, err := o.Client.Get(page)
	if err != nil {
		return nil, err
	}
	return ParsePendingIDs(html, o.Sel, confirmarLabel)
}

func (o *HTTPOrigem) FetchRegistro(id string) (*model.Registro, error) {
	page := Resolve(o.BaseURL, fmt.Sprintf("index.php?do=submission/confirm_automatic_process&id=%s&rType=page", id))
	html, err := o.Client.Get(page)
	if err != nil {
		return nil, err
	}
	return ParseRegistro(id, html, o.Sel)
}

func (o *HTTPOrigem) Confirm(id string) error {
	page := Resolve(o.BaseURL, fmt.Sprintf("index.php?do=submission/confirm_automatic_process&id=%s&rType=page&confirm=1", id))
	_, err := o.Client.PostForm(page, url.Values{"id": {id}})
	return err
}
