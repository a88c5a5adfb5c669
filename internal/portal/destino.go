package portal

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"autoapple/internal/model"
)

// HTTPDestino envia as inscrições ao portal de destino. O token chega
// pronto do chamador; os nomes de campo do formulário são os do
// sistema de inscrição administrativa.
type HTTPDestino struct {
	Client  *Client
	BaseURL string
	User    string
	Pass    string
}

func (d *HTTPDestino) Login(token string) error {
	form := url.Values{
		"username": {d.User},
		"password": {d.Pass},
	}
	if _, err := d.Client.PostForm(Resolve(d.BaseURL, "login"), form); err != nil {
		return fmt.Errorf("login destino: %w", err)
	}
	if token != "" {
		if _, err := d.Client.PostForm(Resolve(d.BaseURL, "login"), url.Values{"token": {token}}); err != nil {
			return fmt.Errorf("token destino: %w", err)
		}
	}
	return nil
}

func (d *HTTPDestino) Submit(r *model.RegistroResolvido) error {
	form := url.Values{
		"cant_imeis":            {r.CantidadIMEI()},
		"cert_new_imei_1":       {r.IMEI1},
		"num_serie":             {r.NumeroSerie},
		"document_type":         {r.TipoDocumento},
		"cert_new_number_doc":   {r.NumeroDocumento},
		"cert_new_marca":        {r.MarcaNorm},
		"cert_new_model":        {r.ModeloNorm},
		"cert_new_detalles_tec": {r.DetallesTecnicos},
		"cert_new_name":         {r.Nombre},
		"pais_origen":           {r.PaisNorm},
		"cert_new_description":  {r.Descripcion},
	}
	if r.CantidadIMEI() == "2" {
		form.Set("cert_new_imei_2", r.IMEI2)
	}
	_, err := d.Client.PostForm(Resolve(d.BaseURL, "inscripcion-administrativa"), form)
	return err
}

// ValidateIMEI consulta a inscrição administrativa e procura o IMEI
// (ou o número de documento) nas linhas do resultado.
func (d *HTTPDestino) ValidateIMEI(imei, documento string) (bool, error) {
	page := Resolve(d.BaseURL, "inscripcion-administrativa?in_imei="+url.QueryEscape(imei))
	html, err := d.Client.Get(page)
	if err != nil {
		return false, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false, err
	}
	found := false
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		t := row.Text()
		if strings.Contains(t, imei) || (documento != "" && strings.Contains(t, documento)) {
			found = true
		}
	})
	return found, nil
}
