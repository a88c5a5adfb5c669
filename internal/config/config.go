package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MBUser      string
	MBPass      string
	OABIUser    string
	OABIPass    string
	MBBaseURL   string
	OABIBaseURL string
	CatalogPath string
	DatabaseURL string
	RedisURL    string
	MetricsPort string

	// Seletores/campos dos portais. A estrutura das páginas fica fora
	// do código: tudo vem do ambiente, com padrões vazios.
	Selectors Selectors
}

// Selectors agrupa os seletores CSS e nomes de campo de formulário
// usados pelos drivers HTTP.
type Selectors struct {
	PendingRow     string
	PendingID      string
	PendingAction  string
	FieldIMEI1     string
	FieldIMEI2     string
	FieldSerie     string
	FieldDocumento string
	FieldNombre    string
	FieldDocTipo   string
	FieldMarca     string
	FieldModelo    string
	FieldPais      string
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		MBUser:      os.Getenv("MB_USER"),
		MBPass:      os.Getenv("MB_PASS"),
		OABIUser:    os.Getenv("OABI_USER"),
		OABIPass:    os.Getenv("OABI_PASS"),
		MBBaseURL:   getEnv("MB_BASE_URL", "https://multibanda.com/"),
		OABIBaseURL: getEnv("OABI_BASE_URL", "https://www.oabi.cl/sistema-oabi/"),
		CatalogPath: getEnv("CATALOG_PATH", "modelo_comercial.csv"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		Selectors: Selectors{
			PendingRow:     getEnv("SEL_PENDING_ROW", "table#tabla-ordenable tbody tr"),
			PendingID:      getEnv("SEL_PENDING_ID", "th"),
			PendingAction:  getEnv("SEL_PENDING_ACTION", "td div a"),
			FieldIMEI1:     getEnv("SEL_FIELD_IMEI1", ""),
			FieldIMEI2:     getEnv("SEL_FIELD_IMEI2", ""),
			FieldSerie:     getEnv("SEL_FIELD_SERIE", ""),
			FieldDocumento: getEnv("SEL_FIELD_DOCUMENTO", ""),
			FieldNombre:    getEnv("SEL_FIELD_NOMBRE", ""),
			FieldDocTipo:   getEnv("SEL_FIELD_DOC_TIPO", ""),
			FieldMarca:     getEnv("SEL_FIELD_MARCA", ""),
			FieldModelo:    getEnv("SEL_FIELD_MODELO", ""),
			FieldPais:      getEnv("SEL_FIELD_PAIS", ""),
		},
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
