package resolver

import (
	"log"
	"regexp"
	"strings"

	"autoapple/internal/catalog"
	"autoapple/internal/observability"
	"autoapple/internal/textnorm"
)

// Resolver transforma textos livres de marca/modelo no par canônico do
// catálogo. Não guarda estado além do catálogo (imutável); nunca
// retorna erro — dado ambíguo degrada para os padrões documentados e
// vira aviso no log.
type Resolver struct {
	Catalog *catalog.Store
}

// brandHints infere a marca a partir do nome do modelo quando a marca
// não é reconhecida. Ordem importa: vence o primeiro padrão.
var brandHints = []struct {
	re    *regexp.Regexp
	brand string
}{
	{regexp.MustCompile(`(?i)\breno\s*\d`), "Oppo"},
	{regexp.MustCompile(`(?i)\bgalaxy\b`), "Samsung"},
	{regexp.MustCompile(`(?i)\biphone\b`), "Apple"},
	{regexp.MustCompile(`(?i)\bredmi\b`), "Xiaomi"},
	{regexp.MustCompile(`(?i)\bmi\s*\d`), "Xiaomi"},
	{regexp.MustCompile(`(?i)\bpixel\b`), "Google"},
}

// Marcas que só aceitam modelos do catálogo.
var strictBrands = map[string]bool{"TECNO": true, "VIVO": true}

// InferBrand procura pistas de marca no texto do modelo.
func InferBrand(modelRaw string) string {
	for _, h := range brandHints {
		if h.re.MatchString(modelRaw) {
			return h.brand
		}
	}
	return ""
}

// ResolveBrandModel devolve o par canônico (marca, modelo). Total:
// qualquer entrada produz um par utilizável.
func (r *Resolver) ResolveBrandModel(brandRaw, modelRaw string) (string, string) {
	return r.resolve(brandRaw, modelRaw, 0)
}

func (r *Resolver) resolve(brandRaw, modelRaw string, depth int) (string, string) {
	// Dado de origem às vezes traz o modelo no campo de marca.
	if textnorm.NormKey(brandRaw) == "IPHONE" {
		return "Apple", "iPhone"
	}

	brandKey := textnorm.NormKey(brandRaw)
	modelKey := textnorm.NormKey(modelRaw)

	if b, m, ok := r.Catalog.Exact(brandKey, modelKey); ok {
		return textnorm.PrettyCap(b), finalizeModel(m)
	}

	if brand, ok := r.Catalog.Brand(brandKey); ok {
		return r.resolveKnownBrand(brand, modelKey)
	}

	// Marca desconhecida: tenta inferir pelo modelo, no máximo uma vez.
	if depth == 0 {
		if inferred := InferBrand(modelRaw); inferred != "" {
			return r.resolve(inferred, modelRaw, depth+1)
		}
	}

	log.Printf("Marca '%s' não reconhecida nem inferível; usando Apple/iPhone", brandRaw)
	observability.ResolverFallbacks.Inc()
	return "Apple", "iPhone"
}

func (r *Resolver) resolveKnownBrand(brand, modelKey string) (string, string) {
	brandU := textnorm.NormKey(brand)
	base := stripBrandPrefix(modelKey, brandU)

	if strictBrands[brandU] {
		if base == "" {
			if r.Catalog.HasModels(brand) {
				chosen := r.Catalog.BestModelFor(brand, "")
				log.Printf("Marca %s sem modelo; usando catálogo: %s", brand, chosen)
				return textnorm.PrettyCap(brand), finalizeModel(chosen)
			}
			log.Printf("Marca %s sem modelos em catálogo; usando placeholder", brand)
			observability.ResolverFallbacks.Inc()
			return textnorm.PrettyCap(brand), "Modelo"
		}
		if !r.Catalog.HasPair(brand, base) {
			chosen := r.Catalog.BestModelFor(brand, base)
			if chosen == "" {
				chosen = r.Catalog.BestModelFor(brand, "")
			}
			if chosen == "" {
				log.Printf("Marca %s sem modelos em catálogo; usando placeholder", brand)
				observability.ResolverFallbacks.Inc()
				return textnorm.PrettyCap(brand), "Modelo"
			}
			log.Printf("%s modelo '%s' não encontrado; usando '%s' do catálogo", brand, base, chosen)
			return textnorm.PrettyCap(brand), finalizeModel(chosen)
		}
		if m, ok := r.Catalog.CanonicalModel(brand, base); ok {
			return textnorm.PrettyCap(brand), finalizeModel(m)
		}
	}

	if base == "" {
		if r.Catalog.HasModels(brand) {
			chosen := r.Catalog.BestModelFor(brand, "")
			log.Printf("%s sem modelo; usando '%s' do catálogo", brand, chosen)
			return textnorm.PrettyCap(brand), finalizeModel(chosen)
		}
		if brandU == "APPLE" {
			return "Apple", "iPhone"
		}
		log.Printf("Marca %s sem modelo e sem catálogo; usando placeholder", brand)
		observability.ResolverFallbacks.Inc()
		return textnorm.PrettyCap(brand), "Modelo"
	}

	if r.Catalog.HasModels(brand) {
		if m, ok := r.Catalog.CanonicalModel(brand, base); ok {
			return textnorm.PrettyCap(brand), finalizeModel(m)
		}
		if chosen := r.Catalog.BestModelFor(brand, base); chosen != "" {
			return textnorm.PrettyCap(brand), finalizeModel(chosen)
		}
	}

	// Marca sem catálogo: aproveita o texto bruto com o acabamento padrão.
	if base != "" {
		return textnorm.PrettyCap(brand), finalizeModel(textnorm.PrettyCap(base))
	}
	if brandU == "APPLE" {
		return textnorm.PrettyCap(brand), "iPhone"
	}
	log.Printf("Marca %s sem modelo e sem catálogo; usando placeholder", brand)
	observability.ResolverFallbacks.Inc()
	return textnorm.PrettyCap(brand), "Modelo"
}

// stripBrandPrefix remove o prefixo redundante da marca no texto do
// modelo (já em chave normalizada).
func stripBrandPrefix(modelKey, brandU string) string {
	t := strings.TrimSpace(modelKey)
	if t == "" {
		return t
	}
	switch brandU {
	case "APPLE":
		for _, pref := range []string{"APPLE ", "IPHONE "} {
			t = strings.TrimSpace(strings.TrimPrefix(t, pref))
		}
		return t
	case "SAMSUNG":
		for _, pref := range []string{"SAMSUNG GALAXY ", "SAMSUNG "} {
			t = strings.TrimSpace(strings.TrimPrefix(t, pref))
		}
		return t
	}
	if strings.HasPrefix(t, brandU+" ") {
		t = strings.TrimSpace(t[len(brandU)+1:])
	}
	return t
}

// EnsureCataloged aplica o ajuste final: se a marca tem catálogo mas o
// par resolvido não consta nele, troca pelo melhor modelo disponível.
func (r *Resolver) EnsureCataloged(brand, model string) string {
	if !r.Catalog.HasModels(brand) || r.Catalog.HasPair(brand, model) {
		return model
	}
	chosen := r.Catalog.BestModelFor(brand, model)
	if chosen == "" {
		chosen = r.Catalog.BestModelFor(brand, "")
	}
	if chosen == "" {
		return model
	}
	log.Printf("Ajuste final de catálogo: %s '%s' → '%s'", brand, model, chosen)
	return finalizeModel(chosen)
}
