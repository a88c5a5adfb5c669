package catalog

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"sort"

	"autoapple/internal/textnorm"
)

// Store guarda o catálogo de referência (marca, modelo comercial) em
// três índices derivados. Imutável depois de carregado; pode ser
// compartilhado entre goroutines sem sincronização.
type Store struct {
	exact  map[pairKey]pairDisplay
	brands map[string]string
	models map[string]map[string]bool // chave da marca → conjunto de modelos de exibição
}

type pairKey struct {
	Brand string
	Model string
}

type pairDisplay struct {
	Brand string
	Model string
}

// Empty devolve um catálogo vazio (modo degradado: só heurísticas).
func Empty() *Store {
	return &Store{
		exact:  map[pairKey]pairDisplay{},
		brands: map[string]string{},
		models: map[string]map[string]bool{},
	}
}

// IsEmpty informa se nenhuma linha foi carregada.
func (s *Store) IsEmpty() bool {
	return len(s.brands) == 0 && len(s.exact) == 0
}

// Exact busca o par exato pelas chaves normalizadas.
func (s *Store) Exact(brandKey, modelKey string) (brand, model string, ok bool) {
	d, ok := s.exact[pairKey{brandKey, modelKey}]
	return d.Brand, d.Model, ok
}

// Brand devolve o nome canônico da marca pela chave normalizada.
func (s *Store) Brand(brandKey string) (string, bool) {
	b, ok := s.brands[brandKey]
	return b, ok
}

// ModelsFor devolve os modelos de exibição conhecidos da marca,
// ordenados pela chave normalizada.
func (s *Store) ModelsFor(brandDisplay string) []string {
	set := s.models[textnorm.NormKey(brandDisplay)]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return textnorm.NormKey(out[i]) < textnorm.NormKey(out[j])
	})
	return out
}

// HasModels informa se a marca tem algum modelo no catálogo.
func (s *Store) HasModels(brandDisplay string) bool {
	return len(s.models[textnorm.NormKey(brandDisplay)]) > 0
}

// HasPair verifica se o modelo (por chave normalizada) pertence ao
// conjunto conhecido da marca.
func (s *Store) HasPair(brandDisplay, modelDisplay string) bool {
	m := textnorm.NormKey(brandDisplay)
	mo := textnorm.NormKey(modelDisplay)
	if m == "" || mo == "" {
		return false
	}
	for known := range s.models[m] {
		if textnorm.NormKey(known) == mo {
			return true
		}
	}
	return false
}

// CanonicalModel devolve a grafia do catálogo para o modelo da marca,
// se existir.
func (s *Store) CanonicalModel(brandDisplay, modelText string) (string, bool) {
	mo := textnorm.NormKey(modelText)
	for known := range s.models[textnorm.NormKey(brandDisplay)] {
		if textnorm.NormKey(known) == mo {
			return known, true
		}
	}
	return "", false
}

// BestModelFor escolhe um modelo do catálogo para a marca. Com
// preferência, tenta casamento aproximado (ratio mínimo 0.80); sem
// preferência ou sem acerto, devolve o modelo "mais simples": menor
// chave normalizada, desempate lexicográfico. Vazio se a marca não tem
// modelos.
func (s *Store) BestModelFor(brandDisplay, preferred string) string {
	models := s.ModelsFor(brandDisplay)
	if len(models) == 0 {
		return ""
	}
	if preferred != "" {
		if m, ok := closestMatch(textnorm.PrettyCap(preferred), models, fuzzyCutoff); ok {
			return m
		}
	}
	best := models[0]
	for _, m := range models[1:] {
		km, kb := textnorm.NormKey(m), textnorm.NormKey(best)
		if len(km) < len(kb) || (len(km) == len(kb) && km < kb) {
			best = m
		}
	}
	return best
}

// aliases reconhecidos nos cabeçalhos do arquivo de referência.
var (
	brandCols     = []string{"MARCA", "BRAND"}
	modelCols     = []string{"MODELO", "MODEL", "MODELO COMERCIAL", "COMERCIAL"}
	brandNormCols = []string{"MARCA NORMALIZADA", "MARCA NORMAL", "BRAND NORMALIZED", "BRAND NORM", "MARCA STD"}
	modelNormCols = []string{"MODELO NORMALIZADO", "MODELO NORMAL", "MODEL NORMALIZED", "MODEL NORM", "MODELO STD"}
)

// Load monta o Store a partir de linhas já tabuladas (cabeçalho na
// primeira linha). Sem colunas reconhecíveis de marca/modelo, devolve
// o catálogo vazio — o resolvedor segue só com as regras padrão.
func Load(rows [][]string) *Store {
	s := Empty()
	if len(rows) == 0 {
		return s
	}

	headerIdx := map[string]int{}
	for i, h := range rows[0] {
		headerIdx[textnorm.NormKey(h)] = i
	}
	pick := func(candidates []string) int {
		for _, c := range candidates {
			if i, ok := headerIdx[c]; ok {
				return i
			}
		}
		return -1
	}

	colBrand := pick(brandCols)
	colModel := pick(modelCols)
	colBrandNorm := pick(brandNormCols)
	colModelNorm := pick(modelNormCols)

	if colBrand < 0 || colModel < 0 {
		log.Println("Catálogo sem colunas reconhecíveis de marca/modelo; usando regras padrão")
		return s
	}
	if colBrandNorm < 0 {
		colBrandNorm = colBrand
	}
	if colModelNorm < 0 {
		colModelNorm = colModel
	}

	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, row := range rows[1:] {
		brandKey := textnorm.NormKey(cell(row, colBrand))
		modelKey := textnorm.NormKey(cell(row, colModel))

		brandSrc := cell(row, colBrandNorm)
		if brandSrc == "" {
			brandSrc = cell(row, colBrand)
		}
		modelSrc := cell(row, colModelNorm)
		if modelSrc == "" {
			modelSrc = cell(row, colModel)
		}
		brandDisp := textnorm.PrettyCap(brandSrc)
		modelDisp := textnorm.PrettyCap(modelSrc)

		if brandKey != "" {
			s.brands[brandKey] = brandDisp
		}
		if brandKey != "" && modelKey != "" {
			s.exact[pairKey{brandKey, modelKey}] = pairDisplay{brandDisp, modelDisp}
			bk := textnorm.NormKey(brandDisp)
			if s.models[bk] == nil {
				s.models[bk] = map[string]bool{}
			}
			s.models[bk][modelDisp] = true
		}
	}
	return s
}

// LoadCSV lê o arquivo de referência em CSV. Qualquer falha de leitura
// é não fatal: loga e devolve o catálogo vazio.
func LoadCSV(path string) *Store {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Não foi possível ler o catálogo %s: %v. Usando regras padrão", path, err)
		return Empty()
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Catálogo %s malformado: %v. Usando regras padrão", path, err)
			return Empty()
		}
		rows = append(rows, rec)
	}
	return Load(rows)
}
