package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	wsRun   = regexp.MustCompile(`\s+`)
	alfaNum = regexp.MustCompile(`[^A-Z0-9]+`)
)

// Tokens que devem ficar sempre em maiúsculas na forma de exibição
// (siglas de rede e tamanhos de armazenamento).
var uppercaseTokens = map[string]bool{
	"5G": true, "4G": true, "3G": true, "LTE": true, "NR": true,
	"128": true, "256": true, "512": true, "GB": true,
}

// stripCombining remove marcas de combinação Unicode (categoria M)
// depois da decomposição NFD.
type stripCombining struct{ transform.NopResetter }

func (stripCombining) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if unicode.Is(unicode.M, r) {
			nSrc += size
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}

// StripAccents remove acentos via decomposição NFD.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, stripCombining{}, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormKey gera a chave de comparação: sem acentos, maiúscula,
// pipes e espaços repetidos colapsados. Nunca é exibida ao usuário.
func NormKey(s string) string {
	s = strings.TrimSpace(strings.ToUpper(StripAccents(s)))
	s = strings.ReplaceAll(s, "|", " ")
	return wsRun.ReplaceAllString(s, " ")
}

// AlnumKey é a variante usada para países: só letras e dígitos.
func AlnumKey(s string) string {
	s = strings.ToUpper(StripAccents(s))
	s = alfaNum.ReplaceAllString(s, " ")
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// PrettyCap produz a forma de exibição: siglas/tamanhos em maiúsculas,
// APPLE→Apple, IPHONE→iPhone, tokens de até 2 letras em maiúsculas,
// o resto capitalizado. Não é o inverso de NormKey.
func PrettyCap(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	switch NormKey(s) {
	case "APPLE":
		return "Apple"
	case "IPHONE":
		return "iPhone"
	}
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for _, w := range words {
		wu := strings.ToUpper(w)
		switch {
		case uppercaseTokens[wu]:
			out = append(out, wu)
		case wu == "IPHONE":
			out = append(out, "iPhone")
		case utf8.RuneCountInString(w) <= 2:
			out = append(out, wu)
		default:
			out = append(out, capitalize(w))
		}
	}
	return strings.Join(out, " ")
}

// IsUppercaseToken informa se o token pertence ao conjunto fixo de siglas.
func IsUppercaseToken(w string) bool {
	return uppercaseTokens[strings.ToUpper(w)]
}

// capitalize sobe a primeira letra e baixa o resto. Baixar o resto
// importa: o casamento aproximado compara contra as formas de
// exibição do catálogo.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
