package resolver

import (
	"regexp"
	"strings"

	"autoapple/internal/textnorm"
)

var (
	renoSpacing   = regexp.MustCompile(`(?i)\breno\s*(\d+)\b`)
	iphoneSpacing = regexp.MustCompile(`(?i)\biphone\s*(\d+)\b`)
	wsRun         = regexp.MustCompile(`\s+`)
)

// fixModelSpacing força o espaçamento fixo de dois padrões de modelo:
// "Reno10" → "Reno 10" e "iPhone15" → "iPhone 15".
func fixModelSpacing(model string) string {
	s := strings.TrimSpace(model)
	s = renoSpacing.ReplaceAllString(s, "Reno $1")
	s = iphoneSpacing.ReplaceAllString(s, "iPhone $1")
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// finalizeModelCase ajusta o caso token a token: siglas/tamanhos em
// maiúsculas, iphone→iPhone, reno→Reno, tokens curtos em maiúsculas,
// o resto capitalizado.
func finalizeModelCase(model string) string {
	words := strings.Fields(strings.TrimSpace(model))
	out := make([]string, 0, len(words))
	for _, w := range words {
		low := strings.ToLower(w)
		switch {
		case textnorm.IsUppercaseToken(w):
			out = append(out, strings.ToUpper(w))
		case low == "iphone":
			out = append(out, "iPhone")
		case low == "reno":
			out = append(out, "Reno")
		case len([]rune(w)) > 2:
			out = append(out, capitalizeWord(w))
		default:
			out = append(out, strings.ToUpper(w))
		}
	}
	return strings.Join(out, " ")
}

// finalizeModel é o acabamento aplicado a todo modelo que sai do
// resolvedor.
func finalizeModel(model string) string {
	return finalizeModelCase(fixModelSpacing(model))
}

func capitalizeWord(w string) string {
	r := []rune(w)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
