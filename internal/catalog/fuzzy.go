package catalog

// Casamento aproximado no estilo difflib: ratio = 2*M/T, onde M é o
// tamanho da maior subsequência comum e T a soma dos tamanhos. O corte
// de 0.80 e a ordem de varredura (candidatos já ordenados pela chave
// normalizada) são regra de negócio: decidem qual modelo um aparelho
// ambíguo recebe.

const fuzzyCutoff = 0.80

// closestMatch devolve o candidato com maior ratio >= cutoff. Empate
// fica com o primeiro da lista.
func closestMatch(want string, candidates []string, cutoff float64) (string, bool) {
	best := ""
	bestRatio := cutoff
	found := false
	for _, c := range candidates {
		r := ratio(want, c)
		if (!found && r >= bestRatio) || r > bestRatio {
			best = c
			bestRatio = r
			found = true
		}
	}
	return best, found
}

func ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(lcs(ra, rb)) / float64(total)
}

// lcs calcula o tamanho da maior subsequência comum com uma matriz DP
// de duas linhas.
func lcs(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
