// Package classifier decides whether an e-mail needs action and suggests
// a reply for it.
package classifier

import (
	"regexp"
	"strings"

	"classificador/models"
)

var (
	specialChars = regexp.MustCompile(`[^a-zA-Z0-9çãáéíóúàèêõô\s]`)
	questionWord = wordsRegexp("poderia", "pode", "como")
)

// wordsRegexp matches any of words as a whole word. Accented letters count
// as word characters, which \b does not do.
func wordsRegexp(words ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(?:` + strings.Join(words, "|") + `)(?:$|[^\p{L}\p{N}_])`)
}

var productiveKeywords = []string{
	"suporte", "erro", "bug", "falha", "acesso", "login",
	"status", "atualização", "andamento", "protocolo",
	"solicito", "solicitação", "como faço", "não consigo", "ajuda",
	"documento", "anexo", "prazo", "nota fiscal", "chamado", "ticket",
}

var unproductiveKeywords = []string{
	"feliz natal", "bom dia", "boa tarde", "parabéns", "agradeço", "obrigado", "obrigada",
	"boas festas", "feliz ano novo", "saudações", "gentileza", "atenciosamente",
}

// Preprocess strips special characters, lowercases and drops stopwords.
// Uppercase accented letters are stripped before lowercasing.
func Preprocess(text string) string {
	text = specialChars.ReplaceAllString(text, " ")
	text = strings.ToLower(text)

	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if _, stop := stopwords[w]; stop {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// Classify returns CATEGORIA_PRODUTIVO or CATEGORIA_IMPRODUTIVO. Ties are productive.
func Classify(text string) string {
	t := strings.ToLower(text)

	productive := countHits(t, productiveKeywords)
	unproductive := countHits(t, unproductiveKeywords)

	if strings.Contains(t, "anexo") {
		productive++
	}
	if strings.Contains(t, "?") || questionWord.MatchString(t) {
		productive++
	}

	if productive >= unproductive {
		return models.CATEGORIA_PRODUTIVO
	}
	return models.CATEGORIA_IMPRODUTIVO
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}
