package classifier

import (
	"context"
	"strings"

	"classificador/models"

	"go.uber.org/zap"
)

// Replier drafts a reply for an e-mail of the given category.
type Replier interface {
	Reply(ctx context.Context, categoria, text string) (string, error)
}

var (
	statusWords = wordsRegexp("status", "andamento", "protocolo")
	accessWords = wordsRegexp("acesso", "login", "senha", "não consigo")
)

const (
	replyStatus = "Verificamos seu pedido e vamos consultar o status interno. " +
		"Por favor, confirme o número do protocolo/CPF/CNPJ e a data da solicitação. " +
		"Assim que atualizado, retornaremos neste mesmo e-mail."
	replyAccess = "Entendi a dificuldade de acesso. Para agilizar, informe o CPF/CNPJ, e-mail cadastrado " +
		"e, se possível, um print do erro. Já encaminhei para o time técnico e " +
		"retornaremos com as orientações de desbloqueio."
	replyProductive = "Recebemos sua solicitação. Para prosseguir, compartilhe os dados essenciais " +
		"(CPF/CNPJ, número do protocolo e detalhes do caso). Assim que recebermos, " +
		"daremos andamento e retornaremos com a atualização."
	replyUnproductive = "Agradecemos a mensagem! Não identificamos necessidade de ação neste momento. " +
		"Se precisar de suporte ou tiver alguma solicitação específica, conte conosco por aqui."
)

// SuggestReply asks ai for a reply and falls back to TemplateReply when ai
// is nil or fails. The second return value is the reply origin.
func SuggestReply(ctx context.Context, ai Replier, categoria, text string) (string, string) {
	if ai != nil {
		reply, err := ai.Reply(ctx, categoria, text)
		if err == nil && strings.TrimSpace(reply) != "" {
			return reply, models.RESPOSTA_OPENAI
		}
		zap.L().Warn("resposta via IA indisponível, usando modelo", zap.Error(err))
	}
	return TemplateReply(categoria, text), models.RESPOSTA_MODELO
}

// TemplateReply picks a canned reply by category and by the topics found in text.
func TemplateReply(categoria, text string) string {
	if categoria != models.CATEGORIA_PRODUTIVO {
		return replyUnproductive
	}
	t := strings.ToLower(text)
	switch {
	case statusWords.MatchString(t):
		return replyStatus
	case accessWords.MatchString(t):
		return replyAccess
	}
	return replyProductive
}
