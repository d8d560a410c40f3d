package controllers

import (
	"errors"
	"net/http"
	"strings"

	"classificador/classifier"
	dbpkg "classificador/db"
	"classificador/middleware"
	"classificador/models"
	"classificador/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgEmptyEmail = "Nenhum conteúdo de e-mail fornecido."
	msgTooLarge   = "Arquivo muito grande."
)

var replier classifier.Replier

// SetReplier define o gerador de respostas por IA; nil usa só os modelos.
func SetReplier(r classifier.Replier) {
	replier = r
}

// POST /classificar (multipart: emailText, emailFile)
func Classificar(c *gin.Context) {
	if _, err := c.MultipartForm(); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if isBodyTooLarge(err) {
			RespondError(c, msgTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		zap.L().Warn("multipart inválido", zap.Error(err))
		RespondError(c, "Formulário inválido.", http.StatusBadRequest)
		return
	}

	pasted := strings.TrimSpace(c.PostForm("emailText"))
	file, err := c.FormFile("emailFile")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		RespondError(c, "Não foi possível ler o arquivo enviado.", http.StatusBadRequest)
		return
	}

	text, origem, err := tools.ExtractEmailText(file, pasted)
	if err != nil {
		zap.L().Warn("falha ao ler arquivo do e-mail", zap.String("origem", origem), zap.Error(err))
		RespondError(c, "Não foi possível ler o arquivo enviado.", http.StatusBadRequest)
		return
	}
	if text == "" {
		RespondError(c, msgEmptyEmail, http.StatusBadRequest)
		return
	}

	processed := classifier.Preprocess(text)
	categoria := classifier.Classify(processed)
	resposta, respostaOrigem := classifier.SuggestReply(c.Request.Context(), replier, categoria, text)

	if db := dbpkg.DBInstance(c); db != nil {
		rec := models.Classificacao{
			RequestID:       middleware.RequestID(c),
			Origem:          origem,
			Texto:           text,
			TextoProcessado: processed,
			Categoria:       categoria,
			Resposta:        resposta,
			RespostaOrigem:  respostaOrigem,
		}
		if err := db.Create(&rec).Error; err != nil {
			zap.L().Error("falha ao salvar classificação", zap.Error(err))
		}
	}

	RespondSuccess(c, gin.H{"ok": true, "categoria": categoria, "resposta": resposta})
}

func isBodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large")
}
