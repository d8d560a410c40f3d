package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"classificador/config"
	"classificador/controllers"
	dbpkg "classificador/db"
	"classificador/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReplier struct {
	reply string
	err   error
}

func (s stubReplier) Reply(ctx context.Context, categoria, text string) (string, error) {
	return s.reply, s.err
}

func setup(t *testing.T, withDB bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Configuration{DbPath: ":memory:"}
	cfg.Upload.MaxMB = 1

	var database *gorm.DB
	if withDB {
		t.Setenv("AUTOMIGRATE", "1")
		dbpkg.SetConfigurations(cfg)
		var err error
		database, err = dbpkg.Connect()
		require.NoError(t, err)
		t.Cleanup(func() { database.Close() })
	}

	controllers.SetReplier(nil)
	t.Cleanup(func() { controllers.SetReplier(nil) })

	r := gin.New()
	Initialize(r, cfg, database, zap.NewNop())
	return r, database
}

type filePart struct {
	name string
	data []byte
}

func multipartRequest(t *testing.T, fields map[string]string, file *filePart) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("emailFile", file.name)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/classificar", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

type classificarResponse struct {
	Ok        bool   `json:"ok"`
	Categoria string `json:"categoria"`
	Resposta  string `json:"resposta"`
	Error     string `json:"error"`
}

func do(t *testing.T, r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, classificarResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var out classificarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

func TestClassificar_PastedText(t *testing.T) {
	r, database := setup(t, true)

	w, out := do(t, r, multipartRequest(t, map[string]string{"emailText": "Qual o status do protocolo 123?"}, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, out.Ok)
	assert.Equal(t, models.CATEGORIA_PRODUTIVO, out.Categoria)
	assert.Contains(t, out.Resposta, "consultar o status interno")

	var recs []models.Classificacao
	require.NoError(t, database.Find(&recs).Error)
	require.Len(t, recs, 1)
	assert.Equal(t, models.ORIGEM_TEXTO, recs[0].Origem)
	assert.Equal(t, models.RESPOSTA_MODELO, recs[0].RespostaOrigem)
	assert.Equal(t, w.Header().Get("X-Request-ID"), recs[0].RequestID)
	assert.Equal(t, "status protocolo 123", recs[0].TextoProcessado)
}

func TestClassificar_Unproductive(t *testing.T) {
	r, _ := setup(t, false)

	_, out := do(t, r, multipartRequest(t, map[string]string{"emailText": "Feliz Natal e boas festas!"}, nil))

	assert.True(t, out.Ok)
	assert.Equal(t, models.CATEGORIA_IMPRODUTIVO, out.Categoria)
	assert.Contains(t, out.Resposta, "Agradecemos a mensagem")
}

func TestClassificar_TxtUploadWinsOverText(t *testing.T) {
	r, database := setup(t, true)

	req := multipartRequest(t,
		map[string]string{"emailText": "Feliz Natal"},
		&filePart{name: "EMAIL.TXT", data: []byte("Não consigo fazer login no sistema")},
	)
	_, out := do(t, r, req)

	assert.True(t, out.Ok)
	assert.Equal(t, models.CATEGORIA_PRODUTIVO, out.Categoria)
	assert.Contains(t, out.Resposta, "dificuldade de acesso")

	var rec models.Classificacao
	require.NoError(t, database.First(&rec).Error)
	assert.Equal(t, models.ORIGEM_TXT, rec.Origem)
}

func TestClassificar_UnsupportedFileFallsBackToText(t *testing.T) {
	r, _ := setup(t, false)

	req := multipartRequest(t,
		map[string]string{"emailText": "  bom dia  "},
		&filePart{name: "email.docx", data: []byte("status")},
	)
	_, out := do(t, r, req)

	assert.True(t, out.Ok)
	assert.Equal(t, models.CATEGORIA_IMPRODUTIVO, out.Categoria)
}

func TestClassificar_Empty(t *testing.T) {
	r, _ := setup(t, false)

	w, out := do(t, r, multipartRequest(t, map[string]string{"emailText": "   "}, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, out.Ok)
	assert.Equal(t, "Nenhum conteúdo de e-mail fornecido.", out.Error)
}

func TestClassificar_UploadTooLarge(t *testing.T) {
	r, _ := setup(t, false)

	big := bytes.Repeat([]byte("status do chamado "), 80000)
	req := multipartRequest(t,
		map[string]string{"emailText": "status"},
		&filePart{name: "email.txt", data: big},
	)
	w, out := do(t, r, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.False(t, out.Ok)
	assert.Equal(t, "Arquivo muito grande.", out.Error)
}

func TestClassificar_NotMultipart(t *testing.T) {
	r, _ := setup(t, false)

	req := httptest.NewRequest(http.MethodPost, "/classificar", strings.NewReader("emailText=feliz+natal"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w, out := do(t, r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CATEGORIA_IMPRODUTIVO, out.Categoria)

	w, out = do(t, r, httptest.NewRequest(http.MethodPost, "/classificar", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Nenhum conteúdo de e-mail fornecido.", out.Error)
}

func TestClassificar_InvalidPDF(t *testing.T) {
	r, _ := setup(t, false)

	w, out := do(t, r, multipartRequest(t, nil, &filePart{name: "email.pdf", data: []byte("texto qualquer")}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, out.Ok)
	assert.NotEmpty(t, out.Error)
}

func TestClassificar_UsesReplier(t *testing.T) {
	r, database := setup(t, true)
	controllers.SetReplier(stubReplier{reply: "Resposta gerada."})

	_, out := do(t, r, multipartRequest(t, map[string]string{"emailText": "preciso de suporte"}, nil))
	assert.Equal(t, "Resposta gerada.", out.Resposta)

	var rec models.Classificacao
	require.NoError(t, database.First(&rec).Error)
	assert.Equal(t, models.RESPOSTA_OPENAI, rec.RespostaOrigem)

	controllers.SetReplier(stubReplier{err: errors.New("timeout")})
	_, out = do(t, r, multipartRequest(t, map[string]string{"emailText": "preciso de suporte"}, nil))
	assert.Contains(t, out.Resposta, "Recebemos sua solicitação")
}

func TestHistorico(t *testing.T) {
	r, _ := setup(t, true)

	for _, text := range []string{"status do chamado", "feliz natal"} {
		w, _ := do(t, r, multipartRequest(t, map[string]string{"emailText": text}, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/classificacoes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Classificacoes []models.Classificacao `json:"classificacoes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Classificacoes, 2)
	assert.Equal(t, "feliz natal", list.Classificacoes[0].Texto)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/classificacoes/%d", list.Classificacoes[1].ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "status do chamado")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/classificacoes/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/classificacoes/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistorico_WithoutDB(t *testing.T) {
	r, _ := setup(t, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/classificacoes", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
