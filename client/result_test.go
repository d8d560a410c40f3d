package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResult(t *testing.T) {
	res, err := decodeResult(201, []byte(`{"ok":true,"categoria":"Improdutivo","resposta":"Obrigado"}`))
	require.NoError(t, err)
	assert.Equal(t, Classified{Categoria: "Improdutivo", Resposta: "Obrigado"}, res)

	res, err = decodeResult(404, []byte(`{"error":"não encontrado"}`))
	require.NoError(t, err)
	assert.Equal(t, Rejected{Error: "não encontrado"}, res)
	assert.Equal(t, "não encontrado", res.(Rejected).Message())

	_, err = decodeResult(200, []byte(`null`))
	assert.ErrorIs(t, err, errInvalidBody)

	_, err = decodeResult(200, []byte(`[1,2]`))
	assert.Error(t, err)

	_, err = decodeResult(200, nil)
	assert.Error(t, err)
}

func TestFormEncode(t *testing.T) {
	var f Form
	f.Set("emailText", "bom dia")
	f.Attach("emailFile", "a.txt", []byte("x"))

	v, ok := f.Value("emailText")
	assert.True(t, ok)
	assert.Equal(t, "bom dia", v)
	_, ok = f.Value("nada")
	assert.False(t, ok)

	body, contentType, err := f.encode()
	require.NoError(t, err)
	assert.Contains(t, contentType, "multipart/form-data; boundary=")
	assert.Contains(t, body.String(), `name="emailText"`)
	assert.Contains(t, body.String(), `filename="a.txt"`)
}

func TestDecodeResult_StrictTypes(t *testing.T) {
	_, err := decodeResult(200, []byte(`{"ok":1,"categoria":"x","resposta":"y"}`))
	assert.Error(t, err)

	_, err = decodeResult(200, []byte(`{"ok":false,"error":{"msg":"x"}}`))
	assert.Error(t, err)
}
