package client

import (
	"encoding/json"
	"errors"
)

// FallbackError is shown when a failed response carries no error text.
const FallbackError = "Erro ao classificar."

// Result is the decoded body of a /classificar response: Classified or Rejected.
type Result interface {
	isResult()
}

// Classified is a successful classification.
type Classified struct {
	Categoria string
	Resposta  string
}

// Rejected is a failed classification. Error may be empty.
type Rejected struct {
	Error string
}

func (Classified) isResult() {}
func (Rejected) isResult()   {}

type wireResult struct {
	Ok        *bool   `json:"ok"`
	Categoria string  `json:"categoria"`
	Resposta  string  `json:"resposta"`
	Error     *string `json:"error"`
}

var errInvalidBody = errors.New("resposta inválida do servidor")

// decodeResult parses body and applies the HTTP status: any non-2xx status
// turns the result into Rejected, keeping the body's error text if present.
func decodeResult(status int, body []byte) (Result, error) {
	var raw *wireResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errInvalidBody
	}

	success := status >= 200 && status < 300
	if success && raw.Ok != nil && *raw.Ok {
		return Classified{Categoria: raw.Categoria, Resposta: raw.Resposta}, nil
	}

	r := Rejected{}
	if raw.Error != nil {
		r.Error = *raw.Error
	}
	return r, nil
}

// Message returns the text shown in the response slot.
func (r Rejected) Message() string {
	if r.Error == "" {
		return FallbackError
	}
	return r.Error
}
