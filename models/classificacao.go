package models

import "time"

/************************************************
/**** MARK: CATEGORIAS ****/
/************************************************/
const CATEGORIA_PRODUTIVO = "Produtivo"
const CATEGORIA_IMPRODUTIVO = "Improdutivo"

/************************************************
/**** MARK: ORIGEM ****/
/************************************************/
const ORIGEM_TEXTO = "texto"
const ORIGEM_TXT = "txt"
const ORIGEM_PDF = "pdf"

const RESPOSTA_OPENAI = "openai"
const RESPOSTA_MODELO = "modelo"

// Classificacao guarda o resultado de uma chamada a /classificar.
type Classificacao struct {
	ID              int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	RequestID       string     `gorm:"not null;default:'';index" json:"request_id"`
	Origem          string     `gorm:"not null;default:'texto'" json:"origem"`
	Texto           string     `gorm:"type:text" json:"texto"`
	TextoProcessado string     `gorm:"type:text" json:"texto_processado"`
	Categoria       string     `gorm:"not null;index" json:"categoria"`
	Resposta        string     `gorm:"type:text" json:"resposta"`
	RespostaOrigem  string     `gorm:"not null;default:'modelo'" json:"resposta_origem"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}
