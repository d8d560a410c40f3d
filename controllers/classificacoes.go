package controllers

import (
	"net/http"

	dbpkg "classificador/db"
	"classificador/models"

	"github.com/gin-gonic/gin"
)

// GET /api/classificacoes
func GetClassificacoes(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var items []models.Classificacao
	if err := db.Order("id desc").Limit(200).Find(&items).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"ok": true, "classificacoes": items})
}

// GET /api/classificacoes/:id
func GetClassificacaoByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var item models.Classificacao
	if err := db.First(&item, id).Error; err != nil {
		RespondError(c, "classificação não encontrada", http.StatusNotFound)
		return
	}

	RespondSuccess(c, gin.H{"ok": true, "classificacao": item})
}
