package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"classificador/config"
	"classificador/controllers"
	"classificador/db"
	"classificador/logger"
	"classificador/router"
	"classificador/tools"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// =====================
// ENV esperadas
// =====================
//
// Server
// - CONFIG_PATH      (default: config.json; o arquivo é opcional)
// - PORT             (sobrescreve api_port)
// - LOG_LEVEL        (debug, info, warn, error)
// - DATABASE         (sqlite3 ou postgres)
// - AUTOMIGRATE      (default 1)
// - UPLOAD_MAX_MB    (limite do corpo em /classificar)
//
// OpenAI
// - OPENAI_API_KEY   (sem ela, as respostas vêm dos modelos fixos)
// - OPENAI_MODEL     (default gpt-4o-mini)
//
// =====================

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("falha ao ler .env: %v", err)
	}

	cfg, err := config.Load(getenv("CONFIG_PATH", "config.json"))
	if err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	if err != nil {
		// sem banco o histórico fica desligado, a classificação continua
		logg.Error("banco indisponível, histórico desativado", zap.Error(err))
	} else {
		defer database.Close()
	}

	if ai := tools.NewOpenAIFromEnv(cfg.OpenAI.Model, cfg.OpenAI.Temp, cfg.OpenAI.MaxTokens); ai != nil {
		controllers.SetReplier(ai)
		logg.Info("respostas via OpenAI habilitadas", zap.String("model", cfg.OpenAI.Model))
	}

	if strings.EqualFold(cfg.LogLevel, "debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	router.Initialize(r, cfg, database, logg)

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logg.Info("classificador listening", zap.String("port", cfg.ApiPort))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal("server error", zap.Error(err))
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
