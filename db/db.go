package db

import (
	"os"
	"path/filepath"

	"classificador/config"
	"classificador/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre conexão com DB (sqlite3 por padrão) e faz automigrate.
// Para desligar o automigrate (ex.: produção com migrations próprias), exporte AUTOMIGRATE=0.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		zap.L().Info("utilizando conexão com o postgresql")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		zap.L().Info("utilizando conexão com o sqlite3", zap.String("path", conf.DbPath))
		path := conf.DbPath
		if path == "" {
			path = "db/database.db"
		}
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, err
			}
		}
		db, err = gorm.Open("sqlite3", path)
	}

	if err != nil {
		zap.L().Error("erro ao conectar no banco", zap.Error(err))
		return nil, err
	}

	if conf.DbPath == ":memory:" {
		// cada conexão nova teria um banco vazio
		db.DB().SetMaxOpenConns(1)
	}
	db.LogMode(conf.DbDebug)

	if getenv("AUTOMIGRATE", "1") == "1" {
		if err := db.AutoMigrate(&models.Classificacao{}).Error; err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
