package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Configuration struct {
	ApiPort  string `json:"api_port"`
	LogPath  string `json:"log_path"`
	LogLevel string `json:"log_level"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbPath   string `json:"db_path"`  // sqlite3
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`
	DbDebug  bool   `json:"db_debug"`

	Upload struct {
		MaxMB int64 `json:"max_mb"`
	} `json:"upload"`

	OpenAI struct {
		Model     string  `json:"model"`
		MaxTokens int     `json:"max_tokens"`
		Temp      float64 `json:"temperature"`
	} `json:"openai"`
}

// Load lê o arquivo JSON (opcional) e aplica overrides de ambiente e defaults.
func Load(path string) (Configuration, error) {
	var c Configuration

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// roda só com env + defaults
	default:
		return c, err
	}

	c.applyEnv()
	c.applyDefaults()
	return c, nil
}

func (c *Configuration) applyEnv() {
	if v := env("PORT"); v != "" {
		c.ApiPort = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := env("DATABASE"); v != "" {
		c.Database = v
	}
	if v := env("OPENAI_MODEL"); v != "" {
		c.OpenAI.Model = v
	}
	if v := env("UPLOAD_MAX_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Upload.MaxMB = n
		}
	}
}

// defaults (pra evitar nil/zero chato)
func (c *Configuration) applyDefaults() {
	if c.ApiPort == "" {
		c.ApiPort = "5000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/database.db"
	}
	if c.Upload.MaxMB <= 0 {
		c.Upload.MaxMB = 10
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.MaxTokens <= 0 {
		c.OpenAI.MaxTokens = 220
	}
	if c.OpenAI.Temp <= 0 {
		c.OpenAI.Temp = 0.3
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
