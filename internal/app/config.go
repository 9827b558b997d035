package app

import (
	"github.com/pawsteps/pawsteps-backend/internal/pkg/logger"
	"github.com/pawsteps/pawsteps-backend/internal/utils"
)

type Config struct {
	Port        string
	Environment string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:        utils.GetEnv("PORT", "8080", log),
		Environment: utils.GetEnv("APP_ENV", "development", log),
	}
}
