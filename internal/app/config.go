package app

import (
	"time"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/utils"
)

type Config struct {
	ServiceName     string
	Addr            string
	Environment     string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	addr := utils.GetEnv("BACKOFFICE_ADDR", ":8080", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	return Config{
		ServiceName:     "backoffice-backend",
		Addr:            addr,
		Environment:     environment,
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
	}
}
