package app

import (
	"fmt"
	"os"
	"strings"

	redisclient "github.com/veloraops/backoffice-backend/internal/clients/redis"
	"github.com/veloraops/backoffice-backend/internal/logger"
)

type Clients struct {
	CompletionCache redisclient.CompletionCache
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis is optional; registry reads fall back to postgres when unset.
	var cache redisclient.CompletionCache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		c, err := redisclient.NewCompletionCache(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis completion cache: %w", err)
		}
		cache = c
	}

	return Clients{CompletionCache: cache}, nil
}
