package config

const (
	// Configuration file paths
	ConfigPathXPRules       = "configs/xp_rules.yaml"
	ConfigPathXPRulesSchema = "configs/schemas/xp_rules.schema.json"
)

// Defaults
const (
	DefaultPort        = 8080
	DefaultDBMaxConns  = 10
	DefaultCacheSize   = 1000
	DefaultCacheTTL    = "5m"
	DefaultServiceName = "skillquest"

	DefaultDBMaxConnIdleTime = "5m"
	DefaultDBMaxConnLifetime = "1h"
	DefaultResetTimezone     = "UTC"
)
