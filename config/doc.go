// Package config loads httpcore settings with Viper.
//
// Settings come from built-in defaults, an optional YAML/JSON/TOML file, an
// optional .env file, and environment variables, in increasing order of
// precedence. Environment variables use the HTTPCORE_ prefix with
// underscore-separated paths (e.g., HTTPCORE_LIMITS_URI_MAX_LENGTH).
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("httpcore.yml"))
//	if err != nil {
//	    return err
//	}
//	headers := cfg.Limits.NewHeaderMap()
package config
