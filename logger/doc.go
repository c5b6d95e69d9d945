// Package logger provides structured logging for httpcore consumers using
// zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. Validation errors from the errors package are
// logged as structured objects carrying their kind and cause.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("router")
//	log.WithError(err).Warn("request rejected")
package logger
