// Package logger provides structured logging for blobkit built on zerolog.
//
// Components obtain a tagged logger via WithComponent and log with
// optional field maps:
//
//	log := logger.NewDefault("blobkit").WithComponent("storage")
//	log.Info("initializing storage", map[string]interface{}{"provider": "s3"})
//
// Credentials and secret material are never logged by blobkit components;
// only provider names and container/bucket identifiers appear in fields.
package logger
