// Package config provides configuration management for the Lexicon Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// .env files.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, public frontend URL)
//   - Database: MySQL connection details (sqlite for tests)
//   - Storage: S3/MinIO credentials for the audit archive
//   - Cache: Redis word cache
//   - Mail: SMTP settings for merge notifications
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
