// Package config provides configuration management for the article stream.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Sources: pipeline inputs (API response file, reference workbook, backend)
//   - Database: MySQL connection details for the database reference backend
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sources.APIResponseFile)
package config
