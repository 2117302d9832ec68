// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures for server settings, such as the listen
// port, the API key, and the public frontend URL used for notification deep links.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the word feature to build deep links.
package server
