package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// PublicURL is the public base URL of the dictionary frontend,
	// used to build deep links in merge notifications.
	PublicURL string `mapstructure:"public_url" default:"http://localhost:3000"`
}

// DeepLink builds a frontend link for a merged headword.
func (c Config) DeepLink(headword string) string {
	return strings.TrimSuffix(c.PublicURL, "/") + "/words/" + headword
}

// ExampleLink builds a frontend link for a merged example sentence.
func (c Config) ExampleLink(id string) string {
	return strings.TrimSuffix(c.PublicURL, "/") + "/examples/" + id
}
