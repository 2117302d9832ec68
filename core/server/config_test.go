package server_test

import (
	"testing"

	"lexicon-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DeepLink(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		headword string
		want     string
	}{
		{"Plain", "https://dictionary.example.com", "nri", "https://dictionary.example.com/words/nri"},
		{"Trailing Slash", "https://dictionary.example.com/", "nri", "https://dictionary.example.com/words/nri"},
		{"Default", "http://localhost:3000", "aga", "http://localhost:3000/words/aga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{PublicURL: tt.baseURL}
			assert.Equal(t, tt.want, c.DeepLink(tt.headword))
		})
	}
}
