package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/gestion-platform/app/pkg/util/validator"
)

func TestIsDomainAllowed(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		allowed []string
		want    bool
	}{
		{name: "exact", domain: "gestion.example.org", allowed: []string{"gestion.example.org"}, want: true},
		{name: "other subdomain", domain: "api.example.org", allowed: []string{"gestion.example.org"}},
		{name: "wildcard subdomain", domain: "app.example.org", allowed: []string{"*.example.org"}, want: true},
		{name: "wildcard apex", domain: "example.org", allowed: []string{"*.example.org"}, want: true},
		{name: "leading dot", domain: "app.example.org", allowed: []string{".example.org"}, want: true},
		{name: "lookalike", domain: "badexample.org", allowed: []string{"*.example.org"}},
		{name: "origin form", domain: "app.example.org", allowed: []string{"https://app.example.org"}, want: true},
		{name: "case", domain: "APP.Example.org", allowed: []string{"app.example.org"}, want: true},
		{name: "empty domain", domain: "", allowed: []string{"app.example.org"}},
		{name: "empty list", domain: "app.example.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsDomainAllowed(tt.domain, tt.allowed))
		})
	}
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, validator.IsOriginAllowed("http://localhost:5173", []string{"*"}))
	assert.True(t, validator.IsOriginAllowed("https://app.example.org", []string{"*.example.org"}))
	assert.True(t, validator.IsOriginAllowed("http://localhost:5173", []string{"http://localhost:5173"}))
	assert.False(t, validator.IsOriginAllowed("https://evil.test", []string{"*.example.org"}))
	assert.False(t, validator.IsOriginAllowed("not a url", []string{"*.example.org"}))
}
