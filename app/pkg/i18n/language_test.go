package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/gestion-platform/app/pkg/i18n"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected i18n.Lang
	}{
		{name: "empty header", header: "", expected: i18n.French},
		{name: "arabic", header: "ar", expected: i18n.Arabic},
		{name: "arabic region", header: "ar-MA,ar;q=0.9", expected: i18n.Arabic},
		{name: "french first", header: "fr-FR,fr;q=0.9,ar;q=0.5", expected: i18n.French},
		{name: "arabic preferred over french", header: "ar;q=0.9,fr;q=0.4", expected: i18n.Arabic},
		{name: "unsupported language", header: "de-DE", expected: i18n.French},
		{name: "garbage", header: ";;;==", expected: i18n.French},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.Negotiate(tt.header))
		})
	}
}

func TestLabels_In(t *testing.T) {
	labels := i18n.Labels{French: "En cours", Arabic: "قيد التنفيذ"}

	assert.Equal(t, "En cours", labels.In(i18n.French))
	assert.Equal(t, "قيد التنفيذ", labels.In(i18n.Arabic))
	assert.Equal(t, "En cours", labels.In(i18n.Lang("es")))
}
