package role_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/gestion-platform/app/database/constant/role"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected role.Role
		wantErr  bool
	}{
		{input: "utilisateur", expected: role.Utilisateur},
		{input: "Responsable", expected: role.Responsable},
		{input: " ADMIN ", expected: role.Admin},
		{input: "superadmin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := role.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRole_Scan(t *testing.T) {
	var r role.Role

	assert.NoError(t, r.Scan("admin"))
	assert.Equal(t, role.Admin, r)
	assert.NoError(t, r.Scan([]byte("responsable")))
	assert.Equal(t, role.Responsable, r)
	assert.Error(t, r.Scan(42))
}
