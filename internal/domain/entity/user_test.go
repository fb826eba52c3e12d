package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain", "Mort", "Mort", nil},
		{"trimmed", "  Mort ", "Mort", nil},
		{"nine characters", "abcdefghi", "abcdefghi", nil},
		{"unicode counts characters", "Смерть", "Смерть", nil},
		{"empty", "", "", ErrEmptyUsername},
		{"only spaces", "   ", "", ErrEmptyUsername},
		{"ten characters", "abcdefghij", "", ErrUsernameTooLong},
		{"reserved lower", "death", "", ErrReservedUsername},
		{"reserved title", "Death", "", ErrReservedUsername},
		{"reserved upper", "DEATH", "", ErrReservedUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUsername(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
