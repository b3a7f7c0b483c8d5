package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterValidator_ValidateUsername(t *testing.T) {
	v := NewRegisterValidator()

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"plain name", "maria", false},
		{"accented name", "joão", false},
		{"empty", "", true},
		{"with space", "maria silva", true},
		{"with tab", "maria\tsilva", true},
		{"too long", string(make([]byte, MaxUsernameLen+1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterValidator_ValidateRegister(t *testing.T) {
	v := NewRegisterValidator()

	valid := RegisterRequest{
		Username: "maria",
		Password: "segredo",
		Age:      "27",
		Reason:   ReasonPsychological,
	}

	assert.NoError(t, v.ValidateRegister(valid))

	short := valid
	short.Password = "abc"
	assert.Error(t, v.ValidateRegister(short))

	noSex := valid
	noSex.Sex = ""
	assert.NoError(t, v.ValidateRegister(noSex), "sex is optional")
}
