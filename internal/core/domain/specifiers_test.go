package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/matrix/internal/core/domain"
)

func TestCondenseSpecifiers(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"py3.7", "py37"},
		{"np>=1.15.0", "npGE1150"},
		{"astropy~=2.0", "astropyC20"},
		{"pkg!=2.1,<3.1.0", "pkgNE21L310"},
		{"py3.7_np>=1.15.0_astropy>=2.0,!=2.1,<3.1.0", "py37_npGE1150_astropyGE20NE21L310"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CondenseSpecifiers(tt.raw))
		})
	}
}
