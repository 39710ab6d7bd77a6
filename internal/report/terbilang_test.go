package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerbilang(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "Satu"},
		{11, "Sebelas"},
		{15, "Lima Belas"},
		{21, "Dua Puluh Satu"},
		{100, "Seratus"},
		{150, "Seratus Lima Puluh"},
		{1000, "Seribu"},
		{1100, "Seribu Seratus"},
		{545000, "Lima Ratus Empat Puluh Lima Ribu"},
		{1000000, "Satu Juta"},
		{2500000, "Dua Juta Lima Ratus Ribu"},
		{1000000000, "Satu Milyar"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Terbilang(tc.n), "n=%d", tc.n)
	}
}

func TestTerbilang_NegativeSpelledWithoutSign(t *testing.T) {
	assert.Equal(t, "Lima Puluh", Terbilang(-50))
}
