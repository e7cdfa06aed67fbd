package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProducts(t *testing.T) {
	clean, ids := ParseProducts("Ye rahe behtareen halls.\n\n[PRODUCTS]:[hall_001, hall_004,hall_001]")
	assert.Equal(t, "Ye rahe behtareen halls.", clean)
	assert.Equal(t, []string{"hall_001", "hall_004"}, ids)

	clean, ids = ParseProducts("koi option nahi mila")
	assert.Equal(t, "koi option nahi mila", clean)
	assert.Empty(t, ids)
}

func TestStripProducts_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "Done", StripProducts("Done [products] [\"car_001\"]"))
}
