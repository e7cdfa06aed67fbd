package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageResolver_URL(t *testing.T) {
	r, err := NewImageResolver("cloudinary://k:s@demo")
	require.NoError(t, err)

	url := r.URL("mehfil/halls/royal-palace")
	assert.Contains(t, url, "https://res.cloudinary.com/demo/image/upload/")
	assert.Contains(t, url, "/c_fill,g_auto,w_800,h_600/f_auto/q_auto/")
	assert.Contains(t, url, "mehfil/halls/royal-palace")

	assert.Empty(t, r.URL(""))
}

func TestImageResolver_Unconfigured(t *testing.T) {
	r, err := NewImageResolver("")
	require.NoError(t, err)
	assert.Empty(t, r.URL("mehfil/halls/royal-palace"))

	var nilResolver *ImageResolver
	assert.Empty(t, nilResolver.URL("mehfil/halls/royal-palace"))
}
