package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestGetReturnsRegisteredFace(t *testing.T) {
	const name FontName = "test-regular"
	require.NoError(t, LoadFontWithSize(name, goregular.TTF, 12))

	first := name.Get()
	assert.Same(t, first, name.Get())
}

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{HUD, Banner, Small} {
		assert.NotNil(t, name.Get(), string(name))
	}
}

func TestLoadFontRejectsBadData(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 12))
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
