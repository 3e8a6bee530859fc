package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphCoverage(t *testing.T) {
	for i := 0; i < len(overlayCharset); i++ {
		_, ok := overlayGlyphs[overlayCharset[i]]
		assert.True(t, ok, "charset rune %q has no bitmap", overlayCharset[i])
	}
}

func TestGlyphAtlasIndex(t *testing.T) {
	assert.Equal(t, 0, glyphAtlasIndex('0'))
	assert.Equal(t, 9, glyphAtlasIndex('9'))
	assert.Equal(t, glyphAtlasIndex(' '), glyphAtlasIndex('X'), "uncovered runes fall back to space")
}

func TestBuildGlyphAtlasSize(t *testing.T) {
	atlas := buildGlyphAtlas()
	assert.Len(t, atlas, len(overlayCharset)*glyphSize*glyphSize*4)
}

func TestBuildGlyphAtlasSpaceIsEmpty(t *testing.T) {
	atlas := buildGlyphAtlas()
	slot := glyphAtlasIndex(' ')
	width := len(overlayCharset) * glyphSize
	for row := 0; row < glyphSize; row++ {
		for col := 0; col < glyphSize; col++ {
			idx := (row*width + slot*glyphSize + col) * 4
			assert.Zero(t, atlas[idx+3], "space glyph must be fully transparent")
		}
	}
}

func TestBuildTextQuads(t *testing.T) {
	verts := buildTextQuads("60 FPS", 10, 10, 2)
	require.Len(t, verts, 6*6*4)

	// second glyph starts one advance to the right
	advance := float32(glyphSize * 2)
	assert.Equal(t, float32(10)+advance, verts[6*4])
}
