package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseline(t *testing.T) {
	t.Run("Should create baseline from plain string", func(t *testing.T) {
		version, err := NewBaseline("0.12.0")
		require.NoError(t, err)
		assert.Equal(t, Triple{0, 12, 0}, version.Triple())
		assert.Equal(t, "0.12.0", version.String())
		assert.False(t, version.Enriched())
	})
	t.Run("Should accept v prefix", func(t *testing.T) {
		version, err := NewBaseline("v1.2.3")
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", version.String())
	})
	t.Run("Should return error for invalid version string", func(t *testing.T) {
		version, err := NewBaseline("invalid")
		assert.Error(t, err)
		assert.Nil(t, version)
	})
	t.Run("Should panic in MustBaseline on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { MustBaseline("nope") })
	})
}

func TestParseDescribe(t *testing.T) {
	t.Run("Should parse enriched describe output", func(t *testing.T) {
		version, ok := ParseDescribe("0.12.0-3-abcdefab")
		require.True(t, ok)
		assert.Equal(t, Triple{0, 12, 0}, version.Triple())
		assert.Equal(t, 3, version.Commits())
		assert.Equal(t, "abcdefab", version.Hash())
		assert.Equal(t, "0.12.0-3-abcdefab", version.String())
	})
	t.Run("Should strip git g prefix from hash", func(t *testing.T) {
		version, ok := ParseDescribe("v0.12.0-14-g0123abcd")
		require.True(t, ok)
		assert.Equal(t, "0.12.0-14-0123abcd", version.String())
	})
	t.Run("Should parse exact tag without enrichment", func(t *testing.T) {
		version, ok := ParseDescribe("v0.13.0")
		require.True(t, ok)
		assert.Equal(t, Triple{0, 13, 0}, version.Triple())
		assert.False(t, version.Enriched())
		assert.Equal(t, "0.13.0", version.String())
	})
	t.Run("Should skip prerelease text between tag and suffix", func(t *testing.T) {
		version, ok := ParseDescribe("0.12.0rc1-7-deadbeef")
		require.True(t, ok)
		assert.Equal(t, "0.12.0-7-deadbeef", version.String())
	})
	t.Run("Should ignore suffix with short hash", func(t *testing.T) {
		version, ok := ParseDescribe("0.12.0-3-abc")
		require.True(t, ok)
		assert.False(t, version.Enriched())
	})
	t.Run("Should reject output without a triple", func(t *testing.T) {
		version, ok := ParseDescribe("release-candidate")
		assert.False(t, ok)
		assert.Nil(t, version)
	})
}

func TestVersion_Compare(t *testing.T) {
	t.Run("Should compare numeric triples only", func(t *testing.T) {
		base := MustBaseline("0.12.0")
		enriched := NewEnrichedVersion(Triple{0, 12, 0}, 3, "abcdefab")
		newer := MustBaseline("0.13.0")
		assert.Equal(t, 0, base.Compare(enriched))
		assert.Equal(t, -1, base.Compare(newer))
		assert.Equal(t, 1, newer.Compare(base))
	})
}

func TestVersionValue_String(t *testing.T) {
	t.Run("Should return text as is", func(t *testing.T) {
		assert.Equal(t, "v1.9.1", TextVersion("v1.9.1").String())
	})
	t.Run("Should join numeric parts with dots", func(t *testing.T) {
		assert.Equal(t, "2.43.0", PartsVersion(2, 43, 0).String())
	})
	t.Run("Should return empty string for zero value", func(t *testing.T) {
		assert.Equal(t, "", VersionValue{}.String())
	})
}
