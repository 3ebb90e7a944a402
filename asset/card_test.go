package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/atlas/asset"
)

func newTestCard() *asset.Card {
	parent := asset.NewCard(asset.Metadata{
		"name":      "parent",
		"x":         2,
		"y":         3,
		"arch":      "llama3",
		"tokenizer": "https://example.com/tokenizer.model",
	}, nil)

	return asset.NewCard(asset.Metadata{
		"name":       "child",
		"x":          1,
		"checkpoint": "/var/models/child.pt",
		"ratio":      0.5,
		"frozen":     true,
		"params": map[string]interface{}{
			"dim": 4096,
		},
		"langs": []interface{}{"en", "de"},
	}, parent)
}

func TestCardName(t *testing.T) {
	card := newTestCard()
	assert.Equal(t, "child", card.Name())
	require.NotNil(t, card.Base())
	assert.Equal(t, "parent", card.Base().Name())
}

func TestFieldOwnMetadataWins(t *testing.T) {
	card := newTestCard()

	x, err := card.Field("x").AsInt()
	require.NoError(t, err)
	assert.Equal(t, 1, x, "own metadata must shadow the parent")
}

func TestFieldInheritedFromParent(t *testing.T) {
	card := newTestCard()

	y, err := card.Field("y").AsInt()
	require.NoError(t, err)
	assert.Equal(t, 3, y)

	arch, err := card.Field("arch").AsString()
	require.NoError(t, err)
	assert.Equal(t, "llama3", arch)
}

func TestFieldMissingNamesOriginalCard(t *testing.T) {
	card := newTestCard()

	field := card.Field("nonexistent")
	assert.False(t, field.Exists())

	_, err := field.AsString()
	require.Error(t, err)
	assert.True(t, asset.IsCardError(err))
	assert.Contains(t, err.Error(), "'child'", "error must name the card the lookup started at")
	assert.Contains(t, err.Error(), "'nonexistent'")
	assert.NotContains(t, err.Error(), "'parent'")
}

func TestFieldWrongTypeInheritedNamesOriginalCard(t *testing.T) {
	card := newTestCard()

	// 'y' lives on the parent but the error is attributed to 'child'.
	_, err := card.Field("y").AsString()
	require.Error(t, err)
	assert.True(t, asset.IsCardError(err))
	assert.Contains(t, err.Error(), "'child'")
}

func TestFieldAsString(t *testing.T) {
	card := newTestCard()

	s, err := card.Field("checkpoint").AsString()
	require.NoError(t, err)
	assert.Equal(t, "/var/models/child.pt", s)

	_, err = card.Field("x").AsString()
	require.Error(t, err)
	assert.True(t, asset.IsCardError(err))
}

func TestFieldAsInt(t *testing.T) {
	card := newTestCard()

	x, err := card.Field("x").AsInt()
	require.NoError(t, err)
	assert.Equal(t, 1, x)

	_, err = card.Field("ratio").AsInt()
	require.Error(t, err, "non-integral float must not convert to int")
}

func TestFieldAsFloat64(t *testing.T) {
	card := newTestCard()

	ratio, err := card.Field("ratio").AsFloat64()
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	x, err := card.Field("x").AsFloat64()
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
}

func TestFieldAsBool(t *testing.T) {
	card := newTestCard()

	frozen, err := card.Field("frozen").AsBool()
	require.NoError(t, err)
	assert.True(t, frozen)

	_, err = card.Field("x").AsBool()
	require.Error(t, err)
}

func TestFieldAsURI(t *testing.T) {
	card := newTestCard()

	u, err := card.Field("tokenizer").AsURI()
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "example.com", u.Host)
}

func TestFieldAsURILocalPath(t *testing.T) {
	card := newTestCard()

	u, err := card.Field("checkpoint").AsURI()
	require.NoError(t, err)
	assert.Equal(t, "file", u.Scheme)
	assert.Equal(t, "/var/models/child.pt", u.Path)
}

func TestFieldAsURINonString(t *testing.T) {
	card := newTestCard()

	_, err := card.Field("x").AsURI()
	require.Error(t, err)
	assert.True(t, asset.IsCardError(err))
}

func TestFieldAsMap(t *testing.T) {
	card := newTestCard()

	params, err := card.Field("params").AsMap()
	require.NoError(t, err)
	assert.Equal(t, 4096, params["dim"])
}

func TestFieldAsStringList(t *testing.T) {
	card := newTestCard()

	langs, err := card.Field("langs").AsStringList()
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "de"}, langs)
}

func TestFieldValue(t *testing.T) {
	card := newTestCard()

	v, err := card.Field("x").Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = card.Field("nope").Value()
	require.Error(t, err)
}

func TestMetadataReturnsCopy(t *testing.T) {
	card := newTestCard()

	m := card.Metadata()
	m["x"] = 99
	m["params"].(map[string]interface{})["dim"] = 1

	x, err := card.Field("x").AsInt()
	require.NoError(t, err)
	assert.Equal(t, 1, x, "mutating the returned metadata must not affect the card")

	params, err := card.Field("params").AsMap()
	require.NoError(t, err)
	assert.Equal(t, 4096, params["dim"])
}
