package render

import (
	"path/filepath"
	"testing"

	"github.com/bakito/rblxapi2cpp/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClassName(t *testing.T) {
	doc := &document.Document{Name: "Part"}

	name, err := ResolveClassName("BasePart", doc)
	require.NoError(t, err)
	assert.Equal(t, "BasePart", name)

	name, err = ResolveClassName("", doc)
	require.NoError(t, err)
	assert.Equal(t, "Part", name)

	name, err = ResolveClassName("Override", &document.Document{})
	require.NoError(t, err)
	assert.Equal(t, "Override", name)

	_, err = ResolveClassName("", &document.Document{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingClassName)
	assert.ErrorIs(t, err, document.ErrKeyNotFound)
}

func TestNewContext(t *testing.T) {
	props := []document.Property{{Name: "X", Type: "number"}}
	constrs := []document.Constructor{{Name: "Vector3.new"}}

	t.Run("class", func(t *testing.T) {
		rc, err := NewContext(&document.Document{Kind: document.Class, Properties: props}, "Part")
		require.NoError(t, err)

		assert.Equal(t, ClassTemplate, rc.Template)
		assert.Equal(t, map[string]any{
			"classname": "Part",
			"prop":      props,
		}, rc.Data)
		assert.NotContains(t, rc.Data, "constrs")
		assert.NotContains(t, rc.Data, "props")
	})

	t.Run("datatype", func(t *testing.T) {
		rc, err := NewContext(&document.Document{
			Kind:         document.Datatype,
			Properties:   props,
			Constructors: constrs,
		}, "Vector3")
		require.NoError(t, err)

		assert.Equal(t, DatatypeTemplate, rc.Template)
		assert.Equal(t, map[string]any{
			"classname": "Vector3",
			"constrs":   constrs,
			"props":     props,
		}, rc.Data)
		assert.NotContains(t, rc.Data, "prop")
	})

	t.Run("empty class name", func(t *testing.T) {
		_, err := NewContext(&document.Document{}, "")
		assert.Error(t, err)
	})
}

func TestOutputPath(t *testing.T) {
	dir := filepath.Join("out", "include")

	assert.Equal(t, filepath.Join(dir, "Part.hpp"), OutputPath(dir, "", "docs/Part.yaml"))
	assert.Equal(t, filepath.Join(dir, "BasePart.hpp"), OutputPath(dir, "BasePart", "docs/Part.yaml"))
	assert.Equal(t, filepath.Join(dir, "Part.class.hpp"), OutputPath(dir, "", "Part.class.yaml"))
	assert.Equal(t, filepath.Join(dir, "Part.hpp"), OutputPath(dir, "", "Part"))
}
