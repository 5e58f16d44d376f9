package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeKey(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		key, err := CompositeKey(NamespaceUser, "Alice", "111-22-3333")
		require.NoError(t, err)
		assert.Equal(t, Key("\x00regnet.user\x00Alice\x00111-22-3333\x00"), key)
	})

	t.Run("Order Sensitive", func(t *testing.T) {
		a, err := CompositeKey(NamespaceUser, "a", "b")
		require.NoError(t, err)
		b, err := CompositeKey(NamespaceUser, "b", "a")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("Namespaces Differ", func(t *testing.T) {
		req, err := CompositeKey(NamespaceRequest, "P1")
		require.NoError(t, err)
		prop, err := CompositeKey(NamespaceProperty, "P1")
		require.NoError(t, err)
		assert.NotEqual(t, req, prop)
	})

	t.Run("Empty Namespace", func(t *testing.T) {
		_, err := CompositeKey("", "a")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("Null Attribute", func(t *testing.T) {
		_, err := CompositeKey(NamespaceUser, "Al\x00ice")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		_, err := CompositeKey(NamespaceUser, string([]byte{0xff, 0xfe}))
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestSplitCompositeKey(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		key, err := CompositeKey(NamespaceUser, "Alice", "111-22-3333")
		require.NoError(t, err)

		ns, attrs, err := SplitCompositeKey(key)
		require.NoError(t, err)
		assert.Equal(t, NamespaceUser, ns)
		assert.Equal(t, []string{"Alice", "111-22-3333"}, attrs)
	})

	t.Run("No Attributes", func(t *testing.T) {
		ns, attrs, err := SplitCompositeKey(Key("\x00regnet.user\x00"))
		require.NoError(t, err)
		assert.Equal(t, NamespaceUser, ns)
		assert.Empty(t, attrs)
	})

	t.Run("Not Composite", func(t *testing.T) {
		_, _, err := SplitCompositeKey(Key("plain"))
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestKeyString(t *testing.T) {
	key, err := CompositeKey(NamespaceProperty, "P1")
	require.NoError(t, err)
	assert.Equal(t, "regnet.property:P1", key.String())
}
