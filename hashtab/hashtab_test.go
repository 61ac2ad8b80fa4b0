package hashtab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	table, err := New[string, int](42, EqualString, HashString)
	require.NoError(t, err)

	require.Zero(t, table.Len())
	require.Equal(t, 42, table.Size())
}

func TestNewInvalidArguments(t *testing.T) {
	_, err := New[string, int](-1, EqualString, HashString)

	var invalidCapacity InvalidCapacityError

	require.ErrorAs(t, err, &invalidCapacity)

	_, err = New[string, int](42, nil, HashString)
	require.ErrorIs(t, err, ErrNilEqualFunc)

	_, err = New[string, int](42, EqualString, nil)
	require.ErrorIs(t, err, ErrNilHashFunc)
}

func TestTableInsert(t *testing.T) {
	table, err := New[string, int](42, EqualString, HashString)
	require.NoError(t, err)

	// Placement logic doesn't exist yet, only the capacity check runs
	require.ErrorIs(t, table.Insert("alpha", 1), ErrNotImplemented)
	require.Zero(t, table.Len())
}

func TestTableInsertFull(t *testing.T) {
	table, err := New[string, int](0, EqualString, HashString)
	require.NoError(t, err)

	var full FullError

	require.ErrorAs(t, table.Insert("alpha", 1), &full)
}

func TestTableGetRemoveNotImplemented(t *testing.T) {
	table, err := New[string, int](42, EqualString, HashString)
	require.NoError(t, err)

	_, err = table.Get("alpha")
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = table.Remove("alpha")
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestEqualString(t *testing.T) {
	require.True(t, EqualString("alpha", "alpha"))
	require.False(t, EqualString("alpha", "beta"))
}

func TestHashString(t *testing.T) {
	require.Equal(t, HashString("alpha"), HashString("alpha"))
	require.NotEqual(t, HashString("alpha"), HashString("beta"))

	// FNV-1a offset basis for the empty string
	require.Equal(t, uint32(2166136261), HashString(""))
}

func TestEqualPointer(t *testing.T) {
	a, b := new(int), new(int)

	require.True(t, EqualPointer(a, a))
	require.False(t, EqualPointer(a, b))
}

func TestHashPointer(t *testing.T) {
	a, b := new(int), new(int)

	require.Equal(t, HashPointer(a), HashPointer(a))
	require.NotEqual(t, HashPointer(a), HashPointer(b))
}
