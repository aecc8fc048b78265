package arrayslice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
)

func TestSearchIsWindowRelative(t *testing.T) {
	array := []int{7, 1, 2, 7, 3, 7}
	s, err := arrayslice.NewWindow(array, 1, 4) // [1 2 7 3]
	require.NoError(t, err)

	i, err := arrayslice.IndexOf(s, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = arrayslice.LastIndexOf(s, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = arrayslice.IndexOf(s.ReadOnly(), 9)
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	ok, err := arrayslice.Contains(s, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = arrayslice.Contains(s, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	sub, _ := s.Take(2)
	ok, err = arrayslice.Contains(sub, 7)
	require.NoError(t, err)
	assert.False(t, ok, "elements outside the window are not searched")

	i, err = s.IndexFunc(func(v int) bool { return v > 2 })
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = s.IndexFunc(nil)
	assert.ErrorIs(t, err, arrayslice.ErrNilPredicate)
}

func TestSearchDefault(t *testing.T) {
	_, err := arrayslice.IndexOf(arrayslice.ArraySlice[int]{}, 1)
	assert.ErrorIs(t, err, arrayslice.ErrDefaultInstance)
	_, err = arrayslice.Contains(arrayslice.ReadOnly[int]{}, 1)
	assert.ErrorIs(t, err, arrayslice.ErrDefaultInstance)
	_, err = arrayslice.LastIndexOf(arrayslice.ReadOnly[int]{}, 1)
	assert.ErrorIs(t, err, arrayslice.ErrDefaultInstance)
}
