package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
	"github.com/hasbyte1/go-arrayslice/collections"
)

type user struct {
	Name string
	Age  int
}

func TestSelect(t *testing.T) {
	users := []user{{"ann", 31}, {"bob", 25}, {"cy", 40}}
	src, _ := arrayslice.NewReadOnly(users)

	names, err := collections.Select(src, func(u user) string { return u.Name })
	require.NoError(t, err)
	assert.Equal(t, 3, names.Len())

	n, err := names.At(1)
	require.NoError(t, err)
	assert.Equal(t, "bob", n)

	_, err = names.At(3)
	assert.ErrorIs(t, err, arrayslice.ErrOutOfRange)

	users[1].Name = "rob"
	n, _ = names.At(1)
	assert.Equal(t, "rob", n, "projection is lazy")

	var all []string
	for _, v := range names.All() {
		all = append(all, v)
	}
	assert.Equal(t, []string{"ann", "rob", "cy"}, all)

	tail, err := names.SliceN(1, 2)
	require.NoError(t, err)
	assert.True(t, collections.SequenceEqual[string](tail, strs("rob", "cy")))
	assert.Equal(t, 2, tail.Source().Len())

	_, err = names.SliceN(2, 2)
	assert.ErrorIs(t, err, arrayslice.ErrOutOfRange)
}

func TestSelectNilSelector(t *testing.T) {
	src, _ := arrayslice.NewReadOnly([]int{1})
	_, err := collections.Select[int, int](src, nil)
	assert.ErrorIs(t, err, collections.ErrNilSelector)
}
