package arrayslice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
)

type animal interface{ Name() string }

type dog struct{ name string }

func (d *dog) Name() string { return d.name }

type cat struct{ name string }

func (c *cat) Name() string { return c.name }

func dogs(names ...string) []*dog {
	out := make([]*dog, len(names))
	for i, n := range names {
		out[i] = &dog{name: n}
	}
	return out
}

func TestFromChildSharesArray(t *testing.T) {
	array := dogs("rex", "fido", "max")
	s, err := arrayslice.NewFrom(array, 1)
	require.NoError(t, err)

	v, err := arrayslice.FromChild[animal](s)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.False(t, v.IsReadOnly())

	a, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, "fido", a.Name())
	assert.Same(t, array[1], a)

	require.NoError(t, v.Set(1, &dog{name: "bo"}))
	assert.Equal(t, "bo", array[2].Name())

	require.NoError(t, v.Set(0, nil))
	assert.Nil(t, array[1])
}

func TestFromChildRejectsMismatchedWrite(t *testing.T) {
	array := dogs("rex")
	s, _ := arrayslice.New(array)
	v, err := arrayslice.FromChild[animal](s)
	require.NoError(t, err)

	err = v.Set(0, &cat{name: "tom"})
	assert.ErrorIs(t, err, arrayslice.ErrTypeMismatch)
	assert.Equal(t, "rex", array[0].Name())
}

func TestFromChildInvalidConversions(t *testing.T) {
	ints, _ := arrayslice.New([]int{1})
	_, err := arrayslice.FromChild[fmt.Stringer](ints)
	assert.ErrorIs(t, err, arrayslice.ErrInvalidConversion)

	ds, _ := arrayslice.New(dogs("rex"))
	_, err = arrayslice.FromChild[*dog](ds)
	assert.ErrorIs(t, err, arrayslice.ErrInvalidConversion, "base must be an interface")

	_, err = arrayslice.FromChild[fmt.Stringer](ds)
	assert.ErrorIs(t, err, arrayslice.ErrInvalidConversion, "dog is not a Stringer")
}

func TestReadOnlyFromChild(t *testing.T) {
	r, _ := arrayslice.NewReadOnly(dogs("rex", "fido"))
	v, err := arrayslice.ReadOnlyFromChild[animal](r)
	require.NoError(t, err)
	assert.True(t, v.IsReadOnly())
	assert.ErrorIs(t, v.Set(0, &dog{}), arrayslice.ErrUnsupported)

	var names []string
	for _, a := range v.All() {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{"rex", "fido"}, names)
}

func TestCovariantSliceAndBounds(t *testing.T) {
	s, _ := arrayslice.New(dogs("a", "b", "c", "d"))
	v, _ := arrayslice.FromChild[animal](s)

	sub, err := v.SliceN(1, 2)
	require.NoError(t, err)
	a, err := sub.At(1)
	require.NoError(t, err)
	assert.Equal(t, "c", a.Name())

	_, err = sub.At(2)
	assert.ErrorIs(t, err, arrayslice.ErrOutOfRange)
	_, err = v.SliceN(3, 2)
	assert.ErrorIs(t, err, arrayslice.ErrOutOfRange)
}

func TestCovariantDefault(t *testing.T) {
	v, err := arrayslice.FromChild[animal](arrayslice.ArraySlice[*dog]{})
	require.NoError(t, err)
	assert.True(t, v.IsDefault())
	assert.Zero(t, v.Len())
	_, err = v.At(0)
	assert.ErrorIs(t, err, arrayslice.ErrDefaultInstance)
	_, err = v.SliceN(0, 0)
	assert.ErrorIs(t, err, arrayslice.ErrDefaultInstance)
}
