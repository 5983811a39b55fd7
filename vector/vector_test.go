package vector

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/dkrmr/libgenerics/gerror"
)

func TestAddAtRoundTrip(t *testing.T) {
	v, err := New(0, 4)
	assert.NilError(t, err)

	for i := byte(0); i < 20; i++ {
		assert.NilError(t, v.Add([]byte{i, i + 1, i + 2, i + 3}))
	}
	assert.Equal(t, 20, v.Len())
	assert.Equal(t, 4, v.MemberSize())

	out := make([]byte, 4)
	for i := byte(0); i < 20; i++ {
		assert.NilError(t, v.At(int(i), out))
		assert.DeepEqual(t, []byte{i, i + 1, i + 2, i + 3}, out)
	}
}

func TestSetAtOverwrites(t *testing.T) {
	v, err := New(4, 2)
	assert.NilError(t, err)
	assert.NilError(t, v.Add([]byte{1, 1}))
	assert.NilError(t, v.Add([]byte{2, 2}))

	assert.NilError(t, v.SetAt(0, []byte{9, 9}))

	out := make([]byte, 2)
	assert.NilError(t, v.At(0, out))
	assert.DeepEqual(t, []byte{9, 9}, out)
	assert.NilError(t, v.At(1, out))
	assert.DeepEqual(t, []byte{2, 2}, out)
}

func TestBoundsErrors(t *testing.T) {
	v, err := New(0, 1)
	assert.NilError(t, err)
	assert.NilError(t, v.Add([]byte{1}))

	out := make([]byte, 1)
	assert.ErrorIs(t, v.At(1, out), ErrIndexOutOfBound)
	assert.ErrorIs(t, v.At(-1, out), ErrIndexOutOfBound)
	assert.ErrorIs(t, v.SetAt(1, []byte{2}), ErrIndexOutOfBound)
	_, err = v.Slice(1)
	assert.ErrorIs(t, err, ErrIndexOutOfBound)

	code, ok := gerror.CodeOf(v.At(5, out))
	assert.Assert(t, ok)
	assert.Equal(t, gerror.AccessOutOfBound, code)
}

func TestMemberSizeMismatch(t *testing.T) {
	v, err := New(0, 3)
	assert.NilError(t, err)

	assert.ErrorIs(t, v.Add([]byte{1}), ErrMemberSize)
	assert.NilError(t, v.Add([]byte{1, 2, 3}))
	assert.ErrorIs(t, v.SetAt(0, []byte{1, 2, 3, 4}), ErrMemberSize)
	assert.ErrorIs(t, v.At(0, make([]byte, 2)), ErrMemberSize)
}

func TestSliceAliasesBuffer(t *testing.T) {
	v, err := New(2, 2)
	assert.NilError(t, err)
	assert.NilError(t, v.Add([]byte{1, 2}))

	s, err := v.Slice(0)
	assert.NilError(t, err)
	s[0] = 42

	out := make([]byte, 2)
	assert.NilError(t, v.At(0, out))
	assert.DeepEqual(t, []byte{42, 2}, out)
}

func TestResizeTruncatesAndGrowsByStep(t *testing.T) {
	v, err := New(0, 1)
	assert.NilError(t, err)
	for i := byte(0); i < 10; i++ {
		assert.NilError(t, v.Add([]byte{i}))
	}

	// Shrinking below Len truncates.
	assert.NilError(t, v.Resize(3))
	assert.Equal(t, 3, v.Len())
	out := make([]byte, 1)
	assert.NilError(t, v.At(2, out))
	assert.Equal(t, byte(2), out[0])
	assert.ErrorIs(t, v.At(3, out), ErrIndexOutOfBound)

	// Growing the buffer does not change Len.
	assert.NilError(t, v.Resize(100))
	assert.Equal(t, 3, v.Len())
}

func TestResizeBufferRoundUpAndFloor(t *testing.T) {
	v, err := New(0, 1)
	assert.NilError(t, err)
	// Initial buffer is floored at the growth step.
	assert.Equal(t, DefaultGrowMin, len(v.data))

	// Growth by less than the step rounds up to a full step.
	assert.NilError(t, v.Resize(DefaultGrowMin + 1))
	assert.Equal(t, 2*DefaultGrowMin, len(v.data))

	// Growth by at least the step is taken as proposed.
	assert.NilError(t, v.Resize(5 * DefaultGrowMin))
	assert.Equal(t, 5*DefaultGrowMin, len(v.data))

	// Shrinking lands on the proposed size while above the floor.
	assert.NilError(t, v.Resize(3 * DefaultGrowMin))
	assert.Equal(t, 3*DefaultGrowMin, len(v.data))

	// Shrinking below the floor stops at one step.
	assert.NilError(t, v.Resize(1))
	assert.Equal(t, DefaultGrowMin, len(v.data))
}

func TestGrowMinPolicy(t *testing.T) {
	v, err := New(0, 1)
	assert.NilError(t, err)
	assert.Equal(t, DefaultGrowMin, v.GrowMin())

	assert.NilError(t, v.SetGrowMin(32))
	assert.Equal(t, 32, v.GrowMin())

	assert.ErrorIs(t, v.SetGrowMin(0), ErrGrowStep)
	assert.ErrorIs(t, v.SetGrowMin(-3), ErrGrowStep)
}

func TestDestroyThenInit(t *testing.T) {
	v, err := New(0, 2)
	assert.NilError(t, err)
	assert.NilError(t, v.Add([]byte{1, 2}))

	assert.NilError(t, v.Destroy())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.MemberSize())
	assert.ErrorIs(t, v.Add([]byte{1, 2}), ErrNilVector)

	assert.NilError(t, v.Init(0, 2))
	assert.Equal(t, 0, v.Len())
	assert.NilError(t, v.Add([]byte{3, 4}))
	out := make([]byte, 2)
	assert.NilError(t, v.At(0, out))
	assert.DeepEqual(t, []byte{3, 4}, out)
}

func TestNilHandle(t *testing.T) {
	var v *Vector
	assert.ErrorIs(t, v.Init(0, 1), ErrNilVector)
	assert.ErrorIs(t, v.Destroy(), ErrNilVector)
	assert.ErrorIs(t, v.Add([]byte{1}), ErrNilVector)
	assert.Equal(t, 0, v.Len())

	code, ok := gerror.CodeOf(v.Add([]byte{1}))
	assert.Assert(t, ok)
	assert.Equal(t, gerror.NullStructure, code)
}

func TestInitRejectsNegativeSizes(t *testing.T) {
	_, err := New(-1, 1)
	assert.ErrorIs(t, err, ErrNegativeSize)
	_, err = New(1, -1)
	assert.ErrorIs(t, err, ErrNegativeSize)
}
