package np

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/internal/tensor"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	a, err := FromSlice([]float64{1.5, -2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "a.npy")
	require.NoError(t, Save(path, a))

	b, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, a.Shape(), b.Shape())
	assert.Equal(t, a.DType(), b.DType())
	assert.Equal(t, a.Float64s(), b.Float64s())
}

func TestWriteReadStream(t *testing.T) {
	a, err := Asarray([]int{7, 8, 9})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))

	b, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, Int64, b.DType())
	assert.Equal(t, []int64{7, 8, 9}, b.Int64s())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.npy"))
	assert.Error(t, err)
}

func TestSaveLoadBool(t *testing.T) {
	a, err := Asarray([]bool{true, false, true})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "b.npy")
	require.NoError(t, Save(path, a))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Bool, b.DType())
	assert.Equal(t, tensor.Shape{3}, b.Shape())
	assert.Equal(t, []bool{true, false, true}, b.Bools())
}
