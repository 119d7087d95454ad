package np

import (
	"io"

	"github.com/numgo-ml/numgo/internal/npyio"
)

// Array persistence in NumPy's .npy format.

// Save writes a to path as a .npy file.
func Save(path string, a *NDArray) error {
	return npyio.Save(path, a.raw)
}

// Load reads a .npy file from path.
func Load(path string) (*NDArray, error) {
	raw, err := npyio.Load(path)
	if err != nil {
		return nil, err
	}
	return wrap(raw), nil
}

// Write encodes a into w in .npy format.
func Write(w io.Writer, a *NDArray) error {
	return npyio.Write(w, a.raw)
}

// Read decodes a .npy stream from r.
func Read(r io.Reader) (*NDArray, error) {
	raw, err := npyio.Read(r)
	if err != nil {
		return nil, err
	}
	return wrap(raw), nil
}
