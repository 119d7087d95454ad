// Package npyio reads and writes arrays in NumPy's .npy binary format
// (version 1.0). Only C-contiguous little-endian arrays of the supported
// dtypes are handled, which is what the rest of the library produces.
package npyio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes: not an .npy file")
	ErrUnsupportedVersion = errors.New("unsupported .npy format version")
	ErrFortranOrder       = errors.New("fortran-order arrays are not supported")
	ErrUnsupportedDType   = errors.New("unsupported dtype descriptor")
)

const magic = "\x93NUMPY"

// dtype descriptors, little-endian. Single-byte types use '|'.
var descrFor = map[tensor.DataType]string{
	tensor.Float32: "<f4",
	tensor.Float64: "<f8",
	tensor.Int32:   "<i4",
	tensor.Int64:   "<i8",
	tensor.Uint8:   "|u1",
	tensor.Bool:    "|b1",
}

func dtypeFor(descr string) (tensor.DataType, error) {
	for dt, d := range descrFor {
		if d == descr {
			return dt, nil
		}
	}
	// NumPy writes '=' or no byte-order mark on some platforms.
	normalized := strings.TrimLeft(descr, "=<|")
	for dt, d := range descrFor {
		if strings.TrimLeft(d, "<|") == normalized {
			return dt, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedDType, descr)
}

// Write encodes raw into w in .npy v1.0 format.
func Write(w io.Writer, raw *tensor.RawTensor) error {
	descr, ok := descrFor[raw.DType()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedDType, raw.DType())
	}

	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': %s, }",
		descr, shapeTuple(raw.Shape()))

	// Total header (magic + version + length + dict + '\n') pads to a
	// multiple of 64 bytes, matching NumPy's writer.
	prefixLen := len(magic) + 2 + 2
	padded := prefixLen + len(header) + 1
	if rem := padded % 64; rem != 0 {
		padded += 64 - rem
	}
	headerLen := padded - prefixLen

	if _, err := io.WriteString(w, magic); err != nil {
		return fmt.Errorf("failed to write magic: %w", err)
	}
	if _, err := w.Write([]byte{1, 0}); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(headerLen)); err != nil {
		return fmt.Errorf("failed to write header length: %w", err)
	}

	buf := make([]byte, headerLen)
	copy(buf, header)
	for i := len(header); i < headerLen-1; i++ {
		buf[i] = ' '
	}
	buf[headerLen-1] = '\n'
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := writeData(w, raw); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	return nil
}

// Read decodes a .npy stream into a RawTensor.
func Read(r io.Reader) (*tensor.RawTensor, error) {
	prefix := make([]byte, len(magic)+2)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if string(prefix[:len(magic)]) != magic {
		return nil, ErrInvalidMagic
	}
	major, minor := prefix[len(magic)], prefix[len(magic)+1]

	var headerLen int
	switch {
	case major == 1:
		var l uint16
		if err := binary.Read(r, binary.LittleEndian, &l); err != nil {
			return nil, fmt.Errorf("failed to read header length: %w", err)
		}
		headerLen = int(l)
	case major == 2 || major == 3:
		var l uint32
		if err := binary.Read(r, binary.LittleEndian, &l); err != nil {
			return nil, fmt.Errorf("failed to read header length: %w", err)
		}
		headerLen = int(l)
	default:
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, major, minor)
	}

	headerBuf := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	descr, fortran, shape, err := parseHeader(string(headerBuf))
	if err != nil {
		return nil, err
	}
	if fortran {
		return nil, ErrFortranOrder
	}

	dtype, err := dtypeFor(descr)
	if err != nil {
		return nil, err
	}

	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		return nil, fmt.Errorf("invalid shape in header: %w", err)
	}
	if err := readData(r, raw); err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	return raw, nil
}

// Save writes raw to path in .npy format.
func Save(path string, raw *tensor.RawTensor) error {
	//nolint:gosec // G304: path comes from the caller, expected for array saving
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := Write(f, raw); err != nil {
		return err
	}
	return f.Close()
}

// Load reads a .npy file from path.
func Load(path string) (*tensor.RawTensor, error) {
	//nolint:gosec // G304: path comes from the caller, expected for array loading
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// shapeTuple formats a shape as a Python tuple: (), (3,), (2, 3).
func shapeTuple(shape tensor.Shape) string {
	switch len(shape) {
	case 0:
		return "()"
	case 1:
		return fmt.Sprintf("(%d,)", shape[0])
	default:
		parts := make([]string, len(shape))
		for i, d := range shape {
			parts[i] = strconv.Itoa(d)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
}

// parseHeader extracts the fields of the Python dict literal NumPy writes.
// Only the three standard keys are recognized.
func parseHeader(header string) (descr string, fortran bool, shape tensor.Shape, err error) {
	descr, err = quotedValue(header, "descr")
	if err != nil {
		return "", false, nil, err
	}

	switch {
	case strings.Contains(header, "'fortran_order': False"):
		fortran = false
	case strings.Contains(header, "'fortran_order': True"):
		fortran = true
	default:
		return "", false, nil, fmt.Errorf("header missing fortran_order: %q", header)
	}

	shape, err = shapeValue(header)
	if err != nil {
		return "", false, nil, err
	}
	return descr, fortran, shape, nil
}

func quotedValue(header, key string) (string, error) {
	marker := "'" + key + "':"
	idx := strings.Index(header, marker)
	if idx < 0 {
		return "", fmt.Errorf("header missing %s: %q", key, header)
	}
	rest := header[idx+len(marker):]
	start := strings.IndexByte(rest, '\'')
	if start < 0 {
		return "", fmt.Errorf("malformed %s value: %q", key, header)
	}
	end := strings.IndexByte(rest[start+1:], '\'')
	if end < 0 {
		return "", fmt.Errorf("malformed %s value: %q", key, header)
	}
	return rest[start+1 : start+1+end], nil
}

func shapeValue(header string) (tensor.Shape, error) {
	idx := strings.Index(header, "'shape':")
	if idx < 0 {
		return nil, fmt.Errorf("header missing shape: %q", header)
	}
	rest := header[idx:]
	open := strings.IndexByte(rest, '(')
	end := strings.IndexByte(rest, ')')
	if open < 0 || end < open {
		return nil, fmt.Errorf("malformed shape value: %q", header)
	}

	inner := strings.TrimSpace(rest[open+1 : end])
	if inner == "" {
		return tensor.Shape{}, nil // scalar
	}

	var shape tensor.Shape
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue // trailing comma in 1-tuples
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("malformed shape dimension %q: %w", part, err)
		}
		shape = append(shape, d)
	}
	return shape, nil
}

// writeData emits element data little-endian regardless of host order.
func writeData(w io.Writer, raw *tensor.RawTensor) error {
	switch raw.DType() {
	case tensor.Float32:
		return binary.Write(w, binary.LittleEndian, raw.AsFloat32())
	case tensor.Float64:
		return binary.Write(w, binary.LittleEndian, raw.AsFloat64())
	case tensor.Int32:
		return binary.Write(w, binary.LittleEndian, raw.AsInt32())
	case tensor.Int64:
		return binary.Write(w, binary.LittleEndian, raw.AsInt64())
	case tensor.Uint8:
		_, err := w.Write(raw.AsUint8())
		return err
	case tensor.Bool:
		return binary.Write(w, binary.LittleEndian, raw.AsBool())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDType, raw.DType())
	}
}

func readData(r io.Reader, raw *tensor.RawTensor) error {
	switch raw.DType() {
	case tensor.Float32:
		return binary.Read(r, binary.LittleEndian, raw.AsFloat32())
	case tensor.Float64:
		return binary.Read(r, binary.LittleEndian, raw.AsFloat64())
	case tensor.Int32:
		return binary.Read(r, binary.LittleEndian, raw.AsInt32())
	case tensor.Int64:
		return binary.Read(r, binary.LittleEndian, raw.AsInt64())
	case tensor.Uint8:
		_, err := io.ReadFull(r, raw.AsUint8())
		return err
	case tensor.Bool:
		return binary.Read(r, binary.LittleEndian, raw.AsBool())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDType, raw.DType())
	}
}
