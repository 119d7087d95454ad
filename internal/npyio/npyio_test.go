package npyio

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/numgo-ml/numgo/internal/tensor"
)

func makeFloat64(t *testing.T, shape tensor.Shape, data []float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

func TestRoundTrip(t *testing.T) {
	raw := makeFloat64(t, tensor.Shape{2, 3}, []float64{1, 2.5, -3, 4, 5, 6})

	var buf bytes.Buffer
	if err := Write(&buf, raw); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !got.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", got.Shape())
	}
	if got.DType() != tensor.Float64 {
		t.Errorf("dtype = %v, want float64", got.DType())
	}
	want := []float64{1, 2.5, -3, 4, 5, 6}
	for i, v := range got.AsFloat64() {
		if v != want[i] {
			t.Errorf("data = %v, want %v", got.AsFloat64(), want)
			break
		}
	}
}

func TestRoundTripAllDTypes(t *testing.T) {
	dtypes := []tensor.DataType{
		tensor.Float32, tensor.Float64, tensor.Int32,
		tensor.Int64, tensor.Uint8, tensor.Bool,
	}
	for _, dt := range dtypes {
		t.Run(dt.String(), func(t *testing.T) {
			raw, err := tensor.NewRaw(tensor.Shape{3}, dt, tensor.CPU)
			if err != nil {
				t.Fatal(err)
			}
			// Nonzero pattern so a zeroed read would be caught.
			raw.Data()[0] = 1

			var buf bytes.Buffer
			if err := Write(&buf, raw); err != nil {
				t.Fatalf("Write: %v", err)
			}
			got, err := Read(&buf)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got.DType() != dt {
				t.Errorf("dtype = %v, want %v", got.DType(), dt)
			}
			if !bytes.Equal(got.Data(), raw.Data()) {
				t.Error("data mismatch after round trip")
			}
		})
	}
}

func TestRoundTripScalar(t *testing.T) {
	raw := makeFloat64(t, tensor.Shape{}, []float64{3.5})

	var buf bytes.Buffer
	if err := Write(&buf, raw); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Shape()) != 0 {
		t.Errorf("shape = %v, want scalar", got.Shape())
	}
	if got.AsFloat64()[0] != 3.5 {
		t.Errorf("value = %v, want 3.5", got.AsFloat64()[0])
	}
}

func TestHeaderAlignment(t *testing.T) {
	raw := makeFloat64(t, tensor.Shape{1}, []float64{1})

	var buf bytes.Buffer
	if err := Write(&buf, raw); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// Data section starts at a 64-byte boundary.
	if dataStart := buf.Len() - 8; dataStart%64 != 0 {
		t.Errorf("data offset %d is not 64-byte aligned", dataStart)
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not an npy file at all")))
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("err = %v, want ErrInvalidMagic", err)
	}
}

func TestReadRejectsFortranOrder(t *testing.T) {
	raw := makeFloat64(t, tensor.Shape{2}, []float64{1, 2})

	var buf bytes.Buffer
	if err := Write(&buf, raw); err != nil {
		t.Fatal(err)
	}
	data := bytes.Replace(buf.Bytes(), []byte("'fortran_order': False"), []byte("'fortran_order': True "), 1)

	_, err := Read(bytes.NewReader(data))
	if !errors.Is(err, ErrFortranOrder) {
		t.Errorf("err = %v, want ErrFortranOrder", err)
	}
}

func TestReadRejectsUnknownDescr(t *testing.T) {
	raw := makeFloat64(t, tensor.Shape{2}, []float64{1, 2})

	var buf bytes.Buffer
	if err := Write(&buf, raw); err != nil {
		t.Fatal(err)
	}
	data := bytes.Replace(buf.Bytes(), []byte("'<f8'"), []byte("'<c16"), 1)

	_, err := Read(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedDType) {
		t.Errorf("err = %v, want ErrUnsupportedDType", err)
	}
}

func TestSaveLoad(t *testing.T) {
	raw := makeFloat64(t, tensor.Shape{2, 2}, []float64{1, 2, 3, 4})

	path := filepath.Join(t.TempDir(), "array.npy")
	if err := Save(path, raw); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got.Data(), raw.Data()) {
		t.Error("data mismatch after save/load")
	}
}

func TestParseHeaderShapes(t *testing.T) {
	tests := []struct {
		tuple string
		want  tensor.Shape
	}{
		{"()", tensor.Shape{}},
		{"(5,)", tensor.Shape{5}},
		{"(2, 3)", tensor.Shape{2, 3}},
		{"(2, 3, 4)", tensor.Shape{2, 3, 4}},
	}
	for _, tt := range tests {
		header := "{'descr': '<f8', 'fortran_order': False, 'shape': " + tt.tuple + ", }"
		_, _, shape, err := parseHeader(header)
		if err != nil {
			t.Errorf("parseHeader(%s): %v", tt.tuple, err)
			continue
		}
		if !shape.Equal(tt.want) {
			t.Errorf("parseHeader(%s) = %v, want %v", tt.tuple, shape, tt.want)
		}
	}
}
