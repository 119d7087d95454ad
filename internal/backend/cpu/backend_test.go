package cpu

import (
	"math"
	"testing"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// Helper to create a float64 tensor from data.
func rawFloat64(t *testing.T, shape tensor.Shape, data []float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

// Helper to create an int64 tensor from data.
func rawInt64(t *testing.T, shape tensor.Shape, data []int64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Int64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsInt64(), data)
	return raw
}

// Helper to check float64 slices are equal within epsilon.
func float64SliceEqual(a, b []float64) bool {
	const epsilon = 1e-9
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

func int64SliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Expected device CPU, got %v", backend.Device())
	}
}

// TestCPUBackend_Binary tests element-wise arithmetic.
func TestCPUBackend_Binary(t *testing.T) {
	backend := newTestBackend()

	t.Run("Add", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
		b := rawFloat64(t, tensor.Shape{2, 3}, []float64{10, 11, 12, 13, 14, 15})

		result := backend.Add(a, b)
		expected := []float64{11, 13, 15, 17, 19, 21}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("Add: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		a := rawInt64(t, tensor.Shape{3}, []int64{10, 20, 30})
		b := rawInt64(t, tensor.Shape{3}, []int64{1, 2, 3})

		result := backend.Sub(a, b)
		expected := []int64{9, 18, 27}
		if !int64SliceEqual(result.AsInt64(), expected) {
			t.Errorf("Sub: got %v, expected %v", result.AsInt64(), expected)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{3}, []float64{1.5, -2, 4})
		b := rawFloat64(t, tensor.Shape{3}, []float64{2, 3, 0.25})

		result := backend.Mul(a, b)
		expected := []float64{3, -6, 1}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("Mul: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("DivFloat", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{3}, []float64{7, 1, -9})
		b := rawFloat64(t, tensor.Shape{3}, []float64{2, 4, 3})

		result := backend.Div(a, b)
		expected := []float64{3.5, 0.25, -3}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("Div: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("DivIntTruncates", func(t *testing.T) {
		a := rawInt64(t, tensor.Shape{3}, []int64{7, -7, 9})
		b := rawInt64(t, tensor.Shape{3}, []int64{2, 2, 3})

		result := backend.Div(a, b)
		expected := []int64{3, -3, 3}
		if !int64SliceEqual(result.AsInt64(), expected) {
			t.Errorf("Div: got %v, expected %v", result.AsInt64(), expected)
		}
	})

	t.Run("MaximumMinimum", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{3}, []float64{1, 5, -2})
		b := rawFloat64(t, tensor.Shape{3}, []float64{3, 2, -4})

		maxResult := backend.Maximum(a, b)
		if !float64SliceEqual(maxResult.AsFloat64(), []float64{3, 5, -2}) {
			t.Errorf("Maximum: got %v", maxResult.AsFloat64())
		}

		minResult := backend.Minimum(a, b)
		if !float64SliceEqual(minResult.AsFloat64(), []float64{1, 2, -4}) {
			t.Errorf("Minimum: got %v", minResult.AsFloat64())
		}
	})
}

// TestCPUBackend_Broadcasting tests broadcast semantics of binary ops.
func TestCPUBackend_Broadcasting(t *testing.T) {
	backend := newTestBackend()

	t.Run("RowVector", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
		b := rawFloat64(t, tensor.Shape{3}, []float64{10, 20, 30})

		result := backend.Add(a, b)
		if !result.Shape().Equal(tensor.Shape{2, 3}) {
			t.Fatalf("shape = %v, want [2 3]", result.Shape())
		}
		expected := []float64{11, 22, 33, 14, 25, 36}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("broadcast Add: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("ColumnVector", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{2, 1}, []float64{100, 200})
		b := rawFloat64(t, tensor.Shape{1, 3}, []float64{1, 2, 3})

		result := backend.Add(a, b)
		if !result.Shape().Equal(tensor.Shape{2, 3}) {
			t.Fatalf("shape = %v, want [2 3]", result.Shape())
		}
		expected := []float64{101, 102, 103, 201, 202, 203}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("outer broadcast Add: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("Scalar", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
		scalar := rawFloat64(t, tensor.Shape{}, []float64{10})

		result := backend.Mul(a, scalar)
		expected := []float64{10, 20, 30, 40}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("scalar broadcast Mul: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("IncompatibleShapesPanic", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{3}, []float64{1, 2, 3})
		b := rawFloat64(t, tensor.Shape{4}, []float64{1, 2, 3, 4})

		defer func() {
			if recover() == nil {
				t.Error("expected panic for incompatible shapes")
			}
		}()
		backend.Add(a, b)
	})

	t.Run("DTypeMismatchPanic", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{2}, []float64{1, 2})
		b := rawInt64(t, tensor.Shape{2}, []int64{1, 2})

		defer func() {
			if recover() == nil {
				t.Error("expected panic for dtype mismatch")
			}
		}()
		backend.Add(a, b)
	})
}

// TestCPUBackend_Compare tests comparison operations.
func TestCPUBackend_Compare(t *testing.T) {
	backend := newTestBackend()

	a := rawFloat64(t, tensor.Shape{4}, []float64{1, 2, 3, 4})
	b := rawFloat64(t, tensor.Shape{4}, []float64{2, 2, 2, 2})

	tests := []struct {
		name     string
		op       func(a, b *tensor.RawTensor) *tensor.RawTensor
		expected []bool
	}{
		{"Greater", backend.Greater, []bool{false, false, true, true}},
		{"GreaterEqual", backend.GreaterEqual, []bool{false, true, true, true}},
		{"Less", backend.Less, []bool{true, false, false, false}},
		{"LessEqual", backend.LessEqual, []bool{true, true, false, false}},
		{"Equal", backend.Equal, []bool{false, true, false, false}},
		{"NotEqual", backend.NotEqual, []bool{true, false, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op(a, b)
			if result.DType() != tensor.Bool {
				t.Fatalf("result dtype = %v, want bool", result.DType())
			}
			got := result.AsBool()
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("%s: got %v, expected %v", tt.name, got, tt.expected)
					break
				}
			}
		})
	}
}

// TestCPUBackend_CompareBroadcast tests comparison with broadcasting.
func TestCPUBackend_CompareBroadcast(t *testing.T) {
	backend := newTestBackend()

	a := rawFloat64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	b := rawFloat64(t, tensor.Shape{3}, []float64{2, 2, 2})

	result := backend.Greater(a, b)
	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("shape = %v, want [2 3]", result.Shape())
	}
	expected := []bool{false, false, true, true, true, true}
	got := result.AsBool()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Greater broadcast: got %v, expected %v", got, expected)
			break
		}
	}
}

// TestCPUBackend_MatMul tests 2D matrix multiplication.
func TestCPUBackend_MatMul(t *testing.T) {
	backend := newTestBackend()

	t.Run("Float64", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
		b := rawFloat64(t, tensor.Shape{3, 2}, []float64{7, 8, 9, 10, 11, 12})

		result := backend.MatMul(a, b)
		if !result.Shape().Equal(tensor.Shape{2, 2}) {
			t.Fatalf("shape = %v, want [2 2]", result.Shape())
		}
		expected := []float64{58, 64, 139, 154}
		if !float64SliceEqual(result.AsFloat64(), expected) {
			t.Errorf("MatMul: got %v, expected %v", result.AsFloat64(), expected)
		}
	})

	t.Run("Int64", func(t *testing.T) {
		a := rawInt64(t, tensor.Shape{2, 2}, []int64{1, 2, 3, 4})
		b := rawInt64(t, tensor.Shape{2, 2}, []int64{5, 6, 7, 8})

		result := backend.MatMul(a, b)
		expected := []int64{19, 22, 43, 50}
		if !int64SliceEqual(result.AsInt64(), expected) {
			t.Errorf("MatMul: got %v, expected %v", result.AsInt64(), expected)
		}
	})

	t.Run("ZeroTimesInfIsNaN", func(t *testing.T) {
		// [0 1] @ [[Inf] [1]] = 0*Inf + 1*1 = NaN under IEEE.
		a := rawFloat64(t, tensor.Shape{1, 2}, []float64{0, 1})
		b := rawFloat64(t, tensor.Shape{2, 1}, []float64{math.Inf(1), 1})

		result := backend.MatMul(a, b)
		if got := result.AsFloat64()[0]; !math.IsNaN(got) {
			t.Errorf("0*Inf contribution = %v, want NaN", got)
		}
	})

	t.Run("NaNRowPropagates", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{1, 2}, []float64{0, 0})
		b := rawFloat64(t, tensor.Shape{2, 1}, []float64{math.NaN(), 1})

		result := backend.MatMul(a, b)
		if got := result.AsFloat64()[0]; !math.IsNaN(got) {
			t.Errorf("0*NaN contribution = %v, want NaN", got)
		}
	})

	t.Run("InnerDimMismatchPanic", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{2, 3}, make([]float64, 6))
		b := rawFloat64(t, tensor.Shape{2, 2}, make([]float64, 4))

		defer func() {
			if recover() == nil {
				t.Error("expected panic for inner dimension mismatch")
			}
		}()
		backend.MatMul(a, b)
	})
}
