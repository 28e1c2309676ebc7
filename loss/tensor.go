// SPDX-License-Identifier: EPL-2.0

package loss

import "fmt"

// Tensor is a dense row-major float32 array with an explicit shape.
// The loss accepts [batch, time] and [batch, 1, time].
type Tensor struct {
	Data  []float32
	Shape []int
}

// NewTensor wraps data with shape, checking that they agree in size.
func NewTensor(data []float32, shape ...int) (Tensor, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return Tensor{}, fmt.Errorf("%w: negative dimension in %v", ErrShape, shape)
		}
		size *= d
	}
	if len(shape) == 0 || size != len(data) {
		return Tensor{}, fmt.Errorf("%w: shape %v holds %d values, data has %d", ErrDataSize, shape, size, len(data))
	}

	return Tensor{Data: data, Shape: append([]int(nil), shape...)}, nil
}

// FromRows stacks equal-length rows into a [batch, time] tensor.
func FromRows(rows ...[]float32) (Tensor, error) {
	if len(rows) == 0 {
		return Tensor{}, ErrEmptyBatch
	}

	width := len(rows[0])
	data := make([]float32, 0, len(rows)*width)
	for i, r := range rows {
		if len(r) != width {
			return Tensor{}, fmt.Errorf("%w: row %d has %d samples, row 0 has %d", ErrShape, i, len(r), width)
		}
		data = append(data, r...)
	}
	return NewTensor(data, len(rows), width)
}

// rows squeezes a singleton channel dimension and splits t into one slice
// per batch element.
func (t Tensor) rows() ([][]float32, error) {
	var batch, time int

	switch len(t.Shape) {
	case 2:
		batch, time = t.Shape[0], t.Shape[1]
	case 3:
		if t.Shape[1] != 1 {
			return nil, fmt.Errorf("%w: expected [batch, 1, time], got %v", ErrShape, t.Shape)
		}
		batch, time = t.Shape[0], t.Shape[2]
	default:
		return nil, fmt.Errorf("%w: expected [batch, time] or [batch, 1, time], got %v", ErrShape, t.Shape)
	}

	if batch < 0 || time < 0 {
		return nil, fmt.Errorf("%w: negative dimension in %v", ErrShape, t.Shape)
	}
	if batch*time != len(t.Data) {
		return nil, fmt.Errorf("%w: shape %v, data has %d", ErrDataSize, t.Shape, len(t.Data))
	}
	if batch == 0 || time == 0 {
		return nil, ErrEmptyBatch
	}

	out := make([][]float32, batch)
	for b := range out {
		out[b] = t.Data[b*time : (b+1)*time]
	}
	return out, nil
}
