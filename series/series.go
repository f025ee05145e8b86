// SPDX-License-Identifier: MIT
// Package series: dense observation container.
// Series is a concrete, row-major container for multivariate time series,
// storing observations in a flat slice for performance and cache friendliness.
// All constructors enforce the finite-value ingestion policy (no NaN/±Inf),
// so downstream statistics never need to re-validate samples.

package series

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Series is an n×p block of observations: n time points, p components each.
// The backing storage is row-major and owned by the Series; treat a Series
// as immutable once constructed.
type Series struct {
	n, p int       // number of observations and dimension per observation
	data []float64 // flat backing storage, length == n*p
}

// New copies rows into a fresh Series.
// Stage 1 (Validate): at least one row, equal row lengths, finite values.
// Stage 2 (Prepare): allocate flat backing and copy row by row.
// Stage 3 (Finalize): return the populated Series.
//
// Errors: ErrEmptySeries, ErrRaggedRows, ErrNaNInf.
// Complexity: O(n·p) time and memory.
func New(rows [][]float64) (*Series, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptySeries
	}
	var (
		n = len(rows)
		p = len(rows[0])
	)

	data := make([]float64, 0, n*p)

	var (
		i int     // row index
		v float64 // sample under inspection
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != p {
			return nil, ErrRaggedRows
		}
		for _, v = range rows[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
		data = append(data, rows[i]...)
	}

	return &Series{n: n, p: p, data: data}, nil
}

// FromSlice copies a univariate sample sequence into a Series with p == 1.
//
// Errors: ErrEmptySeries, ErrNaNInf.
// Complexity: O(n) time and memory.
func FromSlice(values []float64) (*Series, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}

	data := make([]float64, len(values))
	var i int
	for i = range values {
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return nil, ErrNaNInf
		}
		data[i] = values[i]
	}

	return &Series{n: len(values), p: 1, data: data}, nil
}

// FromColumns builds a Series from p component columns of equal length n
// (column j holds component j of every observation). This is the natural
// shape when components arrive as separate streams.
//
// Errors: ErrEmptySeries, ErrRaggedRows, ErrNaNInf.
// Complexity: O(n·p) time and memory.
func FromColumns(cols [][]float64) (*Series, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmptySeries
	}
	var (
		p = len(cols)
		n = len(cols[0])
	)

	var j int
	for j = 0; j < p; j++ {
		if len(cols[j]) != n {
			return nil, ErrRaggedRows
		}
	}

	data := make([]float64, n*p)
	var (
		i int     // observation index
		v float64 // sample under inspection
	)
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			v = cols[j][i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			data[i*p+j] = v
		}
	}

	return &Series{n: n, p: p, data: data}, nil
}

// FromMatrix copies a gonum mat.Matrix (rows = observations, columns =
// components) into a Series. The matrix is read through the mat.Matrix
// interface, so any gonum matrix type works.
//
// Errors: ErrNilMatrix, ErrEmptySeries, ErrNaNInf.
// Complexity: O(n·p) time and memory.
func FromMatrix(m mat.Matrix) (*Series, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n, p := m.Dims()
	if n == 0 || p == 0 {
		return nil, ErrEmptySeries
	}

	data := make([]float64, n*p)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			data[i*p+j] = v
		}
	}

	return &Series{n: n, p: p, data: data}, nil
}

// Len returns the number of observations n.
// Complexity: O(1).
func (s *Series) Len() int { return s.n }

// Dim returns the dimension p of each observation.
// Complexity: O(1).
func (s *Series) Dim() int { return s.p }

// Row returns observation i as a borrowed view into the backing storage.
// The caller must not modify the returned slice. i must be in [0, Len());
// out-of-range indices panic like any slice access (hot-path accessor).
// Complexity: O(1).
func (s *Series) Row(i int) []float64 {
	return s.data[i*s.p : (i+1)*s.p]
}

// At returns the j-th component of observation i with bounds checking.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (s *Series) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.p {
		return 0, ErrOutOfRange
	}

	return s.data[i*s.p+j], nil
}
