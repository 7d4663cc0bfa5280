// seehuhn.de/go/pdfium - a safe wrapper around native PDF page objects
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfium

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdfium/internal/float"
)

// Transformable is implemented by all page objects.  The transformation
// matrix maps the object's own coordinate space to the coordinate space of
// its parent (the page, or the enclosing form object).
type Transformable interface {
	// Matrix returns the current transformation matrix.
	Matrix() (matrix.Matrix, error)

	// SetMatrix replaces the transformation matrix.
	SetMatrix(M matrix.Matrix) error

	// Transform applies M after the current transformation.
	Transform(M matrix.Matrix) error
}

var (
	_ Transformable = (*PageObject)(nil)
	_ Transformable = (*FormObject)(nil)
)

// transformer implements the transformation methods of all page object
// types.  It is embedded into every page object wrapper.
type transformer struct {
	handle ObjectHandle
	lib    *Library
}

// Matrix returns the current transformation matrix of the object.
func (t transformer) Matrix() (matrix.Matrix, error) {
	var fs FSMatrix
	b := t.lib.b
	if !b.IsTrue(b.PageObjGetMatrix(t.handle, &fs)) {
		return matrix.Matrix{}, unknownError("get matrix")
	}
	return fromNative(fs), nil
}

// SetMatrix replaces the transformation matrix of the object.
func (t transformer) SetMatrix(M matrix.Matrix) error {
	fs := toNative(M)
	b := t.lib.b
	if !b.IsTrue(b.PageObjSetMatrix(t.handle, &fs)) {
		return unknownError("set matrix")
	}
	return nil
}

// ResetMatrix sets the transformation matrix to the identity.
func (t transformer) ResetMatrix() error {
	return t.SetMatrix(matrix.Identity)
}

// Transform applies M after the current transformation of the object.
func (t transformer) Transform(M matrix.Matrix) error {
	current, err := t.Matrix()
	if err != nil {
		return err
	}
	return t.SetMatrix(current.Mul(M))
}

// Translate moves the object by (dx, dy).
func (t transformer) Translate(dx, dy float64) error {
	return t.Transform(matrix.Translate(dx, dy))
}

// Scale scales the object by the given factors, relative to the origin of
// the parent coordinate system.
func (t transformer) Scale(sx, sy float64) error {
	return t.Transform(matrix.Scale(sx, sy))
}

// FlipHorizontally mirrors the object at the vertical axis.
func (t transformer) FlipHorizontally() error {
	return t.Scale(-1, 1)
}

// FlipVertically mirrors the object at the horizontal axis.
func (t transformer) FlipVertically() error {
	return t.Scale(1, -1)
}

// Rotate rotates the object counter-clockwise by the given angle in degrees.
func (t transformer) Rotate(degrees float64) error {
	return t.Transform(matrix.RotateDeg(degrees))
}

// RotateClockwise rotates the object clockwise by the given angle in
// degrees.
func (t transformer) RotateClockwise(degrees float64) error {
	return t.Transform(matrix.RotateDeg(-degrees))
}

// RotateRad rotates the object counter-clockwise by the given angle in
// radians.
func (t transformer) RotateRad(phi float64) error {
	return t.Transform(matrix.Rotate(phi))
}

// Skew skews the x-axis by xDeg and the y-axis by yDeg degrees.
func (t transformer) Skew(xDeg, yDeg float64) error {
	return t.SkewRad(xDeg*math.Pi/180, yDeg*math.Pi/180)
}

// SkewRad skews the x-axis by x and the y-axis by y radians.
func (t transformer) SkewRad(x, y float64) error {
	return t.Transform(matrix.Matrix{1, math.Tan(x), math.Tan(y), 1, 0, 0})
}

// Translation returns the translation part of the transformation matrix.
func (t transformer) Translation() (dx, dy float64, err error) {
	M, err := t.Matrix()
	if err != nil {
		return 0, 0, err
	}
	return M[4], M[5], nil
}

// HorizontalTranslation returns the horizontal part of the translation.
func (t transformer) HorizontalTranslation() (float64, error) {
	dx, _, err := t.Translation()
	return dx, err
}

// VerticalTranslation returns the vertical part of the translation.
func (t transformer) VerticalTranslation() (float64, error) {
	_, dy, err := t.Translation()
	return dy, err
}

// ScaleFactors returns the lengths of the images of the unit vectors
// under the transformation matrix.
func (t transformer) ScaleFactors() (sx, sy float64, err error) {
	M, err := t.Matrix()
	if err != nil {
		return 0, 0, err
	}
	return math.Hypot(M[0], M[1]), math.Hypot(M[2], M[3]), nil
}

// HorizontalScale returns the scale factor along the x-axis.
func (t transformer) HorizontalScale() (float64, error) {
	sx, _, err := t.ScaleFactors()
	return sx, err
}

// VerticalScale returns the scale factor along the y-axis.
func (t transformer) VerticalScale() (float64, error) {
	_, sy, err := t.ScaleFactors()
	return sy, err
}

// RotationRad returns the counter-clockwise rotation of the x-axis under
// the transformation matrix, in radians in the range [-π, π].
func (t transformer) RotationRad() (float64, error) {
	M, err := t.Matrix()
	if err != nil {
		return 0, err
	}
	return math.Atan2(M[1], M[0]), nil
}

// RotationDegrees returns the counter-clockwise rotation of the x-axis
// under the transformation matrix, in the range [-180, 180].
func (t transformer) RotationDegrees() (float64, error) {
	phi, err := t.RotationRad()
	return phi * 180 / math.Pi, err
}

// RotationClockwiseDegrees returns the clockwise rotation of the x-axis
// under the transformation matrix, in degrees.
func (t transformer) RotationClockwiseDegrees() (float64, error) {
	deg, err := t.RotationDegrees()
	return -deg, err
}

// SkewRadians returns the skew angles of the x-axis and the y-axis, in
// radians.  For a matrix set by SkewRad, the arguments are recovered.
func (t transformer) SkewRadians() (x, y float64, err error) {
	M, err := t.Matrix()
	if err != nil {
		return 0, 0, err
	}
	return math.Atan2(M[1], M[0]), math.Atan2(M[2], M[3]), nil
}

// SkewDegrees returns the skew angles of the x-axis and the y-axis, in
// degrees.  For a matrix set by Skew, the arguments are recovered.
func (t transformer) SkewDegrees() (xDeg, yDeg float64, err error) {
	x, y, err := t.SkewRadians()
	return x * 180 / math.Pi, y * 180 / math.Pi, err
}

func fromNative(fs FSMatrix) matrix.Matrix {
	return matrix.Matrix{
		float.Widen(fs.A), float.Widen(fs.B),
		float.Widen(fs.C), float.Widen(fs.D),
		float.Widen(fs.E), float.Widen(fs.F),
	}
}

func toNative(M matrix.Matrix) FSMatrix {
	return FSMatrix{
		A: float.Narrow(M[0]), B: float.Narrow(M[1]),
		C: float.Narrow(M[2]), D: float.Narrow(M[3]),
		E: float.Narrow(M[4]), F: float.Narrow(M[5]),
	}
}
