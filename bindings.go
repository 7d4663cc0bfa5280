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

// ObjectHandle is an opaque reference to a page object inside the native
// library.  The referent is owned by the native library; the zero value is
// the null handle.
type ObjectHandle uintptr

// PageHandle is an opaque reference to a loaded page.
type PageHandle uintptr

// DocumentHandle is an opaque reference to a loaded document.
type DocumentHandle uintptr

// AnnotationHandle is an opaque reference to a page annotation.
type AnnotationHandle uintptr

// Bool is the boolean type used by the native library.
// Use [Bindings.IsTrue] to interpret values.
type Bool int32

// FSMatrix is the transformation matrix as exchanged with the native library.
// The elements are in the same order as for the PDF "cm" operator.
type FSMatrix struct {
	A, B, C, D, E, F float32
}

// Bindings is the set of native library entry points used by this package.
//
// Implementations forward each call to the corresponding native function.
// None of the methods may retain pointer arguments after returning.
type Bindings interface {
	// IsTrue reports whether b represents a true value.
	IsTrue(b Bool) bool

	// PageCountObjects returns the number of top-level objects on a page.
	PageCountObjects(page PageHandle) int

	// PageGetObject returns the object at the given index on a page,
	// or the null handle on failure.
	PageGetObject(page PageHandle, index int) ObjectHandle

	// PageObjGetType returns the native type code of a page object.
	PageObjGetType(obj ObjectHandle) int

	PageObjGetMatrix(obj ObjectHandle, m *FSMatrix) Bool
	PageObjSetMatrix(obj ObjectHandle, m *FSMatrix) Bool
	PageObjGetBounds(obj ObjectHandle, left, bottom, right, top *float32) Bool

	// FormObjCountObjects returns the number of child objects of a form
	// object, or a negative value on failure.
	FormObjCountObjects(form ObjectHandle) int

	// FormObjGetObject returns the child object at the given index of a form
	// object, or the null handle on failure.
	FormObjGetObject(form ObjectHandle, index int) ObjectHandle
}

// FormObjectRemover is implemented by bindings for native library builds
// which can detach a child object from a form object.
type FormObjectRemover interface {
	FormObjRemoveObject(form, obj ObjectHandle) Bool
}
