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
	"errors"
)

var (
	// ErrIndexOutOfBounds is returned when an object index is negative or
	// not smaller than the current number of objects in a collection.
	ErrIndexOutOfBounds = errors.New("page object index out of bounds")

	// ErrEmptyCollection is returned by First and Last on an empty
	// collection.
	ErrEmptyCollection = errors.New("no page objects in collection")

	// ErrCollectionImmutable is returned when objects are added to, or
	// removed from, a collection which does not support this.
	ErrCollectionImmutable = errors.New("page objects collection is immutable")

	// ErrNotCopyable is returned when a page object cannot be copied into
	// another document.
	ErrNotCopyable = errors.New("page object is not copyable")
)

// InternalErrorKind classifies failures reported by the native library.
type InternalErrorKind int

// These are the kinds of internal errors.
const (
	// Unknown means that the native library signalled failure without
	// further information.
	Unknown InternalErrorKind = iota
)

func (k InternalErrorKind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	default:
		return "invalid error kind"
	}
}

// InternalError indicates that a native library call failed even though
// all preconditions were met.  There is no way to tell transient from
// permanent failures, so these errors should not be retried.
type InternalError struct {
	Op   string
	Kind InternalErrorKind
}

func (err *InternalError) Error() string {
	middle := ""
	if err.Op != "" {
		middle = " in " + err.Op
	}
	return "native library internal error" + middle + ": " + err.Kind.String()
}

// Is allows errors.Is to match internal errors of the same kind,
// independent of the operation.
func (err *InternalError) Is(target error) bool {
	other, ok := target.(*InternalError)
	if !ok {
		return false
	}
	return other.Op == "" && other.Kind == err.Kind
}

// ErrUnknown matches every internal error of kind [Unknown] when used
// with errors.Is.
var ErrUnknown error = &InternalError{Kind: Unknown}

func unknownError(op string) error {
	return &InternalError{Op: op, Kind: Unknown}
}
