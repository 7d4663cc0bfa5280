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
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdfium/internal/float"
)

// ObjectType is the type of a page object.
type ObjectType int

// These are the page object types known to the native library.
// The values are the native type codes.
const (
	TypeUnknown ObjectType = 0
	TypeText    ObjectType = 1
	TypePath    ObjectType = 2
	TypeImage   ObjectType = 3
	TypeShading ObjectType = 4
	TypeForm    ObjectType = 5
)

func (t ObjectType) String() string {
	switch t {
	case TypeUnknown:
		return "unknown"
	case TypeText:
		return "text"
	case TypePath:
		return "path"
	case TypeImage:
		return "image"
	case TypeShading:
		return "shading"
	case TypeForm:
		return "form"
	default:
		return fmt.Sprintf("ObjectType(%d)", int(t))
	}
}

// PageObject is a single object on a page, or inside a form object.
//
// PageObject values are only created by this package, from handles which
// the native library returned.  The object stays valid while the document
// it belongs to is open.
type PageObject struct {
	transformer
	ownership Ownership
}

func newPageObject(h ObjectHandle, ownership Ownership, lib *Library) *PageObject {
	return &PageObject{
		transformer: transformer{handle: h, lib: lib},
		ownership:   ownership,
	}
}

// Handle returns the native handle of the object.
func (o *PageObject) Handle() ObjectHandle {
	return o.handle
}

// Ownership returns the current owner of the object.
func (o *PageObject) Ownership() Ownership {
	return o.ownership
}

// Type returns the type of the object, as reported by the native library.
func (o *PageObject) Type() ObjectType {
	return ObjectType(o.lib.b.PageObjGetType(o.handle))
}

// Bounds returns the bounding box of the object in the coordinate space
// of its parent.
func (o *PageObject) Bounds() (rect.Rect, error) {
	var left, bottom, right, top float32
	b := o.lib.b
	if !b.IsTrue(b.PageObjGetBounds(o.handle, &left, &bottom, &right, &top)) {
		return rect.Rect{}, unknownError("get bounds")
	}
	return rect.Rect{
		LLx: float.Widen(left),
		LLy: float.Widen(bottom),
		URx: float.Widen(right),
		URy: float.Widen(top),
	}, nil
}

// AsForm returns a view of the object's children, if the object is a form
// object.  The view shares the ownership of o.
func (o *PageObject) AsForm() (*FormObject, bool) {
	if o.Type() != TypeForm {
		return nil, false
	}
	return newFormObject(o.handle, o.ownership, o.lib), true
}

func (o *PageObject) String() string {
	return fmt.Sprintf("%s object %#x (%s)", o.Type(), uintptr(o.handle), o.ownership)
}
