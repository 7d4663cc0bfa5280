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

import "iter"

// FormObject is a form XObject placed on a page.  A form object holds a
// content stream which itself consists of other page objects; drawing the
// form object draws all its children.  Form objects are used as templates
// or stamps.
//
// Despite the name, form objects are unrelated to interactive forms.
//
// A FormObject is a view: it holds the native handle but caches nothing,
// and every query is answered by the native library.  Form objects are
// obtained using [PageObject.AsForm].  Dropping a FormObject does not free
// any native resources; the native object lives as long as its document.
//
// The collection of children is read-only, except that children can be
// removed if [Library.CanRemoveFormObjects] reports true.  Objects can
// never be added.
type FormObject struct {
	transformer
	ownership Ownership
}

var _ Copier = (*FormObject)(nil)

func newFormObject(h ObjectHandle, ownership Ownership, lib *Library) *FormObject {
	return &FormObject{
		transformer: transformer{handle: h, lib: lib},
		ownership:   ownership,
	}
}

// Handle returns the native handle of the form object.
func (f *FormObject) Handle() ObjectHandle {
	return f.handle
}

// Ownership returns the owner of the form object.
// All children share this ownership.
func (f *FormObject) Ownership() Ownership {
	return f.ownership
}

// Len returns the number of child objects.
func (f *FormObject) Len() int {
	n := f.lib.b.FormObjCountObjects(f.handle)
	if n < 0 {
		return 0
	}
	return n
}

// IsEmpty reports whether the form object has no children.
func (f *FormObject) IsEmpty() bool {
	return f.Len() == 0
}

// Range returns the half-open index range [start, end) of the children.
func (f *FormObject) Range() (start, end int) {
	return 0, f.Len()
}

// RangeInclusive returns the first and the last valid child index.
//
// If the form object has no children, (0, 0) is returned.  This cannot be
// told apart from a form object with exactly one child; use IsEmpty or
// Range to distinguish the two cases.
func (f *FormObject) RangeInclusive() (first, last int) {
	return rangeInclusive(f)
}

// Get returns the child object at the given index.
//
// If index is out of range, [ErrIndexOutOfBounds] is returned.  If the
// native library fails to return an object for a valid index, the error is
// an [*InternalError].  The child has the same ownership as the form.
func (f *FormObject) Get(index int) (*PageObject, error) {
	if index < 0 {
		return nil, ErrIndexOutOfBounds
	}
	h := f.lib.b.FormObjGetObject(f.handle, index)
	if h == 0 {
		if index >= f.Len() {
			return nil, ErrIndexOutOfBounds
		}
		return nil, unknownError("get form child")
	}
	return newPageObject(h, f.ownership, f.lib), nil
}

// First returns the first child object.
func (f *FormObject) First() (*PageObject, error) {
	return first(f)
}

// Last returns the last child object.
func (f *FormObject) Last() (*PageObject, error) {
	return last(f)
}

// All returns an iterator over the children, in drawing order.
// Each call starts a new traversal from index 0.
func (f *FormObject) All() iter.Seq2[int, *PageObject] {
	return all(f)
}

// Add always fails with [ErrCollectionImmutable].
func (f *FormObject) Add(obj *PageObject) (*PageObject, error) {
	return nil, ErrCollectionImmutable
}

// Remove detaches obj from the form object.  On success, obj is marked as
// unowned and returned; the caller is then responsible for the object.
//
// If the native library cannot remove children from form objects,
// [ErrCollectionImmutable] is returned.
func (f *FormObject) Remove(obj *PageObject) (*PageObject, error) {
	r := f.lib.remover
	if r == nil {
		return nil, ErrCollectionImmutable
	}
	if obj == nil {
		return nil, unknownError("remove form child")
	}
	if !f.lib.b.IsTrue(r.FormObjRemoveObject(f.handle, obj.handle)) {
		return nil, unknownError("remove form child")
	}
	obj.ownership = Ownership{}
	return obj, nil
}

// IsCopyable returns false: form objects share their content stream, and
// cannot be copied into another document.
func (f *FormObject) IsCopyable() bool {
	return false
}

// TryCopy always fails with [ErrNotCopyable].
func (f *FormObject) TryCopy(dst DocumentHandle) (*PageObject, error) {
	return nil, ErrNotCopyable
}

// AsPageObject returns the form object as a generic page object.
func (f *FormObject) AsPageObject() *PageObject {
	return newPageObject(f.handle, f.ownership, f.lib)
}
