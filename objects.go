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

// Objects is an indexed collection of page objects.
//
// The collection is a view onto the native library state.  Len is
// re-evaluated on every call, and there is no atomicity between calls:
// if the native document is modified concurrently, a Get following a Len
// may fail.
type Objects interface {
	// Len returns the current number of objects in the collection.
	Len() int

	// Get returns the object at the given index.
	Get(index int) (*PageObject, error)
}

var (
	_ Objects = (*PageObjects)(nil)
	_ Objects = (*FormObject)(nil)
)

func first(c Objects) (*PageObject, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCollection
	}
	return c.Get(0)
}

func last(c Objects) (*PageObject, error) {
	n := c.Len()
	if n == 0 {
		return nil, ErrEmptyCollection
	}
	return c.Get(n - 1)
}

func rangeInclusive(c Objects) (int, int) {
	n := c.Len()
	if n == 0 {
		return 0, 0
	}
	return 0, n - 1
}

// all iterates over the collection in index order.  The length is
// checked before every step, and iteration stops at the first object
// which cannot be retrieved.
func all(c Objects) iter.Seq2[int, *PageObject] {
	return func(yield func(int, *PageObject) bool) {
		for i := 0; i < c.Len(); i++ {
			obj, err := c.Get(i)
			if err != nil {
				return
			}
			if !yield(i, obj) {
				return
			}
		}
	}
}

// PageObjects is the collection of top-level objects on a page.
type PageObjects struct {
	page      PageHandle
	ownership Ownership
	lib       *Library
}

// Len returns the number of objects on the page.
func (p *PageObjects) Len() int {
	n := p.lib.b.PageCountObjects(p.page)
	if n < 0 {
		return 0
	}
	return n
}

// IsEmpty reports whether the page has no objects.
func (p *PageObjects) IsEmpty() bool {
	return p.Len() == 0
}

// Range returns the half-open index range [start, end) of the objects.
func (p *PageObjects) Range() (start, end int) {
	return 0, p.Len()
}

// RangeInclusive returns the first and last valid index.
// See [FormObject.RangeInclusive] for the behaviour on empty pages.
func (p *PageObjects) RangeInclusive() (first, last int) {
	return rangeInclusive(p)
}

// Get returns the object at the given index.
func (p *PageObjects) Get(index int) (*PageObject, error) {
	if index < 0 {
		return nil, ErrIndexOutOfBounds
	}
	h := p.lib.b.PageGetObject(p.page, index)
	if h == 0 {
		if index >= p.Len() {
			return nil, ErrIndexOutOfBounds
		}
		return nil, unknownError("get page object")
	}
	return newPageObject(h, p.ownership, p.lib), nil
}

// First returns the first object on the page.
func (p *PageObjects) First() (*PageObject, error) {
	return first(p)
}

// Last returns the last object on the page.
func (p *PageObjects) Last() (*PageObject, error) {
	return last(p)
}

// All returns an iterator over the objects on the page, in drawing order.
// Each call starts a new traversal.
func (p *PageObjects) All() iter.Seq2[int, *PageObject] {
	return all(p)
}
