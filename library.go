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

// Options allows to customize a [Library].
type Options struct {
	// DisableFormRemove prevents removal of child objects from form
	// objects, even if the native library supports it.
	DisableFormRemove bool
}

var defaultOptions = &Options{}

// Library gives access to page objects managed by a native PDF library.
//
// The capabilities of the native library are determined once, when the
// Library is created.  A Library is not safe for concurrent use unless the
// underlying bindings are.
type Library struct {
	b Bindings

	// remover is nil if child objects cannot be removed from form objects.
	remover FormObjectRemover
}

// New creates a Library which uses the given native bindings.
// If opt is nil, default options are used.
func New(b Bindings, opt *Options) *Library {
	if opt == nil {
		opt = defaultOptions
	}

	lib := &Library{b: b}
	if r, ok := b.(FormObjectRemover); ok && !opt.DisableFormRemove {
		lib.remover = r
	}
	return lib
}

// Bindings returns the native bindings used by the library.
func (lib *Library) Bindings() Bindings {
	return lib.b
}

// CanRemoveFormObjects reports whether child objects can be removed from
// form objects.
func (lib *Library) CanRemoveFormObjects() bool {
	return lib.remover != nil
}

// PageObjects returns the top-level objects of a page.
//
// The page must have been loaded from doc, and both must stay open while
// the returned collection, or any object obtained from it, is in use.
func (lib *Library) PageObjects(doc DocumentHandle, page PageHandle) *PageObjects {
	return &PageObjects{
		page:      page,
		ownership: PageOwnership(doc, page),
		lib:       lib,
	}
}
