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

// Package pdfium gives safe access to page objects managed by a native PDF
// library.
//
// The native library does all the work of parsing, rendering and modifying
// PDF files.  This package wraps the native handles of page objects into Go
// types, translates native failures into error values, and makes sure that
// features missing from a given build of the native library fail cleanly.
//
// The native entry points are described by the [Bindings] interface.  A
// [Library] is created from bindings once, and is then used to access
// pages:
//
//	lib := pdfium.New(bindings, nil)
//	objects := lib.PageObjects(doc, page)
//	for i, obj := range objects.All() {
//	    form, ok := obj.AsForm()
//	    if !ok {
//	        continue
//	    }
//	    fmt.Println(i, "form object with", form.Len(), "children")
//	}
//
// Form objects ([FormObject]) provide an indexed, read-only view of their
// children.  If the native library supports it, children can be removed,
// but never added.  All page objects implement [Transformable].
//
// Objects returned by this package hold handles into native memory.  They
// must not be used after the document they belong to has been closed.  The
// package performs no locking.
//
// The package [seehuhn.de/go/pdfium/memlib] implements [Bindings] in pure Go.
package pdfium
