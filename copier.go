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

// Copier is implemented by page objects which know whether they can be
// duplicated into another document.
type Copier interface {
	// IsCopyable reports whether TryCopy can succeed.
	IsCopyable() bool

	// TryCopy creates a copy of the object in the document dst.
	// The copy is owned by dst and not attached to any page.
	TryCopy(dst DocumentHandle) (*PageObject, error)
}
