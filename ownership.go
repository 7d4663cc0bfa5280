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

import "fmt"

// OwnershipKind describes which part of the document model manages the
// lifetime of a page object.
type OwnershipKind int

// These are the possible owners of a page object.
const (
	// Unowned objects are detached from any document structure.  The
	// caller is responsible for re-attaching them.
	Unowned OwnershipKind = iota
	OwnedByDocument
	OwnedByPage
	OwnedByAnnotation
)

func (k OwnershipKind) String() string {
	switch k {
	case Unowned:
		return "unowned"
	case OwnedByDocument:
		return "document"
	case OwnedByPage:
		return "page"
	case OwnedByAnnotation:
		return "annotation"
	default:
		return fmt.Sprintf("OwnershipKind(%d)", int(k))
	}
}

// Ownership records who manages the lifetime of a page object.
//
// Ownership is a value type.  Objects obtained from a collection receive a
// copy of the collection's ownership; there is no reference back to the
// parent object.  Two values are equal if and only if they compare equal
// with ==.
type Ownership struct {
	kind       OwnershipKind
	document   DocumentHandle
	page       PageHandle
	annotation AnnotationHandle
}

// DocumentOwnership returns the ownership of an object which belongs to a
// document but is not attached to any page.
func DocumentOwnership(doc DocumentHandle) Ownership {
	return Ownership{kind: OwnedByDocument, document: doc}
}

// PageOwnership returns the ownership of an object on a page.
func PageOwnership(doc DocumentHandle, page PageHandle) Ownership {
	return Ownership{kind: OwnedByPage, document: doc, page: page}
}

// AnnotationOwnership returns the ownership of an object attached to a page
// annotation.
func AnnotationOwnership(doc DocumentHandle, page PageHandle, annot AnnotationHandle) Ownership {
	return Ownership{
		kind:       OwnedByAnnotation,
		document:   doc,
		page:       page,
		annotation: annot,
	}
}

// Kind returns the kind of owner.
func (o Ownership) Kind() OwnershipKind {
	return o.kind
}

// IsUnowned reports whether the object is detached.
func (o Ownership) IsUnowned() bool {
	return o.kind == Unowned
}

// Document returns the owning document, or the null handle for unowned
// objects.
func (o Ownership) Document() DocumentHandle {
	return o.document
}

// Page returns the owning page, or the null handle if the object is not
// attached to a page.
func (o Ownership) Page() PageHandle {
	return o.page
}

// Annotation returns the owning annotation, or the null handle.
func (o Ownership) Annotation() AnnotationHandle {
	return o.annotation
}

func (o Ownership) String() string {
	switch o.kind {
	case Unowned:
		return "unowned"
	case OwnedByDocument:
		return fmt.Sprintf("document %#x", uintptr(o.document))
	case OwnedByPage:
		return fmt.Sprintf("page %#x of document %#x",
			uintptr(o.page), uintptr(o.document))
	case OwnedByAnnotation:
		return fmt.Sprintf("annotation %#x on page %#x of document %#x",
			uintptr(o.annotation), uintptr(o.page), uintptr(o.document))
	default:
		return o.kind.String()
	}
}
