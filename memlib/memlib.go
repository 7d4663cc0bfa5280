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

// Package memlib implements the native library bindings of
// [seehuhn.de/go/pdfium] in memory.
//
// The in-memory library keeps a tree of documents, pages and page objects.
// It follows the calling conventions of the native library: queries on
// unknown handles return zero, negative or null results instead of errors.
// This makes the package suitable for tests, and for inspecting object
// trees without the native library.
//
// A Library is not safe for concurrent use.
package memlib

import (
	"errors"
	"math"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/pdfium"
)

var (
	errUnknownHandle = errors.New("unknown handle")
	errAttached      = errors.New("object is already attached")
	errNotForm       = errors.New("not a form object")
	errCycle         = errors.New("form object cannot contain itself")
)

// Library is an in-memory implementation of [pdfium.Bindings].
//
// The library cannot remove children from form objects.  Use [Extended]
// to get bindings which can.
type Library struct {
	docs    map[pdfium.DocumentHandle]*document
	pages   map[pdfium.PageHandle]*page
	objects map[pdfium.ObjectHandle]*object

	docOrder []pdfium.DocumentHandle
	last     uintptr

	// FailGetObject makes FormObjGetObject return the null handle, even for
	// valid indices.
	FailGetObject bool

	// FailMatrix makes all matrix queries and updates fail.
	FailMatrix bool
}

type document struct {
	pages []pdfium.PageHandle
}

type page struct {
	doc     pdfium.DocumentHandle
	objects []pdfium.ObjectHandle
}

type object struct {
	tp     pdfium.ObjectType
	matrix pdfium.FSMatrix

	// bounds are given in the object's own coordinate space.
	bounds    [4]float32
	hasBounds bool

	// At most one of page and form is set.
	page pdfium.PageHandle
	form pdfium.ObjectHandle

	children []pdfium.ObjectHandle
}

var _ pdfium.Bindings = (*Library)(nil)

// New returns an empty library.
func New() *Library {
	return &Library{
		docs:    make(map[pdfium.DocumentHandle]*document),
		pages:   make(map[pdfium.PageHandle]*page),
		objects: make(map[pdfium.ObjectHandle]*object),
	}
}

func (l *Library) alloc() uintptr {
	l.last++
	return l.last
}

// NewDocument creates a new, empty document.
func (l *Library) NewDocument() pdfium.DocumentHandle {
	h := pdfium.DocumentHandle(l.alloc())
	l.docs[h] = &document{}
	l.docOrder = append(l.docOrder, h)
	return h
}

// Documents returns all documents in the order they were created.
func (l *Library) Documents() []pdfium.DocumentHandle {
	return slices.Clone(l.docOrder)
}

// NewPage appends a new, empty page to the document.
func (l *Library) NewPage(doc pdfium.DocumentHandle) (pdfium.PageHandle, error) {
	d, ok := l.docs[doc]
	if !ok {
		return 0, errUnknownHandle
	}
	h := pdfium.PageHandle(l.alloc())
	l.pages[h] = &page{doc: doc}
	d.pages = append(d.pages, h)
	return h, nil
}

// Pages returns the pages of a document.
func (l *Library) Pages(doc pdfium.DocumentHandle) []pdfium.PageHandle {
	d, ok := l.docs[doc]
	if !ok {
		return nil
	}
	return slices.Clone(d.pages)
}

// NewObject creates a detached page object with the identity matrix.
func (l *Library) NewObject(tp pdfium.ObjectType) pdfium.ObjectHandle {
	h := pdfium.ObjectHandle(l.alloc())
	l.objects[h] = &object{
		tp:     tp,
		matrix: pdfium.FSMatrix{A: 1, D: 1},
	}
	return h
}

// Handles returns the handles of all page objects, attached or not,
// in increasing order.
func (l *Library) Handles() []pdfium.ObjectHandle {
	keys := maps.Keys(l.objects)
	slices.Sort(keys)
	return keys
}

// IsAttached reports whether obj belongs to a page or a form object.
func (l *Library) IsAttached(obj pdfium.ObjectHandle) bool {
	o, ok := l.objects[obj]
	return ok && (o.page != 0 || o.form != 0)
}

// SetBounds sets the bounding box of an object, in the object's own
// coordinate space.
func (l *Library) SetBounds(obj pdfium.ObjectHandle, left, bottom, right, top float32) error {
	o, ok := l.objects[obj]
	if !ok {
		return errUnknownHandle
	}
	o.bounds = [4]float32{left, bottom, right, top}
	o.hasBounds = true
	return nil
}

// AddToPage appends a detached object to a page.
func (l *Library) AddToPage(p pdfium.PageHandle, obj pdfium.ObjectHandle) error {
	pg, ok := l.pages[p]
	if !ok {
		return errUnknownHandle
	}
	o, ok := l.objects[obj]
	if !ok {
		return errUnknownHandle
	}
	if o.page != 0 || o.form != 0 {
		return errAttached
	}
	o.page = p
	pg.objects = append(pg.objects, obj)
	return nil
}

// AddToForm appends a detached object to a form object.
func (l *Library) AddToForm(form, obj pdfium.ObjectHandle) error {
	f, ok := l.objects[form]
	if !ok {
		return errUnknownHandle
	}
	if f.tp != pdfium.TypeForm {
		return errNotForm
	}
	o, ok := l.objects[obj]
	if !ok {
		return errUnknownHandle
	}
	if o.page != 0 || o.form != 0 {
		return errAttached
	}
	for h := form; h != 0; h = l.objects[h].form {
		if h == obj {
			return errCycle
		}
	}
	o.form = form
	f.children = append(f.children, obj)
	return nil
}

// IsTrue implements [pdfium.Bindings].
func (l *Library) IsTrue(b pdfium.Bool) bool {
	return b != 0
}

func toBool(ok bool) pdfium.Bool {
	if ok {
		return 1
	}
	return 0
}

// PageCountObjects implements [pdfium.Bindings].
func (l *Library) PageCountObjects(p pdfium.PageHandle) int {
	pg, ok := l.pages[p]
	if !ok {
		return -1
	}
	return len(pg.objects)
}

// PageGetObject implements [pdfium.Bindings].
func (l *Library) PageGetObject(p pdfium.PageHandle, index int) pdfium.ObjectHandle {
	pg, ok := l.pages[p]
	if !ok || index < 0 || index >= len(pg.objects) {
		return 0
	}
	return pg.objects[index]
}

// PageObjGetType implements [pdfium.Bindings].
func (l *Library) PageObjGetType(obj pdfium.ObjectHandle) int {
	o, ok := l.objects[obj]
	if !ok {
		return int(pdfium.TypeUnknown)
	}
	return int(o.tp)
}

// PageObjGetMatrix implements [pdfium.Bindings].
func (l *Library) PageObjGetMatrix(obj pdfium.ObjectHandle, m *pdfium.FSMatrix) pdfium.Bool {
	o, ok := l.objects[obj]
	if !ok || m == nil || l.FailMatrix {
		return 0
	}
	*m = o.matrix
	return 1
}

// PageObjSetMatrix implements [pdfium.Bindings].
func (l *Library) PageObjSetMatrix(obj pdfium.ObjectHandle, m *pdfium.FSMatrix) pdfium.Bool {
	o, ok := l.objects[obj]
	if !ok || m == nil || l.FailMatrix {
		return 0
	}
	o.matrix = *m
	return 1
}

// PageObjGetBounds implements [pdfium.Bindings].  The result is given in
// the coordinate space of the object's parent.  Form objects without
// explicit bounds use the union of the bounds of their children.
func (l *Library) PageObjGetBounds(obj pdfium.ObjectHandle, left, bottom, right, top *float32) pdfium.Bool {
	if left == nil || bottom == nil || right == nil || top == nil {
		return 0
	}
	box, ok := l.bounds(obj)
	if !ok {
		return 0
	}
	*left, *bottom, *right, *top = box[0], box[1], box[2], box[3]
	return 1
}

func (l *Library) bounds(obj pdfium.ObjectHandle) ([4]float32, bool) {
	o, ok := l.objects[obj]
	if !ok {
		return [4]float32{}, false
	}

	var inner [4]float32
	switch {
	case o.hasBounds:
		inner = o.bounds
	case o.tp == pdfium.TypeForm:
		found := false
		for _, child := range o.children {
			box, ok := l.bounds(child)
			if !ok {
				continue
			}
			if !found {
				inner = box
				found = true
				continue
			}
			inner[0] = min(inner[0], box[0])
			inner[1] = min(inner[1], box[1])
			inner[2] = max(inner[2], box[2])
			inner[3] = max(inner[3], box[3])
		}
		if !found {
			return [4]float32{}, false
		}
	default:
		return [4]float32{}, false
	}

	return transformBox(o.matrix, inner), true
}

// transformBox returns the smallest axis-parallel box which contains the
// image of box under m.
func transformBox(m pdfium.FSMatrix, box [4]float32) [4]float32 {
	res := [4]float32{
		math.MaxFloat32, math.MaxFloat32,
		-math.MaxFloat32, -math.MaxFloat32,
	}
	for _, x := range []float32{box[0], box[2]} {
		for _, y := range []float32{box[1], box[3]} {
			xt := m.A*x + m.C*y + m.E
			yt := m.B*x + m.D*y + m.F
			res[0] = min(res[0], xt)
			res[1] = min(res[1], yt)
			res[2] = max(res[2], xt)
			res[3] = max(res[3], yt)
		}
	}
	return res
}

// FormObjCountObjects implements [pdfium.Bindings].
func (l *Library) FormObjCountObjects(form pdfium.ObjectHandle) int {
	f, ok := l.objects[form]
	if !ok || f.tp != pdfium.TypeForm {
		return -1
	}
	return len(f.children)
}

// FormObjGetObject implements [pdfium.Bindings].
func (l *Library) FormObjGetObject(form pdfium.ObjectHandle, index int) pdfium.ObjectHandle {
	f, ok := l.objects[form]
	if !ok || f.tp != pdfium.TypeForm || index < 0 || index >= len(f.children) {
		return 0
	}
	if l.FailGetObject {
		return 0
	}
	return f.children[index]
}

// ExtendedLibrary is an in-memory library which can remove children from
// form objects, like newer builds of the native library.
type ExtendedLibrary struct {
	*Library
}

var _ pdfium.FormObjectRemover = (*ExtendedLibrary)(nil)

// Extended returns bindings for l which implement
// [pdfium.FormObjectRemover].
func Extended(l *Library) *ExtendedLibrary {
	return &ExtendedLibrary{Library: l}
}

// FormObjRemoveObject implements [pdfium.FormObjectRemover].  The removed
// object stays valid, but is no longer attached to anything.
func (l *ExtendedLibrary) FormObjRemoveObject(form, obj pdfium.ObjectHandle) pdfium.Bool {
	f, ok := l.objects[form]
	if !ok || f.tp != pdfium.TypeForm {
		return 0
	}
	idx := slices.Index(f.children, obj)
	if idx < 0 {
		return 0
	}
	f.children = slices.Delete(f.children, idx, idx+1)
	l.objects[obj].form = 0
	return toBool(true)
}
