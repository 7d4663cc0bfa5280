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

package pdfium_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfium"
	"seehuhn.de/go/pdfium/memlib"
)

const pageScene = `
documents:
  - pages:
      - objects:
          - type: text
          - type: form
            children:
              - type: path
          - type: image
      - objects: []
`

func TestPageObjects(t *testing.T) {
	mem, err := memlib.Load(strings.NewReader(pageScene))
	if err != nil {
		t.Fatal(err)
	}
	doc := mem.Documents()[0]
	pages := mem.Pages(doc)
	lib := pdfium.New(mem, nil)

	objects := lib.PageObjects(doc, pages[0])
	if n := objects.Len(); n != 3 {
		t.Fatalf("Len() = %d", n)
	}

	var types []pdfium.ObjectType
	for _, obj := range objects.All() {
		types = append(types, obj.Type())
		if obj.Ownership() != pdfium.PageOwnership(doc, pages[0]) {
			t.Errorf("%s has wrong ownership", obj)
		}
	}
	want := []pdfium.ObjectType{pdfium.TypeText, pdfium.TypeForm, pdfium.TypeImage}
	if d := cmp.Diff(want, types); d != "" {
		t.Error(d)
	}

	last, err := objects.Last()
	if err != nil {
		t.Fatal(err)
	}
	if last.Type() != pdfium.TypeImage {
		t.Errorf("last object is %s", last)
	}
	if _, err := objects.Get(3); !errors.Is(err, pdfium.ErrIndexOutOfBounds) {
		t.Errorf("Get(3): expected ErrIndexOutOfBounds, got %v", err)
	}
	if first, last := objects.RangeInclusive(); first != 0 || last != 2 {
		t.Errorf("RangeInclusive() = %d, %d", first, last)
	}

	empty := lib.PageObjects(doc, pages[1])
	if !empty.IsEmpty() {
		t.Error("second page is not empty")
	}
	if _, err := empty.First(); !errors.Is(err, pdfium.ErrEmptyCollection) {
		t.Errorf("First: expected ErrEmptyCollection, got %v", err)
	}
	if start, end := empty.Range(); start != 0 || end != 0 {
		t.Errorf("Range() = %d, %d", start, end)
	}
}

func TestUnknownPage(t *testing.T) {
	mem := memlib.New()
	doc := mem.NewDocument()
	objects := pdfium.New(mem, nil).PageObjects(doc, 1234)

	// the native library reports -1 for unknown pages
	if n := objects.Len(); n != 0 {
		t.Errorf("Len() = %d", n)
	}
	if _, err := objects.Get(0); !errors.Is(err, pdfium.ErrIndexOutOfBounds) {
		t.Errorf("Get(0): expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestObjectType(t *testing.T) {
	for tp, name := range map[pdfium.ObjectType]string{
		pdfium.TypeUnknown: "unknown",
		pdfium.TypeText:    "text",
		pdfium.TypePath:    "path",
		pdfium.TypeImage:   "image",
		pdfium.TypeShading: "shading",
		pdfium.TypeForm:    "form",
		17:                 "ObjectType(17)",
	} {
		if got := tp.String(); got != name {
			t.Errorf("%d.String() = %q, expected %q", int(tp), got, name)
		}
	}
}

func TestCapabilities(t *testing.T) {
	mem := memlib.New()
	if pdfium.New(mem, nil).CanRemoveFormObjects() {
		t.Error("basic bindings can remove form objects")
	}
	if !pdfium.New(memlib.Extended(mem), nil).CanRemoveFormObjects() {
		t.Error("extended bindings cannot remove form objects")
	}
	opt := &pdfium.Options{DisableFormRemove: true}
	if pdfium.New(memlib.Extended(mem), opt).CanRemoveFormObjects() {
		t.Error("removal not disabled")
	}
}
