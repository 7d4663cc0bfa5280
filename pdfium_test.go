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
	"fmt"
	"testing"
)

func TestInternalError(t *testing.T) {
	err := unknownError("get form child")
	if msg := err.Error(); msg != "native library internal error in get form child: unknown" {
		t.Errorf("unexpected message %q", msg)
	}
	if !errors.Is(err, ErrUnknown) {
		t.Error("internal error does not match ErrUnknown")
	}

	wrapped := fmt.Errorf("stamp: %w", err)
	var internal *InternalError
	if !errors.As(wrapped, &internal) {
		t.Fatal("errors.As failed")
	}
	if internal.Op != "get form child" || internal.Kind != Unknown {
		t.Errorf("unexpected error %#v", internal)
	}
	if !errors.Is(wrapped, ErrUnknown) {
		t.Error("wrapped error does not match ErrUnknown")
	}

	for _, sentinel := range []error{ErrIndexOutOfBounds, ErrEmptyCollection, ErrCollectionImmutable, ErrNotCopyable} {
		if errors.Is(err, sentinel) {
			t.Errorf("internal error matches %v", sentinel)
		}
		if errors.Is(sentinel, ErrUnknown) {
			t.Errorf("%v matches ErrUnknown", sentinel)
		}
	}

	if msg := ErrUnknown.Error(); msg != "native library internal error: unknown" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestOwnership(t *testing.T) {
	var zero Ownership
	if !zero.IsUnowned() || zero.Kind() != Unowned {
		t.Error("zero ownership is not unowned")
	}

	a := PageOwnership(1, 2)
	b := PageOwnership(1, 2)
	c := PageOwnership(1, 3)
	if a != b {
		t.Error("equal ownerships compare unequal")
	}
	if a == c {
		t.Error("different pages compare equal")
	}
	if a.Document() != 1 || a.Page() != 2 || a.Kind() != OwnedByPage {
		t.Errorf("unexpected ownership %s", a)
	}

	d := DocumentOwnership(1)
	if d.Page() != 0 || d == a {
		t.Errorf("unexpected ownership %s", d)
	}

	annot := AnnotationOwnership(1, 2, 5)
	if annot.Annotation() != 5 || annot.Kind() != OwnedByAnnotation || annot == a {
		t.Errorf("unexpected ownership %s", annot)
	}

	cases := []struct {
		in  Ownership
		out string
	}{
		{zero, "unowned"},
		{d, "document 0x1"},
		{a, "page 0x2 of document 0x1"},
		{annot, "annotation 0x5 on page 0x2 of document 0x1"},
	}
	for _, test := range cases {
		if got := test.in.String(); got != test.out {
			t.Errorf("String() = %q, expected %q", got, test.out)
		}
	}
}

// countingBindings records how often the child count is queried.
type countingBindings struct {
	Bindings
	n     int
	calls int
}

func (b *countingBindings) IsTrue(v Bool) bool { return v != 0 }

func (b *countingBindings) FormObjCountObjects(ObjectHandle) int {
	b.calls++
	return b.n
}

func (b *countingBindings) FormObjGetObject(_ ObjectHandle, index int) ObjectHandle {
	if index < 0 || index >= b.n {
		return 0
	}
	return ObjectHandle(100 + index)
}

func TestFormLenNotCached(t *testing.T) {
	b := &countingBindings{n: 2}
	form := newFormObject(1, Ownership{}, New(b, nil))

	if form.Len() != 2 {
		t.Fatal("wrong length")
	}
	b.n = 5
	if form.Len() != 5 {
		t.Error("length was cached")
	}
	if b.calls != 2 {
		t.Errorf("expected 2 native calls, got %d", b.calls)
	}

	b.n = -1
	if form.Len() != 0 || !form.IsEmpty() {
		t.Error("negative native count not treated as empty")
	}
}

// removingBindings records the arguments of native remove calls.
type removingBindings struct {
	countingBindings
	removed []ObjectHandle
}

func (b *removingBindings) FormObjRemoveObject(form, obj ObjectHandle) Bool {
	b.removed = append(b.removed, obj)
	return 1
}

func TestFormRemoveNil(t *testing.T) {
	b := &removingBindings{countingBindings: countingBindings{n: 2}}
	lib := New(b, nil)
	if !lib.CanRemoveFormObjects() {
		t.Fatal("removal not enabled")
	}
	form := newFormObject(1, PageOwnership(1, 2), lib)

	_, err := form.Remove(nil)
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("expected internal error, got %v", err)
	}
	if len(b.removed) != 0 {
		t.Errorf("native remove called with %v", b.removed)
	}

	child, err := form.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	removed, err := form.Remove(child)
	if err != nil {
		t.Fatal(err)
	}
	if !removed.Ownership().IsUnowned() {
		t.Error("removed child is still owned")
	}
	if len(b.removed) != 1 || b.removed[0] != 101 {
		t.Errorf("unexpected native calls %v", b.removed)
	}
}
