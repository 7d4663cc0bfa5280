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

package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"seehuhn.de/go/pdfium"
	"seehuhn.de/go/pdfium/internal/float"
	"seehuhn.de/go/pdfium/memlib"
)

type glyphSet struct {
	branch, last, pipe, space string
}

var (
	treeGlyphs  = glyphSet{"├── ", "└── ", "│   ", "    "}
	plainGlyphs = glyphSet{"  ", "  ", "  ", "  "}
)

type printer struct {
	w      io.Writer
	glyphs glyphSet
}

func (p *printer) printPage(objects *pdfium.PageObjects, pageNo int) error {
	n := objects.Len()
	fmt.Fprintf(p.w, "page %d: %d objects\n", pageNo, n)
	return p.printObjects(objects.All(), n, "")
}

func (p *printer) printObjects(seq iter.Seq2[int, *pdfium.PageObject], n int, prefix string) error {
	count := 0
	for i, obj := range seq {
		count++
		branch, next := p.glyphs.branch, p.glyphs.pipe
		if i == n-1 {
			branch, next = p.glyphs.last, p.glyphs.space
		}
		fmt.Fprintf(p.w, "%s%s%d: %s\n", prefix, branch, i, describe(obj))

		if form, ok := obj.AsForm(); ok {
			err := p.printObjects(form.All(), form.Len(), prefix+next)
			if err != nil {
				return err
			}
		}
	}
	if count < n {
		return fmt.Errorf("only %d of %d objects could be read", count, n)
	}
	return nil
}

func describe(obj *pdfium.PageObject) string {
	parts := []string{obj.Type().String()}

	if form, ok := obj.AsForm(); ok {
		n := form.Len()
		if n == 1 {
			parts = append(parts, "1 child")
		} else {
			parts = append(parts, fmt.Sprintf("%d children", n))
		}
	}
	if M, err := obj.Matrix(); err == nil {
		parts = append(parts, "matrix ["+float.FormatList(3, M[:]...)+"]")
	}
	if box, err := obj.Bounds(); err == nil {
		parts = append(parts, "bounds ["+float.FormatList(3, box.LLx, box.LLy, box.URx, box.URy)+"]")
	}
	return strings.Join(parts, ", ")
}

// location identifies a child of a form object on a page of the first
// document.
type location struct {
	page, object, child int
}

func parseLocation(s string) (location, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return location{}, fmt.Errorf("invalid location %q, expected page:object:child", s)
	}
	var vals [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return location{}, fmt.Errorf("invalid location %q", s)
		}
		vals[i] = v
	}
	if vals[0] < 1 {
		return location{}, errors.New("page numbers start at 1")
	}
	return location{page: vals[0], object: vals[1], child: vals[2]}, nil
}

func removeChild(lib *pdfium.Library, mem *memlib.Library, loc location) (*pdfium.PageObject, error) {
	docs := mem.Documents()
	if len(docs) == 0 {
		return nil, errors.New("scene has no documents")
	}
	pages := mem.Pages(docs[0])
	if loc.page > len(pages) {
		return nil, fmt.Errorf("page %d not found", loc.page)
	}

	obj, err := lib.PageObjects(docs[0], pages[loc.page-1]).Get(loc.object)
	if err != nil {
		return nil, err
	}
	form, ok := obj.AsForm()
	if !ok {
		return nil, fmt.Errorf("object %d is a %s object, not a form", loc.object, obj.Type())
	}
	child, err := form.Get(loc.child)
	if err != nil {
		return nil, err
	}
	return form.Remove(child)
}
