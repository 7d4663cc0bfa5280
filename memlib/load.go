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

package memlib

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdfium"
)

// Load reads a YAML scene description and builds a library from it.
//
// A scene lists documents, their pages, and the objects on each page.
// Form objects may have children:
//
//	documents:
//	  - pages:
//	      - objects:
//	          - type: path
//	            bounds: [0, 0, 100, 50]
//	          - type: form
//	            matrix: [1, 0, 0, 1, 200, 300]
//	            children:
//	              - type: text
//	                bounds: [0, 0, 40, 12]
//
// Matrices have six entries, bounds four (left, bottom, right, top).
func Load(r io.Reader) (*Library, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var scene sceneFile
	err := dec.Decode(&scene)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("memlib: empty scene")
	} else if err != nil {
		return nil, fmt.Errorf("memlib: decode scene: %w", err)
	}

	l := New()
	for i, docData := range scene.Documents {
		doc := l.NewDocument()
		for j, pageData := range docData.Pages {
			page, err := l.NewPage(doc)
			if err != nil {
				return nil, err
			}
			for k, objData := range pageData.Objects {
				path := fmt.Sprintf("documents[%d].pages[%d].objects[%d]", i, j, k)
				obj, err := l.build(path, &objData)
				if err != nil {
					return nil, err
				}
				err = l.AddToPage(page, obj)
				if err != nil {
					return nil, fmt.Errorf("memlib: %s: %w", path, err)
				}
			}
		}
	}
	return l, nil
}

type sceneFile struct {
	Documents []documentFile `yaml:"documents"`
}

type documentFile struct {
	Pages []pageFile `yaml:"pages"`
}

type pageFile struct {
	Objects []objectFile `yaml:"objects"`
}

type objectFile struct {
	Type     string       `yaml:"type"`
	Matrix   []float32    `yaml:"matrix"`
	Bounds   []float32    `yaml:"bounds"`
	Children []objectFile `yaml:"children"`
}

func (l *Library) build(path string, data *objectFile) (pdfium.ObjectHandle, error) {
	tp, err := parseType(data.Type)
	if err != nil {
		return 0, fmt.Errorf("memlib: %s: %w", path, err)
	}
	if len(data.Children) > 0 && tp != pdfium.TypeForm {
		return 0, fmt.Errorf("memlib: %s: %s object cannot have children", path, tp)
	}

	obj := l.NewObject(tp)
	o := l.objects[obj]

	switch len(data.Matrix) {
	case 0:
		// keep the identity matrix
	case 6:
		m := data.Matrix
		o.matrix = pdfium.FSMatrix{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
	default:
		return 0, fmt.Errorf("memlib: %s: matrix needs 6 elements, got %d",
			path, len(data.Matrix))
	}

	switch len(data.Bounds) {
	case 0:
		// no explicit bounds
	case 4:
		b := data.Bounds
		if b[0] > b[2] || b[1] > b[3] {
			return 0, fmt.Errorf("memlib: %s: invalid bounds %v", path, b)
		}
		o.bounds = [4]float32{b[0], b[1], b[2], b[3]}
		o.hasBounds = true
	default:
		return 0, fmt.Errorf("memlib: %s: bounds need 4 elements, got %d",
			path, len(data.Bounds))
	}

	for i := range data.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		child, err := l.build(childPath, &data.Children[i])
		if err != nil {
			return 0, err
		}
		err = l.AddToForm(obj, child)
		if err != nil {
			return 0, fmt.Errorf("memlib: %s: %w", childPath, err)
		}
	}

	return obj, nil
}

func parseType(s string) (pdfium.ObjectType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for tp := pdfium.TypeUnknown; tp <= pdfium.TypeForm; tp++ {
		if tp.String() == name {
			return tp, nil
		}
	}
	if name == "" {
		return 0, errors.New("missing object type")
	}
	return 0, fmt.Errorf("unknown object type %q", s)
}
