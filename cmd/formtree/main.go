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

// Formtree prints the page objects of a scene file.  Form objects are
// expanded, showing their children.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/pdfium"
	"seehuhn.de/go/pdfium/memlib"
)

func main() {
	extended := flag.Bool("extended", false, "allow removal of form object children")
	remove := flag.String("remove", "", "remove a form object child before printing (`page:object:child`)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scene file: %v\n", err)
		os.Exit(1)
	}
	mem, err := memlib.Load(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	var b pdfium.Bindings = mem
	if *extended {
		b = memlib.Extended(mem)
	}
	lib := pdfium.New(b, nil)

	if *remove != "" {
		loc, err := parseLocation(*remove)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		obj, err := removeChild(lib, mem, loc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", *remove, err)
			os.Exit(1)
		}
		fmt.Printf("removed %s\n\n", obj)
	}

	p := &printer{
		w:      os.Stdout,
		glyphs: plainGlyphs,
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		p.glyphs = treeGlyphs
	}
	for j, doc := range mem.Documents() {
		fmt.Fprintf(p.w, "document %d\n", j+1)
		for i, page := range mem.Pages(doc) {
			err := p.printPage(lib.PageObjects(doc, page), i+1)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}
}
