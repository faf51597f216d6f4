// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// mdvisual renders a Markdown file to the terminal
// or reformats it back to canonical Markdown.
//
// The terminal backend is a reference consumer of the visual node tree:
// it stands in for the host UI toolkit that would normally measure and
// paint the nodes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"zombiezen.com/go/mdvisual"
	"zombiezen.com/go/mdvisual/format"
	"zombiezen.com/go/mdvisual/parser"
)

func main() {
	var (
		reformat bool
		width    int
		color    bool
	)
	pflag.BoolVar(&reformat, "format", false, "reserialize to canonical Markdown instead of rendering")
	pflag.IntVar(&width, "width", 80, "render width in columns")
	pflag.BoolVar(&color, "color", true, "emit ANSI colors")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: mdvisual [flags] [FILE]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	source, err := readSource(pflag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "mdvisual:", err)
		os.Exit(1)
	}

	tokens, refs := parser.Parse(source)
	if reformat {
		if err := format.Write(os.Stdout, tokens, refs); err != nil {
			fmt.Fprintln(os.Stderr, "mdvisual:", err)
			os.Exit(1)
		}
		return
	}

	nodes := mdvisual.Render(tokens, mdvisual.DefaultStyle(), refs)
	tr := newTermRenderer(os.Stdout, width, color)
	if _, err := io.WriteString(os.Stdout, tr.render(nodes)); err != nil {
		fmt.Fprintln(os.Stderr, "mdvisual:", err)
		os.Exit(1)
	}
}

func readSource(args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	case 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		return data, nil
	default:
		return nil, fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
}
