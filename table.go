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

package mdvisual

// table normalizes a table token into a fixed-column grid.
// Cells stream left to right, top to bottom;
// header cells render bold, body cells do not.
// Rows shorter than the column count are padded with empty cells
// and longer rows are clipped,
// so the grid always holds exactly rows×columns cells.
func (rc *renderContext) table(tok Token) Node {
	var head, body []Token
	for i := range tok.Children {
		switch tok.Children[i].Kind {
		case TableHeadKind:
			head = sectionRows(tok.Children[i])
		case TableBodyKind:
			body = sectionRows(tok.Children[i])
		}
	}

	columns := 0
	switch {
	case len(head) > 0:
		columns = len(head[0].Children)
	case len(body) > 0:
		columns = len(body[0].Children)
	}
	if columns == 0 {
		return nil
	}

	cells := make([]Node, 0, (len(head)+len(body))*columns)
	for _, row := range head {
		cells = rc.appendRowCells(cells, row, columns, true)
	}
	for _, row := range body {
		cells = rc.appendRowCells(cells, row, columns, false)
	}
	return GridNode{Columns: columns, Cells: cells}
}

// sectionRows flattens a table_head or table_body into row tokens.
// The upstream AST is not uniform here:
// some parsers wrap cells in an intermediate table_row token
// and some attach cells to the section directly.
// The branch on the first child's kind tolerates both shapes.
func sectionRows(section Token) []Token {
	if len(section.Children) == 0 {
		return nil
	}
	if section.Children[0].Kind == TableCellKind {
		return []Token{{Kind: TableRowKind, Children: section.Children}}
	}
	rows := make([]Token, 0, len(section.Children))
	for _, child := range section.Children {
		if child.Kind == TableRowKind {
			rows = append(rows, child)
		}
	}
	return rows
}

func (rc *renderContext) appendRowCells(cells []Node, row Token, columns int, header bool) []Node {
	for c := 0; c < columns; c++ {
		var cell Token
		if c < len(row.Children) {
			cell = row.Children[c]
		}
		cells = append(cells, rc.tableCell(cell, header))
	}
	return cells
}

// tableCell renders one cell.
// Header-ness comes from the enclosing section,
// or from the cell's own head attribute for front ends that mark
// header cells individually.
func (rc *renderContext) tableCell(cell Token, header bool) Node {
	n := rc.text(rc.inline(cell.Children))
	n.Align = rc.style.resolveAlign(cell.Attrs.Align)
	n.Bold = header || cell.Attrs.Head
	return n
}
