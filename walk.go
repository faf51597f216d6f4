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

// A Cursor describes a [Token] encountered during [Walk].
type Cursor struct {
	token  *Token
	parent *Token
}

// Token returns the current token.
func (c *Cursor) Token() *Token {
	return c.token
}

// Parent returns the parent of the current token,
// or nil for a top-level token.
func (c *Cursor) Parent() *Token {
	return c.parent
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each token before the token's
	// children are traversed (pre-order).
	// If Pre returns false, no children are traversed,
	// and Post is not called for that token.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each token after the token's
	// children are traversed (post-order).
	// If Post returns false, traversal terminates
	// and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses a token forest iteratively,
// calling [WalkOptions.Pre] and [WalkOptions.Post] for every token.
// The explicit stack keeps traversal depth independent of tree depth,
// so adversarially nested input cannot exhaust the call stack.
func Walk(tokens []Token, opts *WalkOptions) {
	type walkFrame struct {
		token  *Token
		parent *Token
		post   bool
	}

	stack := make([]walkFrame, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		stack = append(stack, walkFrame{token: &tokens[i]})
	}
	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.post {
			if opts.Post != nil {
				cursor.token = curr.token
				cursor.parent = curr.parent
				if !opts.Post(cursor) {
					break
				}
			}
			continue
		}

		if opts.Pre != nil {
			cursor.token = curr.token
			cursor.parent = curr.parent
			if !opts.Pre(cursor) {
				continue
			}
		}
		curr.post = true
		stack = append(stack, curr)
		children := curr.token.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{
				parent: curr.token,
				token:  &children[i],
			})
		}
	}
}
