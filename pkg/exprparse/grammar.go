// Copyright Polya Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package exprparse parses a small arithmetic-comparison surface syntax
// (e.g. "2*x + 3*y <= 5*z") into term.Comparison values the Blackboard's
// assertion engine accepts, using a participle grammar.
package exprparse

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes a comparison expression.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "CompOp", Pattern: `<=|>=|==|!=|<|>`},
	{Name: "Punct", Pattern: `[+\-*()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Comparison is the top-level parsed production: Left CompOp Right.
type Comparison struct {
	Left  *Expr  `parser:"@@"`
	Op    string `parser:"@CompOp"`
	Right *Expr  `parser:"@@"`
}

// Expr is a sum of signed terms.
type Expr struct {
	First *SignedTerm   `parser:"@@"`
	Rest  []*SignedTerm `parser:"@@*"`
}

// SignedTerm is a single additive term, optionally negated.
type SignedTerm struct {
	Sign string `parser:"@(\"+\" | \"-\")?"`
	Term *Term  `parser:"@@"`
}

// Term is either a bare number, a bare identifier, or a number-times-
// identifier product (e.g. "3*x").
type Term struct {
	Coeff *string `parser:"( @Number"`
	Star  bool    `parser:"  \"*\"?"`
	Ident *string `parser:"  @Ident? | @Ident"`
	Group *Expr   `parser:"| \"(\" @@ \")\" )"`
}
