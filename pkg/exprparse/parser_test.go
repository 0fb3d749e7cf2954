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
package exprparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeta1999/polya/pkg/exprparse"
	"github.com/zeta1999/polya/pkg/term"
)

func Test_Parse_SimpleLessEqual(t *testing.T) {
	c, err := exprparse.Parse("x <= 3")
	require.NoError(t, err)
	require.Equal(t, term.LE, c.Comp)
	require.Equal(t, term.Var{Name: "x"}, c.Left)
}

func Test_Parse_ScaledSum(t *testing.T) {
	c, err := exprparse.Parse("2*x + y >= z - 1")
	require.NoError(t, err)
	require.Equal(t, term.GE, c.Comp)
}

func Test_Parse_Negation(t *testing.T) {
	c, err := exprparse.Parse("-x < 0")
	require.NoError(t, err)
	require.Equal(t, term.LT, c.Comp)
}

func Test_Parse_RejectsGarbage(t *testing.T) {
	_, err := exprparse.Parse("x <=")
	require.Error(t, err)
}

func Test_Parse_ZeroOnRightUsesZeroCoefficient(t *testing.T) {
	c, err := exprparse.Parse("x > 0")
	require.NoError(t, err)
	require.Equal(t, term.GT, c.Comp)
	require.Equal(t, term.Var{Name: "x"}, c.Left)
	require.Zero(t, c.Coeff.Sign())
}

func Test_Parse_ZeroOnLeftReversesComparison(t *testing.T) {
	c, err := exprparse.Parse("0 < x")
	require.NoError(t, err)
	require.Equal(t, term.GT, c.Comp)
	require.Equal(t, term.Var{Name: "x"}, c.Left)
	require.Zero(t, c.Coeff.Sign())
}
