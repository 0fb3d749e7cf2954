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
package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zeta1999/polya/pkg/blackboard"
	"github.com/zeta1999/polya/pkg/module"
	termpkg "github.com/zeta1999/polya/pkg/term"
)

func one() *big.Rat { return big.NewRat(1, 1) }

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a canned saturation demonstrating the builtins and minimum modules.",
	Long: `Builds a small Blackboard, interns an application of floor and an application of a two-argument
min function, asserts a handful of facts about their arguments, then round-robins the builtins and
minimum modules until neither reports new info, for at most eight rounds.`,
	Run: func(*cobra.Command, []string) {
		bb := blackboard.New()
		mods := []module.Module{module.NewBuiltinsModule(), module.NewMinimumModule()}

		x := termpkg.Var{Name: "x"}
		y := termpkg.Var{Name: "y"}

		floorX := termpkg.FuncTerm{Func: "floor", Args: []termpkg.Addend{{Coeff: one(), Term: x}}}
		minXY := termpkg.FuncTerm{Func: "min", Args: []termpkg.Addend{{Coeff: one(), Term: x}, {Coeff: one(), Term: y}}}

		if _, err := bb.AddTerm(floorX); err != nil {
			color.Red("internal error: %s", err)
			return
		}

		if _, err := bb.AddTerm(minXY); err != nil {
			color.Red("internal error: %s", err)
			return
		}

		zero := big.NewRat(0, 1)
		assume := []termpkg.Comparison{
			{Left: x, Comp: termpkg.GT, Coeff: zero, Right: termpkg.One{}},
			{Left: y, Comp: termpkg.GT, Coeff: zero, Right: termpkg.One{}},
		}

		for _, c := range assume {
			if err := bb.AssertComparison(c); err != nil {
				color.Red("contradiction during setup: %s", err)
				return
			}
		}

		ids := make([]int, len(mods))
		for i := range mods {
			ids[i] = bb.Identify()
		}

		for round := 0; round < 8; round++ {
			progressed := false

			for i, m := range mods {
				if !bb.HasNewInfo(ids[i]) {
					continue
				}

				bb.GetNewInfo(ids[i])

				if err := m.UpdateBlackboard(bb); err != nil {
					color.Red("contradiction: %s", err)
					return
				}

				progressed = true
			}

			if !progressed {
				break
			}
		}

		printBanner("derived facts")
		fmt.Print(bb.InfoDump())
	},
}

func printBanner(title string) {
	width := 72
	if w, _, err := term.GetSize(0); err == nil && w > 0 {
		width = w
	}

	if width > 100 {
		width = 100
	}

	color.Cyan(strings.Repeat("-", width))
	color.Cyan(title)
	color.Cyan(strings.Repeat("-", width))
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
