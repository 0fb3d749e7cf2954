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
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zeta1999/polya/pkg/blackboard"
	"github.com/zeta1999/polya/pkg/exprparse"
)

var assertCmd = &cobra.Command{
	Use:   "assert [flags] expr...",
	Short: "Assert a sequence of comparisons and report the first contradiction, if any.",
	Long: `Assert each given comparison expression, in order, against a single shared Blackboard.
Exits non-zero and reports the offending comparison the moment a contradiction is derived.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("no comparisons given")
			os.Exit(1)
		}

		bb := blackboard.New()

		for _, raw := range args {
			c, err := exprparse.Parse(raw)
			if err != nil {
				color.Red("parse error in %q: %s", raw, err)
				os.Exit(2)
			}

			if err := bb.AssertComparison(c); err != nil {
				var ce *blackboard.ContradictionError

				if errors.As(err, &ce) {
					color.Red("contradiction after asserting %q:", raw)
					fmt.Println(ce.Error())
					os.Exit(1)
				}

				color.Red("internal error asserting %q: %s", raw, err)
				os.Exit(3)
			}
		}

		color.Green("consistent: no contradiction derived from %d assertion(s)", len(args))

		if GetFlag(cmd, "dump") {
			fmt.Println()
			fmt.Print(bb.InfoDump())
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(assertCmd)
	assertCmd.Flags().Bool("dump", false, "print every known fact after the final assertion")
}
