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

var queryCmd = &cobra.Command{
	Use:   "query [flags] expr",
	Short: "Check whether a comparison is already implied by a set of assumptions.",
	Long: `Assert every --assume expression against a shared Blackboard, then report whether expr is
already known to hold, without asserting it.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("expected exactly one query expression")
			os.Exit(1)
		}

		assumptions := GetStringArrayFlag(cmd, "assume")
		bb := blackboard.New()

		for _, raw := range assumptions {
			c, err := exprparse.Parse(raw)
			if err != nil {
				color.Red("parse error in assumption %q: %s", raw, err)
				os.Exit(2)
			}

			if err := bb.AssertComparison(c); err != nil {
				var ce *blackboard.ContradictionError
				if errors.As(err, &ce) {
					color.Red("assumptions are contradictory: %s", ce.Error())
					os.Exit(1)
				}

				color.Red("internal error asserting %q: %s", raw, err)
				os.Exit(3)
			}
		}

		query, err := exprparse.Parse(args[0])
		if err != nil {
			color.Red("parse error in query %q: %s", args[0], err)
			os.Exit(2)
		}

		ok, err := bb.ImpliesComparison(query)
		if err != nil {
			color.Red("internal error evaluating %q: %s", args[0], err)
			os.Exit(3)
		}

		if ok {
			color.Green("implied")
		} else {
			color.Yellow("not implied")
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringArrayP("assume", "a", []string{}, "an assumption to assert before evaluating the query (repeatable)")
}
