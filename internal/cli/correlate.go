/*
 * correlate.go, part of catscaling.
 *
 * Copyright 2024 The catscaling authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cli

import (
	"fmt"

	scaling "github.com/rmera/catscaling"
	"github.com/rmera/catscaling/scalplot"
	"github.com/spf13/cobra"
)

var correlatePlot string

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Print the correlation matrix of the species in the energy table",
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := loadJob()
		if err != nil {
			return err
		}
		C, err := scaling.CorrelationMatrix(j.eads)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		names := j.eads.Species()
		fmt.Fprintf(out, "%-10s", "")
		for _, n := range names {
			fmt.Fprintf(out, " %8s", n)
		}
		fmt.Fprintln(out)
		for i, n := range names {
			fmt.Fprintf(out, "%-10s", n)
			for k := range names {
				fmt.Fprintf(out, " %8.3f", C.At(i, k))
			}
			fmt.Fprintln(out)
		}
		if correlatePlot != "" {
			O := scalplot.DefaultOptions()
			O.Title = "Correlation of adsorption energies"
			return scalplot.Correlation(j.eads, O, correlatePlot)
		}
		return nil
	},
}

func init() {
	correlateCmd.Flags().StringVar(&correlatePlot, "plot", "", "draw the matrix to this file")
	rootCmd.AddCommand(correlateCmd)
}
