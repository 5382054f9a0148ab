/*
 * volcano.go, part of catscaling.
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
	"go.uber.org/zap"
)

var (
	volcanoOut string
	volcanoRel string
)

var volcanoCmd = &cobra.Command{
	Use:   "volcano",
	Short: "Draw the volcano plot of the reaction",
	Long: `Convert the scaling relation into relations for the energy change of each
step of the reaction in the job file, evaluate the rate-determining step
over the descriptor grid, and draw it.

The relation is fitted from the energy table unless --relation gives a saved one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := loadJob()
		if err != nil {
			return err
		}
		var R *scaling.EadsRelation
		if volcanoRel != "" {
			R, err = scaling.LoadRelation(volcanoRel)
			if err == nil && len(R.Descriptors()) != len(j.cfg.Groups) {
				logger.Warn("saved relation and job file have different descriptors", zap.Strings("relation", R.Descriptors()))
			}
		} else {
			R, err = j.relation()
		}
		if err != nil {
			return err
		}
		rxn, err := j.cfg.ParseReaction()
		if err != nil {
			return fmt.Errorf("reading reaction: %w", err)
		}
		D, err := scaling.ToDeltaE(R, rxn)
		if err != nil {
			return fmt.Errorf("converting relation: %w", err)
		}
		x, y, err := j.cfg.Axes()
		if err != nil {
			return err
		}
		V, err := scaling.NewVolcano(D, x, y)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, D.String())
		ox, oy, oz := V.Optimum()
		i, _, err := D.Limiting([]float64{ox, oy})
		if err != nil {
			return err
		}
		xname, yname := V.Descriptors()
		fmt.Fprintf(out, "optimum: Eads(%s)=%.3f Eads(%s)=%.3f ΔE=%.3f eV, limiting step: %s\n", xname, ox, yname, oy, oz, rxn.Step(i))
		figure := volcanoOut
		if figure == "" {
			figure = relPath(j.cfg.Volcano.Output)
		}
		O := scalplot.DefaultOptions()
		O.Title = j.cfg.Volcano.Title
		if err := scalplot.Volcano(V, O, figure); err != nil {
			return err
		}
		logger.Info("volcano plot written", zap.String("file", figure))
		return nil
	},
}

func init() {
	volcanoCmd.Flags().StringVarP(&volcanoOut, "output", "o", "", "figure file (default: volcano.output in the job file)")
	volcanoCmd.Flags().StringVar(&volcanoRel, "relation", "", "use a saved relation instead of fitting one")
	rootCmd.AddCommand(volcanoCmd)
}
