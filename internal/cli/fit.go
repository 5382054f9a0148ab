/*
 * fit.go, part of catscaling.
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
	fitShow bool
	fitPlot string
	fitOut  string
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit scaling relations and print their R² scores",
	Long: `Fit the scaling relations described in the job file and print the
coefficient of determination of each species. The relation can be saved
(JSON, compressed if the name ends in .zst or .gz) and plotted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := loadJob()
		if err != nil {
			return err
		}
		R, err := j.relation()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if fitShow {
			fmt.Fprint(out, R.String())
		} else if err := R.WriteScores(out); err != nil {
			return err
		}
		relOut := fitOut
		if relOut == "" {
			relOut = relPath(j.cfg.RelationOut)
		}
		if relOut != "" {
			if err := scaling.SaveRelation(relOut, R); err != nil {
				return fmt.Errorf("saving relation: %w", err)
			}
			logger.Info("relation saved", zap.String("file", relOut))
		}
		if fitPlot != "" {
			O := scalplot.DefaultOptions()
			O.Title = "Scaling relations"
			if err := scalplot.Relation(j.eads, R, nil, O, fitPlot); err != nil {
				return fmt.Errorf("plotting relation: %w", err)
			}
		}
		return nil
	},
}

func init() {
	fitCmd.Flags().BoolVar(&fitShow, "show", false, "print the full coefficient table")
	fitCmd.Flags().StringVar(&fitPlot, "plot", "", "draw the relations to this file")
	fitCmd.Flags().StringVarP(&fitOut, "output", "o", "", "save the relation to this file (default: relation_out in the job file)")
	rootCmd.AddCommand(fitCmd)
}
