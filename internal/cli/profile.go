/*
 * profile.go, part of catscaling.
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

var (
	profilePredicted bool
	profilePlot      string
)

var profileCmd = &cobra.Command{
	Use:   "profile SAMPLE [SAMPLE...]",
	Short: "Print the energy profile of the reaction for some samples",
	Long: `Print the energy of each state of the reaction, relative to the initial one,
for the given samples of the energy table. With --predicted, the adsorption
energies come from the scaling relation evaluated at the descriptor values
of the sample, instead of from the table.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := loadJob()
		if err != nil {
			return err
		}
		rxn, err := j.cfg.ParseReaction()
		if err != nil {
			return fmt.Errorf("reading reaction: %w", err)
		}
		var R *scaling.EadsRelation
		if profilePredicted {
			if R, err = j.relation(); err != nil {
				return err
			}
		}
		out := cmd.OutOrStdout()
		profiles := make([][]float64, 0, len(args))
		for _, sample := range args {
			eads, err := sampleEnergies(j.eads, R, sample)
			if err != nil {
				return err
			}
			prof, err := rxn.Profile(eads)
			if err != nil {
				return fmt.Errorf("sample %s: %w", sample, err)
			}
			fmt.Fprintf(out, "%s:", sample)
			for _, e := range prof {
				fmt.Fprintf(out, " %.3f", e)
			}
			fmt.Fprintln(out)
			profiles = append(profiles, prof)
		}
		if profilePlot != "" {
			O := scalplot.DefaultOptions()
			O.Title = "Energy profile"
			return scalplot.Profile(profiles, args, O, profilePlot)
		}
		return nil
	},
}

// sampleEnergies returns the adsorption energies for sample, from the table or, if R
// is not nil, predicted by R from the descriptor values of the sample.
func sampleEnergies(E *scaling.Eads, R *scaling.EadsRelation, sample string) (map[string]float64, error) {
	ret := make(map[string]float64)
	if R == nil {
		for _, s := range E.Species() {
			if v, ok := E.Energy(sample, s); ok {
				ret[s] = v
			}
		}
		if len(ret) == 0 {
			return nil, fmt.Errorf("sample %q has no energies in the table", sample)
		}
		return ret, nil
	}
	x := make([]float64, R.Dim())
	for i, d := range R.Descriptors() {
		v, ok := E.Energy(sample, d)
		if !ok {
			return nil, fmt.Errorf("sample %q has no energy for descriptor %s: %w", sample, d, scaling.ErrMissingEnergy)
		}
		x[i] = v
	}
	for _, s := range R.Species() {
		l, _ := R.Relation(s)
		ret[s] = l.Predict(x)
	}
	return ret, nil
}

func init() {
	profileCmd.Flags().BoolVar(&profilePredicted, "predicted", false, "use energies predicted by the scaling relation")
	profileCmd.Flags().StringVar(&profilePlot, "plot", "", "draw the energy diagram to this file")
	rootCmd.AddCommand(profileCmd)
}
