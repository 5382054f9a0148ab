/*
 * config.go, part of catscaling.
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
	"os"

	"github.com/rmera/catscaling/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage job files",
	Long: `Manage catscaling job files.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (CATSCALING_*)
3. Job file (./catscaling.yaml or --config)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current job",
	RunE: func(cmd *cobra.Command, args []string) error {
		if f := viper.ConfigFileUsed(); f != "" {
			fmt.Fprintf(os.Stderr, "Job file: %s\n\n", f)
		}
		cfg, err := config.FromViper(viper.GetViper())
		if err != nil {
			return err
		}
		return cfg.WriteYAML(cmd.OutOrStdout())
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [FILE]",
	Short: "Write an example job file",
	Long:  `Write an example job file for the reduction of CO2 to methane (default: catscaling.yaml).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		name := "catscaling.yaml"
		if len(args) > 0 {
			name = args[0]
		}
		if _, err := os.Stat(name); err == nil && !configInitForce {
			return fmt.Errorf("job file already exists: %s (use --force to overwrite)", name)
		}
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("error creating job file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close job file: %w", closeErr)
			}
		}()
		if _, err = fmt.Fprintf(f, "# catscaling job file\n# Energies are illustrative, replace them with your own.\n\n"); err != nil {
			return err
		}
		if err = config.Default().WriteYAML(f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Job file written to %s\n", name)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
