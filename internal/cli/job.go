/*
 * job.go, part of catscaling.
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
	"path/filepath"

	scaling "github.com/rmera/catscaling"
	"github.com/rmera/catscaling/config"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// job is a loaded configuration with its energy table.
type job struct {
	cfg  *config.Config
	eads *scaling.Eads
}

// relPath resolves name relative to the directory of the job file.
func relPath(name string) string {
	if name == "" || filepath.IsAbs(name) || viper.ConfigFileUsed() == "" {
		return name
	}
	return filepath.Join(filepath.Dir(viper.ConfigFileUsed()), name)
}

func loadJob() (*job, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}
	E, err := scaling.EadsFromFile(relPath(cfg.Data))
	if err != nil {
		return nil, fmt.Errorf("loading energy table: %w", err)
	}
	logger.Debug("energy table loaded", zap.String("file", cfg.Data), zap.Int("samples", E.Len()),
		zap.Int("species", len(E.Species())), zap.Int("missing", E.Missing()))
	return &job{cfg: cfg, eads: E}, nil
}

// relation builds the scaling relation with the method in the job file.
func (j *job) relation() (*scaling.EadsRelation, error) {
	B, err := scaling.NewBuilder(j.eads)
	if err != nil {
		return nil, err
	}
	var R *scaling.EadsRelation
	switch j.cfg.Method {
	case config.Adaptive:
		R, err = B.Adaptive(j.cfg.Descriptors(), j.cfg.StepLength)
	default:
		var G *scaling.Groups
		G, err = j.cfg.ScalingGroups()
		if err != nil {
			return nil, fmt.Errorf("building groups: %w", err)
		}
		R, err = B.Traditional(G)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s relation: %w", j.cfg.Method, err)
	}
	logger.Info("scaling relation built", zap.String("method", j.cfg.Method), zap.Strings("descriptors", R.Descriptors()))
	return R, nil
}
