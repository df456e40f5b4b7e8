// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the root zap logger.
func NewLogger(l Log) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}

	if len(l.Level) > 0 {
		level, err := zap.ParseAtomicLevel(l.Level)
		if err != nil {
			return nil, err
		}

		zc.Level = level
	}

	if len(l.OutputPaths) > 0 {
		zc.OutputPaths = l.OutputPaths
	}

	return zc.Build()
}
