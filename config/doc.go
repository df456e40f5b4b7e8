// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package config holds the viper-based configuration shared by the lambdabridge binaries.
package config
