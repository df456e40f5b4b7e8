// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileFlag is the command line flag that names an explicit configuration file.
const FileFlag = "file"

// NewViper creates a Viper instance that looks for a configuration file named after the
// application in /etc/<app>, $HOME/.<app> and the working directory.  Environment variables
// prefixed with the upper-cased application name override file values, with dots in keys
// replaced by underscores.  Defaults for every Config key are registered.
func NewViper(applicationName string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(applicationName)
	v.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	v.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
	v.AddConfigPath(".")

	v.SetEnvPrefix(applicationName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// NewFlagSet creates the flags common to all binaries.  Callers may add their own before
// passing the set to ParseAndBind.
func NewFlagSet(applicationName string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(FileFlag, "f", "", "an explicit configuration file")
	fs.String(keyLogLevel, DefaultLogLevel, "the minimum log level")
	return fs
}

// ParseAndBind parses the given arguments, which exclude the program name, and binds the
// resulting flags to the Viper instance.  If arguments is nil, os.Args[1:] is used.
func ParseAndBind(v *viper.Viper, fs *pflag.FlagSet, arguments []string) error {
	if arguments == nil {
		arguments = os.Args[1:]
	}

	if err := fs.Parse(arguments); err != nil {
		return err
	}

	if f := fs.Lookup(FileFlag); f != nil {
		if file := f.Value.String(); len(file) > 0 {
			v.SetConfigFile(file)
		}
	}

	return v.BindPFlags(fs)
}

// Read loads the configuration file, if any.  A missing file is not an error unless it was
// named explicitly.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
