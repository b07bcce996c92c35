// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/petrolsys/fueldash/pkg/errors"
	fdsdk "github.com/petrolsys/fueldash/pkg/sdk"
)

type remotes struct {
	StationURL      string `toml:"station_url"`
	TLSVerification bool   `toml:"tls_verification"`
}

type filter struct {
	Page  string `toml:"page"`
	Limit string `toml:"limit"`
}

type config struct {
	Remotes   remotes `toml:"remotes"`
	Filter    filter  `toml:"filter"`
	RawOutput string  `toml:"raw_output"`
}

// Readable by all user groups but writeable by the user only.
const filePermission = 0o644

var (
	errReadFail      = errors.New("failed to read config file")
	errNoKey         = errors.New("no such key")
	errWritingConfig = errors.New("error in writing the updated config to file")
	errInvalidURL    = errors.New("invalid url")

	defaultConfigPath = "./config.toml"
)

func read(file string) (config, error) {
	c := config{}
	data, err := os.Open(file)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}
	defer data.Close()

	buf, err := io.ReadAll(data)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}

	if err := toml.Unmarshal(buf, &c); err != nil {
		return config{}, err
	}

	return c, nil
}

// ParseConfig reads the local TOML config, creating it with defaults on
// first use, and merges it into the SDK configuration.
func ParseConfig(sdkConf fdsdk.Config) (fdsdk.Config, error) {
	if ConfigPath == "" {
		ConfigPath = defaultConfigPath
	}

	_, err := os.Stat(ConfigPath)
	switch {
	// If the file does not exist, create it with default values.
	case os.IsNotExist(err):
		defaultConfig := config{
			Remotes: remotes{
				StationURL:      "http://localhost:8000",
				TLSVerification: false,
			},
		}
		buf, err := toml.Marshal(defaultConfig)
		if err != nil {
			return sdkConf, err
		}
		if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
			return sdkConf, errors.Wrap(errWritingConfig, err)
		}
	case err != nil:
		return sdkConf, err
	}

	config, err := read(ConfigPath)
	if err != nil {
		return sdkConf, err
	}

	if config.Filter.Page != "" {
		page, err := strconv.ParseUint(config.Filter.Page, 10, 64)
		if err != nil {
			return sdkConf, err
		}
		Page = page
	}

	if config.Filter.Limit != "" {
		limit, err := strconv.ParseUint(config.Filter.Limit, 10, 64)
		if err != nil {
			return sdkConf, err
		}
		Limit = limit
	}

	if config.RawOutput != "" {
		rawOutput, err := strconv.ParseBool(config.RawOutput)
		if err != nil {
			return sdkConf, err
		}
		RawOutput = rawOutput
	}

	if config.Remotes.StationURL != "" {
		sdkConf.StationURL = config.Remotes.StationURL
	}
	sdkConf.TLSVerification = config.Remotes.TLSVerification

	return sdkConf, nil
}

// NewConfigCmd returns the command storing params to the local TOML file.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <key> <value>",
		Short: "CLI local config",
		Long:  "Local param storage to prevent repetitive passing of flags",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := setConfigValue(args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

func setConfigValue(key, value string) error {
	if ConfigPath == "" {
		ConfigPath = defaultConfigPath
	}
	config, err := read(ConfigPath)
	if err != nil {
		return err
	}

	if key == "station_url" {
		u, err := url.Parse(value)
		if err != nil {
			return errors.Wrap(errInvalidURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
			return errInvalidURL
		}
	}

	configKeyToField := map[string]*string{
		"station_url": &config.Remotes.StationURL,
		"page":        &config.Filter.Page,
		"limit":       &config.Filter.Limit,
		"raw_output":  &config.RawOutput,
	}

	switch key {
	case "tls_verification":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		config.Remotes.TLSVerification = v
	default:
		fieldPtr, ok := configKeyToField[key]
		if !ok {
			return errNoKey
		}
		*fieldPtr = value
	}

	buf, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(ConfigPath, buf, filePermission); err != nil {
		return errors.Wrap(errWritingConfig, err)
	}

	return nil
}
