// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the fueldash CLI, an administration terminal for a
// fuel-dispensing station service.
package main

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/petrolsys/fueldash/cli"
	"github.com/petrolsys/fueldash/dashboard"
	fdlog "github.com/petrolsys/fueldash/logger"
	fdsdk "github.com/petrolsys/fueldash/pkg/sdk"
)

type config struct {
	StationURL      string `env:"FD_STATION_URL"      envDefault:"http://localhost:8000"`
	LogLevel        string `env:"FD_LOG_LEVEL"        envDefault:"info"`
	MaxRetries      uint   `env:"FD_MAX_RETRIES"      envDefault:"3"`
	TLSVerification bool   `env:"FD_TLS_VERIFICATION" envDefault:"false"`
	Sides           int    `env:"FD_SIDES"            envDefault:"2"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load fueldash configuration : %s", err)
	}

	sdkConf := fdsdk.Config{
		StationURL:      cfg.StationURL,
		MaxRetries:      cfg.MaxRetries,
		TLSVerification: cfg.TLSVerification,
	}

	var rootCmd = &cobra.Command{
		Use:   "fueldash",
		Short: "Fuel station administration CLI",
		Long: "Administration terminal for a fuel-dispensing station service: " +
			"erogations, vehicles, drivers and terminal parameters",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			conf, err := cli.ParseConfig(sdkConf)
			if err != nil {
				log.Fatalf("failed to parse config: %s", err)
			}

			logger, err := fdlog.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				log.Fatalf("failed to init logger: %s", err)
			}

			s := fdsdk.NewSDK(conf)
			cli.SetSDK(s)
			cli.SetSession(dashboard.NewSession(dashboard.Config{
				SDK:      s,
				Notifier: cli.NewNotifier(cmd),
				Renderer: cli.NewRenderer(cmd),
				Logger:   logger,
				Confirm:  cli.Confirm(cmd),
				Sides:    cfg.Sides,
				PageSize: cli.Limit,
			}))
		},
	}

	rootCmd.AddCommand(cli.NewErogationsCmd())
	rootCmd.AddCommand(cli.NewVehiclesCmd())
	rootCmd.AddCommand(cli.NewDriversCmd())
	rootCmd.AddCommand(cli.NewParametersCmd())
	rootCmd.AddCommand(cli.NewHealthCmd())
	rootCmd.AddCommand(cli.NewConfigCmd())

	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.StationURL,
		"station-url",
		"s",
		sdkConf.StationURL,
		"Station service URL",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.TLSVerification,
		"tls-verification",
		"i",
		sdkConf.TLSVerification,
		"Check the TLS certificate of the station service",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.CurlFlag,
		"curl",
		"x",
		false,
		"Convert HTTP requests to curl commands",
	)

	rootCmd.PersistentFlags().UintVar(
		&sdkConf.MaxRetries,
		"retries",
		sdkConf.MaxRetries,
		"Retry budget for transient request failures",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.ConfigPath,
		"config",
		"c",
		"",
		"Config file path",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.Yes,
		"yes",
		"y",
		false,
		"Answer destructive-operation prompts affirmatively",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Page,
		"page",
		"p",
		cli.Page,
		"page query parameter",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Limit,
		"limit",
		"l",
		cli.Limit,
		"limit query parameter",
	)

	rootCmd.PersistentFlags().StringVar(
		&cli.StartTime,
		"start-time",
		"",
		"start of the erogation time range (RFC3339)",
	)

	rootCmd.PersistentFlags().StringVar(
		&cli.EndTime,
		"end-time",
		"",
		"end of the erogation time range (RFC3339)",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
