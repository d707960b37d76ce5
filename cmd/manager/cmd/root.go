/*
 *     Copyright 2023 The MAGSOLUTION Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/magsolution/sat/cmd/dependency"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager"
	"github.com/magsolution/sat/manager/config"
	"github.com/magsolution/sat/pkg/objectstorage"
	"github.com/magsolution/sat/pkg/satpath"
	"github.com/magsolution/sat/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "manager",
	Short: "the prediction manager of magsolution",
	Long: `manager is a long-running process and is mainly responsible
for predicting equipment failure risk, managing equipment, carbon savings
and spare parts records, and training and activating classifier models.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Convert config.
		if err := cfg.Convert(); err != nil {
			return err
		}

		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize satpath.
		d, err := initSatpath(&cfg.Server)
		if err != nil {
			return err
		}

		// Artifacts default to the data directory.
		if cfg.ObjectStorage.Name == objectstorage.ServiceNameFilesystem && cfg.ObjectStorage.BaseDir == "" {
			cfg.ObjectStorage.BaseDir = filepath.Join(d.DataDir(), "objects")
		}

		rotateConfig := logger.LogRotateConfig{
			MaxSize:    cfg.Server.LogMaxSize,
			MaxAge:     cfg.Server.LogMaxAge,
			MaxBackups: cfg.Server.LogMaxBackups,
		}

		// Initialize logger.
		if err := logger.InitManager(cfg.Verbose, cfg.Console, d.LogDir(), rotateConfig); err != nil {
			return fmt.Errorf("init manager logger: %w", err)
		}

		return runManager()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default manager config.
	cfg = config.New()

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)
}

func initSatpath(cfg *config.ServerConfig) (satpath.Satpath, error) {
	var options []satpath.Option
	if cfg.LogDir != "" {
		options = append(options, satpath.WithLogDir(cfg.LogDir))
	}

	if cfg.DataDir != "" {
		options = append(options, satpath.WithDataDir(cfg.DataDir))
	}

	return satpath.New(options...)
}

func runManager() error {
	logger.Infof("version:\n%s", version.Version())

	// Secrets stay out of the logs.
	redacted := *cfg
	redacted.Auth.JWT.Key = "******"
	redacted.Database.Mysql.Password = "******"
	redacted.Database.Postgres.Password = "******"
	redacted.ObjectStorage.SecretKey = "******"
	s, _ := yaml.Marshal(redacted)
	logger.Infof("manager configuration:\n%s", string(s))

	ff := dependency.InitMonitor(cfg.PProfPort, cfg.Telemetry)
	defer ff()

	svr, err := manager.New(cfg)
	if err != nil {
		return err
	}

	dependency.SetupQuitSignalHandler(func() {
		if err := svr.Stop(); err != nil {
			logger.Errorf("stop manager failed: %s", err.Error())
		}
	})

	return svr.Serve()
}
