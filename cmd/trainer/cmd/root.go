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
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/magsolution/sat/cmd/dependency"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/pkg/objectstorage"
	"github.com/magsolution/sat/pkg/satpath"
	"github.com/magsolution/sat/trainer"
	"github.com/magsolution/sat/trainer/config"
	"github.com/magsolution/sat/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "the offline trainer of magsolution",
	Long: `trainer generates or reads a sensor dataset, trains a failure risk classifier,
and writes the model artifact with its evaluation report. The artifact can be
uploaded to the object storage bucket read by the manager, or used as the
manager bootstrap artifact.`,
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

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Initialize satpath.
		d, err := initSatpath(&cfg.Server)
		if err != nil {
			return err
		}

		if cfg.Upload.ObjectStorage.Name == objectstorage.ServiceNameFilesystem && cfg.Upload.ObjectStorage.BaseDir == "" {
			cfg.Upload.ObjectStorage.BaseDir = d.DataDir()
		}

		rotateConfig := logger.LogRotateConfig{
			MaxSize:    cfg.Server.LogMaxSize,
			MaxAge:     cfg.Server.LogMaxAge,
			MaxBackups: cfg.Server.LogMaxBackups,
		}

		// Initialize logger.
		if err := logger.InitTrainer(cfg.Verbose, cfg.Console, d.LogDir(), rotateConfig); err != nil {
			return fmt.Errorf("init trainer logger: %w", err)
		}

		return runTrainer(ctx, d)
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
	// Initialize default trainer config.
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

func runTrainer(ctx context.Context, d satpath.Satpath) error {
	logger.Infof("version:\n%s", version.Version())

	ff := dependency.InitMonitor(cfg.PProfPort, cfg.Telemetry)
	defer ff()

	t, err := trainer.New(cfg, d)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	dependency.SetupQuitSignalHandler(func() {
		cancel()
		t.Stop()
	})

	result, err := t.Run(ctx)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))
	return nil
}
