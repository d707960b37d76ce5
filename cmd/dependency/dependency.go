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

package dependency

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/phayes/freeport"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"

	"github.com/magsolution/sat/cmd/dependency/base"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/pkg/satpath"
)

const (
	// EnvPrefix prefixes every environment override, SAT_SERVER_REST_ADDR sets server.rest.addr.
	EnvPrefix = "sat"

	// DotEnvFile is loaded into the environment before the config when present.
	DotEnvFile = ".env"

	tracerShutdownTimeout = 5 * time.Second
)

// InitCommandAndConfig adds the common subcommands and flags to cmd and
// decodes the configuration into config before cmd runs.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	// Add common cobra commands.
	cmd.AddCommand(VersionCmd)

	if !cmd.HasParent() {
		// Bind more cobra flags.
		cobra.OnInitialize(func() { initConfig(useConfigFile, cmd.Name(), config) })

		// Add flags.
		flagSet := cmd.Flags()
		flagSet.Bool("console", false, "whether logger output records to the stdout")
		flagSet.Bool("verbose", false, "whether logger use debug level")
		flagSet.Int("pprof-port", -1, "listen port for pprof, 0 represents random port")
		flagSet.String("jaeger", "", "jaeger endpoint url, like: http://localhost:14268/api/traces")
		flagSet.String("service-name", fmt.Sprintf("%s-%s", "magsolution", cmd.Name()), "name of the service for tracer")
		flagSet.String("config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is %s, it can also be set by env var: %s",
			filepath.Join(satpath.DefaultConfigDir, cmd.Name()+".yaml"), strings.ToUpper(EnvPrefix+"_config")))

		// Bind common flags.
		if err := viper.BindPFlags(flagSet); err != nil {
			panic(fmt.Errorf("bind common flags to viper: %w", err))
		}

		// Telemetry flags live under the telemetry key.
		if err := viper.BindPFlag("telemetry.jaeger", flagSet.Lookup("jaeger")); err != nil {
			panic(fmt.Errorf("bind jaeger flag to viper: %w", err))
		}

		if err := viper.BindPFlag("telemetry.service-name", flagSet.Lookup("service-name")); err != nil {
			panic(fmt.Errorf("bind service-name flag to viper: %w", err))
		}
	}
}

// InitMonitor starts pprof and statsview when pprofPort is not negative,
// and jaeger tracing when an endpoint is set. The returned func stops them.
func InitMonitor(pprofPort int, otelOption base.TelemetryOption) func() {
	var fc = make(chan func(), 5)

	if pprofPort >= 0 {
		// Enable go pprof and statsview.
		go func() {
			if pprofPort == 0 {
				pprofPort, _ = freeport.GetFreePort()
			}

			debugAddr := fmt.Sprintf("%s:%d", net.IPv4zero.String(), pprofPort)
			viewer.SetConfiguration(viewer.WithAddr(debugAddr))

			logger.With("pprof", fmt.Sprintf("http://%s/debug/pprof", debugAddr),
				"statsview", fmt.Sprintf("http://%s/debug/statsview", debugAddr)).
				Infof("enable pprof at %s", debugAddr)

			vm := statsview.New()
			fc <- func() { vm.Stop() }
			if err := vm.Start(); err != nil {
				logger.Warnf("serve pprof error:%v", err)
			}
		}()
	}

	if otelOption.Jaeger != "" {
		if ff, err := initJaegerTracer(otelOption); err != nil {
			logger.Warnf("init jaeger tracer error: %v", err)
		} else {
			fc <- ff
		}
	}

	return func() {
		logger.Infof("do %d monitor finalizer", len(fc))
		for {
			select {
			case f := <-fc:
				f()
			default:
				return
			}
		}
	}
}

// SetupQuitSignalHandler runs handler once on the first SIGINT or SIGTERM.
func SetupQuitSignalHandler(handler func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var done bool
		for sig := range signals {
			logger.Warnf("receive %s signal", sig)
			if !done {
				done = true
				handler()
				logger.Warnf("handle signal %s finish", sig)
			}
		}
	}()
}

func initConfig(useConfigFile bool, name string, config any) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(fmt.Errorf("load %s: %w", DotEnvFile, err))
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Use config file and read once.
	if useConfigFile {
		cfgFile := viper.GetString("config")
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(satpath.DefaultConfigDir)
			viper.SetConfigName(name)
			viper.SetConfigType("yaml")
		}

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) || cfgFile != "" {
				panic(fmt.Errorf("viper read config: %w", err))
			}
		}
	}

	if err := viper.Unmarshal(config, initDecoderConfig); err != nil {
		panic(fmt.Errorf("unmarshal config to struct: %w", err))
	}
}

func initDecoderConfig(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// initJaegerTracer exports spans to a jaeger collector.
func initJaegerTracer(otelOption base.TelemetryOption) (func(), error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(otelOption.Jaeger)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(otelOption.ServiceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), tracerShutdownTimeout)
		defer cancel()

		if err := tp.Shutdown(ctx); err != nil {
			logger.Warnf("shutdown jaeger tracer error: %v", err)
		}
	}, nil
}
