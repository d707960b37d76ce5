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

package manager

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"

	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/cache"
	"github.com/magsolution/sat/manager/config"
	"github.com/magsolution/sat/manager/database"
	"github.com/magsolution/sat/manager/events"
	"github.com/magsolution/sat/manager/metrics"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/router"
	"github.com/magsolution/sat/manager/service"
	"github.com/magsolution/sat/pkg/classifier"
	"github.com/magsolution/sat/pkg/gc"
	"github.com/magsolution/sat/pkg/objectstorage"
)

const (
	gracefulStopTimeout = 10 * time.Second

	// loadModelTimeout bounds loading the active model at startup.
	loadModelTimeout = time.Minute

	// personalAccessTokenGCKey names the token expiry task.
	personalAccessTokenGCKey = "personal-access-token"
)

type Server struct {
	// Server configuration
	config *config.Config

	// REST server
	restServer *http.Server

	// Metrics server
	metricsServer *http.Server

	// Event bus
	bus *events.Bus

	// MQTT sink, nil when disabled
	mqttSink *events.MQTTSink

	// Database connections
	database *database.Database

	// GC tasks
	gc gc.GC
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{config: cfg}

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	s.database = db

	// Initialize enforcer
	enforcer, err := rbac.NewEnforcer(db.DB)
	if err != nil {
		return nil, err
	}

	if err := database.SeedAdminRole(context.Background(), db.DB, enforcer); err != nil {
		return nil, err
	}

	// Initialize cache
	cache := cache.New(cfg, db.RDB)

	// Initialize object storage
	objectStorage, err := objectstorage.New(cfg.ObjectStorage)
	if err != nil {
		return nil, err
	}

	// Initialize event bus
	hub := events.NewHub(cfg.Events.Websocket)
	var busOptions []events.Option
	if cfg.Events.Redis.Enable && db.RDB != nil {
		busOptions = append(busOptions, events.WithRedis(db.RDB, cfg.Events.Redis.Channel))
	}

	if cfg.Events.MQTT.Enable {
		sink, err := events.NewMQTTSink(cfg.Events.MQTT)
		if err != nil {
			return nil, err
		}

		s.mqttSink = sink
		busOptions = append(busOptions, events.WithSink(sink))
	}
	s.bus = events.NewBus(hub, busOptions...)

	// Initialize REST service and load the serving model
	classifiers := classifier.NewHolder()
	restService := service.New(cfg, db, cache, enforcer, objectStorage, classifiers, s.bus)

	ctx, cancel := context.WithTimeout(context.Background(), loadModelTimeout)
	defer cancel()
	if err := restService.LoadActiveModel(ctx); err != nil {
		return nil, err
	}

	// Initialize garbage collector
	s.gc, err = gc.New(gc.WithInterval(cfg.GC.Interval), gc.WithTimeout(cfg.GC.Timeout))
	if err != nil {
		return nil, err
	}

	s.gc.Add(personalAccessTokenGCKey, gc.TaskFunc(restService.ExpirePersonalAccessTokens))

	// Initialize REST server
	router, err := router.Init(cfg, restService, enforcer, hub)
	if err != nil {
		return nil, err
	}
	s.restServer = &http.Server{
		Addr:    cfg.Server.REST.Addr,
		Handler: router,
	}

	// Initialize metrics server
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s, nil
}

func (s *Server) Serve() error {
	// Started metrics server
	if s.metricsServer != nil {
		go func() {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if errors.Is(err, http.ErrServerClosed) {
					return
				}
				logger.Fatalf("metrics server closed unexpect: %+v", err)
			}
		}()
	}

	// Started gc
	s.gc.Serve()
	logger.Info("started gc")

	// Started event bus
	go func() {
		logger.Info("started event bus")
		if err := s.bus.Serve(); err != nil {
			logger.Errorf("event bus closed unexpect: %+v", err)
		}
	}()

	// Started REST server
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Errorf("rest server closed unexpect: %+v", err)
		return err
	}

	return nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
	defer cancel()

	var result error

	// Stop REST server
	if err := s.restServer.Shutdown(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	logger.Info("rest server closed under request")

	// Stop metrics server
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			result = multierror.Append(result, err)
		}
		logger.Info("metrics server closed under request")
	}

	// Stop gc
	s.gc.Stop()
	logger.Info("gc closed under request")

	// Stop event bus
	if err := s.bus.Stop(); err != nil {
		result = multierror.Append(result, err)
	}
	if s.mqttSink != nil {
		s.mqttSink.Close()
	}
	logger.Info("event bus closed under request")

	// Close database
	if err := s.database.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}
