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


package gc

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// GC runs registered tasks periodically. A task never overlaps itself, a tick
// that finds the previous run of a task still going skips that task.
type GC interface {
	// Add registers a task under key, replacing any task with the same key.
	Add(key string, task Task)

	// Run runs the task of key in the background.
	Run(key string) error

	// RunAll runs every task in the background.
	RunAll()

	// Serve runs every task once, then on each interval until Stop.
	Serve()

	// Stop cancels running tasks and stops serving.
	Stop()
}

type entry struct {
	task    Task
	running *atomic.Bool
}

type gc struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	interval time.Duration
	timeout  time.Duration
	logger   Logger

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// Option is a functional option for configuring the GC
type Option func(g *gc)

// WithInterval set the interval for GC collection
func WithInterval(interval time.Duration) Option {
	return func(g *gc) {
		g.interval = interval
	}
}

// WithTimeout set the timeout for GC collection
func WithTimeout(timeout time.Duration) Option {
	return func(g *gc) {
		g.timeout = timeout
	}
}

// WithLogger set the logger for GC
func WithLogger(logger Logger) Option {
	return func(g *gc) {
		g.logger = logger
	}
}

func New(options ...Option) (GC, error) {
	ctx, cancel := context.WithCancel(context.Background())
	g := &gc{
		entries: map[string]*entry{},
		logger:  &gcLogger{},
		ctx:     ctx,
		cancel:  cancel,
	}

	for _, opt := range options {
		opt(g)
	}

	if err := g.validate(); err != nil {
		cancel()
		return nil, err
	}

	return g, nil
}

func (g *gc) Add(key string, task Task) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries[key] = &entry{task: task, running: atomic.NewBool(false)}
}

func (g *gc) Run(key string) error {
	g.mu.RLock()
	e, ok := g.entries[key]
	g.mu.RUnlock()
	if !ok {
		return errors.New("can not find the task")
	}

	go g.run(key, e)
	return nil
}

func (g *gc) RunAll() {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for key, e := range g.entries {
		go g.run(key, e)
	}
}

func (g *gc) Serve() {
	go func() {
		g.RunAll()

		tick := time.NewTicker(g.interval)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				g.RunAll()
			case <-g.ctx.Done():
				g.logger.Infof("GC stop")
				return
			}
		}
	}()
}

func (g *gc) Stop() {
	g.stopOnce.Do(g.cancel)
}

func (g *gc) validate() error {
	if g.interval <= 0 {
		return errors.New("interval value is greater than 0")
	}

	if g.timeout <= 0 {
		return errors.New("timeout value is greater than 0")
	}

	if g.timeout >= g.interval {
		return errors.New("timeout value needs to be less than the interval value")
	}

	return nil
}

func (g *gc) run(key string, e *entry) {
	if !e.running.CAS(false, true) {
		g.logger.Infof("%s GC skipped, previous run in progress", key)
		return
	}
	defer e.running.Store(false)

	ctx, cancel := context.WithTimeout(g.ctx, g.timeout)
	defer cancel()

	g.logger.Infof("%s GC start", key)
	n, err := e.task.RunGC(ctx)
	if err != nil {
		g.logger.Errorf("%s GC error: %v", key, err)
		return
	}

	g.logger.Infof("%s GC done, %d collected", key, n)
}
