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

package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/hashicorp/go-multierror"

	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/metrics"
)

// Sink receives every event published by this instance.
type Sink interface {
	Publish(ctx context.Context, event *Event) error
}

type Option func(b *Bus)

// WithRedis fans events out to every instance through a redis pub/sub channel.
func WithRedis(rdb redis.UniversalClient, channel string) Option {
	return func(b *Bus) {
		b.rdb = rdb
		b.channel = channel
	}
}

// WithSink adds a sink such as the mqtt publisher.
func WithSink(sink Sink) Option {
	return func(b *Bus) {
		b.sinks = append(b.sinks, sink)
	}
}

// Bus delivers events to the websocket hub, through redis when configured, and to the sinks.
type Bus struct {
	hub     *Hub
	rdb     redis.UniversalClient
	channel string
	sinks   []Sink

	mu       sync.Mutex
	pubsub   *redis.PubSub
	done     chan struct{}
	stopOnce sync.Once
}

func NewBus(hub *Hub, options ...Option) *Bus {
	b := &Bus{
		hub:  hub,
		done: make(chan struct{}),
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}

func (b *Bus) Publish(ctx context.Context, event *Event) error {
	logger.WithEvent(event.Type, event.Resource, event.ResourceID).Debugf("publish event %s", event.ID)
	metrics.EventCount.WithLabelValues(event.Type).Inc()

	var result error
	if b.rdb != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		// The subscriber loop of every instance, this one included, forwards it to its hub.
		if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
			result = multierror.Append(result, err)
			b.hub.Broadcast(event)
		}
	} else {
		b.hub.Broadcast(event)
	}

	for _, sink := range b.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

// Serve forwards events of the redis channel to the hub until Stop is called.
func (b *Bus) Serve() error {
	if b.rdb == nil {
		<-b.done
		return nil
	}

	pubsub := b.rdb.Subscribe(context.Background(), b.channel)
	if _, err := pubsub.Receive(context.Background()); err != nil {
		pubsub.Close()
		return err
	}

	b.mu.Lock()
	b.pubsub = pubsub
	b.mu.Unlock()

	logger.EventLogger.Infof("subscribed to redis channel %s", b.channel)
	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			event := &Event{}
			if err := json.Unmarshal([]byte(msg.Payload), event); err != nil {
				logger.EventLogger.Errorf("invalid event payload: %s", err.Error())
				continue
			}

			b.hub.Broadcast(event)
		case <-b.done:
			return nil
		}
	}
}

func (b *Bus) Stop() error {
	var err error
	b.stopOnce.Do(func() {
		close(b.done)
		b.hub.Close()

		b.mu.Lock()
		defer b.mu.Unlock()
		if b.pubsub != nil {
			err = b.pubsub.Close()
		}
	})

	return err
}
