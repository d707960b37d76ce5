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
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/magsolution/sat/manager/config"
)

var mockWebsocketConfig = config.WebsocketConfig{
	WriteTimeout: time.Second,
	PingInterval: time.Second,
	BufferSize:   4,
}

type sinkFunc func(ctx context.Context, event *Event) error

func (f sinkFunc) Publish(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r) // nolint: errcheck
	}))

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatal(err)
	}

	// Wait for the hub to register the client.
	assert.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)
	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		action   string
		data     any
		expect   func(t *testing.T, event *Event, err error)
	}{
		{
			name:     "event with data",
			resource: "equipments",
			action:   ActionCreated,
			data:     map[string]any{"name": "pump"},
			expect: func(t *testing.T, event *Event, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("equipments.created", event.Type)
				assert.Equal("equipments", event.Resource)
				assert.Equal(uint(1), event.ResourceID)
				assert.JSONEq(`{"name":"pump"}`, string(event.Data))
				assert.NotEmpty(event.ID)
			},
		},
		{
			name:     "event without data",
			resource: "models",
			action:   ActionRetrained,
			expect: func(t *testing.T, event *Event, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("models.retrained", event.Type)
				assert.Nil(event.Data)
			},
		},
		{
			name:     "data can not be encoded",
			resource: "models",
			action:   ActionCreated,
			data:     make(chan int),
			expect: func(t *testing.T, event *Event, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Nil(event)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			event, err := New(tc.resource, tc.action, 1, tc.data)
			tc.expect(t, event, err)
		})
	}
}

func TestHub_Broadcast(t *testing.T) {
	assert := assert.New(t)
	hub := NewHub(mockWebsocketConfig)
	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	event, err := New("equipments", ActionUpdated, 3, nil)
	assert.NoError(err)
	hub.Broadcast(event)

	conn.SetReadDeadline(time.Now().Add(time.Second)) // nolint: errcheck
	_, message, err := conn.ReadMessage()
	assert.NoError(err)

	received := &Event{}
	assert.NoError(json.Unmarshal(message, received))
	assert.Equal(event.ID, received.ID)
	assert.Equal("equipments.updated", received.Type)
	assert.Equal(uint(3), received.ResourceID)
}

func TestHub_Close(t *testing.T) {
	assert := assert.New(t)
	hub := NewHub(mockWebsocketConfig)
	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	hub.Close()
	assert.Equal(0, hub.Len())

	conn.SetReadDeadline(time.Now().Add(time.Second)) // nolint: errcheck
	_, _, err := conn.ReadMessage()
	assert.Error(err)
}

func TestBus_Publish(t *testing.T) {
	tests := []struct {
		name   string
		sinks  []Sink
		expect func(t *testing.T, conn *websocket.Conn, err error)
	}{
		{
			name: "publish to hub without redis",
			expect: func(t *testing.T, conn *websocket.Conn, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				conn.SetReadDeadline(time.Now().Add(time.Second)) // nolint: errcheck
				_, message, err := conn.ReadMessage()
				assert.NoError(err)
				assert.Contains(string(message), "spare-parts.deleted")
			},
		},
		{
			name: "sink fails",
			sinks: []Sink{
				sinkFunc(func(ctx context.Context, event *Event) error {
					return errors.New("foo")
				}),
			},
			expect: func(t *testing.T, conn *websocket.Conn, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "foo")

				conn.SetReadDeadline(time.Now().Add(time.Second)) // nolint: errcheck
				_, message, err := conn.ReadMessage()
				assert.NoError(err)
				assert.Contains(string(message), "spare-parts.deleted")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hub := NewHub(mockWebsocketConfig)
			conn, cleanup := dialHub(t, hub)
			defer cleanup()

			var options []Option
			for _, sink := range tc.sinks {
				options = append(options, WithSink(sink))
			}
			bus := NewBus(hub, options...)

			event, err := New("spare-parts", ActionDeleted, 2, nil)
			assert.NoError(t, err)
			tc.expect(t, conn, bus.Publish(context.Background(), event))
		})
	}
}

func TestBus_ServeWithoutRedis(t *testing.T) {
	assert := assert.New(t)
	bus := NewBus(NewHub(mockWebsocketConfig))

	done := make(chan error)
	go func() {
		done <- bus.Serve()
	}()

	assert.NoError(bus.Stop())
	assert.NoError(bus.Stop())
	select {
	case err := <-done:
		assert.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("bus did not stop")
	}
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "magsolution/events/equipments", Topic("magsolution/events", "equipments"))
}
