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
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionRetrained = "retrained"
	ActionActivated = "activated"
)

// Event is an update notification of a record.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Resource   string          `json:"resource"`
	ResourceID uint            `json:"resource_id"`
	Data       json.RawMessage `json:"data,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// New returns an event of type <resource>.<action>, data is encoded as json.
func New(resource, action string, resourceID uint, data any) (*Event, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}

		raw = b
	}

	return &Event{
		ID:         uuid.NewString(),
		Type:       fmt.Sprintf("%s.%s", resource, action),
		Resource:   resource,
		ResourceID: resourceID,
		Data:       raw,
		CreatedAt:  time.Now(),
	}, nil
}

// Publisher publishes update events.
//
//go:generate mockgen -destination mocks/events_mock.go -source event.go -package mocks
type Publisher interface {
	// Publish delivers the event to every subscriber, delivery is best effort.
	Publish(ctx context.Context, event *Event) error
}
