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
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/config"
)

const (
	// mqttConnectTimeout is the timeout of connecting the broker.
	mqttConnectTimeout = 10 * time.Second

	// mqttPublishTimeout is the timeout of a single publish.
	mqttPublishTimeout = 5 * time.Second

	// mqttDisconnectQuiesce is milliseconds given to pending work on disconnect.
	mqttDisconnectQuiesce = 250
)

// MQTTSink publishes events to <topic>/<resource> of a mqtt broker.
type MQTTSink struct {
	client mqtt.Client
	topic  string
	qos    byte
}

func NewMQTTSink(cfg config.MQTTConfig) (*MQTTSink, error) {
	options := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectTimeout(mqttConnectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.EventLogger.Warnf("mqtt connection lost: %s", err.Error())
		})

	client := mqtt.NewClient(options)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, errors.New("mqtt connect timeout")
	}

	if err := token.Error(); err != nil {
		return nil, err
	}

	logger.EventLogger.Infof("connected to mqtt broker %s", cfg.Broker)
	return &MQTTSink{
		client: client,
		topic:  cfg.Topic,
		qos:    cfg.QoS,
	}, nil
}

func (s *MQTTSink) Publish(ctx context.Context, event *Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	token := s.client.Publish(Topic(s.topic, event.Resource), s.qos, false, b)
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(mqttPublishTimeout):
		return errors.New("mqtt publish timeout")
	}
}

func (s *MQTTSink) Close() {
	s.client.Disconnect(mqttDisconnectQuiesce)
}

// Topic returns the mqtt topic of a resource.
func Topic(prefix, resource string) string {
	return fmt.Sprintf("%s/%s", prefix, resource)
}
