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

package prediction

import (
	"context"
	"math"

	"github.com/magsolution/sat/internal/satcodes"
	"github.com/magsolution/sat/internal/saterrors"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/pkg/classifier"
)

const (
	// Object and Action identify predictions in the permission table.
	Object = "predictions"
	Action = "create"

	// DefaultThreshold splits continuous scores into labels.
	DefaultThreshold = 0.5
)

// RiskLabel is the categorical prediction outcome.
type RiskLabel string

const (
	RiskHigh RiskLabel = "Alto"
	RiskLow  RiskLabel = "Bajo"
)

// Principal is the authenticated caller.
type Principal struct {
	ID   uint
	Name string
	Role string
}

// Result is the response body of a prediction.
type Result struct {
	Risk        RiskLabel `json:"riesgo"`
	Probability *float64  `json:"probability,omitempty"`
}

// Authorizer answers whether role may perform action on object.
type Authorizer interface {
	Allowed(role, object, action string) bool
}

// AuthorizerFunc adapts a function to Authorizer.
type AuthorizerFunc func(role, object, action string) bool

func (f AuthorizerFunc) Allowed(role, object, action string) bool {
	return f(role, object, action)
}

// ModelSource returns the active classifier, nil when none is loaded.
type ModelSource interface {
	Load() classifier.Classifier
}

type Option func(p *Pipeline)

// WithThreshold sets the score threshold, a score strictly above it is high risk.
func WithThreshold(threshold float64) Option {
	return func(p *Pipeline) {
		p.threshold = threshold
	}
}

// Pipeline authorizes, validates and runs one prediction.
type Pipeline struct {
	models     ModelSource
	authorizer Authorizer
	threshold  float64
}

func New(models ModelSource, authorizer Authorizer, options ...Option) *Pipeline {
	p := &Pipeline{
		models:     models,
		authorizer: authorizer,
		threshold:  DefaultThreshold,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Predict checks, in order, the principal, its permission, the presence of a
// model and the payload. The classifier is only invoked when all pass.
func (p *Pipeline) Predict(ctx context.Context, principal *Principal, payload map[string]any) (*Result, error) {
	if principal == nil {
		return nil, saterrors.New(satcodes.Unauthorized, "missing principal")
	}

	if !p.authorizer.Allowed(principal.Role, Object, Action) {
		return nil, saterrors.Newf(satcodes.Forbidden, "role %s cannot %s %s", principal.Role, Action, Object)
	}

	c := p.models.Load()
	if c == nil {
		return nil, saterrors.New(satcodes.ModelUnavailable, "no classifier loaded")
	}

	req, err := ParseRequest(payload)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, saterrors.Wrap(satcodes.PredictionFailed, err, "request canceled")
	}

	out, err := c.Predict(req.Vector())
	if err != nil {
		return nil, saterrors.Wrap(satcodes.PredictionFailed, err, "inference failed")
	}

	result, err := p.label(out)
	if err != nil {
		return nil, err
	}

	logger.WithUser(principal.ID, principal.Role).Debugf("predicted %s for %#v", result.Risk, req)
	return result, nil
}

func (p *Pipeline) label(out classifier.Output) (*Result, error) {
	if out.Scored {
		if math.IsNaN(out.Score) || out.Score < 0 || out.Score > 1 {
			return nil, saterrors.Newf(satcodes.PredictionFailed, "score %v out of range", out.Score)
		}

		// The label compares the raw score, so 0.504 is Alto with probability 0.5.
		probability := math.Round(out.Score*100) / 100
		risk := RiskLow
		if out.Score > p.threshold {
			risk = RiskHigh
		}

		return &Result{Risk: risk, Probability: &probability}, nil
	}

	switch out.Class {
	case 1:
		return &Result{Risk: RiskHigh}, nil
	case 0:
		return &Result{Risk: RiskLow}, nil
	default:
		return nil, saterrors.Newf(satcodes.PredictionFailed, "unknown class %d", out.Class)
	}
}
