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

//go:generate mockgen -destination mocks/task_mock.go -source task.go -package mocks

package gc

import "context"

// Task releases resources and reports how many it collected, ctx is done
// when the run times out or gc stops.
type Task interface {
	RunGC(ctx context.Context) (int64, error)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(ctx context.Context) (int64, error)

func (f TaskFunc) RunGC(ctx context.Context) (int64, error) {
	return f(ctx)
}
