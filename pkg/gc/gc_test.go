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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/magsolution/sat/pkg/gc/mocks"
)

func TestGC_New(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		interval time.Duration
		expect   func(t *testing.T, err error)
	}{
		{
			name:     "new GC instance succeeded",
			timeout:  1 * time.Second,
			interval: 2 * time.Second,
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:     "new GC without interval",
			timeout:  1 * time.Second,
			interval: 0,
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "interval value is greater than 0")
			},
		},
		{
			name:     "new GC without timeout",
			timeout:  0,
			interval: 2 * time.Second,
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "timeout value is greater than 0")
			},
		},
		{
			name:     "timeout is greater than interval",
			timeout:  2 * time.Second,
			interval: 1 * time.Second,
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "timeout value needs to be less than the interval value")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			_, err := New(WithInterval(tc.interval), WithTimeout(tc.timeout), WithLogger(mocks.NewMockLogger(ctl)))
			tc.expect(t, err)
		})
	}
}

func TestGC_Run(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		mock   func(ml *mocks.MockLoggerMockRecorder, mt *mocks.MockTaskMockRecorder, done chan struct{})
		expect func(t *testing.T, err error, done chan struct{})
	}{
		{
			name: "run task",
			key:  "foo",
			mock: func(ml *mocks.MockLoggerMockRecorder, mt *mocks.MockTaskMockRecorder, done chan struct{}) {
				gomock.InOrder(
					ml.Infof("%s GC start", "foo").Times(1),
					mt.RunGC(gomock.Any()).DoAndReturn(func(ctx context.Context) (int64, error) {
						_, ok := ctx.Deadline()
						if !ok {
							return 0, errors.New("missing deadline")
						}
						return 3, nil
					}).Times(1),
					ml.Infof("%s GC done, %d collected", "foo", int64(3)).Do(func(string, ...any) { close(done) }).Times(1),
				)
			},
			expect: func(t *testing.T, err error, done chan struct{}) {
				assert := assert.New(t)
				assert.NoError(err)
				select {
				case <-done:
				case <-time.After(5 * time.Second):
					t.Fatal("task did not finish")
				}
			},
		},
		{
			name: "task failed",
			key:  "foo",
			mock: func(ml *mocks.MockLoggerMockRecorder, mt *mocks.MockTaskMockRecorder, done chan struct{}) {
				err := errors.New("bar")
				gomock.InOrder(
					ml.Infof("%s GC start", "foo").Times(1),
					mt.RunGC(gomock.Any()).Return(int64(0), err).Times(1),
					ml.Errorf("%s GC error: %v", "foo", err).Do(func(string, ...any) { close(done) }).Times(1),
				)
			},
			expect: func(t *testing.T, err error, done chan struct{}) {
				assert := assert.New(t)
				assert.NoError(err)
				select {
				case <-done:
				case <-time.After(5 * time.Second):
					t.Fatal("task did not finish")
				}
			},
		},
		{
			name: "task not found",
			key:  "baz",
			mock: func(ml *mocks.MockLoggerMockRecorder, mt *mocks.MockTaskMockRecorder, done chan struct{}) {},
			expect: func(t *testing.T, err error, done chan struct{}) {
				assert := assert.New(t)
				assert.EqualError(err, "can not find the task")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			mockLogger := mocks.NewMockLogger(ctl)
			mockTask := mocks.NewMockTask(ctl)
			done := make(chan struct{})
			tc.mock(mockLogger.EXPECT(), mockTask.EXPECT(), done)

			g, err := New(WithInterval(time.Minute), WithTimeout(time.Second), WithLogger(mockLogger))
			if err != nil {
				t.Fatal(err)
			}

			g.Add("foo", mockTask)
			tc.expect(t, g.Run(tc.key), done)
		})
	}
}

func TestGC_Serve(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockLogger := mocks.NewMockLogger(ctl)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof("GC stop").AnyTimes()

	ran := make(chan struct{}, 1)
	g, err := New(WithInterval(10*time.Millisecond), WithTimeout(5*time.Millisecond), WithLogger(mockLogger))
	if err != nil {
		t.Fatal(err)
	}

	g.Add("foo", TaskFunc(func(ctx context.Context) (int64, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return 0, nil
	}))

	g.Serve()
	defer g.Stop()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestGC_StopTwice(t *testing.T) {
	g, err := New(WithInterval(time.Minute), WithTimeout(time.Second))
	if err != nil {
		t.Fatal(err)
	}

	g.Serve()
	assert.NotPanics(t, func() {
		g.Stop()
		g.Stop()
	})
}

func TestGC_RunSkipsOverlap(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockLogger := mocks.NewMockLogger(ctl)
	skipped := make(chan struct{})
	mockLogger.EXPECT().Infof("%s GC start", "foo").Times(1)
	mockLogger.EXPECT().Infof("%s GC skipped, previous run in progress", "foo").Do(func(string, ...any) { close(skipped) }).Times(1)
	finished := make(chan struct{})
	mockLogger.EXPECT().Infof("%s GC done, %d collected", "foo", int64(1)).Do(func(string, ...any) { close(finished) }).Times(1)

	started := make(chan struct{})
	release := make(chan struct{})
	g, err := New(WithInterval(time.Minute), WithTimeout(10*time.Second), WithLogger(mockLogger))
	if err != nil {
		t.Fatal(err)
	}

	g.Add("foo", TaskFunc(func(ctx context.Context) (int64, error) {
		close(started)
		<-release
		return 1, nil
	}))

	assert.NoError(t, g.Run("foo"))
	<-started
	assert.NoError(t, g.Run("foo"))

	select {
	case <-skipped:
	case <-time.After(5 * time.Second):
		t.Fatal("overlapping run was not skipped")
	}

	close(release)
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("task did not finish")
	}
}

func TestGC_StopCancelsTasks(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockLogger := mocks.NewMockLogger(ctl)
	logged := make(chan struct{})
	mockLogger.EXPECT().Infof("%s GC start", "foo").Times(1)
	mockLogger.EXPECT().Errorf("%s GC error: %v", "foo", context.Canceled).Do(func(string, ...any) { close(logged) }).Times(1)

	canceled := make(chan error, 1)
	g, err := New(WithInterval(time.Minute), WithTimeout(10*time.Second), WithLogger(mockLogger))
	if err != nil {
		t.Fatal(err)
	}

	started := make(chan struct{})
	g.Add("foo", TaskFunc(func(ctx context.Context) (int64, error) {
		close(started)
		<-ctx.Done()
		canceled <- ctx.Err()
		return 0, ctx.Err()
	}))

	assert.NoError(t, g.Run("foo"))
	<-started
	g.Stop()

	select {
	case err := <-canceled:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("task was not canceled")
	}
	<-logged
}
