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

package classifier

import (
	"go.uber.org/atomic"
)

// Meta describes where the held classifier came from.
type Meta struct {
	ModelID uint
	Version string
	Type    string
}

type entry struct {
	classifier Classifier
	meta       Meta
}

// Holder publishes the active classifier to concurrent readers.
// A nil classifier means no model is loaded.
type Holder struct {
	v atomic.Value
}

func NewHolder() *Holder {
	h := &Holder{}
	h.v.Store(&entry{})
	return h
}

// Load returns the active classifier or nil.
func (h *Holder) Load() Classifier {
	return h.load().classifier
}

// Meta returns the metadata of the active classifier.
func (h *Holder) Meta() (Meta, bool) {
	e := h.load()
	return e.meta, e.classifier != nil
}

// Store replaces the active classifier.
func (h *Holder) Store(c Classifier, meta Meta) {
	h.v.Store(&entry{classifier: c, meta: meta})
}

// Clear unloads the active classifier.
func (h *Holder) Clear() {
	h.v.Store(&entry{})
}

func (h *Holder) load() *entry {
	e, ok := h.v.Load().(*entry)
	if !ok || e == nil {
		return &entry{}
	}

	return e
}
