/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

// signal is a synchronous change-notification source. Handlers run on the
// caller's goroutine in subscription order. Not safe for concurrent use;
// the toolkit is single-threaded by design.
type signal struct {
	subs   map[int]func()
	order  []int
	nextID int
	closed bool
}

// Subscription is the handle returned by a subscribe call. Cancel detaches
// the handler; cancelling twice, or after the source closed, is a no-op.
type Subscription struct {
	sig *signal
	id  int
}

func (s *Subscription) Cancel() {
	if s == nil || s.sig == nil {
		return
	}
	s.sig.unsubscribe(s.id)
	s.sig = nil
}

func (s *signal) subscribe(fn func()) *Subscription {
	if s.closed {
		return &Subscription{}
	}
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.order = append(s.order, id)
	return &Subscription{sig: s, id: id}
}

func (s *signal) unsubscribe(id int) {
	delete(s.subs, id)
}

func (s *signal) emit() {
	if s.closed {
		return
	}
	// iterate a snapshot so handlers may cancel during dispatch
	ids := append([]int(nil), s.order...)
	for _, id := range ids {
		if fn, ok := s.subs[id]; ok {
			fn()
		}
	}
}

// close drops every subscriber; outstanding handles become inert.
func (s *signal) close() {
	s.closed = true
	s.subs = nil
	s.order = nil
}
