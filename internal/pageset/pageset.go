// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pageset implements a tiny append-only set of page ids.
package pageset

// Set is an append-only set of 64-bit page ids. A linear scan over a slice
// beats tree- and hash-based containers for the handful of entries a single
// article request ever sees.
type Set struct {
	ids []int64
}

// Insert adds id to the set. It returns false if the id was already present.
func (s *Set) Insert(id int64) bool {
	for _, v := range s.ids {
		if v == id {
			return false
		}
	}
	s.ids = append(s.ids, id)
	return true
}

// Len returns the number of distinct ids inserted.
func (s *Set) Len() int {
	return len(s.ids)
}
