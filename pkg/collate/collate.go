// Copyright 2025 Scenic Roster Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package collate wraps golang.org/x/text collation for roster ordering:
// case-insensitive and numeric-aware, so "2L-9" sorts before "2L-15".
package collate

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	once sync.Once
	coll *collate.Collator
	mu   sync.Mutex
)

func collator() *collate.Collator {
	once.Do(func() {
		coll = collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
	})
	return coll
}

// Compare returns -1, 0 or 1 comparing a and b under the roster collation.
func Compare(a, b string) int {
	// the collator buffers are not safe for concurrent use
	mu.Lock()
	defer mu.Unlock()
	return collator().CompareString(a, b)
}
