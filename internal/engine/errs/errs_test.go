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

package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindClassification(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad field")))
	assert.Equal(t, KindCapability, KindOf(Capability("edit members")))
	assert.Equal(t, KindCeiling, KindOf(Ceiling(5, 3)))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", Ceiling(7, 2))
	assert.True(t, IsKind(wrapped, KindCeiling))
	assert.False(t, IsKind(wrapped, KindValidation))
}

func TestCredentialSentinels(t *testing.T) {
	for _, err := range []error{ErrAccountNotFound, ErrAccountDisabled, ErrBadCredential} {
		assert.True(t, IsKind(err, KindCredential))
	}
	assert.NotErrorIs(t, ErrAccountNotFound, ErrAccountDisabled)
	assert.ErrorIs(t, fmt.Errorf("login: %w", ErrBadCredential), ErrBadCredential)
}
