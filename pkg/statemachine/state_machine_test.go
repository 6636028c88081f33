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

package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberStateMachineTransitions(t *testing.T) {
	sm := NewMemberStateMachine(MemberActive)

	assert.True(t, sm.CanTransitTo(MemberActive))
	assert.True(t, sm.CanTransitTo(MemberArchived))

	require.NoError(t, sm.TransitTo(MemberArchived))
	assert.Equal(t, MemberArchived, sm.Current())

	// archived records can only come back to life
	assert.False(t, sm.CanTransitTo(MemberArchived))
	require.NoError(t, sm.TransitTo(MemberActive))
	assert.Equal(t, MemberActive, sm.Current())
}

func TestTransitToRejectsUnknownEdge(t *testing.T) {
	sm := NewWithState(MemberArchived)
	sm.Allow(MemberArchived, MemberActive)

	err := sm.TransitTo(MemberArchived)
	require.Error(t, err)
	assert.Equal(t, MemberArchived, sm.Current())
}

func TestGetValidNextStates(t *testing.T) {
	sm := NewMemberStateMachine(MemberActive)
	assert.ElementsMatch(t, []MemberState{MemberActive, MemberArchived}, sm.GetValidNextStates(MemberActive))
	assert.ElementsMatch(t, []MemberState{MemberActive}, sm.GetValidNextStates(MemberArchived))
}
