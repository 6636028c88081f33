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

// MemberState is the lifecycle state of a roster record.
type MemberState string

const (
	MemberActive   MemberState = "ACTIVE"
	MemberArchived MemberState = "ARCHIVED"
)

// NewMemberStateMachine creates the lifecycle FSM for a roster record.
// Discharge moves ACTIVE to ARCHIVED; restore moves it back. Create, edit
// and transfer all stay within ACTIVE.
func NewMemberStateMachine(current MemberState) *StateMachine[MemberState] {
	sm := NewWithState(current)

	sm.Allow(MemberActive, MemberActive, MemberArchived).
		Allow(MemberArchived, MemberActive)

	return sm
}
