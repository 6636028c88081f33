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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scenicrp/roster/internal/engine/consts"
)

func TestSnapshotAppliesDefaults(t *testing.T) {
	snap := NewSettings(RosterConfig{}).Snapshot()

	assert.Equal(t, consts.DefaultDepartments, snap.Departments)
	assert.Equal(t, consts.DefaultStatusCatalog, snap.StatusCatalog)
	assert.Equal(t, consts.DefaultStatus, snap.DefaultStatus)
	assert.Equal(t, consts.GroupStaff, snap.GroupFor(consts.RankStaff))
	assert.True(t, snap.PermsFor(consts.GroupHeadAdmin).CanManagePermissions)
	assert.False(t, snap.PermsFor(consts.GroupAdministration).CanManagePermissions)
}

func TestSnapshotIgnoresInvalidOverrides(t *testing.T) {
	snap := NewSettings(RosterConfig{
		Auth: RosterAuth{
			RankToGroup: map[string]string{
				"Archduke":                "HeadAdministration", // unknown rank
				string(consts.RankStaff):  "Emperor",            // unknown group
				string(consts.RankMember): string(consts.GroupStaff),
			},
		},
	}).Snapshot()

	assert.Equal(t, consts.GroupMember, snap.GroupFor("Archduke"))
	assert.Equal(t, consts.GroupStaff, snap.GroupFor(consts.RankStaff)) // default kept
	assert.Equal(t, consts.GroupStaff, snap.GroupFor(consts.RankMember))
}

func TestUpdateIsVisibleToLaterSnapshots(t *testing.T) {
	settings := NewSettings(RosterConfig{})
	before := settings.Snapshot()
	assert.False(t, before.AllowInviteSignup)

	settings.Update(RosterConfig{
		Auth: RosterAuth{AllowInviteSignup: true, InviteCode: "sesame"},
	})

	// the earlier snapshot is immutable; a fresh one sees the change
	assert.False(t, before.AllowInviteSignup)
	after := settings.Snapshot()
	assert.True(t, after.AllowInviteSignup)
	assert.Equal(t, "sesame", after.InviteCode)
}

func TestPermissionMatrixOverride(t *testing.T) {
	custom := consts.PermissionConfig{CanAddMembers: true}
	snap := NewSettings(RosterConfig{
		Permissions: map[string]consts.PermissionConfig{
			string(consts.GroupStaffInTraining): custom,
			"Emperor":                           {CanManageSettings: true},
		},
	}).Snapshot()

	assert.Equal(t, custom, snap.PermsFor(consts.GroupStaffInTraining))
	// unknown group entry dropped, unknown lookups carry nothing
	assert.Equal(t, consts.PermissionConfig{}, snap.PermsFor("Emperor"))
}
