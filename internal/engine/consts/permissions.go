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

package consts

// PermissionGroup is the coarse authorization tier derived from an account's
// linked community rank (or an explicit override). It is deliberately not
// the same ordering as CommunityRank.
type PermissionGroup string

const (
	GroupMember          PermissionGroup = "Member"
	GroupStaffInTraining PermissionGroup = "StaffInTraining"
	GroupStaff           PermissionGroup = "Staff"
	GroupAdministration  PermissionGroup = "Administration"
	GroupHeadAdmin       PermissionGroup = "HeadAdministration"
)

// PermissionGroups lists the tiers in ascending order of privilege.
var PermissionGroups = []PermissionGroup{
	GroupMember,
	GroupStaffInTraining,
	GroupStaff,
	GroupAdministration,
	GroupHeadAdmin,
}

// IsValidGroup reports whether g is a known permission group.
func IsValidGroup(g PermissionGroup) bool {
	for _, pg := range PermissionGroups {
		if pg == g {
			return true
		}
	}
	return false
}

// PermissionConfig is the fixed capability set granted to a permission group.
type PermissionConfig struct {
	// roster operations
	CanAddMembers    bool `mapstructure:"canAddMembers" json:"canAddMembers"`
	CanEditMembers   bool `mapstructure:"canEditMembers" json:"canEditMembers"`
	CanRemoveMembers bool `mapstructure:"canRemoveMembers" json:"canRemoveMembers"`
	CanMoveWithin    bool `mapstructure:"canMoveWithinDept" json:"canMoveWithinDept"`
	CanTransferDepts bool `mapstructure:"canTransferDepts" json:"canTransferDepts"`

	// governance
	CanManageRanks       bool `mapstructure:"canManageRanks" json:"canManageRanks"`
	CanManagePermissions bool `mapstructure:"canManagePermissions" json:"canManagePermissions"`
	CanManageUsers       bool `mapstructure:"canManageUsers" json:"canManageUsers"`
	CanAccessArchive     bool `mapstructure:"canAccessArchive" json:"canAccessArchive"`
	CanManageSettings    bool `mapstructure:"canManageSettings" json:"canManageSettings"`
}

// DefaultPermissions is the shipped capability matrix. It can be overridden
// per group from the configuration file.
func DefaultPermissions() map[PermissionGroup]PermissionConfig {
	return map[PermissionGroup]PermissionConfig{
		GroupMember: {},
		GroupStaffInTraining: {
			CanAddMembers:  true,
			CanEditMembers: true,
			CanMoveWithin:  true,
		},
		GroupStaff: {
			CanAddMembers:    true,
			CanEditMembers:   true,
			CanRemoveMembers: true,
			CanMoveWithin:    true,
			CanTransferDepts: true,
			CanAccessArchive: true,
		},
		GroupAdministration: {
			CanAddMembers:    true,
			CanEditMembers:   true,
			CanRemoveMembers: true,
			CanMoveWithin:    true,
			CanTransferDepts: true,
			CanManageRanks:   true,
			// permission governance stays with head administration
			CanManagePermissions: false,
			CanManageUsers:       true,
			CanAccessArchive:     true,
		},
		GroupHeadAdmin: {
			CanAddMembers:        true,
			CanEditMembers:       true,
			CanRemoveMembers:     true,
			CanMoveWithin:        true,
			CanTransferDepts:     true,
			CanManageRanks:       true,
			CanManagePermissions: true,
			CanManageUsers:       true,
			CanAccessArchive:     true,
			CanManageSettings:    true,
		},
	}
}

// DefaultRankToGroup maps each community rank onto its default permission
// group. The mapping is configuration, not code: operators can remap ranks
// without touching the resolver.
func DefaultRankToGroup() map[CommunityRank]PermissionGroup {
	return map[CommunityRank]PermissionGroup{
		RankRecruit:       GroupMember,
		RankMember:        GroupMember,
		RankStaffTraining: GroupStaffInTraining,
		RankStaff:         GroupStaff,
		RankSeniorStaff:   GroupStaff,
		RankJuniorAdmin:   GroupAdministration,
		RankAdmin:         GroupAdministration,
		RankSeniorAdmin:   GroupAdministration,
		RankHeadAdmin:     GroupHeadAdmin,
	}
}
