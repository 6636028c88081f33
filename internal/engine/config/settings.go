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
	"sync"

	"github.com/scenicrp/roster/internal/engine/consts"
)

// RosterConfig is the file-backed roster configuration. Absent values fall
// back to the shipped defaults when a snapshot is taken.
type RosterConfig struct {
	Departments            []string                           `mapstructure:"departments"`
	StatusCatalog          []string                           `mapstructure:"statusCatalog"`
	DefaultStatus          string                             `mapstructure:"defaultStatus"`
	DepartmentRequirements map[string]float64                 `mapstructure:"departmentRequirements"`
	Auth                   RosterAuth                         `mapstructure:"auth"`
	Permissions            map[string]consts.PermissionConfig `mapstructure:"permissions"`
}

type RosterAuth struct {
	AllowInviteSignup         bool              `mapstructure:"allowInviteSignup"`
	InviteCode                string            `mapstructure:"inviteCode"`
	DisableAccountOnDischarge bool              `mapstructure:"disableAccountOnDischarge"`
	BootstrapPassword         string            `mapstructure:"bootstrapPassword"`
	RankToGroup               map[string]string `mapstructure:"rankToGroup"`
}

// Snapshot is an immutable view of the roster configuration, taken fresh on
// every engine operation. The resolver and lifecycle engine are pure
// functions of (principal, snapshot, stores); handing them a value rather
// than a shared singleton keeps resolution deterministic under reload.
type Snapshot struct {
	Departments               []string
	StatusCatalog             []string
	DefaultStatus             string
	DepartmentRequirements    map[string]float64
	AllowInviteSignup         bool
	InviteCode                string
	DisableAccountOnDischarge bool
	RankToGroup               map[consts.CommunityRank]consts.PermissionGroup
	Permissions               map[consts.PermissionGroup]consts.PermissionConfig
}

// GroupFor maps a community rank onto its permission group, degrading to
// the least-privileged group for unmapped ranks.
func (s Snapshot) GroupFor(rank consts.CommunityRank) consts.PermissionGroup {
	if g, ok := s.RankToGroup[rank]; ok {
		return g
	}
	return consts.GroupMember
}

// PermsFor returns the capability set of a permission group. Unknown groups
// carry no capabilities.
func (s Snapshot) PermsFor(group consts.PermissionGroup) consts.PermissionConfig {
	return s.Permissions[group]
}

// Provider hands out configuration snapshots. The engine depends on this
// interface so tests can pin a fixed configuration.
type Provider interface {
	Snapshot() Snapshot
}

// Settings is the hot-reloadable Provider backed by the config file.
type Settings struct {
	mu  sync.RWMutex
	cfg RosterConfig
}

func NewSettings(cfg RosterConfig) *Settings {
	return &Settings{cfg: cfg}
}

// Update swaps the underlying configuration; subsequent snapshots observe it.
func (s *Settings) Update(cfg RosterConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// Snapshot materializes the current configuration with defaults applied.
func (s *Settings) Snapshot() Snapshot {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()

	snap := Snapshot{
		Departments:               cfg.Departments,
		StatusCatalog:             cfg.StatusCatalog,
		DefaultStatus:             cfg.DefaultStatus,
		DepartmentRequirements:    cfg.DepartmentRequirements,
		AllowInviteSignup:         cfg.Auth.AllowInviteSignup,
		InviteCode:                cfg.Auth.InviteCode,
		DisableAccountOnDischarge: cfg.Auth.DisableAccountOnDischarge,
		RankToGroup:               consts.DefaultRankToGroup(),
		Permissions:               consts.DefaultPermissions(),
	}

	if len(snap.Departments) == 0 {
		snap.Departments = consts.DefaultDepartments
	}
	if len(snap.StatusCatalog) == 0 {
		snap.StatusCatalog = consts.DefaultStatusCatalog
	}
	if snap.DefaultStatus == "" {
		snap.DefaultStatus = consts.DefaultStatus
	}

	for rank, group := range cfg.Auth.RankToGroup {
		r := consts.CommunityRank(rank)
		g := consts.PermissionGroup(group)
		if consts.IsValidRank(r) && consts.IsValidGroup(g) {
			snap.RankToGroup[r] = g
		}
	}
	for group, perms := range cfg.Permissions {
		g := consts.PermissionGroup(group)
		if consts.IsValidGroup(g) {
			snap.Permissions[g] = perms
		}
	}

	return snap
}
