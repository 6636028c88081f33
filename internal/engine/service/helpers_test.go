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

package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scenicrp/roster/internal/engine/bootstrap"
	"github.com/scenicrp/roster/internal/engine/config"
	"github.com/scenicrp/roster/internal/engine/consts"
	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/internal/engine/repo"
	"github.com/scenicrp/roster/pkg/database"
)

// newTestDB opens an in-memory store. A single connection keeps every
// statement on the same in-memory database.
func newTestDB(t *testing.T) database.IDatabase {
	t.Helper()
	gdb, err := database.NewDatabase(database.Database{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, bootstrap.Migrate(gdb))
	return database.NewGormDB(gdb)
}

func newTestSettings(cfg config.RosterConfig) *config.Settings {
	return config.NewSettings(cfg)
}

// headAdminActor is an actor with every capability and an unbounded ceiling.
func headAdminActor(snap config.Snapshot) Resolution {
	return Resolve(&model.Account{Enabled: true, GroupOverride: consts.GroupHeadAdmin}, nil, snap)
}

// linkedActor resolves an enabled account linked to a member of the given
// rank, so the ceiling comes from the rank index.
func linkedActor(snap config.Snapshot, rank consts.CommunityRank) Resolution {
	return Resolve(
		&model.Account{Enabled: true, LinkedCommunity: "2000"},
		&model.Member{CommunityNumber: "2000", CommunityRank: rank},
		snap,
	)
}

// memberActor is the least-privileged principal.
func memberActor(snap config.Snapshot) Resolution {
	return Resolve(nil, nil, snap)
}

func mustCreateMember(t *testing.T, ls *LifecycleService, actor Resolution, name, dept string, rank consts.CommunityRank) *model.Member {
	t.Helper()
	m, err := ls.Create(actor, &model.AddMemberReq{
		Name:          name,
		Department:    dept,
		CommunityRank: rank,
	})
	require.NoError(t, err)
	return m
}

func countRemovals(t *testing.T, db database.IDatabase) int {
	t.Helper()
	logs, err := repo.NewLogRepo(db).ListRemovals()
	require.NoError(t, err)
	return len(logs)
}

func countTransfers(t *testing.T, db database.IDatabase) int {
	t.Helper()
	logs, err := repo.NewLogRepo(db).ListTransfers()
	require.NoError(t, err)
	return len(logs)
}
