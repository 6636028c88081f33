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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenicrp/roster/internal/engine/config"
	"github.com/scenicrp/roster/internal/engine/consts"
	"github.com/scenicrp/roster/internal/engine/errs"
	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/internal/engine/repo"
)

func TestCreateGeneratesUniqueFourDigitNumber(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		m := mustCreateMember(t, ls, admin, "Member", "Police Department", consts.RankMember)
		require.Len(t, m.CommunityNumber, 4)
		assert.GreaterOrEqual(t, m.CommunityNumber, "1000")
		assert.LessOrEqual(t, m.CommunityNumber, "9999")
		assert.False(t, seen[m.CommunityNumber], "community number issued twice: %s", m.CommunityNumber)
		seen[m.CommunityNumber] = true
	}
}

func TestCreateDefaultsStatusFromCatalog(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)

	m := mustCreateMember(t, ls, headAdminActor(settings.Snapshot()), "New Hire", "Fire Department", consts.RankRecruit)
	assert.Equal(t, consts.DefaultStatus, m.Status)
	assert.Equal(t, "SRP-"+m.CommunityNumber, m.CommunityId())
}

func TestCreateRequiresCapabilityAndValidFields(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	snap := settings.Snapshot()

	_, err := ls.Create(memberActor(snap), &model.AddMemberReq{
		Name: "X", Department: "Fire Department", CommunityRank: consts.RankRecruit,
	})
	assert.True(t, errs.IsKind(err, errs.KindCapability))

	admin := headAdminActor(snap)
	_, err = ls.Create(admin, &model.AddMemberReq{
		Name: "  ", Department: "Fire Department", CommunityRank: consts.RankRecruit,
	})
	assert.True(t, errs.IsKind(err, errs.KindValidation))

	_, err = ls.Create(admin, &model.AddMemberReq{
		Name: "X", Department: "Fire Department", CommunityRank: "Archduke",
	})
	assert.True(t, errs.IsKind(err, errs.KindValidation))
}

func TestCeilingRejectionLeavesMemberUnchanged(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	snap := settings.Snapshot()
	admin := headAdminActor(snap)

	m := mustCreateMember(t, ls, admin, "Quinn", "Police Department", consts.RankMember)

	// Staff sits at catalog index 3; Senior Staff (4) is within its own
	// ceiling, Junior Administration (5) is not.
	staff := linkedActor(snap, consts.RankStaff)
	require.Equal(t, consts.RankIndex(consts.RankStaff), staff.CeilingIndex)

	_, err := ls.Edit(staff, m.CommunityNumber, &model.EditMemberReq{
		Name:          m.Name,
		Department:    m.Department,
		CommunityRank: consts.RankJuniorAdmin,
	})
	require.True(t, errs.IsKind(err, errs.KindCeiling))

	got, err := ls.Get(m.CommunityNumber)
	require.NoError(t, err)
	assert.Equal(t, consts.RankMember, got.CommunityRank)

	// at the ceiling is allowed
	_, err = ls.Edit(staff, m.CommunityNumber, &model.EditMemberReq{
		Name:          m.Name,
		Department:    m.Department,
		CommunityRank: consts.RankStaff,
	})
	assert.NoError(t, err)
}

func TestSeniorStaffCeilingScenario(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	snap := settings.Snapshot()
	admin := headAdminActor(snap)

	m := mustCreateMember(t, ls, admin, "Pat", "Fire Department", consts.RankRecruit)

	// Senior Staff sits at catalog index 4 and resolves to the Staff group
	actor := linkedActor(snap, consts.RankSeniorStaff)
	require.Equal(t, consts.GroupStaff, actor.Group)
	require.Equal(t, 4, actor.CeilingIndex)

	// index 6 (Administration) is above the ceiling
	_, err := ls.Edit(actor, m.CommunityNumber, &model.EditMemberReq{
		Name:          m.Name,
		Department:    m.Department,
		CommunityRank: consts.RankAdmin,
	})
	assert.True(t, errs.IsKind(err, errs.KindCeiling))

	// index 3 (Staff) is below it
	_, err = ls.Edit(actor, m.CommunityNumber, &model.EditMemberReq{
		Name:          m.Name,
		Department:    m.Department,
		CommunityRank: consts.RankStaff,
	})
	assert.NoError(t, err)
}

func TestHeadAdminCeilingIsUnbounded(t *testing.T) {
	settings := newTestSettings(config.RosterConfig{})
	snap := settings.Snapshot()

	actor := linkedActor(snap, consts.RankHeadAdmin)
	assert.Equal(t, consts.TopRankIndex(), actor.CeilingIndex)
	assert.True(t, actor.AllowsRankIndex(consts.RankIndex(consts.RankHeadAdmin)))
}

func TestTransferAppendsLogAndUpdatesAtomically(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m := mustCreateMember(t, ls, admin, "Reese", "Police Department", consts.RankStaff)

	got, err := ls.Transfer(admin, m.CommunityNumber, &model.TransferReq{
		ToDepartment: "Fire Department",
		Reason:       consts.TransferCareer,
		Detail:       "requested move",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fire Department", got.Department)
	// rank carries over when the request leaves it empty
	assert.Equal(t, consts.RankStaff, got.CommunityRank)

	logs, err := ls.Transfers()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Police Department", logs[0].FromDepartment)
	assert.Equal(t, "Fire Department", logs[0].ToDepartment)
	assert.Equal(t, m.CommunityNumber, logs[0].CommunityNumber)
	assert.False(t, logs[0].Date.IsZero())
}

func TestTransferRejectionWritesNothing(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m := mustCreateMember(t, ls, admin, "Vale", "Police Department", consts.RankStaff)

	_, err := ls.Transfer(admin, m.CommunityNumber, &model.TransferReq{ToDepartment: "  "})
	require.True(t, errs.IsKind(err, errs.KindValidation))
	assert.Zero(t, countTransfers(t, db))

	got, err := ls.Get(m.CommunityNumber)
	require.NoError(t, err)
	assert.Equal(t, "Police Department", got.Department)
}

func TestDischargeRequiresDetail(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m := mustCreateMember(t, ls, admin, "Ash", "Fire Department", consts.RankMember)

	_, err := ls.Discharge(admin, m.CommunityNumber, &model.DischargeReq{
		Reason: consts.RemovalOther,
		Detail: "   ",
	})
	require.True(t, errs.IsKind(err, errs.KindValidation))

	// nothing written, member still active
	assert.Zero(t, countRemovals(t, db))
	_, err = repo.NewArchiveRepo(db).GetByNumber(m.CommunityNumber)
	assert.Error(t, err)
	_, err = ls.Get(m.CommunityNumber)
	assert.NoError(t, err)
}

func TestDischargeMovesToArchiveAndLogs(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m := mustCreateMember(t, ls, admin, "Drew", "Fire Department", consts.RankStaff)

	am, err := ls.Discharge(admin, m.CommunityNumber, &model.DischargeReq{
		Reason: consts.RemovalProperResign,
		Detail: "two weeks notice",
	})
	require.NoError(t, err)
	assert.Equal(t, m.CommunityNumber, am.Member.CommunityNumber)
	assert.Equal(t, consts.RemovalProperResign, am.DischargeReason)
	assert.False(t, am.DischargeDate.IsZero())

	_, err = ls.Get(m.CommunityNumber)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))

	logs, err := ls.Removals()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "two weeks notice", logs[0].Detail)
}

func TestDischargeDisablesLinkedAccountPerPolicy(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{
		Auth: config.RosterAuth{DisableAccountOnDischarge: true},
	})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m := mustCreateMember(t, ls, admin, "Sam", "Fire Department", consts.RankStaff)

	accountRepo := repo.NewAccountRepo(db)
	require.NoError(t, accountRepo.Create(&model.Account{
		AccountId:       "acc-sam",
		Email:           "sam@example.com",
		PasswordHash:    "x",
		Enabled:         true,
		LinkedCommunity: m.CommunityNumber,
	}))

	_, err := ls.Discharge(admin, m.CommunityNumber, &model.DischargeReq{
		Reason: consts.RemovalInactive,
		Detail: "no patrols for 90 days",
	})
	require.NoError(t, err)

	acc, err := accountRepo.GetById("acc-sam")
	require.NoError(t, err)
	assert.False(t, acc.Enabled)

	// restore brings the record back and re-enables the login
	restored, err := ls.Restore(admin, m.CommunityNumber)
	require.NoError(t, err)
	assert.Equal(t, m.CommunityNumber, restored.CommunityNumber)

	acc, err = accountRepo.GetById("acc-sam")
	require.NoError(t, err)
	assert.True(t, acc.Enabled)
}

func TestDischargeRestoreRoundTrip(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m, err := ls.Create(admin, &model.AddMemberReq{
		Name:          "Rowan",
		UnitNumber:    "A-12",
		Department:    "Police Department",
		Rank:          "Sergeant",
		CommunityRank: consts.RankSeniorStaff,
		Subdivisions:  "SWAT",
		DiscordId:     "rowan#1234",
	})
	require.NoError(t, err)

	_, err = ls.Discharge(admin, m.CommunityNumber, &model.DischargeReq{
		Reason: consts.RemovalRetirement,
		Detail: "20 years of service",
	})
	require.NoError(t, err)

	restored, err := ls.Restore(admin, m.CommunityNumber)
	require.NoError(t, err)

	// identity and every roster field survive; discharge metadata is gone
	assert.Equal(t, m.CommunityNumber, restored.CommunityNumber)
	assert.Equal(t, "Rowan", restored.Name)
	assert.Equal(t, "A-12", restored.UnitNumber)
	assert.Equal(t, "Sergeant", restored.Rank)
	assert.Equal(t, consts.RankSeniorStaff, restored.CommunityRank)
	assert.Equal(t, "SWAT", restored.Subdivisions)
	assert.Equal(t, "rowan#1234", restored.DiscordId)

	_, err = ls.Restore(admin, m.CommunityNumber)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestArchivedNumberStaysReserved(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m := mustCreateMember(t, ls, admin, "Kai", "Fire Department", consts.RankMember)
	_, err := ls.Discharge(admin, m.CommunityNumber, &model.DischargeReq{
		Reason: consts.RemovalOther,
		Detail: "moved away",
	})
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		created := mustCreateMember(t, ls, admin, "Fresh", "Fire Department", consts.RankRecruit)
		assert.NotEqual(t, m.CommunityNumber, created.CommunityNumber)
	}
}

func TestListDefaultOrdering(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	mustCreateMember(t, ls, admin, "beta", "Unit 10", consts.RankMember)
	mustCreateMember(t, ls, admin, "Alpha", "Unit 2", consts.RankMember)
	mustCreateMember(t, ls, admin, "Crest", "Unit 2", consts.RankMember)
	mustCreateMember(t, ls, admin, "Zed", "Anywhere", consts.RankHeadAdmin)

	members, err := ls.List(model.MemberFilter{})
	require.NoError(t, err)
	require.Len(t, members, 4)

	// rank desc first
	assert.Equal(t, "Zed", members[0].Name)
	// then department asc with numeric collation: Unit 2 before Unit 10
	assert.Equal(t, "Unit 2", members[1].Department)
	assert.Equal(t, "Unit 2", members[2].Department)
	assert.Equal(t, "Unit 10", members[3].Department)
	// then name asc, case-insensitively
	assert.Equal(t, "Alpha", members[1].Name)
	assert.Equal(t, "Crest", members[2].Name)
}

func TestListFilter(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	mustCreateMember(t, ls, admin, "A", "Police Department", consts.RankMember)
	mustCreateMember(t, ls, admin, "B", "Fire Department", consts.RankStaff)

	members, err := ls.List(model.MemberFilter{Department: "Fire Department"})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "B", members[0].Name)
}

func TestEditNeverTouchesCommunityNumber(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m := mustCreateMember(t, ls, admin, "Jo", "Police Department", consts.RankMember)

	got, err := ls.Edit(admin, m.CommunityNumber, &model.EditMemberReq{
		Name:          "Joanna",
		Department:    "Fire Department",
		CommunityRank: consts.RankStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, m.CommunityNumber, got.CommunityNumber)
	assert.Equal(t, "Joanna", got.Name)
}

func TestUpdateHours(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	m := mustCreateMember(t, ls, admin, "Jo", "Police Department", consts.RankMember)
	require.Zero(t, m.CurrentMonthHours)
	require.Nil(t, m.LastPatrolDate)

	patrol := time.Date(2026, time.August, 30, 21, 0, 0, 0, time.UTC)
	got, err := ls.UpdateHours(admin, m.CommunityNumber, &model.HoursReq{Hours: 12.5, LastPatrolDate: &patrol})
	require.NoError(t, err)
	assert.Equal(t, 12.5, got.CurrentMonthHours)
	require.NotNil(t, got.LastPatrolDate)
	assert.True(t, got.LastPatrolDate.Equal(patrol))

	// hours alone; the patrol date stays
	got, err = ls.UpdateHours(admin, m.CommunityNumber, &model.HoursReq{Hours: 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.CurrentMonthHours)
	require.NotNil(t, got.LastPatrolDate)

	stored, err := ls.Get(m.CommunityNumber)
	require.NoError(t, err)
	assert.Equal(t, 3.0, stored.CurrentMonthHours)

	_, err = ls.UpdateHours(admin, m.CommunityNumber, &model.HoursReq{Hours: -1})
	assert.True(t, errs.IsKind(err, errs.KindValidation))

	_, err = ls.UpdateHours(memberActor(settings.Snapshot()), m.CommunityNumber, &model.HoursReq{Hours: 1})
	assert.True(t, errs.IsKind(err, errs.KindCapability))

	_, err = ls.UpdateHours(admin, "0000", &model.HoursReq{Hours: 1})
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestActivityCheckFlipsStatusPerDepartmentRequirement(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{
		DepartmentRequirements: map[string]float64{"Police Department": 10},
	})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	short := mustCreateMember(t, ls, admin, "Short", "Police Department", consts.RankMember)
	enough := mustCreateMember(t, ls, admin, "Enough", "Police Department", consts.RankMember)
	unchecked := mustCreateMember(t, ls, admin, "Unchecked", "Fire Department", consts.RankMember)

	_, err := ls.UpdateHours(admin, short.CommunityNumber, &model.HoursReq{Hours: 4})
	require.NoError(t, err)
	_, err = ls.UpdateHours(admin, enough.CommunityNumber, &model.HoursReq{Hours: 10})
	require.NoError(t, err)

	report, err := ls.ActivityCheck(admin)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, []string{short.CommunityNumber}, report.MarkedInactive)
	assert.Empty(t, report.MarkedActive)

	got, err := ls.Get(short.CommunityNumber)
	require.NoError(t, err)
	assert.Equal(t, "Inactive", got.Status)
	got, err = ls.Get(enough.CommunityNumber)
	require.NoError(t, err)
	assert.Equal(t, "Active", got.Status)
	got, err = ls.Get(unchecked.CommunityNumber)
	require.NoError(t, err)
	assert.Equal(t, "Active", got.Status)

	// recovered hours flip the member back to Active on the next sweep
	_, err = ls.UpdateHours(admin, short.CommunityNumber, &model.HoursReq{Hours: 11})
	require.NoError(t, err)
	report, err = ls.ActivityCheck(admin)
	require.NoError(t, err)
	assert.Equal(t, []string{short.CommunityNumber}, report.MarkedActive)

	_, err = ls.ActivityCheck(memberActor(settings.Snapshot()))
	assert.True(t, errs.IsKind(err, errs.KindCapability))
}

func TestActivityCheckSkipsExemptStatuses(t *testing.T) {
	db := newTestDB(t)
	settings := newTestSettings(config.RosterConfig{
		DepartmentRequirements: map[string]float64{"Police Department": 10},
	})
	ls := NewLifecycleService(db, settings)
	admin := headAdminActor(settings.Snapshot())

	for _, status := range []string{"LOA", "Reserve", "Training", "Suspended"} {
		m, err := ls.Create(admin, &model.AddMemberReq{
			Name:          "On " + status,
			Department:    "Police Department",
			CommunityRank: consts.RankMember,
			Status:        status,
		})
		require.NoError(t, err)

		report, err := ls.ActivityCheck(admin)
		require.NoError(t, err)
		assert.Empty(t, report.MarkedInactive)

		got, err := ls.Get(m.CommunityNumber)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
}
