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
	"errors"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/scenicrp/roster/internal/engine/config"
	"github.com/scenicrp/roster/internal/engine/consts"
	"github.com/scenicrp/roster/internal/engine/errs"
	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/internal/engine/repo"
	"github.com/scenicrp/roster/pkg/collate"
	"github.com/scenicrp/roster/pkg/database"
	"github.com/scenicrp/roster/pkg/id"
	"github.com/scenicrp/roster/pkg/log"
	"github.com/scenicrp/roster/pkg/statemachine"
)

// maxNumberAttempts bounds community number generation. The number space is
// 1000..9999; on exhaustion the caller gets a conflict instead of a spin.
const maxNumberAttempts = 10000

// LifecycleService owns every roster mutation. All multi-row mutations run
// inside a single database transaction so the log append, the record change
// and any account side effect commit or roll back together. Transitions on
// the same community number are additionally serialized so two handlers can
// never interleave on one record.
type LifecycleService struct {
	db          database.IDatabase
	memberRepo  repo.IMemberRepository
	archiveRepo repo.IArchiveRepository
	accountRepo repo.IAccountRepository
	logRepo     repo.ILogRepository
	settings    config.Provider

	genMu sync.Mutex
	locks sync.Map // community number -> *sync.Mutex
}

// lockNumber serializes lifecycle transitions per community number.
func (ls *LifecycleService) lockNumber(number string) func() {
	v, _ := ls.locks.LoadOrStore(number, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func NewLifecycleService(db database.IDatabase, settings config.Provider) *LifecycleService {
	return &LifecycleService{
		db:          db,
		memberRepo:  repo.NewMemberRepo(db),
		archiveRepo: repo.NewArchiveRepo(db),
		accountRepo: repo.NewAccountRepo(db),
		logRepo:     repo.NewLogRepo(db),
		settings:    settings,
	}
}

// Create adds a member to the active roster with a freshly generated
// community number. Requires the add-members capability, and the requested
// community rank must sit at or below the actor's ceiling.
func (ls *LifecycleService) Create(actor Resolution, req *model.AddMemberReq) (*model.Member, error) {
	if !actor.Perms.CanAddMembers {
		return nil, errs.Capability("add members")
	}
	snap := ls.settings.Snapshot()
	if err := validateMemberFields(req.Name, req.Department, req.CommunityRank); err != nil {
		return nil, err
	}
	if err := checkCeiling(actor, req.CommunityRank); err != nil {
		return nil, err
	}

	// number generation and insert are one critical section; the unique
	// index would catch a race, but never surface it to callers
	ls.genMu.Lock()
	defer ls.genMu.Unlock()

	number, err := ls.generateCommunityNumber()
	if err != nil {
		return nil, err
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = snap.DefaultStatus
	}

	m := &model.Member{
		Name:            strings.TrimSpace(req.Name),
		CommunityNumber: number,
		UnitNumber:      strings.TrimSpace(req.UnitNumber),
		Department:      strings.TrimSpace(req.Department),
		Rank:            strings.TrimSpace(req.Rank),
		CommunityRank:   req.CommunityRank,
		Subdivisions:    strings.TrimSpace(req.Subdivisions),
		Status:          status,
		DiscordId:       strings.TrimSpace(req.DiscordId),
		WebsiteLink:     strings.TrimSpace(req.WebsiteLink),
		TeamspeakUid:    strings.TrimSpace(req.TeamspeakUid),
	}
	if err := ls.memberRepo.Create(m); err != nil {
		return nil, err
	}

	log.Infow("member created", "communityNumber", m.CommunityNumber, "name", m.Name, "department", m.Department)
	return m, nil
}

// Edit replaces every mutable field of an active member. The community
// number is never touched. A ceiling rejection leaves the record unchanged.
func (ls *LifecycleService) Edit(actor Resolution, number string, req *model.EditMemberReq) (*model.Member, error) {
	if !actor.Perms.CanEditMembers {
		return nil, errs.Capability("edit members")
	}
	defer ls.lockNumber(number)()

	m, err := ls.getMember(number)
	if err != nil {
		return nil, err
	}
	if err := validateMemberFields(req.Name, req.Department, req.CommunityRank); err != nil {
		return nil, err
	}
	if err := checkCeiling(actor, req.CommunityRank); err != nil {
		return nil, err
	}
	if err := ensureTransition(statemachine.MemberActive, statemachine.MemberActive); err != nil {
		return nil, err
	}

	m.Name = strings.TrimSpace(req.Name)
	m.UnitNumber = strings.TrimSpace(req.UnitNumber)
	m.Department = strings.TrimSpace(req.Department)
	m.Rank = strings.TrimSpace(req.Rank)
	m.CommunityRank = req.CommunityRank
	m.Subdivisions = strings.TrimSpace(req.Subdivisions)
	if status := strings.TrimSpace(req.Status); status != "" {
		m.Status = status
	}
	m.DiscordId = strings.TrimSpace(req.DiscordId)
	m.WebsiteLink = strings.TrimSpace(req.WebsiteLink)
	m.TeamspeakUid = strings.TrimSpace(req.TeamspeakUid)

	if err := ls.memberRepo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Transfer moves a member to another department. The transfer log entry and
// the member update commit in one transaction; neither is observable without
// the other.
func (ls *LifecycleService) Transfer(actor Resolution, number string, req *model.TransferReq) (*model.Member, error) {
	if !actor.Perms.CanTransferDepts {
		return nil, errs.Capability("transfer departments")
	}
	defer ls.lockNumber(number)()

	m, err := ls.getMember(number)
	if err != nil {
		return nil, err
	}
	to := strings.TrimSpace(req.ToDepartment)
	if to == "" {
		return nil, errs.Validation("destination department must not be empty")
	}
	rank := m.CommunityRank
	if req.CommunityRank != "" {
		rank = req.CommunityRank
	}
	if err := validateMemberFields(m.Name, to, rank); err != nil {
		return nil, err
	}
	if err := checkCeiling(actor, rank); err != nil {
		return nil, err
	}
	if err := ensureTransition(statemachine.MemberActive, statemachine.MemberActive); err != nil {
		return nil, err
	}

	entry := &model.TransferLog{
		LogId:           id.GetUUID(),
		Name:            m.Name,
		CommunityNumber: m.CommunityNumber,
		FromDepartment:  m.Department,
		ToDepartment:    to,
		Reason:          req.Reason,
		Detail:          strings.TrimSpace(req.Detail),
	}

	err = ls.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := ls.logRepo.WithTx(tx).AppendTransfer(entry); err != nil {
			return err
		}
		m.Department = to
		m.UnitNumber = strings.TrimSpace(req.UnitNumber)
		m.Rank = strings.TrimSpace(req.Rank)
		m.CommunityRank = rank
		m.Subdivisions = strings.TrimSpace(req.Subdivisions)
		if status := strings.TrimSpace(req.Status); status != "" {
			m.Status = status
		}
		return ls.memberRepo.WithTx(tx).Save(m)
	})
	if err != nil {
		return nil, err
	}

	log.Infow("member transferred", "communityNumber", m.CommunityNumber, "from", entry.FromDepartment, "to", entry.ToDepartment)
	return m, nil
}

// Discharge removes a member from the active roster into the archive.
// Detail is mandatory; an empty detail aborts before any write. The removal
// log append, the archive insert, the roster delete and the optional account
// disable are one transaction.
func (ls *LifecycleService) Discharge(actor Resolution, number string, req *model.DischargeReq) (*model.ArchivedMember, error) {
	if !actor.Perms.CanRemoveMembers {
		return nil, errs.Capability("remove members")
	}
	detail := strings.TrimSpace(req.Detail)
	if detail == "" {
		return nil, errs.Validation("discharge detail must not be empty")
	}
	defer ls.lockNumber(number)()

	m, err := ls.getMember(number)
	if err != nil {
		return nil, err
	}
	if err := ensureTransition(statemachine.MemberActive, statemachine.MemberArchived); err != nil {
		return nil, err
	}

	snap := ls.settings.Snapshot()
	snapshot := *m
	// archive rows own their ids; a freed roster id may be reissued
	snapshot.BaseModel = model.BaseModel{}
	am := &model.ArchivedMember{
		Member:          snapshot,
		DischargeReason: req.Reason,
		DischargeDetail: detail,
		DischargeDate:   time.Now(),
	}
	entry := &model.RemovalLog{
		LogId:           id.GetUUID(),
		Name:            m.Name,
		CommunityNumber: m.CommunityNumber,
		Department:      m.Department,
		Reason:          req.Reason,
		Detail:          detail,
	}

	err = ls.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := ls.logRepo.WithTx(tx).AppendRemoval(entry); err != nil {
			return err
		}
		if err := ls.archiveRepo.WithTx(tx).Create(am); err != nil {
			return err
		}
		if err := ls.memberRepo.WithTx(tx).Delete(m.CommunityNumber); err != nil {
			return err
		}
		if snap.DisableAccountOnDischarge {
			return ls.accountRepo.WithTx(tx).SetEnabledByCommunity(m.CommunityNumber, false)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infow("member discharged", "communityNumber", m.CommunityNumber, "reason", req.Reason)
	return am, nil
}

// Restore moves an archived member back onto the active roster under its
// original community number with the discharge metadata stripped. Linked
// accounts are re-enabled unconditionally; a restored member deserves a
// working login regardless of the discharge-time policy.
func (ls *LifecycleService) Restore(actor Resolution, number string) (*model.Member, error) {
	if !actor.Perms.CanAccessArchive {
		return nil, errs.Capability("access archive")
	}
	defer ls.lockNumber(number)()

	am, err := ls.archiveRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrArchiveNotFound
		}
		return nil, err
	}
	if err := ensureTransition(statemachine.MemberArchived, statemachine.MemberActive); err != nil {
		return nil, err
	}

	m := am.Member
	m.BaseModel = model.BaseModel{}
	err = ls.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := ls.memberRepo.WithTx(tx).Create(&m); err != nil {
			return err
		}
		if err := ls.archiveRepo.WithTx(tx).Delete(number); err != nil {
			return err
		}
		return ls.accountRepo.WithTx(tx).SetEnabledByCommunity(number, true)
	})
	if err != nil {
		return nil, err
	}

	log.Infow("member restored", "communityNumber", number)
	return &m, nil
}

// UpdateHours records a member's patrol time for the current month. A nil
// LastPatrolDate leaves the stored date untouched.
func (ls *LifecycleService) UpdateHours(actor Resolution, number string, req *model.HoursReq) (*model.Member, error) {
	if !actor.Perms.CanEditMembers {
		return nil, errs.Capability("edit members")
	}
	if req.Hours < 0 {
		return nil, errs.Validation("hours must not be negative")
	}
	defer ls.lockNumber(number)()

	m, err := ls.getMember(number)
	if err != nil {
		return nil, err
	}
	m.CurrentMonthHours = req.Hours
	if req.LastPatrolDate != nil {
		m.LastPatrolDate = req.LastPatrolDate
	}
	if err := ls.memberRepo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ActivityCheck sweeps the roster against the per-department hour
// requirements: members below their department's requirement are marked
// Inactive, members back at or above it are marked Active. Statuses such as
// LOA and Suspended are exempt, as are departments without a requirement.
func (ls *LifecycleService) ActivityCheck(actor Resolution) (*model.ActivityReport, error) {
	if !actor.Perms.CanEditMembers {
		return nil, errs.Capability("edit members")
	}
	snap := ls.settings.Snapshot()

	members, err := ls.memberRepo.List(model.MemberFilter{})
	if err != nil {
		return nil, err
	}

	report := &model.ActivityReport{}
	for i := range members {
		m := &members[i]
		required, ok := snap.DepartmentRequirements[m.Department]
		if !ok || consts.IsActivityExempt(m.Status) {
			continue
		}
		if m.Status != consts.StatusActive && m.Status != consts.StatusInactive {
			continue
		}
		report.Checked++

		want := consts.StatusActive
		if m.CurrentMonthHours < required {
			want = consts.StatusInactive
		}
		if m.Status == want {
			continue
		}
		m.Status = want
		if err := ls.memberRepo.Save(m); err != nil {
			return nil, err
		}
		if want == consts.StatusInactive {
			report.MarkedInactive = append(report.MarkedInactive, m.CommunityNumber)
		} else {
			report.MarkedActive = append(report.MarkedActive, m.CommunityNumber)
		}
	}

	if len(report.MarkedInactive) > 0 || len(report.MarkedActive) > 0 {
		log.Infow("activity check applied",
			"checked", report.Checked,
			"markedInactive", len(report.MarkedInactive),
			"markedActive", len(report.MarkedActive))
	}
	return report, nil
}

// Get loads a single active member.
func (ls *LifecycleService) Get(number string) (*model.Member, error) {
	return ls.getMember(number)
}

// List returns the active roster in default order: community rank
// descending, then department ascending, then name ascending. Department and
// name compare numerically and case-insensitively.
func (ls *LifecycleService) List(filter model.MemberFilter) ([]model.Member, error) {
	members, err := ls.memberRepo.List(filter)
	if err != nil {
		return nil, err
	}
	SortMembers(members)
	return members, nil
}

// Archive returns the archived roster, most recent discharge first.
func (ls *LifecycleService) Archive() ([]model.ArchivedMember, error) {
	return ls.archiveRepo.List()
}

// Removals returns the removal log, most recent first.
func (ls *LifecycleService) Removals() ([]model.RemovalLog, error) {
	return ls.logRepo.ListRemovals()
}

// Transfers returns the transfer log, most recent first.
func (ls *LifecycleService) Transfers() ([]model.TransferLog, error) {
	return ls.logRepo.ListTransfers()
}

// SortMembers applies the default roster ordering in place.
func SortMembers(members []model.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		ri, rj := consts.RankIndex(members[i].CommunityRank), consts.RankIndex(members[j].CommunityRank)
		if ri != rj {
			return ri > rj
		}
		if c := collate.Compare(members[i].Department, members[j].Department); c != 0 {
			return c < 0
		}
		return collate.Compare(members[i].Name, members[j].Name) < 0
	})
}

func (ls *LifecycleService) getMember(number string) (*model.Member, error) {
	m, err := ls.memberRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

// generateCommunityNumber draws 4-digit numbers until one is free in both
// the roster and the archive. Archived numbers stay reserved so a restore
// can never collide with a later creation.
func (ls *LifecycleService) generateCommunityNumber() (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		number := strconv.Itoa(1000 + rand.IntN(9000))
		active, err := ls.memberRepo.NumberExists(number)
		if err != nil {
			return "", err
		}
		if active {
			continue
		}
		archived, err := ls.archiveRepo.NumberExists(number)
		if err != nil {
			return "", err
		}
		if !archived {
			return number, nil
		}
	}
	return "", errs.Conflict("community number space exhausted")
}

func validateMemberFields(name, department string, rank consts.CommunityRank) error {
	if strings.TrimSpace(name) == "" {
		return errs.Validation("member name must not be empty")
	}
	if strings.TrimSpace(department) == "" {
		return errs.Validation("department must not be empty")
	}
	if !consts.IsValidRank(rank) {
		return errs.Validation("unknown community rank: %s", rank)
	}
	return nil
}

func checkCeiling(actor Resolution, rank consts.CommunityRank) error {
	idx := consts.RankIndex(rank)
	if !actor.AllowsRankIndex(idx) {
		return errs.Ceiling(idx, actor.CeilingIndex)
	}
	return nil
}

func ensureTransition(from, to statemachine.MemberState) error {
	sm := statemachine.NewMemberStateMachine(from)
	if err := sm.TransitTo(to); err != nil {
		return errs.Validation("illegal lifecycle transition: %v", err)
	}
	return nil
}
