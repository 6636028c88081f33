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
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/scenicrp/roster/internal/engine/config"
	"github.com/scenicrp/roster/internal/engine/consts"
	"github.com/scenicrp/roster/internal/engine/errs"
	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/internal/engine/repo"
	httpx "github.com/scenicrp/roster/pkg/http"
	"github.com/scenicrp/roster/pkg/http/jwt"
	"github.com/scenicrp/roster/pkg/id"
	"github.com/scenicrp/roster/pkg/log"
)

// Resolution is a principal's effective authorization: the permission
// group, the matrix-derived capability set, and the rank ceiling consumed
// by every rank-assigning operation.
type Resolution struct {
	Group consts.PermissionGroup
	Perms consts.PermissionConfig
	// CeilingIndex is the highest community-rank index the principal may
	// assign. -1 means no rank is assignable; head administration gets the
	// top of the catalog.
	CeilingIndex int
}

// AllowsRankIndex reports whether the principal may assign the given
// catalog index.
func (r Resolution) AllowsRankIndex(idx int) bool {
	return idx >= 0 && idx <= r.CeilingIndex
}

// Resolve computes the effective permission group for a principal. It is a
// pure function of (account, linked member, configuration snapshot); absence
// of data always degrades to the least-privileged group, never an error.
//
// Resolution order, first applicable wins:
//  1. no account, or account disabled -> Member
//  2. explicit group override -> the override, verbatim
//  3. linked active member -> the member's rank mapped through the snapshot
//  4. otherwise -> Member
func Resolve(account *model.Account, linked *model.Member, snap config.Snapshot) Resolution {
	group := consts.GroupMember
	ceiling := -1

	switch {
	case account == nil || !account.Enabled:
		// least privilege, regardless of override or link
	case account.GroupOverride != "":
		group = account.GroupOverride
	case linked != nil:
		group = snap.GroupFor(linked.CommunityRank)
	}

	if account != nil && account.Enabled && linked != nil {
		ceiling = consts.RankIndex(linked.CommunityRank)
	}
	if group == consts.GroupHeadAdmin {
		ceiling = consts.TopRankIndex()
	}

	return Resolution{
		Group:        group,
		Perms:        snap.PermsFor(group),
		CeilingIndex: ceiling,
	}
}

type AuthService struct {
	accountRepo repo.IAccountRepository
	memberRepo  repo.IMemberRepository
	settings    config.Provider
}

func NewAuthService(accountRepo repo.IAccountRepository, memberRepo repo.IMemberRepository, settings config.Provider) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
		settings:    settings,
	}
}

// ResolveAccount looks up the account's linked member and resolves its
// effective authorization against the current configuration.
func (as *AuthService) ResolveAccount(account *model.Account) Resolution {
	snap := as.settings.Snapshot()

	var linked *model.Member
	if account != nil && account.LinkedCommunity != "" {
		m, err := as.memberRepo.GetByNumber(account.LinkedCommunity)
		if err == nil {
			linked = m
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Errorw("failed to load linked member", "communityNumber", account.LinkedCommunity, "error", err)
		}
	}

	return Resolve(account, linked, snap)
}

// Authenticate checks credentials and issues a session. Failure taxonomy:
// ErrAccountNotFound, ErrAccountDisabled, ErrBadCredential. No session is
// issued on any failure path.
func (as *AuthService) Authenticate(login *model.Login, auth httpx.Auth) (*model.LoginResp, error) {
	account, err := as.accountRepo.GetByEmail(login.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, err
	}
	if !account.Enabled {
		return nil, errs.ErrAccountDisabled
	}
	if !comparePassword(account.PasswordHash, login.Password) {
		return nil, errs.ErrBadCredential
	}

	// sign the token before touching the session store; a signing failure
	// must not leave a session row behind
	session := &model.Session{
		SessionId: id.GetUUID(),
		AccountId: account.AccountId,
	}
	token, err := jwt.GenToken(account.AccountId, session.SessionId, []byte(auth.SecretKey), auth.AccessExpire)
	if err != nil {
		log.Errorw("failed to generate session token", "accountId", account.AccountId, "error", err)
		return nil, err
	}
	if err := as.accountRepo.CreateSession(session); err != nil {
		return nil, err
	}

	if err := as.accountRepo.UpdateLastLogin(account.AccountId, time.Now()); err != nil {
		log.Warnw("failed to update last login", "accountId", account.AccountId, "error", err)
	}

	res := as.ResolveAccount(account)
	return &model.LoginResp{
		AccountId:   account.AccountId,
		DisplayName: account.DisplayName,
		Email:       account.Email,
		Token:       token,
		Group:       res.Group,
	}, nil
}

// Logout destroys the session.
func (as *AuthService) Logout(sessionId string) error {
	return as.accountRepo.DeleteSession(sessionId)
}

// SessionAccount loads the account behind a live session.
func (as *AuthService) SessionAccount(sessionId string) (*model.Account, error) {
	session, err := as.accountRepo.GetSession(sessionId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("session not found")
		}
		return nil, err
	}
	account, err := as.accountRepo.GetById(session.AccountId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func comparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
