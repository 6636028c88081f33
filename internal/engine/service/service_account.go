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
	"strings"

	"gorm.io/gorm"

	"github.com/scenicrp/roster/internal/engine/config"
	"github.com/scenicrp/roster/internal/engine/consts"
	"github.com/scenicrp/roster/internal/engine/errs"
	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/internal/engine/repo"
	"github.com/scenicrp/roster/pkg/id"
	"github.com/scenicrp/roster/pkg/log"
)

const minPasswordLen = 8

type AccountService struct {
	accountRepo repo.IAccountRepository
	settings    config.Provider
}

func NewAccountService(accountRepo repo.IAccountRepository, settings config.Provider) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		settings:    settings,
	}
}

// CreateAccount creates an account administratively. Emails are unique
// case-insensitively; passwords are stored hashed only.
func (as *AccountService) CreateAccount(req *model.AddAccountReq) (*model.Account, error) {
	email := strings.TrimSpace(req.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if req.GroupOverride != "" && !consts.IsValidGroup(req.GroupOverride) {
		return nil, errs.Validation("unknown permission group: %s", req.GroupOverride)
	}

	exists, err := as.accountRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrEmailTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		AccountId:       id.GetUUIDWithoutDashes(),
		Email:           email,
		DisplayName:     strings.TrimSpace(req.DisplayName),
		PasswordHash:    hash,
		Enabled:         true,
		LinkedCommunity: strings.TrimSpace(req.LinkedCommunity),
		GroupOverride:   req.GroupOverride,
	}
	if err := as.accountRepo.Create(account); err != nil {
		return nil, err
	}

	log.Infow("account created", "accountId", account.AccountId, "email", account.Email)
	return account, nil
}

// Signup registers an account through the invite gate. It is refused
// outright when self-service sign-up is disabled, and the invite code, when
// configured, must match exactly.
func (as *AccountService) Signup(req *model.Signup) (*model.Account, error) {
	snap := as.settings.Snapshot()
	if !snap.AllowInviteSignup {
		return nil, errs.ErrSignupDisabled
	}
	if snap.InviteCode != "" && req.InviteCode != snap.InviteCode {
		return nil, errs.Validation("invalid invite code")
	}

	return as.CreateAccount(&model.AddAccountReq{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
}

// List returns every account. Password hashes never serialize.
func (as *AccountService) List() ([]model.Account, error) {
	return as.accountRepo.List()
}

// UpdateAccount applies the administrative mutations: relinking to another
// community number, setting or clearing the group override, and toggling the
// enabled flag. The next resolution observes the new values.
func (as *AccountService) UpdateAccount(accountId string, req *model.UpdateAccountReq) (*model.Account, error) {
	account, err := as.getAccount(accountId)
	if err != nil {
		return nil, err
	}

	if req.GroupOverride != nil && *req.GroupOverride != "" && !consts.IsValidGroup(*req.GroupOverride) {
		return nil, errs.Validation("unknown permission group: %s", *req.GroupOverride)
	}

	if req.DisplayName != nil {
		account.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.LinkedCommunity != nil {
		account.LinkedCommunity = strings.TrimSpace(*req.LinkedCommunity)
	}
	if req.GroupOverride != nil {
		account.GroupOverride = *req.GroupOverride
	}
	if req.Enabled != nil {
		account.Enabled = *req.Enabled
	}

	if err := as.accountRepo.Save(account); err != nil {
		return nil, err
	}

	log.Infow("account updated", "accountId", account.AccountId,
		"linkedCommunity", account.LinkedCommunity,
		"groupOverride", account.GroupOverride,
		"enabled", account.Enabled)
	return account, nil
}

// DeleteAccount removes an account and its sessions.
func (as *AccountService) DeleteAccount(accountId string) error {
	if _, err := as.getAccount(accountId); err != nil {
		return err
	}
	if err := as.accountRepo.Delete(accountId); err != nil {
		return err
	}
	log.Infow("account deleted", "accountId", accountId)
	return nil
}

// SetPassword replaces an account's password hash.
func (as *AccountService) SetPassword(accountId, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := as.accountRepo.UpdatePassword(accountId, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("account %s not found", accountId)
		}
		return err
	}
	return nil
}

func (as *AccountService) getAccount(accountId string) (*model.Account, error) {
	account, err := as.accountRepo.GetById(accountId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("account %s not found", accountId)
		}
		return nil, err
	}
	return account, nil
}

func validateEmail(email string) error {
	if email == "" {
		return errs.Validation("email must not be empty")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.Validation("invalid email address: %s", email)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errs.Validation("password must be at least %d characters", minPasswordLen)
	}
	return nil
}
