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

package repo

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/pkg/database"
)

type IAccountRepository interface {
	WithTx(tx *gorm.DB) IAccountRepository
	Create(a *model.Account) error
	GetById(accountId string) (*model.Account, error)
	GetByEmail(email string) (*model.Account, error)
	EmailExists(email string) (bool, error)
	List() ([]model.Account, error)
	Save(a *model.Account) error
	Delete(accountId string) error
	UpdatePassword(accountId, newPasswordHash string) error
	UpdateLastLogin(accountId string, at time.Time) error
	SetEnabledByCommunity(number string, enabled bool) error
	Count() (int64, error)

	CreateSession(s *model.Session) error
	GetSession(sessionId string) (*model.Session, error)
	DeleteSession(sessionId string) error
}

type AccountRepo struct {
	db           database.IDatabase
	accountModel *model.Account
}

func NewAccountRepo(db database.IDatabase) IAccountRepository {
	return &AccountRepo{
		db:           db,
		accountModel: &model.Account{},
	}
}

func (ar *AccountRepo) WithTx(tx *gorm.DB) IAccountRepository {
	return NewAccountRepo(database.NewGormDB(tx))
}

func (ar *AccountRepo) Create(a *model.Account) error {
	// emails are unique case-insensitively; store normalized
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return ar.db.Database().Create(a).Error
}

func (ar *AccountRepo) GetById(accountId string) (*model.Account, error) {
	var a model.Account
	err := ar.db.Database().Where("account_id = ?", accountId).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (ar *AccountRepo) GetByEmail(email string) (*model.Account, error) {
	var a model.Account
	err := ar.db.Database().
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (ar *AccountRepo) EmailExists(email string) (bool, error) {
	var count int64
	err := ar.db.Database().Model(ar.accountModel).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (ar *AccountRepo) List() ([]model.Account, error) {
	var accounts []model.Account
	err := ar.db.Database().Order("created_at ASC").Find(&accounts).Error
	return accounts, err
}

func (ar *AccountRepo) Save(a *model.Account) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return ar.db.Database().Save(a).Error
}

// Delete removes an account and its sessions in one transaction.
func (ar *AccountRepo) Delete(accountId string) error {
	return ar.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", accountId).Delete(&model.Session{}).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ?", accountId).Delete(ar.accountModel).Error
	})
}

// UpdatePassword replaces the credential hash. A missing account surfaces as
// gorm.ErrRecordNotFound rather than a silent no-op.
func (ar *AccountRepo) UpdatePassword(accountId, newPasswordHash string) error {
	res := ar.db.Database().Model(ar.accountModel).
		Where("account_id = ?", accountId).
		Update("password_hash", newPasswordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ar *AccountRepo) UpdateLastLogin(accountId string, at time.Time) error {
	return ar.db.Database().Model(ar.accountModel).
		Where("account_id = ?", accountId).
		Update("last_login_at", at).Error
}

// SetEnabledByCommunity flips the enabled flag on every account linked to
// the given community number.
func (ar *AccountRepo) SetEnabledByCommunity(number string, enabled bool) error {
	return ar.db.Database().Model(ar.accountModel).
		Where("linked_community_number = ?", number).
		Update("enabled", enabled).Error
}

func (ar *AccountRepo) Count() (int64, error) {
	var count int64
	err := ar.db.Database().Model(ar.accountModel).Count(&count).Error
	return count, err
}

func (ar *AccountRepo) CreateSession(s *model.Session) error {
	return ar.db.Database().Create(s).Error
}

func (ar *AccountRepo) GetSession(sessionId string) (*model.Session, error) {
	var s model.Session
	err := ar.db.Database().Where("session_id = ?", sessionId).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (ar *AccountRepo) DeleteSession(sessionId string) error {
	return ar.db.Database().Where("session_id = ?", sessionId).Delete(&model.Session{}).Error
}
