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
	"gorm.io/gorm"

	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/pkg/database"
)

type IMemberRepository interface {
	// WithTx binds the repository to an open transaction.
	WithTx(tx *gorm.DB) IMemberRepository
	Create(m *model.Member) error
	Save(m *model.Member) error
	GetByNumber(number string) (*model.Member, error)
	List(filter model.MemberFilter) ([]model.Member, error)
	Delete(number string) error
	NumberExists(number string) (bool, error)
}

type MemberRepo struct {
	db          database.IDatabase
	memberModel *model.Member
}

func NewMemberRepo(db database.IDatabase) IMemberRepository {
	return &MemberRepo{
		db:          db,
		memberModel: &model.Member{},
	}
}

func (mr *MemberRepo) WithTx(tx *gorm.DB) IMemberRepository {
	return NewMemberRepo(database.NewGormDB(tx))
}

func (mr *MemberRepo) Create(m *model.Member) error {
	return mr.db.Database().Create(m).Error
}

// Save writes the full record back by primary key.
func (mr *MemberRepo) Save(m *model.Member) error {
	return mr.db.Database().Save(m).Error
}

func (mr *MemberRepo) GetByNumber(number string) (*model.Member, error) {
	var m model.Member
	err := mr.db.Database().Where("community_number = ?", number).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (mr *MemberRepo) List(filter model.MemberFilter) ([]model.Member, error) {
	var members []model.Member
	q := mr.db.Database().Model(mr.memberModel)
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.CommunityRank != "" {
		q = q.Where("community_rank = ?", filter.CommunityRank)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Find(&members).Error
	return members, err
}

func (mr *MemberRepo) Delete(number string) error {
	return mr.db.Database().Where("community_number = ?", number).Delete(mr.memberModel).Error
}

func (mr *MemberRepo) NumberExists(number string) (bool, error) {
	var count int64
	err := mr.db.Database().Model(mr.memberModel).
		Where("community_number = ?", number).
		Count(&count).Error
	return count > 0, err
}
