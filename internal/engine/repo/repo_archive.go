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

type IArchiveRepository interface {
	WithTx(tx *gorm.DB) IArchiveRepository
	Create(am *model.ArchivedMember) error
	GetByNumber(number string) (*model.ArchivedMember, error)
	List() ([]model.ArchivedMember, error)
	Delete(number string) error
	NumberExists(number string) (bool, error)
}

type ArchiveRepo struct {
	db           database.IDatabase
	archiveModel *model.ArchivedMember
}

func NewArchiveRepo(db database.IDatabase) IArchiveRepository {
	return &ArchiveRepo{
		db:           db,
		archiveModel: &model.ArchivedMember{},
	}
}

func (ar *ArchiveRepo) WithTx(tx *gorm.DB) IArchiveRepository {
	return NewArchiveRepo(database.NewGormDB(tx))
}

func (ar *ArchiveRepo) Create(am *model.ArchivedMember) error {
	return ar.db.Database().Create(am).Error
}

func (ar *ArchiveRepo) GetByNumber(number string) (*model.ArchivedMember, error) {
	var am model.ArchivedMember
	err := ar.db.Database().Where("community_number = ?", number).First(&am).Error
	if err != nil {
		return nil, err
	}
	return &am, nil
}

func (ar *ArchiveRepo) List() ([]model.ArchivedMember, error) {
	var archived []model.ArchivedMember
	err := ar.db.Database().Order("discharge_date DESC").Find(&archived).Error
	return archived, err
}

func (ar *ArchiveRepo) Delete(number string) error {
	return ar.db.Database().Where("community_number = ?", number).Delete(ar.archiveModel).Error
}

func (ar *ArchiveRepo) NumberExists(number string) (bool, error) {
	var count int64
	err := ar.db.Database().Model(ar.archiveModel).
		Where("community_number = ?", number).
		Count(&count).Error
	return count > 0, err
}
