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

// ILogRepository exposes append and list only. Lifecycle logs are never
// updated or deleted through normal operation.
type ILogRepository interface {
	WithTx(tx *gorm.DB) ILogRepository
	AppendRemoval(l *model.RemovalLog) error
	AppendTransfer(l *model.TransferLog) error
	ListRemovals() ([]model.RemovalLog, error)
	ListTransfers() ([]model.TransferLog, error)
}

type LogRepo struct {
	db database.IDatabase
}

func NewLogRepo(db database.IDatabase) ILogRepository {
	return &LogRepo{db: db}
}

func (lr *LogRepo) WithTx(tx *gorm.DB) ILogRepository {
	return NewLogRepo(database.NewGormDB(tx))
}

func (lr *LogRepo) AppendRemoval(l *model.RemovalLog) error {
	return lr.db.Database().Create(l).Error
}

func (lr *LogRepo) AppendTransfer(l *model.TransferLog) error {
	return lr.db.Database().Create(l).Error
}

func (lr *LogRepo) ListRemovals() ([]model.RemovalLog, error) {
	var logs []model.RemovalLog
	err := lr.db.Database().Order("date DESC").Find(&logs).Error
	return logs, err
}

func (lr *LogRepo) ListTransfers() ([]model.TransferLog, error) {
	var logs []model.TransferLog
	err := lr.db.Database().Order("date DESC").Find(&logs).Error
	return logs, err
}
