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

package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/scenicrp/roster/internal/engine/consts"
	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/internal/engine/repo"
	"github.com/scenicrp/roster/pkg/database"
	"github.com/scenicrp/roster/pkg/log"
)

/**
 * @file: bootstrap.go
 * @description: schema migration and first-run seeding
 */

// Migrate creates or upgrades the schema for every engine table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Member{},
		&model.ArchivedMember{},
		&model.Account{},
		&model.Session{},
		&model.RemovalLog{},
		&model.TransferLog{},
	)
}

// Seed populates an empty deployment with a director account so the first
// operator can log in, plus a matching roster record. It is a no-op when any
// account already exists.
func Seed(db database.IDatabase, passwordHash string) error {
	accountRepo := repo.NewAccountRepo(db)
	memberRepo := repo.NewMemberRepo(db)

	n, err := accountRepo.Count()
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if n > 0 {
		return nil
	}

	director := &model.Member{
		Name:            "Director",
		CommunityNumber: "1000",
		Department:      "Administration",
		Rank:            "Director",
		CommunityRank:   consts.RankHeadAdmin,
		Status:          consts.DefaultStatus,
	}
	if err := memberRepo.Create(director); err != nil {
		return fmt.Errorf("seed director member: %w", err)
	}

	account := &model.Account{
		AccountId:       "director",
		Email:           "director@scenicrp.local",
		DisplayName:     "Director",
		PasswordHash:    passwordHash,
		Enabled:         true,
		LinkedCommunity: director.CommunityNumber,
	}
	if err := accountRepo.Create(account); err != nil {
		return fmt.Errorf("seed director account: %w", err)
	}

	log.Infow("seeded first-run director account", "email", account.Email)
	return nil
}
