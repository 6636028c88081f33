package model

import (
	"time"

	"github.com/scenicrp/roster/internal/engine/consts"
)

/**
 * @file: model_log.go
 * @description: append-only lifecycle event logs
 */

// RemovalLog records a discharge. Rows are append-only: they are never
// mutated or deleted through normal operation.
type RemovalLog struct {
	LogId           string               `gorm:"column:log_id;primaryKey" json:"logId"`
	Name            string               `gorm:"column:name" json:"name"`
	CommunityNumber string               `gorm:"column:community_number;index" json:"communityNumber"`
	Department      string               `gorm:"column:department" json:"department"`
	Reason          consts.RemovalReason `gorm:"column:reason" json:"reason"`
	Detail          string               `gorm:"column:detail" json:"detail"`
	Date            time.Time            `gorm:"column:date;autoCreateTime" json:"date"`
}

func (RemovalLog) TableName() string {
	return "t_removal_log"
}

// TransferLog records a department transfer. Append-only.
type TransferLog struct {
	LogId           string                `gorm:"column:log_id;primaryKey" json:"logId"`
	Name            string                `gorm:"column:name" json:"name"`
	CommunityNumber string                `gorm:"column:community_number;index" json:"communityNumber"`
	FromDepartment  string                `gorm:"column:from_department" json:"from"`
	ToDepartment    string                `gorm:"column:to_department" json:"to"`
	Reason          consts.TransferReason `gorm:"column:reason" json:"reason"`
	Detail          string                `gorm:"column:detail" json:"detail"`
	Date            time.Time             `gorm:"column:date;autoCreateTime" json:"date"`
}

func (TransferLog) TableName() string {
	return "t_transfer_log"
}
