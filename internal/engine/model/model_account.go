package model

import (
	"time"

	"github.com/scenicrp/roster/internal/engine/consts"
)

/**
 * @file: model_account.go
 * @description: account and session models
 */

// Account is an authentication principal. It references a roster member by
// community number and never owns the member record. GroupOverride, when
// present, wins over the linked member's rank-derived group.
type Account struct {
	BaseModel
	AccountId       string                 `gorm:"column:account_id;uniqueIndex" json:"accountId"`
	Email           string                 `gorm:"column:email;uniqueIndex" json:"email"`
	DisplayName     string                 `gorm:"column:display_name" json:"displayName"`
	PasswordHash    string                 `gorm:"column:password_hash" json:"-"`
	Enabled         bool                   `gorm:"column:enabled" json:"enabled"`
	LinkedCommunity string                 `gorm:"column:linked_community_number" json:"linkedCommunityNumber,omitempty"`
	GroupOverride   consts.PermissionGroup `gorm:"column:group_override" json:"groupOverride,omitempty"`
	LastLoginAt     *time.Time             `gorm:"column:last_login_at" json:"lastLoginAt,omitempty"`
}

func (Account) TableName() string {
	return "t_account"
}

// Session is the ephemeral pointer from an issued token to an account.
// Created on successful credential check, destroyed on logout.
type Session struct {
	SessionId string    `gorm:"column:session_id;primaryKey" json:"sessionId"`
	AccountId string    `gorm:"column:account_id;index" json:"accountId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Session) TableName() string {
	return "t_session"
}

// Login is the credential check request.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResp carries the issued session token and the resolved authorization
// summary for display.
type LoginResp struct {
	AccountId   string                 `json:"accountId"`
	DisplayName string                 `json:"displayName"`
	Email       string                 `json:"email"`
	Token       string                 `json:"token"`
	Group       consts.PermissionGroup `json:"group"`
}

// Signup is the invite-gated self-service registration request. Accounts
// created this way are unlinked until staff link them to a member.
type Signup struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	InviteCode  string `json:"inviteCode"`
}

// AddAccountReq is the administrative account creation request.
type AddAccountReq struct {
	Email           string                 `json:"email"`
	DisplayName     string                 `json:"displayName"`
	Password        string                 `json:"password"`
	LinkedCommunity string                 `json:"linkedCommunityNumber"`
	GroupOverride   consts.PermissionGroup `json:"groupOverride"`
}

// UpdateAccountReq carries the administrative account mutations. Pointer
// fields distinguish "leave unchanged" (absent) from "set to this value",
// so an override can be cleared with an explicit empty string.
type UpdateAccountReq struct {
	DisplayName     *string                 `json:"displayName"`
	LinkedCommunity *string                 `json:"linkedCommunityNumber"`
	GroupOverride   *consts.PermissionGroup `json:"groupOverride"`
	Enabled         *bool                   `json:"enabled"`
}

// ResetPasswordReq is the administrative password reset request.
type ResetPasswordReq struct {
	NewPassword string `json:"newPassword"`
}
