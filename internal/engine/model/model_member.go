package model

import (
	"time"

	"github.com/scenicrp/roster/internal/engine/consts"
)

/**
 * @file: model_member.go
 * @description: roster member and archive models
 */

// Member is an active roster record. CommunityNumber is the 4-digit unique
// identity, generated at creation and immutable after issuance; it is unique
// across the roster and the archive at any instant.
type Member struct {
	BaseModel
	Name            string               `gorm:"column:name" json:"name"`
	CommunityNumber string               `gorm:"column:community_number;uniqueIndex" json:"communityNumber"`
	UnitNumber      string               `gorm:"column:unit_number" json:"unitNumber"`
	Department      string               `gorm:"column:department" json:"department"`
	Rank            string               `gorm:"column:rank" json:"rank"`
	CommunityRank   consts.CommunityRank `gorm:"column:community_rank" json:"communityRank"`
	Subdivisions    string               `gorm:"column:subdivisions" json:"subdivisions"`
	Status          string               `gorm:"column:status" json:"status"`

	// activity tracking
	CurrentMonthHours float64    `gorm:"column:current_month_hours" json:"currentMonthHours"`
	LastPatrolDate    *time.Time `gorm:"column:last_patrol_date" json:"lastPatrolDate,omitempty"`

	// sensitive contact fields, redacted below Staff-In-Training
	DiscordId    string `gorm:"column:discord_id" json:"discordId,omitempty"`
	WebsiteLink  string `gorm:"column:website_link" json:"websiteLink,omitempty"`
	TeamspeakUid string `gorm:"column:teamspeak_uid" json:"teamspeakUid,omitempty"`
}

func (Member) TableName() string {
	return "t_member"
}

// CommunityId is the display form of the community number.
func (m *Member) CommunityId() string {
	return "SRP-" + m.CommunityNumber
}

// Redacted returns a copy with the sensitive contact fields cleared.
func (m Member) Redacted() Member {
	m.DiscordId = ""
	m.WebsiteLink = ""
	m.TeamspeakUid = ""
	return m
}

// ArchivedMember is a discharged member snapshot plus discharge metadata.
// Created only by discharge, destroyed only by restore.
type ArchivedMember struct {
	Member          Member               `gorm:"embedded" json:"member"`
	DischargeReason consts.RemovalReason `gorm:"column:discharge_reason" json:"dischargeReason"`
	DischargeDetail string               `gorm:"column:discharge_detail" json:"dischargeDetail"`
	DischargeDate   time.Time            `gorm:"column:discharge_date" json:"dischargeDate"`
}

func (ArchivedMember) TableName() string {
	return "t_member_archive"
}

// AddMemberReq carries the caller-supplied fields for member creation.
type AddMemberReq struct {
	Name          string               `json:"name"`
	UnitNumber    string               `json:"unitNumber"`
	Department    string               `json:"department"`
	Rank          string               `json:"rank"`
	CommunityRank consts.CommunityRank `json:"communityRank"`
	Subdivisions  string               `json:"subdivisions"`
	Status        string               `json:"status"`
	DiscordId     string               `json:"discordId"`
	WebsiteLink   string               `json:"websiteLink"`
	TeamspeakUid  string               `json:"teamspeakUid"`
}

// EditMemberReq replaces every mutable field of a member. The community
// number and the system-generated fields are never touched by an edit.
type EditMemberReq struct {
	Name          string               `json:"name"`
	UnitNumber    string               `json:"unitNumber"`
	Department    string               `json:"department"`
	Rank          string               `json:"rank"`
	CommunityRank consts.CommunityRank `json:"communityRank"`
	Subdivisions  string               `json:"subdivisions"`
	Status        string               `json:"status"`
	DiscordId     string               `json:"discordId"`
	WebsiteLink   string               `json:"websiteLink"`
	TeamspeakUid  string               `json:"teamspeakUid"`
}

// TransferReq moves a member across departments in one atomic update.
type TransferReq struct {
	ToDepartment  string                `json:"toDepartment"`
	UnitNumber    string                `json:"unitNumber"`
	Rank          string                `json:"rank"`
	CommunityRank consts.CommunityRank  `json:"communityRank"`
	Subdivisions  string                `json:"subdivisions"`
	Status        string                `json:"status"`
	Reason        consts.TransferReason `json:"reason"`
	Detail        string                `json:"detail"`
}

// DischargeReq removes a member from the active roster into the archive.
// Detail is mandatory.
type DischargeReq struct {
	Reason consts.RemovalReason `json:"reason"`
	Detail string               `json:"detail"`
}

// HoursReq records a member's patrol time for the current month.
type HoursReq struct {
	Hours          float64    `json:"hours"`
	LastPatrolDate *time.Time `json:"lastPatrolDate"`
}

// ActivityReport summarizes one activity check run.
type ActivityReport struct {
	Checked        int      `json:"checked"`
	MarkedInactive []string `json:"markedInactive"`
	MarkedActive   []string `json:"markedActive"`
}

// MemberFilter narrows the roster listing.
type MemberFilter struct {
	Department    string               `json:"department"`
	CommunityRank consts.CommunityRank `json:"communityRank"`
	Status        string               `json:"status"`
}
