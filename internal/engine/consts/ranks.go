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

package consts

import "slices"

// CommunityRank is the organization-wide seniority rank. The catalog below
// defines a total order used for comparisons and assignment ceilings;
// department ranks are cosmetic labels and never ordered.
type CommunityRank string

const (
	RankRecruit       CommunityRank = "Recruit"
	RankMember        CommunityRank = "Member"
	RankStaffTraining CommunityRank = "Staff-In-Training"
	RankStaff         CommunityRank = "Staff"
	RankSeniorStaff   CommunityRank = "Senior Staff"
	RankJuniorAdmin   CommunityRank = "Junior Administration"
	RankAdmin         CommunityRank = "Administration"
	RankSeniorAdmin   CommunityRank = "Senior Administration"
	RankHeadAdmin     CommunityRank = "Head Admin"
)

// CommunityRanks is the rank catalog in ascending order of seniority.
var CommunityRanks = []CommunityRank{
	RankRecruit,
	RankMember,
	RankStaffTraining,
	RankStaff,
	RankSeniorStaff,
	RankJuniorAdmin,
	RankAdmin,
	RankSeniorAdmin,
	RankHeadAdmin,
}

// RankIndex returns the position of r in the catalog order, or -1 when r is
// not a catalog rank.
func RankIndex(r CommunityRank) int {
	return slices.Index(CommunityRanks, r)
}

// IsValidRank reports whether r is a catalog rank.
func IsValidRank(r CommunityRank) bool {
	return RankIndex(r) >= 0
}

// TopRankIndex is the highest assignable index in the catalog.
func TopRankIndex() int {
	return len(CommunityRanks) - 1
}
