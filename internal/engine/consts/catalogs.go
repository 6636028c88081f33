package consts

/**
 * @file: catalogs.go
 * @description: department, status and reason catalogs
 */

// DefaultDepartments is the shipped department catalog; configurable.
var DefaultDepartments = []string{
	"LSPD",
	"SAHP",
	"BCSO",
	"CIV",
	"Fire Rescue",
	"Communications",
	"Internal Affairs",
	"Media Division",
	"Development",
}

// DefaultStatusCatalog is the shipped member status catalog; configurable.
var DefaultStatusCatalog = []string{
	"Active",
	"Inactive",
	"LOA",
	"Reserve",
	"Training",
	"Suspended",
}

// DefaultStatus is applied when a new member is created without a status.
const DefaultStatus = "Active"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// activityExemptStatuses lists statuses the monthly activity check leaves
// alone: members on leave, in reserve, in training or suspended are not
// held to hour requirements.
var activityExemptStatuses = map[string]struct{}{
	"LOA":       {},
	"Reserve":   {},
	"Training":  {},
	"Suspended": {},
}

// IsActivityExempt reports whether a status is excluded from the activity
// check.
func IsActivityExempt(status string) bool {
	_, ok := activityExemptStatuses[status]
	return ok
}

// RemovalReason classifies a discharge.
type RemovalReason string

const (
	RemovalDiscipline     RemovalReason = "Discipline"
	RemovalProperResign   RemovalReason = "Proper Resignation"
	RemovalImproperResign RemovalReason = "Improper Resignation"
	RemovalRetirement     RemovalReason = "Retirement"
	RemovalInactive       RemovalReason = "Inactive Removal"
	RemovalOther          RemovalReason = "Other"
)

// TransferReason classifies a department transfer.
type TransferReason string

const (
	TransferCareer       TransferReason = "Career Progression"
	TransferDeptNeeds    TransferReason = "Department Needs"
	TransferPerformance  TransferReason = "Performance Review"
	TransferDisciplinary TransferReason = "Disciplinary"
	TransferPersonal     TransferReason = "Personal"
	TransferOther        TransferReason = "Other"
)
