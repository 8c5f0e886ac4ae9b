// Package rules implements the validation rule engine: semantic column
// resolution, duplicate-value detection, and cross-sheet referential
// checks over a loaded workbook. It performs no I/O and holds no state;
// running it twice on the same workbook yields identical output.
package rules

// Required sheet names, exactly as they must appear in the workbook.
const (
	SheetMerchants              = "Merchants"
	SheetPartners               = "Partners"
	SheetPartnerMerchantMapping = "PartnerMerchantMapping"
	SheetLead                   = "Lead"
	SheetLeadPartnerMapping     = "Leadpartnermapping"
)

// RequiredSheets lists the five sheets every upload must contain,
// in reporting order.
var RequiredSheets = []string{
	SheetMerchants,
	SheetPartners,
	SheetPartnerMerchantMapping,
	SheetLead,
	SheetLeadPartnerMapping,
}

// Role is a semantic column purpose resolved to an actual header name
// per sheet.
type Role string

const (
	RoleID         Role = "id"
	RoleUserID     Role = "user_id"
	RoleMobile     Role = "mobile"
	RolePartnerID  Role = "partner_id"
	RoleMerchantID Role = "merchant_id"
	RoleLeadID     Role = "lead_id"
)

// candidateColumns is the static configuration table mapping each sheet's
// roles to the ordered list of acceptable literal header names. Resolution
// picks the first candidate present in the sheet's actual columns.
var candidateColumns = map[string]map[Role][]string{
	SheetMerchants: {
		RoleID:     {"MerchantID", "merchant_id", "id"},
		RoleUserID: {"UserID", "user_id"},
		RoleMobile: {"MobileNumber", "mobile"},
	},
	SheetPartners: {
		RoleID:     {"PartnerID", "partner_id", "id"},
		RoleUserID: {"UserID", "user_id"},
		RoleMobile: {"MobileNumber", "mobile"},
	},
	SheetLead: {
		RoleID:     {"LeadID", "lead_id", "id"},
		RoleUserID: {"UserID", "user_id"},
		RoleMobile: {"MobileNumber", "mobile"},
	},
	SheetPartnerMerchantMapping: {
		RolePartnerID:  {"PartnerID", "partner_id"},
		RoleMerchantID: {"MerchantID", "merchant_id"},
	},
	SheetLeadPartnerMapping: {
		RoleLeadID:    {"LeadID", "lead_id"},
		RolePartnerID: {"PartnerID", "partner_id"},
	},
}

// Candidates returns the ordered candidate header names for a role on a
// sheet, or nil if the sheet or role is not configured.
func Candidates(sheet string, role Role) []string {
	return candidateColumns[sheet][role]
}
