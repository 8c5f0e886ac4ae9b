package rules

import (
	"fmt"

	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/xlsx"
)

// Run executes the fixed battery of checks against a workbook and returns
// every issue found, in check order. The caller must have verified the
// required sheets are present; Run itself tolerates absent sheets by
// skipping the checks that need them.
//
// Check order:
//
//	1-6  duplicate mobile/user id on Lead, Partners, Merchants
//	7    Lead rows with no Leadpartnermapping entry
//	8    Leadpartnermapping rows naming an unknown Partner
//	9    PartnerMerchantMapping rows naming an unknown Partner
//	10   PartnerMerchantMapping rows naming an unknown Merchant
//
// The duplicate checks always run (an empty sheet just contributes
// nothing). The referential checks run only when both key columns
// resolved; check 7 additionally requires a non-empty Lead sheet and
// checks 9-10 a non-empty PartnerMerchantMapping sheet.
//
// A clean workbook returns an empty, non-nil slice.
func Run(wb *xlsx.Workbook) []ErrorRecord {
	records := make([]ErrorRecord, 0)

	lead, _ := wb.Sheet(SheetLead)
	partners, _ := wb.Sheet(SheetPartners)
	merchants, _ := wb.Sheet(SheetMerchants)
	pmm, _ := wb.Sheet(SheetPartnerMerchantMapping)
	lpm, _ := wb.Sheet(SheetLeadPartnerMapping)

	col := func(sheet string, role Role) string {
		name, _ := resolveRole(wb, sheet, role)
		return name
	}

	records = append(records, FindDuplicates(lead,
		[]string{col(SheetLead, RoleMobile), col(SheetLead, RoleUserID)},
		SheetLead, "Lead")...)
	records = append(records, FindDuplicates(partners,
		[]string{col(SheetPartners, RoleMobile), col(SheetPartners, RoleUserID)},
		SheetPartners, "Partner")...)
	records = append(records, FindDuplicates(merchants,
		[]string{col(SheetMerchants, RoleMobile), col(SheetMerchants, RoleUserID)},
		SheetMerchants, "Merchant")...)

	leadID, leadIDOK := resolveRole(wb, SheetLead, RoleID)
	lpmLeadID, lpmLeadIDOK := resolveRole(wb, SheetLeadPartnerMapping, RoleLeadID)
	if leadIDOK && lpmLeadIDOK && !lead.Empty() {
		records = append(records, FindUnreferenced(lead, leadID, lpm, lpmLeadID,
			"Unmapped Lead", "Lead",
			func(v string) string {
				return fmt.Sprintf("LeadID '%s' has no entry in Leadpartnermapping.%s", v, lpmLeadID)
			})...)
	}

	partnersID, partnersIDOK := resolveRole(wb, SheetPartners, RoleID)
	lpmPartnerID, lpmPartnerIDOK := resolveRole(wb, SheetLeadPartnerMapping, RolePartnerID)
	if lpmPartnerIDOK && partnersIDOK {
		records = append(records, FindUnreferenced(lpm, lpmPartnerID, partners, partnersID,
			"Invalid reference: Partner", SheetLeadPartnerMapping,
			func(v string) string {
				return fmt.Sprintf("%s '%s' not found in Partners.%s", lpmPartnerID, v, partnersID)
			})...)
	}

	pmmPartnerID, pmmPartnerIDOK := resolveRole(wb, SheetPartnerMerchantMapping, RolePartnerID)
	if pmmPartnerIDOK && partnersIDOK && !pmm.Empty() {
		records = append(records, FindUnreferenced(pmm, pmmPartnerID, partners, partnersID,
			"Invalid reference: Partner", SheetPartnerMerchantMapping,
			func(v string) string {
				return fmt.Sprintf("%s '%s' not found in Partners.%s", pmmPartnerID, v, partnersID)
			})...)
	}

	pmmMerchantID, pmmMerchantIDOK := resolveRole(wb, SheetPartnerMerchantMapping, RoleMerchantID)
	merchantsID, merchantsIDOK := resolveRole(wb, SheetMerchants, RoleID)
	if pmmMerchantIDOK && merchantsIDOK && !pmm.Empty() {
		records = append(records, FindUnreferenced(pmm, pmmMerchantID, merchants, merchantsID,
			"Invalid reference: Merchant", SheetPartnerMerchantMapping,
			func(v string) string {
				return fmt.Sprintf("%s '%s' not found in Merchants.%s", pmmMerchantID, v, merchantsID)
			})...)
	}

	return records
}
