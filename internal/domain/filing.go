package domain

// FilingStatus identifies the federal filing status used to select bracket
// tables, standard deductions, loss caps, and NIIT/AMT thresholds.
type FilingStatus string

const (
	FilingSingle                  FilingStatus = "single"
	FilingMarriedFilingJointly    FilingStatus = "married_filing_jointly"
	FilingMarriedFilingSeparately FilingStatus = "married_filing_separately"
	FilingHeadOfHousehold         FilingStatus = "head_of_household"
)

// ParseFilingStatus resolves a raw status string. Unrecognized values default
// to single; the second return reports whether the input was recognized so the
// caller can attach an advisory note instead of failing.
func ParseFilingStatus(raw string) (FilingStatus, bool) {
	switch FilingStatus(raw) {
	case FilingSingle, FilingMarriedFilingJointly, FilingMarriedFilingSeparately, FilingHeadOfHousehold:
		return FilingStatus(raw), true
	case "":
		return FilingSingle, false
	default:
		return FilingSingle, false
	}
}

// AllFilingStatuses lists every supported status, in bracket-table order.
func AllFilingStatuses() []FilingStatus {
	return []FilingStatus{
		FilingSingle,
		FilingMarriedFilingJointly,
		FilingMarriedFilingSeparately,
		FilingHeadOfHousehold,
	}
}
