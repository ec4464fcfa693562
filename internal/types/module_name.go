package types

// ModuleName keys completion registry rows. Evaluators write only their own
// constant, so cross-module writes are impossible without inventing a value.
type ModuleName string

const (
	ModuleLocationSetting   ModuleName = "Location Setting"
	ModuleHRSetting         ModuleName = "HR Setting"
	ModuleLoanSetting       ModuleName = "Loan Setting"
	ModuleVendorSetting     ModuleName = "Vendor Setting"
	ModuleInstallerSetting  ModuleName = "Installer Setting"
	ModuleFranchiseeSetting ModuleName = "Franchisee Setting"
	ModuleDeliverySetting   ModuleName = "Delivery Setting"
	ModuleSalesSetting      ModuleName = "Sales Setting"
)

var knownModuleNames = map[ModuleName]struct{}{
	ModuleLocationSetting:   {},
	ModuleHRSetting:         {},
	ModuleLoanSetting:       {},
	ModuleVendorSetting:     {},
	ModuleInstallerSetting:  {},
	ModuleFranchiseeSetting: {},
	ModuleDeliverySetting:   {},
	ModuleSalesSetting:      {},
}

func (m ModuleName) Valid() bool {
	_, ok := knownModuleNames[m]
	return ok
}

func (m ModuleName) String() string { return string(m) }
