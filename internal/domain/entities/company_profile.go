package entities

// CompanyProfile is the shop identity reused as the company block of every new
// order. Stored under the company_profile settings key and mirrored locally.
type CompanyProfile = Company

// DefaultCompanyProfile seeds a fresh installation before any profile has been
// saved.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{Name: "MD DIESEL"}
}
