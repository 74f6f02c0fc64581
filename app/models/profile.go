package models

// SchoolProfile is the institution configuration shown on every receipt.
// Logo holds an embedded data URL when set.
type SchoolProfile struct {
	Name          string  `json:"name" validate:"required"`
	Address       string  `json:"address"`
	TrustName     string  `json:"trustName"`
	Logo          *string `json:"logo"`
	IncludeQRCode bool    `json:"includeQrCode"`
}

// DefaultSchoolProfile returns the built-in profile used until the office
// saves its own settings.
func DefaultSchoolProfile() SchoolProfile {
	return SchoolProfile{
		Name:      "AL-IBTIDA PUBLIC SCHOOL",
		Address:   "New Town, Sector-V, West Bengal, India - 700001",
		TrustName: "AL-IBTIDA EDUCATIONAL TRUST",
	}
}
