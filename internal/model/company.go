package model

// CompanyInfo is the static record served by GET /api/about.
type CompanyInfo struct {
	Company     string   `json:"company" yaml:"company"`
	FullName    string   `json:"fullName" yaml:"fullName"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Description string   `json:"description" yaml:"description"`
	Mission     string   `json:"mission" yaml:"mission"`
	Values      []string `json:"values" yaml:"values"`
	Commitment  string   `json:"commitment" yaml:"commitment"`
	Founded     int      `json:"founded" yaml:"founded"`
}
