package model

// WixStatus reports which Wix integration credentials are present.
// Credential values themselves are never exposed.
type WixStatus struct {
	Configured  bool   `json:"configured"`
	HasAPIKey   bool   `json:"hasApiKey"`
	HasAPIToken bool   `json:"hasApiToken"`
	HasSiteID   bool   `json:"hasSiteId"`
	Domain      string `json:"domain"`
}
