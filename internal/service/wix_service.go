package service

import (
	"errors"

	"github.com/VETechnologiesCo/VPCO/internal/config"
	"github.com/VETechnologiesCo/VPCO/internal/model"
)

// ErrWixNotConfigured is returned when the Wix API key or token is missing.
var ErrWixNotConfigured = errors.New("wix: api credentials not configured")

// WixService reports on the Wix integration. No Wix API call is made yet;
// the service only inspects the configured credentials.
type WixService struct {
	cfg config.WixConfig
}

// NewWixService creates a WixService.
func NewWixService(cfg config.WixConfig) *WixService {
	return &WixService{cfg: cfg}
}

// Status reports which credentials are present.
func (s *WixService) Status() model.WixStatus {
	domain := s.cfg.DomainName
	if domain == "" {
		domain = "not configured"
	}
	return model.WixStatus{
		Configured:  s.cfg.Configured(),
		HasAPIKey:   s.cfg.APIKey != "",
		HasAPIToken: s.cfg.APIToken != "",
		HasSiteID:   s.cfg.SiteID != "",
		Domain:      domain,
	}
}

// CheckCredentials returns ErrWixNotConfigured unless both key and token are set.
func (s *WixService) CheckCredentials() error {
	if !s.cfg.Configured() {
		return ErrWixNotConfigured
	}
	return nil
}
