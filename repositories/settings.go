package repositories

import "sync"

// PlatformSettings are the admin-tunable platform knobs.
type PlatformSettings struct {
	MaintenanceMode      bool     `json:"maintenanceMode"`
	AutoApproveSuppliers bool     `json:"autoApproveSuppliers"`
	CommissionRate       float64  `json:"commissionRate"`
	SupportEmail         string   `json:"supportEmail"`
	DefaultLanguage      string   `json:"defaultLanguage"`
	AvailableLanguages   []string `json:"availableLanguages"`
}

// SettingsPatch updates only its non-nil fields.
type SettingsPatch struct {
	MaintenanceMode      *bool
	AutoApproveSuppliers *bool
	CommissionRate       *float64
	SupportEmail         *string
	DefaultLanguage      *string
}

type SettingsRepository interface {
	Get() PlatformSettings
	Update(patch SettingsPatch) PlatformSettings
}

// Settings holds the platform configuration shown on the admin settings page.
var Settings SettingsRepository = &memorySettings{
	settings: PlatformSettings{
		CommissionRate:     0.05,
		SupportEmail:       "support@chinetonusine.example",
		DefaultLanguage:    "fr",
		AvailableLanguages: []string{"fr", "en", "zh"},
	},
}

type memorySettings struct {
	mu       sync.Mutex
	settings PlatformSettings
}

func (r *memorySettings) Get() PlatformSettings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

func (r *memorySettings) Update(patch SettingsPatch) PlatformSettings {
	r.mu.Lock()
	defer r.mu.Unlock()

	if patch.MaintenanceMode != nil {
		r.settings.MaintenanceMode = *patch.MaintenanceMode
	}
	if patch.AutoApproveSuppliers != nil {
		r.settings.AutoApproveSuppliers = *patch.AutoApproveSuppliers
	}
	if patch.CommissionRate != nil {
		r.settings.CommissionRate = *patch.CommissionRate
	}
	if patch.SupportEmail != nil {
		r.settings.SupportEmail = *patch.SupportEmail
	}
	if patch.DefaultLanguage != nil {
		r.settings.DefaultLanguage = *patch.DefaultLanguage
	}
	return r.settings
}
