package configs

import "strings"

// ClientConfig adalah konfigurasi tenant (klien) yang dipilih sekali per deployment
// lewat CLIENT_CODE. Nilainya di-inject ke handler, bukan dibaca dari global.
type ClientConfig struct {
	Client   ClientInfo     `json:"client"`
	Branding ClientBranding `json:"branding"`
	Regional ClientRegional `json:"regional"`
	Features ClientFeatures `json:"features"`
}

type ClientInfo struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Region      string `json:"region"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type ClientBranding struct {
	AppName      string `json:"appName"`
	AppNameShort string `json:"appNameShort"`
	AppTagline   string `json:"appTagline"`
	PrimaryColor string `json:"primaryColor"`
}

type ClientRegional struct {
	Locale      string      `json:"locale"`
	Timezone    string      `json:"timezone"`
	City        string      `json:"city"`
	Province    string      `json:"province"`
	Terminology Terminology `json:"terminology"`
}

type Terminology struct {
	Relawan     string `json:"relawan"`
	Koordinator string `json:"koordinator"`
	Dapil       string `json:"dapil"`
}

type ClientFeatures struct {
	Dashboard   bool `json:"dashboard"`
	Import      bool `json:"import"`
	Export      bool `json:"export"`
	PhotoUpload bool `json:"photoUpload"`
}

func defaultClientConfig() ClientConfig {
	return ClientConfig{
		Client: ClientInfo{
			Name:    "Default Management System",
			Code:    "DEFAULT",
			Region:  "Indonesia",
			Version: "1.0.0",
		},
		Branding: ClientBranding{
			AppName:      "MANREL SYSTEM",
			AppNameShort: "MRS",
			AppTagline:   "Sistem Manajemen Relawan",
			PrimaryColor: "#2563eb",
		},
		Regional: ClientRegional{
			Locale:   "id-ID",
			Timezone: "Asia/Jakarta",
			City:     "Default City",
			Province: "Default Province",
			Terminology: Terminology{
				Relawan:     "Relawan",
				Koordinator: "Koordinator",
				Dapil:       "Dapil",
			},
		},
		Features: ClientFeatures{Dashboard: true, Import: true, Export: true, PhotoUpload: true},
	}
}

// ResolveClientConfig mengembalikan preset untuk kode klien; kode tak dikenal jatuh ke DEFAULT.
func ResolveClientConfig(code string) ClientConfig {
	cfg := defaultClientConfig()
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "BANDUNG":
		cfg.Client.Name = "Manajemen Relawan Bandung"
		cfg.Client.Code = "BANDUNG"
		cfg.Client.Region = "Bandung"
		cfg.Branding.AppName = "MANREL BANDUNG"
		cfg.Branding.AppNameShort = "MRB"
		cfg.Branding.PrimaryColor = "#e74c3c"
		cfg.Regional.City = "Bandung"
		cfg.Regional.Province = "Jawa Barat"
	case "JAKARTA":
		cfg.Client.Name = "Manajemen Relawan Jakarta"
		cfg.Client.Code = "JAKARTA"
		cfg.Client.Region = "Jakarta"
		cfg.Branding.AppName = "MANREL JAKARTA"
		cfg.Branding.AppNameShort = "MRJ"
		cfg.Branding.AppTagline = "Sistem Relawan DKI"
		cfg.Branding.PrimaryColor = "#3498db"
		cfg.Regional.City = "Jakarta"
		cfg.Regional.Province = "DKI Jakarta"
	}
	return cfg
}
