package model

import "time"

const (
	HardwareTypeVMware    = "VMware"
	HardwareTypeBareMetal = "Bare-Metal"
)

const (
	ServerTypeProduction  = "Production"
	ServerTypeTest        = "Test"
	ServerTypeDevelopment = "Development"
	ServerTypeStaging     = "Staging"
	ServerTypeQA          = "QA"
)

const (
	BackupEnabled  = "Yes"
	BackupDisabled = "No"
)

const (
	PatchStatusCurrent  = "current"
	PatchStatusOutdated = "outdated"
	PatchStatusCritical = "critical"
)

// CPULoadTrendLength is the fixed window of rolling CPU load samples
// kept per server.
const CPULoadTrendLength = 24

type Server struct {
	ID                string `gorm:"default:(-)"`
	ServerName        string
	OperatingSystem   string
	HardwareType      string
	Company           string
	ServerType        string
	Location          string
	SystemAdmin       string
	BackupAdmin       string
	HardwareAdmin     string
	Description       string
	Domain            string
	MaintenanceWindow string
	IPAddress         string `gorm:"column:ip_address"`
	ApplicationZone   string
	OperationalZone   string
	Backup            string
	Tags              []string `gorm:"serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	UpdatedBy         string
	Cores             int
	RamGB             int `gorm:"column:ram_gb"`
	StorageGB         int `gorm:"column:storage_gb"`
	VsphereCluster    string
	Application       string
	PatchStatus       string
	LastPatchDate     string
	CPULoadTrend      []float64 `gorm:"column:cpu_load_trend;serializer:json"`
	AlarmCount        int
}

// HasTag reports whether tag is already present on the server.
func (s *Server) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Normalize maps unrecognized enum values onto their defaults. It runs at
// the persistence boundary so the store never sees an open enum.
func Normalize(s *Server) {
	switch s.HardwareType {
	case HardwareTypeVMware, HardwareTypeBareMetal:
	default:
		s.HardwareType = HardwareTypeVMware
	}
	switch s.ServerType {
	case ServerTypeProduction, ServerTypeTest, ServerTypeDevelopment, ServerTypeStaging, ServerTypeQA:
	default:
		s.ServerType = ServerTypeDevelopment
	}
	switch s.Backup {
	case BackupEnabled, BackupDisabled:
	default:
		s.Backup = BackupDisabled
	}
	switch s.PatchStatus {
	case PatchStatusCurrent, PatchStatusOutdated, PatchStatusCritical:
	default:
		s.PatchStatus = PatchStatusCurrent
	}
	if len(s.CPULoadTrend) > CPULoadTrendLength {
		s.CPULoadTrend = s.CPULoadTrend[len(s.CPULoadTrend)-CPULoadTrendLength:]
	}
}
