package response

import (
	"time"

	"server-inventory-dashboard/internal/inventory-service/model"
)

type ServerInfoResponse struct {
	ID                string    `json:"id"`
	ServerName        string    `json:"server_name"`
	OperatingSystem   string    `json:"operating_system"`
	HardwareType      string    `json:"hardware_type"`
	Company           string    `json:"company"`
	ServerType        string    `json:"server_type"`
	Location          string    `json:"location"`
	SystemAdmin       string    `json:"system_admin"`
	BackupAdmin       string    `json:"backup_admin"`
	HardwareAdmin     string    `json:"hardware_admin"`
	Description       string    `json:"description"`
	Domain            string    `json:"domain"`
	MaintenanceWindow string    `json:"maintenance_window"`
	IPAddress         string    `json:"ip_address"`
	ApplicationZone   string    `json:"application_zone"`
	OperationalZone   string    `json:"operational_zone"`
	Backup            string    `json:"backup"`
	Tags              []string  `json:"tags"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	UpdatedBy         string    `json:"updated_by"`
	Cores             int       `json:"cores"`
	RamGB             int       `json:"ram_gb"`
	StorageGB         int       `json:"storage_gb"`
	VsphereCluster    string    `json:"vsphere_cluster"`
	Application       string    `json:"application"`
	PatchStatus       string    `json:"patch_status"`
	LastPatchDate     string    `json:"last_patch_date"`
	CPULoadTrend      []float64 `json:"cpu_load_trend"`
	AlarmCount        int       `json:"alarm_count"`
}

func NewServerInfoResponse(s model.Server) ServerInfoResponse {
	return ServerInfoResponse{
		ID:                s.ID,
		ServerName:        s.ServerName,
		OperatingSystem:   s.OperatingSystem,
		HardwareType:      s.HardwareType,
		Company:           s.Company,
		ServerType:        s.ServerType,
		Location:          s.Location,
		SystemAdmin:       s.SystemAdmin,
		BackupAdmin:       s.BackupAdmin,
		HardwareAdmin:     s.HardwareAdmin,
		Description:       s.Description,
		Domain:            s.Domain,
		MaintenanceWindow: s.MaintenanceWindow,
		IPAddress:         s.IPAddress,
		ApplicationZone:   s.ApplicationZone,
		OperationalZone:   s.OperationalZone,
		Backup:            s.Backup,
		Tags:              s.Tags,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		UpdatedBy:         s.UpdatedBy,
		Cores:             s.Cores,
		RamGB:             s.RamGB,
		StorageGB:         s.StorageGB,
		VsphereCluster:    s.VsphereCluster,
		Application:       s.Application,
		PatchStatus:       s.PatchStatus,
		LastPatchDate:     s.LastPatchDate,
		CPULoadTrend:      s.CPULoadTrend,
		AlarmCount:        s.AlarmCount,
	}
}

func NewServerInfoResponses(servers []model.Server) []ServerInfoResponse {
	out := make([]ServerInfoResponse, 0, len(servers))
	for _, s := range servers {
		out = append(out, NewServerInfoResponse(s))
	}
	return out
}
