package request

import "server-inventory-dashboard/internal/inventory-service/model"

type CreateServerRequest struct {
	ServerName        string    `json:"server_name" binding:"required" validate:"required"`
	OperatingSystem   string    `json:"operating_system" binding:"required" validate:"required"`
	HardwareType      string    `json:"hardware_type" binding:"required,oneof=VMware Bare-Metal" validate:"required,oneof=VMware Bare-Metal"`
	Company           string    `json:"company"`
	ServerType        string    `json:"server_type" binding:"required,oneof=Production Test Development Staging QA" validate:"required,oneof=Production Test Development Staging QA"`
	Location          string    `json:"location"`
	SystemAdmin       string    `json:"system_admin"`
	BackupAdmin       string    `json:"backup_admin"`
	HardwareAdmin     string    `json:"hardware_admin"`
	Description       string    `json:"description"`
	Domain            string    `json:"domain"`
	MaintenanceWindow string    `json:"maintenance_window"`
	IPAddress         string    `json:"ip_address" binding:"required,ipv4" validate:"required,ipv4"`
	ApplicationZone   string    `json:"application_zone"`
	OperationalZone   string    `json:"operational_zone"`
	Backup            string    `json:"backup" binding:"required,oneof=Yes No" validate:"required,oneof=Yes No"`
	Tags              []string  `json:"tags"`
	Cores             *int      `json:"cores" binding:"omitempty,gte=0" validate:"omitempty,gte=0"`
	RamGB             *int      `json:"ram_gb" binding:"omitempty,gte=0" validate:"omitempty,gte=0"`
	StorageGB         *int      `json:"storage_gb" binding:"omitempty,gte=0" validate:"omitempty,gte=0"`
	VsphereCluster    string    `json:"vsphere_cluster"`
	Application       string    `json:"application"`
	PatchStatus       string    `json:"patch_status" binding:"omitempty,oneof=current outdated critical"`
	LastPatchDate     string    `json:"last_patch_date" binding:"omitempty,datetime=2006-01-02"`
	CPULoadTrend      []float64 `json:"cpu_load_trend"`
	AlarmCount        *int      `json:"alarm_count" binding:"omitempty,gte=0"`
}

func (r *CreateServerRequest) ToModel() model.Server {
	server := model.Server{
		ServerName:        r.ServerName,
		OperatingSystem:   r.OperatingSystem,
		HardwareType:      r.HardwareType,
		Company:           r.Company,
		ServerType:        r.ServerType,
		Location:          r.Location,
		SystemAdmin:       r.SystemAdmin,
		BackupAdmin:       r.BackupAdmin,
		HardwareAdmin:     r.HardwareAdmin,
		Description:       r.Description,
		Domain:            r.Domain,
		MaintenanceWindow: r.MaintenanceWindow,
		IPAddress:         r.IPAddress,
		ApplicationZone:   r.ApplicationZone,
		OperationalZone:   r.OperationalZone,
		Backup:            r.Backup,
		Tags:              r.Tags,
		VsphereCluster:    r.VsphereCluster,
		Application:       r.Application,
		PatchStatus:       r.PatchStatus,
		LastPatchDate:     r.LastPatchDate,
		CPULoadTrend:      r.CPULoadTrend,
	}
	if r.Cores != nil {
		server.Cores = *r.Cores
	}
	if r.RamGB != nil {
		server.RamGB = *r.RamGB
	}
	if r.StorageGB != nil {
		server.StorageGB = *r.StorageGB
	}
	if r.AlarmCount != nil {
		server.AlarmCount = *r.AlarmCount
	}
	return server
}
