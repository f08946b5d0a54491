package request

import "server-inventory-dashboard/internal/inventory-service/model"

type UpdateServerRequest struct {
	ServerName        *string    `json:"server_name"`
	OperatingSystem   *string    `json:"operating_system"`
	HardwareType      *string    `json:"hardware_type" binding:"omitempty,oneof=VMware Bare-Metal"`
	Company           *string    `json:"company"`
	ServerType        *string    `json:"server_type" binding:"omitempty,oneof=Production Test Development Staging QA"`
	Location          *string    `json:"location"`
	SystemAdmin       *string    `json:"system_admin"`
	BackupAdmin       *string    `json:"backup_admin"`
	HardwareAdmin     *string    `json:"hardware_admin"`
	Description       *string    `json:"description"`
	Domain            *string    `json:"domain"`
	MaintenanceWindow *string    `json:"maintenance_window"`
	IPAddress         *string    `json:"ip_address" binding:"omitempty,ipv4"`
	ApplicationZone   *string    `json:"application_zone"`
	OperationalZone   *string    `json:"operational_zone"`
	Backup            *string    `json:"backup" binding:"omitempty,oneof=Yes No"`
	Tags              *[]string  `json:"tags"`
	Cores             *int       `json:"cores" binding:"omitempty,gte=0"`
	RamGB             *int       `json:"ram_gb" binding:"omitempty,gte=0"`
	StorageGB         *int       `json:"storage_gb" binding:"omitempty,gte=0"`
	VsphereCluster    *string    `json:"vsphere_cluster"`
	Application       *string    `json:"application"`
	PatchStatus       *string    `json:"patch_status" binding:"omitempty,oneof=current outdated critical"`
	LastPatchDate     *string    `json:"last_patch_date" binding:"omitempty,datetime=2006-01-02"`
	CPULoadTrend      *[]float64 `json:"cpu_load_trend"`
	AlarmCount        *int       `json:"alarm_count" binding:"omitempty,gte=0"`
}

func (r *UpdateServerRequest) ToPatch() model.ServerPatch {
	return model.ServerPatch{
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
		Cores:             r.Cores,
		RamGB:             r.RamGB,
		StorageGB:         r.StorageGB,
		VsphereCluster:    r.VsphereCluster,
		Application:       r.Application,
		PatchStatus:       r.PatchStatus,
		LastPatchDate:     r.LastPatchDate,
		CPULoadTrend:      r.CPULoadTrend,
		AlarmCount:        r.AlarmCount,
	}
}
