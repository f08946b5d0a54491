// Package stats computes the aggregate figures behind the dashboard's
// charts: distributions, capacity totals, resource usage and growth.
package stats

import (
	"sort"

	"server-inventory-dashboard/internal/inventory-service/model"
)

type Overview struct {
	TotalServers     int            `json:"total_servers"`
	ByServerType     map[string]int `json:"by_server_type"`
	ByHardwareType   map[string]int `json:"by_hardware_type"`
	ByBackup         map[string]int `json:"by_backup"`
	ByOperatingSys   map[string]int `json:"by_operating_system"`
	ByLocation       map[string]int `json:"by_location"`
	ByPatchStatus    map[string]int `json:"by_patch_status"`
	TotalCores       int            `json:"total_cores"`
	TotalRamGB       int            `json:"total_ram_gb"`
	TotalStorageGB   int            `json:"total_storage_gb"`
	TotalAlarms      int            `json:"total_alarms"`
	AverageCPULoad   float64        `json:"average_cpu_load"`
	Growth           []GrowthPoint  `json:"growth"`
	TaggedServers    int            `json:"tagged_servers"`
	VirtualizedShare float64        `json:"virtualized_share"`
}

// GrowthPoint is the cumulative inventory size at the end of one month.
type GrowthPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Compute aggregates the record set. The input is read only.
func Compute(servers []model.Server) Overview {
	o := Overview{
		TotalServers:   len(servers),
		ByServerType:   make(map[string]int),
		ByHardwareType: make(map[string]int),
		ByBackup:       make(map[string]int),
		ByOperatingSys: make(map[string]int),
		ByLocation:     make(map[string]int),
		ByPatchStatus:  make(map[string]int),
	}

	loadSum := 0.0
	loadSamples := 0
	monthly := make(map[string]int)
	for i := range servers {
		s := &servers[i]
		o.ByServerType[s.ServerType]++
		o.ByHardwareType[s.HardwareType]++
		o.ByBackup[s.Backup]++
		o.ByOperatingSys[s.OperatingSystem]++
		o.ByLocation[s.Location]++
		o.ByPatchStatus[s.PatchStatus]++
		o.TotalCores += s.Cores
		o.TotalRamGB += s.RamGB
		o.TotalStorageGB += s.StorageGB
		o.TotalAlarms += s.AlarmCount
		if len(s.Tags) > 0 {
			o.TaggedServers++
		}
		if n := len(s.CPULoadTrend); n > 0 {
			// The newest sample of the rolling window is the current load.
			loadSum += s.CPULoadTrend[n-1]
			loadSamples++
		}
		if !s.CreatedAt.IsZero() {
			monthly[s.CreatedAt.Format("2006-01")]++
		}
	}
	if loadSamples > 0 {
		o.AverageCPULoad = loadSum / float64(loadSamples)
	}
	if o.TotalServers > 0 {
		o.VirtualizedShare = float64(o.ByHardwareType[model.HardwareTypeVMware]) / float64(o.TotalServers)
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	cumulative := 0
	for _, month := range months {
		cumulative += monthly[month]
		o.Growth = append(o.Growth, GrowthPoint{Month: month, Count: cumulative})
	}
	return o
}
