package query

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"server-inventory-dashboard/internal/inventory-service/model"
)

// fieldGetter returns the string values a field contributes to filtering
// and search. Set-valued fields return one entry per element.
type fieldGetter func(s *model.Server) []string

func one(v string) []string {
	return []string{v}
}

func intField(v int) []string {
	return one(strconv.Itoa(v))
}

func timeField(v time.Time) []string {
	return one(v.Format(time.RFC3339))
}

// getters is the accessor table built once at startup: field name to
// typed getter. Filtering and sorting by arbitrary field-name strings
// go through it, so a stale saved view referencing a removed field
// simply never matches instead of erroring.
var getters = map[string]fieldGetter{
	"id":                func(s *model.Server) []string { return one(s.ID) },
	"serverName":        func(s *model.Server) []string { return one(s.ServerName) },
	"operatingSystem":   func(s *model.Server) []string { return one(s.OperatingSystem) },
	"hardwareType":      func(s *model.Server) []string { return one(s.HardwareType) },
	"company":           func(s *model.Server) []string { return one(s.Company) },
	"serverType":        func(s *model.Server) []string { return one(s.ServerType) },
	"location":          func(s *model.Server) []string { return one(s.Location) },
	"systemAdmin":       func(s *model.Server) []string { return one(s.SystemAdmin) },
	"backupAdmin":       func(s *model.Server) []string { return one(s.BackupAdmin) },
	"hardwareAdmin":     func(s *model.Server) []string { return one(s.HardwareAdmin) },
	"description":       func(s *model.Server) []string { return one(s.Description) },
	"domain":            func(s *model.Server) []string { return one(s.Domain) },
	"maintenanceWindow": func(s *model.Server) []string { return one(s.MaintenanceWindow) },
	"ipAddress":         func(s *model.Server) []string { return one(s.IPAddress) },
	"applicationZone":   func(s *model.Server) []string { return one(s.ApplicationZone) },
	"operationalZone":   func(s *model.Server) []string { return one(s.OperationalZone) },
	"backup":            func(s *model.Server) []string { return one(s.Backup) },
	"tags":              func(s *model.Server) []string { return s.Tags },
	"createdAt":         func(s *model.Server) []string { return timeField(s.CreatedAt) },
	"updatedAt":         func(s *model.Server) []string { return timeField(s.UpdatedAt) },
	"updatedBy":         func(s *model.Server) []string { return one(s.UpdatedBy) },
	"cores":             func(s *model.Server) []string { return intField(s.Cores) },
	"ramGB":             func(s *model.Server) []string { return intField(s.RamGB) },
	"storageGB":         func(s *model.Server) []string { return intField(s.StorageGB) },
	"vsphereCluster":    func(s *model.Server) []string { return one(s.VsphereCluster) },
	"application":       func(s *model.Server) []string { return one(s.Application) },
	"patchStatus":       func(s *model.Server) []string { return one(s.PatchStatus) },
	"lastPatchDate":     func(s *model.Server) []string { return one(s.LastPatchDate) },
	"cpuLoadTrend": func(s *model.Server) []string {
		vals := make([]string, len(s.CPULoadTrend))
		for i, v := range s.CPULoadTrend {
			vals[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		return vals
	},
	"alarmCount": func(s *model.Server) []string { return intField(s.AlarmCount) },
}

// IsField reports whether name is a known server field.
func IsField(name string) bool {
	_, ok := getters[name]
	return ok
}

// FieldNames returns every filterable/sortable field name, sorted.
func FieldNames() []string {
	names := make([]string, 0, len(getters))
	for name := range getters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldValues returns the display values of a field, or nil for an
// unknown field name.
func FieldValues(s *model.Server, field string) []string {
	getter, ok := getters[field]
	if !ok {
		return nil
	}
	return getter(s)
}

// sortValue flattens a field to the single string the comparator works
// on. Unknown fields compare equal.
func sortValue(s *model.Server, field string) string {
	getter, ok := getters[field]
	if !ok {
		return ""
	}
	return strings.Join(getter(s), ",")
}
