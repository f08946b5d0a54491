package model

// ServerPatch is a partial update to a server. Nil fields are left
// untouched; the store diffs the remaining ones against the current
// record to synthesize history entries.
type ServerPatch struct {
	ServerName        *string
	OperatingSystem   *string
	HardwareType      *string
	Company           *string
	ServerType        *string
	Location          *string
	SystemAdmin       *string
	BackupAdmin       *string
	HardwareAdmin     *string
	Description       *string
	Domain            *string
	MaintenanceWindow *string
	IPAddress         *string
	ApplicationZone   *string
	OperationalZone   *string
	Backup            *string
	Tags              *[]string
	Cores             *int
	RamGB             *int
	StorageGB         *int
	VsphereCluster    *string
	Application       *string
	PatchStatus       *string
	LastPatchDate     *string
	CPULoadTrend      *[]float64
	AlarmCount        *int
}

type patchField struct {
	name  string
	apply func(*Server)
	equal func(*Server) bool
}

// Apply copies every non-nil patch field onto dst and returns the names
// of the fields whose value actually changed, in declaration order.
// updatedAt/updatedBy are not part of the patch and never show up here.
func (p *ServerPatch) Apply(dst *Server) []string {
	var changed []string
	for _, f := range p.fields(dst) {
		if f.equal(dst) {
			continue
		}
		f.apply(dst)
		changed = append(changed, f.name)
	}
	return changed
}

func (p *ServerPatch) fields(cur *Server) []patchField {
	var fs []patchField
	str := func(name string, v *string, get func(*Server) *string) {
		if v == nil {
			return
		}
		fs = append(fs, patchField{
			name:  name,
			apply: func(s *Server) { *get(s) = *v },
			equal: func(s *Server) bool { return *get(s) == *v },
		})
	}
	num := func(name string, v *int, get func(*Server) *int) {
		if v == nil {
			return
		}
		fs = append(fs, patchField{
			name:  name,
			apply: func(s *Server) { *get(s) = *v },
			equal: func(s *Server) bool { return *get(s) == *v },
		})
	}
	str("serverName", p.ServerName, func(s *Server) *string { return &s.ServerName })
	str("operatingSystem", p.OperatingSystem, func(s *Server) *string { return &s.OperatingSystem })
	str("hardwareType", p.HardwareType, func(s *Server) *string { return &s.HardwareType })
	str("company", p.Company, func(s *Server) *string { return &s.Company })
	str("serverType", p.ServerType, func(s *Server) *string { return &s.ServerType })
	str("location", p.Location, func(s *Server) *string { return &s.Location })
	str("systemAdmin", p.SystemAdmin, func(s *Server) *string { return &s.SystemAdmin })
	str("backupAdmin", p.BackupAdmin, func(s *Server) *string { return &s.BackupAdmin })
	str("hardwareAdmin", p.HardwareAdmin, func(s *Server) *string { return &s.HardwareAdmin })
	str("description", p.Description, func(s *Server) *string { return &s.Description })
	str("domain", p.Domain, func(s *Server) *string { return &s.Domain })
	str("maintenanceWindow", p.MaintenanceWindow, func(s *Server) *string { return &s.MaintenanceWindow })
	str("ipAddress", p.IPAddress, func(s *Server) *string { return &s.IPAddress })
	str("applicationZone", p.ApplicationZone, func(s *Server) *string { return &s.ApplicationZone })
	str("operationalZone", p.OperationalZone, func(s *Server) *string { return &s.OperationalZone })
	str("backup", p.Backup, func(s *Server) *string { return &s.Backup })
	if p.Tags != nil {
		v := *p.Tags
		fs = append(fs, patchField{
			name:  "tags",
			apply: func(s *Server) { s.Tags = v },
			equal: func(s *Server) bool { return equalStrings(s.Tags, v) },
		})
	}
	num("cores", p.Cores, func(s *Server) *int { return &s.Cores })
	num("ramGB", p.RamGB, func(s *Server) *int { return &s.RamGB })
	num("storageGB", p.StorageGB, func(s *Server) *int { return &s.StorageGB })
	str("vsphereCluster", p.VsphereCluster, func(s *Server) *string { return &s.VsphereCluster })
	str("application", p.Application, func(s *Server) *string { return &s.Application })
	str("patchStatus", p.PatchStatus, func(s *Server) *string { return &s.PatchStatus })
	str("lastPatchDate", p.LastPatchDate, func(s *Server) *string { return &s.LastPatchDate })
	if p.CPULoadTrend != nil {
		v := *p.CPULoadTrend
		fs = append(fs, patchField{
			name:  "cpuLoadTrend",
			apply: func(s *Server) { s.CPULoadTrend = v },
			equal: func(s *Server) bool { return equalFloats(s.CPULoadTrend, v) },
		})
	}
	num("alarmCount", p.AlarmCount, func(s *Server) *int { return &s.AlarmCount })
	return fs
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
