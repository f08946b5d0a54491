package export

import (
	"strings"
	"testing"
	"time"

	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderForField(t *testing.T) {
	testCases := []struct {
		field    string
		expected string
	}{
		{"serverName", "Server Name"},
		{"operatingSystem", "Operating System"},
		{"ipAddress", "Ip Address"},
		{"backup", "Backup"},
		{"ramGB", "Ram G B"},
	}
	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			assert.Equal(t, tc.expected, HeaderForField(tc.field))
		})
	}
}

func TestToCSV(t *testing.T) {
	servers := []model.Server{
		{
			ServerName: `db "primary"`,
			Location:   "Berlin, DE",
			Tags:       []string{"db", "critical"},
		},
		{
			ServerName: "web-1",
			Location:   "Hamburg",
		},
	}

	got := string(ToCSV(servers, []string{"serverName", "location", "tags"}))

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Server Name,Location,Tags", lines[0])
	assert.Equal(t, `"db ""primary""","Berlin, DE","db, critical"`, lines[1])
	assert.Equal(t, `"web-1","Hamburg",""`, lines[2])
}

func TestToCSV_Timestamps(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	servers := []model.Server{{ServerName: "a", CreatedAt: created, UpdatedAt: created}}

	got := string(ToCSV(servers, []string{"createdAt"}))

	assert.Contains(t, got, `"2026-03-14 09:30:00"`)
}

func TestToExcel(t *testing.T) {
	servers := []model.Server{
		{ServerName: "web-1", Location: "Berlin", Tags: []string{"web"}},
		{ServerName: "db-1", Location: "Hamburg"},
	}

	f, err := ToExcel(servers, []string{"serverName", "location", "tags"})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Servers")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Server Name", "Location", "Tags"}, rows[0])
	assert.Equal(t, []string{"web-1", "Berlin", "web"}, rows[1])
	assert.Equal(t, "db-1", rows[2][0])
}
