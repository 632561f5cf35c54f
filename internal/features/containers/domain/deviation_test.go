package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	today := time.Date(2024, 6, 20, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		container Container
		want      Deviation
	}{
		{
			name:      "Transit picked up inside window",
			container: Container{Status: StatusTransit, WindowStart: "2024-06-10", WindowEnd: "2024-06-14", PickupDate: "2024-06-12"},
			want:      DeviationNone,
		},
		{
			name:      "Transit picked up on window end",
			container: Container{Status: StatusTransit, WindowStart: "2024-06-10", WindowEnd: "2024-06-14", PickupDate: "2024-06-14"},
			want:      DeviationNone,
		},
		{
			name:      "Transit picked up the day after window end",
			container: Container{Status: StatusTransit, WindowStart: "2024-06-10", WindowEnd: "2024-06-14", PickupDate: "2024-06-15"},
			want:      DeviationLate,
		},
		{
			name:      "Transit picked up on window start",
			container: Container{Status: StatusTransit, WindowStart: "2024-06-10", WindowEnd: "2024-06-14", PickupDate: "10/06/2024"},
			want:      DeviationNone,
		},
		{
			name:      "Yard picked up before window start",
			container: Container{Status: StatusYard, WindowStart: "2024-06-10", WindowEnd: "2024-06-14", PickupDate: "2024-06-09T23:00:00Z"},
			want:      DeviationEarly,
		},
		{
			name:      "Transit without pickup date",
			container: Container{Status: StatusTransit, WindowStart: "2024-06-10", WindowEnd: "2024-06-14"},
			want:      DeviationNone,
		},
		{
			name:      "Transit with malformed window",
			container: Container{Status: StatusTransit, WindowStart: "soon", WindowEnd: "2024-06-14", PickupDate: "2024-06-30"},
			want:      DeviationNone,
		},
		{
			name:      "Planning with window closed before today",
			container: Container{Status: StatusPlanning, WindowStart: "2024-06-10", WindowEnd: "2024-06-19"},
			want:      DeviationLate,
		},
		{
			name:      "Planning with window closing today",
			container: Container{Status: StatusPlanning, WindowStart: "2024-06-17", WindowEnd: "2024-06-20"},
			want:      DeviationNone,
		},
		{
			name:      "Planning cannot be early",
			container: Container{Status: StatusPlanning, WindowStart: "2024-07-01", WindowEnd: "2024-07-05", PickupDate: "2024-06-01"},
			want:      DeviationNone,
		},
		{
			name:      "Planning without window end",
			container: Container{Status: StatusPlanning, WindowStart: "2024-06-01"},
			want:      DeviationNone,
		},
		{
			name:      "Deleted is never classified",
			container: Container{Status: StatusDeleted, WindowStart: "2024-06-10", WindowEnd: "2024-06-14", PickupDate: "2024-06-30"},
			want:      DeviationNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(&tt.container, today))
		})
	}
}

func TestIsCollectWeek(t *testing.T) {
	// Thursday of ISO week 25 of 2024.
	today := time.Date(2024, 6, 20, 8, 0, 0, 0, time.UTC)

	assert.True(t, IsCollectWeek(&Container{Status: StatusPlanning, WindowEnd: "2024-06-21"}, today))
	assert.False(t, IsCollectWeek(&Container{Status: StatusPlanning, WindowEnd: "2024-06-24"}, today))
	assert.True(t, IsCollectWeek(&Container{Status: StatusTransit, WindowEnd: "2024-06-01", PickupDate: "17/06/2024"}, today))
	assert.False(t, IsCollectWeek(&Container{Status: StatusTransit, WindowEnd: "2024-06-21"}, today))
	assert.False(t, IsCollectWeek(&Container{Status: StatusPlanning, WindowEnd: "2023-06-22"}, today))
}
