package experience

import (
	"testing"
	"time"

	"github.com/jonathan/resume-forge/internal/types"
)

func record(start string) types.ExperienceRecord {
	return types.ExperienceRecord{Company: "Acme", StartDate: start, EndDate: "present"}
}

func TestYearsAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		records []types.ExperienceRecord
		want    int
	}{
		{"empty", nil, 0},
		{"single record", []types.ExperienceRecord{record("2018-06-01")}, 8},
		{"earliest wins", []types.ExperienceRecord{record("2021-01-01"), record("2015-03-01"), record("2019-09-01")}, 12},
		{"present start date", []types.ExperienceRecord{record("present")}, 0},
		{"present mixed case", []types.ExperienceRecord{record("Present")}, 0},
		{"month year layout", []types.ExperienceRecord{record("Jun 2018")}, 8},
		{"year only", []types.ExperienceRecord{record("2020")}, 7},
		{"rounds to nearest", []types.ExperienceRecord{record("2023-02-01")}, 4},
		{"unparseable treated as now", []types.ExperienceRecord{record("whenever")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YearsAt(tt.records, now); got != tt.want {
				t.Errorf("YearsAt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestYearsAt_OrderIndependent(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	a := []types.ExperienceRecord{record("2015-03-01"), record("2019-09-01"), record("2021-01-01")}
	b := []types.ExperienceRecord{record("2021-01-01"), record("2015-03-01"), record("2019-09-01")}
	c := []types.ExperienceRecord{record("2019-09-01"), record("2021-01-01"), record("2015-03-01")}

	want := YearsAt(a, now)
	if got := YearsAt(b, now); got != want {
		t.Errorf("permuted input changed result: %d vs %d", got, want)
	}
	if got := YearsAt(c, now); got != want {
		t.Errorf("permuted input changed result: %d vs %d", got, want)
	}
}

func TestYearsAt_Idempotent(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	records := []types.ExperienceRecord{record("2016-01-15"), record("2020-05-01")}
	first := YearsAt(records, now)
	second := YearsAt(records, now)
	if first != second {
		t.Errorf("repeated calls differ: %d vs %d", first, second)
	}
}
