// Package querybuild turns dashboard filters into parameterized ClickHouse SQL
//
// Every value that arrives with a request is bound as a ? argument. Event names
// and parameter keys are constants of this package and are written as literals
package querybuild

import (
	"errors"
	"strings"

	pstrings "cubewars/internal/platform/strings"
)

// DefaultLevelCount caps per level reports when the caller sends no levelCount
const DefaultLevelCount = 50

// DefaultTable is the events table used when none is configured
const DefaultTable = "analytics.events"

var (
	// ErrMissingSelector is returned by DayBuckets when the event name or ad format is blank
	ErrMissingSelector = errors.New("querybuild: missing selector")

	// ErrInvalidLevel is returned when a level filter is not an integer
	ErrInvalidLevel = errors.New("querybuild: level must be an integer")

	// ErrUnknownKind is returned by Compose for kinds it does not build
	ErrUnknownKind = errors.New("querybuild: unknown report kind")

	// ErrInvalidTable is returned by NewComposer for table names that are not plain identifiers
	ErrInvalidTable = errors.New("querybuild: invalid table name")
)

// Filter is the set of dashboard filters shared by every report
// blank or "all" on Platform, Country, Version and Level means no narrowing
type Filter struct {
	StartDate  string
	EndDate    string
	Platform   string
	Country    string
	Version    string
	Level      string
	LevelCount int
}

// HasRange reports whether both dates are present
// a single date is treated as no range at all
func (f Filter) HasRange() bool {
	return !pstrings.Blank(f.StartDate) && !pstrings.Blank(f.EndDate)
}

// Limit returns LevelCount, or DefaultLevelCount when unset
func (f Filter) Limit() int {
	if f.LevelCount <= 0 {
		return DefaultLevelCount
	}
	return f.LevelCount
}

// Dim selects which user dimensions a cohort or filter list applies
type Dim uint8

const (
	DimPlatform Dim = 1 << iota
	DimCountry
	DimVersion

	AllDims = DimPlatform | DimCountry | DimVersion
)

// Has reports whether d includes o
func (d Dim) Has(o Dim) bool { return d&o == o }

func (f Filter) start() string { return strings.TrimSpace(f.StartDate) }
func (f Filter) end() string   { return strings.TrimSpace(f.EndDate) }
