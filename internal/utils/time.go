package util

import (
	"strings"
	"sync"
	"time"
)

// LocalDateTime renders timestamps in the application's zone without an
// offset, which is what the quiz front-ends display as-is.
type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

var (
	locMu    sync.RWMutex
	location = time.FixedZone("CET", 1*60*60)
)

func init() {
	_ = SetLocation("Europe/Amsterdam")
}

// SetLocation switches the zone used for formatting and parsing. On an
// unknown zone name the previous zone is kept and the error returned.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	locMu.Lock()
	location = loc
	locMu.Unlock()
	return nil
}

func currentLocation() *time.Location {
	locMu.RLock()
	defer locMu.RUnlock()
	return location
}

func Now() LocalDateTime {
	return LocalDateTime{Time: time.Now().In(currentLocation())}
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s, currentLocation())
	if err != nil {
		return err
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(currentLocation()).Format(layout) + `"`), nil
}

func (ldt LocalDateTime) Equal(other LocalDateTime) bool {
	return ldt.Time.Equal(other.Time)
}
