package repo

import (
	"fmt"
	"strings"
	"time"
)

// Layouts SQLite datetime text can arrive in. Older databases hold
// CURRENT_TIMESTAMP values ("2006-01-02 15:04:05").
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02",
}

// sqliteTime scans a DATETIME column whether the driver hands back
// time.Time or raw text.
type sqliteTime struct {
	Time time.Time
}

func (t *sqliteTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("sqliteTime: unsupported type %T", src)
	}
}

func (t *sqliteTime) parse(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("sqliteTime: cannot parse %q", s)
}
