package ids

import "github.com/segmentio/ksuid"

// New returns a time-sortable unique identifier used for database keys.
func New() string {
	return ksuid.New().String()
}
