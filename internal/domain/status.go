package domain

import "time"

// APIStatus is the outcome of the latest reachability probe of the booking
// API.
type APIStatus struct {
	Checked   bool
	Up        bool
	LastCheck time.Time
	LastError string
}
