package timeutil

import (
	"time"
)

// VET is the Venezuelan market's local time zone (UTC-4)
var VET *time.Location

func init() {
	var err error
	VET, err = time.LoadLocation("America/Caracas")
	if err != nil {
		// Fallback: create fixed zone if America/Caracas not available
		VET = time.FixedZone("VET", -4*60*60) // UTC-4
	}
}

// Now returns the current time in VET
func Now() time.Time {
	return time.Now().In(VET)
}

// In converts any time to VET
func In(t time.Time) time.Time {
	return t.In(VET)
}

// DisplayLayout is the VET timestamp format shown on reports.
const DisplayLayout = "02/01/2006 03:04 PM"
