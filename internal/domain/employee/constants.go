package employee

import "sort"

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusSuspended  = "suspended"
	StatusRetired    = "retired"
	StatusDeceased   = "deceased"
	StatusTerminated = "terminated"

	AppointmentPermanent  = "permanent"
	AppointmentContract   = "contract"
	AppointmentTemporary  = "temporary"
	AppointmentCasual     = "casual"
	AppointmentAttachment = "attachment"

	ZoneNorthCentral = "north_central"
	ZoneNorthEast    = "north_east"
	ZoneNorthWest    = "north_west"
	ZoneSouthEast    = "south_east"
	ZoneSouthSouth   = "south_south"
	ZoneSouthWest    = "south_west"
)

var Statuses = []string{
	StatusActive, StatusInactive, StatusSuspended,
	StatusRetired, StatusDeceased, StatusTerminated,
}

var AppointmentTypes = []string{
	AppointmentPermanent, AppointmentContract, AppointmentTemporary,
	AppointmentCasual, AppointmentAttachment,
}

// SalaryGradeLevels is the CONHESS/CONTISS-style grade ladder.
var SalaryGradeLevels = []string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9",
	"10", "11", "12", "13", "14", "15", "16", "17",
}

var SalaryStructures = []string{
	"contiss", "conraiss", "conhess", "conmess", "conpss", "others",
}

// GeoZones maps state of origin to its geopolitical zone. Passed into the
// promotion engine explicitly so deployments can override it.
var GeoZones = map[string]string{
	"benue":     ZoneNorthCentral,
	"fct":       ZoneNorthCentral,
	"kogi":      ZoneNorthCentral,
	"kwara":     ZoneNorthCentral,
	"nasarawa":  ZoneNorthCentral,
	"niger":     ZoneNorthCentral,
	"plateau":   ZoneNorthCentral,
	"adamawa":   ZoneNorthEast,
	"bauchi":    ZoneNorthEast,
	"borno":     ZoneNorthEast,
	"gombe":     ZoneNorthEast,
	"taraba":    ZoneNorthEast,
	"yobe":      ZoneNorthEast,
	"jigawa":    ZoneNorthWest,
	"kaduna":    ZoneNorthWest,
	"kano":      ZoneNorthWest,
	"katsina":   ZoneNorthWest,
	"kebbi":     ZoneNorthWest,
	"sokoto":    ZoneNorthWest,
	"zamfara":   ZoneNorthWest,
	"abia":      ZoneSouthEast,
	"anambra":   ZoneSouthEast,
	"ebonyi":    ZoneSouthEast,
	"enugu":     ZoneSouthEast,
	"imo":       ZoneSouthEast,
	"akwa_ibom": ZoneSouthSouth,
	"bayelsa":   ZoneSouthSouth,
	"cross_river": ZoneSouthSouth,
	"delta":     ZoneSouthSouth,
	"edo":       ZoneSouthSouth,
	"rivers":    ZoneSouthSouth,
	"ekiti":     ZoneSouthWest,
	"lagos":     ZoneSouthWest,
	"ogun":      ZoneSouthWest,
	"ondo":      ZoneSouthWest,
	"osun":      ZoneSouthWest,
	"oyo":       ZoneSouthWest,
}

// States lists the recognised state-of-origin codes.
var States = func() []string {
	out := make([]string, 0, len(GeoZones))
	for state := range GeoZones {
		out = append(out, state)
	}
	sort.Strings(out)
	return out
}()
