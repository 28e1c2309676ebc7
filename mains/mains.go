// SPDX-License-Identifier: EPL-2.0

// Package mains guesses the local electrical mains frequency from the
// system timezone, so synthesized hum matches what local recordings pick up.
package mains

import (
	"strings"
	"sync"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// Mains frequencies in Hz.
const (
	Hz50 = 50.0
	Hz60 = 60.0

	// Default is used whenever the country cannot be resolved.
	Default = Hz50
)

// Detection is the outcome of a lookup. Timezone and Country are empty when
// they could not be determined.
type Detection struct {
	Timezone string
	Country  string
	Hz       float64
}

var countryMap = sync.OnceValues(tz.NewTimezoneCountryMap)

// Frequency returns the mains frequency for the machine's timezone.
func Frequency() float64 {
	return Detect().Hz
}

// Detect resolves the runtime timezone and maps it to a frequency.
func Detect() Detection {
	zone, err := tzlocal.RuntimeTZ()
	if err != nil || zone == "" {
		return Detection{Hz: Default}
	}
	return ForTimezone(zone)
}

// ForTimezone maps an IANA timezone name to a frequency.
func ForTimezone(zone string) Detection {
	d := Detection{Timezone: zone, Hz: Default}

	// No country behind these
	if zone == "UTC" || zone == "GMT" || strings.HasPrefix(zone, "Etc/") {
		return d
	}

	m, err := countryMap()
	if err != nil {
		return d
	}
	country, err := m.GetCountry(zone)
	if err != nil {
		return d
	}

	d.Country = country
	d.Hz = ForCountry(country)
	return d
}

// ForCountry returns 60 for the countries listed in hz60, 50 otherwise.
// Japan runs both; the 50Hz east (Tokyo) wins.
func ForCountry(country string) float64 {
	if _, ok := hz60[country]; ok {
		return Hz60
	}
	return Hz50
}

// https://en.wikipedia.org/wiki/Mains_electricity_by_country
var hz60 = map[string]struct{}{
	"United States": {}, "Canada": {}, "Mexico": {},

	"Belize": {}, "Costa Rica": {}, "El Salvador": {}, "Guatemala": {},
	"Honduras": {}, "Nicaragua": {}, "Panama": {},

	"Bahamas": {}, "Barbados": {}, "Cayman Islands": {}, "Cuba": {},
	"Dominican Republic": {}, "Haiti": {}, "Jamaica": {}, "Puerto Rico": {},
	"Trinidad and Tobago": {}, "U.S. Virgin Islands": {},

	// Brazil is mixed, mostly 60Hz
	"Brazil": {}, "Colombia": {}, "Ecuador": {}, "Guyana": {}, "Peru": {},
	"Suriname": {}, "Venezuela": {},

	"South Korea": {}, "Taiwan": {}, "Philippines": {}, "Saudi Arabia": {},

	"Guam": {}, "American Samoa": {}, "Marshall Islands": {}, "Micronesia": {},
	"Palau": {},
}
