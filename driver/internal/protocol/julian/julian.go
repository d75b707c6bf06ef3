// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Package julian converts between time.Time (at day granularity) and
// Julian Day Numbers, the representation HANA uses for its DAYDATE wire
// type. Dates on or after the 1582-10-15 Gregorian reform are converted
// using the Gregorian calendar; earlier dates use the Julian calendar,
// matching the classic "julday"/"caldat" algorithm so that 1582-10-04 and
// 1582-10-15 land on consecutive day numbers.
package julian

import "time"

// gregorianStart is the Julian Day Number of the first day of the
// Gregorian calendar, 1582-10-15.
const gregorianStart = 2299161

// TimeToDay returns the Julian Day Number of the date part of t.
func TimeToDay(t time.Time) int {
	t = t.UTC()
	y, m, d := t.Date()
	return julDay(y, int(m), d)
}

// DayToTime returns the UTC midnight time.Time for Julian Day Number jd.
func DayToTime(jd int) time.Time {
	y, m, d := calDat(jd)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func julDay(year, month, day int) int {
	jy, jm := year, month
	if month <= 2 {
		jy--
		jm += 12
	}
	jd := int(365.25*float64(jy)) + int(30.6001*float64(jm+1)) + day + 1720995
	// Gregorian reform: 1582-10-15 or later.
	if year > 1582 || (year == 1582 && (month > 10 || (month == 10 && day >= 15))) {
		ja := jy / 100
		jd += 2 - ja + ja/4
	}
	return jd
}

func calDat(jul int) (year, month, day int) {
	ja := jul
	if jul >= gregorianStart {
		jalpha := int((float64(jul-1867216) - 0.25) / 36524.25)
		ja = jul + 1 + jalpha - jalpha/4
	}
	jb := ja + 1524
	jc := int((float64(jb) - 122.1) / 365.25)
	jdd := int(365.25 * float64(jc))
	je := int(float64(jb-jdd) / 30.6001)
	day = jb - jdd - int(30.6001*float64(je))
	if je > 13 {
		month = je - 13
	} else {
		month = je - 1
	}
	if month > 2 {
		year = jc - 4716
	} else {
		year = jc - 4715
	}
	return
}
