// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"time"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/julian"
)

// null value sentinels of the fixed size date/time wire types.
const (
	realNullValue       uint32 = ^uint32(0)
	doubleNullValue     uint64 = ^uint64(0)
	longdateNullValue   int64  = 3155380704000000001
	seconddateNullValue int64  = 315538070401
	daydateNullValue    int32  = 3652062
	secondtimeNullValue int32  = 86401
)

var zeroTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// encodeDate writes the wire DATE part of tcDate/tcTimestamp: a year with its
// most significant bit set (used as the non-null marker), a zero based month
// and a one based day.
func encodeDate(e *encoding.Encoder, t time.Time) {
	year, month, day := t.Date()
	e.Uint16(uint16(year) | 0x8000)
	e.Int8(int8(month) - 1)
	e.Int8(int8(day))
}

// decodeDate reads the wire DATE part. null is true if the most significant
// bit of the year is unset.
func decodeDate(d *encoding.Decoder) (int, time.Month, int, bool) {
	year := d.Uint16()
	null := (year & 0x8000) == 0
	year &= 0x3fff
	month := d.Int8()
	month++
	day := d.Int8()
	return int(year), time.Month(month), int(day), null
}

// encodeTime writes the wire TIME part of tcTime/tcTimestamp: an hour with
// its most significant bit set, a minute and millisecond precision.
func encodeTime(e *encoding.Encoder, t time.Time) {
	e.Byte(byte(t.Hour()) | 0x80)
	e.Int8(int8(t.Minute()))
	millisecs := t.Second()*1000 + t.Nanosecond()/1000000
	e.Uint16(uint16(millisecs))
}

// decodeTime reads the wire TIME part. null is true if the most significant
// bit of the hour is unset.
func decodeTime(d *encoding.Decoder) (int, int, int, bool) {
	hour := d.Byte()
	null := (hour & 0x80) == 0
	hour &= 0x7f
	minute := d.Int8()
	millisecs := d.Uint16()
	nanosecs := int(millisecs) * 1000000
	return int(hour), int(minute), nanosecs, null
}

// julianHdb is the Julian Day Number of 1 January 0001 00:00:00 (1721424)
// minus one, so that the HANA DAYDATE epoch (day 1) lands on that date.
const julianHdb = 1721423

func convertTimeToDayDate(t time.Time) int64 {
	return int64(julian.TimeToDay(t) - julianHdb)
}

func convertDaydateToTime(daydate int64) time.Time {
	return julian.DayToTime(int(daydate) + julianHdb)
}

// nanosecond: HANA longdate has 7 digits precision (not 9 digits).
func convertTimeToLongdate(t time.Time) int64 {
	t = t.UTC()
	return (((((((convertTimeToDayDate(t)-1)*24)+int64(t.Hour()))*60)+int64(t.Minute()))*60)+int64(t.Second()))*10000000 + int64(t.Nanosecond()/100) + 1
}

func convertLongdateToTime(longdate int64) time.Time {
	const dayfactor = 10000000 * 24 * 60 * 60
	longdate--
	d := (longdate % dayfactor) * 100
	t := convertDaydateToTime((longdate / dayfactor) + 1)
	return t.Add(time.Duration(d))
}

func convertTimeToSeconddate(t time.Time) int64 {
	t = t.UTC()
	return (((((convertTimeToDayDate(t)-1)*24)+int64(t.Hour()))*60)+int64(t.Minute()))*60 + int64(t.Second()) + 1
}

func convertSeconddateToTime(seconddate int64) time.Time {
	const dayfactor = 24 * 60 * 60
	seconddate--
	d := (seconddate % dayfactor) * 1000000000
	t := convertDaydateToTime((seconddate / dayfactor) + 1)
	return t.Add(time.Duration(d))
}

func convertTimeToSecondtime(t time.Time) int32 {
	t = t.UTC()
	return int32((t.Hour()*60+t.Minute())*60 + t.Second() + 1)
}

func convertSecondtimeToTime(secondtime int32) time.Time {
	return zeroTime.Add(time.Duration(int64(secondtime-1) * 1000000000))
}
