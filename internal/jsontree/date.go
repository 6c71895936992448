// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsontree

// AssembleDate builds an ISO-8601 date prefix from the registry's partial
// date structure {year:{value}, month:{value}, day:{value}}. Assembly
// truncates at the first absent component: "2020", "2020-03", or
// "2020-03-15". An absent year yields "". Components are zero-padded but
// not checked against the calendar; the registry itself accepts dates like
// February 31 and this mirrors that.
func AssembleDate(v Value) string {
	year := v.Get("year", "value").Str()
	if year == "" {
		return ""
	}
	out := zeroPad(year, 4)
	month := v.Get("month", "value").Str()
	if month == "" {
		return out
	}
	out += "-" + zeroPad(month, 2)
	day := v.Get("day", "value").Str()
	if day == "" {
		return out
	}
	return out + "-" + zeroPad(day, 2)
}

func zeroPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
