package aggregate

// stateCodes maps state abbreviations to their IRS FIRE Combined
// Federal/State Filing codes. Only states participating in the CF/SF
// program appear; everything else files separately. This is versioned
// reference data from Publication 1220 - update the list when the IRS
// revises the participant roster, the aggregation logic never changes.
var stateCodes = map[string]int{
	"AL": 1, "AZ": 4, "AR": 5, "CA": 6, "CO": 7, "CT": 8,
	"DE": 10, "GA": 13, "HI": 15, "ID": 16, "IN": 18, "KS": 20, "LA": 22,
	"ME": 23, "MD": 24, "MA": 25, "MI": 26, "MN": 27, "MS": 28, "MO": 29, "MT": 30,
	"NE": 31, "NJ": 34, "NM": 35, "NC": 37, "ND": 38,
	"OH": 39, "OK": 40, "SC": 45, "WI": 55,
}

// StateCode returns the CF/SF code for a state abbreviation. The second
// return value is false when the state does not participate in the program.
func StateCode(abbrev string) (int, bool) {
	code, ok := stateCodes[abbrev]
	return code, ok
}
