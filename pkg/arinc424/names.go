package arinc424

// ApproachTypeNames maps the route-type code of an approach procedure
// identifier to its human-readable approach type.
var ApproachTypeNames = map[string]string{
	"B": "LOC/DME BC",
	"D": "VOR/DME",
	"G": "GPS",
	"I": "ILS",
	"H": "RNP",
	"L": "LOC",
	"N": "NDB",
	"Q": "NDB/DME",
	"P": "GPS",
	"S": "VOR using VOR/DME",
	"R": "RNAV",
	"U": "SDF",
	"V": "VOR",
	"X": "LDA",
}
