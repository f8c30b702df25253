// Package arinc424 declares the ARINC 424 record layout as a fixedwidth
// schema: airports, heliports, runways, procedures and their legs, waypoints,
// navaids, airways, and airspace. The byte offsets are configuration data; all
// classification and decoding behavior lives in pkg/fixedwidth.
package arinc424

import (
	fw "github.com/dukaforge/navdata/pkg/fixedwidth"
)

// HeaderLines is the count of reserved records at the top of an ARINC 424
// file. They are skipped, not modeled.
const HeaderLines = 5

// Base layout shared by every record: the top-level discriminators.
var baseFields = []fw.Field{
	fw.Raw("record_type", 0, 1),
	fw.Raw("area_code", 1, 4),
	fw.Raw("section_code", 4, 5),
}

// Enroute section (E).

var enrouteFields = []fw.Field{
	fw.Raw("subsection_code", 5, 6),
}

var enrouteWaypointFields = []fw.Field{
	fw.Raw("waypoint_identifier", 13, 18),
	fw.Raw("icao_code", 19, 21),
	fw.Raw("continuation_record_no", 21, 22),
	fw.Raw("waypoint_type", 26, 29),
	fw.Raw("waypoint_usage", 29, 31),
	fw.Raw("latitude", 32, 41),
	fw.Raw("longitude", 41, 51),
	fw.Raw("magnetic_variation", 74, 79),
	fw.Raw("datum", 84, 87),
	fw.Raw("name_format_identifier", 95, 98),
	fw.Raw("waypoint_name", 98, 123),
}

var enrouteAirwayFields = []fw.Field{
	fw.TrimRight("route_identifier", 13, 18),
	fw.Raw("sequence_number", 25, 29),
	fw.TrimRight("fix_identifier", 29, 34),
	fw.Raw("icao_code", 34, 36),
	fw.Raw("section_code2", 36, 37),
	fw.Raw("subsection_code2", 37, 38),
	fw.Raw("continuation_record_no", 38, 39),
	fw.Raw("waypoint_description_code", 39, 43),
	fw.Raw("boundary_code", 43, 44),
	fw.Raw("route_type", 44, 45),
	fw.Raw("level", 45, 46),
	fw.Raw("direction_restriction", 46, 47),
	fw.Raw("cruise_table_indicator", 47, 49),
	fw.Raw("eu_indicator", 49, 50),
	fw.Raw("recommended_navaid", 50, 54),
	fw.Raw("recommended_navaid_icao_code", 54, 56),
	fw.Raw("rnp", 56, 59),
	fw.Raw("theta", 62, 66),
	fw.Raw("rho", 66, 70),
	fw.Raw("outbound_magnetic_course", 70, 74),
	fw.Raw("route_distance_from", 74, 78),
	fw.Raw("inbound_magnetic_course", 78, 82),
	fw.Raw("minimum_altitude", 83, 88),
	fw.Raw("minimum_altitude2", 88, 93),
	fw.Raw("maximum_altitude", 93, 98),
	fw.Raw("fix_radius_transition_indicator", 99, 101),
}

// Airport section (P) and heliport section (H).

var airportFields = []fw.Field{
	fw.TrimRight("code", 6, 10),
	fw.Raw("subsection_code", 12, 13),
}

var airportPrimaryFields = []fw.Field{
	fw.TrimRight("iata_designator", 13, 16),
	fw.Raw("continuation_record_no", 21, 22),
	fw.Raw("speed_limit_altitude", 22, 27),
	fw.Number("longest_runway", 27, 30),
	fw.Raw("ifr_capability", 30, 31),
	fw.Raw("longest_runway_surface_code", 31, 32),
	fw.LatLng("latitude", 32, 41),
	fw.LatLng("longitude", 41, 51),
	fw.Raw("magnetic_variation", 51, 56),
	fw.Number("airport_elevation", 56, 61),
	fw.Raw("speed_limit", 61, 64),
	fw.Raw("datum", 86, 89),
	fw.TrimRight("name", 93, 123),
}

var airportRunwayFields = []fw.Field{
	fw.TrimRight("runway_identifier", 13, 18),
	fw.Raw("continuation_record_no", 21, 22),
	fw.Number("runway_length", 22, 27),
	fw.Raw("runway_magnetic_bearing", 27, 31),
	fw.Raw("latitude", 32, 41),
	fw.Raw("longitude", 41, 51),
	fw.Raw("runway_gradient", 51, 56),
	fw.Number("runway_threshold_elevation", 66, 71),
	fw.Number("displaced_threshold", 71, 75),
	fw.Raw("threshold_crossing_height", 75, 77),
	fw.Raw("runway_width", 77, 80),
	fw.Raw("approach_navaid", 81, 85),
	fw.Raw("navaid_class", 85, 86),
	fw.Raw("stopway", 86, 90),
	fw.Raw("second_navaid", 90, 94),
	fw.Raw("second_navaid_class", 94, 95),
	fw.TrimRight("name", 101, 123),
}

// Departures, arrivals, and approaches share one layout, as do their
// transitions and procedure legs.
var procedureFields = []fw.Field{
	fw.TrimRight("identifier", 13, 19),
}

var transitionFields = []fw.Field{
	fw.Raw("route_type", 19, 20),
	fw.TrimRight("transition_identifier", 20, 25),
}

var procedureLegFields = []fw.Field{
	fw.Raw("sequence_number", 26, 29),
	fw.Raw("fix_identifier", 29, 34),
	fw.Raw("icao_code", 34, 36),
	fw.Raw("section_code2", 36, 37),
	fw.Raw("subsection_code2", 37, 38),
	fw.Raw("continuation_record_no", 38, 39),
	fw.Raw("waypoint_description_code", 39, 43),
	fw.Raw("turn_direction", 43, 44),
	fw.Raw("rnp", 44, 47),
	fw.Raw("path_and_termination", 47, 49),
	fw.Raw("turn_direction_valid", 49, 50),
	fw.Raw("recommended_navaid", 50, 54),
	fw.Raw("icao_code2", 54, 56),
	fw.Raw("arc_radius", 56, 62),
	fw.Raw("theta", 62, 66),
	fw.Raw("rho", 66, 70),
	fw.Raw("magnetic_course", 70, 74),
	fw.Raw("distance_or_time", 74, 78),
	fw.Raw("recd_nav_section", 78, 79),
	fw.Raw("recd_nav_subsection", 79, 80),
	fw.Raw("altitude_description", 82, 83),
	fw.Raw("atc_indicator", 83, 84),
	fw.Raw("altitude", 84, 89),
	fw.Raw("altitude2", 89, 94),
	fw.Raw("transition_altitude", 94, 99),
	fw.Raw("speed_limit", 99, 102),
	fw.Raw("vertical_angle", 102, 106),
	fw.Raw("center_fix_or_taa_indic", 106, 111),
	fw.Raw("multiple_code", 111, 112),
	fw.Raw("center_fix_icao_code", 112, 114),
	fw.Raw("center_fix_section_code", 114, 115),
	fw.Raw("center_fix_subsection_code", 115, 116),
	fw.Raw("gps_fms_indicator", 116, 117),
	fw.Raw("speed_limit_description", 117, 118),
	fw.Raw("apch_route_qualifier_1", 118, 119),
	fw.Raw("apch_route_qualifier_2", 119, 120),
}

var pathPointFields = []fw.Field{
	fw.Raw("identifier", 13, 19),
	fw.Raw("runway_or_helipad", 19, 24),
	fw.Raw("operation_type", 24, 26),
	fw.Raw("continuation_record_no", 26, 27),
	fw.Raw("route_indicator", 27, 28),
	fw.Raw("sbas_service_provider_identifier", 28, 30),
	fw.Raw("reference_path_data_selector", 30, 32),
	fw.Raw("reference_path_identifier", 32, 36),
	fw.Raw("approach_performance_designator", 36, 37),
	fw.Raw("landing_threshold_point_latitude", 37, 48),
	fw.Raw("landing_threshold_point_longitude", 48, 60),
	fw.Raw("ellipsoid_height", 60, 66),
	fw.Raw("glide_path_angle", 66, 70),
	fw.Raw("flight_path_alignment_latitude", 70, 81),
	fw.Raw("flight_path_alignment_longitude", 81, 93),
	fw.Raw("course_width_at_threshold", 93, 98),
	fw.Raw("length_offset", 98, 102),
	fw.Raw("path_point_tch", 102, 108),
	fw.Raw("tch_units_indicator", 108, 109),
	fw.Raw("hal", 109, 112),
	fw.Raw("val", 112, 115),
	fw.Raw("sbas_fas_crc_remainder", 115, 123),
	fw.Raw("file_record_no", 123, 128),
	fw.Raw("cycle_date", 128, 132),
}

var heliportFields = []fw.Field{
	fw.TrimRight("code", 6, 10),
	fw.Raw("subsection_code", 12, 13),
}

var heliportPrimaryFields = []fw.Field{
	fw.TrimRight("iata_designator", 13, 16),
	fw.Raw("pad_identifier", 16, 21),
	fw.Raw("continuation_record_no", 21, 22),
	fw.Raw("speed_limit_altitude", 22, 27),
	fw.Raw("datum", 27, 30),
	fw.Raw("ifr_capability", 30, 31),
	fw.LatLng("latitude", 32, 41),
	fw.LatLng("longitude", 41, 51),
	fw.Raw("magnetic_variation", 51, 56),
	fw.Number("heliport_elevation", 56, 61),
	fw.Raw("speed_limit", 61, 64),
	fw.Raw("recommended_vhf_navaid", 64, 68),
	fw.Raw("transition_altitude", 70, 75),
	fw.Raw("transition_level", 75, 80),
	fw.Raw("public_military_indicator", 80, 81),
	fw.Raw("time_zone", 81, 84),
	fw.Raw("daylight_indicator", 84, 85),
	fw.Raw("pad_dimensions", 85, 91),
	fw.Raw("magnetic_true_indicator", 91, 92),
	fw.TrimRight("name", 93, 123),
}

// Navaid section (D).

var navaidFields = []fw.Field{
	fw.Raw("subsection_code", 5, 6),
}

var vhfNavaidFields = []fw.Field{
	fw.TrimRight("airport_code", 6, 10),
	fw.TrimRight("vor_identifier", 13, 17),
	fw.Raw("icao_code", 19, 21),
	fw.Raw("continuation_record_no", 21, 22),
	fw.Raw("vor_frequency", 22, 27),
	fw.Raw("navaid_class", 27, 32),
	fw.LatLng("latitude", 32, 41),
	fw.LatLng("longitude", 41, 51),
	fw.Raw("dme_ident", 51, 55),
	fw.Raw("dme_latitude", 55, 64),
	fw.Raw("dme_longitude", 64, 74),
	fw.Raw("station_declination", 74, 79),
	fw.Raw("dme_elevation", 79, 84),
	fw.Raw("figure_of_merit", 84, 85),
	fw.Raw("ils_dme_bias", 85, 87),
	fw.Raw("frequency_protection", 87, 90),
	fw.Raw("datum", 90, 93),
	fw.TrimRight("name", 93, 123),
}

var ndbNavaidFields = []fw.Field{
	fw.TrimRight("airport_code", 6, 10),
	fw.TrimRight("airport_icao_code", 10, 12),
	fw.Raw("ndb_identifier", 13, 17),
	fw.Raw("icao_code", 19, 21),
	fw.Raw("continuation_record_no", 21, 22),
	fw.Raw("ndb_frequency", 22, 27),
	fw.Raw("ndb_class", 27, 32),
	fw.Raw("latitude", 32, 41),
	fw.Raw("longitude", 41, 51),
	fw.Raw("station_declination", 74, 79),
	fw.Raw("datum", 90, 93),
	fw.TrimRight("name", 93, 123),
}

// Airspace section (U).

var airspaceFields = []fw.Field{
	fw.Raw("subsection_code", 5, 6),
}

var controlledAirspaceFields = []fw.Field{
	fw.TrimRight("icao_code", 6, 8),
	fw.Raw("airspace_type", 8, 9),
	fw.TrimRight("airspace_center", 9, 14),
	fw.Raw("section_code2", 14, 15),
	fw.Raw("subsection_code2", 15, 16),
	fw.Raw("airspace_classification", 16, 17),
	fw.Raw("multiple_code", 19, 20),
	fw.Raw("sequence_number", 20, 24),
	fw.Raw("continuation_record_no", 24, 25),
	fw.Raw("level", 25, 26),
	fw.Raw("time_code", 26, 27),
	fw.Raw("notam", 27, 28),
	fw.TrimRight("boundary_via", 30, 32),
	fw.Raw("latitude", 32, 41),
	fw.Raw("longitude", 41, 51),
	fw.Raw("arc_origin_latitude", 51, 60),
	fw.Raw("arc_origin_longitude", 60, 70),
	fw.Raw("arc_distance", 70, 74),
	fw.Raw("arc_bearing", 74, 78),
	fw.Raw("rnp", 78, 81),
	fw.Raw("lower_limit", 81, 86),
	fw.Raw("unit_indicator", 86, 87),
	fw.Raw("upper_limit", 87, 92),
	fw.Raw("unit_indicator2", 92, 93),
	fw.TrimRight("name", 93, 123),
}

var restrictiveAirspaceFields = []fw.Field{
	fw.TrimRight("icao_code", 6, 8),
	fw.Raw("restrictive_type", 8, 9),
	fw.TrimRight("airspace_designation", 9, 19),
	fw.Raw("multiple_code", 19, 20),
	fw.Raw("sequence_number", 20, 24),
	fw.Raw("continuation_record_no", 24, 25),
	fw.Raw("level", 25, 26),
	fw.Raw("time_code", 26, 27),
	fw.Raw("notam", 27, 28),
	fw.TrimRight("boundary_via", 30, 32),
	fw.Raw("latitude", 32, 41),
	fw.Raw("longitude", 41, 51),
	fw.Raw("arc_origin_latitude", 51, 60),
	fw.Raw("arc_origin_longitude", 60, 70),
	fw.Raw("arc_distance", 70, 74),
	fw.Raw("arc_bearing", 74, 78),
	fw.Raw("lower_limit", 81, 86),
	fw.Raw("unit_indicator", 86, 87),
	fw.Raw("upper_limit", 87, 92),
	fw.Raw("unit_indicator2", 92, 93),
	fw.TrimRight("name", 93, 123),
}

// NewSchema builds a fresh ARINC 424 schema tree. Each tree carries the
// mutable state of one ingestion run, so callers build one per source file.
func NewSchema() (*fw.Tree, error) {
	b := fw.NewBuilder(fw.ClassDef{
		Label:         "Record",
		Discriminator: "section_code",
		Fields:        baseFields,
	})

	b.Add(fw.ClassDef{
		Label: "Enroute", Parent: "Record", Activation: "E",
		Discriminator: "subsection_code", Fields: enrouteFields,
	})
	b.Add(fw.ClassDef{
		Label: "EnrouteWaypoint", Parent: "Enroute", Activation: "A",
		Fields: enrouteWaypointFields, Key: []string{"waypoint_identifier"},
	})
	b.Add(fw.ClassDef{
		Label: "EnrouteAirway", Parent: "Enroute", Activation: "R",
		Fields: enrouteAirwayFields, Key: []string{"route_identifier"},
	})

	b.Add(fw.ClassDef{
		Label: "Airport", Parent: "Record", Activation: "P",
		Discriminator: "subsection_code", Fields: airportFields,
		Key: []string{"code"}, ExportAuxiliary: "AirportPrimaryRecord",
	})
	b.Add(fw.ClassDef{
		Label: "AirportPrimaryRecord", Parent: "Airport", Activation: "A",
		Fields: airportPrimaryFields,
	})
	b.Add(fw.ClassDef{
		Label: "AirportRunway", Parent: "Airport", Activation: "G",
		Fields: airportRunwayFields, Key: []string{"code", "runway_identifier"},
	})
	b.Add(fw.ClassDef{
		Label: "AirportWaypoint", Parent: "Airport", Activation: "C",
		Fields: enrouteWaypointFields, Key: []string{"waypoint_identifier"},
	})
	b.Add(fw.ClassDef{
		Label: "AirportPathPoint", Parent: "Airport", Activation: "P",
		Fields: pathPointFields, Key: []string{"code", "identifier"},
	})
	addProcedures(b, "Airport")

	b.Add(fw.ClassDef{
		Label: "Heliport", Parent: "Record", Activation: "H",
		Discriminator: "subsection_code", Fields: heliportFields,
		Key: []string{"code"}, ExportAuxiliary: "HeliportPrimaryRecord",
	})
	b.Add(fw.ClassDef{
		Label: "HeliportPrimaryRecord", Parent: "Heliport", Activation: "A",
		Fields: heliportPrimaryFields,
	})
	addProcedures(b, "Heliport")

	b.Add(fw.ClassDef{
		Label: "Navaid", Parent: "Record", Activation: "D",
		Discriminator: "subsection_code", Fields: navaidFields,
	})
	b.Add(fw.ClassDef{
		Label: "VHFNavaid", Parent: "Navaid", Activation: " ",
		Fields: vhfNavaidFields, Key: []string{"area_code", "vor_identifier"},
	})
	b.Add(fw.ClassDef{
		Label: "NDBNavaid", Parent: "Navaid", Activation: "B",
		Fields: ndbNavaidFields, Key: []string{"ndb_identifier"},
	})

	b.Add(fw.ClassDef{
		Label: "Airspace", Parent: "Record", Activation: "U",
		Discriminator: "subsection_code", Fields: airspaceFields,
	})
	b.Add(fw.ClassDef{
		Label: "ControlledAirspace", Parent: "Airspace", Activation: "C",
		Fields: controlledAirspaceFields,
		Key:    []string{"airspace_center", "airspace_classification", "multiple_code"},
	})
	b.Add(fw.ClassDef{
		Label: "RestrictiveAirspace", Parent: "Airspace", Activation: "R",
		Fields: restrictiveAirspaceFields,
		Key:    []string{"restrictive_type", "airspace_designation", "multiple_code"},
	})

	return b.Build()
}

// addProcedures wires the departure/arrival/approach subtree shared by the
// airport and heliport families: procedure -> transition -> leg, the last two
// descended into unconditionally.
func addProcedures(b *fw.Builder, family string) {
	kinds := []struct {
		activation string
		kind       string
	}{
		{"D", "Departure"},
		{"E", "Arrival"},
		{"F", "Approach"},
	}
	for _, k := range kinds {
		procedure := family + k.kind
		transition := procedure + "Transition"
		leg := procedure + "Waypoint"

		b.Add(fw.ClassDef{
			Label: procedure, Parent: family, Activation: k.activation,
			Fields: procedureFields, Key: []string{"code", "identifier"},
		})
		b.Add(fw.ClassDef{
			Label: transition, Parent: procedure,
			Fields: transitionFields,
			Key:    []string{"code", "identifier", "transition_identifier"},
		})
		b.Add(fw.ClassDef{
			Label: leg, Parent: transition,
			Fields: procedureLegFields,
			Key:    []string{"code", "identifier", "transition_identifier", "fix_identifier"},
		})
	}
}
