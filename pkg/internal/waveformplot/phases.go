package waveformplot

import (
	"image/color"

	"gonum.org/v1/plot/plotutil"
)

// Phases maps SeisBench arrival keys to the phase name drawn on pick markers.
// Every key a label record may carry must resolve here before a marker is
// drawn; unknown keys in a record are simply not phase picks.
var Phases = map[string]string{
	"trace_p_arrival_sample":    "P",
	"trace_pP_arrival_sample":   "P",
	"trace_P_arrival_sample":    "P",
	"trace_P1_arrival_sample":   "P",
	"trace_Pg_arrival_sample":   "P",
	"trace_Pn_arrival_sample":   "P",
	"trace_PmP_arrival_sample":  "P",
	"trace_pwP_arrival_sample":  "P",
	"trace_pwPm_arrival_sample": "P",
	"trace_s_arrival_sample":    "S",
	"trace_S_arrival_sample":    "S",
	"trace_S1_arrival_sample":   "S",
	"trace_Sg_arrival_sample":   "S",
	"trace_SmS_arrival_sample":  "S",
	"trace_Sn_arrival_sample":   "S",
}

// Colors maps phase names to marker colors, following the category palette
// ordering (P first, S second). A phase name missing here fails AddPicks
// with ErrUnmappedPhase.
var Colors = map[string]color.Color{
	"P": plotutil.Color(0),
	"S": plotutil.Color(1),
}
