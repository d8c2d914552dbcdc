package models

// Comparison holds every derived height for one station.
// Heights are ellipsoidal and in metres.
type Comparison struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`

	EDVR90         float64 `json:"e_dvr90"`
	ELMSL1990      float64 `json:"e_lmsl1990"`
	EDKLAT         float64 `json:"e_dklat"`
	EDKMSL         float64 `json:"e_dkmsl"`
	DeltaMSL       float64 `json:"delta_msl"`
	RelativeUplift float64 `json:"relative_uplift"`
	ModelLAT       float64 `json:"dtu_lat"`
	DMILAT         float64 `json:"dmi_lat"`
	LATDiff        float64 `json:"lat_diff"`
}

func (c Comparison) DKLATMinusDVR90() float64 {
	return c.EDKLAT - c.EDVR90
}

func (c Comparison) DKMSLMinusDVR90() float64 {
	return c.EDKMSL - c.EDVR90
}

// DeltaMSLMinusUplift is the MSL difference corrected for relative uplift since 1990
func (c Comparison) DeltaMSLMinusUplift() float64 {
	return c.DeltaMSL - c.RelativeUplift
}
