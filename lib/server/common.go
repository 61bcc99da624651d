package server

type Filters struct {
	FilterAreas    string `form:"areas"`
	FilterMeasures string `form:"measures"`
	FilterYears    string `form:"years"`
}

type ListParams struct {
	GridParams
	Filters
}

type AreaParams struct {
	Code string `uri:"code"`
	Filters
}
