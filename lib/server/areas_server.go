package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
	"github.com/pescuma/bethyw/lib/render"
)

func (s *server) initAreas(r *gin.Engine) {
	r.GET("/api/areas", getP[ListParams](s.areasList))
	r.GET("/api/areas/:code", getP[AreaParams](s.areaGet))
	r.GET("/api/areas/:code/text", getTextP[AreaParams](s.areaText))
	r.GET("/api/json", getP[Filters](s.areasJSON))
	r.GET("/api/text", getTextP[Filters](s.areasText))
}

func (s *server) filter(params *Filters) (*model.Areas, error) {
	return filters.ParseAndFilterAreas(s.areas, params.FilterAreas, params.FilterMeasures, params.FilterYears)
}

func (s *server) filterArea(code string, params *Filters) (*model.Area, error) {
	area, err := s.areas.GetArea(code)
	if err != nil {
		return nil, err
	}

	f, err := filters.New(nil, filters.ParseList(params.FilterMeasures), params.FilterYears)
	if err != nil {
		return nil, err
	}

	return filters.FilterArea(area, f), nil
}

func (s *server) areasList(params *ListParams) (any, error) {
	areas, err := s.filter(&params.Filters)
	if err != nil {
		return nil, err
	}

	list := paginate(areas.ListAreas(), params.Offset, params.Limit)

	return gin.H{
		"total": areas.Size(),
		"data":  lo.Map(list, func(a *model.Area, _ int) gin.H { return s.toArea(a) }),
	}, nil
}

func (s *server) areaGet(params *AreaParams) (any, error) {
	area, err := s.filterArea(params.Code, &params.Filters)
	if err != nil {
		return nil, err
	}

	return s.toArea(area), nil
}

func (s *server) areaText(params *AreaParams) (string, error) {
	area, err := s.filterArea(params.Code, &params.Filters)
	if err != nil {
		return "", err
	}

	return render.FormatArea(area, s.opts.Render), nil
}

func (s *server) areasJSON(params *Filters) (any, error) {
	areas, err := s.filter(params)
	if err != nil {
		return nil, err
	}

	return render.AreasToJSON(areas), nil
}

func (s *server) areasText(params *Filters) (string, error) {
	areas, err := s.filter(params)
	if err != nil {
		return "", err
	}

	result := strings.Builder{}

	err = render.WriteAreas(&result, areas, s.opts.Render)
	if err != nil {
		return "", err
	}

	return result.String(), nil
}

func (s *server) toArea(a *model.Area) gin.H {
	return gin.H{
		"code":     a.Code(),
		"title":    render.AreaTitle(a),
		"names":    a.Names(),
		"measures": lo.Map(a.Measures(), func(m *model.Measure, _ int) gin.H { return s.toMeasure(m) }),
	}
}

func (s *server) toMeasure(m *model.Measure) gin.H {
	return gin.H{
		"codename":               m.Codename(),
		"label":                  m.Label(),
		"values":                 m.Values(),
		"average":                m.Average(),
		"difference":             m.Difference(),
		"differenceAsPercentage": m.DifferenceAsPercentage(),
	}
}
