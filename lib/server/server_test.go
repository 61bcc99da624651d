package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/bethyw/lib/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *server {
	areas := model.NewAreas()

	for _, code := range []string{"W06000002", "W06000001"} {
		a := areas.GetOrCreate(code)
		_ = a.SetName("eng", "Name of "+code)

		pop := model.NewMeasure("pop", "Population")
		pop.SetValue(1991, 100)
		pop.SetValue(1993, 300)
		a.SetMeasure("pop", pop)
	}

	return newServer(areas, nil)
}

func get(t *testing.T, s *server, url string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)

	return w
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	s := newTestServer()

	assert.Equal(t, uint(2427), s.opts.Port)
	assert.Equal(t, 6, s.opts.Render.Precision)
}

func TestListAreas(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/areas")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total int `json:"total"`
		Data  []struct {
			Code     string `json:"code"`
			Title    string `json:"title"`
			Measures []struct {
				Codename   string  `json:"codename"`
				Average    float64 `json:"average"`
				Difference float64 `json:"difference"`
			} `json:"measures"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "W06000001", body.Data[0].Code)
	assert.Equal(t, "Name of W06000001 (W06000001)", body.Data[0].Title)
	assert.Equal(t, 200.0, body.Data[0].Measures[0].Average)
	assert.Equal(t, 200.0, body.Data[0].Measures[0].Difference)
}

func TestListAreasPaginated(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/areas?offset=1&limit=5")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total int `json:"total"`
		Data  []struct {
			Code string `json:"code"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "W06000002", body.Data[0].Code)
}

func TestGetArea(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/areas/W06000001?years=1991")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code     string `json:"code"`
		Measures []struct {
			Values map[string]float64 `json:"values"`
		} `json:"measures"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "W06000001", body.Code)
	assert.Equal(t, map[string]float64{"1991": 100}, body.Measures[0].Values)
}

func TestGetAreaNotFound(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/areas/W99")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAreaInvalidYears(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/areas/W06000001?years=abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvalidAreaPattern(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/text?areas=W%5B06")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAreaText(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/areas/W06000001/text")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Name of W06000001 (W06000001)\n"+
		"Population (pop)\n"+
		"      1991       1993    Average      Diff.    % Diff.\n"+
		"100.000000 300.000000 200.000000 200.000000 200.000000\n\n", w.Body.String())
}

func TestAllText(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/text?areas=W06000002&measures=area")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Name of W06000002 (W06000002)\n<no measures>\n\n", w.Body.String())
}

func TestAllJSON(t *testing.T) {
	t.Parallel()

	w := get(t, newTestServer(), "/api/json?areas=W06000001")
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{"W06000001": {"names": {"eng": "Name of W06000001"}, "measures": {"pop": {"1991": 100, "1993": 300}}}}`,
		w.Body.String())
}
