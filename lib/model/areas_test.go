package model

import (
	"testing"

	"github.com/bloomberg/go-testgroup"
)

func TestAreas(t *testing.T) {
	testgroup.RunInParallel(t, &AreasTests{})
}

type AreasTests struct {
}

func (g *AreasTests) SetAreaInserts(t *testgroup.T) {
	as := NewAreas()
	as.SetArea("W06000001", sampleArea("W06000001"))

	t.Equal(1, as.Size())

	a, err := as.GetArea("W06000001")
	t.NoError(err)
	t.True(a.Equal(sampleArea("W06000001")))
}

func (g *AreasTests) SetAreaMergesSameCode(t *testgroup.T) {
	as := NewAreas()
	as.SetArea("W06000001", sampleArea("W06000001"))

	other := NewArea("W06000001")
	t.NoError(other.SetName("cym", "Ynys Môn"))
	t.NoError(other.SetName("eng", "Anglesey"))
	m := NewMeasure("POP", "Pop.")
	m.SetValue(1992, 200)
	m.SetValue(1993, 300)
	other.SetMeasure("pop", m)

	as.SetArea("W06000001", other)

	t.Equal(1, as.Size())

	a, err := as.GetArea("W06000001")
	t.NoError(err)
	t.Equal(map[string]string{"eng": "Anglesey", "cym": "Ynys Môn"}, a.Names())

	pop, err := a.GetMeasure("pop")
	t.NoError(err)
	t.Equal("Population", pop.Label())
	t.Equal(map[int]float64{1991: 100, 1992: 200, 1993: 300}, pop.Values())
}

func (g *AreasTests) SetAreaSelfMergeIsIdempotent(t *testgroup.T) {
	as := NewAreas()
	as.SetArea("W06000001", sampleArea("W06000001"))

	a, err := as.GetArea("W06000001")
	t.NoError(err)

	as.SetArea("W06000001", a)
	as.SetArea("W06000001", a.Clone())

	t.Equal(1, as.Size())
	t.True(a.Equal(sampleArea("W06000001")))
}

func (g *AreasTests) GetAreaIsExact(t *testgroup.T) {
	as := NewAreas()
	as.SetArea("W06000001", sampleArea("W06000001"))

	_, err := as.GetArea("w06000001")

	t.ErrorIs(err, ErrNotFound)
}

func (g *AreasTests) GetOrCreate(t *testgroup.T) {
	as := NewAreas()

	a := as.GetOrCreate("W06000001")
	b := as.GetOrCreate("W06000001")

	t.Same(a, b)
	t.Equal(1, as.Size())
}

func (g *AreasTests) ListAreasSortedByCode(t *testgroup.T) {
	as := NewAreas()
	as.GetOrCreate("W06000003")
	as.GetOrCreate("W06000001")
	as.GetOrCreate("W06000002")

	t.Equal([]string{"W06000001", "W06000002", "W06000003"}, as.Codes())

	list := as.ListAreas()
	t.Len(list, 3)
	t.Equal("W06000001", list[0].Code())
	t.Equal("W06000003", list[2].Code())
}

func (g *AreasTests) MergeRegistries(t *testgroup.T) {
	as := NewAreas()
	as.SetArea("W06000001", sampleArea("W06000001"))

	other := NewAreas()
	other.SetArea("W06000001", sampleArea("W06000001"))
	other.SetArea("W06000002", sampleArea("W06000002"))

	as.Merge(other)

	t.Equal(2, as.Size())
	t.True(as.Equal(other))
}
