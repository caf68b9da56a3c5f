package stacking_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/statforge/statforge/internal/engine/stacking"
	"github.com/statforge/statforge/internal/entities"
)

type ClassifierTestSuite struct {
	suite.Suite
	engine *stacking.Engine
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierTestSuite))
}

func (s *ClassifierTestSuite) SetupTest() {
	eng, err := stacking.New(&stacking.Config{})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *ClassifierTestSuite) TestKnownValues() {
	table := entities.DefaultRankTable()

	testCases := []struct {
		name  string
		value float64
		label string
	}{
		{"floor of range", 1, "Low Mortal"},
		{"mid range", 7, "Mid Mortal"},
		{"boundary high", 19, "Elite Mortal"},
		{"boundary next rank", 20, "Low Initiate"},
		{"truncates decimals", 19.99, "Elite Mortal"},
		{"deep table", 3200, "Mid Cataclysm"},
		{"open-ended top", 1_000_000, "Elite Divine"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			band := s.engine.ClassifyStat(table, tc.value)
			s.Assert().Equal(tc.label, band.Label)
		})
	}
}

func (s *ClassifierTestSuite) TestDegenerateValuesMapToLowestBand() {
	table := entities.DefaultRankTable()

	for _, v := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		band := s.engine.ClassifyStat(table, v)
		s.Assert().Equal("Low Mortal", band.Label, "value %v", v)
	}
}

func (s *ClassifierTestSuite) TestTotalityAndMonotonicity() {
	table := entities.DefaultRankTable()

	index := make(map[string]int, len(table))
	for i, band := range table {
		index[band.Label] = i
	}

	prev := 0
	for v := 0; v <= 20000; v++ {
		band := s.engine.ClassifyStat(table, float64(v))
		i, ok := index[band.Label]
		s.Require().True(ok, "value %d classified outside the table", v)
		s.Require().GreaterOrEqual(i, prev, "tier regressed at value %d", v)
		prev = i
	}
}

func (s *ClassifierTestSuite) TestGappedTableFallsBackToTopBand() {
	ten, twenty := 10, 20
	gapped := entities.RankTable{
		{Rank: "Low", Label: "Low", Min: 1, Max: &ten},
		// gap: 11..19 unmatched
		{Rank: "High", Label: "High", Min: twenty},
	}

	band := s.engine.ClassifyStat(gapped, 15)
	s.Assert().Equal("High", band.Label)
}

func (s *ClassifierTestSuite) TestEmptyTableUsesDefault() {
	band := s.engine.ClassifyStat(nil, 25)
	s.Assert().Equal("Mid Initiate", band.Label)
}
