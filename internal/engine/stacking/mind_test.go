package stacking_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/statforge/statforge/internal/engine/stacking"
	"github.com/statforge/statforge/internal/entities"
)

type MindTestSuite struct {
	suite.Suite
	engine *stacking.Engine
}

func TestMindSuite(t *testing.T) {
	suite.Run(t, new(MindTestSuite))
}

func (s *MindTestSuite) SetupTest() {
	eng, err := stacking.New(&stacking.Config{})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *MindTestSuite) TestKnownValues() {
	testCases := []struct {
		name         string
		intelligence float64
		wisdom       float64
		expected     float64
	}{
		{"perfect square", 16, 16, 16},
		{"rounds result", 10, 20, 14}, // sqrt(200) = 14.14...
		{"rounds up", 15, 15, 15},
		{"zero intelligence", 0, 100, 0},
		{"zero wisdom", 100, 0, 0},
		{"negative clamps to zero", -25, 100, 0},
		{"both negative", -4, -9, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.engine.ComputeMind(tc.intelligence, tc.wisdom))
		})
	}
}

func (s *MindTestSuite) TestSymmetry() {
	pairs := [][2]float64{{3, 7}, {12, 48}, {0, 9}, {100, 1}, {2.5, 6.5}}
	for _, p := range pairs {
		s.Assert().Equal(
			s.engine.ComputeMind(p[0], p[1]),
			s.engine.ComputeMind(p[1], p[0]),
			"mind(%v,%v) should be symmetric", p[0], p[1],
		)
	}
}

func (s *MindTestSuite) TestLookupBaseValueFoldsKeys() {
	stats := map[string]entities.AttributeValue{
		"intellígence": {Value: 9},
		"WÍSDOM":       {Value: 16},
	}

	s.Assert().Equal(9.0, s.engine.LookupBaseValue(stats, entities.AttributeIntelligence))
	s.Assert().Equal(16.0, s.engine.LookupBaseValue(stats, entities.AttributeWisdom))
	s.Assert().Equal(0.0, s.engine.LookupBaseValue(stats, "Strength"))
}

func (s *MindTestSuite) TestLookupBaseValueStableOnFoldCollision() {
	// Both keys fold to "wisdom"; the scan is sorted, so the
	// upper-cased key wins every call.
	stats := map[string]entities.AttributeValue{
		"WISDOM": {Value: 25},
		"wisdom": {Value: 100},
	}

	for i := 0; i < 10; i++ {
		s.Assert().Equal(25.0, s.engine.LookupBaseValue(stats, entities.AttributeWisdom))
	}
}
