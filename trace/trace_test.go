package trace_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lazork/lazork/board"
	"github.com/lazork/lazork/trace"
)

// TraceSuite exercises the beam simulator under both conventions.
type TraceSuite struct {
	suite.Suite
}

// mustBoard builds a board or fails the suite.
func (s *TraceSuite) mustBoard(grid []string, emitters []board.Emitter, targets []board.Point) *board.Board {
	b, err := board.New(grid, board.Stock{}, emitters, targets)
	require.NoError(s.T(), err)
	return b
}

// east is the canonical left-to-right emitter used across scenarios.
func east(x, y int) board.Emitter {
	return board.Emitter{Pos: board.Point{X: x, Y: y}, Dir: board.Delta{DX: 1, DY: 0}}
}

// TestStraightShot covers the 1×1 open-cell scenario: the beam crosses the
// sole cell and strikes the target on the far wall.
func (s *TraceSuite) TestStraightShot() {
	b := s.mustBoard([]string{"o"}, []board.Emitter{east(0, 1)}, []board.Point{{X: 2, Y: 1}})
	res, err := trace.Run(b, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Solved(b))
	require.Contains(s.T(), res.Hits, board.Point{X: 2, Y: 1})
	require.Equal(s.T(), []board.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}, res.Trajectory)
}

// TestOpaqueAbsorbs covers the same scenario with a fixed Opaque block: the
// beam is absorbed at the interaction point and the target stays unstruck.
func (s *TraceSuite) TestOpaqueAbsorbs() {
	b := s.mustBoard([]string{"B"}, []board.Emitter{east(0, 1)}, []board.Point{{X: 2, Y: 1}})
	res, err := trace.Run(b, nil)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Solved(b))
	require.NotContains(s.T(), res.Hits, board.Point{X: 2, Y: 1})
	// The interaction point itself is visited; nothing beyond it is.
	require.Equal(s.T(), []board.Point{{X: 1, Y: 1}}, res.Trajectory)
}

// TestOpaqueStopsBeam verifies no lattice point beyond the obstacle is
// reached on a longer row.
func (s *TraceSuite) TestOpaqueStopsBeam() {
	b := s.mustBoard([]string{"oBo"}, []board.Emitter{east(0, 1)}, []board.Point{{X: 5, Y: 1}})
	res, err := trace.Run(b, nil)
	require.NoError(s.T(), err)
	for _, p := range res.Trajectory {
		require.LessOrEqual(s.T(), p.X, 3, "beam escaped past the opaque block at %v", p)
	}
	require.False(s.T(), res.Solved(b))
}

// TestZeroEmitters: no emitters means an empty hit set; solved is purely a
// question of whether any targets were declared.
func (s *TraceSuite) TestZeroEmitters() {
	empty := s.mustBoard([]string{"oo"}, nil, nil)
	res, err := trace.Run(empty, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Solved(empty))
	require.Zero(s.T(), res.HitCount())

	withTarget := s.mustBoard([]string{"oo"}, nil, []board.Point{{X: 1, Y: 1}})
	res, err = trace.Run(withTarget, nil)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Solved(withTarget))
	require.Zero(s.T(), res.HitCount())
}

// TestDeterminism replays the same refractive board twice and requires
// identical hits and trajectories.
func (s *TraceSuite) TestDeterminism() {
	b := s.mustBoard([]string{"oCo"}, []board.Emitter{east(0, 1)},
		[]board.Point{{X: 6, Y: 1}, {X: 0, Y: 1}})
	first, err := trace.Run(b, nil)
	require.NoError(s.T(), err)
	second, err := trace.Run(b, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first.Hits, second.Hits)
	require.Equal(s.T(), first.Trajectory, second.Trajectory)
	require.Equal(s.T(), first.Steps, second.Steps)
}

// TestRefractSuperset: the straight-through continuation must reach every
// point the emitter reaches on an obstacle-free board.
func (s *TraceSuite) TestRefractSuperset() {
	bare := s.mustBoard([]string{"ooo"}, []board.Emitter{east(0, 1)}, nil)
	split := s.mustBoard([]string{"oCo"}, []board.Emitter{east(0, 1)}, nil)

	bareRes, err := trace.Run(bare, nil)
	require.NoError(s.T(), err)
	splitRes, err := trace.Run(split, nil)
	require.NoError(s.T(), err)

	reached := make(map[board.Point]struct{}, len(splitRes.Trajectory))
	for _, p := range splitRes.Trajectory {
		reached[p] = struct{}{}
	}
	for _, p := range bareRes.Trajectory {
		require.Contains(s.T(), reached, p, "transmit copy missed %v", p)
	}
	// The reflected copy also escaped backwards through the left edge.
	require.Contains(s.T(), reached, board.Point{X: 0, Y: 1})
}

// TestRefractBend keeps a single beam: nothing continues straight through.
func (s *TraceSuite) TestRefractBend() {
	b := s.mustBoard([]string{"oCo"}, []board.Emitter{east(0, 1)}, nil)
	res, err := trace.Run(b, nil, trace.WithRefractMode(trace.RefractBend))
	require.NoError(s.T(), err)
	for _, p := range res.Trajectory {
		require.LessOrEqual(s.T(), p.X, 3, "bend mode leaked a transmit copy to %v", p)
	}
	require.Equal(s.T(), 1, res.Beams, "bend must not spawn beams")
}

// TestReflectDiagonal pins the travel-axis rule: a diagonal beam bounces
// vertically off a Reflect block and exits through the bottom edge.
func (s *TraceSuite) TestReflectDiagonal() {
	b := s.mustBoard([]string{"oo"}, []board.Emitter{{
		Pos: board.Point{X: 0, Y: 0}, Dir: board.Delta{DX: 1, DY: 1},
	}}, []board.Point{{X: 2, Y: 0}})
	placed := board.Placement{{Row: 0, Col: 0}: board.Reflect}

	res, err := trace.Run(b, placed)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Solved(b))
	require.Contains(s.T(), res.Hits, board.Point{X: 2, Y: 0})

	// Without the block the beam continues diagonally and misses.
	res, err = trace.Run(b, nil)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Solved(b))
}

// TestFacingReflectors proves the cycle guard: the beam bounces between two
// mirrors and terminates without tripping the step ceiling.
func (s *TraceSuite) TestFacingReflectors() {
	b := s.mustBoard([]string{"AoA"}, []board.Emitter{east(2, 1)}, nil)
	res, err := trace.Run(b, nil)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), res.Trajectory)
	require.Less(s.T(), res.Steps, 8*(1+3)*10, "cycle guard did not engage before the ceiling")
}

// TestPerEmitterVisited: a second identical emitter retraces the full path
// because visited states reset per emitter.
func (s *TraceSuite) TestPerEmitterVisited() {
	single := s.mustBoard([]string{"AoA"}, []board.Emitter{east(2, 1)}, nil)
	double := s.mustBoard([]string{"AoA"}, []board.Emitter{east(2, 1), east(2, 1)}, nil)

	one, err := trace.Run(single, nil)
	require.NoError(s.T(), err)
	two, err := trace.Run(double, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2*len(one.Trajectory), len(two.Trajectory))
	require.Equal(s.T(), 2*one.Steps, two.Steps)
}

// TestConventionDivergence: the two interaction models disagree on a board
// whose emitter starts on the obstacle's own wall. Under center interaction
// the beam bounces back off the cell center; under boundary interaction the
// start wall is never crossed, so the beam sails through.
func (s *TraceSuite) TestConventionDivergence() {
	down := board.Emitter{Pos: board.Point{X: 1, Y: 0}, Dir: board.Delta{DX: 0, DY: 1}}
	b := s.mustBoard([]string{"Ax"}, []board.Emitter{down}, []board.Point{{X: 1, Y: 2}})

	center, err := trace.Run(b, nil, trace.WithConvention(trace.CenterInteraction))
	require.NoError(s.T(), err)
	boundary, err := trace.Run(b, nil, trace.WithConvention(trace.BoundaryInteraction))
	require.NoError(s.T(), err)

	require.False(s.T(), center.Solved(b), "center model must reflect the beam away from (1,2)")
	require.True(s.T(), boundary.Solved(b), "boundary model must pass through to (1,2)")
}

// TestBoundaryWallReflection: under boundary interaction the beam reflects
// at the entered cell's wall, one step short of the center.
func (s *TraceSuite) TestBoundaryWallReflection() {
	b := s.mustBoard([]string{"xA"}, []board.Emitter{east(0, 1)}, []board.Point{{X: 0, Y: 1}})
	res, err := trace.Run(b, nil, trace.WithConvention(trace.BoundaryInteraction))
	require.NoError(s.T(), err)
	for _, p := range res.Trajectory {
		require.LessOrEqual(s.T(), p.X, 2, "beam crossed the reflecting wall at %v", p)
	}
	require.True(s.T(), res.Solved(b), "reflected beam must return through (0,1)")
}

// TestArgumentErrors covers nil boards and invalid options.
func (s *TraceSuite) TestArgumentErrors() {
	_, err := trace.Run(nil, nil)
	require.ErrorIs(s.T(), err, trace.ErrNilBoard)

	b := s.mustBoard([]string{"o"}, nil, nil)
	_, err = trace.Run(b, nil, trace.WithConvention(trace.Convention(42)))
	require.ErrorIs(s.T(), err, trace.ErrOptionViolation)
	_, err = trace.Run(b, nil, trace.WithRefractMode(trace.RefractMode(42)))
	require.ErrorIs(s.T(), err, trace.ErrOptionViolation)
}

// TestTrajectoryDisabled keeps the hit set intact while skipping recording.
func (s *TraceSuite) TestTrajectoryDisabled() {
	b := s.mustBoard([]string{"o"}, []board.Emitter{east(0, 1)}, []board.Point{{X: 2, Y: 1}})
	res, err := trace.Run(b, nil, trace.WithTrajectory(false))
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Trajectory)
	require.True(s.T(), res.Solved(b))
}

func TestTraceSuite(t *testing.T) {
	suite.Run(t, new(TraceSuite))
}
