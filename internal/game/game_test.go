package game

import (
	"testing"

	"pacman/internal/config"
	"pacman/internal/input"
	"pacman/internal/input/inputtest"
	"pacman/internal/render"
	"pacman/internal/render/rendertest"
	tm "pacman/internal/tilemap"
)

func newTestGame(t *testing.T) (*Game, *rendertest.Recorder, *inputtest.Script) {
	t.Helper()
	rec := &rendertest.Recorder{}
	script := &inputtest.Script{}
	g, err := New(config.Default(), rec, script)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, rec, script
}

// press applies a batch of events the way a tick's poll would.
func press(g *Game, evts ...input.Event) {
	g.handleEvents(evts)
}

func TestNewStartsAtOneOne(t *testing.T) {
	g, _, _ := newTestGame(t)
	if g.player.Row != 1 || g.player.Col != 1 {
		t.Fatalf("player starts at (%d,%d), want (1,1)", g.player.Row, g.player.Col)
	}
	if g.Score() != 0 || g.State() != Running {
		t.Fatalf("unexpected initial score=%d state=%v", g.Score(), g.State())
	}
}

func TestMoveRightThreeTicksEatsPellets(t *testing.T) {
	g, _, _ := newTestGame(t)
	press(g, inputtest.Down(input.Right))

	for i := 0; i < 3; i++ {
		g.Tick()
	}
	if g.player.Row != 1 || g.player.Col != 4 {
		t.Fatalf("player at (%d,%d), want (1,4)", g.player.Row, g.player.Col)
	}
	if g.Score() != 3 {
		t.Fatalf("score = %d, want 3", g.Score())
	}
}

func TestKeyPressTakesEffectNextTick(t *testing.T) {
	g, _, script := newTestGame(t)
	script.Push(inputtest.Down(input.Right))

	g.Tick()
	if g.player.Col != 1 {
		t.Fatalf("player moved on the tick that polled the key: col=%d", g.player.Col)
	}
	g.Tick()
	if g.player.Col != 2 {
		t.Fatalf("player col = %d, want 2", g.player.Col)
	}
}

func TestIdleTickEatsPelletUnderPlayer(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Tick()
	if g.Score() != 1 {
		t.Fatalf("score = %d, want the start pellet counted", g.Score())
	}
	g.Tick()
	if g.Score() != 1 {
		t.Fatalf("score = %d after second idle tick, want 1", g.Score())
	}
}

func TestBlockedByWall(t *testing.T) {
	g, _, _ := newTestGame(t)
	press(g, inputtest.Down(input.Up))

	for i := 0; i < 5; i++ {
		g.Tick()
		if g.player.Row != 1 || g.player.Col != 1 {
			t.Fatalf("tick %d: player moved into wall to (%d,%d)", i, g.player.Row, g.player.Col)
		}
	}
	if g.Score() != 0 {
		t.Fatalf("score changed on blocked ticks: %d", g.Score())
	}
	if g.player.VelRow != -1 {
		t.Fatalf("velocity should survive a blocked move, got %d", g.player.VelRow)
	}
}

func TestBlockedDiagonal(t *testing.T) {
	g, _, _ := newTestGame(t)
	// (2,2) is a wall.
	press(g, inputtest.Down(input.Down), inputtest.Down(input.Right))
	g.Tick()
	if g.player.Row != 1 || g.player.Col != 1 {
		t.Fatalf("diagonal into wall moved player to (%d,%d)", g.player.Row, g.player.Col)
	}
}

func TestRetryAfterBlockedTurn(t *testing.T) {
	g, _, _ := newTestGame(t)
	// Left of (1,1) is a wall; down is open.
	press(g, inputtest.Down(input.Left))
	g.Tick()
	if g.player.Col != 1 {
		t.Fatalf("moved left into wall: col=%d", g.player.Col)
	}
	press(g, inputtest.Up(input.Left), inputtest.Down(input.Down))
	g.Tick()
	if g.player.Row != 2 || g.player.Col != 1 {
		t.Fatalf("player at (%d,%d), want (2,1)", g.player.Row, g.player.Col)
	}
}

func TestRevisitingEmptyCellScoresNothing(t *testing.T) {
	g, _, _ := newTestGame(t)
	press(g, inputtest.Down(input.Right))
	g.Tick()
	press(g, inputtest.Down(input.Left))
	g.Tick()
	if g.player.Col != 1 || g.Score() != 2 {
		t.Fatalf("after returning to (1,1): col=%d score=%d, want 1/2", g.player.Col, g.Score())
	}
	press(g, inputtest.Down(input.Right))
	g.Tick()
	if g.player.Col != 2 || g.Score() != 2 {
		t.Fatalf("stepping onto eaten cell: col=%d score=%d, want 2/2", g.player.Col, g.Score())
	}
}

func TestReleaseStopsMovement(t *testing.T) {
	g, _, _ := newTestGame(t)
	press(g, inputtest.Down(input.Right))
	g.Tick()
	press(g, inputtest.Up(input.Right))
	for i := 0; i < 3; i++ {
		g.Tick()
	}
	if g.player.Col != 2 {
		t.Fatalf("player kept moving after release: col=%d", g.player.Col)
	}
}

func TestQuitStopsRendering(t *testing.T) {
	g, rec, script := newTestGame(t)
	script.Push()
	script.Push(inputtest.Down(input.Right), inputtest.Quit())

	if g.Tick() != Running {
		t.Fatal("first tick should keep running")
	}
	if g.Tick() != Quit {
		t.Fatal("second tick should observe quit")
	}
	frames, polls := rec.Frames, script.Polls
	col := g.player.Col

	for i := 0; i < 3; i++ {
		if g.Tick() != Quit {
			t.Fatal("state left Quit")
		}
	}
	if rec.Frames != frames {
		t.Fatalf("rendered %d frames after quit", rec.Frames-frames)
	}
	if script.Polls != polls {
		t.Fatalf("polled input %d times after quit", script.Polls-polls)
	}
	if g.player.Col != col {
		t.Fatalf("player moved after quit")
	}
}

func TestMultipleEventsInOneBatch(t *testing.T) {
	g, _, script := newTestGame(t)
	script.Push(inputtest.Down(input.Up), inputtest.Down(input.Right), inputtest.Up(input.Up))
	g.Tick()
	if g.player.VelRow != 0 || g.player.VelCol != 1 {
		t.Fatalf("velocity = (%d,%d), want (0,1)", g.player.VelRow, g.player.VelCol)
	}
	g.Tick()
	if g.player.Row != 1 || g.player.Col != 2 {
		t.Fatalf("player at (%d,%d), want (1,2)", g.player.Row, g.player.Col)
	}
}

func TestFrameOrder(t *testing.T) {
	g, rec, _ := newTestGame(t)
	g.Tick()

	ops := rec.Last
	if len(ops) == 0 || ops[0].Kind != rendertest.OpClear || ops[0].Color != render.Black {
		t.Fatal("frame should start with a black clear")
	}
	cells := g.tileMap.Rows() * g.tileMap.Cols()
	if rec.Count(rendertest.OpRect) != cells {
		t.Fatalf("frame has %d cell rects, want %d", rec.Count(rendertest.OpRect), cells)
	}

	// Clear, cells and pellets, then score text, avatar (3 ops) and ghost.
	tail := ops[len(ops)-5:]
	wantKinds := []rendertest.OpKind{rendertest.OpText, rendertest.OpCircle, rendertest.OpPolygon, rendertest.OpCircle, rendertest.OpPolygon}
	for i, k := range wantKinds {
		if tail[i].Kind != k {
			t.Fatalf("tail op %d kind = %v, want %v", i, tail[i].Kind, k)
		}
	}
	// The idle first tick already ate the pellet under the start cell.
	if tail[0].Text != "Score: 1" || tail[0].Color != render.Yellow {
		t.Fatalf("unexpected score text %+v", tail[0])
	}
	if tail[4].Color != render.Red {
		t.Fatalf("ghost should be drawn last in red, got %+v", tail[4])
	}
	if rec.Frames != 1 {
		t.Fatalf("frames = %d, want 1", rec.Frames)
	}
}

func TestScoreTextTracksScore(t *testing.T) {
	g, rec, _ := newTestGame(t)
	press(g, inputtest.Down(input.Right))
	g.Tick()
	g.Tick()

	var text string
	for _, op := range rec.Last {
		if op.Kind == rendertest.OpText {
			text = op.Text
		}
	}
	if text != "Score: 2" {
		t.Fatalf("score text = %q, want %q", text, "Score: 2")
	}
}

type cell struct{ row, col int }

// nextStep returns the first move on a shortest path from the player to the
// nearest pellet other than the current cell.
func nextStep(m *tm.TileMap, from cell) (input.Key, bool) {
	moves := []struct {
		key    input.Key
		dr, dc int
	}{
		{input.Up, -1, 0},
		{input.Down, 1, 0},
		{input.Left, 0, -1},
		{input.Right, 0, 1},
	}
	first := map[cell]input.Key{}
	queue := []cell{}
	for _, mv := range moves {
		n := cell{from.row + mv.dr, from.col + mv.dc}
		if m.IsPassable(n.row, n.col) {
			first[n] = mv.key
			queue = append(queue, n)
		}
	}
	seen := map[cell]bool{from: true}
	for _, n := range queue {
		seen[n] = true
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if c, _ := m.Cell(cur.row, cur.col); c == tm.CellPellet {
			return first[cur], true
		}
		for _, mv := range moves {
			n := cell{cur.row + mv.dr, cur.col + mv.dc}
			if seen[n] || !m.IsPassable(n.row, n.col) {
				continue
			}
			seen[n] = true
			first[n] = first[cur]
			queue = append(queue, n)
		}
	}
	return input.None, false
}

func TestEatingEveryPelletScoresPelletCount(t *testing.T) {
	g, _, _ := newTestGame(t)
	initial := g.tileMap.PelletCount()

	for i := 0; i < 10000 && g.tileMap.PelletCount() > 0; i++ {
		key, ok := nextStep(g.tileMap, cell{g.player.Row, g.player.Col})
		if !ok {
			t.Fatalf("no path to remaining %d pellets from (%d,%d)", g.tileMap.PelletCount(), g.player.Row, g.player.Col)
		}
		press(g,
			inputtest.Up(input.Left), inputtest.Up(input.Up),
			inputtest.Down(key),
		)
		before := g.Score()
		g.step()
		if d := g.Score() - before; d < 0 || d > 1 {
			t.Fatalf("score changed by %d in one tick", d)
		}
	}
	if g.tileMap.PelletCount() != 0 {
		t.Fatalf("%d pellets left", g.tileMap.PelletCount())
	}
	if g.Score() != initial {
		t.Fatalf("score = %d, want %d", g.Score(), initial)
	}
}
