package ranking

import (
	"testing"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
)

func player(id, team, pts, reb, ast int) deck.PlayerStat {
	return deck.PlayerStat{PlayerID: id, TeamID: team, Points: pts, Rebounds: reb, Assists: ast}
}

func ids(players []deck.PlayerStat) []int {
	out := make([]int, 0, len(players))
	for _, p := range players {
		out = append(out, p.PlayerID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCompositeScore(t *testing.T) {
	if got := CompositeScore(player(1, 1, 20, 10, 10)); got != 47 {
		t.Fatalf("expected 47, got %v", got)
	}
}

func TestRankKeepsTopSixPerTeamStable(t *testing.T) {
	players := []deck.PlayerStat{
		player(1, 100, 10, 0, 0),
		player(2, 100, 30, 0, 0),
		player(3, 100, 10, 0, 0), // ties with 1, must stay after it
		player(4, 100, 5, 0, 0),
		player(5, 100, 0, 0, 0),
		player(6, 100, 22, 5, 2), // 31
		player(7, 100, 1, 0, 0),
		player(8, 100, 2, 0, 0),
		player(20, 200, 0, 10, 0), // 12
		player(21, 200, 0, 0, 10), // 15
	}

	got := ids(Rank(players))
	want := []int{6, 2, 1, 3, 4, 8, 21, 20}
	if !equalInts(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankTeamsInFirstSeenOrder(t *testing.T) {
	players := []deck.PlayerStat{
		player(1, 300, 5, 0, 0),
		player(2, 100, 50, 0, 0),
		player(3, 300, 9, 0, 0),
	}
	got := ids(Rank(players))
	if !equalInts(got, []int{3, 1, 2}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestRankCustomTopK(t *testing.T) {
	players := []deck.PlayerStat{
		player(1, 1, 5, 0, 0),
		player(2, 1, 6, 0, 0),
		player(3, 1, 7, 0, 0),
	}
	got := ids(New(2).Rank(players))
	if !equalInts(got, []int{3, 2}) {
		t.Fatalf("unexpected top 2 %v", got)
	}
	if New(0).TopK != DefaultTopK {
		t.Fatalf("expected default top k")
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
