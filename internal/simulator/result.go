package simulator

import (
	"time"

	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/game"
	"github.com/lox/dominionsim/internal/statistics"
)

// PlayerResult is one player's final state in a game.
type PlayerResult struct {
	Name          string            `json:"name"`
	Strategy      string            `json:"strategy"`
	Turns         int               `json:"turns"`
	VictoryPoints int               `json:"victory_points"`
	Won           bool              `json:"won"`
	Cards         map[card.Name]int `json:"cards"`
	Log           []game.TurnLog    `json:"log,omitempty"`
}

// GameResult is a snapshot of a finished game.
type GameResult struct {
	GameID  int               `json:"game_id"`
	Seed    int64             `json:"seed"`
	Rounds  int               `json:"rounds"`
	Ended   bool              `json:"ended"` // false when the game stopped at the turn limit
	Players []PlayerResult    `json:"players"`
	Supply  map[card.Name]int `json:"supply"`
}

// SimulationResult holds every game of a run in game order.
type SimulationResult struct {
	Seed        int64
	Players     []string
	GameResults []GameResult
	Duration    time.Duration
}

// TurnCounts returns, per player name, the turns taken in each game.
func (r *SimulationResult) TurnCounts() map[string][]int {
	out := make(map[string][]int, len(r.Players))
	for _, g := range r.GameResults {
		for _, p := range g.Players {
			out[p.Name] = append(out[p.Name], p.Turns)
		}
	}
	return out
}

// Statistics aggregates the games per player name.
func (r *SimulationResult) Statistics() map[string]*statistics.Statistics {
	out := make(map[string]*statistics.Statistics, len(r.Players))
	for _, g := range r.GameResults {
		for _, p := range g.Players {
			s, ok := out[p.Name]
			if !ok {
				s = &statistics.Statistics{}
				out[p.Name] = s
			}
			s.Add(statistics.GameOutcome{
				Turns:         p.Turns,
				VictoryPoints: p.VictoryPoints,
				Ended:         g.Ended,
				Won:           p.Won,
			})
		}
	}
	return out
}

func snapshot(id int, seed int64, rounds int, ended bool, b *game.Board, specs []PlayerSpec) GameResult {
	result := GameResult{
		GameID: id,
		Seed:   seed,
		Rounds: rounds,
		Ended:  ended,
		Supply: b.Supply().Counts(),
	}
	best := 0
	for i, p := range b.Players() {
		pr := PlayerResult{
			Name:          p.Name(),
			Strategy:      specs[i].Strategy,
			Turns:         p.TurnNum(),
			VictoryPoints: p.VictoryPoints(),
			Cards:         p.CardCounts(),
			Log:           p.Log().Turns(),
		}
		if i == 0 || pr.VictoryPoints > best {
			best = pr.VictoryPoints
		}
		result.Players = append(result.Players, pr)
	}
	for i := range result.Players {
		result.Players[i].Won = result.Players[i].VictoryPoints == best
	}
	return result
}
