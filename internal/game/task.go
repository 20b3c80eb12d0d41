package game

import (
	"slices"

	"github.com/lox/dominionsim/internal/card"
)

// Task is a delayed effect waiting for the start of its owner's turn.
type Task struct {
	Card *card.Card
	Kind card.DurationKind

	// Remaining is the number of firings left, or card.Unlimited.
	Remaining int

	// NeedRemove drops the task from its queue after the current firing.
	NeedRemove bool
}

// taskEffects interprets a task by kind.
var taskEffects = map[card.DurationKind]func(p *Player, t *Task){
	card.DrawEachTurn: func(p *Player, _ *Task) {
		p.Draw(1)
	},
	card.GainGoldToHand: func(p *Player, t *Task) {
		p.Gain(card.Gold, card.ZoneHand)
		t.Card.Durational = false
	},
}

func (t *Task) fire(p *Player) {
	effect, ok := taskEffects[t.Kind]
	if !ok {
		t.NeedRemove = true
		return
	}
	effect(p, t)
	if t.Remaining > 0 {
		t.Remaining--
		if t.Remaining == 0 {
			t.NeedRemove = true
		}
	}
}

// TaskQueue holds a player's turn-start tasks in scheduling order.
type TaskQueue struct {
	tasks []*Task
}

// Add appends a task.
func (q *TaskQueue) Add(t *Task) {
	q.tasks = append(q.tasks, t)
}

// Len returns the number of pending tasks.
func (q *TaskQueue) Len() int {
	return len(q.tasks)
}

// Tasks returns the pending tasks in order.
func (q *TaskQueue) Tasks() []*Task {
	return slices.Clone(q.tasks)
}

// Run fires every task once, in order, dropping the ones that ask to be
// removed. Tasks added while running fire in the same pass.
func (q *TaskQueue) Run(p *Player) {
	for i := 0; i < len(q.tasks); {
		t := q.tasks[i]
		t.fire(p)
		if t.NeedRemove {
			q.tasks = slices.Delete(q.tasks, i, i+1)
			continue
		}
		i++
	}
}
