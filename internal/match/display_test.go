package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ringbook/internal/domain"
)

func TestSideDisplay(t *testing.T) {
	teams := []domain.TagTeam{
		{Name: "The Wrecking Crew", Members: []string{"Alice", "Bob"}},
	}

	t.Run("registered team collapses", func(t *testing.T) {
		got := SideDisplay([]string{"Alice", "Bob"}, teams)
		assert.Equal(t, "The Wrecking Crew (Alice, Bob)", got)
	})

	t.Run("team plus extra partner", func(t *testing.T) {
		got := SideDisplay([]string{"Alice", "Bob", "Eve"}, teams)
		assert.Equal(t, "The Wrecking Crew (Alice, Bob), Eve", got)
	})

	t.Run("unregistered grouping stays bare", func(t *testing.T) {
		got := SideDisplay([]string{"Carol", "Dan"}, teams)
		assert.Equal(t, "Carol, Dan", got)
	})
}

func TestParticipantsDisplay(t *testing.T) {
	got := ParticipantsDisplay(singleSides("Alice", "Bob", "Carol"), nil)
	assert.Equal(t, "Alice vs Bob vs Carol", got)
}

func TestResultDisplay(t *testing.T) {
	teams := []domain.TagTeam{
		{Name: "The Wrecking Crew", Members: []string{"Alice", "Bob"}},
	}
	belts := []domain.Belt{
		{ID: "world-title", ChampionTitle: "World Championship", HolderType: domain.HolderSingles, CurrentHolder: "Alice", Status: domain.StatusActive},
	}

	t.Run("winner with method", func(t *testing.T) {
		m := domain.Match{
			Sides:            singleSides("Alice", "Bob"),
			WinningSideIndex: 0,
			WinnerMethod:     "Pinfall",
		}
		assert.Equal(t, "Alice def. Bob by Pinfall", ResultDisplay(m, nil, nil))
	})

	t.Run("holder on winning side retains", func(t *testing.T) {
		m := domain.Match{
			Sides:            singleSides("Alice", "Bob"),
			WinningSideIndex: 0,
			Championship:     "world-title",
		}
		assert.Equal(t, "Alice def. Bob to retain the World Championship", ResultDisplay(m, teams, belts))
	})

	t.Run("challenger wins the title", func(t *testing.T) {
		m := domain.Match{
			Sides:            singleSides("Alice", "Bob"),
			WinningSideIndex: 1,
			Championship:     "world-title",
		}
		assert.Equal(t, "Bob def. Alice to win the World Championship", ResultDisplay(m, teams, belts))
	})

	t.Run("no winning side renders a draw line", func(t *testing.T) {
		m := domain.Match{
			Sides:            singleSides("Alice", "Bob"),
			WinningSideIndex: -1,
			MatchResult:      "Draw (Time Limit)",
		}
		assert.Equal(t, "Alice vs Bob ended in a draw (time limit)", ResultDisplay(m, nil, nil))
	})

	t.Run("match time appended", func(t *testing.T) {
		m := domain.Match{
			Sides:            singleSides("Alice", "Bob"),
			WinningSideIndex: 0,
			MatchTime:        "12:34",
		}
		assert.Equal(t, "Alice def. Bob (12:34)", ResultDisplay(m, nil, nil))
	})
}
