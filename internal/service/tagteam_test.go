package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

func newTagTeamService(t *testing.T) (*TagTeamService, *storage.WrestlerStore) {
	t.Helper()
	dir := t.TempDir()
	log := zerolog.Nop()
	wrestlers := storage.NewWrestlerStore(dir, log)
	teams := storage.NewTagTeamStore(dir, log)
	require.NoError(t, wrestlers.SaveAll([]domain.Wrestler{
		{Name: "Carol", Status: domain.StatusActive, Weight: "240 lbs."},
		{Name: "Dave", Status: domain.StatusActive, Weight: "265"},
		{Name: "Eve", Status: domain.StatusInjured},
	}))
	return NewTagTeamService(teams, wrestlers, log), wrestlers
}

func TestTagTeamCreateSyncsMembers(t *testing.T) {
	svc, wrestlers := newTagTeamService(t)

	require.NoError(t, svc.Create(domain.TagTeam{
		Name:    "The Wrecking Crew",
		Members: []string{"Carol", "Dave"},
		Status:  domain.StatusActive,
	}))

	team, err := svc.Get("The Wrecking Crew")
	require.NoError(t, err)
	assert.Equal(t, "505", team.Weight)
	assert.Equal(t, domain.StatusActive, team.Status)

	carol, err := wrestlers.Get("Carol")
	require.NoError(t, err)
	assert.Equal(t, "The Wrecking Crew", carol.Team)
}

func TestTagTeamMembershipBounds(t *testing.T) {
	svc, _ := newTagTeamService(t)

	var invalid *domain.ValidationError
	assert.ErrorAs(t, svc.Create(domain.TagTeam{Name: "Solo", Members: []string{"Carol"}}), &invalid)
	assert.ErrorAs(t, svc.Create(domain.TagTeam{
		Name:    "Quartet",
		Members: []string{"Carol", "Dave", "Eve", "Frank"},
	}), &invalid)
	assert.ErrorAs(t, svc.Create(domain.TagTeam{
		Name:    "Doubled",
		Members: []string{"Carol", "Carol"},
	}), &invalid)
	assert.ErrorAs(t, svc.Create(domain.TagTeam{
		Name:    "Ghosts",
		Members: []string{"Carol", "Nobody"},
	}), &invalid)
}

func TestTagTeamActiveDemotedWhenMemberInactive(t *testing.T) {
	svc, _ := newTagTeamService(t)

	require.NoError(t, svc.Create(domain.TagTeam{
		Name:    "The Walking Wounded",
		Members: []string{"Carol", "Eve"},
		Status:  domain.StatusActive,
	}))

	team, err := svc.Get("The Walking Wounded")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, team.Status)
}

func TestTagTeamUpdateMembershipChange(t *testing.T) {
	svc, wrestlers := newTagTeamService(t)
	require.NoError(t, svc.Create(domain.TagTeam{
		Name:    "The Wrecking Crew",
		Members: []string{"Carol", "Dave"},
	}))

	require.NoError(t, svc.Update("The Wrecking Crew", domain.TagTeam{
		Name:    "The Wrecking Crew",
		Members: []string{"Carol", "Eve"},
	}))

	dave, err := wrestlers.Get("Dave")
	require.NoError(t, err)
	assert.Empty(t, dave.Team)
	eve, err := wrestlers.Get("Eve")
	require.NoError(t, err)
	assert.Equal(t, "The Wrecking Crew", eve.Team)
}

func TestTagTeamRenameMovesBackRefs(t *testing.T) {
	svc, wrestlers := newTagTeamService(t)
	require.NoError(t, svc.Create(domain.TagTeam{
		Name:    "The Wrecking Crew",
		Members: []string{"Carol", "Dave"},
	}))

	require.NoError(t, svc.Update("The Wrecking Crew", domain.TagTeam{
		Name:    "The Demolition Squad",
		Members: []string{"Carol", "Dave"},
	}))

	carol, err := wrestlers.Get("Carol")
	require.NoError(t, err)
	assert.Equal(t, "The Demolition Squad", carol.Team)
	_, err = svc.Get("The Wrecking Crew")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTagTeamDeleteGuardsRecordAndClearsMembers(t *testing.T) {
	svc, wrestlers := newTagTeamService(t)
	require.NoError(t, svc.Create(domain.TagTeam{
		Name:    "The Wrecking Crew",
		Members: []string{"Carol", "Dave"},
	}))

	require.NoError(t, svc.Delete("The Wrecking Crew"))
	carol, err := wrestlers.Get("Carol")
	require.NoError(t, err)
	assert.Empty(t, carol.Team)
	_, err = svc.Get("The Wrecking Crew")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTagTeamDeleteWithRecord(t *testing.T) {
	dir := t.TempDir()
	log := zerolog.Nop()
	wrestlers := storage.NewWrestlerStore(dir, log)
	teams := storage.NewTagTeamStore(dir, log)
	require.NoError(t, wrestlers.SaveAll([]domain.Wrestler{{Name: "Carol"}, {Name: "Dave"}}))
	require.NoError(t, teams.SaveAll([]domain.TagTeam{
		{Name: "The Wrecking Crew", Members: []string{"Carol", "Dave"}, Wins: 3},
	}))
	svc := NewTagTeamService(teams, wrestlers, log)

	var stateErr *domain.StateError
	assert.ErrorAs(t, svc.Delete("The Wrecking Crew"), &stateErr)
}

func TestTagTeamListSortIgnoresLeadingThe(t *testing.T) {
	dir := t.TempDir()
	log := zerolog.Nop()
	teams := storage.NewTagTeamStore(dir, log)
	require.NoError(t, teams.SaveAll([]domain.TagTeam{
		{Name: "The Outsiders"},
		{Name: "Main Event Players"},
		{Name: "The Bruisers"},
	}))
	svc := NewTagTeamService(teams, storage.NewWrestlerStore(dir, log), log)

	got, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "The Bruisers", got[0].Name)
	assert.Equal(t, "Main Event Players", got[1].Name)
	assert.Equal(t, "The Outsiders", got[2].Name)
}
