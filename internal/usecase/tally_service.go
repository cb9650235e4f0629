package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/match-tally/internal/domain/tally"
	"github.com/riskibarqy/match-tally/internal/platform/logging"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmerFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// ResetPrompt is the question shown before wiping a team's statistics.
func ResetPrompt(team tally.Team) string {
	return fmt.Sprintf("Are you sure you want to reset all statistics for %s?", team.DisplayName())
}

type TallyState struct {
	ActiveTeam tally.Team
	Home       tally.Record
	Opponent   tally.Record
}

// Record returns the snapshot's record for team.
func (s TallyState) Record(team tally.Team) tally.Record {
	if team == tally.TeamOpponent {
		return s.Opponent
	}
	return s.Home
}

// TallyService owns both teams' records and the active team selection.
// Every operation runs under one lock, writes included.
type TallyService struct {
	repo   tally.Repository
	logger *logging.Logger

	mu         sync.Mutex
	activeTeam tally.Team
	records    map[tally.Team]tally.Record
}

func NewTallyService(ctx context.Context, repo tally.Repository, logger *logging.Logger) (*TallyService, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: repository is required", ErrInvalidInput)
	}
	if logger == nil {
		logger = logging.Default()
	}

	records, err := loadRecords(ctx, repo, logger)
	if err != nil {
		return nil, err
	}

	return &TallyService{
		repo:       repo,
		logger:     logger,
		activeTeam: tally.TeamHome,
		records:    records,
	}, nil
}

func loadRecords(ctx context.Context, repo tally.Repository, logger *logging.Logger) (map[tally.Team]tally.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TallyService.loadRecords")
	defer span.End()

	teams := tally.Teams()
	loaded := make([]tally.Record, len(teams))
	errs := make([]error, len(teams))

	pool, err := ants.NewPool(len(teams))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, team := range teams {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			record, found, err := repo.Load(ctx, team.StorageKey())
			if err != nil {
				errs[i] = fmt.Errorf("%w: load %s record: %w", ErrDependencyUnavailable, team, err)
				return
			}
			if !found {
				logger.DebugContext(ctx, "no stored record, starting from zero", "team", team)
				record = tally.Initial()
			}
			loaded[i] = record
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit record load: %w", err)
		}
	}
	workers.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	out := make(map[tally.Team]tally.Record, len(teams))
	for i, team := range teams {
		out[team] = loaded[i]
	}
	return out, nil
}

func (s *TallyService) ActiveTeam() tally.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeTeam
}

// SetActiveTeam changes which team Increment and Decrement apply to.
// Nothing is persisted.
func (s *TallyService) SetActiveTeam(team tally.Team) error {
	if !team.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidInput, tally.ErrUnknownTeam, team)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeTeam = team
	return nil
}

func (s *TallyService) Increment(ctx context.Context, stat tally.StatName) (tally.Record, error) {
	return s.mutateActive(ctx, "increment", stat, tally.Record.Incremented)
}

// Decrement lowers the active team's stat, stopping at zero. The record is
// written even when the value did not change.
func (s *TallyService) Decrement(ctx context.Context, stat tally.StatName) (tally.Record, error) {
	return s.mutateActive(ctx, "decrement", stat, tally.Record.Decremented)
}

func (s *TallyService) mutateActive(
	ctx context.Context,
	op string,
	stat tally.StatName,
	apply func(tally.Record, tally.StatName) (tally.Record, error),
) (tally.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TallyService."+op)
	defer span.End()

	if !stat.Valid() {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidInput, tally.ErrUnknownStat, stat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team := s.activeTeam
	next, err := apply(s.records[team], stat)
	if err != nil {
		return nil, fmt.Errorf("%s %s for %s: %w", op, stat, team, err)
	}
	if err := s.persist(ctx, team, next); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "stat updated", "op", op, "team", team, "stat", stat, "value", next.Get(stat))
	return next.Clone(), nil
}

// Reset zeroes team's record once confirmer approves. A declined prompt
// leaves memory and storage untouched and reports false.
func (s *TallyService) Reset(ctx context.Context, team tally.Team, confirmer Confirmer) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TallyService.Reset")
	defer span.End()

	if !team.Valid() {
		return false, fmt.Errorf("%w: %w: %q", ErrInvalidInput, tally.ErrUnknownTeam, team)
	}
	if confirmer == nil {
		return false, fmt.Errorf("%w: confirmer is required", ErrInvalidInput)
	}

	confirmed, err := confirmer.Confirm(ctx, ResetPrompt(team))
	if err != nil {
		return false, fmt.Errorf("confirm reset for %s: %w", team, err)
	}
	if !confirmed {
		s.logger.DebugContext(ctx, "reset declined", "team", team)
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, team, tally.Initial()); err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "team statistics reset", "team", team)
	return true, nil
}

// persist writes record and swaps it into memory only on success.
// Callers hold s.mu.
func (s *TallyService) persist(ctx context.Context, team tally.Team, record tally.Record) error {
	if err := s.repo.Save(ctx, team.StorageKey(), record); err != nil {
		s.logger.ErrorContext(ctx, "save team record failed", "team", team, "error", err)
		return fmt.Errorf("%w: save %s record: %w", ErrDependencyUnavailable, team, err)
	}
	s.records[team] = record
	return nil
}

func (s *TallyService) State() TallyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return TallyState{
		ActiveTeam: s.activeTeam,
		Home:       s.records[tally.TeamHome].Clone(),
		Opponent:   s.records[tally.TeamOpponent].Clone(),
	}
}

func (s *TallyService) Record(team tally.Team) (tally.Record, error) {
	if !team.Valid() {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidInput, tally.ErrUnknownTeam, team)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.records[team].Clone(), nil
}
