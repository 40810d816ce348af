package tally

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// GetStatistics returns the cross-category aggregate: active candidate
// count, per-category vote totals, participation rates, and winners.
// Participation is votes per active candidate as a percentage, guarded
// against a zero candidate count.
func (s *Service) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	activeCandidates, err := s.candidates.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}

	stats := &domain.Statistics{ActiveCandidates: activeCandidates}

	for _, category := range domain.Categories() {
		cs, err := s.categoryStats(ctx, category, activeCandidates)
		if err != nil {
			return nil, err
		}

		switch category {
		case domain.CategoryQueen:
			stats.Queen = cs
		case domain.CategoryPhotogenic:
			stats.Photogenic = cs
		}
	}

	return stats, nil
}

func (s *Service) categoryStats(ctx context.Context, category domain.Category, activeCandidates int) (domain.CategoryStats, error) {
	votes, err := s.votes.CountByCategory(ctx, category)
	if err != nil {
		return domain.CategoryStats{}, fmt.Errorf("statistics %s: %w", category, err)
	}

	participation := 0.0
	if activeCandidates > 0 {
		participation = float64(votes) / float64(activeCandidates) * 100
	}

	winner, err := s.GetWinner(ctx, category)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.CategoryStats{}, err
	}

	return domain.CategoryStats{
		Votes:         votes,
		Participation: participation,
		Winner:        winner,
	}, nil
}
