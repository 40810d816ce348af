package tally

import (
	"context"
	"fmt"
	"sort"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// ComputeResults returns the ranked tally for a category over all active
// candidates. Candidates with zero votes are included at count 0. The
// result reflects every vote committed before the call started; votes
// committing concurrently may or may not appear, but are never counted
// twice or lost once committed.
func (s *Service) ComputeResults(ctx context.Context, category domain.Category) ([]domain.TallyRow, error) {
	if !category.IsValid() {
		return nil, domain.NewValidationError("category", "is required")
	}

	counts, err := s.votes.CountByCandidate(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("tally %s: %w", category, err)
	}

	return rank(counts), nil
}

// GetWinner returns the first rank-1 row of a category's tally in
// deterministic output order. On an exact tie there are several winners;
// the full tally exposes all of them. Returns domain.ErrNotFound when the
// category has no active candidates.
func (s *Service) GetWinner(ctx context.Context, category domain.Category) (*domain.TallyRow, error) {
	rows, err := s.ComputeResults(ctx, category)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("winner %s: %w", category, domain.ErrNotFound)
	}

	winner := rows[0]
	return &winner, nil
}

// rank converts raw per-candidate counts into the ranked tally.
//
// Ordering: votes descending, then full name, then id. The tie-break
// affects output order only, never the rank number.
//
// Ranking: competition ranking (SQL RANK() semantics). Tied counts share a
// rank; the next distinct count resumes at 1 + rows strictly ahead, so two
// candidates tied for first are both rank 1 and the next candidate is rank 3.
//
// Share: votes / category total * 100, with 0 when the total is zero. With
// zero votes overall every candidate is rank 1 and flagged winner; ties are
// deliberately not broken.
func rank(counts []domain.CandidateCount) []domain.TallyRow {
	sorted := make([]domain.CandidateCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Votes != sorted[j].Votes {
			return sorted[i].Votes > sorted[j].Votes
		}
		if sorted[i].FullName != sorted[j].FullName {
			return sorted[i].FullName < sorted[j].FullName
		}
		return sorted[i].CandidateID.String() < sorted[j].CandidateID.String()
	})

	total := 0
	for _, c := range sorted {
		total += c.Votes
	}

	rows := make([]domain.TallyRow, len(sorted))
	currentRank := 1
	for i, c := range sorted {
		if i > 0 && c.Votes != sorted[i-1].Votes {
			currentRank = i + 1
		}

		share := 0.0
		if total > 0 {
			share = float64(c.Votes) / float64(total) * 100
		}

		rows[i] = domain.TallyRow{
			CandidateID: c.CandidateID,
			FullName:    c.FullName,
			Program:     c.Program,
			PhotoURL:    c.PhotoURL,
			Votes:       c.Votes,
			Rank:        currentRank,
			Share:       share,
			Winner:      currentRank == 1,
		}
	}

	return rows
}
