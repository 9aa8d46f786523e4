package service

import (
	"context"
	"errors"
	"fmt"

	"academyhub.app/server/internal/matching"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

const (
	DefaultRecommendations = 10
	MaxRecommendations     = 50
)

type RecommendationQuery struct {
	ChildID *int64
	Tags    []string // used when ChildID is nil
	Region  *string
	Limit   int32
}

type Recommendation struct {
	Academy model.Academy `json:"academy"`
	Score   int           `json:"score"`
	Reasons []string      `json:"reasons"`
}

type RecommendationService interface {
	Recommend(ctx context.Context, userID int64, q RecommendationQuery) ([]Recommendation, error)
}

type recommendationService struct {
	academyStore store.AcademyStore
	childStore   store.ChildStore
}

func NewRecommendationService(academyStore store.AcademyStore, childStore store.ChildStore) RecommendationService {
	return &recommendationService{
		academyStore: academyStore,
		childStore:   childStore,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID int64, q RecommendationQuery) ([]Recommendation, error) {
	learnerTags, err := s.learnerTags(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	if len(learnerTags) == 0 {
		return nil, ErrNoLearnerTags
	}

	region := trimmedPtr(q.Region)
	if region != nil {
		if err := validateRegion(*region); err != nil {
			return nil, err
		}
	}

	limit := int(q.Limit)
	if limit <= 0 {
		limit = DefaultRecommendations
	}
	if limit > MaxRecommendations {
		limit = MaxRecommendations
	}

	academies, err := s.candidates(ctx, region, learnerTags)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Academy, len(academies))
	candidates := make([]matching.Candidate, len(academies))
	for i, a := range academies {
		byID[a.ID] = a
		candidates[i] = matching.Candidate{ID: a.ID, Tags: a.Tags}
	}

	ranked := matching.Rank(learnerTags, candidates)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]Recommendation, len(ranked))
	for i, r := range ranked {
		out[i] = Recommendation{
			Academy: byID[r.ID],
			Score:   r.Score,
			Reasons: r.Reasons,
		}
	}
	return out, nil
}

// candidates loads every academy that shares a tag with the learner. The
// others would score zero and be dropped by matching.Rank anyway.
func (s *recommendationService) candidates(ctx context.Context, region *string, learnerTags []string) ([]model.Academy, error) {
	var all []model.Academy
	var afterID int64
	for {
		page, err := s.academyStore.ListCandidates(ctx, region, learnerTags, afterID, candidatePageSize)
		if err != nil {
			return nil, fmt.Errorf("listing candidates: %w", err)
		}
		all = append(all, page...)
		if len(page) < candidatePageSize {
			return all, nil
		}
		afterID = page[len(page)-1].ID
	}
}

func (s *recommendationService) learnerTags(ctx context.Context, userID int64, q RecommendationQuery) ([]string, error) {
	if q.ChildID == nil {
		return validateTags(q.Tags)
	}

	child, err := s.childStore.Get(ctx, userID, *q.ChildID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: child", ErrNotFound)
		}
		return nil, fmt.Errorf("getting child: %w", err)
	}
	return child.Tags, nil
}
