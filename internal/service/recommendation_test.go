package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

var _ = Describe("RecommendationService", func() {
	var (
		svc       service.RecommendationService
		academies *mockAcademyStore
		children  *mockChildStore
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		academies = &mockAcademyStore{
			listCandidatesFn: func(_ context.Context, _ *string, _ []string, _ int64, _ int32) ([]model.Academy, error) {
				return []model.Academy{
					{ID: 1, Name: "영어 전문", Tags: []string{"subject:english", "grade:high", "style:lecture"}},
					{ID: 2, Name: "수학 전문", Tags: []string{"subject:math", "grade:middle", "style:one_on_one"}},
					{ID: 3, Name: "태그 없음", Tags: []string{}},
				}, nil
			},
		}
		children = &mockChildStore{}
		svc = service.NewRecommendationService(academies, children)
	})

	It("ranks academies against query tags", func() {
		recs, err := svc.Recommend(ctx, 5, service.RecommendationQuery{
			Tags: []string{"subject:math", "grade:middle"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).NotTo(BeEmpty())
		Expect(recs[0].Academy.ID).To(Equal(int64(2)))
		Expect(recs[0].Score).To(BeNumerically(">=", 50))
		Expect(recs[0].Reasons).NotTo(BeEmpty())
		for _, r := range recs {
			Expect(r.Academy.ID).NotTo(Equal(int64(3)))
		}
	})

	It("uses the child's tags", func() {
		children.getFn = func(_ context.Context, parentID, id int64) (*model.Child, error) {
			Expect(parentID).To(Equal(int64(5)))
			return &model.Child{ID: id, Tags: []string{"subject:english", "grade:high"}}, nil
		}

		recs, err := svc.Recommend(ctx, 5, service.RecommendationQuery{ChildID: int64Ptr(3)})
		Expect(err).NotTo(HaveOccurred())
		Expect(recs[0].Academy.ID).To(Equal(int64(1)))
	})

	It("scores candidates beyond the first page", func() {
		var afterIDs []int64
		academies.listCandidatesFn = func(_ context.Context, _ *string, tags []string, afterID int64, limit int32) ([]model.Academy, error) {
			Expect(tags).To(ConsistOf("subject:math", "grade:middle"))
			afterIDs = append(afterIDs, afterID)
			if afterID > 0 {
				return []model.Academy{
					{ID: int64(limit) + 1, Name: "신규 수학", Tags: []string{"subject:math", "grade:middle", "style:small_group"}},
				}, nil
			}
			page := make([]model.Academy, limit)
			for i := range page {
				page[i] = model.Academy{ID: int64(i) + 1, Tags: []string{"subject:math"}}
			}
			return page, nil
		}

		recs, err := svc.Recommend(ctx, 5, service.RecommendationQuery{
			Tags: []string{"subject:math", "grade:middle"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(afterIDs).To(HaveLen(2))
		Expect(afterIDs[1]).To(BeNumerically(">", 0))
		Expect(recs[0].Academy.Name).To(Equal("신규 수학"))
	})

	It("caps the result count", func() {
		recs, err := svc.Recommend(ctx, 5, service.RecommendationQuery{
			Tags:  []string{"subject:math", "subject:english"},
			Limit: 1,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(HaveLen(1))
	})

	It("needs learner tags", func() {
		_, err := svc.Recommend(ctx, 5, service.RecommendationQuery{})
		Expect(err).To(MatchError(service.ErrNoLearnerTags))

		children.getFn = func(_ context.Context, _, id int64) (*model.Child, error) {
			return &model.Child{ID: id, Tags: []string{}}, nil
		}
		_, err = svc.Recommend(ctx, 5, service.RecommendationQuery{ChildID: int64Ptr(3)})
		Expect(err).To(MatchError(service.ErrNoLearnerTags))
	})

	It("hides other parents' children", func() {
		children.getFn = func(_ context.Context, _, _ int64) (*model.Child, error) {
			return nil, store.ErrNotFound
		}

		_, err := svc.Recommend(ctx, 5, service.RecommendationQuery{ChildID: int64Ptr(3)})
		Expect(err).To(MatchError(service.ErrNotFound))
	})

	It("rejects unknown query tags", func() {
		_, err := svc.Recommend(ctx, 5, service.RecommendationQuery{Tags: []string{"subject:alchemy"}})
		Expect(err).To(MatchError(service.ErrInvalidInput))
	})
})
