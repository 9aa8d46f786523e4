package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

var _ = Describe("FeedService", func() {
	var (
		svc     service.FeedService
		members *mockMemberStore
		posts   *mockPostStore
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		members = &mockMemberStore{
			getFn: func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return activeMember(academyID, userID, model.PermissionManagePosts), nil
			},
		}
		posts = &mockPostStore{}
		svc = service.NewFeedService(members, posts)
	})

	It("creates a post with image keys", func() {
		post, err := svc.CreatePost(ctx, 5, 10, service.PostInput{
			Title:     "여름방학 특강 안내",
			Body:      "7월 21일부터 시작합니다.",
			ImageKeys: []string{"2026/07/123.jpg"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(post.AuthorID).To(Equal(int64(5)))
		Expect(post.ImageKeys).To(Equal([]string{"2026/07/123.jpg"}))
	})

	It("rejects traversal in image keys", func() {
		_, err := svc.CreatePost(ctx, 5, 10, service.PostInput{
			Title:     "공지",
			Body:      "본문",
			ImageKeys: []string{"../../etc/passwd"},
		})
		Expect(err).To(MatchError(service.ErrInvalidInput))
	})

	It("requires manage_posts", func() {
		members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
			return activeMember(academyID, userID, model.PermissionChat), nil
		}

		_, err := svc.CreatePost(ctx, 5, 10, service.PostInput{Title: "공지", Body: "본문"})
		Expect(err).To(MatchError(service.ErrForbidden))
	})

	It("pages the feed with a cursor and region", func() {
		posts.listFeedFn = func(_ context.Context, region *string, before *int64, limit int32) ([]model.Post, error) {
			Expect(*region).To(Equal("서울"))
			Expect(*before).To(Equal(int64(900)))
			Expect(limit).To(Equal(int32(service.DefaultPageSize)))
			return []model.Post{{ID: 800, AcademyName: "한빛 수학학원"}}, nil
		}

		feed, err := svc.Feed(ctx, strPtr("서울"), int64Ptr(900), 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(feed[0].AcademyName).To(Equal("한빛 수학학원"))
	})

	It("rejects an unknown feed region", func() {
		_, err := svc.Feed(ctx, strPtr("Gotham"), nil, 0)
		Expect(err).To(MatchError(service.ErrInvalidInput))
	})
})
