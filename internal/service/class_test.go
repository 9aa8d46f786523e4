package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

var _ = Describe("ClassService", func() {
	var (
		svc      service.ClassService
		members  *mockMemberStore
		teachers *mockTeacherStore
		classes  *mockClassStore
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		members = &mockMemberStore{
			getFn: func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return activeMember(academyID, userID, model.PermissionManageClasses), nil
			},
		}
		teachers = &mockTeacherStore{}
		classes = &mockClassStore{}
		svc = service.NewClassService(members, teachers, classes)
	})

	Describe("CreateClass", func() {
		It("stores the canonical schedule and returns parsed entries", func() {
			var stored *model.Class
			classes.createFn = func(_ context.Context, c *model.Class) error {
				stored = c
				return nil
			}

			view, err := svc.CreateClass(ctx, 5, 10, service.ClassInput{
				Name:     "중2 내신반",
				Subject:  "수학",
				Schedule: "수 19:00~21:00, 월/금 18:00~20:00",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Schedule).To(Equal("월 18:00~20:00, 수 19:00~21:00, 금 18:00~20:00"))
			Expect(view.ScheduleEntries).To(HaveLen(3))
			Expect(view.ScheduleEntries[0].Day).To(Equal("월"))
		})

		It("rejects malformed schedules", func() {
			_, err := svc.CreateClass(ctx, 5, 10, service.ClassInput{
				Name:     "중2 내신반",
				Subject:  "수학",
				Schedule: "월 21:00~18:00",
			})
			Expect(err).To(MatchError(service.ErrInvalidInput))

			_, err = svc.CreateClass(ctx, 5, 10, service.ClassInput{
				Name:     "중2 내신반",
				Subject:  "수학",
				Schedule: "월요일 저녁",
			})
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("requires the teacher to belong to the academy", func() {
			teachers.getFn = func(_ context.Context, _, _ int64) (*model.Teacher, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.CreateClass(ctx, 5, 10, service.ClassInput{
				Name:      "중2 내신반",
				Subject:   "수학",
				TeacherID: int64Ptr(99),
			})
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("requires manage_classes", func() {
			members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return activeMember(academyID, userID, model.PermissionManagePosts), nil
			}

			_, err := svc.CreateClass(ctx, 5, 10, service.ClassInput{Name: "중2 내신반", Subject: "수학"})
			Expect(err).To(MatchError(service.ErrForbidden))
		})
	})

	Describe("Teachers", func() {
		It("creates a teacher scoped to the academy", func() {
			teacher, err := svc.CreateTeacher(ctx, 5, 10, service.TeacherInput{Name: "박선생", Subject: "영어"})
			Expect(err).NotTo(HaveOccurred())
			Expect(teacher.AcademyID).To(Equal(int64(10)))
			Expect(teacher.ID).NotTo(BeZero())
		})

		It("reports a teacher of another academy as not found", func() {
			teachers.deleteFn = func(_ context.Context, _, _ int64) error {
				return store.ErrNotFound
			}

			Expect(svc.DeleteTeacher(ctx, 5, 10, 99)).To(MatchError(service.ErrNotFound))
		})
	})
})
