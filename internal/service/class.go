package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"academyhub.app/server/common/id"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/schedule"
	"academyhub.app/server/internal/store"
)

type TeacherInput struct {
	Name     string
	Subject  string
	Bio      *string
	PhotoKey *string
}

type ClassInput struct {
	TeacherID   *int64
	Name        string
	Subject     string
	TargetGrade string
	Schedule    string
	Tuition     *int32
	Capacity    *int32
}

// ClassView is a class with its timetable already parsed.
type ClassView struct {
	model.Class
	ScheduleEntries []schedule.Entry `json:"schedule_entries"`
}

type ClassService interface {
	ListTeachers(ctx context.Context, academyID int64) ([]model.Teacher, error)
	CreateTeacher(ctx context.Context, actorID, academyID int64, input TeacherInput) (*model.Teacher, error)
	UpdateTeacher(ctx context.Context, actorID, academyID, teacherID int64, input TeacherInput) (*model.Teacher, error)
	DeleteTeacher(ctx context.Context, actorID, academyID, teacherID int64) error

	ListClasses(ctx context.Context, academyID int64) ([]ClassView, error)
	CreateClass(ctx context.Context, actorID, academyID int64, input ClassInput) (*ClassView, error)
	UpdateClass(ctx context.Context, actorID, academyID, classID int64, input ClassInput) (*ClassView, error)
	DeleteClass(ctx context.Context, actorID, academyID, classID int64) error
}

type classService struct {
	memberStore  store.MemberStore
	teacherStore store.TeacherStore
	classStore   store.ClassStore
}

func NewClassService(memberStore store.MemberStore, teacherStore store.TeacherStore, classStore store.ClassStore) ClassService {
	return &classService{
		memberStore:  memberStore,
		teacherStore: teacherStore,
		classStore:   classStore,
	}
}

func (s *classService) ListTeachers(ctx context.Context, academyID int64) ([]model.Teacher, error) {
	return s.teacherStore.ListByAcademy(ctx, academyID)
}

func (s *classService) CreateTeacher(ctx context.Context, actorID, academyID int64, input TeacherInput) (*model.Teacher, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageClasses); err != nil {
		return nil, err
	}

	teacher := &model.Teacher{ID: id.New(), AcademyID: academyID}
	if err := applyTeacherInput(teacher, input); err != nil {
		return nil, err
	}

	if err := s.teacherStore.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("creating teacher: %w", err)
	}

	slog.InfoContext(ctx, "teacher created", "academy_id", academyID, "teacher_id", teacher.ID)
	return teacher, nil
}

func (s *classService) UpdateTeacher(ctx context.Context, actorID, academyID, teacherID int64, input TeacherInput) (*model.Teacher, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageClasses); err != nil {
		return nil, err
	}

	teacher, err := s.teacherStore.Get(ctx, academyID, teacherID)
	if err != nil {
		return nil, notFound(err, "teacher")
	}
	if err := applyTeacherInput(teacher, input); err != nil {
		return nil, err
	}

	if err := s.teacherStore.Update(ctx, teacher); err != nil {
		return nil, notFound(err, "teacher")
	}
	return teacher, nil
}

func (s *classService) DeleteTeacher(ctx context.Context, actorID, academyID, teacherID int64) error {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageClasses); err != nil {
		return err
	}
	if err := s.teacherStore.Delete(ctx, academyID, teacherID); err != nil {
		return notFound(err, "teacher")
	}
	slog.InfoContext(ctx, "teacher deleted", "academy_id", academyID, "teacher_id", teacherID)
	return nil
}

func (s *classService) ListClasses(ctx context.Context, academyID int64) ([]ClassView, error) {
	classes, err := s.classStore.ListByAcademy(ctx, academyID)
	if err != nil {
		return nil, err
	}
	return toClassViews(classes), nil
}

func (s *classService) CreateClass(ctx context.Context, actorID, academyID int64, input ClassInput) (*ClassView, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageClasses); err != nil {
		return nil, err
	}

	class := &model.Class{ID: id.New(), AcademyID: academyID}
	if err := s.applyClassInput(ctx, class, input); err != nil {
		return nil, err
	}

	if err := s.classStore.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("creating class: %w", err)
	}

	slog.InfoContext(ctx, "class created", "academy_id", academyID, "class_id", class.ID)
	return toClassView(*class), nil
}

func (s *classService) UpdateClass(ctx context.Context, actorID, academyID, classID int64, input ClassInput) (*ClassView, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageClasses); err != nil {
		return nil, err
	}

	class, err := s.classStore.Get(ctx, academyID, classID)
	if err != nil {
		return nil, notFound(err, "class")
	}
	if err := s.applyClassInput(ctx, class, input); err != nil {
		return nil, err
	}

	if err := s.classStore.Update(ctx, class); err != nil {
		return nil, notFound(err, "class")
	}
	return toClassView(*class), nil
}

func (s *classService) DeleteClass(ctx context.Context, actorID, academyID, classID int64) error {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageClasses); err != nil {
		return err
	}
	if err := s.classStore.Delete(ctx, academyID, classID); err != nil {
		return notFound(err, "class")
	}
	slog.InfoContext(ctx, "class deleted", "academy_id", academyID, "class_id", classID)
	return nil
}

func applyTeacherInput(teacher *model.Teacher, input TeacherInput) error {
	name, err := requireText("name", input.Name, 50)
	if err != nil {
		return err
	}
	subject, err := requireText("subject", input.Subject, 50)
	if err != nil {
		return err
	}
	teacher.Name = name
	teacher.Subject = subject
	teacher.Bio = trimmedPtr(input.Bio)
	teacher.PhotoKey = trimmedPtr(input.PhotoKey)
	return nil
}

func (s *classService) applyClassInput(ctx context.Context, class *model.Class, input ClassInput) error {
	name, err := requireText("name", input.Name, 100)
	if err != nil {
		return err
	}
	subject, err := requireText("subject", input.Subject, 50)
	if err != nil {
		return err
	}

	canonical, err := canonicalSchedule(input.Schedule)
	if err != nil {
		return err
	}

	if input.Tuition != nil && *input.Tuition < 0 {
		return fmt.Errorf("%w: tuition must not be negative", ErrInvalidInput)
	}
	if input.Capacity != nil && *input.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
	}

	if input.TeacherID != nil {
		if _, err := s.teacherStore.Get(ctx, class.AcademyID, *input.TeacherID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: teacher %d is not part of this academy", ErrInvalidInput, *input.TeacherID)
			}
			return fmt.Errorf("getting teacher: %w", err)
		}
	}

	class.TeacherID = input.TeacherID
	class.Name = name
	class.Subject = subject
	class.TargetGrade = input.TargetGrade
	class.Schedule = canonical
	class.Tuition = input.Tuition
	class.Capacity = input.Capacity
	return nil
}

// canonicalSchedule rejects malformed timetables and returns the Build form.
// An empty schedule is allowed.
func canonicalSchedule(raw string) (string, error) {
	entries, err := schedule.ParseStrict(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := schedule.Validate(entries); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return schedule.Build(entries), nil
}

func toClassView(class model.Class) *ClassView {
	return &ClassView{Class: class, ScheduleEntries: schedule.Parse(class.Schedule)}
}

func toClassViews(classes []model.Class) []ClassView {
	views := make([]ClassView, len(classes))
	for i, c := range classes {
		views[i] = *toClassView(c)
	}
	return views
}
