package service_test

import (
	"context"
	"time"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/queue"
	"academyhub.app/server/internal/realtime"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

type mockUserStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*model.User, error)
	upsertByWorkOSIDFn func(ctx context.Context, user *model.User) error
	updateProfileFn    func(ctx context.Context, user *model.User) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	if m.upsertByWorkOSIDFn != nil {
		return m.upsertByWorkOSIDFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, user *model.User) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, user)
	}
	return nil
}

type mockRoleStore struct {
	listFn   func(ctx context.Context, userID int64) ([]model.Role, error)
	grantFn  func(ctx context.Context, userID int64, role model.Role) error
	revokeFn func(ctx context.Context, userID int64, role model.Role) error
}

func (m *mockRoleStore) List(ctx context.Context, userID int64) ([]model.Role, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRoleStore) Grant(ctx context.Context, userID int64, role model.Role) error {
	if m.grantFn != nil {
		return m.grantFn(ctx, userID, role)
	}
	return nil
}

func (m *mockRoleStore) Revoke(ctx context.Context, userID int64, role model.Role) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, userID, role)
	}
	return nil
}

type mockSessionStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.Session, error)
	getValidFn      func(ctx context.Context, id int64) (*model.Session, error)
	createFn        func(ctx context.Context, session *model.Session) error
	deleteFn        func(ctx context.Context, id int64) error
	deleteExpiredFn func(ctx context.Context) (int64, error)
}

func (m *mockSessionStore) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return 0, nil
}

type mockVerificationStore struct {
	createFn          func(ctx context.Context, v *model.BusinessVerification) error
	getByIDFn         func(ctx context.Context, id int64) (*model.BusinessVerification, error)
	getLatestByUserFn func(ctx context.Context, userID int64) (*model.BusinessVerification, error)
	getUsableByUserFn func(ctx context.Context, userID int64) (*model.BusinessVerification, error)
	listByStatusFn    func(ctx context.Context, status model.VerificationStatus, limit int32, offset int32) ([]model.BusinessVerification, error)
	reviewFn          func(ctx context.Context, id int64, status model.VerificationStatus, reason *string, reviewerID *int64) (*model.BusinessVerification, error)
	consumeFn         func(ctx context.Context, id int64) (*model.BusinessVerification, error)
}

func (m *mockVerificationStore) Create(ctx context.Context, v *model.BusinessVerification) error {
	if m.createFn != nil {
		return m.createFn(ctx, v)
	}
	return nil
}

func (m *mockVerificationStore) GetByID(ctx context.Context, id int64) (*model.BusinessVerification, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockVerificationStore) GetLatestByUser(ctx context.Context, userID int64) (*model.BusinessVerification, error) {
	if m.getLatestByUserFn != nil {
		return m.getLatestByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockVerificationStore) GetUsableByUser(ctx context.Context, userID int64) (*model.BusinessVerification, error) {
	if m.getUsableByUserFn != nil {
		return m.getUsableByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockVerificationStore) ListByStatus(ctx context.Context, status model.VerificationStatus, limit int32, offset int32) ([]model.BusinessVerification, error) {
	if m.listByStatusFn != nil {
		return m.listByStatusFn(ctx, status, limit, offset)
	}
	return nil, nil
}

func (m *mockVerificationStore) Review(ctx context.Context, id int64, status model.VerificationStatus, reason *string, reviewerID *int64) (*model.BusinessVerification, error) {
	if m.reviewFn != nil {
		return m.reviewFn(ctx, id, status, reason, reviewerID)
	}
	return nil, nil
}

func (m *mockVerificationStore) Consume(ctx context.Context, id int64) (*model.BusinessVerification, error) {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, id)
	}
	return nil, nil
}

type mockAcademyStore struct {
	createFn         func(ctx context.Context, academy *model.Academy) error
	getByIDFn        func(ctx context.Context, id int64) (*model.Academy, error)
	getBySlugFn      func(ctx context.Context, slug string) (*model.Academy, error)
	getByJoinCodeFn  func(ctx context.Context, code string) (*model.Academy, error)
	slugExistsFn     func(ctx context.Context, slug string) (bool, error)
	listFn           func(ctx context.Context, filter model.AcademyFilter) ([]model.Academy, error)
	listCandidatesFn func(ctx context.Context, region *string, tags []string, afterID int64, limit int32) ([]model.Academy, error)
	listByMemberFn   func(ctx context.Context, userID int64) ([]model.Academy, error)
	updateFn         func(ctx context.Context, academy *model.Academy) error
	updateJoinCodeFn func(ctx context.Context, id int64, code string) (*model.Academy, error)
	softDeleteFn     func(ctx context.Context, id int64) error
}

func (m *mockAcademyStore) Create(ctx context.Context, academy *model.Academy) error {
	if m.createFn != nil {
		return m.createFn(ctx, academy)
	}
	return nil
}

func (m *mockAcademyStore) GetByID(ctx context.Context, id int64) (*model.Academy, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAcademyStore) GetBySlug(ctx context.Context, slug string) (*model.Academy, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockAcademyStore) GetByJoinCode(ctx context.Context, code string) (*model.Academy, error) {
	if m.getByJoinCodeFn != nil {
		return m.getByJoinCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *mockAcademyStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(ctx, slug)
	}
	return false, nil
}

func (m *mockAcademyStore) List(ctx context.Context, filter model.AcademyFilter) ([]model.Academy, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockAcademyStore) ListCandidates(ctx context.Context, region *string, tags []string, afterID int64, limit int32) ([]model.Academy, error) {
	if m.listCandidatesFn != nil {
		return m.listCandidatesFn(ctx, region, tags, afterID, limit)
	}
	return nil, nil
}

func (m *mockAcademyStore) ListByMember(ctx context.Context, userID int64) ([]model.Academy, error) {
	if m.listByMemberFn != nil {
		return m.listByMemberFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockAcademyStore) Update(ctx context.Context, academy *model.Academy) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, academy)
	}
	return nil
}

func (m *mockAcademyStore) UpdateJoinCode(ctx context.Context, id int64, code string) (*model.Academy, error) {
	if m.updateJoinCodeFn != nil {
		return m.updateJoinCodeFn(ctx, id, code)
	}
	return nil, nil
}

func (m *mockAcademyStore) SoftDelete(ctx context.Context, id int64) error {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, id)
	}
	return nil
}

type mockMemberStore struct {
	createFn            func(ctx context.Context, member *model.AcademyMember) error
	getFn               func(ctx context.Context, academyID int64, userID int64) (*model.AcademyMember, error)
	listByAcademyFn     func(ctx context.Context, academyID int64) ([]model.AcademyMember, error)
	listByUserFn        func(ctx context.Context, userID int64) ([]model.AcademyMember, error)
	activateFn          func(ctx context.Context, academyID int64, userID int64) (*model.AcademyMember, error)
	updatePermissionsFn func(ctx context.Context, academyID int64, userID int64, perms []model.Permission) (*model.AcademyMember, error)
	deleteFn            func(ctx context.Context, academyID int64, userID int64) error
}

func (m *mockMemberStore) Create(ctx context.Context, member *model.AcademyMember) error {
	if m.createFn != nil {
		return m.createFn(ctx, member)
	}
	return nil
}

func (m *mockMemberStore) Get(ctx context.Context, academyID int64, userID int64) (*model.AcademyMember, error) {
	if m.getFn != nil {
		return m.getFn(ctx, academyID, userID)
	}
	return nil, nil
}

func (m *mockMemberStore) ListByAcademy(ctx context.Context, academyID int64) ([]model.AcademyMember, error) {
	if m.listByAcademyFn != nil {
		return m.listByAcademyFn(ctx, academyID)
	}
	return nil, nil
}

func (m *mockMemberStore) ListByUser(ctx context.Context, userID int64) ([]model.AcademyMember, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMemberStore) Activate(ctx context.Context, academyID int64, userID int64) (*model.AcademyMember, error) {
	if m.activateFn != nil {
		return m.activateFn(ctx, academyID, userID)
	}
	return nil, nil
}

func (m *mockMemberStore) UpdatePermissions(ctx context.Context, academyID int64, userID int64, perms []model.Permission) (*model.AcademyMember, error) {
	if m.updatePermissionsFn != nil {
		return m.updatePermissionsFn(ctx, academyID, userID, perms)
	}
	return nil, nil
}

func (m *mockMemberStore) Delete(ctx context.Context, academyID int64, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, academyID, userID)
	}
	return nil
}

type mockTeacherStore struct {
	createFn        func(ctx context.Context, teacher *model.Teacher) error
	getFn           func(ctx context.Context, academyID int64, id int64) (*model.Teacher, error)
	listByAcademyFn func(ctx context.Context, academyID int64) ([]model.Teacher, error)
	updateFn        func(ctx context.Context, teacher *model.Teacher) error
	deleteFn        func(ctx context.Context, academyID int64, id int64) error
}

func (m *mockTeacherStore) Create(ctx context.Context, teacher *model.Teacher) error {
	if m.createFn != nil {
		return m.createFn(ctx, teacher)
	}
	return nil
}

func (m *mockTeacherStore) Get(ctx context.Context, academyID int64, id int64) (*model.Teacher, error) {
	if m.getFn != nil {
		return m.getFn(ctx, academyID, id)
	}
	return nil, nil
}

func (m *mockTeacherStore) ListByAcademy(ctx context.Context, academyID int64) ([]model.Teacher, error) {
	if m.listByAcademyFn != nil {
		return m.listByAcademyFn(ctx, academyID)
	}
	return nil, nil
}

func (m *mockTeacherStore) Update(ctx context.Context, teacher *model.Teacher) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, teacher)
	}
	return nil
}

func (m *mockTeacherStore) Delete(ctx context.Context, academyID int64, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, academyID, id)
	}
	return nil
}

type mockClassStore struct {
	createFn        func(ctx context.Context, class *model.Class) error
	getFn           func(ctx context.Context, academyID int64, id int64) (*model.Class, error)
	listByAcademyFn func(ctx context.Context, academyID int64) ([]model.Class, error)
	updateFn        func(ctx context.Context, class *model.Class) error
	deleteFn        func(ctx context.Context, academyID int64, id int64) error
}

func (m *mockClassStore) Create(ctx context.Context, class *model.Class) error {
	if m.createFn != nil {
		return m.createFn(ctx, class)
	}
	return nil
}

func (m *mockClassStore) Get(ctx context.Context, academyID int64, id int64) (*model.Class, error) {
	if m.getFn != nil {
		return m.getFn(ctx, academyID, id)
	}
	return nil, nil
}

func (m *mockClassStore) ListByAcademy(ctx context.Context, academyID int64) ([]model.Class, error) {
	if m.listByAcademyFn != nil {
		return m.listByAcademyFn(ctx, academyID)
	}
	return nil, nil
}

func (m *mockClassStore) Update(ctx context.Context, class *model.Class) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, class)
	}
	return nil
}

func (m *mockClassStore) Delete(ctx context.Context, academyID int64, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, academyID, id)
	}
	return nil
}

type mockSeminarStore struct {
	createFn        func(ctx context.Context, seminar *model.Seminar) error
	getByIDFn       func(ctx context.Context, id int64) (*model.Seminar, error)
	lockFn          func(ctx context.Context, id int64) (*model.Seminar, error)
	listByAcademyFn func(ctx context.Context, academyID int64) ([]model.Seminar, error)
	listUpcomingFn  func(ctx context.Context, region *string, limit int32, offset int32) ([]model.Seminar, error)
	updateFn        func(ctx context.Context, seminar *model.Seminar) error
	setStatusFn     func(ctx context.Context, academyID int64, id int64, from, to model.SeminarStatus) (*model.Seminar, error)
	seatsTakenFn    func(ctx context.Context, id int64) (int32, error)
}

func (m *mockSeminarStore) Create(ctx context.Context, seminar *model.Seminar) error {
	if m.createFn != nil {
		return m.createFn(ctx, seminar)
	}
	return nil
}

func (m *mockSeminarStore) GetByID(ctx context.Context, id int64) (*model.Seminar, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSeminarStore) Lock(ctx context.Context, id int64) (*model.Seminar, error) {
	if m.lockFn != nil {
		return m.lockFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSeminarStore) ListByAcademy(ctx context.Context, academyID int64) ([]model.Seminar, error) {
	if m.listByAcademyFn != nil {
		return m.listByAcademyFn(ctx, academyID)
	}
	return nil, nil
}

func (m *mockSeminarStore) ListUpcoming(ctx context.Context, region *string, limit int32, offset int32) ([]model.Seminar, error) {
	if m.listUpcomingFn != nil {
		return m.listUpcomingFn(ctx, region, limit, offset)
	}
	return nil, nil
}

func (m *mockSeminarStore) Update(ctx context.Context, seminar *model.Seminar) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, seminar)
	}
	return nil
}

func (m *mockSeminarStore) SetStatus(ctx context.Context, academyID int64, id int64, from, to model.SeminarStatus) (*model.Seminar, error) {
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, academyID, id, from, to)
	}
	return nil, nil
}

func (m *mockSeminarStore) SeatsTaken(ctx context.Context, id int64) (int32, error) {
	if m.seatsTakenFn != nil {
		return m.seatsTakenFn(ctx, id)
	}
	return 0, nil
}

type mockRegistrationStore struct {
	getFn           func(ctx context.Context, seminarID int64, userID int64) (*model.SeminarRegistration, error)
	createFn        func(ctx context.Context, reg *model.SeminarRegistration) error
	reactivateFn    func(ctx context.Context, id int64, childID *int64, attendees int32) (*model.SeminarRegistration, error)
	cancelFn        func(ctx context.Context, seminarID int64, userID int64) (*model.SeminarRegistration, error)
	listBySeminarFn func(ctx context.Context, seminarID int64) ([]model.SeminarRegistration, error)
	listByUserFn    func(ctx context.Context, userID int64) ([]model.SeminarRegistration, error)
}

func (m *mockRegistrationStore) Get(ctx context.Context, seminarID int64, userID int64) (*model.SeminarRegistration, error) {
	if m.getFn != nil {
		return m.getFn(ctx, seminarID, userID)
	}
	return nil, nil
}

func (m *mockRegistrationStore) Create(ctx context.Context, reg *model.SeminarRegistration) error {
	if m.createFn != nil {
		return m.createFn(ctx, reg)
	}
	return nil
}

func (m *mockRegistrationStore) Reactivate(ctx context.Context, id int64, childID *int64, attendees int32) (*model.SeminarRegistration, error) {
	if m.reactivateFn != nil {
		return m.reactivateFn(ctx, id, childID, attendees)
	}
	return nil, nil
}

func (m *mockRegistrationStore) Cancel(ctx context.Context, seminarID int64, userID int64) (*model.SeminarRegistration, error) {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, seminarID, userID)
	}
	return nil, nil
}

func (m *mockRegistrationStore) ListBySeminar(ctx context.Context, seminarID int64) ([]model.SeminarRegistration, error) {
	if m.listBySeminarFn != nil {
		return m.listBySeminarFn(ctx, seminarID)
	}
	return nil, nil
}

func (m *mockRegistrationStore) ListByUser(ctx context.Context, userID int64) ([]model.SeminarRegistration, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockConsultationStore struct {
	createFn        func(ctx context.Context, c *model.Consultation) error
	getByIDFn       func(ctx context.Context, id int64) (*model.Consultation, error)
	listByUserFn    func(ctx context.Context, userID int64, limit int32, offset int32) ([]model.Consultation, error)
	listByAcademyFn func(ctx context.Context, academyID int64, status *model.ConsultationStatus, limit int32, offset int32) ([]model.Consultation, error)
	updateStatusFn  func(ctx context.Context, id int64, from, to model.ConsultationStatus, note *string) (*model.Consultation, error)
}

func (m *mockConsultationStore) Create(ctx context.Context, c *model.Consultation) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil
}

func (m *mockConsultationStore) GetByID(ctx context.Context, id int64) (*model.Consultation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockConsultationStore) ListByUser(ctx context.Context, userID int64, limit int32, offset int32) ([]model.Consultation, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockConsultationStore) ListByAcademy(ctx context.Context, academyID int64, status *model.ConsultationStatus, limit int32, offset int32) ([]model.Consultation, error) {
	if m.listByAcademyFn != nil {
		return m.listByAcademyFn(ctx, academyID, status, limit, offset)
	}
	return nil, nil
}

func (m *mockConsultationStore) UpdateStatus(ctx context.Context, id int64, from, to model.ConsultationStatus, note *string) (*model.Consultation, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, from, to, note)
	}
	return nil, nil
}

type mockChatStore struct {
	getOrCreateRoomFn    func(ctx context.Context, id int64, academyID int64, userID int64) (*model.ChatRoom, error)
	getRoomFn            func(ctx context.Context, id int64) (*model.ChatRoom, error)
	listRoomsForViewerFn func(ctx context.Context, viewerID int64) ([]model.ChatRoom, error)
	createMessageFn      func(ctx context.Context, msg *model.ChatMessage) error
	touchRoomFn          func(ctx context.Context, roomID int64, at time.Time) error
	listMessagesFn       func(ctx context.Context, roomID int64, before *int64, limit int32) ([]model.ChatMessage, error)
	latestMessageIDFn    func(ctx context.Context, roomID int64) (int64, error)
	markReadByUserFn     func(ctx context.Context, roomID int64, messageID int64) error
	markReadByAcademyFn  func(ctx context.Context, roomID int64, messageID int64) error
}

func (m *mockChatStore) GetOrCreateRoom(ctx context.Context, id int64, academyID int64, userID int64) (*model.ChatRoom, error) {
	if m.getOrCreateRoomFn != nil {
		return m.getOrCreateRoomFn(ctx, id, academyID, userID)
	}
	return nil, nil
}

func (m *mockChatStore) GetRoom(ctx context.Context, id int64) (*model.ChatRoom, error) {
	if m.getRoomFn != nil {
		return m.getRoomFn(ctx, id)
	}
	return nil, nil
}

func (m *mockChatStore) ListRoomsForViewer(ctx context.Context, viewerID int64) ([]model.ChatRoom, error) {
	if m.listRoomsForViewerFn != nil {
		return m.listRoomsForViewerFn(ctx, viewerID)
	}
	return nil, nil
}

func (m *mockChatStore) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	if m.createMessageFn != nil {
		return m.createMessageFn(ctx, msg)
	}
	return nil
}

func (m *mockChatStore) TouchRoom(ctx context.Context, roomID int64, at time.Time) error {
	if m.touchRoomFn != nil {
		return m.touchRoomFn(ctx, roomID, at)
	}
	return nil
}

func (m *mockChatStore) ListMessages(ctx context.Context, roomID int64, before *int64, limit int32) ([]model.ChatMessage, error) {
	if m.listMessagesFn != nil {
		return m.listMessagesFn(ctx, roomID, before, limit)
	}
	return nil, nil
}

func (m *mockChatStore) LatestMessageID(ctx context.Context, roomID int64) (int64, error) {
	if m.latestMessageIDFn != nil {
		return m.latestMessageIDFn(ctx, roomID)
	}
	return 0, nil
}

func (m *mockChatStore) MarkReadByUser(ctx context.Context, roomID int64, messageID int64) error {
	if m.markReadByUserFn != nil {
		return m.markReadByUserFn(ctx, roomID, messageID)
	}
	return nil
}

func (m *mockChatStore) MarkReadByAcademy(ctx context.Context, roomID int64, messageID int64) error {
	if m.markReadByAcademyFn != nil {
		return m.markReadByAcademyFn(ctx, roomID, messageID)
	}
	return nil
}

type mockBookmarkStore struct {
	addFn           func(ctx context.Context, userID int64, academyID int64) error
	removeFn        func(ctx context.Context, userID int64, academyID int64) error
	listAcademiesFn func(ctx context.Context, userID int64) ([]model.Academy, error)
}

func (m *mockBookmarkStore) Add(ctx context.Context, userID int64, academyID int64) error {
	if m.addFn != nil {
		return m.addFn(ctx, userID, academyID)
	}
	return nil
}

func (m *mockBookmarkStore) Remove(ctx context.Context, userID int64, academyID int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, academyID)
	}
	return nil
}

func (m *mockBookmarkStore) ListAcademies(ctx context.Context, userID int64) ([]model.Academy, error) {
	if m.listAcademiesFn != nil {
		return m.listAcademiesFn(ctx, userID)
	}
	return nil, nil
}

type mockChildStore struct {
	createFn       func(ctx context.Context, child *model.Child) error
	getFn          func(ctx context.Context, parentID int64, id int64) (*model.Child, error)
	listByParentFn func(ctx context.Context, parentID int64) ([]model.Child, error)
	updateFn       func(ctx context.Context, child *model.Child) error
	deleteFn       func(ctx context.Context, parentID int64, id int64) error
}

func (m *mockChildStore) Create(ctx context.Context, child *model.Child) error {
	if m.createFn != nil {
		return m.createFn(ctx, child)
	}
	return nil
}

func (m *mockChildStore) Get(ctx context.Context, parentID int64, id int64) (*model.Child, error) {
	if m.getFn != nil {
		return m.getFn(ctx, parentID, id)
	}
	return nil, nil
}

func (m *mockChildStore) ListByParent(ctx context.Context, parentID int64) ([]model.Child, error) {
	if m.listByParentFn != nil {
		return m.listByParentFn(ctx, parentID)
	}
	return nil, nil
}

func (m *mockChildStore) Update(ctx context.Context, child *model.Child) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, child)
	}
	return nil
}

func (m *mockChildStore) Delete(ctx context.Context, parentID int64, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, parentID, id)
	}
	return nil
}

type mockPostStore struct {
	createFn        func(ctx context.Context, post *model.Post) error
	deleteFn        func(ctx context.Context, academyID int64, id int64) error
	listByAcademyFn func(ctx context.Context, academyID int64, before *int64, limit int32) ([]model.Post, error)
	listFeedFn      func(ctx context.Context, region *string, before *int64, limit int32) ([]model.Post, error)
}

func (m *mockPostStore) Create(ctx context.Context, post *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostStore) Delete(ctx context.Context, academyID int64, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, academyID, id)
	}
	return nil
}

func (m *mockPostStore) ListByAcademy(ctx context.Context, academyID int64, before *int64, limit int32) ([]model.Post, error) {
	if m.listByAcademyFn != nil {
		return m.listByAcademyFn(ctx, academyID, before, limit)
	}
	return nil, nil
}

func (m *mockPostStore) ListFeed(ctx context.Context, region *string, before *int64, limit int32) ([]model.Post, error) {
	if m.listFeedFn != nil {
		return m.listFeedFn(ctx, region, before, limit)
	}
	return nil, nil
}

type mockPlatformSettingStore struct {
	listFn   func(ctx context.Context) ([]model.PlatformSetting, error)
	getFn    func(ctx context.Context, key string) (*model.PlatformSetting, error)
	upsertFn func(ctx context.Context, setting *model.PlatformSetting) error
}

func (m *mockPlatformSettingStore) List(ctx context.Context) ([]model.PlatformSetting, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPlatformSettingStore) Get(ctx context.Context, key string) (*model.PlatformSetting, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockPlatformSettingStore) Upsert(ctx context.Context, setting *model.PlatformSetting) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, setting)
	}
	return nil
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}

// txWith runs the transaction body directly against the given provider.
func txWith(sp *mockStoreProvider) *mockTxRunner {
	return &mockTxRunner{
		withTxFn: func(_ context.Context, fn func(stores service.StoreProvider) error) error {
			return fn(sp)
		},
	}
}

type mockStoreProvider struct {
	users         *mockUserStore
	roles         *mockRoleStore
	verifications *mockVerificationStore
	academies     *mockAcademyStore
	members       *mockMemberStore
	seminars      *mockSeminarStore
	registrations *mockRegistrationStore
	chat          *mockChatStore
}

func (m *mockStoreProvider) Users() store.UserStore {
	if m.users == nil {
		return &mockUserStore{}
	}
	return m.users
}

func (m *mockStoreProvider) Roles() store.RoleStore {
	if m.roles == nil {
		return &mockRoleStore{}
	}
	return m.roles
}

func (m *mockStoreProvider) Verifications() store.VerificationStore {
	if m.verifications == nil {
		return &mockVerificationStore{}
	}
	return m.verifications
}

func (m *mockStoreProvider) Academies() store.AcademyStore {
	if m.academies == nil {
		return &mockAcademyStore{}
	}
	return m.academies
}

func (m *mockStoreProvider) Members() store.MemberStore {
	if m.members == nil {
		return &mockMemberStore{}
	}
	return m.members
}

func (m *mockStoreProvider) Seminars() store.SeminarStore {
	if m.seminars == nil {
		return &mockSeminarStore{}
	}
	return m.seminars
}

func (m *mockStoreProvider) Registrations() store.RegistrationStore {
	if m.registrations == nil {
		return &mockRegistrationStore{}
	}
	return m.registrations
}

func (m *mockStoreProvider) Chat() store.ChatStore {
	if m.chat == nil {
		return &mockChatStore{}
	}
	return m.chat
}

type mockProducer struct {
	enqueueFn func(ctx context.Context, task queue.Task) error
	tasks     []queue.Task
}

func (m *mockProducer) Enqueue(ctx context.Context, task queue.Task) error {
	m.tasks = append(m.tasks, task)
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, task)
	}
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}

type mockIdentityProvider struct {
	authorizationURLFn func(state string) (string, error)
	authenticateFn     func(ctx context.Context, code string) (*service.Identity, error)
	logoutURLFn        func(sessionID string) (string, error)
}

func (m *mockIdentityProvider) AuthorizationURL(state string) (string, error) {
	if m.authorizationURLFn != nil {
		return m.authorizationURLFn(state)
	}
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockIdentityProvider) Authenticate(ctx context.Context, code string) (*service.Identity, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, code)
	}
	return nil, nil
}

func (m *mockIdentityProvider) LogoutURL(sessionID string) (string, error) {
	if m.logoutURLFn != nil {
		return m.logoutURLFn(sessionID)
	}
	return "https://auth.example.com/logout?session_id=" + sessionID, nil
}

type mockBroker struct {
	publishFn   func(ctx context.Context, msg model.ChatMessage) error
	subscribeFn func(ctx context.Context, roomID int64) (realtime.Subscription, error)
	published   []model.ChatMessage
}

func (m *mockBroker) Publish(ctx context.Context, msg model.ChatMessage) error {
	m.published = append(m.published, msg)
	if m.publishFn != nil {
		return m.publishFn(ctx, msg)
	}
	return nil
}

func (m *mockBroker) Subscribe(ctx context.Context, roomID int64) (realtime.Subscription, error) {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, roomID)
	}
	return nil, nil
}

type mockImageStore struct {
	saveFn func(ctx context.Context, data []byte, contentType string) (model.StoredImage, error)
	pathFn func(key string) (string, error)
}

func (m *mockImageStore) Save(ctx context.Context, data []byte, contentType string) (model.StoredImage, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, data, contentType)
	}
	return model.StoredImage{}, nil
}

func (m *mockImageStore) Path(key string) (string, error) {
	if m.pathFn != nil {
		return m.pathFn(key)
	}
	return "", nil
}

// activeMember is an active admin holding perms.
func activeMember(academyID, userID int64, perms ...model.Permission) *model.AcademyMember {
	return &model.AcademyMember{
		AcademyID:   academyID,
		UserID:      userID,
		Role:        model.MemberRoleAdmin,
		Status:      model.MemberStatusActive,
		Permissions: perms,
	}
}

func ownerMember(academyID, userID int64) *model.AcademyMember {
	return &model.AcademyMember{
		AcademyID:   academyID,
		UserID:      userID,
		Role:        model.MemberRoleOwner,
		Status:      model.MemberStatusActive,
		Permissions: model.AllPermissions,
	}
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func int32Ptr(v int32) *int32 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}
