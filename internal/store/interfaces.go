package store

import (
	"context"
	"errors"
	"time"

	"academyhub.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a unique constraint
var ErrConflict = errors.New("conflict")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
	UpdateProfile(ctx context.Context, user *model.User) error
}

// RoleStore defines the contract for platform role assignments
type RoleStore interface {
	List(ctx context.Context, userID int64) ([]model.Role, error)
	Grant(ctx context.Context, userID int64, role model.Role) error // idempotent
	Revoke(ctx context.Context, userID int64, role model.Role) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// VerificationStore defines the contract for business verification data access
type VerificationStore interface {
	Create(ctx context.Context, v *model.BusinessVerification) error
	GetByID(ctx context.Context, id int64) (*model.BusinessVerification, error)
	GetLatestByUser(ctx context.Context, userID int64) (*model.BusinessVerification, error)
	GetUsableByUser(ctx context.Context, userID int64) (*model.BusinessVerification, error)
	ListByStatus(ctx context.Context, status model.VerificationStatus, limit, offset int32) ([]model.BusinessVerification, error)
	// Review moves a pending verification to status. ErrNotFound when it is not pending.
	Review(ctx context.Context, id int64, status model.VerificationStatus, reason *string, reviewerID *int64) (*model.BusinessVerification, error)
	// Consume marks an approved verification as spent. ErrNotFound when it is not usable.
	Consume(ctx context.Context, id int64) (*model.BusinessVerification, error)
}

// AcademyStore defines the contract for academy data access
type AcademyStore interface {
	Create(ctx context.Context, academy *model.Academy) error
	GetByID(ctx context.Context, id int64) (*model.Academy, error)
	GetBySlug(ctx context.Context, slug string) (*model.Academy, error)
	GetByJoinCode(ctx context.Context, code string) (*model.Academy, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter model.AcademyFilter) ([]model.Academy, error)
	// ListCandidates pages, by id, through live academies sharing at least one tag.
	ListCandidates(ctx context.Context, region *string, tags []string, afterID int64, limit int32) ([]model.Academy, error)
	ListByMember(ctx context.Context, userID int64) ([]model.Academy, error)
	Update(ctx context.Context, academy *model.Academy) error
	UpdateJoinCode(ctx context.Context, id int64, code string) (*model.Academy, error)
	SoftDelete(ctx context.Context, id int64) error
}

// MemberStore defines the contract for academy membership data access
type MemberStore interface {
	Create(ctx context.Context, member *model.AcademyMember) error
	Get(ctx context.Context, academyID, userID int64) (*model.AcademyMember, error)
	ListByAcademy(ctx context.Context, academyID int64) ([]model.AcademyMember, error)
	ListByUser(ctx context.Context, userID int64) ([]model.AcademyMember, error)
	Activate(ctx context.Context, academyID, userID int64) (*model.AcademyMember, error)
	UpdatePermissions(ctx context.Context, academyID, userID int64, perms []model.Permission) (*model.AcademyMember, error)
	Delete(ctx context.Context, academyID, userID int64) error
}

// TeacherStore defines the contract for teacher data access, scoped by academy
type TeacherStore interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	Get(ctx context.Context, academyID, id int64) (*model.Teacher, error)
	ListByAcademy(ctx context.Context, academyID int64) ([]model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, academyID, id int64) error
}

// ClassStore defines the contract for class data access, scoped by academy
type ClassStore interface {
	Create(ctx context.Context, class *model.Class) error
	Get(ctx context.Context, academyID, id int64) (*model.Class, error)
	ListByAcademy(ctx context.Context, academyID int64) ([]model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, academyID, id int64) error
}

// SeminarStore defines the contract for seminar data access
type SeminarStore interface {
	Create(ctx context.Context, seminar *model.Seminar) error
	GetByID(ctx context.Context, id int64) (*model.Seminar, error) // includes SeatsTaken
	// Lock reads the seminar row FOR UPDATE. Only meaningful inside a transaction.
	Lock(ctx context.Context, id int64) (*model.Seminar, error)
	ListByAcademy(ctx context.Context, academyID int64) ([]model.Seminar, error)
	ListUpcoming(ctx context.Context, region *string, limit, offset int32) ([]model.Seminar, error)
	Update(ctx context.Context, seminar *model.Seminar) error
	// SetStatus moves the seminar from one status to another. ErrNotFound when
	// the row is no longer in from.
	SetStatus(ctx context.Context, academyID, id int64, from, to model.SeminarStatus) (*model.Seminar, error)
	SeatsTaken(ctx context.Context, id int64) (int32, error)
}

// RegistrationStore defines the contract for seminar registration data access
type RegistrationStore interface {
	Get(ctx context.Context, seminarID, userID int64) (*model.SeminarRegistration, error)
	Create(ctx context.Context, reg *model.SeminarRegistration) error
	Reactivate(ctx context.Context, id int64, childID *int64, attendees int32) (*model.SeminarRegistration, error)
	Cancel(ctx context.Context, seminarID, userID int64) (*model.SeminarRegistration, error)
	ListBySeminar(ctx context.Context, seminarID int64) ([]model.SeminarRegistration, error)
	ListByUser(ctx context.Context, userID int64) ([]model.SeminarRegistration, error)
}

// ConsultationStore defines the contract for consultation request data access
type ConsultationStore interface {
	Create(ctx context.Context, c *model.Consultation) error
	GetByID(ctx context.Context, id int64) (*model.Consultation, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]model.Consultation, error)
	ListByAcademy(ctx context.Context, academyID int64, status *model.ConsultationStatus, limit, offset int32) ([]model.Consultation, error)
	// UpdateStatus is a compare-and-set on status. ErrNotFound when the row is
	// no longer in from.
	UpdateStatus(ctx context.Context, id int64, from, to model.ConsultationStatus, note *string) (*model.Consultation, error)
}

// ChatStore defines the contract for chat rooms and messages
type ChatStore interface {
	GetOrCreateRoom(ctx context.Context, id, academyID, userID int64) (*model.ChatRoom, error)
	GetRoom(ctx context.Context, id int64) (*model.ChatRoom, error)
	ListRoomsForViewer(ctx context.Context, viewerID int64) ([]model.ChatRoom, error)
	CreateMessage(ctx context.Context, msg *model.ChatMessage) error
	TouchRoom(ctx context.Context, roomID int64, at time.Time) error
	ListMessages(ctx context.Context, roomID int64, before *int64, limit int32) ([]model.ChatMessage, error)
	LatestMessageID(ctx context.Context, roomID int64) (int64, error)
	MarkReadByUser(ctx context.Context, roomID, messageID int64) error
	MarkReadByAcademy(ctx context.Context, roomID, messageID int64) error
}

// BookmarkStore defines the contract for academy bookmarks
type BookmarkStore interface {
	Add(ctx context.Context, userID, academyID int64) error // idempotent
	Remove(ctx context.Context, userID, academyID int64) error
	ListAcademies(ctx context.Context, userID int64) ([]model.Academy, error)
}

// ChildStore defines the contract for a parent's children, scoped by parent
type ChildStore interface {
	Create(ctx context.Context, child *model.Child) error
	Get(ctx context.Context, parentID, id int64) (*model.Child, error)
	ListByParent(ctx context.Context, parentID int64) ([]model.Child, error)
	Update(ctx context.Context, child *model.Child) error
	Delete(ctx context.Context, parentID, id int64) error
}

// PostStore defines the contract for academy feed posts
type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, academyID, id int64) error
	ListByAcademy(ctx context.Context, academyID int64, before *int64, limit int32) ([]model.Post, error)
	ListFeed(ctx context.Context, region *string, before *int64, limit int32) ([]model.Post, error)
}

// PlatformSettingStore defines the contract for platform flags
type PlatformSettingStore interface {
	List(ctx context.Context) ([]model.PlatformSetting, error)
	Get(ctx context.Context, key string) (*model.PlatformSetting, error)
	Upsert(ctx context.Context, setting *model.PlatformSetting) error
}
