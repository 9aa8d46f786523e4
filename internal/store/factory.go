package store

import (
	"academyhub.app/server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Roles() RoleStore {
	return newRoleStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Verifications() VerificationStore {
	return newVerificationStore(s.queries)
}

func (s *Stores) Academies() AcademyStore {
	return newAcademyStore(s.queries)
}

func (s *Stores) Members() MemberStore {
	return newMemberStore(s.queries)
}

func (s *Stores) Teachers() TeacherStore {
	return newTeacherStore(s.queries)
}

func (s *Stores) Classes() ClassStore {
	return newClassStore(s.queries)
}

func (s *Stores) Seminars() SeminarStore {
	return newSeminarStore(s.queries)
}

func (s *Stores) Registrations() RegistrationStore {
	return newRegistrationStore(s.queries)
}

func (s *Stores) Consultations() ConsultationStore {
	return newConsultationStore(s.queries)
}

func (s *Stores) Chat() ChatStore {
	return newChatStore(s.queries)
}

func (s *Stores) Bookmarks() BookmarkStore {
	return newBookmarkStore(s.queries)
}

func (s *Stores) Children() ChildStore {
	return newChildStore(s.queries)
}

func (s *Stores) Posts() PostStore {
	return newPostStore(s.queries)
}

func (s *Stores) PlatformSettings() PlatformSettingStore {
	return newPlatformSettingStore(s.queries)
}
