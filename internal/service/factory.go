package service

import (
	"academyhub.app/server/core/config"
	"academyhub.app/server/internal/queue"
	"academyhub.app/server/internal/store"
)

// Deps are the collaborators shared by every service. Binaries leave nil the
// ones they never reach: the worker has no identity provider, for instance.
type Deps struct {
	Stores   *store.Stores
	TxRunner TxRunner
	Producer queue.Producer
	Broker   ChatBroker
	Images   store.ImageStore
	Provider IdentityProvider
	Config   config.Config
}

type Services struct {
	deps Deps
}

func NewServices(deps Deps) *Services {
	return &Services{deps: deps}
}

func (s *Services) Auth() AuthService {
	st := s.deps.Stores
	return NewAuthService(s.deps.TxRunner, st.Users(), st.Roles(), st.Sessions(), s.deps.Provider)
}

func (s *Services) Profiles() ProfileService {
	st := s.deps.Stores
	return NewProfileService(st.Users(), st.Roles(), st.Members())
}

func (s *Services) Verifications() VerificationService {
	return NewVerificationService(s.deps.TxRunner, s.deps.Stores.Verifications(), s.deps.Producer)
}

func (s *Services) Academies() AcademyService {
	st := s.deps.Stores
	return NewAcademyService(s.deps.TxRunner, st.Academies(), st.Members(), st.Teachers(), st.Classes(), st.Seminars(), st.Posts())
}

func (s *Services) Members() MemberService {
	return NewMemberService(s.deps.Stores.Academies(), s.deps.Stores.Members())
}

func (s *Services) Classes() ClassService {
	st := s.deps.Stores
	return NewClassService(st.Members(), st.Teachers(), st.Classes())
}

func (s *Services) Seminars() SeminarService {
	st := s.deps.Stores
	return NewSeminarService(s.deps.TxRunner, st.Members(), st.Seminars(), st.Registrations(), st.Children())
}

func (s *Services) Consultations() ConsultationService {
	st := s.deps.Stores
	return NewConsultationService(st.Academies(), st.Members(), st.Children(), st.Consultations())
}

func (s *Services) Chat() ChatService {
	st := s.deps.Stores
	return NewChatService(s.deps.TxRunner, st.Academies(), st.Members(), st.Chat(), s.deps.Broker)
}

func (s *Services) Bookmarks() BookmarkService {
	return NewBookmarkService(s.deps.Stores.Academies(), s.deps.Stores.Bookmarks())
}

func (s *Services) Children() ChildService {
	return NewChildService(s.deps.Stores.Children())
}

func (s *Services) Feed() FeedService {
	return NewFeedService(s.deps.Stores.Members(), s.deps.Stores.Posts())
}

func (s *Services) Recommendations() RecommendationService {
	return NewRecommendationService(s.deps.Stores.Academies(), s.deps.Stores.Children())
}

func (s *Services) Uploads() UploadService {
	return NewUploadService(s.deps.Images, s.deps.Config.Storage.MaxUploadSize)
}

func (s *Services) Platform() PlatformService {
	return NewPlatformService(s.deps.Stores.PlatformSettings(), s.deps.Config.Platform.JWTSecret)
}
