package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/middleware"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/realtime"
	"academyhub.app/server/internal/service"
)

type mockAuthService struct {
	getAuthorizationURLFn func(state string) (string, error)
	handleCallbackFn      func(ctx context.Context, code string) (*model.User, *model.Session, error)
	validateSessionFn     func(ctx context.Context, sessionID int64) (*model.User, error)
	logoutFn              func(ctx context.Context, sessionID int64) (*string, error)
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	if m.getAuthorizationURLFn != nil {
		return m.getAuthorizationURLFn(state)
	}
	return "", nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code)
	}
	return nil, nil, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) (*string, error) {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil, nil
}

type mockVerificationService struct {
	submitFn      func(ctx context.Context, userID int64, input service.VerificationInput) (*model.BusinessVerification, error)
	getLatestFn   func(ctx context.Context, userID int64) (*model.BusinessVerification, error)
	listFn        func(ctx context.Context, status model.VerificationStatus, limit, offset int32) ([]model.BusinessVerification, error)
	approveFn     func(ctx context.Context, reviewerID *int64, id int64) (*model.BusinessVerification, error)
	rejectFn      func(ctx context.Context, reviewerID *int64, id int64, reason string) (*model.BusinessVerification, error)
	resendEmailFn func(ctx context.Context, id int64) error
}

func (m *mockVerificationService) Submit(ctx context.Context, userID int64, input service.VerificationInput) (*model.BusinessVerification, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, userID, input)
	}
	return nil, nil
}

func (m *mockVerificationService) GetLatest(ctx context.Context, userID int64) (*model.BusinessVerification, error) {
	if m.getLatestFn != nil {
		return m.getLatestFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockVerificationService) List(ctx context.Context, status model.VerificationStatus, limit, offset int32) ([]model.BusinessVerification, error) {
	if m.listFn != nil {
		return m.listFn(ctx, status, limit, offset)
	}
	return nil, nil
}

func (m *mockVerificationService) Approve(ctx context.Context, reviewerID *int64, id int64) (*model.BusinessVerification, error) {
	if m.approveFn != nil {
		return m.approveFn(ctx, reviewerID, id)
	}
	return nil, nil
}

func (m *mockVerificationService) Reject(ctx context.Context, reviewerID *int64, id int64, reason string) (*model.BusinessVerification, error) {
	if m.rejectFn != nil {
		return m.rejectFn(ctx, reviewerID, id, reason)
	}
	return nil, nil
}

func (m *mockVerificationService) ResendEmail(ctx context.Context, id int64) error {
	if m.resendEmailFn != nil {
		return m.resendEmailFn(ctx, id)
	}
	return nil
}

type mockAcademyService struct {
	createFn    func(ctx context.Context, userID int64, input service.AcademyInput) (*model.Academy, error)
	getFn       func(ctx context.Context, id int64) (*service.AcademyDetail, error)
	getBySlugFn func(ctx context.Context, slug string) (*service.AcademyDetail, error)
	listFn      func(ctx context.Context, filter model.AcademyFilter) ([]model.Academy, error)
	updateFn    func(ctx context.Context, userID, academyID int64, update service.AcademyUpdate) (*model.Academy, error)
	deleteFn    func(ctx context.Context, userID, academyID int64) error
}

func (m *mockAcademyService) Create(ctx context.Context, userID int64, input service.AcademyInput) (*model.Academy, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, input)
	}
	return nil, nil
}

func (m *mockAcademyService) Get(ctx context.Context, id int64) (*service.AcademyDetail, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAcademyService) GetBySlug(ctx context.Context, slug string) (*service.AcademyDetail, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockAcademyService) List(ctx context.Context, filter model.AcademyFilter) ([]model.Academy, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockAcademyService) Update(ctx context.Context, userID, academyID int64, update service.AcademyUpdate) (*model.Academy, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, academyID, update)
	}
	return nil, nil
}

func (m *mockAcademyService) Delete(ctx context.Context, userID, academyID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, academyID)
	}
	return nil
}

type mockSeminarService struct {
	service.SeminarService // unimplemented methods panic

	registerFn           func(ctx context.Context, userID, seminarID int64, input service.RegistrationInput) (*model.SeminarRegistration, error)
	cancelRegistrationFn func(ctx context.Context, userID, seminarID int64) (*model.SeminarRegistration, error)
	listUpcomingFn       func(ctx context.Context, region *string, limit, offset int32) ([]model.Seminar, error)
}

func (m *mockSeminarService) Register(ctx context.Context, userID, seminarID int64, input service.RegistrationInput) (*model.SeminarRegistration, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, userID, seminarID, input)
	}
	return nil, nil
}

func (m *mockSeminarService) CancelRegistration(ctx context.Context, userID, seminarID int64) (*model.SeminarRegistration, error) {
	if m.cancelRegistrationFn != nil {
		return m.cancelRegistrationFn(ctx, userID, seminarID)
	}
	return nil, nil
}

func (m *mockSeminarService) ListUpcoming(ctx context.Context, region *string, limit, offset int32) ([]model.Seminar, error) {
	if m.listUpcomingFn != nil {
		return m.listUpcomingFn(ctx, region, limit, offset)
	}
	return nil, nil
}

type mockChatService struct {
	service.ChatService // unimplemented methods panic

	sendFn      func(ctx context.Context, senderID, roomID int64, body string) (*model.ChatMessage, error)
	subscribeFn func(ctx context.Context, viewerID, roomID int64) (realtime.Subscription, error)
}

func (m *mockChatService) Send(ctx context.Context, senderID, roomID int64, body string) (*model.ChatMessage, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, senderID, roomID, body)
	}
	return nil, nil
}

func (m *mockChatService) Subscribe(ctx context.Context, viewerID, roomID int64) (realtime.Subscription, error) {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, viewerID, roomID)
	}
	return nil, nil
}

type mockSubscription struct {
	events chan realtime.Event
	closed bool
}

func newMockSubscription() *mockSubscription {
	return &mockSubscription{events: make(chan realtime.Event, 4)}
}

func (m *mockSubscription) Events() <-chan realtime.Event {
	return m.events
}

func (m *mockSubscription) Close() error {
	m.closed = true
	return nil
}

type mockUploadService struct {
	uploadFn  func(ctx context.Context, userID int64, data []byte) (model.StoredImage, error)
	resolveFn func(key string) (string, error)
	maxSize   int64
}

func (m *mockUploadService) Upload(ctx context.Context, userID int64, data []byte) (model.StoredImage, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, userID, data)
	}
	return model.StoredImage{}, nil
}

func (m *mockUploadService) Resolve(key string) (string, error) {
	if m.resolveFn != nil {
		return m.resolveFn(key)
	}
	return "", nil
}

func (m *mockUploadService) MaxSize() int64 {
	return m.maxSize
}

type mockPlatformService struct {
	listSettingsFn func(ctx context.Context) ([]model.PlatformSetting, error)
	getSettingFn   func(ctx context.Context, key string) (*model.PlatformSetting, error)
	putSettingFn   func(ctx context.Context, claims *service.PlatformClaims, key string, value json.RawMessage) (*model.PlatformSetting, error)
	verifyTokenFn  func(token string) (*service.PlatformClaims, error)
}

func (m *mockPlatformService) ListSettings(ctx context.Context) ([]model.PlatformSetting, error) {
	if m.listSettingsFn != nil {
		return m.listSettingsFn(ctx)
	}
	return nil, nil
}

func (m *mockPlatformService) GetSetting(ctx context.Context, key string) (*model.PlatformSetting, error) {
	if m.getSettingFn != nil {
		return m.getSettingFn(ctx, key)
	}
	return nil, nil
}

func (m *mockPlatformService) PutSetting(ctx context.Context, claims *service.PlatformClaims, key string, value json.RawMessage) (*model.PlatformSetting, error) {
	if m.putSettingFn != nil {
		return m.putSettingFn(ctx, claims, key, value)
	}
	return nil, nil
}

func (m *mockPlatformService) IssueToken(string, string, time.Duration) (string, error) {
	return "", nil
}

func (m *mockPlatformService) VerifyToken(token string) (*service.PlatformClaims, error) {
	if m.verifyTokenFn != nil {
		return m.verifyTokenFn(token)
	}
	return nil, nil
}

// signedIn returns an engine whose requests carry user through RequireSession.
func signedIn(user *model.User) *gin.Engine {
	router := gin.New()
	auth := &mockAuthService{
		validateSessionFn: func(context.Context, int64) (*model.User, error) {
			return user, nil
		},
	}
	router.Use(middleware.RequireSession(auth))
	return router
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionIDHeader, "1")
	return req
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}
