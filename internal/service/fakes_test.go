package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
)

// fakeAPI is an in-memory stand-in for the Cosyll API client.
type fakeAPI struct {
	listing     *models.SyllabusListing
	syllabus    *models.Syllabus
	collections []models.Collection
	collection  *models.Collection
	users       []models.User
	user        *models.User
	login       *models.LoginResponse
	err         error

	calls    []string
	viewers  []*models.Viewer
	payloads []interface{}
}

func (f *fakeAPI) record(call string, viewer *models.Viewer, payload interface{}) error {
	f.calls = append(f.calls, call)
	f.viewers = append(f.viewers, viewer)
	if payload != nil {
		f.payloads = append(f.payloads, payload)
	}
	return f.err
}

func (f *fakeAPI) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) ListSyllabi(ctx context.Context, viewer *models.Viewer) (*models.SyllabusListing, error) {
	if err := f.record("ListSyllabi", viewer, nil); err != nil {
		return nil, err
	}
	return f.listing, nil
}

func (f *fakeAPI) GetSyllabus(ctx context.Context, viewer *models.Viewer, id string) (*models.Syllabus, error) {
	if err := f.record("GetSyllabus", viewer, nil); err != nil {
		return nil, err
	}
	if f.syllabus == nil {
		return nil, appErrors.New(appErrors.ErrUpstream.Code, 404, "Not found.")
	}
	return f.syllabus, nil
}

func (f *fakeAPI) CreateSyllabus(ctx context.Context, viewer *models.Viewer, req dto.CreateSyllabusRequest) (*models.Syllabus, error) {
	if err := f.record("CreateSyllabus", viewer, req); err != nil {
		return nil, err
	}
	return &models.Syllabus{ID: "new", Title: req.Title, Status: req.Status, CreatedBy: models.UserRef{ID: viewer.UserID}}, nil
}

func (f *fakeAPI) UpdateSyllabus(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateSyllabusRequest) (*models.Syllabus, error) {
	if err := f.record("UpdateSyllabus", viewer, req); err != nil {
		return nil, err
	}
	s := models.Syllabus{ID: id, CreatedBy: models.UserRef{ID: viewer.UserID}}
	if req.Title != nil {
		s.Title = *req.Title
	}
	return &s, nil
}

func (f *fakeAPI) DeleteSyllabus(ctx context.Context, viewer *models.Viewer, id string) error {
	return f.record("DeleteSyllabus", viewer, nil)
}

func (f *fakeAPI) AddInstitution(ctx context.Context, viewer *models.Viewer, syllabusID string, req dto.InstitutionRequest) (*models.Institution, error) {
	if err := f.record("AddInstitution", viewer, req); err != nil {
		return nil, err
	}
	return &models.Institution{ID: "i1", Name: req.Name, Country: req.Country, Year: req.Year}, nil
}

func (f *fakeAPI) UpdateInstitution(ctx context.Context, viewer *models.Viewer, syllabusID, id string, req dto.UpdateInstitutionRequest) (*models.Institution, error) {
	if err := f.record("UpdateInstitution", viewer, req); err != nil {
		return nil, err
	}
	return &models.Institution{ID: id, Name: "Updated"}, nil
}

func (f *fakeAPI) DeleteInstitution(ctx context.Context, viewer *models.Viewer, syllabusID, id string) error {
	return f.record("DeleteInstitution", viewer, nil)
}

func (f *fakeAPI) AddAttachment(ctx context.Context, viewer *models.Viewer, syllabusID string, req dto.AttachmentRequest) (*models.Attachment, error) {
	if err := f.record("AddAttachment", viewer, req); err != nil {
		return nil, err
	}
	return &models.Attachment{ID: "a1", Name: req.Name, URL: req.URL, File: req.File}, nil
}

func (f *fakeAPI) UpdateAttachment(ctx context.Context, viewer *models.Viewer, syllabusID, id string, req dto.UpdateAttachmentRequest) (*models.Attachment, error) {
	if err := f.record("UpdateAttachment", viewer, req); err != nil {
		return nil, err
	}
	return &models.Attachment{ID: id, Name: "Updated", URL: "https://example.org"}, nil
}

func (f *fakeAPI) DeleteAttachment(ctx context.Context, viewer *models.Viewer, syllabusID, id string) error {
	return f.record("DeleteAttachment", viewer, nil)
}

func (f *fakeAPI) ListCollections(ctx context.Context, viewer *models.Viewer) ([]models.Collection, error) {
	if err := f.record("ListCollections", viewer, nil); err != nil {
		return nil, err
	}
	return f.collections, nil
}

func (f *fakeAPI) GetCollection(ctx context.Context, viewer *models.Viewer, id string) (*models.Collection, error) {
	if err := f.record("GetCollection", viewer, nil); err != nil {
		return nil, err
	}
	return f.collection, nil
}

func (f *fakeAPI) CreateCollection(ctx context.Context, viewer *models.Viewer, req dto.CreateCollectionRequest) (*models.Collection, error) {
	if err := f.record("CreateCollection", viewer, req); err != nil {
		return nil, err
	}
	return &models.Collection{ID: "c-new", Name: req.Name, Status: req.Status, CreatedBy: models.UserRef{ID: viewer.UserID}}, nil
}

func (f *fakeAPI) UpdateCollection(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateCollectionRequest) (*models.Collection, error) {
	if err := f.record("UpdateCollection", viewer, req); err != nil {
		return nil, err
	}
	return &models.Collection{ID: id, CreatedBy: models.UserRef{ID: viewer.UserID}}, nil
}

func (f *fakeAPI) DeleteCollection(ctx context.Context, viewer *models.Viewer, id string) error {
	return f.record("DeleteCollection", viewer, nil)
}

func (f *fakeAPI) AddToCollection(ctx context.Context, viewer *models.Viewer, collectionID, syllabusID string) error {
	return f.record("AddToCollection", viewer, nil)
}

func (f *fakeAPI) RemoveFromCollection(ctx context.Context, viewer *models.Viewer, collectionID, syllabusID string) error {
	return f.record("RemoveFromCollection", viewer, nil)
}

func (f *fakeAPI) ListUsers(ctx context.Context, viewer *models.Viewer) ([]models.User, error) {
	if err := f.record("ListUsers", viewer, nil); err != nil {
		return nil, err
	}
	return f.users, nil
}

func (f *fakeAPI) GetUser(ctx context.Context, viewer *models.Viewer, id string) (*models.User, error) {
	if err := f.record("GetUser", viewer, nil); err != nil {
		return nil, err
	}
	return f.user, nil
}

func (f *fakeAPI) UpdateUser(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateUserRequest) (*models.User, error) {
	if err := f.record("UpdateUser", viewer, req); err != nil {
		return nil, err
	}
	u := models.User{ID: id}
	if req.Name != nil {
		u.Name = *req.Name
	}
	return &u, nil
}

func (f *fakeAPI) DeleteUser(ctx context.Context, viewer *models.Viewer, id string) error {
	return f.record("DeleteUser", viewer, nil)
}

func (f *fakeAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := f.record("Login", nil, req); err != nil {
		return nil, err
	}
	return f.login, nil
}

func (f *fakeAPI) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return f.record("ForgotPassword", nil, req)
}

func (f *fakeAPI) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return f.record("ResetPassword", nil, req)
}

func (f *fakeAPI) ConfirmAccount(ctx context.Context, req models.ConfirmAccountRequest) error {
	return f.record("ConfirmAccount", nil, req)
}

func (f *fakeAPI) ResendConfirmation(ctx context.Context, req models.ForgotPasswordRequest) error {
	return f.record("ResendConfirmation", nil, req)
}

// memoryCache mimics the Redis repository with JSON round trips.
type memoryCache struct {
	items   map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	return nil
}

func (m *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
			m.deleted = append(m.deleted, key)
		}
	}
	return nil
}

func level(l models.AcademicLevel) *models.AcademicLevel { return &l }

// corpus returns 19 English syllabi and one German one at index 7.
func corpus() []models.Syllabus {
	out := make([]models.Syllabus, 0, 19)
	for i := 0; i < 19; i++ {
		out = append(out, models.Syllabus{
			ID:             fmt.Sprintf("s-%02d", i),
			Title:          fmt.Sprintf("Syllabus %d", i),
			Status:         models.VisibilityListed,
			Language:       "en",
			AcademicLevel:  level(models.LevelBachelor),
			AcademicFields: []int{611},
			Tags:           []string{"core"},
			Institutions:   []models.Institution{{Name: "Uni", Country: 826, Year: 2021}},
			CreatedBy:      models.UserRef{ID: "owner", Name: "Owner"},
		})
	}
	out[7].Language = "de"
	return out
}

var (
	owner    = &models.Viewer{UserID: "owner", Token: "tok"}
	stranger = &models.Viewer{UserID: "someone", Token: "tok2"}
)
