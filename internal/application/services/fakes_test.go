package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"lead-service/internal/domain"
	"lead-service/internal/domain/entities"
	"lead-service/internal/infrastructure/crm"
)

type fakeCourseRepo struct {
	courses map[uint]*entities.Course
	err     error
}

func (f *fakeCourseRepo) FindById(_ context.Context, id uint) (*entities.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses[id], nil
}

type fakeRegistrationRepo struct {
	mu    sync.Mutex
	saved []*entities.Registration
	err   error
}

func (f *fakeRegistrationRepo) Create(_ context.Context, r *entities.ValidatedRegistration) (*entities.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	copied := *r.GetRegistration()
	f.saved = append(f.saved, &copied)
	return &copied, nil
}

func (f *fakeRegistrationRepo) FindById(_ context.Context, id uuid.UUID) (*entities.Registration, error) {
	for _, r := range f.saved {
		if r.Id == id {
			return r, nil
		}
	}
	return nil, nil
}

type fakeContactRepo struct {
	saved []*entities.ContactRequest
}

func (f *fakeContactRepo) Create(_ context.Context, r *entities.ContactRequest) (*entities.ContactRequest, error) {
	f.saved = append(f.saved, r)
	return r, nil
}

type fakeCRM struct {
	result crm.Result
	calls  int
	ctxErr error
}

func (f *fakeCRM) ProcessRegistration(ctx context.Context, _ *entities.Registration) crm.Result {
	f.calls++
	f.ctxErr = ctx.Err()
	return f.result
}

type fakeMedia struct {
	saved   map[string]string
	deleted []string
}

func (f *fakeMedia) Save(_ context.Context, dir, filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	if f.saved == nil {
		f.saved = make(map[string]string)
	}
	name := dir + "/" + filename
	f.saved[name] = string(data)
	return name, nil
}

func (f *fakeMedia) URL(name string) string {
	if name == "" {
		return ""
	}
	return "/media/" + name
}

func (f *fakeMedia) Delete(_ context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	delete(f.saved, name)
	return nil
}

type fakeTokens struct {
	valid map[string]string
}

func (f *fakeTokens) Issue(phone string) (string, time.Time, error) {
	token := "token-" + phone
	if f.valid == nil {
		f.valid = make(map[string]string)
	}
	f.valid[token] = phone
	return token, time.Now().Add(30 * time.Minute), nil
}

func (f *fakeTokens) Validate(token, phone string) error {
	if f.valid[token] != phone {
		return domain.ErrInvalidVerificationToken
	}
	return nil
}

type fakeNotifier struct {
	notified []domain.FieldError
	calls    int
}

func (f *fakeNotifier) NotifyCRMFailure(_ context.Context, _ *entities.Registration, errs []domain.FieldError) error {
	f.calls++
	f.notified = errs
	return errors.New("smtp down")
}

type fakePublisher struct {
	subjects []string
	events   []interface{}
}

func (f *fakePublisher) Publish(_ context.Context, subject string, event interface{}) error {
	f.subjects = append(f.subjects, subject)
	f.events = append(f.events, event)
	return nil
}

type fakeOTP struct {
	codes       map[string]string
	generateErr error
	invalidated []string
}

func (f *fakeOTP) Generate(_ context.Context, phone string) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	if f.codes == nil {
		f.codes = make(map[string]string)
	}
	f.codes[phone] = "123456"
	return "123456", nil
}

func (f *fakeOTP) Verify(_ context.Context, phone, code string) (bool, error) {
	if f.codes[phone] == code && code != "" {
		delete(f.codes, phone)
		return true, nil
	}
	return false, nil
}

func (f *fakeOTP) Invalidate(_ context.Context, phone string) error {
	f.invalidated = append(f.invalidated, phone)
	delete(f.codes, phone)
	return nil
}

func (f *fakeOTP) TTL() time.Duration {
	return 4 * time.Minute
}

type fakeSMS struct {
	sent []string
	err  error
}

func (f *fakeSMS) Send(_ context.Context, _ string, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

type fakeLimiter struct {
	allow bool
}

func (f fakeLimiter) Allow(string) bool {
	return f.allow
}

type fakeVacancyRepo struct {
	vacancies map[uint]*entities.Vacancy
}

func (f *fakeVacancyRepo) FindById(_ context.Context, id uint) (*entities.Vacancy, error) {
	return f.vacancies[id], nil
}

type fakeJobApplicationRepo struct {
	saved []*entities.JobApplication
	err   error
}

func (f *fakeJobApplicationRepo) Create(_ context.Context, a *entities.JobApplication) (*entities.JobApplication, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, a)
	return a, nil
}

type fakeCompanyRepo struct {
	companies map[uint]*entities.Company
}

func (f *fakeCompanyRepo) FindById(_ context.Context, id uint) (*entities.Company, error) {
	return f.companies[id], nil
}

type fakeCorporateRequestRepo struct {
	saved []*entities.CorporateRequest
	err   error
}

func (f *fakeCorporateRequestRepo) Create(_ context.Context, r *entities.CorporateRequest) (*entities.CorporateRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, r)
	return r, nil
}
