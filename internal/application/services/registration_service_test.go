package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-service/internal/application/command"
	"lead-service/internal/application/common"
	"lead-service/internal/application/validation"
	"lead-service/internal/domain"
	"lead-service/internal/domain/entities"
	"lead-service/internal/infrastructure/crm"
)

type registrationFixture struct {
	service   *RegistrationService
	courses   *fakeCourseRepo
	repo      *fakeRegistrationRepo
	crm       *fakeCRM
	media     *fakeMedia
	tokens    *fakeTokens
	notifier  *fakeNotifier
	publisher *fakePublisher
}

func newRegistrationFixture(requireVerification bool) *registrationFixture {
	f := &registrationFixture{
		courses:   &fakeCourseRepo{courses: map[uint]*entities.Course{3: {Id: 3, Title: "Go backend", BitrixCategoryId: 4}}},
		repo:      &fakeRegistrationRepo{},
		crm:       &fakeCRM{result: crm.Result{Success: true, Data: crm.Data{ContactID: 7, DealID: 9}}},
		media:     &fakeMedia{},
		tokens:    &fakeTokens{},
		notifier:  &fakeNotifier{},
		publisher: &fakePublisher{},
	}
	f.service = NewRegistrationService(RegistrationServiceDeps{
		CourseRepo:               f.courses,
		RegistrationRepo:         f.repo,
		CRM:                      f.crm,
		Media:                    f.media,
		Tokens:                   f.tokens,
		Notifier:                 f.notifier,
		Publisher:                f.publisher,
		Validator:                validation.New(),
		RequirePhoneVerification: requireVerification,
	}).(*RegistrationService)
	return f
}

func validRegisterCommand() *command.RegisterCourseCommand {
	return &command.RegisterCourseCommand{
		Course:           "3",
		LastName:         "Karimov",
		FirstName:        "Aziz",
		BirthDate:        "2001-05-14",
		PassportSeries:   "AB",
		PassportNumber:   "1234567",
		Pinfl:            "12345678901234",
		Phone:            "998901234567",
		Email:            "aziz@example.com",
		TelegramUsername: "@aziz",
	}
}

func TestRegisterSuccess(t *testing.T) {
	f := newRegistrationFixture(false)

	result, err := f.service.Register(context.Background(), validRegisterCommand())
	require.NoError(t, err)

	assert.True(t, result.CRM.Success)
	assert.Equal(t, uint(3), result.Registration.Course)
	assert.Equal(t, "Go backend", result.Registration.CourseTitle)
	assert.Equal(t, "2001-05-14", result.Registration.BirthDate)
	assert.Nil(t, result.Registration.PassportImage)
	require.Len(t, f.repo.saved, 1)
	assert.Equal(t, 1, f.crm.calls)
	assert.Equal(t, 0, f.notifier.calls)

	require.Equal(t, []string{common.SubjectRegistrationCreated}, f.publisher.subjects)
	event := f.publisher.events[0].(common.LeadEvent)
	assert.True(t, event.CRMSynced)
	assert.Equal(t, int64(9), event.DealId)
}

func TestRegisterUnknownCourse(t *testing.T) {
	f := newRegistrationFixture(false)
	cmd := validRegisterCommand()
	cmd.Course = "999"

	_, err := f.service.Register(context.Background(), cmd)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, domain.ValidationErrors{{Field: "course", Message: "Course with the given id does not exist"}}, verrs)
	assert.Empty(t, f.repo.saved)
	assert.Equal(t, 0, f.crm.calls)
}

func TestRegisterCollectsAllFieldErrors(t *testing.T) {
	f := newRegistrationFixture(false)
	cmd := validRegisterCommand()
	cmd.Course = "abc"
	cmd.Phone = "12345"
	cmd.Pinfl = "1"
	cmd.PassportImage = &command.FileUpload{Filename: "scan.pdf", Content: strings.NewReader("x")}

	_, err := f.service.Register(context.Background(), cmd)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	for _, field := range []string{"course", "phone", "pinfl", "passport_image"} {
		assert.True(t, verrs.Has(field), field)
	}
	assert.Empty(t, f.repo.saved)
	assert.Empty(t, f.media.saved)
}

func TestRegisterCourseLookupFailureIsInternal(t *testing.T) {
	f := newRegistrationFixture(false)
	dbErr := errors.New("database is down")
	f.courses.err = dbErr

	_, err := f.service.Register(context.Background(), validRegisterCommand())

	assert.ErrorIs(t, err, dbErr)
	var verrs domain.ValidationErrors
	assert.False(t, errors.As(err, &verrs))
}

func TestRegisterStoresPassportImage(t *testing.T) {
	f := newRegistrationFixture(false)
	cmd := validRegisterCommand()
	cmd.PassportImage = &command.FileUpload{Filename: "scan.PNG", Content: strings.NewReader("png-bytes")}

	result, err := f.service.Register(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "png-bytes", f.media.saved["passport_scans/scan.PNG"])
	require.NotNil(t, result.Registration.PassportImage)
	assert.Equal(t, "/media/passport_scans/scan.PNG", *result.Registration.PassportImage)
	assert.Equal(t, "passport_scans/scan.PNG", f.repo.saved[0].PassportImage)
}

func TestRegisterRemovesPassportImageWhenInsertFails(t *testing.T) {
	f := newRegistrationFixture(false)
	f.repo.err = errors.New("insert failed")
	cmd := validRegisterCommand()
	cmd.PassportImage = &command.FileUpload{Filename: "scan.jpg", Content: strings.NewReader("jpg-bytes")}

	_, err := f.service.Register(context.Background(), cmd)

	assert.ErrorIs(t, err, f.repo.err)
	assert.Equal(t, []string{"passport_scans/scan.jpg"}, f.media.deleted)
	assert.Empty(t, f.media.saved)
	assert.Equal(t, 0, f.crm.calls)
}

func TestRegisterNonNumericCourseIsFieldError(t *testing.T) {
	f := newRegistrationFixture(false)
	cmd := validRegisterCommand()
	cmd.Course = "abc"
	cmd.LastName = ""

	_, err := f.service.Register(context.Background(), cmd)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("course"))
	assert.True(t, verrs.Has("last_name"))
}

func TestRegisterKeepsRowWhenCRMFails(t *testing.T) {
	f := newRegistrationFixture(false)
	f.crm.result = crm.Result{
		Data:   crm.Data{ContactID: 7, PartialSuccess: true},
		Errors: []domain.FieldError{{Field: crm.ErrorField, Message: "category not found", Code: crm.CodeAPIError}},
	}

	result, err := f.service.Register(context.Background(), validRegisterCommand())
	require.NoError(t, err)

	assert.False(t, result.CRM.Success)
	assert.True(t, result.CRM.Data.PartialSuccess)
	assert.Len(t, f.repo.saved, 1)
	// notifier failure does not change the outcome
	assert.Equal(t, 1, f.notifier.calls)
	assert.Equal(t, f.crm.result.Errors, f.notifier.notified)
	assert.False(t, f.publisher.events[0].(common.LeadEvent).CRMSynced)
}

func TestRegisterCRMIgnoresClientCancellation(t *testing.T) {
	f := newRegistrationFixture(false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.crm.result = crm.Result{Success: true}
	f.service.crm = cancelingCRM{cancel: cancel, inner: f.crm}

	_, err := f.service.Register(ctx, validRegisterCommand())
	require.NoError(t, err)
	assert.NoError(t, f.crm.ctxErr)
}

type cancelingCRM struct {
	cancel context.CancelFunc
	inner  *fakeCRM
}

func (c cancelingCRM) ProcessRegistration(ctx context.Context, r *entities.Registration) crm.Result {
	c.cancel()
	return c.inner.ProcessRegistration(ctx, r)
}

func TestRegisterRequiresVerificationToken(t *testing.T) {
	f := newRegistrationFixture(true)

	_, err := f.service.Register(context.Background(), validRegisterCommand())
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("verification_token"))

	token, _, err := f.tokens.Issue("998901234567")
	require.NoError(t, err)
	cmd := validRegisterCommand()
	cmd.VerificationToken = token

	_, err = f.service.Register(context.Background(), cmd)
	assert.NoError(t, err)

	other := validRegisterCommand()
	other.Phone = "998907654321"
	other.VerificationToken = token
	_, err = f.service.Register(context.Background(), other)
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("verification_token"))
}
