package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-service/internal/application/command"
	"lead-service/internal/application/common"
	"lead-service/internal/application/validation"
	"lead-service/internal/domain"
)

func TestCreateContactRequest(t *testing.T) {
	repo, publisher := &fakeContactRepo{}, &fakePublisher{}
	svc := NewContactService(repo, publisher, validation.New())

	result, err := svc.CreateContactRequest(context.Background(), &command.CreateContactRequestCommand{
		Name:    "Aziz",
		Phone:   "998901234567",
		Email:   "aziz@example.com",
		Message: "Please call me back",
	})
	require.NoError(t, err)

	assert.Equal(t, "Aziz", result.Result.Name)
	assert.Len(t, repo.saved, 1)
	assert.Equal(t, []string{common.SubjectContactCreated}, publisher.subjects)
}

func TestCreateContactRequestValidation(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakePublisher{}, validation.New())

	_, err := svc.CreateContactRequest(context.Background(), &command.CreateContactRequestCommand{Email: "nope"})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("name"))
	assert.True(t, verrs.Has("phone"))
	assert.True(t, verrs.Has("email"))
	assert.Empty(t, repo.saved)
}
