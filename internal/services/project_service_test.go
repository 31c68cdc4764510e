package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"designstudio/internal/models"
	"designstudio/internal/repositories"
	"designstudio/internal/services"
)

func newProjectService() *services.ProjectService {
	return services.NewProjectService(repositories.NewMemStore(), nil)
}

func createProject(t *testing.T, service *services.ProjectService) string {
	t.Helper()
	project, err := service.Create(context.Background(), models.ProjectCreateIn{
		Title:       "Brand refresh",
		ClientEmail: "client@example.com",
	})
	require.NoError(t, err)
	id, ok := project["id"].(string)
	require.True(t, ok)
	return id
}

func TestProjectService_CreateInitializesWorkflow(t *testing.T) {
	service := newProjectService()

	project, err := service.Create(context.Background(), models.ProjectCreateIn{
		Title:       "Brand refresh",
		ClientEmail: "client@example.com",
		RequestID:   "req-123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusInProgress, project["status"])
	assert.Equal(t, "req-123", project["request_id"])
	assert.Equal(t, bson.A{}, project["drafts"])
	assert.Equal(t, bson.A{}, project["comments"])
	assert.Equal(t, bson.A{}, project["history"])
	assert.NotContains(t, project, "approved_at")
}

func TestProjectService_CreateRequiresValidEmail(t *testing.T) {
	service := newProjectService()

	_, err := service.Create(context.Background(), models.ProjectCreateIn{
		Title:       "Brand refresh",
		ClientEmail: "nope",
	})
	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestProjectService_ListFilters(t *testing.T) {
	service := newProjectService()
	ctx := context.Background()

	for i, email := range []string{"a@example.com", "a@example.com", "b@example.com"} {
		_, err := service.Create(ctx, models.ProjectCreateIn{
			Title:       fmt.Sprintf("Project %d", i),
			ClientEmail: email,
		})
		require.NoError(t, err)
	}

	projects, err := service.List(ctx, models.ProjectFilter{ClientEmail: "a@example.com"}, 50)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	projects, err = service.List(ctx, models.ProjectFilter{Status: models.ProjectStatusApproved}, 50)
	require.NoError(t, err)
	assert.Empty(t, projects)

	projects, err = service.List(ctx, models.ProjectFilter{}, 50)
	require.NoError(t, err)
	assert.Len(t, projects, 3)
}

func TestProjectService_UploadDraftsAppendInOrder(t *testing.T) {
	service := newProjectService()
	ctx := context.Background()
	id := createProject(t, service)

	const n = 5
	var project bson.M
	var err error
	for i := 0; i < n; i++ {
		project, err = service.UploadDraft(ctx, id, fmt.Sprintf("https://cdn/draft-%d.png", i))
		require.NoError(t, err)
	}

	drafts, ok := project["drafts"].(bson.A)
	require.True(t, ok)
	require.Len(t, drafts, n)
	for i := 0; i < n; i++ {
		draft := drafts[i].(bson.M)
		assert.Equal(t, fmt.Sprintf("https://cdn/draft-%d.png", i), draft["url"])
		assert.IsType(t, "", draft["uploaded_at"])
	}

	// A draft upload never advances the status.
	assert.Equal(t, models.ProjectStatusInProgress, project["status"])
	assert.NotEmpty(t, project["updated_at"])
}

func TestProjectService_UploadDraftUnknownProject(t *testing.T) {
	service := newProjectService()

	_, err := service.UploadDraft(context.Background(), "656f00000000000000000000", "https://cdn/d.png")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = service.UploadDraft(context.Background(), "garbage", "https://cdn/d.png")
	assert.ErrorIs(t, err, services.ErrInvalidID)
}

func TestProjectService_AddComment(t *testing.T) {
	service := newProjectService()
	ctx := context.Background()
	id := createProject(t, service)

	x, y := 120.5, 44.0
	project, err := service.AddComment(ctx, id, models.CommentIn{
		Author:  "dana",
		Message: "Make the mark heavier",
		X:       &x,
		Y:       &y,
	})
	require.NoError(t, err)

	comments, ok := project["comments"].(bson.A)
	require.True(t, ok)
	require.Len(t, comments, 1)
	comment := comments[0].(bson.M)
	assert.Equal(t, "dana", comment["author"])
	assert.Equal(t, "Make the mark heavier", comment["message"])
	assert.Equal(t, 120.5, comment["x"])
	assert.Equal(t, "open", comment["status"])
	assert.NotEmpty(t, comment["created_at"])
	assert.Equal(t, models.ProjectStatusInProgress, project["status"])
}

func TestProjectService_AddCommentValidation(t *testing.T) {
	service := newProjectService()
	id := createProject(t, service)

	_, err := service.AddComment(context.Background(), id, models.CommentIn{Author: "dana"})
	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestProjectService_Approve(t *testing.T) {
	service := newProjectService()
	ctx := context.Background()
	id := createProject(t, service)

	project, err := service.Approve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusApproved, project["status"])
	assert.NotEmpty(t, project["approved_at"])

	// Approval is unconditional: approving again just restamps approved_at.
	again, err := service.Approve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusApproved, again["status"])

	_, err = service.Approve(ctx, "656f00000000000000000000")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProjectService_ApprovePublishesEvent(t *testing.T) {
	events := new(MockEventPublisher)
	events.On("Publish", "project.approved", mock.Anything).Return(nil).Once()
	service := services.NewProjectService(repositories.NewMemStore(), events)
	id := createProject(t, service)

	_, err := service.Approve(context.Background(), id)
	require.NoError(t, err)
	events.AssertExpectations(t)
}
