package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/mock"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
	"github.com/konstrukt-app/konstrukt-be/models"
)

func newTestTemplateSvc(t *testing.T, ctrl *gomock.Controller) (TemplateService, *mock.MockTemplateRepository) {
	t.Helper()
	mockTemplates := mock.NewMockTemplateRepository(ctrl)

	svc := NewTemplateService(mockTemplates, logger.Nop())

	return svc, mockTemplates
}

func TestListTemplates_PublicFiltersInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	mockTemplates.EXPECT().
		ListTemplates(ctx, true). // onlyActive
		Return([]models.Template{{ID: "t1", Name: "welcome", TitleRU: "Привет", TitleEN: "Hello"}}, nil)

	templates, err := svc.ListTemplates(ctx, false)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	// nested content is derived before serving
	assert.Equal(t, "Привет", templates[0].Content.Title.RU)
	assert.Equal(t, "Hello", templates[0].Content.Title.EN)
}

func TestListTemplates_AdminSeesInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	mockTemplates.EXPECT().
		ListTemplates(ctx, false).
		Return([]models.Template{{ID: "t1"}, {ID: "t2", IsActive: true}}, nil)

	templates, err := svc.ListTemplates(ctx, true)
	require.NoError(t, err)
	assert.Len(t, templates, 2)
}

func TestCreateTemplate_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	mockTemplates.EXPECT().
		CreateTemplate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, template models.Template) (models.Template, error) {
			assert.Equal(t, "welcome", template.Name)
			assert.True(t, template.IsActive, "new templates are active unless stated otherwise")
			template.ID = "t1"
			return template, nil
		})

	created, err := svc.CreateTemplate(ctx, models.TemplateInput{Name: strPtr("  welcome  ")})
	require.NoError(t, err)
	assert.Equal(t, "t1", created.ID)
	assert.Equal(t, "welcome", created.Name)
}

func TestCreateTemplate_NestedContentFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	mockTemplates.EXPECT().
		CreateTemplate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, template models.Template) (models.Template, error) {
			assert.Equal(t, "Привет", template.TitleRU)
			assert.Equal(t, "Hello", template.TitleEN)
			assert.Equal(t, "Текст", template.BodyRU)
			return template, nil
		})

	_, err := svc.CreateTemplate(ctx, models.TemplateInput{
		Name: strPtr("welcome"),
		Content: &models.TemplateContent{
			Title: models.LocalizedText{RU: "Привет", EN: "Hello"},
			Body:  models.LocalizedText{RU: "Текст"},
		},
	})
	require.NoError(t, err)
}

func TestCreateTemplate_FlatFieldsWinOverContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	mockTemplates.EXPECT().
		CreateTemplate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, template models.Template) (models.Template, error) {
			assert.Equal(t, "Flat", template.TitleRU)
			return template, nil
		})

	_, err := svc.CreateTemplate(ctx, models.TemplateInput{
		Name:    strPtr("welcome"),
		TitleRU: strPtr("Flat"),
		Content: &models.TemplateContent{Title: models.LocalizedText{RU: "Nested"}},
	})
	require.NoError(t, err)
}

func TestCreateTemplate_MissingName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTemplateSvc(t, ctrl)

	_, err := svc.CreateTemplate(context.Background(), models.TemplateInput{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateTemplate_NameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	mockTemplates.EXPECT().
		CreateTemplate(ctx, gomock.Any()).
		Return(models.Template{}, store.ErrTemplateNameTaken)

	_, err := svc.CreateTemplate(ctx, models.TemplateInput{Name: strPtr("welcome")})
	assert.ErrorIs(t, err, store.ErrTemplateNameTaken)
}

func TestUpdateTemplate_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTemplateSvc(t, ctrl)

	_, err := svc.UpdateTemplate(context.Background(), "", models.TemplateInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateTemplate_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTemplateSvc(t, ctrl)

	_, err := svc.UpdateTemplate(context.Background(), "t1", models.TemplateInput{Name: strPtr("   ")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateTemplate_Partial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	input := models.TemplateInput{IsActive: boolPtr(false)}
	mockTemplates.EXPECT().
		UpdateTemplate(ctx, "t1", input).
		Return(models.Template{ID: "t1", Name: "welcome", IsActive: false}, nil)

	updated, err := svc.UpdateTemplate(ctx, "t1", input)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdateTemplate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	mockTemplates.EXPECT().
		UpdateTemplate(ctx, "missing", gomock.Any()).
		Return(models.Template{}, store.ErrTemplateNotFound)

	_, err := svc.UpdateTemplate(ctx, "missing", models.TemplateInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrTemplateNotFound)
}

func TestDeleteTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTemplates := newTestTemplateSvc(t, ctrl)
	ctx := context.Background()

	mockTemplates.EXPECT().DeleteTemplate(ctx, "t1").Return(nil)

	require.NoError(t, svc.DeleteTemplate(ctx, "t1"))
}

func TestDeleteTemplate_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTemplateSvc(t, ctrl)

	assert.ErrorIs(t, svc.DeleteTemplate(context.Background(), ""), ErrInvalidDataProvided)
}
