package services

import (
	"context"
	"errors"
	"testing"

	"boystrip/internal/models/db_models"
	"boystrip/internal/models/request_models"
	"boystrip/pkg/utils"
	"boystrip/pkg/utils/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAIFixture(t *testing.T) (*itineraryFixture, *mocks.MockTextGenerator, AIServiceInterface) {
	t.Helper()
	f := newItineraryFixture(t)
	gen := mocks.NewMockTextGenerator(gomock.NewController(t))
	return f, gen, NewAIService(gen, f.svc, testTrip())
}

func TestAIService_ImproveText(t *testing.T) {
	_, gen, svc := newAIFixture(t)
	ctx := context.Background()

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req utils.GenerateRequest) (string, error) {
			assert.Contains(t, req.Prompt, "short-term goal")
			assert.Contains(t, req.Prompt, "Condense this text")
			assert.Contains(t, req.Prompt, "ship my app")
			assert.NotEmpty(t, req.System)
			return "  Ship it.  ", nil
		})

	res, err := svc.ImproveText(ctx, request_models.ImproveTextRequest{
		Text: "ship my app", Action: "shorten", FieldName: "shortTermGoal",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Ship it.", res.Text)
}

func TestAIService_ImproveText_Rejects(t *testing.T) {
	_, _, svc := newAIFixture(t)
	ctx := context.Background()

	_, err := svc.ImproveText(ctx, request_models.ImproveTextRequest{Text: "x", Action: "translate"})
	assert.ErrorIs(t, err, utils.ErrUnknownAIAction)

	_, err = svc.ImproveText(ctx, request_models.ImproveTextRequest{Text: "x", Action: "custom"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.ImproveText(ctx, request_models.ImproveTextRequest{Text: " ", Action: "expand"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAIService_UpstreamFailure(t *testing.T) {
	_, gen, svc := newAIFixture(t)

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("429 too many requests"))

	_, err := svc.GenerateQuote(context.Background(), request_models.GenerateQuoteRequest{QuoteType: "funny", Themes: []string{"adventure"}})
	assert.ErrorIs(t, err, utils.ErrAIUpstream)
	assert.ErrorContains(t, err, "429")
}

func TestAIService_GenerateQuote(t *testing.T) {
	_, gen, svc := newAIFixture(t)

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req utils.GenerateRequest) (string, error) {
			assert.Contains(t, req.Prompt, "adventure, friendship")
			assert.Contains(t, req.Prompt, "Additional notes: keep it short")
			return `"Go far, go together" - Unknown`, nil
		})

	res, err := svc.GenerateQuote(context.Background(), request_models.GenerateQuoteRequest{
		QuoteType: "life", Themes: []string{"adventure", "friendship"}, CustomNotes: "keep it short",
	})
	require.NoError(t, err)
	assert.Equal(t, `"Go far, go together" - Unknown`, res.Quote)
}

func TestAIService_GenerateItinerary(t *testing.T) {
	f, gen, svc := newAIFixture(t)
	ctx := context.Background()
	seedActivity(t, f.db, db_models.Activity{Title: "Old plan"})

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req utils.GenerateRequest) (string, error) {
			assert.True(t, req.JSON)
			assert.Contains(t, req.Prompt, "9-day Cape Town itinerary")
			return "```json\n[" +
				`{"day":1,"timeSlot":"Morning","title":"Table Mountain","description":"Views","location":"Table Mountain","cost":"$25"},` +
				`{"day":1,"timeSlot":"Evening","title":"Long Street","description":"Bars","location":"CBD","cost":"$40"}` +
				"]\n```", nil
		})

	res, err := svc.GenerateItinerary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	day1, err := f.svc.ActivitiesForDay(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Table Mountain", "Long Street"}, titles(day1))
}

func TestAIService_GenerateItinerary_Garbage(t *testing.T) {
	f, gen, svc := newAIFixture(t)
	ctx := context.Background()
	seedActivity(t, f.db, db_models.Activity{Title: "Old plan"})

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Sorry, I can't help with that.", nil)

	_, err := svc.GenerateItinerary(ctx)
	assert.ErrorIs(t, err, utils.ErrAIUpstream)

	day1, err := f.svc.ActivitiesForDay(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Old plan"}, titles(day1))
}
