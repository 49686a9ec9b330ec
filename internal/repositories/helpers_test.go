package repositories

import (
	"context"
	"testing"

	"boystrip/internal/models/db_models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedActivity(t *testing.T, db *gorm.DB, day int, slot db_models.TimeSlot, title string) *db_models.Activity {
	t.Helper()
	a := &db_models.Activity{Day: day, TimeSlot: slot, Title: title, Source: db_models.ActivitySourceAI}
	require.NoError(t, db.WithContext(context.Background()).Create(a).Error)
	return a
}

func seedProfile(t *testing.T, db *gorm.DB, name string, manager bool) *db_models.Profile {
	t.Helper()
	p := &db_models.Profile{Name: name, IsItineraryManager: manager}
	require.NoError(t, db.Create(p).Error)
	return p
}
