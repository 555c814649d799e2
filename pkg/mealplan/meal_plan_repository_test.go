package mealplan

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/entities"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

func TestDecodePlanCoercesStoredDocuments(t *testing.T) {
	doc := datatypes.JSON(`{"sunday":{"dinner":{"milk":{"id":"m","calories":"120","category":"milk"},"condiments":null}}}`)

	plan, err := decodePlan(doc)
	require.NoError(t, err)

	require.NotNil(t, plan[domain.Sunday].Dinner.Milk)
	assert.Equal(t, 120.0, plan[domain.Sunday].Dinner.Milk.Calories)
	assert.NotNil(t, plan[domain.Sunday].Dinner.Condiments)
}

func TestDecodePlanEmpty(t *testing.T) {
	for _, doc := range []datatypes.JSON{nil, datatypes.JSON(`null`), datatypes.JSON(`{}`)} {
		plan, err := decodePlan(doc)
		require.NoError(t, err)
		assert.Empty(t, plan)
	}

	_, err := decodePlan(datatypes.JSON(`{`))
	assert.Error(t, err)
}

func TestNewRowRoundTrip(t *testing.T) {
	plan := domain.PartialWeekPlan{domain.Monday: nutrition.EmptyDayMeals()}
	kidID := uuid.NewString()

	row, err := newRow(kidID, plan)
	require.NoError(t, err)
	assert.Equal(t, kidID, row.KidID.String())
	assert.True(t, json.Valid(row.Plan))

	decoded, err := decodePlan(row.Plan)
	require.NoError(t, err)
	assert.Equal(t, plan, decoded)

	_, err = newRow("nope", plan)
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=mealplanner dbname=mealplanner sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestSeedPlanKeepsExistingRows(t *testing.T) {
	db := newDryRunDB(t)
	kidID := uuid.NewString()

	seed, err := newRow(kidID, domain.PartialWeekPlan{})
	require.NoError(t, err)

	stmt := seedPlan(db, seed).Statement
	sql := stmt.SQL.String()
	assert.Contains(t, sql, `INSERT INTO "meal_plans"`)
	assert.Contains(t, sql, `ON CONFLICT ("kid_id") DO NOTHING`)
	assert.NotContains(t, sql, "DO UPDATE")
	assert.Contains(t, stmt.Vars, seed.KidID)

	plan, err := decodePlan(seed.Plan)
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestLockPlanSelectsForUpdate(t *testing.T) {
	db := newDryRunDB(t)
	kidID := uuid.NewString()

	var row entities.MealPlan
	stmt := lockPlan(db, kidID, &row).Statement
	sql := stmt.SQL.String()
	assert.Contains(t, sql, `FROM "meal_plans"`)
	assert.Contains(t, sql, "kid_id = $1")
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Equal(t, []any{kidID}, stmt.Vars[:1])
}

func TestDecodePlanRejectsMismatchedDocuments(t *testing.T) {
	_, err := decodePlan(datatypes.JSON(`{"monday":{"breakfast":{"proteins":"egg"}}}`))
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	_, err = decodePlan(datatypes.JSON(`[]`))
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	plan, err := decodePlan(datatypes.JSON(`{"monday":{"breakfast":{"condiments":[{"id":"r","calories":65,"servings":"2"}]}}}`))
	require.NoError(t, err)
	require.Len(t, plan[domain.Monday].Breakfast.Condiments, 1)
	assert.Equal(t, 2.0, plan[domain.Monday].Breakfast.Condiments[0].Servings)
}
