package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValueAcceptsStringsAndNumbers(t *testing.T) {
	var f CropForm
	require.NoError(t, json.Unmarshal([]byte(`{"farmId":"1"}`), &f))
	assert.Equal(t, FormValue("1"), f.FarmID)

	require.NoError(t, json.Unmarshal([]byte(`{"farmId":2}`), &f))
	assert.Equal(t, FormValue("2"), f.FarmID)

	var tf TaskForm
	require.NoError(t, json.Unmarshal([]byte(`{"farmId":"1","cropId":null}`), &tf))
	assert.True(t, tf.CropID.Empty())
}

func TestFormValueInt(t *testing.T) {
	n, err := FormValue(" 7 ").Int()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = FormValue("3.0").Int()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = FormValue("3.5").Int()
	assert.Error(t, err)
	_, err = FormValue("abc").Int()
	assert.Error(t, err)
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	task := Task{DueDate: "2024-06-01"}
	assert.True(t, task.Overdue(now))

	task.Completed = true
	assert.False(t, task.Overdue(now))

	assert.False(t, Task{DueDate: "2024-07-01"}.Overdue(now))
	assert.False(t, Task{DueDate: "soon"}.Overdue(now))
}

func TestTransactionCategories(t *testing.T) {
	assert.True(t, Expense.AllowsCategory("fuel"))
	assert.False(t, Income.AllowsCategory("fuel"))
	assert.True(t, Income.AllowsCategory("other"))
	assert.Equal(t, "Pest Control", Humanize("pest_control"))
	assert.Len(t, CategoryOptions(Income), len(IncomeCategories))
}

func TestFormRoundTripKeepsOptionalCrop(t *testing.T) {
	crop := 4
	f := Task{ID: 1, FarmID: 2, CropID: &crop, Priority: High}.Form()
	assert.Equal(t, FormValue("2"), f.FarmID)
	assert.Equal(t, FormValue("4"), f.CropID)

	f = Task{FarmID: 2}.Form()
	assert.True(t, f.CropID.Empty())
}
