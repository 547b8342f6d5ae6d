package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nidkit/internal/model"
)

func TestDate_String(t *testing.T) {
	d := model.Date{Year: 1990, Month: 1, Day: 1}
	assert.Equal(t, "1990-01-01", d.String())

	d = model.Date{Year: 805, Month: 12, Day: 31}
	assert.Equal(t, "0805-12-31", d.String())
}

func TestDate_Before(t *testing.T) {
	tests := []struct {
		name   string
		a, b   model.Date
		before bool
	}{
		{"earlier year", model.Date{Year: 1989, Month: 12, Day: 31}, model.Date{Year: 1990, Month: 1, Day: 1}, true},
		{"same date", model.Date{Year: 1990, Month: 1, Day: 1}, model.Date{Year: 1990, Month: 1, Day: 1}, false},
		{"earlier month", model.Date{Year: 1990, Month: 1, Day: 31}, model.Date{Year: 1990, Month: 2, Day: 1}, true},
		{"earlier day", model.Date{Year: 1990, Month: 1, Day: 1}, model.Date{Year: 1990, Month: 1, Day: 2}, true},
		{"later day", model.Date{Year: 1990, Month: 1, Day: 2}, model.Date{Year: 1990, Month: 1, Day: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.before, tt.a.Before(tt.b))
		})
	}
}

func TestSex_String(t *testing.T) {
	assert.Equal(t, "M", model.SexMale.String())
	assert.Equal(t, "F", model.SexFemale.String())
}

func TestDate_JSON(t *testing.T) {
	d := model.Date{Year: 1990, Month: 1, Day: 1}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"year":1990,"month":1,"day":1}`, string(data))

	var back model.Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestSex_JSON(t *testing.T) {
	data, err := json.Marshal(model.SexFemale)
	require.NoError(t, err)
	assert.Equal(t, `"F"`, string(data))
}
