package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Date     string `validate:"required,datetime=2006-01-02"`
	RoomID   int    `validate:"gt=0"`
	Capacity int    `validate:"lte=500"`
}

func TestValidateStruct(t *testing.T) {
	assert.Empty(t, ValidateStruct(sample{Date: "2026-10-19", RoomID: 1, Capacity: 10}))

	errs := ValidateStruct(sample{Date: "19.10.2026", RoomID: 0, Capacity: 900})
	require.Len(t, errs, 3)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	assert.Equal(t, "datetime", byField["Date"].Tag)
	assert.Equal(t, "RoomID must be greater than 0", byField["RoomID"].Message)
	assert.Equal(t, "Capacity must be less than or equal to 500", byField["Capacity"].Message)

	missing := ValidateStruct(sample{RoomID: 1})
	require.Len(t, missing, 1)
	assert.Equal(t, "Date is required", missing[0].Message)
}

func TestRespondWithValidationErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithValidationErrors(c, []ValidationError{{Field: "Date", Tag: "required", Message: "Date is required"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Len(t, body.Details, 1)
}
