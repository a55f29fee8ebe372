package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/validation"
)

func ptr[T any](v T) *T { return &v }

func TestValidator_ReviewRequest(t *testing.T) {
	v := validation.New()

	valid := entities.ReviewRequest{
		Rating:  4,
		Title:   "Great read",
		Content: "An engaging story with memorable characters.",
	}
	require.NoError(t, v.Validate(valid))

	tests := []struct {
		name  string
		req   entities.ReviewRequest
		field string
		msg   string
	}{
		{"rating too low", entities.ReviewRequest{Rating: 0, Title: valid.Title, Content: valid.Content}, "rating", "is required"},
		{"rating too high", entities.ReviewRequest{Rating: 6, Title: valid.Title, Content: valid.Content}, "rating", "must be at most 5"},
		{"short title", entities.ReviewRequest{Rating: 3, Title: "Meh", Content: valid.Content}, "title", "must be at least 5 characters"},
		{"short content", entities.ReviewRequest{Rating: 3, Title: valid.Title, Content: "Too short"}, "content", "must be at least 20 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.msg, verr.Fields[tt.field])
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidator_ReadingStatus(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(entities.AddToLibraryRequest{BookID: "1", Status: entities.ReadingStatusReading}))

	err := v.Validate(entities.AddToLibraryRequest{BookID: "1", Status: "abandoned"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")

	assert.NoError(t, v.Validate(entities.UpdateUserBookRequest{Notes: ptr("note")}))
	assert.Error(t, v.Validate(entities.UpdateUserBookRequest{Status: ptr(entities.ReadingStatus("paused"))}))
	assert.Error(t, v.Validate(entities.UpdateUserBookRequest{CurrentPage: ptr(-1)}))
}

func TestValidator_AuthRequests(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(entities.LoginRequest{Email: "demo@bookcircle.com", Password: "demo123"}))

	err := v.Validate(entities.LoginRequest{Email: "not-an-email"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "is required", verr.Fields["password"])

	err = v.Validate(entities.RegisterRequest{Email: "new@example.com", Password: "secret1", Username: "ab"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "firstName")
	assert.Contains(t, verr.Fields, "lastName")
}
