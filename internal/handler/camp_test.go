package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/medical-camp-registration/internal/repository"
)

func TestCreateCampStartsAtZeroParticipants(t *testing.T) {
	camps := newFakeCampStore()
	h := NewCampHandler(camps)

	rec := request(http.MethodPost, "/camps", "/camps",
		`{"title":"Eye Camp","fees":25,"location":"Dhaka","participantCount":500}`, h.CreateCamp)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	camp, err := camps.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Eye Camp", camp.Title)
	assert.EqualValues(t, 0, camp.ParticipantCount, "client cannot seed the counter")
}

func TestCreateCampValidation(t *testing.T) {
	h := NewCampHandler(newFakeCampStore())
	for _, body := range []string{`{}`, `{"title":"X","fees":-1}`} {
		rec := request(http.MethodPost, "/camps", "/camps", body, h.CreateCamp)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestGetCampNotFound(t *testing.T) {
	h := NewCampHandler(newFakeCampStore())
	rec := request(http.MethodGet, "/camps/9", "/camps/:id", "", h.GetCamp)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCamps(t *testing.T) {
	camps := newFakeCampStore()
	_, err := camps.Create(context.Background(), repository.Camp{Title: "A"})
	require.NoError(t, err)
	_, err = camps.Create(context.Background(), repository.Camp{Title: "B"})
	require.NoError(t, err)
	h := NewCampHandler(camps)

	rec := request(http.MethodGet, "/camps", "/camps", "", h.ListCamps)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []repository.Camp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestDeleteCamp(t *testing.T) {
	camps := newFakeCampStore()
	_, err := camps.Create(context.Background(), repository.Camp{Title: "A"})
	require.NoError(t, err)
	h := NewCampHandler(camps)

	rec := request(http.MethodDelete, "/camps/1", "/camps/:id", "", h.DeleteCamp)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["deletedCount"])
	assert.Empty(t, camps.camps)
}
