package dog_controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sagarikadotcom/canaan-pet-resort/models/dog_models"
	"github.com/stretchr/testify/assert"
)

type memDogs struct {
	dogs []dog_models.Dog
	err  error
}

func (m *memDogs) GetDogByID(_ context.Context, id uuid.UUID) (*dog_models.Dog, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.dogs {
		if m.dogs[i].ID == id {
			return &m.dogs[i], nil
		}
	}
	return nil, dog_models.ErrDogNotFound
}

func (m *memDogs) ListDogs(_ context.Context) ([]dog_models.Dog, error) {
	return m.dogs, m.err
}

func serve(store DogStore, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	dc := NewDogController(store)
	r := gin.New()
	r.GET("/dogs", dc.ListDogs)
	r.GET("/dogs/:id", dc.GetDog)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestDogController(t *testing.T) {
	bruno := dog_models.Dog{ID: uuid.New(), Name: "Bruno", Breed: "Labrador", Age: 4}
	store := &memDogs{dogs: []dog_models.Dog{bruno}}

	w := serve(store, "/dogs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Bruno"`)

	w = serve(store, "/dogs/"+bruno.ID.String())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"breed":"Labrador"`)

	w = serve(store, "/dogs/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Dog not found!"}`, w.Body.String())

	w = serve(store, "/dogs/x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDogControllerStoreFailure(t *testing.T) {
	w := serve(&memDogs{err: errors.New("pool closed")}, "/dogs/"+uuid.NewString())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}
