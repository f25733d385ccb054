package room

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *MockService) ListRooms(ctx context.Context) ([]Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Room), args.Error(1)
}

func (m *MockService) GetRoom(ctx context.Context, id int) (*Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	router.POST("/admin/rooms", h.CreateRoom)
	router.GET("/rooms", h.ListRooms)
	router.GET("/rooms/:roomID", h.GetRoom)
	return router
}

func TestCreateRoom_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("CreateRoom", mock.Anything, CreateRoomRequest{Name: "Studio A", Capacity: 20}).
		Return(&Room{ID: 1, Name: "Studio A", Capacity: 20}, nil)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/rooms", bytes.NewBufferString(`{"name":"Studio A","capacity":20}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"capacity":20`)
}

func TestCreateRoom_Handler_Validation(t *testing.T) {
	router := setupRouter(new(MockService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/rooms", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name")
	assert.Contains(t, w.Body.String(), "Capacity")
}

func TestCreateRoom_Handler_DuplicateName(t *testing.T) {
	svc := new(MockService)
	svc.On("CreateRoom", mock.Anything, mock.Anything).Return(nil, ErrRoomNameTaken)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/rooms", bytes.NewBufferString(`{"name":"Studio A","capacity":20}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetRoom_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("GetRoom", mock.Anything, 5).Return(nil, ErrRoomNotFound)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/5", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
