package rooms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/middleware"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/session"
)

type roomEnv struct {
	router   *gin.Engine
	store    *MemoryStore
	sessions *session.Manager
}

func newRoomEnv(t *testing.T) *roomEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(session.NewMemoryStore(), session.CookieOptions{}, time.Hour)
	store := NewMemoryStore()

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(middleware.NewAuthMiddleware(sessions)))
	NewHandler(store).RegisterRoutes(api)

	return &roomEnv{router: router, store: store, sessions: sessions}
}

func (e *roomEnv) login(t *testing.T, identityID int64, label string) *http.Cookie {
	t.Helper()
	sess, err := e.sessions.StartLocal(
		context.Background(),
		httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPost, "/auth/login", nil),
		identityID,
		label,
	)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: sess.SessionID}
}

func (e *roomEnv) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateRoom_RequiresSession(t *testing.T) {
	env := newRoomEnv(t)

	rec := env.do(http.MethodPost, "/api/rooms",
		`{"name":"study","join_code":"123456","group_link":"https://chat.example/g/1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateRoom_StampsCreator(t *testing.T) {
	env := newRoomEnv(t)
	cookie := env.login(t, 42, "alice")

	rec := env.do(http.MethodPost, "/api/rooms",
		`{"name":"study","join_code":"123456","group_link":"https://chat.example/g/1"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var room Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, int64(42), room.CreatorID)
	assert.Equal(t, "local", string(room.CreatorKind))

	// join code never serialized
	assert.NotContains(t, rec.Body.String(), "123456")

	stored, err := env.store.Get(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", stored.JoinCode)
}

func TestCreateRoom_Validation(t *testing.T) {
	env := newRoomEnv(t)
	cookie := env.login(t, 1, "alice")

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"join_code":"123456","group_link":"https://chat.example/g/1"}`},
		{"missing link", `{"name":"study","join_code":"123456"}`},
		{"short code", `{"name":"study","join_code":"123","group_link":"https://chat.example/g/1"}`},
		{"alpha code", `{"name":"study","join_code":"abc123","group_link":"https://chat.example/g/1"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/rooms", tc.body, cookie)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestJoinRoom(t *testing.T) {
	env := newRoomEnv(t)
	cookie := env.login(t, 1, "alice")

	rec := env.do(http.MethodPost, "/api/rooms",
		`{"name":"study","join_code":"654321","group_link":"https://chat.example/g/9"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var room Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))

	// wrong code
	rec = env.do(http.MethodPost, "/api/rooms/"+room.ID+"/join", `{"join_code":"000000"}`, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrWrongJoinCode.Error())

	// right code reveals the group link
	rec = env.do(http.MethodPost, "/api/rooms/"+room.ID+"/join", `{"join_code":"654321"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://chat.example/g/9")

	// unknown room
	rec = env.do(http.MethodPost, "/api/rooms/no-such-room/join", `{"join_code":"654321"}`, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchRooms_OmitsGroupLink(t *testing.T) {
	env := newRoomEnv(t)
	cookie := env.login(t, 1, "alice")

	rec := env.do(http.MethodPost, "/api/rooms",
		`{"name":"study","join_code":"123456","group_link":"https://chat.example/g/7"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/api/rooms", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "https://chat.example/g/7")
	assert.NotContains(t, rec.Body.String(), "group_link")

	var result struct {
		Rooms []Room `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Rooms, 1)

	// the link is still stored and comes back on a correct join
	rec = env.do(http.MethodPost, "/api/rooms/"+result.Rooms[0].ID+"/join", `{"join_code":"123456"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://chat.example/g/7")
}

func TestSearchRooms(t *testing.T) {
	env := newRoomEnv(t)
	cookie := env.login(t, 1, "alice")

	for _, name := range []string{"go study group", "cooking club", "golang help"} {
		rec := env.do(http.MethodPost, "/api/rooms",
			`{"name":"`+name+`","join_code":"111111","group_link":"https://chat.example/g"}`, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	var result struct {
		Rooms []Room `json:"rooms"`
	}

	rec := env.do(http.MethodGet, "/api/rooms?q=go", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Rooms, 2)

	rec = env.do(http.MethodGet, "/api/rooms", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Rooms, 3)

	rec = env.do(http.MethodGet, "/api/rooms?q=nomatch", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Rooms)
}
