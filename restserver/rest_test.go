// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restserver_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asint/fenix-rooms/memory"
	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/restdata"
	"github.com/asint/fenix-rooms/restserver"
	"github.com/asint/fenix-rooms/spaces"
	"github.com/asint/fenix-rooms/spaces/spacestest"
	"github.com/stretchr/testify/assert"
)

// fixture is an API server over a scripted directory and an in-memory
// registry.
type fixture struct {
	dir    *spacestest.Directory
	reg    registry.Registry
	server *httptest.Server
}

// newFixture builds a small campus: Alameda containing Pavilhão
// Central, which has floor 1, which has room Sala 1/2.
func newFixture() *fixture {
	dir := spacestest.New()
	room := dir.Add(&spaces.SpaceNode{
		ID:       "2448131361234",
		Name:     "Sala 1/2",
		Capacity: &spaces.Capacity{Normal: 30},
	})
	floor := dir.Add(&spaces.SpaceNode{
		ID:       "2448131361111",
		Name:     "1",
		Children: []spaces.ChildRef{room},
	})
	building := dir.Add(&spaces.SpaceNode{
		ID:       "2448131360897",
		Name:     "Pavilhão Central",
		Children: []spaces.ChildRef{floor},
	})
	campus := dir.Add(&spaces.SpaceNode{
		ID:       "2448131360898",
		Name:     "Alameda",
		Children: []spaces.ChildRef{building},
	})
	dir.RootRefs = []spaces.ChildRef{campus}

	reg := memory.New()
	return &fixture{
		dir:    dir,
		reg:    reg,
		server: httptest.NewServer(restserver.NewRouter(dir, reg)),
	}
}

func (f *fixture) Close() {
	f.server.Close()
}

// get performs a GET and decodes the response body into out if the
// status matches.
func (f *fixture) get(t *testing.T, path string, wantStatus int, out interface{}) {
	resp, err := http.Get(f.server.URL + path)
	if !assert.NoError(t, err) {
		return
	}
	defer resp.Body.Close()
	if assert.Equal(t, wantStatus, resp.StatusCode, "GET %v", path) && out != nil {
		err = restdata.Decode(resp.Header.Get("Content-Type"), resp.Body, out)
		assert.NoError(t, err)
	}
}

// send performs a request with a JSON body and decodes the response
// body into out if the status matches.
func (f *fixture) send(t *testing.T, method, path string, in interface{}, wantStatus int, out interface{}) {
	body := &bytes.Buffer{}
	if !assert.NoError(t, restdata.Encode(body, in)) {
		return
	}
	req, err := http.NewRequest(method, f.server.URL+path, body)
	if !assert.NoError(t, err) {
		return
	}
	req.Header.Set("Content-Type", restdata.JSONMediaType)
	resp, err := http.DefaultClient.Do(req)
	if !assert.NoError(t, err) {
		return
	}
	defer resp.Body.Close()
	if assert.Equal(t, wantStatus, resp.StatusCode, "%v %v", method, path) &&
		out != nil && resp.StatusCode != http.StatusNoContent {
		err = restdata.Decode(resp.Header.Get("Content-Type"), resp.Body, out)
		assert.NoError(t, err)
	}
}

func TestSpacesList(t *testing.T) {
	f := newFixture()
	defer f.Close()

	var refs []spaces.ChildRef
	f.get(t, "/api/spaces", http.StatusOK, &refs)
	if assert.Len(t, refs, 1) {
		assert.Equal(t, "Alameda", refs[0].Name)
	}
}

func TestSpaceByID(t *testing.T) {
	f := newFixture()
	defer f.Close()

	// A container comes back as its child list.
	var refs []spaces.ChildRef
	f.get(t, "/api/id/2448131360898", http.StatusOK, &refs)
	if assert.Len(t, refs, 1) {
		assert.Equal(t, "Pavilhão Central", refs[0].Name)
	}

	// A room comes back whole.
	var room spaces.Room
	f.get(t, "/api/id/2448131361234", http.StatusOK, &room)
	assert.Equal(t, "Sala 1/2", room.Name)
	if assert.NotNil(t, room.Capacity) {
		assert.Equal(t, 30, room.Capacity.Normal)
	}

	var errResp restdata.ErrorResponse
	f.get(t, "/api/id/999", http.StatusNotFound, &errResp)
	assert.Equal(t, "ErrNoSuchSpace", errResp.Error)
}

func TestSpaceByPath(t *testing.T) {
	f := newFixture()
	defer f.Close()

	var refs []spaces.ChildRef
	f.get(t, "/api/path/alameda/pavilhao-central", http.StatusOK, &refs)
	if assert.Len(t, refs, 1) {
		assert.Equal(t, "1", refs[0].Name)
	}

	var room spaces.Room
	f.get(t, "/api/path/alameda/pavilhao-central/1/sala-1_2", http.StatusOK, &room)
	assert.Equal(t, "2448131361234", room.ID)

	// The failing segment is named in the error.
	var errResp restdata.ErrorResponse
	f.get(t, "/api/path/alameda/pavilhao-sul", http.StatusNotFound, &errResp)
	assert.Equal(t, "ErrNoSuchSpace", errResp.Error)
	assert.Equal(t, "pavilhao-sul", errResp.Value)
}

func TestFixedDepthRoutes(t *testing.T) {
	f := newFixture()
	defer f.Close()

	var refs []spaces.ChildRef
	f.get(t, "/api/campus/alameda", http.StatusOK, &refs)
	f.get(t, "/api/campus/alameda/building/pavilhao-central", http.StatusOK, &refs)
	f.get(t, "/api/campus/alameda/building/pavilhao-central/floor/1", http.StatusOK, &refs)

	var room spaces.Room
	f.get(t, "/api/campus/alameda/building/pavilhao-central/floor/1/room/sala-1_2",
		http.StatusOK, &room)
	assert.Equal(t, "2448131361234", room.ID)

	f.get(t, "/api/campus/tagus", http.StatusNotFound, nil)
}

func TestUpstreamDown(t *testing.T) {
	f := newFixture()
	defer f.Close()
	f.dir.Fail = spaces.ErrUpstream{Status: http.StatusInternalServerError}

	var errResp restdata.ErrorResponse
	f.get(t, "/api/spaces", http.StatusServiceUnavailable, &errResp)
	assert.Equal(t, "ErrUpstream", errResp.Error)
	f.get(t, "/api/path/alameda", http.StatusServiceUnavailable, nil)
}

func TestCreateUser(t *testing.T) {
	f := newFixture()
	defer f.Close()

	var user registry.User
	f.send(t, "POST", "/api/create_user",
		restdata.CreateUserRequest{Username: "alice"},
		http.StatusCreated, &user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 1, user.ID)

	var errResp restdata.ErrorResponse
	f.send(t, "POST", "/api/create_user",
		restdata.CreateUserRequest{Username: "alice"},
		http.StatusUnprocessableEntity, &errResp)
	assert.Equal(t, "ErrUserExists", errResp.Error)

	f.send(t, "POST", "/api/create_user",
		restdata.CreateUserRequest{},
		http.StatusBadRequest, &errResp)
	assert.Equal(t, "ErrNoUsername", errResp.Error)

	var users []*registry.User
	f.get(t, "/api/users", http.StatusOK, &users)
	assert.Len(t, users, 1)
}

func TestCreateRoom(t *testing.T) {
	f := newFixture()
	defer f.Close()
	admin := 0
	alice := 1

	// Only the administrator can create rooms.
	var errResp restdata.ErrorResponse
	f.send(t, "POST", "/api/create_room",
		restdata.CreateRoomRequest{UserID: &alice, FenixID: "2448131361234"},
		http.StatusUnauthorized, &errResp)
	assert.Equal(t, "ErrUnauthorized", errResp.Error)
	f.send(t, "POST", "/api/create_room",
		restdata.CreateRoomRequest{FenixID: "2448131361234"},
		http.StatusUnauthorized, nil)

	// The fenix id must name a leaf room, not a container.
	f.send(t, "POST", "/api/create_room",
		restdata.CreateRoomRequest{UserID: &admin, FenixID: "2448131360897"},
		http.StatusNotFound, nil)
	f.send(t, "POST", "/api/create_room",
		restdata.CreateRoomRequest{UserID: &admin, FenixID: "999"},
		http.StatusNotFound, nil)

	var room registry.Room
	f.send(t, "POST", "/api/create_room",
		restdata.CreateRoomRequest{
			UserID:   &admin,
			Location: "Pavilhão Central, Piso 1",
			Capacity: 30,
			FenixID:  "2448131361234",
		},
		http.StatusCreated, &room)
	assert.Equal(t, "2448131361234", room.FenixID)

	f.send(t, "POST", "/api/create_room",
		restdata.CreateRoomRequest{UserID: &admin, FenixID: "2448131361234"},
		http.StatusUnprocessableEntity, &errResp)
	assert.Equal(t, "ErrRoomExists", errResp.Error)

	var rooms []*registry.Room
	f.get(t, "/api/rooms", http.StatusOK, &rooms)
	assert.Len(t, rooms, 1)
}

// TestCreateRoomUpstreamDown verifies that the existence check does
// not fail open when the upstream cannot be reached at all.
func TestCreateRoomUpstreamDown(t *testing.T) {
	f := newFixture()
	defer f.Close()
	f.dir.Fail = spaces.ErrUpstream{Err: assert.AnError}
	admin := 0

	var errResp restdata.ErrorResponse
	f.send(t, "POST", "/api/create_room",
		restdata.CreateRoomRequest{UserID: &admin, FenixID: "2448131361234"},
		http.StatusServiceUnavailable, &errResp)
	assert.Equal(t, "ErrUpstream", errResp.Error)
}

func TestCheckInOut(t *testing.T) {
	f := newFixture()
	defer f.Close()

	user, err := f.reg.CreateUser("bob")
	assert.NoError(t, err)
	room, err := f.reg.CreateRoom("sala", 8, "2448131361234")
	assert.NoError(t, err)
	body := restdata.CheckinRequest{UserID: user.ID, RoomID: room.ID}

	var checkin registry.Checkin
	f.send(t, "POST", "/api/check_in", body, http.StatusCreated, &checkin)
	assert.Equal(t, user.ID, checkin.UserID)
	assert.NotEmpty(t, checkin.ID)

	var errResp restdata.ErrorResponse
	f.send(t, "POST", "/api/check_in", body, http.StatusUnprocessableEntity, &errResp)
	assert.Equal(t, "ErrAlreadyCheckedIn", errResp.Error)

	var checkins []*registry.Checkin
	f.get(t, "/api/checkins", http.StatusOK, &checkins)
	assert.Len(t, checkins, 1)

	f.send(t, "DELETE", "/api/check_out", body, http.StatusNoContent, nil)
	f.send(t, "DELETE", "/api/check_out", body, http.StatusNotFound, &errResp)
	assert.Equal(t, "ErrNoSuchCheckin", errResp.Error)

	checkins = nil
	f.get(t, "/api/checkins", http.StatusOK, &checkins)
	assert.Len(t, checkins, 0)

	// Unknown ids are rejected up front.
	f.send(t, "POST", "/api/check_in",
		restdata.CheckinRequest{UserID: 42, RoomID: room.ID},
		http.StatusNotFound, &errResp)
	assert.Equal(t, "ErrNoSuchUser", errResp.Error)
}

func TestUnsupportedMediaType(t *testing.T) {
	f := newFixture()
	defer f.Close()

	req, err := http.NewRequest("POST", f.server.URL+"/api/create_user",
		bytes.NewBufferString("username=alice"))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := http.DefaultClient.Do(req)
	if assert.NoError(t, err) {
		resp.Body.Close()
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	}
}
