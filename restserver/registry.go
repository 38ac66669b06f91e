// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"

	"github.com/asint/fenix-rooms/restdata"
)

// adminUserID is the reserved id that may create rooms.  It is never
// handed out by the registry, whose user ids start at 1.
const adminUserID = 0

// UserList gets all registered users.
func (api *restAPI) UserList(ctx *context) (interface{}, error) {
	return api.Registry.Users()
}

// RoomList gets all registered rooms.
func (api *restAPI) RoomList(ctx *context) (interface{}, error) {
	return api.Registry.Rooms()
}

// CheckinList gets all active checkins.
func (api *restAPI) CheckinList(ctx *context) (interface{}, error) {
	return api.Registry.Checkins()
}

// CreateUser registers a new user.
func (api *restAPI) CreateUser(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.CreateUserRequest)
	if !valid {
		return nil, errUnmarshal
	}
	user, err := api.Registry.CreateUser(req.Username)
	if err != nil {
		return nil, err
	}
	return responseCreated{Body: user}, nil
}

// CreateRoom registers a new room.  Only the administrator may do
// this, and the room's fenix id must name an actual leaf room in the
// upstream directory; the existence check fails closed, so an
// unparseable or missing upstream record rejects the room the same as
// an unknown id.
func (api *restAPI) CreateRoom(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.CreateRoomRequest)
	if !valid {
		return nil, errUnmarshal
	}
	if req.UserID == nil || *req.UserID != adminUserID {
		return nil, restdata.ErrUnauthorized{}
	}
	isRoom, err := api.Resolver.IsRoom(req.FenixID)
	if err != nil {
		return nil, err
	}
	if !isRoom {
		return nil, restdata.ErrNotFound{
			Err: fmt.Errorf("%v does not name a room", req.FenixID),
		}
	}
	room, err := api.Registry.CreateRoom(req.Location, req.Capacity, req.FenixID)
	if err != nil {
		return nil, err
	}
	return responseCreated{Body: room}, nil
}

// CheckIn records a user as present in a room.
func (api *restAPI) CheckIn(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.CheckinRequest)
	if !valid {
		return nil, errUnmarshal
	}
	checkin, err := api.Registry.CheckIn(req.UserID, req.RoomID)
	if err != nil {
		return nil, err
	}
	return responseCreated{Body: checkin}, nil
}

// CheckOut removes a user's presence in a room.
func (api *restAPI) CheckOut(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.CheckinRequest)
	if !valid {
		return nil, errUnmarshal
	}
	return nil, api.Registry.CheckOut(req.UserID, req.RoomID)
}
