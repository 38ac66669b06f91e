// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package roomsctl provides a command-line client for the rooms
// service.  Log in once to create a user and a session file, then
// browse the space hierarchy and check in and out of rooms:
//
//     roomsctl --server http://localhost:8888/ login alice
//     roomsctl path alameda pavilhao-central
//     roomsctl check-in 1
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/restclient"
	"github.com/asint/fenix-rooms/restdata"
	"github.com/urfave/cli"
)

// client talks to the server named by the session or the --server
// flag.  It is set in app.Before, so command actions can rely on it.
var client *restclient.Client

var login = cli.Command{
	Name:      "login",
	Usage:     "create a user and start a session",
	ArgsUsage: "USERNAME",
	Action: func(c *cli.Context) error {
		username := c.Args().First()
		if username == "" {
			return errors.New("login needs a username")
		}
		user, err := client.CreateUser(username)
		if err == registry.ErrUserExists {
			// Resume the existing account rather than failing.
			user, err = findUser(username)
		}
		if err != nil {
			return err
		}
		sess := session{
			ServerURL: c.GlobalString("server"),
			UserID:    user.ID,
			Username:  user.Username,
		}
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Printf("logged in as %v (id %v)\n", user.Username, user.ID)
		return nil
	},
}

var spacesCmd = cli.Command{
	Name:  "spaces",
	Usage: "list the top level of the space hierarchy",
	Action: func(c *cli.Context) error {
		result, err := client.Spaces()
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var idCmd = cli.Command{
	Name:      "id",
	Usage:     "fetch one space by its upstream id",
	ArgsUsage: "SPACE_ID",
	Action: func(c *cli.Context) error {
		id := c.Args().First()
		if id == "" {
			return errors.New("id needs a space id")
		}
		result, err := client.SpaceByID(id)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var pathCmd = cli.Command{
	Name:      "path",
	Usage:     "resolve a chain of space names",
	ArgsUsage: "SEGMENT...",
	Action: func(c *cli.Context) error {
		if !c.Args().Present() {
			return errors.New("path needs at least one segment")
		}
		result, err := client.SpaceByPath(c.Args())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var usersCmd = cli.Command{
	Name:  "users",
	Usage: "list registered users",
	Action: func(c *cli.Context) error {
		users, err := client.Users()
		if err != nil {
			return err
		}
		return printJSON(users)
	},
}

var roomsCmd = cli.Command{
	Name:  "rooms",
	Usage: "list registered rooms",
	Action: func(c *cli.Context) error {
		rooms, err := client.Rooms()
		if err != nil {
			return err
		}
		return printJSON(rooms)
	},
}

var createRoom = cli.Command{
	Name:      "create-room",
	Usage:     "register a room for checkins (administrator only)",
	ArgsUsage: "FENIX_ID",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "location",
			Usage: "human-readable room location",
		},
		cli.IntFlag{
			Name:  "capacity",
			Usage: "normal capacity of the room",
		},
	},
	Action: func(c *cli.Context) error {
		fenixID := c.Args().First()
		if fenixID == "" {
			return errors.New("create-room needs a fenix space id")
		}
		sess, err := loadSession()
		if err != nil {
			return err
		}
		room, err := client.CreateRoom(sess.UserID, c.String("location"),
			c.Int("capacity"), fenixID)
		if err != nil {
			return err
		}
		fmt.Printf("created room %v (id %v)\n", room.Location, room.ID)
		return nil
	},
}

var checkIn = cli.Command{
	Name:      "check-in",
	Usage:     "record yourself as present in a room",
	ArgsUsage: "ROOM_ID",
	Action: func(c *cli.Context) error {
		roomID, sess, err := roomArg(c, "check-in")
		if err != nil {
			return err
		}
		checkin, err := client.CheckIn(sess.UserID, roomID)
		if err != nil {
			return err
		}
		fmt.Printf("checked in to room %v as %v\n", roomID, sess.Username)
		fmt.Printf("checkin id %v\n", checkin.ID)
		return nil
	},
}

var checkOut = cli.Command{
	Name:      "check-out",
	Usage:     "remove yourself from a room",
	ArgsUsage: "ROOM_ID",
	Action: func(c *cli.Context) error {
		roomID, sess, err := roomArg(c, "check-out")
		if err != nil {
			return err
		}
		if err := client.CheckOut(sess.UserID, roomID); err != nil {
			return err
		}
		fmt.Printf("checked out of room %v\n", roomID)
		return nil
	},
}

var checkinsCmd = cli.Command{
	Name:  "checkins",
	Usage: "list active checkins",
	Action: func(c *cli.Context) error {
		checkins, err := client.Checkins()
		if err != nil {
			return err
		}
		return printJSON(checkins)
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "roomsctl"
	app.Usage = "browse FenixEDU spaces and check in to rooms"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "server",
			Usage: "base URL of the rooms service",
		},
	}
	app.Commands = []cli.Command{
		login,
		spacesCmd,
		idCmd,
		pathCmd,
		usersCmd,
		roomsCmd,
		createRoom,
		checkIn,
		checkOut,
		checkinsCmd,
	}
	app.Before = func(c *cli.Context) error {
		server := c.GlobalString("server")
		if server == "" {
			if sess, err := loadSession(); err == nil {
				server = sess.ServerURL
			}
		}
		if server == "" {
			server = "http://localhost:8888/"
		}
		var err error
		client, err = restclient.New(server)
		return err
	}
	app.RunAndExitOnError()
}

// roomArg parses the single room-id argument and loads the session
// the checkin commands need.
func roomArg(c *cli.Context, command string) (int, *session, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, nil, fmt.Errorf("%v needs a room id", command)
	}
	roomID, err := strconv.Atoi(arg)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid room id %q", arg)
	}
	sess, err := loadSession()
	if err != nil {
		return 0, nil, err
	}
	return roomID, sess, nil
}

// findUser scans the user list for a username, for resuming a session
// with an account that already exists.
func findUser(username string) (*registry.User, error) {
	users, err := client.Users()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, registry.ErrNoSuchUser
}

func printJSON(result interface{}) error {
	err := restdata.Encode(os.Stdout, result)
	fmt.Println()
	return err
}
