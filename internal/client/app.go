// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-hotel-booking/internal/adapter"
	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/models"
)

const usage = `usage: client [flags] <command> [arguments]

commands:
  rooms [location]                              list rooms, optionally in one location
  book <roomId> <roomCount> [checkIn checkOut]  book rooms
  bookings                                      list your bookings, newest first
  session                                       check whether the credentials give a session
  logout                                        end the session
`

type App struct {
	api adapter.ServerAdapter

	email    string
	password string

	out    io.Writer
	logger *logger.Logger
}

func NewApp(api adapter.ServerAdapter, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:      api,
		email:    cfg.Email,
		password: cfg.Password,
		out:      out,
		logger:   logger,
	}
}

// Run executes one command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: command", ErrMissingArguments)
	}

	command, params := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("params", params).Msg("running command")

	switch command {
	case "rooms":
		return a.rooms(ctx, params)
	case "book":
		return a.book(ctx, params)
	case "bookings":
		return a.bookings(ctx)
	case "session":
		return a.session(ctx)
	case "logout":
		return a.logout(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) login(ctx context.Context) error {
	if a.api.Token() != "" {
		return nil
	}
	if a.email == "" || a.password == "" {
		return ErrNoCredentials
	}

	if _, err := a.api.Login(ctx, a.email, a.password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func (a *App) rooms(ctx context.Context, params []string) error {
	location := strings.Join(params, " ")

	rooms, err := a.api.Rooms(ctx, location)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tHOTEL\tLOCATION\tROOM\tPRICE\tAVAILABLE\tAMENITIES")
	for _, r := range rooms {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID, r.HotelName, r.Location, r.Name, r.Price, r.Available, strings.Join(r.Amenities, ", "))
	}
	return w.Flush()
}

func (a *App) book(ctx context.Context, params []string) error {
	if len(params) < 2 {
		return fmt.Errorf("%w: book <roomId> <roomCount> [checkIn checkOut]", ErrMissingArguments)
	}

	roomID, err := strconv.ParseInt(params[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: roomId %q", ErrInvalidArgument, params[0])
	}
	roomCount, err := strconv.ParseInt(params[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: roomCount %q", ErrInvalidArgument, params[1])
	}

	request := models.BookingRequest{RoomID: roomID, RoomCount: roomCount}
	if len(params) >= 4 {
		request.CheckIn, request.CheckOut = params[2], params[3]
	}

	if err = a.login(ctx); err != nil {
		return err
	}

	resp, err := a.api.Book(ctx, request)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s, total: %d\n", resp.Message, resp.Total)
	return nil
}

func (a *App) bookings(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}

	bookings, err := a.api.Bookings(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBOOKED AT\tHOTEL\tLOCATION\tROOM\tCOUNT\tCHECK-IN\tCHECK-OUT\tTOTAL")
	for _, b := range bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%d\n",
			b.ID, b.BookingDate, b.HotelName, b.Location, b.Name, b.RoomCount, b.CheckIn, b.CheckOut, b.Total)
	}
	return w.Flush()
}

func (a *App) session(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}

	loggedIn, err := a.api.CheckSession(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in: %t\n", loggedIn)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	message, err := a.api.Logout(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, message)
	return nil
}
