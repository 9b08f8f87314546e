package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"eventattendance/internal/domain"
)

// terminal reads scanned IDs and commands line by line.
type terminal struct {
	station domain.CheckInStation
	in      io.Reader
	out     io.Writer
}

func newTerminal(station domain.CheckInStation, in io.Reader, out io.Writer) *terminal {
	return &terminal{station: station, in: in, out: out}
}

const helpText = `Scan or type an ID number and press enter.
Commands: :sync  :status  :refresh  :help  :quit`

// run processes lines until input ends, :quit is entered, or ctx is done.
// quit is called on exit so background work stops with the terminal.
func (t *terminal) run(ctx context.Context, quit func()) error {
	defer quit()
	fmt.Fprintln(t.out, helpText)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(t.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			return err
		case line := <-lines:
			if !t.handle(ctx, strings.TrimSpace(line)) {
				return nil
			}
		}
	}
}

// handle executes one line and reports whether the terminal should keep going.
func (t *terminal) handle(ctx context.Context, line string) bool {
	switch line {
	case "":
		return true
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprintln(t.out, helpText)
	case ":sync":
		rep, err := t.station.Sync(ctx)
		switch {
		case errors.Is(err, domain.ErrOffline):
			fmt.Fprintln(t.out, "offline: check-ins stay queued until the server is reachable")
		case err != nil:
			fmt.Fprintf(t.out, "sync failed: %v\n", err)
		default:
			fmt.Fprintf(t.out, "synced: %d replayed, %d already recorded, %d retained, %d dropped\n",
				rep.Replayed, rep.Deduplicated, rep.Retained, rep.Dropped)
		}
	case ":status":
		st, err := t.station.Status(ctx)
		if err != nil {
			fmt.Fprintf(t.out, "status failed: %v\n", err)
			return true
		}
		state := "offline"
		if st.Online {
			state = "online"
		}
		last := "never"
		if !st.LastSyncedAt.IsZero() {
			last = st.LastSyncedAt.Local().Format(time.Kitchen)
		}
		fmt.Fprintf(t.out, "%s, %d queued, %d on roster, last sync %s\n", state, st.Pending, st.RosterSize, last)
	case ":refresh":
		if err := t.station.Refresh(ctx); err != nil {
			fmt.Fprintf(t.out, "refresh failed: %v\n", err)
			return true
		}
		fmt.Fprintln(t.out, "roster refreshed")
	default:
		if strings.HasPrefix(line, ":") {
			fmt.Fprintf(t.out, "unknown command %s\n", line)
			return true
		}
		t.checkIn(ctx, line)
	}
	return true
}

func (t *terminal) checkIn(ctx context.Context, idNumber string) {
	res, err := t.station.CheckIn(ctx, idNumber)
	if err != nil {
		fmt.Fprintf(t.out, "%s: check-in failed: %v\n", idNumber, err)
		return
	}
	name := ""
	if res.Participant != nil {
		name = strings.TrimSpace(res.Participant.FirstName + " " + res.Participant.LastName)
	}
	switch res.Outcome {
	case domain.CheckInCheckedIn:
		fmt.Fprintf(t.out, "OK %s checked in\n", name)
	case domain.CheckInAlreadyCheckedIn:
		fmt.Fprintf(t.out, "-- %s was already checked in\n", name)
	case domain.CheckInQueued:
		fmt.Fprintf(t.out, "OK %s checked in (offline, queued)\n", name)
	case domain.CheckInAlreadyQueued:
		fmt.Fprintf(t.out, "-- %s is already queued\n", name)
	case domain.CheckInNotFound:
		fmt.Fprintf(t.out, "!! %s is not on the participant list\n", res.IDNumber)
	}
}
