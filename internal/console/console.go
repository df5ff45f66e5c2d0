package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	billService "frontdesk/internal/domains/bill/service"
	bookingService "frontdesk/internal/domains/booking/service"
	customerService "frontdesk/internal/domains/customer/service"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomService "frontdesk/internal/domains/room/service"
	staffService "frontdesk/internal/domains/staff/service"
	"frontdesk/shared/constant"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
)

// errQuit ends the session when input runs out.
var errQuit = errors.New("input closed")

type Services struct {
	Room     roomService.Room
	Booking  bookingService.Booking
	Customer customerService.Customer
	Staff    staffService.Staff
	Bill     billService.Bill
}

// Console is the interactive desk menu. It renders results as grid tables on out.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	services Services
	otel     otel.Otel
}

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

func New(in io.Reader, out io.Writer, services Services, otel otel.Otel) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		services: services,
		otel:     otel,
	}
}

func NewStdio(services Services, otel otel.Otel) *Console {
	return New(os.Stdin, os.Stdout, services, otel)
}

// Run shows the role menu until the operator exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.println("=== Hotel Front Desk ===")

	err := c.menu(ctx, "Select role", []menuItem{
		{label: "Manager", action: c.managerMenu},
		{label: "Receptionist", action: c.receptionistMenu},
		{label: "Customer", action: c.guestMenu},
	})
	if errors.Is(err, errQuit) {
		return nil
	}

	return err
}

// menu loops over items until "0" is chosen. Service errors are shown and the loop
// carries on; only errQuit leaves early.
func (c *Console) menu(ctx context.Context, title string, items []menuItem) error {
	for {
		c.println("")
		c.println("--- " + title + " ---")

		for i, item := range items {
			c.printf("%d. %s\n", i+1, item.label)
		}

		c.println("0. Back")

		choice, err := c.ask("Choice")
		if err != nil {
			return err
		}

		if choice == "0" {
			return nil
		}

		var picked *menuItem

		for i := range items {
			if choice == fmt.Sprint(i+1) {
				picked = &items[i]
			}
		}

		if picked == nil {
			c.println("Invalid choice.")

			continue
		}

		if err := c.run(ctx, picked); err != nil {
			if errors.Is(err, errQuit) {
				return err
			}

			c.println("Error: " + err.Error())
		}
	}
}

func (c *Console) run(ctx context.Context, item *menuItem) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+"."+item.label)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = item.action(ctx)
	if err != nil && !errors.Is(err, errQuit) {
		log.Debug().Err(err).Str("action", item.label).Msg("console action failed")
	}

	return err
}

func (c *Console) ask(label string) (string, error) {
	c.printf("%s: ", label)

	if !c.in.Scan() {
		c.println("")

		return constant.Empty, errQuit
	}

	return strings.TrimSpace(c.in.Text()), nil
}

// askAll prompts for each label in order.
func (c *Console) askAll(labels ...string) ([]string, error) {
	answers := make([]string, len(labels))

	for i, label := range labels {
		answer, err := c.ask(label)
		if err != nil {
			return nil, err
		}

		answers[i] = answer
	}

	return answers, nil
}

func (c *Console) table(header []string, rows [][]string) {
	if len(rows) == 0 {
		c.println("No records found.")

		return
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func (c *Console) roomTable(rooms []roomDto.RoomResponse) {
	rows := make([][]string, len(rooms))
	for i, room := range rooms {
		rows[i] = []string{room.ID, room.Type, room.Price, room.Status}
	}

	c.table([]string{"RoomID", "RoomType", "Price", "Status"}, rows)
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
