package console

import (
	"context"
	"frontdesk/internal/domains/room/model/dto"
	staffDto "frontdesk/internal/domains/staff/model/dto"
	gDto "frontdesk/shared/dto"
	"strconv"
	"strings"
)

func (c *Console) managerMenu(ctx context.Context) error {
	return c.menu(ctx, "Manager", []menuItem{
		{label: "Add room", action: c.addRoom},
		{label: "Update room", action: c.updateRoom},
		{label: "Delete room", action: c.deleteRoom},
		{label: "List rooms", action: c.listRooms},
		{label: "Add staff", action: c.addStaff},
		{label: "List staff", action: c.listStaff},
		{label: "Update staff", action: c.updateStaff},
		{label: "Remove staff", action: c.removeStaff},
		{label: "Search staff by role", action: c.searchStaff},
		{label: "Reconcile rooms", action: c.reconcile},
		{label: "List bills", action: c.listBills},
	})
}

func (c *Console) addRoom(ctx context.Context) error {
	answers, err := c.askAll("Room ID", "Room type", "Price")
	if err != nil {
		return err
	}

	room, err := c.services.Room.Create(ctx, dto.CreateRoomRequest{ID: answers[0], Type: answers[1], Price: answers[2]})
	if err != nil {
		return err
	}

	c.println("Room " + room.ID + " added.")

	return nil
}

func (c *Console) updateRoom(ctx context.Context) error {
	answers, err := c.askAll("Room ID", "New type (blank to keep)", "New price (blank to keep)")
	if err != nil {
		return err
	}

	room, err := c.services.Room.Update(ctx, dto.UpdateRoomRequest{Type: answers[1], Price: answers[2]}, answers[0])
	if err != nil {
		return err
	}

	c.roomTable([]dto.RoomResponse{room})

	return nil
}

func (c *Console) deleteRoom(ctx context.Context) error {
	id, err := c.ask("Room ID")
	if err != nil {
		return err
	}

	if err := c.services.Room.Delete(ctx, id); err != nil {
		return err
	}

	c.println("Room " + id + " deleted.")

	return nil
}

func (c *Console) listRooms(ctx context.Context) error {
	rooms, err := c.services.Room.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return err
	}

	c.roomTable(rooms.Rooms)

	return nil
}

func (c *Console) addStaff(ctx context.Context) error {
	answers, err := c.askAll("Name", "Role", "Contact", "Salary")
	if err != nil {
		return err
	}

	member, err := c.services.Staff.Create(ctx, staffDto.CreateStaffRequest{
		Name: answers[0], Role: answers[1], Contact: answers[2], Salary: answers[3],
	})
	if err != nil {
		return err
	}

	c.println("Staff " + member.ID + " added.")

	return nil
}

func (c *Console) staffTable(staff []staffDto.StaffResponse) {
	rows := make([][]string, len(staff))
	for i, member := range staff {
		rows[i] = []string{member.ID, member.Name, member.Role, member.Contact, member.Salary, member.JoinDate}
	}

	c.table([]string{"StaffID", "Name", "Role", "Contact", "Salary", "JoinDate"}, rows)
}

func (c *Console) listStaff(ctx context.Context) error {
	staff, err := c.services.Staff.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return err
	}

	c.staffTable(staff.Staff)

	return nil
}

func (c *Console) updateStaff(ctx context.Context) error {
	answers, err := c.askAll("Staff ID", "New salary (blank to keep)", "New role (blank to keep)")
	if err != nil {
		return err
	}

	member, err := c.services.Staff.Update(ctx, staffDto.UpdateStaffRequest{Salary: answers[1], Role: answers[2]}, answers[0])
	if err != nil {
		return err
	}

	c.staffTable([]staffDto.StaffResponse{member})

	return nil
}

func (c *Console) removeStaff(ctx context.Context) error {
	id, err := c.ask("Staff ID")
	if err != nil {
		return err
	}

	if err := c.services.Staff.Delete(ctx, id); err != nil {
		return err
	}

	c.println("Staff " + id + " removed.")

	return nil
}

func (c *Console) searchStaff(ctx context.Context) error {
	role, err := c.ask("Role")
	if err != nil {
		return err
	}

	staff, err := c.services.Staff.SearchByRole(ctx, role)
	if err != nil {
		return err
	}

	c.staffTable(staff)

	return nil
}

func (c *Console) reconcile(ctx context.Context) error {
	report, err := c.services.Booking.Reconcile(ctx)
	if err != nil {
		return err
	}

	if report.Clean() {
		c.println("Rooms and bookings agree.")

		return nil
	}

	rows := [][]string{
		{"Freed", strings.Join(report.Freed, " ")},
		{"Reoccupied", strings.Join(report.Reoccupied, " ")},
		{"Orphaned bookings", strconv.Itoa(len(report.Orphaned))},
	}

	for roomID, bookingIDs := range report.Duplicates {
		rows = append(rows, []string{"Double booked " + roomID, strings.Join(bookingIDs, " ")})
	}

	c.table([]string{"Check", "Result"}, rows)

	return nil
}

func (c *Console) listBills(ctx context.Context) error {
	bills, err := c.services.Bill.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return err
	}

	rows := make([][]string, len(bills.Bills))
	for i, bill := range bills.Bills {
		rows[i] = []string{
			bill.ID, bill.CustomerID, bill.Name, bill.RoomID,
			strconv.Itoa(bill.DaysOfStay), bill.PricePerDay, bill.TotalAmount, bill.BillDate,
		}
	}

	c.table([]string{"BillID", "CustomerID", "Name", "RoomID", "Days", "PricePerDay", "Total", "BillDate"}, rows)

	return nil
}
