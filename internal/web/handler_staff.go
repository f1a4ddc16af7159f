package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// registerStaffRoutes wires the back-office triage board: the full order
// and appointment lists plus the lifecycle transitions.
func (a *App) registerStaffRoutes(g fiber.Router) {
	g.Get("/orders", a.staffOrders)
	g.Get("/orders/triage", a.orderTriage)
	g.Post("/orders/:id<[0-9]+>/status", a.updateOrderStatus)

	g.Get("/appointments", a.staffAppointments)
	g.Get("/appointments/triage", a.appointmentTriage)
	g.Post("/appointments/:id<[0-9]+>/status", a.updateAppointmentStatus)
}

type statusRequest struct {
	Status int    `json:"status"`
	Reason string `json:"reason"`
}

func (a *App) staffOrders(c *fiber.Ctx) error {
	return c.JSON(session(c).Orders.All())
}

func (a *App) orderTriage(c *fiber.Ctx) error {
	return c.JSON(session(c).Orders.NeedsTriage())
}

func (a *App) updateOrderStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Orders.UpdateStatus(c.Context(), id, payload.Status, payload.Reason, currentUser(c).ID); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":       "transition rejected",
			"notifications": set.Notifier.Active(),
		})
	}
	o, _ := set.Orders.Get(id)
	return c.JSON(fiber.Map{
		"order":         o,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) staffAppointments(c *fiber.Ctx) error {
	return c.JSON(session(c).Appointments.All())
}

func (a *App) appointmentTriage(c *fiber.Ctx) error {
	return c.JSON(session(c).Appointments.NeedsTriage())
}

func (a *App) updateAppointmentStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Appointments.UpdateStatus(c.Context(), id, payload.Status, payload.Reason, currentUser(c).ID); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":       "transition rejected",
			"notifications": set.Notifier.Active(),
		})
	}
	app, _ := set.Appointments.Get(id)
	return c.JSON(fiber.Map{
		"appointment":   app,
		"notifications": set.Notifier.Active(),
	})
}
