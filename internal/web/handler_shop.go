package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/petparadise/storefront/internal/address"
	"github.com/petparadise/storefront/internal/appointment"
	"github.com/petparadise/storefront/internal/order"
)

// registerShopRoutes wires the customer storefront: browsing, cart,
// checkout, bookings, own orders and the address book.
func (a *App) registerShopRoutes(g fiber.Router) {
	g.Get("/products", a.listProducts)
	g.Get("/services", a.listServices)

	g.Get("/cart", a.getCart)
	g.Post("/cart/add", a.addToCart)
	g.Post("/cart/remove", a.removeFromCart)
	g.Post("/cart/quantity", a.updateCartQuantity)

	g.Post("/checkout", a.checkout)
	g.Get("/orders", a.myOrders)
	g.Post("/orders/:id<[0-9]+>/cancel", a.cancelOrder)

	g.Post("/appointments", a.bookAppointment)
	g.Get("/appointments", a.myAppointments)
	g.Post("/appointments/:id<[0-9]+>/cancel", a.cancelAppointment)

	g.Get("/addresses", a.listAddresses)
	g.Post("/addresses", a.addAddress)
	g.Put("/addresses/:id<[0-9]+>", a.updateAddress)
	g.Delete("/addresses/:id<[0-9]+>", a.deleteAddress)
	g.Post("/addresses/:id<[0-9]+>/default", a.setDefaultAddress)
}

func (a *App) listProducts(c *fiber.Ctx) error {
	return c.JSON(session(c).Products.Available())
}

func (a *App) listServices(c *fiber.Ctx) error {
	return c.JSON(session(c).Catalog.Services.Active())
}

func (a *App) getCart(c *fiber.Ctx) error {
	return c.JSON(session(c).Cart.Items())
}

func (a *App) addToCart(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Query("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	set := session(c)
	if _, ok := set.Products.Get(productID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "unknown product"})
	}
	added := set.Cart.Add(productID)
	if added {
		set.Notifier.Success("cart.added")
	} else {
		set.Notifier.Info("cart.already")
	}
	return c.JSON(fiber.Map{
		"added":         added,
		"cart":          set.Cart.Items(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) removeFromCart(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Query("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	set := session(c)
	set.Cart.Remove(productID)
	set.Notifier.Success("cart.removed")
	return c.JSON(fiber.Map{
		"cart":          set.Cart.Items(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) updateCartQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Query("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid quantity"})
	}
	set := session(c)
	set.Cart.UpdateQuantity(productID, quantity)
	return c.JSON(set.Cart.Items())
}

type checkoutRequest struct {
	PaymentMethod   int    `json:"paymentMethod"`
	ShippingAddress string `json:"shippingAddress"`
	Note            string `json:"note"`
}

func (a *App) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	u := currentUser(c)

	shipping := payload.ShippingAddress
	if shipping == "" {
		if def, ok := set.Addresses.Default(); ok {
			shipping = formatAddress(def)
		}
	}
	if shipping == "" {
		set.Notifier.Error("order.no_address")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":       "shipping address required",
			"notifications": set.Notifier.Active(),
		})
	}

	placed, err := set.Orders.Place(c.Context(), u.ID, set.Cart.Items(), payload.PaymentMethod, shipping, payload.Note)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":       "checkout failed",
			"notifications": set.Notifier.Active(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":         placed,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) myOrders(c *fiber.Ctx) error {
	set := session(c)
	u := currentUser(c)
	var own []order.Order
	for _, o := range set.Orders.All() {
		if o.CustomerID == u.ID {
			own = append(own, o)
		}
	}
	return c.JSON(own)
}

func (a *App) cancelOrder(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if o, ok := set.Orders.Get(id); !ok || o.CustomerID != currentUser(c).ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	reason := c.Query("reason")
	if err := set.Orders.CancelByCustomer(c.Context(), id, reason); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":       "cancel failed",
			"notifications": set.Notifier.Active(),
		})
	}
	o, _ := set.Orders.Get(id)
	return c.JSON(fiber.Map{
		"order":         o,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) bookAppointment(c *fiber.Ctx) error {
	payload := new(appointment.CreateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	payload.CustomerID = currentUser(c).ID
	booked, err := set.Appointments.Book(c.Context(), *payload)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":       "booking failed",
			"notifications": set.Notifier.Active(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"appointment":   booked,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) myAppointments(c *fiber.Ctx) error {
	set := session(c)
	u := currentUser(c)
	var own []appointment.Appointment
	for _, app := range set.Appointments.All() {
		if app.CustomerID == u.ID {
			own = append(own, app)
		}
	}
	return c.JSON(own)
}

func (a *App) cancelAppointment(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if app, ok := set.Appointments.Get(id); !ok || app.CustomerID != currentUser(c).ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "appointment not found"})
	}
	if err := set.Appointments.CancelByCustomer(c.Context(), id, c.Query("reason")); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":       "cancel failed",
			"notifications": set.Notifier.Active(),
		})
	}
	app, _ := set.Appointments.Get(id)
	return c.JSON(fiber.Map{
		"appointment":   app,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) listAddresses(c *fiber.Ctx) error {
	return c.JSON(session(c).Addresses.All())
}

func (a *App) addAddress(c *fiber.Ctx) error {
	payload := new(address.CreateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	payload.UserID = currentUser(c).ID
	if err := set.Addresses.Add(c.Context(), *payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":       "could not add address",
			"notifications": set.Notifier.Active(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"addresses":     set.Addresses.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) updateAddress(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(address.UpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.ID = id
	set := session(c)
	if err := set.Addresses.Update(c.Context(), *payload); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":       "could not update address",
			"notifications": set.Notifier.Active(),
		})
	}
	return c.JSON(fiber.Map{
		"addresses":     set.Addresses.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) deleteAddress(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Addresses.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":       "could not remove address",
			"notifications": set.Notifier.Active(),
		})
	}
	return c.JSON(fiber.Map{
		"addresses":     set.Addresses.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) setDefaultAddress(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Addresses.SetDefault(c.Context(), id); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":       "could not change default address",
			"notifications": set.Notifier.Active(),
		})
	}
	return c.JSON(fiber.Map{
		"addresses":     set.Addresses.All(),
		"notifications": set.Notifier.Active(),
	})
}

func formatAddress(a address.Address) string {
	return a.Info + ", " + a.Ward + ", " + a.District + ", " + a.Province
}
