package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/petparadise/storefront/internal/catalog"
	"github.com/petparadise/storefront/internal/product"
	"github.com/petparadise/storefront/internal/user"
)

// registerAdminRoutes wires catalog and account management. Soft deletes
// only: retire/restore flips the status flag, rows never disappear.
func (a *App) registerAdminRoutes(g fiber.Router) {
	g.Get("/products", a.adminProducts)
	g.Post("/products", a.createProduct)
	g.Put("/products/:id<[0-9]+>", a.updateProduct)
	g.Post("/products/:id<[0-9]+>/retire", a.retireProduct)
	g.Post("/products/:id<[0-9]+>/restore", a.restoreProduct)

	g.Get("/categories", a.adminCategories)
	g.Post("/categories", a.createCategory)
	g.Put("/categories/:id<[0-9]+>", a.updateCategory)
	g.Post("/categories/:id<[0-9]+>/retire", a.retireCategory)
	g.Post("/categories/:id<[0-9]+>/restore", a.restoreCategory)

	g.Get("/breeds", a.adminBreeds)
	g.Post("/breeds", a.createBreed)
	g.Put("/breeds/:id<[0-9]+>", a.updateBreed)
	g.Post("/breeds/:id<[0-9]+>/retire", a.retireBreed)
	g.Post("/breeds/:id<[0-9]+>/restore", a.restoreBreed)

	g.Get("/origins", a.adminOrigins)
	g.Post("/origins", a.createOrigin)
	g.Put("/origins/:id<[0-9]+>", a.updateOrigin)
	g.Post("/origins/:id<[0-9]+>/retire", a.retireOrigin)
	g.Post("/origins/:id<[0-9]+>/restore", a.restoreOrigin)

	g.Get("/services", a.adminServices)
	g.Post("/services", a.createService)
	g.Put("/services/:id<[0-9]+>", a.updateService)
	g.Post("/services/:id<[0-9]+>/retire", a.retireService)
	g.Post("/services/:id<[0-9]+>/restore", a.restoreService)

	g.Get("/users", a.adminUsers)
	g.Get("/roles", a.adminRoles)
	g.Post("/users", a.createUser)
	g.Put("/users/:id<[0-9]+>", a.updateUser)
	g.Post("/users/:id<[0-9]+>/lock", a.lockUser)
	g.Post("/users/:id<[0-9]+>/unlock", a.unlockUser)
}

func (a *App) adminProducts(c *fiber.Ctx) error {
	return c.JSON(session(c).Products.All())
}

func (a *App) createProduct(c *fiber.Ctx) error {
	payload := new(product.CreateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Products.Create(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"products":      set.Products.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) updateProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(product.UpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.ID = id
	set := session(c)
	if err := set.Products.Update(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	p, _ := set.Products.Get(id)
	return c.JSON(fiber.Map{
		"product":       p,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) retireProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Products.Retire(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) restoreProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Products.Restore(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) adminCategories(c *fiber.Ctx) error {
	return c.JSON(session(c).Catalog.Categories.All())
}

func (a *App) createCategory(c *fiber.Ctx) error {
	payload := new(catalog.CreateCategoryRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Catalog.Categories.Create(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"categories":    set.Catalog.Categories.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) updateCategory(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(catalog.UpdateCategoryRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.ID = id
	set := session(c)
	if err := set.Catalog.Categories.Update(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{
		"categories":    set.Catalog.Categories.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) retireCategory(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Catalog.Categories.Retire(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) restoreCategory(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Catalog.Categories.Restore(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) adminBreeds(c *fiber.Ctx) error {
	return c.JSON(session(c).Catalog.Breeds.All())
}

func (a *App) createBreed(c *fiber.Ctx) error {
	payload := new(catalog.CreateBreedRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Catalog.Breeds.Create(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"breeds":        set.Catalog.Breeds.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) updateBreed(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(catalog.UpdateBreedRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.ID = id
	set := session(c)
	if err := set.Catalog.Breeds.Update(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{
		"breeds":        set.Catalog.Breeds.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) retireBreed(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Catalog.Breeds.Retire(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) restoreBreed(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Catalog.Breeds.Restore(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) adminOrigins(c *fiber.Ctx) error {
	return c.JSON(session(c).Catalog.Origins.All())
}

func (a *App) createOrigin(c *fiber.Ctx) error {
	payload := new(catalog.CreateOriginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Catalog.Origins.Create(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"origins":       set.Catalog.Origins.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) updateOrigin(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(catalog.UpdateOriginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.ID = id
	set := session(c)
	if err := set.Catalog.Origins.Update(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{
		"origins":       set.Catalog.Origins.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) retireOrigin(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Catalog.Origins.Retire(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) restoreOrigin(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Catalog.Origins.Restore(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) adminServices(c *fiber.Ctx) error {
	return c.JSON(session(c).Catalog.Services.All())
}

func (a *App) createService(c *fiber.Ctx) error {
	payload := new(catalog.CreatePetServiceRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Catalog.Services.Create(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"services":      set.Catalog.Services.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) updateService(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(catalog.UpdatePetServiceRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.ID = id
	set := session(c)
	if err := set.Catalog.Services.Update(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{
		"services":      set.Catalog.Services.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) retireService(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Catalog.Services.Retire(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) restoreService(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Catalog.Services.Restore(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) adminUsers(c *fiber.Ctx) error {
	return c.JSON(session(c).Users.All())
}

func (a *App) adminRoles(c *fiber.Ctx) error {
	return c.JSON(session(c).Users.Roles())
}

func (a *App) createUser(c *fiber.Ctx) error {
	payload := new(user.CreateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Users.Create(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"users":         set.Users.All(),
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) updateUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	payload := new(user.UpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.ID = id
	set := session(c)
	if err := set.Users.Update(c.Context(), *payload); err != nil {
		return a.mutationFailed(c)
	}
	u, _ := set.Users.Get(id)
	return c.JSON(fiber.Map{
		"user":          u,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) lockUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Users.Lock(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) unlockUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	set := session(c)
	if err := set.Users.Unlock(c.Context(), id); err != nil {
		return a.mutationFailed(c)
	}
	return c.JSON(fiber.Map{"notifications": set.Notifier.Active()})
}

func (a *App) mutationFailed(c *fiber.Ctx) error {
	set := session(c)
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"message":       "mutation failed",
		"notifications": set.Notifier.Active(),
	})
}
