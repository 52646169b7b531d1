package routes

import "github.com/gofiber/fiber/v2"

// ResourceController is the set of conventional actions behind Resource
type ResourceController interface {
	Index(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Store(c *fiber.Ctx) error
	Show(c *fiber.Ctx) error
	Edit(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Destroy(c *fiber.Ctx) error
}

// Resource registers the seven RESTful routes for name. /name/create is
// registered before /name/:id so it is not captured as an id.
func Resource(router fiber.Router, name string, ctrl ResourceController) {
	base := "/" + name

	router.Get(base, ctrl.Index)
	router.Get(base+"/create", ctrl.Create)
	router.Post(base, ctrl.Store)
	router.Get(base+"/:id", ctrl.Show)
	router.Get(base+"/:id/edit", ctrl.Edit)
	router.Put(base+"/:id", ctrl.Update)
	router.Patch(base+"/:id", ctrl.Update)
	router.Delete(base+"/:id", ctrl.Destroy)
}
