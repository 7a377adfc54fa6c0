package admin

import (
	"errors"
	"strings"

	"blocks-generator/core/generator"
	"blocks-generator/core/logger"
	"blocks-generator/core/utils"
	"blocks-generator/core/world"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for generators.
type Handler struct {
	service   *Service
	validator *Validator
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, validator *Validator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, validator: validator, logger: logger}
}

// RegisterRoutes registers the generator routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/generators")
	group.Get("/", h.HandleList)
	group.Get("/types", h.HandleTypes)
	group.Get("/lookup", h.HandleLookup)
	group.Get("/block", h.HandleBlock)
	group.Get("/complete", h.HandleComplete)
	group.Post("/place", h.HandlePlace)
	group.Post("/break", h.HandleBreak)
	group.Post("/reconcile", h.HandleReconcile)
	group.Post("/command", h.HandleCommand)
	group.Post("/worlds/:name/load", h.HandleLoadWorld)
	group.Post("/players", h.HandleJoin)
	group.Get("/players/:name/inventory", h.HandleInventory)
}

func queryCoord(c *fiber.Ctx) world.Coord {
	return world.Coord{
		World: c.Query("world"),
		X:     utils.ToInt(c.Query("x")),
		Y:     utils.ToInt(c.Query("y")),
		Z:     utils.ToInt(c.Query("z")),
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleList returns tracked generators.
// @Summary List Generators
// @Description List tracked generators ordered by world and coordinate.
// @Tags generators
// @Produce json
// @Param world query string false "World filter"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} generator.Entry "Generators"
// @Router /generators [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.Generators(c.Query("world"), utils.ToInt(c.Query("limit"))))
}

// HandleTypes returns the generator types and their palettes.
// @Summary List Generator Types
// @Tags generators
// @Produce json
// @Success 200 {array} admin.TypeInfo "Types"
// @Router /generators/types [get]
func (h *Handler) HandleTypes(c *fiber.Ctx) error {
	return c.JSON(h.service.Types())
}

// HandleLookup returns the generator at a coordinate.
// @Summary Lookup Generator
// @Tags generators
// @Produce json
// @Param world query string true "World"
// @Param x query int true "X"
// @Param y query int true "Y"
// @Param z query int true "Z"
// @Success 200 {object} generator.Entry "Generator"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /generators/lookup [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	entry, err := h.service.Lookup(queryCoord(c))
	if errors.Is(err, generator.ErrNotTracked) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(entry)
}

// HandleBlock returns the material at a coordinate.
// @Summary Get Block
// @Tags world
// @Produce json
// @Param world query string true "World"
// @Param x query int true "X"
// @Param y query int true "Y"
// @Param z query int true "Z"
// @Success 200 {object} map[string]string "Material"
// @Router /generators/block [get]
func (h *Handler) HandleBlock(c *fiber.Ctx) error {
	coord := queryCoord(c)
	return c.JSON(fiber.Map{
		"coord":    coord,
		"material": h.service.Block(coord),
	})
}

// HandlePlace ingests a placement event.
// @Summary Place Block
// @Description Place a block; marker items tagged with a known type become generators.
// @Tags events
// @Accept json
// @Produce json
// @Param request body admin.PlaceRequest true "Placement"
// @Success 200 {object} generator.Outcome "Outcome"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "World Not Loaded"
// @Router /generators/place [post]
func (h *Handler) HandlePlace(c *fiber.Ctx) error {
	var req PlaceRequest
	if err := h.validator.Decode(SchemaPlace, c.Body(), &req); err != nil {
		return badRequest(c, err)
	}
	out, err := h.service.Place(c.UserContext(), req)
	if err != nil {
		return h.eventError(c, err)
	}
	return c.JSON(out)
}

// HandleBreak ingests a break event. The intent query flag is an alternative
// to the body field.
// @Summary Break Block
// @Tags events
// @Accept json
// @Produce json
// @Param request body admin.BreakRequest true "Break"
// @Param intent query bool false "Intent signal"
// @Success 200 {object} generator.Outcome "Outcome"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "World Not Loaded"
// @Router /generators/break [post]
func (h *Handler) HandleBreak(c *fiber.Ctx) error {
	var req BreakRequest
	if err := h.validator.Decode(SchemaBreak, c.Body(), &req); err != nil {
		return badRequest(c, err)
	}
	if utils.ToBool(c.Query("intent")) {
		req.Intent = true
	}
	out, err := h.service.Break(c.UserContext(), req)
	if err != nil {
		return h.eventError(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) eventError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrWorldNotLoaded) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	logger.WithRayID(h.logger, c).Error("Event handling failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleReconcile runs one reconciliation pass.
// @Summary Reconcile
// @Tags generators
// @Produce json
// @Success 200 {object} generator.PassReport "Report"
// @Router /generators/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	rep := h.service.Reconcile(c.UserContext())
	logger.WithRayID(h.logger, c).Info("Reconciliation pass requested",
		zap.Int("checked", rep.Checked),
		zap.Int("purged", rep.Purged),
		zap.Int("regenerated", rep.Regenerated),
	)
	return c.JSON(rep)
}

// HandleLoadWorld loads a world and restores its deferred generators.
// @Summary Load World
// @Tags world
// @Produce json
// @Param name path string true "World name"
// @Success 200 {object} generator.RestoreReport "Report"
// @Router /generators/worlds/{name}/load [post]
func (h *Handler) HandleLoadWorld(c *fiber.Ctx) error {
	return c.JSON(h.service.LoadWorld(c.Params("name")))
}

type joinRequest struct {
	Name string `json:"name"`
}

// HandleJoin marks a player online.
// @Summary Join Player
// @Tags players
// @Accept json
// @Param request body map[string]string true "Player name"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /generators/players [post]
func (h *Handler) HandleJoin(c *fiber.Ctx) error {
	var req joinRequest
	if err := h.validator.Decode(SchemaPlayer, c.Body(), &req); err != nil {
		return badRequest(c, err)
	}
	h.service.Join(req.Name)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleInventory returns the items a player holds.
// @Summary Player Inventory
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {array} generator.Item "Items"
// @Router /generators/players/{name}/inventory [get]
func (h *Handler) HandleInventory(c *fiber.Ctx) error {
	items := h.service.Inventory(c.Params("name"))
	if items == nil {
		items = []generator.Item{}
	}
	return c.JSON(items)
}

type commandRequest struct {
	Args []string `json:"args"`
}

// HandleCommand runs the blocksgen command.
// @Summary Run Command
// @Tags commands
// @Accept json
// @Produce json
// @Param request body map[string][]string true "Arguments"
// @Success 200 {object} command.Result "Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /generators/command [post]
func (h *Handler) HandleCommand(c *fiber.Ctx) error {
	var req commandRequest
	if err := h.validator.Decode(SchemaCommand, c.Body(), &req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(h.service.Command(req.Args))
}

// HandleComplete returns tab completions for a partial command line.
// @Summary Complete Command
// @Tags commands
// @Produce json
// @Param line query string true "Arguments typed so far, space separated"
// @Success 200 {array} string "Candidates"
// @Router /generators/complete [get]
func (h *Handler) HandleComplete(c *fiber.Ctx) error {
	return c.JSON(h.service.Complete(strings.Split(c.Query("line"), " ")))
}
