package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/usecase"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
)

// PriceHandler maneja la resolución de precios vigentes y los precios
// unitarios independientes (protegido).
type PriceHandler struct {
	resolver *usecase.PriceResolverUseCase
	prices   *usecase.UnitPriceUseCase
}

// NewPriceHandler construye el handler.
func NewPriceHandler(resolver *usecase.PriceResolverUseCase, prices *usecase.UnitPriceUseCase) *PriceHandler {
	return &PriceHandler{resolver: resolver, prices: prices}
}

// Resolve godoc
// @Summary      Resolver precio vigente de un concepto
// @Description  Cascada: catálogos activos, precios unitarios aprobados y
// @Description  precio de referencia del concepto, en ese orden.
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        concept_id  path   string  true   "ID del concepto"
// @Param        region      query  string  false  "Región (por defecto General)"
// @Param        as_of       query  string  false  "Instante RFC3339 (por defecto ahora)"
// @Success      200  {object}  dto.ResolvePriceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prices/resolve/{concept_id} [get]
func (h *PriceHandler) Resolve(c *fiber.Ctx) error {
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "as_of debe ser RFC3339"})
		}
		asOf = parsed
	}
	out, err := h.resolver.FindCurrentPrice(c.Params("concept_id"), c.Query("region"), asOf)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "concepto no encontrado o sin precio resoluble"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateUnitPrice godoc
// @Summary      Registrar precio unitario independiente (nace pendiente)
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitPriceRequest  true  "Concepto, región y precio"
// @Success      201   {object}  dto.UnitPriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/unit-prices [post]
func (h *PriceHandler) CreateUnitPrice(c *fiber.Ctx) error {
	var in dto.CreateUnitPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ConceptID == "" || in.Region == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "concept_id y region son requeridos"})
	}
	out, err := h.prices.Create(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "concepto no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "precio inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ApproveUnitPrice godoc
// @Summary      Aprobar precio unitario independiente
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del precio unitario"
// @Success      200  {object}  dto.UnitPriceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/unit-prices/{id}/approve [post]
func (h *PriceHandler) ApproveUnitPrice(c *fiber.Ctx) error {
	out, err := h.prices.Approve(c.Params("id"), GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "precio unitario no encontrado"})
		}
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_PENDING", Message: "el precio no está pendiente de aprobación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
