package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/usecase"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
)

// ConceptHandler maneja las peticiones HTTP para el árbol de conceptos
// (protegido).
type ConceptHandler struct {
	uc *usecase.ConceptUseCase
}

// NewConceptHandler construye el handler.
func NewConceptHandler(uc *usecase.ConceptUseCase) *ConceptHandler {
	return &ConceptHandler{uc: uc}
}

// Create godoc
// @Summary      Crear concepto de obra
// @Tags         concepts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConceptRequest  true  "Datos del concepto"
// @Success      201   {object}  dto.ConceptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/concepts [post]
func (h *ConceptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConceptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Name == "" || in.Unit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code, name y unit son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicateCode {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "ya existe un concepto activo con ese código"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el concepto padre no existe o no es válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener concepto por ID
// @Tags         concepts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del concepto"
// @Success      200  {object}  dto.ConceptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/concepts/{id} [get]
func (h *ConceptHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "concepto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar conceptos activos
// @Tags         concepts
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Código o nombre (insensible a acentos)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ConceptListResponse
// @Router       /api/concepts [get]
func (h *ConceptHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Query("search"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Conteo de conceptos activos por categoría
// @Tags         concepts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryCountResponse
// @Router       /api/concepts/categories [get]
func (h *ConceptHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar concepto (code inmutable)
// @Tags         concepts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del concepto"
// @Param        body  body  dto.UpdateConceptRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ConceptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/concepts/{id} [put]
func (h *ConceptHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateConceptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "concepto no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "padre inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Obsolete godoc
// @Summary      Marcar concepto como obsoleto
// @Tags         concepts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del concepto"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/concepts/{id} [delete]
func (h *ConceptHandler) Obsolete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Obsolete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "concepto no encontrado"})
		}
		if err == domain.ErrHasChildren {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "HAS_CHILDREN", Message: "el concepto tiene hijos activos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
