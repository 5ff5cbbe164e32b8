package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/catalogs"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/catalog"
)

// CatalogHandler maneja las peticiones HTTP para catálogos de precios
// (protegido).
type CatalogHandler struct {
	uc *catalogs.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalogs.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Create godoc
// @Summary      Crear catálogo de precios (nace en borrador)
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCatalogRequest  true  "Datos del catálogo"
// @Success      201   {object}  dto.CatalogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalogs [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Region == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y region son requeridos"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del catálogo inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener catálogo por ID
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del catálogo"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return h.catalogError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogos
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        region  query  string  false  "Región exacta"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CatalogListResponse
// @Router       /api/catalogs [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
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
	out, err := h.uc.List(c.Query("region"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cabecera del catálogo (solo borrador o suspendido)
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del catálogo"
// @Param        body  body  dto.UpdateCatalogRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CatalogResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return h.catalogError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar catálogo (solo borrador)
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del catálogo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return h.catalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transition godoc
// @Summary      Cambiar estado del catálogo
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del catálogo"
// @Param        body  body  dto.TransitionCatalogRequest  true  "Estado destino"
// @Success      200   {object}  dto.CatalogResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id}/status [post]
func (h *CatalogHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transition(c.Params("id"), GetUserID(c), catalog.Status(in.Status))
	if err != nil {
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
		}
		return h.catalogError(c, err)
	}
	return c.JSON(out)
}

// AddEntry godoc
// @Summary      Agregar precio de concepto al catálogo
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del catálogo"
// @Param        body  body  dto.AddCatalogEntryRequest  true  "Concepto, precio y ventana"
// @Success      201   {object}  dto.CatalogEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id}/entries [post]
func (h *CatalogHandler) AddEntry(c *fiber.Ctx) error {
	var in dto.AddCatalogEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ConceptID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "concept_id es requerido"})
	}
	out, err := h.uc.AddEntry(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "precio o ventana de vigencia inválidos"})
		}
		return h.catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEntries godoc
// @Summary      Listar precios del catálogo
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del catálogo"
// @Success      200  {array}   dto.CatalogEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id}/entries [get]
func (h *CatalogHandler) ListEntries(c *fiber.Ctx) error {
	out, err := h.uc.ListEntries(c.Params("id"))
	if err != nil {
		return h.catalogError(c, err)
	}
	return c.JSON(out)
}

// Duplicate godoc
// @Summary      Duplicar catálogo (el clon nace en borrador)
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del catálogo origen"
// @Param        body  body  dto.DuplicateCatalogRequest  true  "Nombre del clon"
// @Success      201   {object}  dto.DuplicateCatalogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id}/duplicate [post]
func (h *CatalogHandler) Duplicate(c *fiber.Ctx) error {
	var in dto.DuplicateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NewName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_name es requerido"})
	}
	out, err := h.uc.Duplicate(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return h.catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ApplyFactor godoc
// @Summary      Actualización masiva de precios por factor
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del catálogo"
// @Param        body  body  dto.ApplyFactorRequest  true  "Factor multiplicador (> 0)"
// @Success      200   {object}  dto.ApplyFactorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id}/apply-factor [post]
func (h *CatalogHandler) ApplyFactor(c *fiber.Ctx) error {
	var in dto.ApplyFactorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ApplyUpdateFactor(c.UserContext(), c.Params("id"), GetUserID(c), in.Factor)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el factor debe ser mayor que cero"})
		}
		return h.catalogError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de precios del catálogo
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del catálogo"
// @Success      200  {object}  dto.CatalogStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id}/stats [get]
func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Statistics(c.Params("id"))
	if err != nil {
		return h.catalogError(c, err)
	}
	return c.JSON(out)
}

// catalogError mapea los errores de dominio comunes de catálogos a HTTP.
func (h *CatalogHandler) catalogError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "catálogo no encontrado"})
	case domain.ErrNotEditable:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_EDITABLE", Message: "el estado del catálogo no permite la operación"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "conflicto con una entrada existente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
