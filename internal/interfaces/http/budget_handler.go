package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/budgets"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
)

// BudgetHandler maneja las peticiones HTTP para presupuestos y sus partidas
// (protegido).
type BudgetHandler struct {
	uc *budgets.LineUseCase
}

// NewBudgetHandler construye el handler.
func NewBudgetHandler(uc *budgets.LineUseCase) *BudgetHandler {
	return &BudgetHandler{uc: uc}
}

// Create godoc
// @Summary      Crear presupuesto (nace en borrador)
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBudgetRequest  true  "Datos del presupuesto"
// @Success      201   {object}  dto.BudgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/budgets [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.CreateBudget(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener presupuesto por ID
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del presupuesto"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id} [get]
func (h *BudgetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetBudget(c.Params("id"))
	if err != nil {
		return h.budgetError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado del presupuesto
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del presupuesto"
// @Param        body  body  dto.UpdateBudgetStatusRequest  true  "Estado destino"
// @Success      200   {object}  dto.BudgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/status [post]
func (h *BudgetHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateBudgetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetBudgetStatus(c.Params("id"), in.Status)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		}
		return h.budgetError(c, err)
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar partida al presupuesto
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del presupuesto"
// @Param        body  body  dto.AddLineRequest  true  "Datos de la partida"
// @Success      201   {object}  dto.LineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/lines [post]
func (h *BudgetHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ConceptID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "concept_id es requerido"})
	}
	out, err := h.uc.AddLine(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_PARTIDA", Message: "el número de partida ya está tomado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la partida inválidos"})
		}
		return h.budgetError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddFromConcept godoc
// @Summary      Agregar partida desde un concepto con precio resuelto
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID del presupuesto"
// @Param        concept_id  path   string  true   "ID del concepto"
// @Param        region      query  string  false  "Región (por defecto la del presupuesto)"
// @Success      201  {object}  dto.LineWithSourceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/lines/from-concept/{concept_id} [post]
func (h *BudgetHandler) AddFromConcept(c *fiber.Ctx) error {
	out, err := h.uc.AddFromConcept(c.UserContext(), c.Params("id"), c.Params("concept_id"), c.Query("region"))
	if err != nil {
		return h.budgetError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLines godoc
// @Summary      Listar partidas del presupuesto en orden de despliegue
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del presupuesto"
// @Success      200  {object}  dto.LineListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/lines [get]
func (h *BudgetHandler) ListLines(c *fiber.Ctx) error {
	out, err := h.uc.ListLines(c.Params("id"))
	if err != nil {
		return h.budgetError(c, err)
	}
	return c.JSON(out)
}

// UpdateLine godoc
// @Summary      Actualizar partida (partida_number inmutable)
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        line_id  path  string  true  "ID de la partida"
// @Param        body     body  dto.UpdateLineRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.LineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/budget-lines/{line_id} [put]
func (h *BudgetHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateLine(c.Params("line_id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la partida inválidos"})
		}
		return h.budgetError(c, err)
	}
	return c.JSON(out)
}

// DeleteLine godoc
// @Summary      Eliminar partida (los números no se reciclan)
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        line_id  path  string  true  "ID de la partida"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/budget-lines/{line_id} [delete]
func (h *BudgetHandler) DeleteLine(c *fiber.Ctx) error {
	if err := h.uc.DeleteLine(c.Params("line_id")); err != nil {
		return h.budgetError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary      Reordenar partidas (re-empaque denso 1..n)
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del presupuesto"
// @Param        body  body  dto.ReorderRequest  true  "Pares partida-orden"
// @Success      200   {object}  dto.LineListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/lines/reorder [post]
func (h *BudgetHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items es requerido"})
	}
	budgetID := c.Params("id")
	if err := h.uc.Reorder(c.UserContext(), budgetID, in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "partidas u órdenes duplicados o ajenos al presupuesto"})
		}
		return h.budgetError(c, err)
	}
	out, err := h.uc.ListLines(budgetID)
	if err != nil {
		return h.budgetError(c, err)
	}
	return c.JSON(out)
}

// budgetError mapea los errores de dominio comunes de presupuestos a HTTP.
func (h *BudgetHandler) budgetError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "presupuesto o partida no encontrados"})
	case domain.ErrNotEditable:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_EDITABLE", Message: "el estado del presupuesto no permite la operación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
