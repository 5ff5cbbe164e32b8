package budgets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/dto"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/budget"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/repository"
)

// LineUseCase gestor de partidas de presupuesto: alta con numeración
// derivada, edición y borrado con candado de edición, y reordenamiento
// transaccional.
type LineUseCase struct {
	budgetRepo  repository.BudgetRepository
	lineRepo    repository.BudgetLineRepository
	conceptRepo repository.ConceptRepository
	resolver    PriceResolver
	txRunner    TxRunner
}

// NewLineUseCase construye el caso de uso.
func NewLineUseCase(
	budgetRepo repository.BudgetRepository,
	lineRepo repository.BudgetLineRepository,
	conceptRepo repository.ConceptRepository,
	resolver PriceResolver,
	txRunner TxRunner,
) *LineUseCase {
	return &LineUseCase{
		budgetRepo:  budgetRepo,
		lineRepo:    lineRepo,
		conceptRepo: conceptRepo,
		resolver:    resolver,
		txRunner:    txRunner,
	}
}

// CreateBudget crea un presupuesto en borrador (portador del candado de
// edición de sus partidas).
func (uc *LineUseCase) CreateBudget(actorID string, in dto.CreateBudgetRequest) (*dto.BudgetResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	b := &entity.Budget{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ClientID:  in.ClientID,
		Region:    in.Region,
		Status:    string(budget.StatusDraft),
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.budgetRepo.Create(b); err != nil {
		return nil, err
	}
	return toBudgetResponse(b), nil
}

// GetBudget obtiene un presupuesto por ID.
func (uc *LineUseCase) GetBudget(id string) (*dto.BudgetResponse, error) {
	b, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBudgetResponse(b), nil
}

// SetBudgetStatus cambia el estado del presupuesto. El flujo de aprobación
// completo lo lleva la capa administrativa; aquí solo se valida que el valor
// sea conocido.
func (uc *LineUseCase) SetBudgetStatus(id, status string) (*dto.BudgetResponse, error) {
	switch budget.Status(status) {
	case budget.StatusDraft, budget.StatusInReview, budget.StatusApproved, budget.StatusRejected, budget.StatusClosed:
	default:
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	if err := uc.budgetRepo.Update(b); err != nil {
		return nil, err
	}
	return toBudgetResponse(b), nil
}

// editableBudget carga el presupuesto y verifica el candado de edición.
func (uc *LineUseCase) editableBudget(budgetID string) (*entity.Budget, error) {
	b, err := uc.budgetRepo.GetByID(budgetID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !budget.Status(b.Status).IsEditable() {
		return nil, domain.ErrNotEditable
	}
	return b, nil
}

// AddLine agrega una partida. PartidaNumber omitido → max+1 (1 si no hay);
// explícito y tomado → ErrDuplicate. DisplayOrder siempre max+1, nunca se
// reutiliza. Unit se copia del concepto al crear. La derivación corre dentro
// de una transacción; el índice único (budget_id, partida_number) es el
// respaldo ante altas concurrentes.
func (uc *LineUseCase) AddLine(ctx context.Context, budgetID string, in dto.AddLineRequest) (*dto.LineResponse, error) {
	if _, err := uc.editableBudget(budgetID); err != nil {
		return nil, err
	}
	if in.ConceptID == "" || !in.Quantity.IsPositive() || !in.UnitPrice.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.PartidaNumber != nil && *in.PartidaNumber <= 0 {
		return nil, domain.ErrInvalidInput
	}
	concept, err := uc.conceptRepo.GetByID(in.ConceptID)
	if err != nil {
		return nil, err
	}
	if concept == nil {
		return nil, domain.ErrNotFound
	}

	yield := decimal.NewFromInt(1)
	if in.YieldFactor != nil {
		if !in.YieldFactor.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		yield = *in.YieldFactor
	}
	discount := decimal.Zero
	if in.DiscountPercent != nil {
		if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		discount = *in.DiscountPercent
	}

	now := time.Now()
	line := &entity.BudgetLine{
		ID:              uuid.New().String(),
		BudgetID:        budgetID,
		ConceptID:       in.ConceptID,
		CustomCode:      in.CustomCode,
		Unit:            concept.Unit,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		YieldFactor:     yield,
		DiscountPercent: discount,
		IsOptional:      in.IsOptional,
		Group:           in.Group,
		Status:          entity.BudgetLineStatusActive,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.RunBudget(ctx, func(
		_ repository.BudgetRepository,
		lineRepo repository.BudgetLineRepository,
	) error {
		if in.PartidaNumber != nil {
			taken, err := lineRepo.ExistsPartidaNumber(budgetID, *in.PartidaNumber)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrDuplicate
			}
			line.PartidaNumber = *in.PartidaNumber
		} else {
			max, err := lineRepo.MaxPartidaNumber(budgetID)
			if err != nil {
				return err
			}
			line.PartidaNumber = max + 1
		}
		maxOrder, err := lineRepo.MaxDisplayOrder(budgetID)
		if err != nil {
			return err
		}
		line.DisplayOrder = maxOrder + 1
		return lineRepo.Create(line)
	})
	if err != nil {
		return nil, err
	}
	return toLineResponse(line), nil
}

// AddFromConcept agrega una partida a partir de un concepto: cantidad 1 y
// precio sugerido por la resolución. Si no se indica región se usa la del
// presupuesto. Devuelve también la procedencia del precio para que la UI la
// muestre.
func (uc *LineUseCase) AddFromConcept(ctx context.Context, budgetID, conceptID, region string) (*dto.LineWithSourceResponse, error) {
	if conceptID == "" {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.editableBudget(budgetID)
	if err != nil {
		return nil, err
	}
	if region == "" {
		region = b.Region
	}
	resolved, err := uc.resolver.FindCurrentPrice(conceptID, region, time.Now())
	if err != nil {
		return nil, err
	}
	if !resolved.Price.IsPositive() {
		return nil, domain.ErrInvalidInput // el concepto no tiene ningún precio utilizable
	}
	line, err := uc.AddLine(ctx, budgetID, dto.AddLineRequest{
		ConceptID: conceptID,
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: resolved.Price,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LineWithSourceResponse{Line: *line, PriceSource: resolved.Source}, nil
}

// UpdateLine aplica un parche a los campos mutables de la partida. El número
// de partida no se modifica después de creada.
func (uc *LineUseCase) UpdateLine(lineID string, in dto.UpdateLineRequest) (*dto.LineResponse, error) {
	line, err := uc.lineRepo.GetByID(lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.editableBudget(line.BudgetID); err != nil {
		return nil, err
	}
	if in.Quantity != nil {
		if !in.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		line.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if !in.UnitPrice.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		line.UnitPrice = *in.UnitPrice
	}
	if in.YieldFactor != nil {
		if !in.YieldFactor.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		line.YieldFactor = *in.YieldFactor
	}
	if in.DiscountPercent != nil {
		if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		line.DiscountPercent = *in.DiscountPercent
	}
	if in.Status != nil {
		if *in.Status != entity.BudgetLineStatusActive && *in.Status != entity.BudgetLineStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		line.Status = *in.Status
	}
	if in.CustomCode != nil {
		line.CustomCode = *in.CustomCode
	}
	if in.IsOptional != nil {
		line.IsOptional = *in.IsOptional
	}
	if in.Group != nil {
		line.Group = *in.Group
	}
	if in.Notes != nil {
		line.Notes = *in.Notes
	}
	line.UpdatedAt = time.Now()
	if err := uc.lineRepo.Update(line); err != nil {
		return nil, err
	}
	return toLineResponse(line), nil
}

// DeleteLine borra la fila de la partida (borrado físico). No renumera el
// DisplayOrder restante: los huecos son válidos hasta el próximo Reorder.
func (uc *LineUseCase) DeleteLine(lineID string) error {
	line, err := uc.lineRepo.GetByID(lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.editableBudget(line.BudgetID); err != nil {
		return err
	}
	return uc.lineRepo.Delete(lineID)
}

// Reorder aplica el nuevo orden de despliegue en una sola transacción. Antes
// de escribir valida que cada ID pertenezca al presupuesto y que los órdenes
// pedidos no se repitan. Cada partida mencionada queda en la posición
// solicitada (acotada al final si excede el total) y las no mencionadas
// conservan su posición relativa; el resultado final es una secuencia densa
// 1..N sobre todas las partidas.
func (uc *LineUseCase) Reorder(ctx context.Context, budgetID string, in dto.ReorderRequest) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	if _, err := uc.editableBudget(budgetID); err != nil {
		return err
	}
	lines, err := uc.lineRepo.ListByBudget(budgetID)
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.BudgetLine, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
	}

	requested := make(map[string]int, len(in.Items))
	seenOrder := make(map[int]bool, len(in.Items))
	for _, pair := range in.Items {
		if _, ok := byID[pair.LineID]; !ok {
			return domain.ErrInvalidInput // id ajeno al presupuesto
		}
		if _, dup := requested[pair.LineID]; dup {
			return domain.ErrInvalidInput
		}
		if pair.DisplayOrder <= 0 || seenOrder[pair.DisplayOrder] {
			return domain.ErrInvalidInput
		}
		requested[pair.LineID] = pair.DisplayOrder
		seenOrder[pair.DisplayOrder] = true
	}

	// Orden objetivo: las no mencionadas conservan su orden actual y cada
	// partida pedida se inserta en la posición solicitada, de menor a mayor.
	// El resultado se compacta a 1..N.
	final := make([]*entity.BudgetLine, 0, len(lines))
	mentioned := make([]*entity.BudgetLine, 0, len(requested))
	for _, l := range lines {
		if _, ok := requested[l.ID]; ok {
			mentioned = append(mentioned, l)
		} else {
			final = append(final, l)
		}
	}
	sortByRequested(mentioned, requested)
	for _, l := range mentioned {
		at := requested[l.ID] - 1
		if at > len(final) {
			at = len(final)
		}
		final = append(final, nil)
		copy(final[at+1:], final[at:])
		final[at] = l
	}

	return uc.txRunner.RunBudget(ctx, func(
		_ repository.BudgetRepository,
		lineRepo repository.BudgetLineRepository,
	) error {
		for i, l := range final {
			if err := lineRepo.UpdateDisplayOrder(l.ID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListLines devuelve las partidas del presupuesto con importes calculados,
// en orden de despliegue.
func (uc *LineUseCase) ListLines(budgetID string) (*dto.LineListResponse, error) {
	b, err := uc.budgetRepo.GetByID(budgetID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lineRepo.ListByBudget(budgetID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, *toLineResponse(l))
	}
	return &dto.LineListResponse{Items: items}, nil
}

func sortByRequested(lines []*entity.BudgetLine, requested map[string]int) {
	// Inserción: las listas de partidas son cortas y el orden es estable.
	for i := 1; i < len(lines); i++ {
		for j := i; j > 0 && requested[lines[j].ID] < requested[lines[j-1].ID]; j-- {
			lines[j], lines[j-1] = lines[j-1], lines[j]
		}
	}
}

func toBudgetResponse(b *entity.Budget) *dto.BudgetResponse {
	if b == nil {
		return nil
	}
	return &dto.BudgetResponse{
		ID:        b.ID,
		Name:      b.Name,
		ClientID:  b.ClientID,
		Region:    b.Region,
		Status:    b.Status,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toLineResponse(l *entity.BudgetLine) *dto.LineResponse {
	if l == nil {
		return nil
	}
	amounts := budget.ComputeLineAmounts(l.Quantity, l.UnitPrice, l.YieldFactor, l.DiscountPercent)
	return &dto.LineResponse{
		ID:              l.ID,
		BudgetID:        l.BudgetID,
		ConceptID:       l.ConceptID,
		PartidaNumber:   l.PartidaNumber,
		CustomCode:      l.CustomCode,
		Unit:            l.Unit,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		YieldFactor:     l.YieldFactor,
		DiscountPercent: l.DiscountPercent,
		IsOptional:      l.IsOptional,
		Group:           l.Group,
		DisplayOrder:    l.DisplayOrder,
		Status:          l.Status,
		Notes:           l.Notes,
		BaseAmount:      amounts.Base,
		DiscountAmount:  amounts.Discount,
		NetAmount:       amounts.Net,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
