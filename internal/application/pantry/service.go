// Package pantry provides the application layer for inventory
// management. It implements the use cases defined in the inbound ports.
package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/pantry"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// PantryService implements the pantry use cases
type PantryService struct {
	pantryRepo outbound.PantryRepository
	logger     *zap.Logger
}

// NewPantryService creates a new pantry service
func NewPantryService(
	pantryRepo outbound.PantryRepository,
	logger *zap.Logger,
) inbound.PantryService {
	return &PantryService{
		pantryRepo: pantryRepo,
		logger:     logger.Named("pantry-service"),
	}
}

// AddItem stocks an ingredient in the owner's pantry
func (s *PantryService) AddItem(ctx context.Context, cmd inbound.AddItemCommand) (*inbound.PantryItemDTO, error) {
	s.logger.Info("Adding pantry item",
		zap.String("name", cmd.Name),
		zap.String("owner_id", cmd.OwnerID.String()),
	)

	item, err := pantry.NewItem(cmd.OwnerID, cmd.Name, cmd.Quantity, cmd.Unit)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Category != "" {
		if err := item.Categorize(cmd.Category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Notes != "" {
		item.SetNotes(cmd.Notes)
	}
	if cmd.ExpiresAt != nil {
		expiry, err := time.Parse(time.RFC3339, *cmd.ExpiresAt)
		if err != nil {
			return nil, errors.NewValidationError("expires_at must be RFC 3339")
		}
		item.SetExpiry(&expiry)
	}

	if err := s.pantryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("create pantry item", err)
	}

	s.drainEvents(item)
	return s.entityToDTO(item), nil
}

// UpdateItem changes a stocked item
func (s *PantryService) UpdateItem(ctx context.Context, cmd inbound.UpdateItemCommand) (*inbound.PantryItemDTO, error) {
	item, err := s.loadOwned(ctx, cmd.ItemID, cmd.UserID, "update this pantry item")
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := item.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Quantity != nil {
		unit := item.Unit()
		if cmd.Unit != nil {
			unit = *cmd.Unit
		}
		if err := item.SetQuantity(*cmd.Quantity, unit); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Category != nil {
		if err := item.Categorize(*cmd.Category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Notes != nil {
		item.SetNotes(*cmd.Notes)
	}
	if cmd.ExpiresAt != nil {
		if *cmd.ExpiresAt == "" {
			item.SetExpiry(nil)
		} else {
			expiry, err := time.Parse(time.RFC3339, *cmd.ExpiresAt)
			if err != nil {
				return nil, errors.NewValidationError("expires_at must be RFC 3339")
			}
			item.SetExpiry(&expiry)
		}
	}

	if err := s.pantryRepo.Update(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("update pantry item", err)
	}

	s.drainEvents(item)
	return s.entityToDTO(item), nil
}

// RemoveItem takes an ingredient out of the pantry
func (s *PantryService) RemoveItem(ctx context.Context, itemID, userID uuid.UUID) error {
	item, err := s.loadOwned(ctx, itemID, userID, "remove this pantry item")
	if err != nil {
		return err
	}

	item.MarkRemoved()

	if err := s.pantryRepo.Delete(ctx, itemID); err != nil {
		return errors.NewDatabaseError("delete pantry item", err)
	}

	s.drainEvents(item)
	s.logger.Info("Pantry item removed",
		zap.String("item_id", itemID.String()),
		zap.String("name", item.Name()),
	)
	return nil
}

// GetItemByID retrieves a pantry item by ID
func (s *PantryService) GetItemByID(ctx context.Context, itemID uuid.UUID) (*inbound.PantryItemDTO, error) {
	item, err := s.pantryRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry item", err)
	}
	if item == nil {
		return nil, errors.NewPantryItemNotFoundError(itemID.String())
	}
	return s.entityToDTO(item), nil
}

// ListItems returns the owner's full pantry
func (s *PantryService) ListItems(ctx context.Context, userID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	items, err := s.pantryRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry items", err)
	}

	dtos := make([]inbound.PantryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *s.entityToDTO(item))
	}
	return dtos, nil
}

// ListExpired returns items past their expiry date
func (s *PantryService) ListExpired(ctx context.Context, userID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	items, err := s.pantryRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry items", err)
	}

	now := time.Now()
	dtos := make([]inbound.PantryItemDTO, 0)
	for _, item := range items {
		if item.IsExpired(now) {
			dtos = append(dtos, *s.entityToDTO(item))
		}
	}
	return dtos, nil
}

// Helper methods

func (s *PantryService) loadOwned(ctx context.Context, itemID, userID uuid.UUID, action string) (*pantry.Item, error) {
	item, err := s.pantryRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry item", err)
	}
	if item == nil {
		return nil, errors.NewPantryItemNotFoundError(itemID.String())
	}
	if item.OwnerID() != userID {
		return nil, errors.NewInsufficientPermissionsError(action)
	}
	return item, nil
}

func (s *PantryService) drainEvents(item *pantry.Item) {
	for _, event := range item.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

// entityToDTO converts domain entity to DTO
func (s *PantryService) entityToDTO(item *pantry.Item) *inbound.PantryItemDTO {
	dto := &inbound.PantryItemDTO{
		ID:        item.ID(),
		OwnerID:   item.OwnerID(),
		Name:      item.Name(),
		Quantity:  item.Quantity(),
		Unit:      item.Unit(),
		Category:  item.Category(),
		Notes:     item.Notes(),
		CreatedAt: item.CreatedAt().Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt().Format(time.RFC3339),
	}

	if exp := item.ExpiresAt(); exp != nil {
		formatted := exp.Format(time.RFC3339)
		dto.ExpiresAt = &formatted
	}
	return dto
}
