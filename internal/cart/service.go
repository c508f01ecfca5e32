package cart

import (
	"context"
	"fmt"

	"atelie-store/internal/cartstore"
	"atelie-store/internal/model"
	"atelie-store/internal/session"

	"github.com/rs/zerolog"
)

// remoteCart is the slice of the backend cart API the service depends on.
// Every call is best-effort: a returned error is logged and discarded, it
// never fails the local operation it accompanies.
type remoteCart interface {
	FetchCart(ctx context.Context, userID string) ([]model.CartItem, error)
	SyncCart(ctx context.Context, userID string, items []model.CartItem) error
	ClearCart(ctx context.Context, userID string) error
}

// Service maintains the shopping cart across guest and authenticated
// sessions: local persistence, best-effort remote synchronisation, and the
// mutation operations the storefront UI calls.
type Service struct {
	store     cartstore.Store
	remote    remoteCart
	session   session.Resolver
	publisher *Publisher
	logger    zerolog.Logger
}

// NewService creates a cart service. remote may be nil for an offline-only
// cart (remote sync is skipped entirely).
func NewService(
	store cartstore.Store,
	remote remoteCart,
	resolver session.Resolver,
	publisher *Publisher,
	logger zerolog.Logger,
) *Service {
	return &Service{
		store:     store,
		remote:    remote,
		session:   resolver,
		publisher: publisher,
		logger:    logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the current cart for the session. The local store is read
// first; for an authenticated user a remote fetch is then attempted, and a
// non-empty remote cart overwrites local state. An empty or unreachable
// remote leaves the local cart authoritative.
func (s *Service) Get(ctx context.Context) []model.CartItem {
	return s.getFor(ctx, s.session.Current())
}

func (s *Service) getFor(ctx context.Context, user *model.User) []model.CartItem {
	partition := cartstore.PartitionFor(user)
	items := s.store.Read(partition)

	if user == nil || s.remote == nil {
		return items
	}

	remoteItems, err := s.remote.FetchCart(ctx, user.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to fetch remote cart")
		return items
	}
	if len(remoteItems) > 0 {
		// Remote wins on read when non-empty; mirror it locally.
		if err := s.store.Write(partition, remoteItems); err != nil {
			s.logger.Warn().Err(err).Str("partition", partition).Msg("failed to mirror remote cart locally")
		}
		return remoteItems
	}
	return items
}

// Save writes the cart to the session partition. The local write is
// unconditional and synchronous; for an authenticated user a remote push is
// attempted afterwards, and its failure is logged and discarded. Observers
// are notified after both.
func (s *Service) Save(ctx context.Context, items []model.CartItem) error {
	return s.saveFor(ctx, s.session.Current(), items)
}

func (s *Service) saveFor(ctx context.Context, user *model.User, items []model.CartItem) error {
	partition := cartstore.PartitionFor(user)
	if err := s.store.Write(partition, items); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	if user != nil && s.remote != nil {
		if err := s.remote.SyncCart(ctx, user.ID, items); err != nil {
			// Best-effort push: local state stays authoritative.
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to sync cart to remote")
		}
	}

	s.publisher.Notify()
	return nil
}

// Add puts quantity units of the product into the cart. If a line with the
// same (product, variant) key exists its quantity is incremented, otherwise
// a new line is appended preserving insertion order. Returns the resulting
// cart.
func (s *Service) Add(ctx context.Context, product model.Product, quantity int, variantID string) ([]model.CartItem, error) {
	items := s.Get(ctx)

	merged := false
	for i := range items {
		if items[i].SameLine(product.ID, variantID) {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{
			ID:        product.ID,
			VariantID: variantID,
			Name:      product.Name,
			Image:     product.DisplayImage(),
			Price:     product.Price,
			Quantity:  quantity,
		})
	}

	if err := s.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops the line matching (productID, variantID). Removing an absent
// line is an idempotent no-op that still persists the (unchanged) list.
func (s *Service) Remove(ctx context.Context, productID, variantID string) ([]model.CartItem, error) {
	items := s.Get(ctx)

	kept := items[:0]
	for _, item := range items {
		if !item.SameLine(productID, variantID) {
			kept = append(kept, item)
		}
	}

	if err := s.Save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// UpdateQuantity sets the quantity of the line matching (productID,
// variantID). A requested quantity below 1 is a no-op: the current list is
// returned unchanged and nothing is persisted.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int, variantID string) ([]model.CartItem, error) {
	items := s.Get(ctx)
	if quantity < 1 {
		return items, nil
	}

	changed := false
	for i := range items {
		if items[i].SameLine(productID, variantID) {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return items, nil
	}

	if err := s.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear removes the session partition and attempts a remote clear for
// authenticated users. Remote failure never fails the caller. Observers are
// notified afterwards.
func (s *Service) Clear(ctx context.Context) error {
	user := s.session.Current()
	partition := cartstore.PartitionFor(user)

	if err := s.store.Delete(partition); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	if user != nil && s.remote != nil {
		if err := s.remote.ClearCart(ctx, user.ID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to clear remote cart")
		}
	}

	s.publisher.Notify()
	return nil
}

// Migrate merges the guest cart into the given user's cart. It runs once
// per login transition: an empty guest cart makes it a no-op, and the guest
// partition is deleted unconditionally at the end so a second call cannot
// double-count quantities. A failed remote push during migration leaves the
// local result correct and is not retried.
func (s *Service) Migrate(ctx context.Context, userID string) error {
	guestItems := s.store.Read(cartstore.GuestPartition)
	if len(guestItems) == 0 {
		return nil
	}

	user := &model.User{ID: userID}
	userItems := s.getFor(ctx, user)

	for _, guestItem := range guestItems {
		merged := false
		for i := range userItems {
			if userItems[i].SameLine(guestItem.ID, guestItem.VariantID) {
				userItems[i].Quantity += guestItem.Quantity
				merged = true
				break
			}
		}
		if !merged {
			userItems = append(userItems, guestItem)
		}
	}

	if err := s.saveFor(ctx, user, userItems); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist migrated cart")
	}

	// Always drop the guest partition, even after a partial failure, so the
	// migration is never re-run on the next login.
	if err := s.store.Delete(cartstore.GuestPartition); err != nil {
		return fmt.Errorf("failed to delete guest cart: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int("guest_items", len(guestItems)).
		Int("merged_items", len(userItems)).
		Msg("guest cart migrated")

	return nil
}
