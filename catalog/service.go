// Package catalog implements the validation and workflow rules of the
// product manager on top of a domain.ProductStore: name uniqueness, price
// constraints, category selection and the single-flight edit session.
package catalog

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"productman/domain"
)

// EditSession is the single in-flight edit. At most one session is open
// across the whole application; Add and BeginEdit are rejected while one is.
type EditSession struct {
	product domain.Product
	open    bool
}

// Product returns the record as it was when the session was opened.
func (s *EditSession) Product() domain.Product {
	return s.product
}

// Service enforces the catalog business rules in front of a ProductStore.
// The edit workflow is the state machine Idle -> Editing -> Idle: BeginEdit
// opens the session, CommitEdit and CancelEdit close it, and Add or a second
// BeginEdit while Editing fail immediately with SessionBusy instead of
// queueing.
//
// The Service is not safe for concurrent use: the application is single-user
// and every operation runs to completion before the next one starts. The
// session state is a plain flag, not a lock.
type Service struct {
	store      domain.ProductStore
	categories []string
	log        *zap.Logger
	now        func() time.Time

	session *EditSession
}

// NewService constructs a Service over the given store. categories is the
// externally supplied enumeration of permitted categories; it may be empty,
// in which case every add or edit necessarily fails with MissingCategory.
func NewService(store domain.ProductStore, categories []string, log *zap.Logger) *Service {
	return &Service{
		store:      store,
		categories: categories,
		log:        log,
		now:        time.Now,
	}
}

// Categories returns the permitted category enumeration in its load order.
func (s *Service) Categories() []string {
	return s.categories
}

// HasCategory reports whether name is a member of the enumeration.
func (s *Service) HasCategory(name string) bool {
	for _, c := range s.categories {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks a raw submission. The checks run in a fixed order and the
// first failure wins, so callers get deterministic feedback: name, duplicate,
// price parse, price positivity, category. existingNames enables the
// duplicate-name check; pass nil to skip it.
func (s *Service) Validate(name, price, category string, existingNames []string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewInvalidNameError(name)
	}
	for _, existing := range existingNames {
		if strings.EqualFold(name, existing) {
			return domain.NewDuplicateNameError(name)
		}
	}
	value, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return domain.NewInvalidPriceError(price)
	}
	if value <= 0 {
		return domain.NewNonPositivePriceError(value)
	}
	if category == "" {
		return domain.NewMissingCategoryError()
	}
	return nil
}

// Add validates the raw inputs, with duplicate checking against every
// currently existing name, and persists a new product stamped with the
// current time. Rejected with SessionBusy while an edit session is open.
// On any failure the store is left untouched.
func (s *Service) Add(ctx context.Context, name, price, category string) (domain.Product, error) {
	if s.editing() {
		return domain.Product{}, domain.NewSessionBusyError()
	}

	existing, err := s.store.ListAll(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	names := make([]string, 0, len(existing))
	for _, p := range existing {
		names = append(names, p.Name)
	}

	if err := s.Validate(name, price, category, names); err != nil {
		return domain.Product{}, err
	}
	value, _ := strconv.ParseFloat(price, 64)

	start := time.Now()
	created, err := s.store.Create(ctx, domain.Product{
		Name:        name,
		Price:       value,
		Category:    category,
		CreatedDate: s.now(),
	})
	if err != nil {
		s.log.Error("add failed", zap.String("name", name), zap.Error(err))
		return domain.Product{}, err
	}
	s.log.Info("product added",
		zap.Int64("product_id", created.ID),
		zap.String("name", created.Name),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return created, nil
}

// BeginEdit fetches the product and opens the edit session, moving the
// workflow from Idle to Editing. It fails with SessionBusy if a session is
// already open and with NotFound if the id does not exist.
func (s *Service) BeginEdit(ctx context.Context, id int64) (*EditSession, error) {
	if s.editing() {
		return nil, domain.NewSessionBusyError()
	}
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.session = &EditSession{product: p, open: true}
	return s.session, nil
}

// CommitEdit validates the raw inputs and applies them to the session's
// product. Duplicate checking is disabled: an edit does not re-check name
// collisions against other rows, preserving the historical behavior.
//
// On success the session closes and the updated record is returned. A
// validation failure keeps the session open so the caller may retry or
// cancel. If the row vanished underneath the session the store's NotFound is
// surfaced and the session closes, returning the workflow to Idle.
// Committing a session that is no longer the open one fails with
// InactiveSession.
func (s *Service) CommitEdit(ctx context.Context, session *EditSession, name, price, category string) (domain.Product, error) {
	if err := s.checkActive(session); err != nil {
		return domain.Product{}, err
	}

	if err := s.Validate(name, price, category, nil); err != nil {
		return domain.Product{}, err
	}
	value, _ := strconv.ParseFloat(price, 64)

	id := session.product.ID
	if err := s.store.Update(ctx, id, name, value, category); err != nil {
		if domain.IsNotFoundError(err) {
			s.closeSession()
		}
		s.log.Error("update failed", zap.Int64("product_id", id), zap.Error(err))
		return domain.Product{}, err
	}
	updated := session.product
	updated.Name = name
	updated.Price = value
	updated.Category = category
	s.closeSession()

	s.log.Info("product updated",
		zap.Int64("product_id", id),
		zap.String("name", name),
	)
	return updated, nil
}

// CancelEdit closes the session without persisting anything, returning the
// workflow to Idle. Cancelling an already-closed session is a no-op.
func (s *Service) CancelEdit(session *EditSession) {
	if session == nil || session != s.session {
		return
	}
	s.closeSession()
}

// Remove deletes the product with the given id. When confirmed is false
// nothing is deleted and NeedsConfirmation is returned; the caller must ask
// the user and call Remove again with confirmed true. A missing id yields
// NotFound even in the confirmed call.
func (s *Service) Remove(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.NewNeedsConfirmationError(id)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.log.Error("delete failed", zap.Int64("product_id", id), zap.Error(err))
		return err
	}
	s.log.Info("product deleted", zap.Int64("product_id", id))
	return nil
}

// Get fetches a single product by id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	return s.store.GetByID(ctx, id)
}

// List returns the full catalog ordered by category descending, ties broken
// by ascending id.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.store.ListAll(ctx)
}

func (s *Service) editing() bool {
	return s.session != nil && s.session.open
}

func (s *Service) checkActive(session *EditSession) error {
	if session == nil || session != s.session || !session.open {
		return domain.NewInactiveSessionError()
	}
	return nil
}

func (s *Service) closeSession() {
	if s.session != nil {
		s.session.open = false
	}
	s.session = nil
}
