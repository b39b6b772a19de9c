package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/domain/settlement"
	"claims_settlement/internal/usecase/interfaces"
	mock_interfaces "claims_settlement/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type offerFixture struct {
	repo       *mock_interfaces.MockIOfferRepository
	claims     *mock_interfaces.MockIClaimStore
	locker     *mock_interfaces.MockILocker
	dispatcher *mock_interfaces.MockIPresentationDispatcher
	engine     *settlement.Engine
	now        time.Time
	uc         *OfferUseCase
}

func newOfferFixture(t *testing.T) *offerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &offerFixture{
		repo:       mock_interfaces.NewMockIOfferRepository(ctrl),
		claims:     mock_interfaces.NewMockIClaimStore(ctrl),
		locker:     mock_interfaces.NewMockILocker(ctrl),
		dispatcher: mock_interfaces.NewMockIPresentationDispatcher(ctrl),
		now:        testNow,
	}
	f.engine = settlement.NewEngine(
		settlement.WithClock(func() time.Time { return f.now }),
		settlement.WithIDGenerator(func(prefix string, _ time.Time) string { return prefix + "-1" }),
	)
	f.uc = NewOfferUseCase(f.repo, f.claims, f.locker, f.dispatcher, f.engine)
	return f
}

// expectLock expects one lock on key and reports whether it was released.
func (f *offerFixture) expectLock(key string) *bool {
	released := false
	f.locker.EXPECT().Lock(gomock.Any(), key).Return(func() { released = true }, nil)
	return &released
}

func approvedClaim() entities.ClaimSnapshot {
	return entities.ClaimSnapshot{
		ClaimID:        "CLM-010",
		AssessedAmount: decimal.NewFromInt(100000),
		ClaimType:      "MOTOR",
		ClientName:     "J Doe",
		Status:         entities.ClaimStatusApproved,
	}
}

func createInput() settlement.CreateInput {
	return settlement.CreateInput{
		Deductions:           decimal.NewFromInt(10000),
		ServiceFeePercentage: decimal.NewFromInt(10),
		Terms: entities.OfferTerms{
			PaymentMethod:           entities.PaymentMethodCheque,
			PaymentTimelineDays:     30,
			OfferValidityPeriodDays: 14,
		},
		CreatedBy: "agent-1",
	}
}

func (f *offerFixture) draft(t *testing.T, version int64) entities.SettlementOffer {
	t.Helper()
	o, err := f.engine.Create(approvedClaim(), createInput())
	if err != nil {
		t.Fatalf("unexpected error building draft: %v", err)
	}
	o.Version = version
	return o
}

func (f *offerFixture) approved(t *testing.T) entities.SettlementOffer {
	t.Helper()
	o, err := f.engine.Submit(f.draft(t, 2))
	if err != nil {
		t.Fatalf("unexpected error submitting: %v", err)
	}
	o, err = f.engine.Approve(o, settlement.ApproveInput{ApprovedBy: "manager-1"})
	if err != nil {
		t.Fatalf("unexpected error approving: %v", err)
	}
	return o
}

func TestOfferUseCase_Create(t *testing.T) {
	t.Run("invalid claim id", func(t *testing.T) {
		uc := NewOfferUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "  ", createInput())
		if !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("claim store error", func(t *testing.T) {
		f := newOfferFixture(t)
		f.expectLock("claim:CLM-010")
		f.claims.EXPECT().GetClaim(gomock.Any(), "CLM-010").Return(entities.ClaimSnapshot{}, errors.New("db"))

		_, err := f.uc.Create(context.Background(), "CLM-010", createInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("claim not found", func(t *testing.T) {
		f := newOfferFixture(t)
		f.expectLock("claim:CLM-404")
		f.claims.EXPECT().GetClaim(gomock.Any(), "CLM-404").Return(entities.ClaimSnapshot{}, nil)

		_, err := f.uc.Create(context.Background(), "CLM-404", createInput())
		if !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("claim not approved", func(t *testing.T) {
		f := newOfferFixture(t)
		claim := approvedClaim()
		claim.Status = entities.ClaimStatusInReview
		f.expectLock("claim:CLM-010")
		f.claims.EXPECT().GetClaim(gomock.Any(), "CLM-010").Return(claim, nil)
		f.repo.EXPECT().FindActiveByClaimID(gomock.Any(), "CLM-010").Return(entities.SettlementOffer{}, nil)

		_, err := f.uc.Create(context.Background(), "CLM-010", createInput())
		if !errors.Is(err, settlement.ErrInvalidClaim) {
			t.Fatalf("expected ErrInvalidClaim, got %v", err)
		}
	})

	t.Run("claim already has an active offer", func(t *testing.T) {
		f := newOfferFixture(t)
		f.expectLock("claim:CLM-010")
		f.claims.EXPECT().GetClaim(gomock.Any(), "CLM-010").Return(approvedClaim(), nil)
		f.repo.EXPECT().FindActiveByClaimID(gomock.Any(), "CLM-010").Return(entities.SettlementOffer{ID: "OFF-0", Status: entities.OfferStatusPresented}, nil)

		_, err := f.uc.Create(context.Background(), "CLM-010", createInput())
		if !errors.Is(err, settlement.ErrInvalidClaim) {
			t.Fatalf("expected ErrInvalidClaim, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		f := newOfferFixture(t)
		released := f.expectLock("claim:CLM-010")
		f.claims.EXPECT().GetClaim(gomock.Any(), "CLM-010").Return(approvedClaim(), nil)
		f.repo.EXPECT().FindActiveByClaimID(gomock.Any(), "CLM-010").Return(entities.SettlementOffer{}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SettlementOffer{})).DoAndReturn(
			func(_ context.Context, o entities.SettlementOffer) (entities.SettlementOffer, error) {
				if o.ID != "OFF-1" || o.ClaimID != "CLM-010" || o.Status != entities.OfferStatusDraft || o.Version != 1 {
					t.Fatalf("unexpected offer: %+v", o)
				}
				if !o.Amounts.FinalAmount.Equal(decimal.NewFromInt(80000)) {
					t.Fatalf("expected final amount 80000, got %s", o.Amounts.FinalAmount)
				}
				return o, nil
			},
		)

		res, err := f.uc.Create(context.Background(), " CLM-010 ", createInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "OFF-1" {
			t.Fatalf("expected OFF-1, got %s", res.ID)
		}
		if !*released {
			t.Fatalf("expected claim lock to be released")
		}
	})
}

func TestOfferUseCase_CreateTakenID(t *testing.T) {
	newSequencedFixture := func(t *testing.T) *offerFixture {
		f := newOfferFixture(t)
		seq := 0
		f.engine = settlement.NewEngine(
			settlement.WithClock(func() time.Time { return f.now }),
			settlement.WithIDGenerator(func(prefix string, _ time.Time) string {
				seq++
				return fmt.Sprintf("%s-%d", prefix, seq)
			}),
		)
		f.uc = NewOfferUseCase(f.repo, f.claims, f.locker, f.dispatcher, f.engine)
		f.expectLock("claim:CLM-010")
		f.claims.EXPECT().GetClaim(gomock.Any(), "CLM-010").Return(approvedClaim(), nil)
		f.repo.EXPECT().FindActiveByClaimID(gomock.Any(), "CLM-010").Return(entities.SettlementOffer{}, nil)
		return f
	}

	t.Run("retries with a fresh id", func(t *testing.T) {
		f := newSequencedFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SettlementOffer{}, interfaces.ErrDuplicateOfferID),
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o entities.SettlementOffer) (entities.SettlementOffer, error) {
					return o, nil
				},
			),
		)

		created, err := f.uc.Create(context.Background(), "CLM-010", createInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "OFF-2" {
			t.Fatalf("expected second generated id, got %s", created.ID)
		}
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		f := newSequencedFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SettlementOffer{}, interfaces.ErrDuplicateOfferID).Times(createAttempts)

		_, err := f.uc.Create(context.Background(), "CLM-010", createInput())
		if !errors.Is(err, ErrConcurrentUpdate) || !errors.Is(err, interfaces.ErrDuplicateOfferID) {
			t.Fatalf("expected ErrConcurrentUpdate wrapping ErrDuplicateOfferID, got %v", err)
		}
	})
}

func TestOfferUseCase_Transition(t *testing.T) {
	t.Run("invalid offer id", func(t *testing.T) {
		uc := NewOfferUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOfferID) {
			t.Fatalf("expected ErrInvalidOfferID, got %v", err)
		}
	})

	t.Run("lock held", func(t *testing.T) {
		f := newOfferFixture(t)
		f.locker.EXPECT().Lock(gomock.Any(), "offer:OFF-1").Return(nil, interfaces.ErrLockHeld)

		_, err := f.uc.Submit(context.Background(), "OFF-1")
		if !errors.Is(err, ErrOfferLocked) {
			t.Fatalf("expected ErrOfferLocked, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newOfferFixture(t)
		f.expectLock("offer:OFF-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(entities.SettlementOffer{}, nil)

		_, err := f.uc.Submit(context.Background(), "OFF-1")
		if !errors.Is(err, ErrOfferNotFound) {
			t.Fatalf("expected ErrOfferNotFound, got %v", err)
		}
	})

	t.Run("corrupt stored offer is not transitioned", func(t *testing.T) {
		f := newOfferFixture(t)
		stored := f.draft(t, 1)
		stored.Amounts.FinalAmount = decimal.NewFromInt(1)
		f.expectLock("offer:OFF-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(stored, nil)

		_, err := f.uc.Submit(context.Background(), "OFF-1")
		if !errors.Is(err, settlement.ErrCorruptOffer) {
			t.Fatalf("expected ErrCorruptOffer, got %v", err)
		}
	})

	t.Run("engine rejection is not saved", func(t *testing.T) {
		f := newOfferFixture(t)
		f.expectLock("offer:OFF-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(f.draft(t, 1), nil)

		_, err := f.uc.Approve(context.Background(), "OFF-1", settlement.ApproveInput{ApprovedBy: "manager-1"})
		if !errors.Is(err, settlement.ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		f := newOfferFixture(t)
		f.expectLock("offer:OFF-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(f.draft(t, 3), nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3)).Return(entities.SettlementOffer{}, interfaces.ErrVersionConflict)

		_, err := f.uc.Submit(context.Background(), "OFF-1")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("submit success", func(t *testing.T) {
		f := newOfferFixture(t)
		released := f.expectLock("offer:OFF-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(f.draft(t, 3), nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, o entities.SettlementOffer, _ int64) (entities.SettlementOffer, error) {
				if o.Status != entities.OfferStatusSubmitted || o.Version != 4 || o.SubmittedAt == nil {
					t.Fatalf("unexpected offer: %+v", o)
				}
				return o, nil
			},
		)

		res, err := f.uc.Submit(context.Background(), " OFF-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OfferStatusSubmitted {
			t.Fatalf("expected SUBMITTED got %s", res.Status)
		}
		if !*released {
			t.Fatalf("expected offer lock to be released")
		}
	})

	t.Run("works without a locker", func(t *testing.T) {
		f := newOfferFixture(t)
		uc := NewOfferUseCase(f.repo, f.claims, nil, nil, f.engine)
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(f.draft(t, 1), nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, o entities.SettlementOffer, _ int64) (entities.SettlementOffer, error) {
				return o, nil
			},
		)

		res, err := uc.Cancel(context.Background(), "OFF-1", "duplicate claim")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OfferStatusCancelled || res.CancellationReason != "duplicate claim" {
			t.Fatalf("unexpected offer: %+v", res)
		}
	})
}

func TestOfferUseCase_SetupPresentation(t *testing.T) {
	setup := entities.PresentationSetup{ContactMethod: entities.ContactMethodEmail, SubjectLine: "Your settlement offer"}

	t.Run("dispatches presented offer", func(t *testing.T) {
		f := newOfferFixture(t)
		f.expectLock("offer:OFF-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(f.approved(t), nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.SettlementOffer, _ int64) (entities.SettlementOffer, error) {
				return o, nil
			},
		)
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.AssignableToTypeOf(entities.SettlementOffer{})).DoAndReturn(
			func(_ context.Context, o entities.SettlementOffer) error {
				if o.Status != entities.OfferStatusPresented || o.Presentation == nil {
					t.Fatalf("unexpected dispatched offer: %+v", o)
				}
				return nil
			},
		)

		res, err := f.uc.SetupPresentation(context.Background(), "OFF-1", setup, "agent-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Presentation.DeliveryStatus != entities.DeliveryStatusPending {
			t.Fatalf("expected PENDING delivery, got %s", res.Presentation.DeliveryStatus)
		}
	})

	t.Run("dispatch failure keeps presented offer", func(t *testing.T) {
		f := newOfferFixture(t)
		f.expectLock("offer:OFF-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(f.approved(t), nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.SettlementOffer, _ int64) (entities.SettlementOffer, error) {
				return o, nil
			},
		)
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))

		res, err := f.uc.SetupPresentation(context.Background(), "OFF-1", setup, "agent-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OfferStatusPresented {
			t.Fatalf("expected PRESENTED got %s", res.Status)
		}
	})

	t.Run("expired offer", func(t *testing.T) {
		f := newOfferFixture(t)
		approved := f.approved(t)
		f.now = approved.ExpiresAt.Add(time.Minute)
		f.expectLock("offer:OFF-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-1").Return(approved, nil)

		_, err := f.uc.SetupPresentation(context.Background(), "OFF-1", setup, "agent-1")
		if !errors.Is(err, settlement.ErrOfferExpired) {
			t.Fatalf("expected ErrOfferExpired, got %v", err)
		}
	})
}

func TestOfferUseCase_ExpireDue(t *testing.T) {
	t.Run("expires only offers past their validity", func(t *testing.T) {
		f := newOfferFixture(t)
		due := f.approved(t)
		due.ID = "OFF-DUE"
		f.now = f.now.Add(24 * time.Hour)
		fresh := f.approved(t)
		fresh.ID = "OFF-FRESH"
		f.now = due.ExpiresAt.Add(time.Hour)

		f.repo.EXPECT().ListByStatus(gomock.Any(), entities.OfferStatusApproved).Return([]entities.SettlementOffer{due, fresh}, nil)
		f.repo.EXPECT().ListByStatus(gomock.Any(), entities.OfferStatusPresented).Return(nil, nil)
		f.expectLock("offer:OFF-DUE")
		f.repo.EXPECT().GetByID(gomock.Any(), "OFF-DUE").Return(due, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), due.Version).DoAndReturn(
			func(_ context.Context, o entities.SettlementOffer, _ int64) (entities.SettlementOffer, error) {
				return o, nil
			},
		)

		expired, err := f.uc.ExpireDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expired) != 1 || expired[0].ID != "OFF-DUE" || expired[0].Status != entities.OfferStatusExpired {
			t.Fatalf("unexpected expired offers: %+v", expired)
		}
	})

	t.Run("list error", func(t *testing.T) {
		f := newOfferFixture(t)
		f.repo.EXPECT().ListByStatus(gomock.Any(), entities.OfferStatusApproved).Return(nil, errors.New("db"))

		_, err := f.uc.ExpireDue(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		f := newOfferFixture(t)
		due := f.approved(t)
		f.now = due.ExpiresAt.Add(time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f.repo.EXPECT().ListByStatus(gomock.Any(), entities.OfferStatusApproved).Return([]entities.SettlementOffer{due, due}, nil)

		expired, err := f.uc.ExpireDue(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(expired) != 0 {
			t.Fatalf("expected no expired offers, got %d", len(expired))
		}
	})

	t.Run("skips offers that fail to expire", func(t *testing.T) {
		f := newOfferFixture(t)
		due := f.approved(t)
		f.now = due.ExpiresAt.Add(time.Hour)

		f.repo.EXPECT().ListByStatus(gomock.Any(), entities.OfferStatusApproved).Return([]entities.SettlementOffer{due}, nil)
		f.repo.EXPECT().ListByStatus(gomock.Any(), entities.OfferStatusPresented).Return(nil, nil)
		f.expectLock("offer:" + due.ID)
		f.repo.EXPECT().GetByID(gomock.Any(), due.ID).Return(due, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.SettlementOffer{}, interfaces.ErrVersionConflict)

		expired, err := f.uc.ExpireDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expired) != 0 {
			t.Fatalf("expected no expired offers, got %d", len(expired))
		}
	})
}

func TestOfferUseCase_ListByStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOfferUseCase(nil, nil, nil, nil, nil)
		_, err := uc.ListByStatus(context.Background(), "ARCHIVED")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("normalizes status", func(t *testing.T) {
		f := newOfferFixture(t)
		f.repo.EXPECT().ListByStatus(gomock.Any(), entities.OfferStatusPresented).Return([]entities.SettlementOffer{{ID: "OFF-1"}}, nil)

		res, err := f.uc.ListByStatus(context.Background(), " presented ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 offer, got %d", len(res))
		}
	})
}
