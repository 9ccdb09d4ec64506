package transaction_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santiagopugliese/personal-finances/internal/domain/transaction"
	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

type fakeTransactionRepository struct {
	createFn  func(ctx context.Context, t *transaction.Transaction) error
	updateFn  func(ctx context.Context, t *transaction.Transaction) error
	deleteFn  func(ctx context.Context, id ulid.ULID, userID string) error
	getByIDFn func(ctx context.Context, id ulid.ULID, userID string) (*transaction.Transaction, error)
	getAllFn  func(ctx context.Context, userID string, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error)
}

func (f *fakeTransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, id ulid.ULID, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeTransactionRepository) GetByIDAndUser(ctx context.Context, id ulid.ULID, userID string) (*transaction.Transaction, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTransactionRepository) GetAll(ctx context.Context, userID string, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID, filters, pagination)
	}
	return nil, 0, nil
}

type fakeCategoryChecker struct {
	existsFn func(ctx context.Context, categoryID ulid.ULID, userID string) (bool, error)
}

func (f *fakeCategoryChecker) Exists(ctx context.Context, categoryID ulid.ULID, userID string) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, categoryID, userID)
	}
	return true, nil
}

type fakeRateProvider struct {
	calls        int
	latestSellFn func(ctx context.Context) (decimal.Decimal, bool, error)
}

func (f *fakeRateProvider) LatestSell(ctx context.Context) (decimal.Decimal, bool, error) {
	f.calls++
	if f.latestSellFn != nil {
		return f.latestSellFn(ctx)
	}
	return decimal.Decimal{}, false, nil
}

func withRate(rate string) *fakeRateProvider {
	return &fakeRateProvider{
		latestSellFn: func(ctx context.Context) (decimal.Decimal, bool, error) {
			return decimal.RequireFromString(rate), true, nil
		},
	}
}

func newService(repo *fakeTransactionRepository, categories *fakeCategoryChecker, rates *fakeRateProvider) *transaction.Service {
	return &transaction.Service{
		Repository: repo,
		Categories: categories,
		Rates:      rates,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError %s, got %v", code, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, appErr.Code, appErr.Message)
	}
}

const testUserID = "4f8a3c1e-9b27-4d16-8a5f-2c91d07e6b43"

func baseInput() transaction.CreateInput {
	return transaction.CreateInput{
		Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:     transaction.Expense,
		Amount:   dec("100"),
		Currency: transaction.ARS,
	}
}

func TestServiceCreateTransactionARS(t *testing.T) {
	t.Parallel()

	var created *transaction.Transaction
	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			created = tx
			return nil
		},
	}
	rates := &fakeRateProvider{}
	svc := newService(repo, &fakeCategoryChecker{}, rates)

	input := baseInput()
	input.Amount = dec("1234.56")
	// A client-sent conversion is meaningless for ARS and must be ignored.
	input.AmountARS = decPtr("999999")

	got, err := svc.CreateTransaction(context.Background(), testUserID, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected the repository to receive the record")
	}
	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(dec("1234.56")) {
		t.Fatalf("expected amount_ars 1234.56, got %v", got.AmountARS)
	}
	if rates.calls != 0 {
		t.Fatalf("expected no rate lookup for ARS, got %d calls", rates.calls)
	}
	if got.UserId != testUserID {
		t.Fatalf("expected user %s, got %s", testUserID, got.UserId)
	}
	if pkg.IsEmptyULID(got.Id) {
		t.Fatal("expected a minted id")
	}
}

func TestServiceCreateTransactionUSDConvertsWithLatestRate(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeTransactionRepository{}, &fakeCategoryChecker{}, withRate("1200.50"))

	input := baseInput()
	input.Currency = transaction.USD
	input.Amount = dec("100")

	got, err := svc.CreateTransaction(context.Background(), testUserID, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(dec("120050.00")) {
		t.Fatalf("expected amount_ars 120050.00, got %v", got.AmountARS)
	}
}

func TestServiceCreateTransactionUSDExplicitAmountARS(t *testing.T) {
	t.Parallel()

	rates := &fakeRateProvider{}
	svc := newService(&fakeTransactionRepository{}, &fakeCategoryChecker{}, rates)

	input := baseInput()
	input.Currency = transaction.USD
	input.AmountARS = decPtr("5000")

	got, err := svc.CreateTransaction(context.Background(), testUserID, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(dec("5000")) {
		t.Fatalf("expected amount_ars 5000 verbatim, got %v", got.AmountARS)
	}
	if rates.calls != 0 {
		t.Fatalf("expected no rate lookup with explicit amount_ars, got %d calls", rates.calls)
	}
}

func TestServiceCreateTransactionUSDWithoutRate(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeTransactionRepository{}, &fakeCategoryChecker{}, &fakeRateProvider{})

	input := baseInput()
	input.Currency = transaction.USD

	_, err := svc.CreateTransaction(context.Background(), testUserID, input)
	wantCode(t, err, "RATE_UNAVAILABLE")
}

func TestServiceCreateTransactionValidations(t *testing.T) {
	t.Parallel()

	longDescription := strings.Repeat("a", 501)

	tests := []struct {
		name   string
		mutate func(i *transaction.CreateInput)
	}{
		{
			name:   "missing date",
			mutate: func(i *transaction.CreateInput) { i.Date = time.Time{} },
		},
		{
			name:   "invalid type",
			mutate: func(i *transaction.CreateInput) { i.Type = "transfer" },
		},
		{
			name:   "invalid currency",
			mutate: func(i *transaction.CreateInput) { i.Currency = "EUR" },
		},
		{
			name:   "negative amount",
			mutate: func(i *transaction.CreateInput) { i.Amount = dec("-1") },
		},
		{
			name:   "negative amount_ars",
			mutate: func(i *transaction.CreateInput) { i.AmountARS = decPtr("-0.01") },
		},
		{
			name:   "description too long",
			mutate: func(i *transaction.CreateInput) { i.Description = &longDescription },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(&fakeTransactionRepository{}, &fakeCategoryChecker{}, withRate("1000"))

			input := baseInput()
			tt.mutate(&input)

			_, err := svc.CreateTransaction(context.Background(), testUserID, input)
			wantCode(t, err, "VALIDATION_ERROR")
		})
	}
}

func TestServiceCreateTransactionUnknownCategory(t *testing.T) {
	t.Parallel()

	categories := &fakeCategoryChecker{
		existsFn: func(ctx context.Context, categoryID ulid.ULID, userID string) (bool, error) {
			return false, nil
		},
	}
	svc := newService(&fakeTransactionRepository{}, categories, withRate("1000"))

	categoryID := ulid.Make()
	input := baseInput()
	input.CategoryId = &categoryID

	_, err := svc.CreateTransaction(context.Background(), testUserID, input)
	wantCode(t, err, "INVALID_REFERENCE")
}

func storedUSD() *transaction.Transaction {
	return &transaction.Transaction{
		Id:        ulid.Make(),
		UserId:    testUserID,
		Date:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Type:      transaction.Expense,
		Amount:    dec("100"),
		Currency:  transaction.USD,
		AmountARS: decimal.NewNullDecimal(dec("120000")),
		CreatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func repoHolding(stored *transaction.Transaction) *fakeTransactionRepository {
	return &fakeTransactionRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, userID string) (*transaction.Transaction, error) {
			if id == stored.Id && userID == stored.UserId {
				return stored, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestServiceUpdateTransactionDescriptionOnlyKeepsConversion(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	rates := withRate("1500")
	svc := newService(repoHolding(stored), &fakeCategoryChecker{}, rates)

	note := "cena"
	patch := transaction.Patch{Description: pkg.Some(note)}

	got, err := svc.UpdateTransaction(context.Background(), stored.Id, testUserID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(dec("120000")) {
		t.Fatalf("expected amount_ars untouched at 120000, got %v", got.AmountARS)
	}
	if rates.calls != 0 {
		t.Fatalf("expected no rate lookup, got %d calls", rates.calls)
	}
	if got.Description == nil || *got.Description != note {
		t.Fatalf("expected description %q, got %v", note, got.Description)
	}
}

func TestServiceUpdateTransactionAmountChangeRecomputes(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	svc := newService(repoHolding(stored), &fakeCategoryChecker{}, withRate("1500"))

	patch := transaction.Patch{Amount: decPtr("200")}

	got, err := svc.UpdateTransaction(context.Background(), stored.Id, testUserID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(dec("300000.00")) {
		t.Fatalf("expected amount_ars 300000.00, got %v", got.AmountARS)
	}
}

func TestServiceUpdateTransactionSwitchToARS(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	rates := withRate("1500")
	svc := newService(repoHolding(stored), &fakeCategoryChecker{}, rates)

	currency := transaction.ARS
	patch := transaction.Patch{Currency: &currency}

	got, err := svc.UpdateTransaction(context.Background(), stored.Id, testUserID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(stored.Amount) {
		t.Fatalf("expected amount_ars to mirror amount %v, got %v", stored.Amount, got.AmountARS)
	}
	if rates.calls != 0 {
		t.Fatalf("expected no rate lookup for ARS, got %d calls", rates.calls)
	}
}

func TestServiceUpdateTransactionBackfillsMissingConversion(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	stored.AmountARS = decimal.NullDecimal{}
	svc := newService(repoHolding(stored), &fakeCategoryChecker{}, withRate("1000"))

	note := "viaje"
	patch := transaction.Patch{Description: pkg.Some(note)}

	got, err := svc.UpdateTransaction(context.Background(), stored.Id, testUserID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(dec("100000.00")) {
		t.Fatalf("expected backfilled amount_ars 100000.00, got %v", got.AmountARS)
	}
}

func TestServiceUpdateTransactionExplicitAmountARSWins(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	rates := withRate("1500")
	svc := newService(repoHolding(stored), &fakeCategoryChecker{}, rates)

	patch := transaction.Patch{
		Amount:    decPtr("300"),
		AmountARS: decPtr("123456.78"),
	}

	got, err := svc.UpdateTransaction(context.Background(), stored.Id, testUserID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(dec("123456.78")) {
		t.Fatalf("expected explicit amount_ars 123456.78, got %v", got.AmountARS)
	}
	if rates.calls != 0 {
		t.Fatalf("expected no rate lookup with explicit amount_ars, got %d calls", rates.calls)
	}
}

func TestServiceUpdateTransactionExplicitAmountARSOnly(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	rates := withRate("1500")

	var updated *transaction.Transaction
	repo := repoHolding(stored)
	repo.updateFn = func(ctx context.Context, tx *transaction.Transaction) error {
		updated = tx
		return nil
	}
	svc := newService(repo, &fakeCategoryChecker{}, rates)

	patch := transaction.Patch{AmountARS: decPtr("5000")}

	got, err := svc.UpdateTransaction(context.Background(), stored.Id, testUserID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.AmountARS.Valid || !got.AmountARS.Decimal.Equal(dec("5000")) {
		t.Fatalf("expected stored amount_ars exactly 5000, got %v", got.AmountARS)
	}
	if rates.calls != 0 {
		t.Fatalf("expected no rate lookup with explicit amount_ars, got %d calls", rates.calls)
	}
	if updated == nil || !updated.AmountARS.Decimal.Equal(dec("5000")) {
		t.Fatal("expected the explicit value to reach the repository write")
	}
	if !updated.Amount.Equal(stored.Amount) || updated.Currency != stored.Currency {
		t.Fatal("expected amount and currency untouched")
	}
}

func TestServiceUpdateTransactionClearsCategoryAndDescription(t *testing.T) {
	t.Parallel()

	categoryID := ulid.Make()
	note := "super"
	stored := storedUSD()
	stored.CategoryId = &categoryID
	stored.Description = &note

	var updated *transaction.Transaction
	repo := repoHolding(stored)
	repo.updateFn = func(ctx context.Context, tx *transaction.Transaction) error {
		updated = tx
		return nil
	}
	svc := newService(repo, &fakeCategoryChecker{}, &fakeRateProvider{})

	patch := transaction.Patch{
		CategoryId:  pkg.Null[ulid.ULID](),
		Description: pkg.Null[string](),
	}

	got, err := svc.UpdateTransaction(context.Background(), stored.Id, testUserID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.CategoryId != nil {
		t.Fatalf("expected category cleared, got %v", got.CategoryId)
	}
	if got.Description != nil {
		t.Fatalf("expected description cleared, got %v", got.Description)
	}
	if updated == nil {
		t.Fatal("expected the repository to receive the update")
	}
}

func TestServiceUpdateTransactionInvalidMergedState(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	svc := newService(repoHolding(stored), &fakeCategoryChecker{}, withRate("1000"))

	badType := transaction.Types("transfer")
	patch := transaction.Patch{Type: &badType}

	_, err := svc.UpdateTransaction(context.Background(), stored.Id, testUserID, patch)
	wantCode(t, err, "VALIDATION_ERROR")
}

func TestServiceUpdateTransactionNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeTransactionRepository{}, &fakeCategoryChecker{}, &fakeRateProvider{})

	_, err := svc.UpdateTransaction(context.Background(), ulid.Make(), testUserID, transaction.Patch{})
	wantCode(t, err, appErrors.ErrTransactionNotFound.Code)
}

func TestServiceUpdateTransactionOtherUser(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	svc := newService(repoHolding(stored), &fakeCategoryChecker{}, &fakeRateProvider{})

	_, err := svc.UpdateTransaction(context.Background(), stored.Id, "e7f01f9c-55aa-4cde-9f5b-30d2f8a3c771", transaction.Patch{})
	wantCode(t, err, appErrors.ErrTransactionNotFound.Code)
}

func TestServiceDeleteTransaction(t *testing.T) {
	t.Parallel()

	stored := storedUSD()
	deleted := false
	repo := repoHolding(stored)
	repo.deleteFn = func(ctx context.Context, id ulid.ULID, userID string) error {
		deleted = true
		return nil
	}
	svc := newService(repo, &fakeCategoryChecker{}, &fakeRateProvider{})

	if err := svc.DeleteTransaction(context.Background(), stored.Id, testUserID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected the repository delete to run")
	}
}

func TestServiceDeleteTransactionNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeTransactionRepository{}, &fakeCategoryChecker{}, &fakeRateProvider{})

	err := svc.DeleteTransaction(context.Background(), ulid.Make(), testUserID)
	wantCode(t, err, appErrors.ErrTransactionNotFound.Code)
}

func TestServiceCreateTransactionRepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			return errors.New("connection refused")
		},
	}
	svc := newService(repo, &fakeCategoryChecker{}, &fakeRateProvider{})

	_, err := svc.CreateTransaction(context.Background(), testUserID, baseInput())
	wantCode(t, err, "DATABASE_ERROR")
}
