package services_test

import (
	"context"
	"errors"
	"testing"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCarrier(t *testing.T, name, kind, value string) *carrier.Carrier {
	t.Helper()
	ruleKind, err := carrier.ParseRuleKind(kind)
	require.NoError(t, err)
	rule, err := carrier.NewMatchRule(ruleKind, value)
	require.NoError(t, err)
	sla, err := carrier.NewSla(10, 20)
	require.NoError(t, err)
	c, err := carrier.NewCarrier(kernel.NewUUID(), name, rule, sla)
	require.NoError(t, err)
	return c
}

func newAccount(t *testing.T, carrierID kernel.UUID, label string) *carrier.Account {
	t.Helper()
	a, err := carrier.NewAccount(
		kernel.NewUUID(), carrierID, label, "https://api.example.com", "ext-"+label, "key-"+label, true)
	require.NoError(t, err)
	return a
}

func trackingNumber(t *testing.T, raw string) kernel.TrackingNumber {
	t.Helper()
	tn, err := kernel.NewTrackingNumber(raw)
	require.NoError(t, err)
	return tn
}

type stubAccounts struct {
	byCarrier map[string][]*carrier.Account
	err       error
}

func (s *stubAccounts) GetEnabledByCarrier(_ context.Context, carrierID kernel.UUID) ([]*carrier.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byCarrier[carrierID.String()], nil
}

type stubClient struct {
	results map[string]carrier.LookupResult
	err     error
	calls   []string
}

func (s *stubClient) Lookup(_ context.Context, account *carrier.Account, _ kernel.TrackingNumber) (carrier.LookupResult, error) {
	s.calls = append(s.calls, account.Label())
	if s.err != nil {
		return carrier.LookupResult{}, s.err
	}
	return s.results[account.Label()], nil
}

func TestCarrierResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("should return no match for non numeric tracking number", func(t *testing.T) {
		resolver := services.NewCarrierResolver(nil)
		c := newCarrier(t, "NineDigits", "LENGTH", "9")

		resolution, err := resolver.Resolve(ctx, trackingNumber(t, "AB1234567"), []*carrier.Carrier{c}, nil)

		require.NoError(t, err)
		assert.Nil(t, resolution)
	})

	t.Run("should return no match when no carrier is configured for the digit count", func(t *testing.T) {
		resolver := services.NewCarrierResolver(nil)
		c := newCarrier(t, "NineDigits", "LENGTH", "9")

		resolution, err := resolver.Resolve(ctx, trackingNumber(t, "12345"), []*carrier.Carrier{c}, nil)

		require.NoError(t, err)
		assert.Nil(t, resolution)
	})

	t.Run("should ignore prefix and regex carriers", func(t *testing.T) {
		resolver := services.NewCarrierResolver(nil)
		prefix := newCarrier(t, "Prefixed", "PREFIX", "123")
		regex := newCarrier(t, "Patterned", "REGEX", `^\d{9}$`)

		resolution, err := resolver.Resolve(
			ctx, trackingNumber(t, "123456789"), []*carrier.Carrier{prefix, regex}, nil)

		require.NoError(t, err)
		assert.Nil(t, resolution)
	})

	t.Run("should fall back to first length match without a client", func(t *testing.T) {
		resolver := services.NewCarrierResolver(nil)
		first := newCarrier(t, "First", "LENGTH", "9")
		second := newCarrier(t, "Second", "LENGTH", "9")

		resolution, err := resolver.Resolve(
			ctx, trackingNumber(t, "123456789"), []*carrier.Carrier{first, second}, nil)

		require.NoError(t, err)
		require.NotNil(t, resolution)
		assert.True(t, resolution.Carrier.IsEqual(first))
		assert.Nil(t, resolution.Account)
		assert.Nil(t, resolution.APIResponse)
	})

	t.Run("should return carrier and account of first successful lookup", func(t *testing.T) {
		c := newCarrier(t, "NineDigits", "LENGTH", "9")
		failing := newAccount(t, c.ID(), "failing")
		working := newAccount(t, c.ID(), "working")

		client := &stubClient{results: map[string]carrier.LookupResult{
			"failing": {Success: false, StatusCode: 500},
			"working": {Success: true, StatusCode: 200, Data: map[string]any{"ville": "Lyon"}},
		}}
		accounts := &stubAccounts{byCarrier: map[string][]*carrier.Account{
			c.ID().String(): {failing, working},
		}}

		resolver := services.NewCarrierResolver(client)
		resolution, err := resolver.Resolve(
			ctx, trackingNumber(t, "123456789"), []*carrier.Carrier{c}, accounts)

		require.NoError(t, err)
		require.NotNil(t, resolution)
		assert.True(t, resolution.Carrier.IsEqual(c))
		assert.Equal(t, "working", resolution.Account.Label())
		assert.Equal(t, map[string]any{"ville": "Lyon"}, resolution.APIResponse)
		assert.Equal(t, []string{"failing", "working"}, client.calls)
	})

	t.Run("should pick later candidate when its lookup succeeds", func(t *testing.T) {
		first := newCarrier(t, "First", "LENGTH", "9")
		second := newCarrier(t, "Second", "LENGTH", "9")
		account := newAccount(t, second.ID(), "confirming")

		client := &stubClient{results: map[string]carrier.LookupResult{
			"confirming": {Success: true, StatusCode: 200},
		}}
		accounts := &stubAccounts{byCarrier: map[string][]*carrier.Account{
			second.ID().String(): {account},
		}}

		resolver := services.NewCarrierResolver(client)
		resolution, err := resolver.Resolve(
			ctx, trackingNumber(t, "123456789"), []*carrier.Carrier{first, second}, accounts)

		require.NoError(t, err)
		require.NotNil(t, resolution)
		assert.True(t, resolution.Carrier.IsEqual(second))
		assert.Equal(t, "confirming", resolution.Account.Label())
	})

	t.Run("should fall back to first match when every lookup fails", func(t *testing.T) {
		c := newCarrier(t, "NineDigits", "LENGTH", "9")
		account := newAccount(t, c.ID(), "broken")

		client := &stubClient{err: errors.New("connection refused")}
		accounts := &stubAccounts{byCarrier: map[string][]*carrier.Account{
			c.ID().String(): {account},
		}}

		resolver := services.NewCarrierResolver(client)
		resolution, err := resolver.Resolve(
			ctx, trackingNumber(t, "123456789"), []*carrier.Carrier{c}, accounts)

		require.NoError(t, err)
		require.NotNil(t, resolution)
		assert.True(t, resolution.Carrier.IsEqual(c))
		assert.Nil(t, resolution.Account)
	})

	t.Run("should fall back when account listing fails", func(t *testing.T) {
		c := newCarrier(t, "NineDigits", "LENGTH", "9")

		client := &stubClient{}
		accounts := &stubAccounts{err: errors.New("database gone")}

		resolver := services.NewCarrierResolver(client)
		resolution, err := resolver.Resolve(
			ctx, trackingNumber(t, "123456789"), []*carrier.Carrier{c}, accounts)

		require.NoError(t, err)
		require.NotNil(t, resolution)
		assert.True(t, resolution.Carrier.IsEqual(c))
		assert.Empty(t, client.calls)
	})
}
