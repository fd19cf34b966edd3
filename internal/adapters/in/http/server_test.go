package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handlers adapter.Handlers, cronSecret string) *echo.Echo {
	t.Helper()

	e := echo.New()
	adapter.NewServer(handlers, cronSecret).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "secret")

	rec := doJSON(e, nethttp.MethodGet, "/health", "", nil)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
}

func TestCronRoutesRequireBearerSecret(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "s3cret")

	tests := []struct {
		name   string
		header map[string]string
	}{
		{name: "missing header", header: nil},
		{name: "wrong secret", header: map[string]string{"Authorization": "Bearer nope"}},
		{name: "missing bearer prefix", header: map[string]string{"Authorization": "s3cret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, nethttp.MethodPost, "/api/cron/check-sla", "", tt.header)

			assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["ok"])
			assert.Equal(t, "Unauthorized", body["message"])
		})
	}
}

func TestCronEmptySecretRejectsEverything(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "")

	rec := doJSON(e, nethttp.MethodGet, "/api/cron/stats", "", map[string]string{
		"Authorization": "Bearer ",
	})

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestOutboundScanRejectsMalformedBody(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "secret")

	rec := doJSON(e, nethttp.MethodPost, "/api/scan/outbound", `{"trackingNumber":`, nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestOutboundScanRejectsEmptyTrackingNumber(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "secret")

	rec := doJSON(e, nethttp.MethodPost, "/api/scan/outbound", `{"trackingNumber":"   "}`, nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
}

func TestUpdateParcelStatusRejectsBadID(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "secret")

	rec := doJSON(e, nethttp.MethodPatch, "/api/parcels/not-a-uuid/status", `{"status":"DELIVERED"}`, nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestUpdateParcelStatusRejectsUnknownStatus(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "secret")

	target := "/api/parcels/" + kernel.NewUUID().String() + "/status"
	rec := doJSON(e, nethttp.MethodPatch, target, `{"status":"TELEPORTED"}`, nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestGetParcelsRejectsUnknownStatusFilter(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "secret")

	rec := doJSON(e, nethttp.MethodGet, "/api/parcels?status=NOPE", "", nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestBulkUpdateRejectsEmptyBatch(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "secret")

	rec := doJSON(e, nethttp.MethodPost, "/api/parcels/bulk-update", `{"updates":[]}`, nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestCarrierAccountCreateRejectsBadCarrierID(t *testing.T) {
	e := newTestServer(t, adapter.Handlers{}, "secret")

	rec := doJSON(e, nethttp.MethodPost, "/api/carrier-accounts",
		`{"carrierId":"oops","accountName":"main","baseUrl":"https://x","externalId":"1","apiKey":"k"}`, nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestReturnScanUnknownParcelIsNotFound(t *testing.T) {
	handlers := adapter.Handlers{
		RecordReturnScan: commands.NewRecordReturnScanCommandHandler(stubReturnUoWFactory{}),
	}
	e := newTestServer(t, handlers, "secret")

	rec := doJSON(e, nethttp.MethodPost, "/api/scan/return", `{"trackingNumber":"123456789"}`, nil)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["message"], "123456789")
}

// stubReturnUoWFactory backs a return scan with an empty parcel store so the
// handler exercises the not-found path without a database.
type stubReturnUoWFactory struct{}

func (stubReturnUoWFactory) Create() commands.ReturnUoW {
	return stubReturnUoW{}
}

type stubReturnUoW struct{}

func (stubReturnUoW) Begin(context.Context) error    { return nil }
func (stubReturnUoW) Commit(context.Context) error   { return nil }
func (stubReturnUoW) Rollback(context.Context) error { return nil }

func (stubReturnUoW) ParcelRepository() ports.ParcelRepository {
	return emptyParcelRepository{}
}

func (stubReturnUoW) ParcelEventRepository() ports.ParcelEventRepository {
	return nopEventRepository{}
}

func (stubReturnUoW) ReturnIntakeRepository() ports.ReturnIntakeRepository {
	return nopReturnRepository{}
}

type emptyParcelRepository struct{}

func (emptyParcelRepository) Add(context.Context, *parcel.Parcel) error    { return nil }
func (emptyParcelRepository) Update(context.Context, *parcel.Parcel) error { return nil }

func (emptyParcelRepository) Get(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return nil, errs.NewObjectNotFoundError("parcelID", id.String())
}

func (emptyParcelRepository) GetForUpdate(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return nil, errs.NewObjectNotFoundError("parcelID", id.String())
}

func (emptyParcelRepository) GetByTrackingNumber(
	_ context.Context, trackingNumber kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
}

func (emptyParcelRepository) GetByTrackingNumberForUpdate(
	_ context.Context, trackingNumber kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
}

func (emptyParcelRepository) GetEscalatable(context.Context, time.Time) ([]*parcel.Parcel, error) {
	return nil, nil
}

func (emptyParcelRepository) CountByCarrier(context.Context, kernel.UUID) (int64, error) {
	return 0, nil
}

type nopEventRepository struct{}

func (nopEventRepository) Add(context.Context, *parcel.Event) error { return nil }

type nopReturnRepository struct{}

func (nopReturnRepository) Add(context.Context, *parcel.ReturnIntake) error { return nil }
