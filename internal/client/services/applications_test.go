package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
	"github.com/bosphorusfellas/clubclient/internal/common"
)

func TestApplications_SubmitRequiresIdentityFields(t *testing.T) {
	fc := newFakeClient()
	svc := NewApplicationService(fc)

	res := svc.Submit(context.Background(), models.NewApplication{FirstName: "Kaan"})
	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrValidation)
	assert.Empty(t, fc.Calls)
}

func TestApplications_Submit(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodPost, "/api/applications", api.Success(201, jsonBody(t, models.Application{
		ID: "a1", Status: models.ApplicationPending,
	})))

	svc := NewApplicationService(fc)
	res := svc.Submit(context.Background(), models.NewApplication{
		FirstName: "Kaan", LastName: "Demir", Email: "kaan@example.com", CarBrand: "Porsche",
	})
	require.True(t, res.OK)
	assert.Equal(t, models.ApplicationPending, res.Data.Status)
	assert.False(t, res.Data.Decided())
}

func TestApplications_ListWithStatusFilter(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodGet, "/api/admin/applications?status=pending",
		api.Success(200, jsonBody(t, []models.Application{{ID: "a1"}})))

	svc := NewApplicationService(fc)
	res := svc.List(context.Background(), models.ApplicationPending)
	require.True(t, res.OK)
	require.Len(t, res.Data, 1)
}

func TestApplications_ListRejectsUnknownStatus(t *testing.T) {
	fc := newFakeClient()
	svc := NewApplicationService(fc)

	res := svc.List(context.Background(), "archived")
	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrValidation)
	assert.Empty(t, fc.Calls)
}

func TestApplications_ApproveSendsDecision(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodPost, "/api/admin/applications/a1/decision",
		api.Success(200, jsonBody(t, models.Application{ID: "a1", Status: models.ApplicationApproved})))

	svc := NewApplicationService(fc)
	res := svc.Approve(context.Background(), "a1")
	require.True(t, res.OK)
	assert.True(t, res.Data.Decided())

	body, ok := fc.Calls[0].Body.(models.ApplicationDecision)
	require.True(t, ok)
	assert.Equal(t, models.ApplicationApproved, body.Decision)
	assert.Empty(t, body.RejectionReason)
}

func TestApplications_RejectRequiresReason(t *testing.T) {
	fc := newFakeClient()
	svc := NewApplicationService(fc)

	res := svc.Reject(context.Background(), "a1", "")
	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrValidation)
	assert.Empty(t, fc.Calls)
}

func TestApplications_RejectSendsReason(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodPost, "/api/admin/applications/a1/decision",
		api.Success(200, jsonBody(t, models.Application{ID: "a1", Status: models.ApplicationRejected})))

	svc := NewApplicationService(fc)
	res := svc.Reject(context.Background(), "a1", "incomplete application")
	require.True(t, res.OK)

	body, ok := fc.Calls[0].Body.(models.ApplicationDecision)
	require.True(t, ok)
	assert.Equal(t, models.ApplicationRejected, body.Decision)
	assert.Equal(t, "incomplete application", body.RejectionReason)
}

func TestApplications_SecondDecisionSurfacesServerRejection(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodPost, "/api/admin/applications/a1/decision",
		api.Failure(409, "application already decided"))

	svc := NewApplicationService(fc)
	res := svc.Approve(context.Background(), "a1")
	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrTransport)
	assert.Equal(t, "application already decided", res.ErrorMessage)
}
