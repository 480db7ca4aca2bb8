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

func TestMembers_List(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodGet, "/api/admin/members", api.Success(200, jsonBody(t, []models.User{
		{ID: "u1", MembershipStatus: models.MembershipActive},
		{ID: "u2", MembershipStatus: models.MembershipPassive},
	})))

	svc := NewMemberService(fc)
	res := svc.List(context.Background())
	require.True(t, res.OK)
	require.Len(t, res.Data, 2)
}

func TestMembers_GetNotFound(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodGet, "/api/admin/members/u9", api.Success(200, jsonBody(t, []models.User{})))

	svc := NewMemberService(fc)
	res := svc.Get(context.Background(), "u9")
	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrNotFound)
}

func TestMembers_SetStatus(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodPost, "/api/admin/members/u1/status",
		api.Success(200, jsonBody(t, models.User{ID: "u1", MembershipStatus: models.MembershipPassive})))

	svc := NewMemberService(fc)
	res := svc.SetStatus(context.Background(), "u1", models.MembershipPassive)
	require.True(t, res.OK)
	assert.Equal(t, models.MembershipPassive, res.Data.MembershipStatus)

	body, ok := fc.Calls[0].Body.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, models.MembershipPassive, body["membership_status"])
}

func TestMembers_SetStatusRejectsUnknown(t *testing.T) {
	fc := newFakeClient()
	svc := NewMemberService(fc)

	res := svc.SetStatus(context.Background(), "u1", "suspended")
	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrValidation)
	assert.Empty(t, fc.Calls)
}
