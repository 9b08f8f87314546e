package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventattendance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceController_CreateWorkspace(t *testing.T) {
	fake := &fakeWorkspaceService{ws: &domain.Workspace{ID: "ws-1", Name: "CS Dept", Slug: "cs-dept"}}
	ctrl := NewWorkspaceController(testLogger, fake)

	req := asUser(jsonRequest(http.MethodPost, "/workspaces", `{"name":" CS Dept "}`), "user-1")
	rr := serve("POST /workspaces", ctrl.CreateWorkspace, req)
	require.Equal(t, http.StatusCreated, rr.Code)
	var ws domain.Workspace
	decode(t, rr, &ws)
	assert.Equal(t, "ws-1", ws.ID)
	assert.Equal(t, "user-1", fake.lastUserID)
	assert.Equal(t, "CS Dept", fake.lastName)
	assert.Empty(t, fake.lastSlug)

	rr = serve("POST /workspaces", ctrl.CreateWorkspace, jsonRequest(http.MethodPost, "/workspaces", `{"name":"CS"}`))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	fake.err = domain.ErrDuplicateSlug
	rr = serve("POST /workspaces", ctrl.CreateWorkspace, asUser(jsonRequest(http.MethodPost, "/workspaces", `{"name":"CS","slug":"cs-dept"}`), "user-1"))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestWorkspaceController_ListAndGet(t *testing.T) {
	fake := &fakeWorkspaceService{
		ws:   &domain.Workspace{ID: "ws-1"},
		list: []*domain.Workspace{{ID: "ws-1"}, {ID: "ws-2"}},
	}
	ctrl := NewWorkspaceController(testLogger, fake)

	rr := serve("GET /workspaces", ctrl.ListMyWorkspaces, asUser(httptest.NewRequest(http.MethodGet, "/workspaces", nil), "user-1"))
	require.Equal(t, http.StatusOK, rr.Code)
	var list []domain.Workspace
	decode(t, rr, &list)
	assert.Len(t, list, 2)

	rr = serve("GET /workspaces/{workspaceID}", ctrl.GetWorkspace, asUser(httptest.NewRequest(http.MethodGet, "/workspaces/ws-1", nil), "user-1"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ws-1", fake.lastWorkspace)

	fake.err = domain.ErrNotFound
	rr = serve("GET /workspaces/{workspaceID}", ctrl.GetWorkspace, asUser(httptest.NewRequest(http.MethodGet, "/workspaces/ws-9", nil), "user-1"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWorkspaceController_DeleteWorkspace(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
	}{
		{"creator", nil, http.StatusNoContent},
		{"not creator", domain.ErrForbidden, http.StatusForbidden},
		{"store failure", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeWorkspaceService{err: tt.fakeErr}
			ctrl := NewWorkspaceController(testLogger, fake)
			req := asUser(httptest.NewRequest(http.MethodDelete, "/workspaces/ws-1", nil), "user-1")
			rr := serve("DELETE /workspaces/{workspaceID}", ctrl.DeleteWorkspace, req)
			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "ws-1", fake.lastWorkspace)
			assert.Equal(t, "user-1", fake.lastUserID)
		})
	}
}

func TestWorkspaceController_AddMember(t *testing.T) {
	fake := &fakeWorkspaceService{user: &domain.User{ID: "user-2", Email: "ben@example.com"}}
	ctrl := NewWorkspaceController(testLogger, fake)

	req := asUser(jsonRequest(http.MethodPost, "/workspaces/ws-1/members", `{"email":"ben@example.com"}`), "user-1")
	rr := serve("POST /workspaces/{workspaceID}/members", ctrl.AddMember, req)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "ws-1", fake.lastWorkspace)
	assert.Equal(t, "ben@example.com", fake.lastEmail)

	req = asUser(jsonRequest(http.MethodPost, "/workspaces/ws-1/members", `{"email":"bad"}`), "user-1")
	rr = serve("POST /workspaces/{workspaceID}/members", ctrl.AddMember, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	fake.err = domain.ErrAlreadyMember
	req = asUser(jsonRequest(http.MethodPost, "/workspaces/ws-1/members", `{"email":"ben@example.com"}`), "user-1")
	rr = serve("POST /workspaces/{workspaceID}/members", ctrl.AddMember, req)
	assert.Equal(t, http.StatusConflict, rr.Code)
}
