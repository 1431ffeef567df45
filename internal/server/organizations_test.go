package server

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/smallbiznis/console/internal/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52}

func TestGetOrganization(t *testing.T) {
	ts := newTestServer(t)
	ts.organizations.names["org_1"] = "Acme"

	resp := ts.do(http.MethodGet, "/api/organizations/org_1", "valid-cookie")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"id":"org_1","name":"Acme"}}`, resp.Body.String())
}

func TestGetOrganizationUnknown(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(http.MethodGet, "/api/organizations/org_missing", "valid-cookie")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"id":"org_missing","name":"Unknown"}}`, resp.Body.String())
}

func TestGetOrganizationFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.organizations.err = errors.New("deadline exceeded")

	resp := ts.do(http.MethodGet, "/api/organizations/org_1", "valid-cookie")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, CodeInternal, decodeEnvelope(t, resp).Error.Code)
	assert.NotContains(t, resp.Body.String(), "deadline")
}

func TestGetOrganizationLogo(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "organizations", "org_1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "organizations", "org_1", "logo"), pngHeader, 0o644))

	ts := newTestServer(t)
	ts.blobs.store = blobstore.NewLocal(root)

	resp := ts.do(http.MethodGet, "/api/organizations/org_1/logo", "valid-cookie")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.Equal(t, pngHeader, resp.Body.Bytes())
}

func TestGetOrganizationLogoMissing(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(http.MethodGet, "/api/organizations/org_1/logo", "valid-cookie")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, CodeNotFound, decodeEnvelope(t, resp).Error.Code)
}

func TestGetOrganizationLogoStorageFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.blobs.err = blobstore.ErrNoBucket

	resp := ts.do(http.MethodGet, "/api/organizations/org_1/logo", "valid-cookie")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, CodeInternal, decodeEnvelope(t, resp).Error.Code)
}
