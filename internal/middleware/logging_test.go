// internal/middleware/logging_test.go
package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRequestDataRedactsSecrets(t *testing.T) {
	body := []byte(`{"title":"Game account","password":"secret1234","refresh_token":"eyJhbGciOi"}`)

	data := auditRequestData("/v1/products", body)
	require.NotNil(t, data)
	assert.Equal(t, "Game account", data["title"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "refresh_token")
}

// Auth request bodies are credentials end to end and must never reach the
// audit trail.
func TestAuditRequestDataSkipsAuthBodies(t *testing.T) {
	for _, path := range []string{
		"/v1/auth/login",
		"/v1/auth/register",
		"/v1/auth/refresh",
		"/v1/auth/check-email",
	} {
		data := auditRequestData(path, []byte(`{"refresh_token":"eyJhbGciOi"}`))
		assert.Nil(t, data, path)
	}
}

func TestAuditRequestDataTolerantOfBadBodies(t *testing.T) {
	assert.Nil(t, auditRequestData("/v1/products", nil))
	assert.Nil(t, auditRequestData("/v1/products", []byte("not json")))
}

func TestExtractResourceType(t *testing.T) {
	assert.Equal(t, "deals", extractResourceType("/v1/deals/7/pay"))
	assert.Equal(t, "products", extractResourceType("/v1/products"))
	assert.Equal(t, "health", extractResourceType("/health"))
}

func TestExtractResourceID(t *testing.T) {
	id := extractResourceID("/v1/deals/7/pay")
	require.NotNil(t, id)
	assert.Equal(t, uint(7), *id)

	assert.Nil(t, extractResourceID("/v1/deals"))
}
