package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndpointHost(t *testing.T) {
	assert.Equal(t, "localhost:9000", endpointHost("http://localhost:9000"))
	assert.Equal(t, "s3.amazonaws.com", endpointHost("https://s3.amazonaws.com"))
	assert.Equal(t, "minio:9000", endpointHost("minio:9000"))
}

func TestNewTransport(t *testing.T) {
	tr := newTransport(5 * time.Second)
	assert.Equal(t, 5*time.Second, tr.TLSHandshakeTimeout)
	assert.Equal(t, 5*time.Second, tr.ResponseHeaderTimeout)
}
