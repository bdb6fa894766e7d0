package netsec

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func selfSignedPEM(t *testing.T, cn string) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: cn},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func writeBundle(t *testing.T, parts ...[]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cert.pem")
	var data []byte
	for _, p := range parts {
		data = append(data, p...)
	}
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadTrustBundle(t *testing.T) {
	path := writeBundle(t,
		selfSignedPEM(t, "vettura root 1"),
		selfSignedPEM(t, "vettura root 2"))

	cfg, err := LoadTrustBundle(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.CertCount())
}

func TestLoadTrustBundleSkipsNonCertificateBlocks(t *testing.T) {
	junk := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: []byte("not a cert")})
	path := writeBundle(t, junk, selfSignedPEM(t, "vettura root"))

	cfg, err := LoadTrustBundle(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.CertCount())
}

func TestLoadTrustBundleMissingFailsClosed(t *testing.T) {
	cfg, err := LoadTrustBundle(filepath.Join(t.TempDir(), "missing.pem"))

	require.Error(t, err)
	require.NotNil(t, cfg)
	require.Zero(t, cfg.CertCount())

	// The empty pool is still installed so verification fails closed
	tlsCfg := cfg.TLSConfig()
	require.NotNil(t, tlsCfg.RootCAs)
	require.Empty(t, tlsCfg.RootCAs.Subjects())
}

func TestLoadTrustBundleEmptyFile(t *testing.T) {
	path := writeBundle(t, []byte("no pem data here"))

	cfg, err := LoadTrustBundle(path)
	require.Error(t, err)
	require.Zero(t, cfg.CertCount())
}

func TestTLSConfigReplacesSystemRoots(t *testing.T) {
	path := writeBundle(t, selfSignedPEM(t, "vettura root"))

	cfg, err := LoadTrustBundle(path)
	require.NoError(t, err)

	tlsCfg := cfg.TLSConfig()
	require.NotNil(t, tlsCfg.RootCAs)
	require.Len(t, tlsCfg.RootCAs.Subjects(), 1)
	require.GreaterOrEqual(t, tlsCfg.MinVersion, uint16(tls.VersionTLS12))
}

func TestHTTPClientUsesBundle(t *testing.T) {
	path := writeBundle(t, selfSignedPEM(t, "vettura root"))

	cfg, err := LoadTrustBundle(path)
	require.NoError(t, err)

	client := cfg.HTTPClient(5 * time.Second)
	require.Equal(t, 5*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig.RootCAs)
}
