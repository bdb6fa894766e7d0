// Package netsec builds the trust configuration used for secure
// connections on the Strada head unit.
//
// The head unit operates on a closed network and pins its trust to a
// device-local CA bundle. The bundle replaces, not extends, the
// baseline roots: a connection is accepted only if its chain
// terminates in the bundle. A missing or unreadable bundle therefore
// yields an empty pool and every verified connection fails closed.
package netsec

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"os"
	"time"
)

// TrustConfig carries the CA pool injected into the networking layer
// at startup. It is built once and read-only afterwards.
type TrustConfig struct {
	pool      *x509.CertPool
	certCount int
}

// LoadTrustBundle reads a PEM certificate bundle into a TrustConfig.
// On error the returned config is still usable and holds an empty
// pool so connections fail closed; callers decide how loudly to
// report the error.
func LoadTrustBundle(path string) (*TrustConfig, error) {
	cfg := &TrustConfig{pool: x509.NewCertPool()}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read trust bundle: %w", err)
	}

	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}

		cfg.pool.AddCert(cert)
		cfg.certCount++
	}

	if cfg.certCount == 0 {
		return cfg, fmt.Errorf("trust bundle %s contains no certificates", path)
	}

	return cfg, nil
}

// CertCount returns the number of certificates in the pool.
func (c *TrustConfig) CertCount() int {
	return c.certCount
}

// TLSConfig returns a tls.Config rooted solely in the bundle.
func (c *TrustConfig) TLSConfig() *tls.Config {
	return &tls.Config{
		RootCAs:    c.pool,
		MinVersion: tls.VersionTLS12,
	}
}

// HTTPClient returns a client whose transport trusts only the bundle.
func (c *TrustConfig) HTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: c.TLSConfig(),
		},
	}
}
