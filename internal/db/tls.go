package db

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

// LoadTLSConfig reads the CA bundle and client key pair once. Without
// VerifyIdentity the server chain is still checked against the CA, but the
// host name is not, which matches how the managed MySQL certificates are
// issued.
func LoadTLSConfig(cfg config.TLS, host string) (*tls.Config, error) {
	caPEM, err := os.ReadFile(cfg.CAFile)
	if err != nil {
		return nil, fmt.Errorf("read ca file: %w", err)
	}
	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("no certificates found in %s", cfg.CAFile)
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("load client key pair: %w", err)
	}

	serverName := cfg.ServerName
	if serverName == "" {
		serverName = host
	}

	tlsCfg := &tls.Config{
		RootCAs:      roots,
		Certificates: []tls.Certificate{cert},
		ServerName:   serverName,
		MinVersion:   tls.VersionTLS12,
	}
	if !cfg.VerifyIdentity {
		tlsCfg.InsecureSkipVerify = true
		tlsCfg.VerifyConnection = verifyChain(roots)
	}
	return tlsCfg, nil
}

func verifyChain(roots *x509.CertPool) func(tls.ConnectionState) error {
	return func(cs tls.ConnectionState) error {
		if len(cs.PeerCertificates) == 0 {
			return errors.New("server presented no certificate")
		}
		intermediates := x509.NewCertPool()
		for _, c := range cs.PeerCertificates[1:] {
			intermediates.AddCert(c)
		}
		_, err := cs.PeerCertificates[0].Verify(x509.VerifyOptions{
			Roots:         roots,
			Intermediates: intermediates,
		})
		return err
	}
}
