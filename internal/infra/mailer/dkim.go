package mailer

import (
	"bytes"
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"os"
	"strings"

	"coachdesk/internal/pkg/config"
	"coachdesk/internal/pkg/errs"

	msgauthdkim "github.com/emersion/go-msgauth/dkim"
)

var signedHeaders = []string{
	"from",
	"to",
	"subject",
	"date",
	"message-id",
	"mime-version",
	"content-type",
}

// DKIMSigner signs outgoing SMTP messages. A nil signer leaves messages as-is.
type DKIMSigner struct {
	domain   string
	selector string
	key      crypto.Signer
}

// LoadDKIMSigner returns nil when no DKIM_* setting is present.
func LoadDKIMSigner(cfg config.MailConfig) (*DKIMSigner, error) {
	selector := strings.TrimSpace(cfg.DKIMSelector)
	keyPath := strings.TrimSpace(cfg.DKIMKeyPath)
	domain := strings.ToLower(strings.TrimSpace(cfg.DKIMDomain))

	if selector == "" && keyPath == "" && domain == "" {
		return nil, nil
	}
	if selector == "" || keyPath == "" {
		return nil, errs.New("DKIM_SELECTOR and DKIM_KEY_PATH are both required to enable DKIM")
	}

	pemData, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read DKIM private key")
	}
	key, err := parsePrivateKey(pemData)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse DKIM private key")
	}

	return &DKIMSigner{domain: domain, selector: selector, key: key}, nil
}

// Sign prepends a DKIM-Signature header. The signing domain defaults to the
// domain of fromAddress.
func (s *DKIMSigner) Sign(message []byte, fromAddress string) ([]byte, error) {
	if s == nil {
		return message, nil
	}

	domain := s.domain
	if domain == "" {
		if i := strings.LastIndex(fromAddress, "@"); i >= 0 {
			domain = strings.ToLower(fromAddress[i+1:])
		}
	}
	if domain == "" {
		return nil, errs.New("unable to determine DKIM signing domain")
	}

	opts := &msgauthdkim.SignOptions{
		Domain:                 domain,
		Selector:               s.selector,
		Signer:                 s.key,
		HeaderCanonicalization: msgauthdkim.CanonicalizationRelaxed,
		BodyCanonicalization:   msgauthdkim.CanonicalizationRelaxed,
		HeaderKeys:             signedHeaders,
	}

	var signed bytes.Buffer
	if err := msgauthdkim.Sign(&signed, bytes.NewReader(message), opts); err != nil {
		return nil, errs.Wrap(err, "dkim signing failed")
	}
	return signed.Bytes(), nil
}

func parsePrivateKey(pemData []byte) (crypto.Signer, error) {
	for {
		block, rest := pem.Decode(pemData)
		if block == nil {
			return nil, errs.New("no private key found in PEM data")
		}
		switch block.Type {
		case "RSA PRIVATE KEY":
			key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
			if err != nil {
				return nil, err
			}
			return key, nil
		case "PRIVATE KEY":
			key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
			if err != nil {
				return nil, err
			}
			signer, ok := key.(crypto.Signer)
			if !ok {
				return nil, errs.New("unsupported private key type in PKCS#8 container")
			}
			return signer, nil
		}
		pemData = rest
	}
}
