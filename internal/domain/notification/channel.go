package notification

import (
	"net"
	"net/mail"
	"strings"
)

type Provider string

const (
	ProviderSES  Provider = "ses"
	ProviderSMTP Provider = "smtp"
	ProviderLog  Provider = "log"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderSES, ProviderSMTP, ProviderLog:
		return true
	}
	return false
}

// Channel describes the process-wide outbound email channel.
type Channel struct {
	Provider    Provider
	FromAddress string
	FromName    string
	// Endpoint is host:port for smtp; ignored by the other providers.
	Endpoint string
}

func NewChannel(provider, fromAddress, fromName, endpoint string) (Channel, error) {
	ch := Channel{
		Provider:    Provider(strings.ToLower(strings.TrimSpace(provider))),
		FromAddress: strings.TrimSpace(fromAddress),
		FromName:    strings.TrimSpace(fromName),
		Endpoint:    strings.TrimSpace(endpoint),
	}
	if err := ch.Validate(); err != nil {
		return Channel{}, err
	}
	return ch, nil
}

func (c Channel) Validate() error {
	if !c.Provider.Valid() {
		return ErrInvalidProvider
	}
	addr, err := mail.ParseAddress(c.FromAddress)
	if err != nil || addr.Address != c.FromAddress {
		return ErrInvalidFromAddress
	}
	if c.Provider == ProviderSMTP {
		if c.Endpoint == "" {
			return ErrMissingEndpoint
		}
		if _, _, err := net.SplitHostPort(c.Endpoint); err != nil {
			return ErrMissingEndpoint
		}
	}
	return nil
}

// From renders the RFC 5322 From value.
func (c Channel) From() string {
	if c.FromName == "" {
		return c.FromAddress
	}
	return (&mail.Address{Name: c.FromName, Address: c.FromAddress}).String()
}
